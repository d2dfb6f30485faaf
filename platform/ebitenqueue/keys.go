// This file is part of retroinput.
//
// retroinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// retroinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with retroinput.  If not, see <https://www.gnu.org/licenses/>.

package ebitenqueue

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jetsetilly/retroinput/userinput"
)

var keyCodes = map[ebiten.Key]userinput.KeyCode{
	ebiten.KeyEnter:        userinput.KeyEnter,
	ebiten.KeyEscape:       userinput.KeyEscape,
	ebiten.KeySpace:        userinput.KeySpace,
	ebiten.KeyTab:          userinput.KeyTab,
	ebiten.KeyBackspace:    userinput.KeyBackspace,
	ebiten.KeyShiftLeft:    userinput.KeyShiftLeft,
	ebiten.KeyShiftRight:   userinput.KeyShiftRight,
	ebiten.KeyControlLeft:  userinput.KeyCtrlLeft,
	ebiten.KeyControlRight: userinput.KeyCtrlRight,
	ebiten.KeyAltLeft:      userinput.KeyAltLeft,
	ebiten.KeyAltRight:     userinput.KeyAltRight,
	ebiten.KeyArrowUp:      userinput.KeyCursorUp,
	ebiten.KeyArrowDown:    userinput.KeyCursorDown,
	ebiten.KeyArrowLeft:    userinput.KeyCursorLeft,
	ebiten.KeyArrowRight:   userinput.KeyCursorRight,
	ebiten.KeyContextMenu:  userinput.KeyMenu,

	ebiten.KeyA: userinput.KeyA,
	ebiten.KeyB: userinput.KeyB,
	ebiten.KeyC: userinput.KeyC,
	ebiten.KeyD: userinput.KeyD,
	ebiten.KeyE: userinput.KeyE,
	ebiten.KeyF: userinput.KeyF,
	ebiten.KeyG: userinput.KeyG,
	ebiten.KeyH: userinput.KeyH,
	ebiten.KeyI: userinput.KeyI,
	ebiten.KeyJ: userinput.KeyJ,
	ebiten.KeyK: userinput.KeyK,
	ebiten.KeyL: userinput.KeyL,
	ebiten.KeyM: userinput.KeyM,
	ebiten.KeyN: userinput.KeyN,
	ebiten.KeyO: userinput.KeyO,
	ebiten.KeyP: userinput.KeyP,
	ebiten.KeyQ: userinput.KeyQ,
	ebiten.KeyR: userinput.KeyR,
	ebiten.KeyS: userinput.KeyS,
	ebiten.KeyT: userinput.KeyT,
	ebiten.KeyU: userinput.KeyU,
	ebiten.KeyV: userinput.KeyV,
	ebiten.KeyW: userinput.KeyW,
	ebiten.KeyX: userinput.KeyX,
	ebiten.KeyY: userinput.KeyY,
	ebiten.KeyZ: userinput.KeyZ,

	ebiten.KeyDigit0: userinput.Key0,
	ebiten.KeyDigit1: userinput.Key1,
	ebiten.KeyDigit2: userinput.Key2,
	ebiten.KeyDigit3: userinput.Key3,
	ebiten.KeyDigit4: userinput.Key4,
	ebiten.KeyDigit5: userinput.Key5,
	ebiten.KeyDigit6: userinput.Key6,
	ebiten.KeyDigit7: userinput.Key7,
	ebiten.KeyDigit8: userinput.Key8,
	ebiten.KeyDigit9: userinput.Key9,

	ebiten.KeyF1:  userinput.KeyF1,
	ebiten.KeyF2:  userinput.KeyF2,
	ebiten.KeyF3:  userinput.KeyF3,
	ebiten.KeyF4:  userinput.KeyF4,
	ebiten.KeyF5:  userinput.KeyF5,
	ebiten.KeyF6:  userinput.KeyF6,
	ebiten.KeyF7:  userinput.KeyF7,
	ebiten.KeyF8:  userinput.KeyF8,
	ebiten.KeyF9:  userinput.KeyF9,
	ebiten.KeyF10: userinput.KeyF10,
	ebiten.KeyF11: userinput.KeyF11,
	ebiten.KeyF12: userinput.KeyF12,
}

// standard gamepad buttons use the positions of the buttons rather than their
// labels. the bottom button of the right cluster is button A
var padCodes = map[ebiten.StandardGamepadButton]userinput.KeyCode{
	ebiten.StandardGamepadButtonRightBottom:      userinput.KeyButtonA,
	ebiten.StandardGamepadButtonRightRight:       userinput.KeyButtonB,
	ebiten.StandardGamepadButtonRightLeft:        userinput.KeyButtonX,
	ebiten.StandardGamepadButtonRightTop:         userinput.KeyButtonY,
	ebiten.StandardGamepadButtonFrontTopLeft:     userinput.KeyButtonL1,
	ebiten.StandardGamepadButtonFrontTopRight:    userinput.KeyButtonR1,
	ebiten.StandardGamepadButtonFrontBottomLeft:  userinput.KeyButtonL2,
	ebiten.StandardGamepadButtonFrontBottomRight: userinput.KeyButtonR2,
	ebiten.StandardGamepadButtonCenterLeft:       userinput.KeyButtonSelect,
	ebiten.StandardGamepadButtonCenterRight:      userinput.KeyButtonStart,
	ebiten.StandardGamepadButtonCenterCenter:     userinput.KeyButtonMode,
	ebiten.StandardGamepadButtonLeftStick:        userinput.KeyButtonThumbL,
	ebiten.StandardGamepadButtonRightStick:       userinput.KeyButtonThumbR,
	ebiten.StandardGamepadButtonLeftTop:          userinput.KeyDPadUp,
	ebiten.StandardGamepadButtonLeftBottom:       userinput.KeyDPadDown,
	ebiten.StandardGamepadButtonLeftLeft:         userinput.KeyDPadLeft,
	ebiten.StandardGamepadButtonLeftRight:        userinput.KeyDPadRight,
}

// KeyCode returns the KeyCode for an ebiten key.
func KeyCode(k ebiten.Key) (userinput.KeyCode, bool) {
	c, ok := keyCodes[k]
	return c, ok
}
