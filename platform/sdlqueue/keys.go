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

package sdlqueue

import (
	"github.com/jetsetilly/retroinput/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

var scancodes = map[sdl.Scancode]userinput.KeyCode{
	sdl.SCANCODE_RETURN:    userinput.KeyEnter,
	sdl.SCANCODE_ESCAPE:    userinput.KeyEscape,
	sdl.SCANCODE_SPACE:     userinput.KeySpace,
	sdl.SCANCODE_TAB:       userinput.KeyTab,
	sdl.SCANCODE_BACKSPACE: userinput.KeyBackspace,
	sdl.SCANCODE_LSHIFT:    userinput.KeyShiftLeft,
	sdl.SCANCODE_RSHIFT:    userinput.KeyShiftRight,
	sdl.SCANCODE_LCTRL:     userinput.KeyCtrlLeft,
	sdl.SCANCODE_RCTRL:     userinput.KeyCtrlRight,
	sdl.SCANCODE_LALT:      userinput.KeyAltLeft,
	sdl.SCANCODE_RALT:      userinput.KeyAltRight,
	sdl.SCANCODE_UP:        userinput.KeyCursorUp,
	sdl.SCANCODE_DOWN:      userinput.KeyCursorDown,
	sdl.SCANCODE_LEFT:      userinput.KeyCursorLeft,
	sdl.SCANCODE_RIGHT:     userinput.KeyCursorRight,

	sdl.SCANCODE_VOLUMEUP:   userinput.KeyVolumeUp,
	sdl.SCANCODE_VOLUMEDOWN: userinput.KeyVolumeDown,
	sdl.SCANCODE_MUTE:       userinput.KeyVolumeMute,
	sdl.SCANCODE_AC_BACK:    userinput.KeyBack,
	sdl.SCANCODE_MENU:       userinput.KeyMenu,
	sdl.SCANCODE_AC_SEARCH:  userinput.KeySearch,
	sdl.SCANCODE_AUDIOPLAY:  userinput.KeyMediaPlayPause,
	sdl.SCANCODE_AUDIONEXT:  userinput.KeyMediaFastForward,
	sdl.SCANCODE_AUDIOPREV:  userinput.KeyMediaRewind,

	sdl.SCANCODE_F1:  userinput.KeyF1,
	sdl.SCANCODE_F2:  userinput.KeyF2,
	sdl.SCANCODE_F3:  userinput.KeyF3,
	sdl.SCANCODE_F4:  userinput.KeyF4,
	sdl.SCANCODE_F5:  userinput.KeyF5,
	sdl.SCANCODE_F6:  userinput.KeyF6,
	sdl.SCANCODE_F7:  userinput.KeyF7,
	sdl.SCANCODE_F8:  userinput.KeyF8,
	sdl.SCANCODE_F9:  userinput.KeyF9,
	sdl.SCANCODE_F10: userinput.KeyF10,
	sdl.SCANCODE_F11: userinput.KeyF11,
	sdl.SCANCODE_F12: userinput.KeyF12,
}

func init() {
	// SDL scancodes for letters and numbers are contiguous
	for i := 0; i < 26; i++ {
		scancodes[sdl.SCANCODE_A+sdl.Scancode(i)] = userinput.KeyA + userinput.KeyCode(i)
	}
	scancodes[sdl.SCANCODE_0] = userinput.Key0
	for i := 0; i < 9; i++ {
		scancodes[sdl.SCANCODE_1+sdl.Scancode(i)] = userinput.Key1 + userinput.KeyCode(i)
	}
}

// joystick buttons in the order used by the xinput layout
var joyButtons = map[uint8]userinput.KeyCode{
	0:  userinput.KeyButtonA,
	1:  userinput.KeyButtonB,
	2:  userinput.KeyButtonX,
	3:  userinput.KeyButtonY,
	4:  userinput.KeyButtonL1,
	5:  userinput.KeyButtonR1,
	6:  userinput.KeyButtonSelect,
	7:  userinput.KeyButtonStart,
	8:  userinput.KeyButtonMode,
	9:  userinput.KeyButtonThumbL,
	10: userinput.KeyButtonThumbR,
}

// KeyCode returns the KeyCode for an SDL scancode.
func KeyCode(s sdl.Scancode) (userinput.KeyCode, bool) {
	k, ok := scancodes[s]
	return k, ok
}
