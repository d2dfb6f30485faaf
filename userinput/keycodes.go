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

package userinput

import (
	"fmt"
	"strings"
)

// KeyCode identifies a physical key or button. Platform adapters map their
// own key identifiers onto these values.
type KeyCode int

// List of valid KeyCode values. KeyUnknown is reported for keys that the
// platform adapter could not map.
const (
	KeyUnknown KeyCode = iota

	// gamepad
	KeyDPadUp
	KeyDPadDown
	KeyDPadLeft
	KeyDPadRight
	KeyDPadCenter
	KeyButtonA
	KeyButtonB
	KeyButtonX
	KeyButtonY
	KeyButtonL1
	KeyButtonR1
	KeyButtonL2
	KeyButtonR2
	KeyButtonThumbL
	KeyButtonThumbR
	KeyButtonStart
	KeyButtonSelect
	KeyButtonMode

	// system
	KeyBack
	KeyMenu
	KeySearch
	KeyVolumeUp
	KeyVolumeDown
	KeyVolumeMute
	KeyMediaPlayPause
	KeyMediaFastForward
	KeyMediaRewind

	// keyboard
	KeyEnter
	KeyEscape
	KeySpace
	KeyTab
	KeyBackspace
	KeyShiftLeft
	KeyShiftRight
	KeyCtrlLeft
	KeyCtrlRight
	KeyAltLeft
	KeyAltRight
	KeyCursorUp
	KeyCursorDown
	KeyCursorLeft
	KeyCursorRight
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// NumKeyCodes is the number of KeyCode values, including KeyUnknown
	NumKeyCodes
)

var keyNames = map[KeyCode]string{
	KeyUnknown:          "unknown",
	KeyDPadUp:           "dpad_up",
	KeyDPadDown:         "dpad_down",
	KeyDPadLeft:         "dpad_left",
	KeyDPadRight:        "dpad_right",
	KeyDPadCenter:       "dpad_center",
	KeyButtonA:          "button_a",
	KeyButtonB:          "button_b",
	KeyButtonX:          "button_x",
	KeyButtonY:          "button_y",
	KeyButtonL1:         "button_l1",
	KeyButtonR1:         "button_r1",
	KeyButtonL2:         "button_l2",
	KeyButtonR2:         "button_r2",
	KeyButtonThumbL:     "button_thumbl",
	KeyButtonThumbR:     "button_thumbr",
	KeyButtonStart:      "button_start",
	KeyButtonSelect:     "button_select",
	KeyButtonMode:       "button_mode",
	KeyBack:             "back",
	KeyMenu:             "menu",
	KeySearch:           "search",
	KeyVolumeUp:         "volume_up",
	KeyVolumeDown:       "volume_down",
	KeyVolumeMute:       "volume_mute",
	KeyMediaPlayPause:   "media_play_pause",
	KeyMediaFastForward: "media_fast_forward",
	KeyMediaRewind:      "media_rewind",
	KeyEnter:            "enter",
	KeyEscape:           "escape",
	KeySpace:            "space",
	KeyTab:              "tab",
	KeyBackspace:        "backspace",
	KeyShiftLeft:        "shift_left",
	KeyShiftRight:       "shift_right",
	KeyCtrlLeft:         "ctrl_left",
	KeyCtrlRight:        "ctrl_right",
	KeyAltLeft:          "alt_left",
	KeyAltRight:         "alt_right",
	KeyCursorUp:         "up",
	KeyCursorDown:       "down",
	KeyCursorLeft:       "left",
	KeyCursorRight:      "right",
}

var keyCodes map[string]KeyCode

func init() {
	// letters, digits and function keys follow a pattern
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}

	keyCodes = make(map[string]KeyCode, len(keyNames))
	for k, n := range keyNames {
		keyCodes[n] = k
	}
}

func (k KeyCode) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("keycode %d", int(k))
}

// ParseKeyCode returns the KeyCode for the name returned by KeyCode.String().
// The name is not case sensitive.
func ParseKeyCode(name string) (KeyCode, error) {
	if k, ok := keyCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("userinput: unknown key code (%s)", name)
}
