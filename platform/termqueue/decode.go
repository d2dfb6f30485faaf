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

package termqueue

import (
	"github.com/jetsetilly/retroinput/userinput"
)

// ASCII codes for non-alphanumeric characters
const (
	asciiInterrupt      = 3
	asciiBackspace      = 8
	asciiTab            = 9
	asciiLineFeed       = 10
	asciiCarriageReturn = 13
	asciiEsc            = 27
	asciiDelete         = 127
)

// characters that follow the escape sequence introducer "ESC ["
var cursorKeys = map[byte]userinput.KeyCode{
	'A': userinput.KeyCursorUp,
	'B': userinput.KeyCursorDown,
	'C': userinput.KeyCursorRight,
	'D': userinput.KeyCursorLeft,
}

// characters that follow "ESC O" for the first four function keys
var functionKeys = map[byte]userinput.KeyCode{
	'P': userinput.KeyF1,
	'Q': userinput.KeyF2,
	'R': userinput.KeyF3,
	'S': userinput.KeyF4,
}

// decode terminal input into key codes. the returned slice contains each key
// once, in the order it was first seen. returns true if the interrupt key was
// read
func decode(b []byte) ([]userinput.KeyCode, bool) {
	var codes []userinput.KeyCode
	var quit bool

	seen := make(map[userinput.KeyCode]bool)
	add := func(c userinput.KeyCode) {
		if !seen[c] {
			seen[c] = true
			codes = append(codes, c)
		}
	}

	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == asciiInterrupt:
			quit = true
		case c == asciiEsc:
			if i+2 < len(b) && b[i+1] == '[' {
				if k, ok := cursorKeys[b[i+2]]; ok {
					add(k)
				}
				i += 2
				continue
			}
			if i+2 < len(b) && b[i+1] == 'O' {
				if k, ok := functionKeys[b[i+2]]; ok {
					add(k)
				}
				i += 2
				continue
			}
			add(userinput.KeyEscape)
		case c == asciiCarriageReturn || c == asciiLineFeed:
			add(userinput.KeyEnter)
		case c == asciiTab:
			add(userinput.KeyTab)
		case c == asciiBackspace || c == asciiDelete:
			add(userinput.KeyBackspace)
		case c == ' ':
			add(userinput.KeySpace)
		case c >= 'a' && c <= 'z':
			add(userinput.KeyA + userinput.KeyCode(c-'a'))
		case c >= 'A' && c <= 'Z':
			add(userinput.KeyA + userinput.KeyCode(c-'A'))
		case c >= '0' && c <= '9':
			add(userinput.Key0 + userinput.KeyCode(c-'0'))
		}
	}

	return codes, quit
}
