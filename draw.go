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

package main

import (
	"image"

	"github.com/jetsetilly/retroinput/userinput/pointer"
	"github.com/jetsetilly/retroinput/viewport"
)

// size of the marker drawn at every contact
const marker = 8

// contactPosition converts a contact back into window coordinates. Returns
// false for off screen contacts.
func contactPosition(rect viewport.Rect, c pointer.Contact) (int, int, bool) {
	if c.X == viewport.Offscreen || c.Y == viewport.Offscreen {
		return 0, 0, false
	}
	x := rect.X + (int(c.X)+0x7fff)*rect.Width/(2*0x7fff)
	y := rect.Y + (int(c.Y)+0x7fff)*rect.Height/(2*0x7fff)
	return x, y, true
}

func imageRect(r viewport.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}
