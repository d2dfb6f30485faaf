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

package overlay_test

import (
	"testing"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/overlay"
	"github.com/jetsetilly/retroinput/test"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/controls"
	"github.com/jetsetilly/retroinput/userinput/driver"
	"github.com/jetsetilly/retroinput/userinput/pointer"
)

// viewport coordinates of the top left corner and the centre of the screen
var (
	topLeft = pointer.Contact{X: -0x7f00, Y: -0x7f00}
	centre  = pointer.Contact{X: 0, Y: 0}
)

func TestUpdate(t *testing.T) {
	o := overlay.New(overlay.DefaultLayout())
	test.ExpectEquality(t, o.Mask(), uint64(0))

	o.Update([]pointer.Contact{topLeft})
	test.ExpectEquality(t, o.Mask(), controls.Menu.Mask())

	// contacts that miss every button
	o.Update([]pointer.Contact{centre})
	test.ExpectEquality(t, o.Mask(), uint64(0))

	// off screen contacts are ignored
	o.Update([]pointer.Contact{{X: -0x8000, Y: -0x8000}})
	test.ExpectEquality(t, o.Mask(), uint64(0))

	o.SetEnabled(false)
	o.Update([]pointer.Contact{topLeft})
	test.ExpectEquality(t, o.Mask(), uint64(0))
}

func TestParseLayout(t *testing.T) {
	layout := `
[[button]]
action = "rewind"
x = 0.5
y = 0.5
width = 0.5
height = 0.5
`
	b, err := overlay.ParseLayout([]byte(layout))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(b), 1)
	test.ExpectEquality(t, b[0].Meta, controls.Rewind)

	o := overlay.New(b)
	o.Update([]pointer.Contact{{X: 0x4000, Y: 0x4000}, topLeft})
	test.ExpectEquality(t, o.Mask(), controls.Rewind.Mask())

	_, err = overlay.ParseLayout([]byte("[[button]]\naction = \"a\"\n"))
	test.ExpectSuccess(t, curated.Is(err, overlay.ErrLayout))
	_, err = overlay.ParseLayout([]byte("[[button]]\naction = \"warp\"\n"))
	test.ExpectSuccess(t, curated.Is(err, overlay.ErrLayout))
}

func TestWithDriver(t *testing.T) {
	o := overlay.New(overlay.DefaultLayout())
	d, err := driver.New(driver.Options{Overlay: o})
	test.DemandSuccess(t, err)

	q := &userinput.SliceQueue{}
	q.Push(userinput.EventMotion{Device: 3, Source: userinput.SourceTouchscreen, Action: userinput.MotionDown, X: -0x7f00, Y: -0x7f00})
	d.Poll(q)

	test.ExpectFailure(t, d.KeyPressed(controls.Menu))
	o.Update(d.Pointers())
	test.ExpectSuccess(t, d.KeyPressed(controls.Menu))
}
