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

package viewport_test

import (
	"testing"

	"github.com/jetsetilly/retroinput/test"
	"github.com/jetsetilly/retroinput/viewport"
)

func TestTranslate(t *testing.T) {
	vp := viewport.New(viewport.Rect{X: 100, Y: 0, Width: 200, Height: 100, FullWidth: 400, FullHeight: 100})

	x, y, ok := vp.Translate(100, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, int16(-0x7fff))
	test.ExpectEquality(t, y, int16(-0x7fff))

	x, y, ok = vp.Translate(200, 50)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, int16(0))
	test.ExpectEquality(t, y, int16(0))

	x, _, ok = vp.Translate(300, 50)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, int16(0x7fff))

	// left of the viewport
	x, _, ok = vp.Translate(50, 50)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, int16(viewport.Offscreen))

	// right of the viewport
	x, _, _ = vp.Translate(350, 50)
	test.ExpectEquality(t, x, int16(viewport.Offscreen))

	// the same position relative to the whole window
	x, _, ok = vp.TranslateScreen(50, 50)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, int16((2*50*0x7fff)/400-0x7fff))
}

func TestZeroSize(t *testing.T) {
	var vp viewport.Viewport
	x, y, ok := vp.Translate(10, 10)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, x, int16(viewport.Offscreen))
	test.ExpectEquality(t, y, int16(viewport.Offscreen))

	_, _, ok = vp.TranslateScreen(10, 10)
	test.ExpectFailure(t, ok)

	vp.Set(viewport.Rect{Width: 10, Height: 10})
	_, _, ok = vp.Translate(5, 5)
	test.ExpectSuccess(t, ok)
}

func TestCentred(t *testing.T) {
	r := viewport.Centred(800, 600, 4.0/3.0)
	test.ExpectEquality(t, r, viewport.Rect{X: 0, Y: 0, Width: 800, Height: 600, FullWidth: 800, FullHeight: 600})

	// pillar box
	r = viewport.Centred(1000, 600, 4.0/3.0)
	test.ExpectEquality(t, r, viewport.Rect{X: 100, Y: 0, Width: 800, Height: 600, FullWidth: 1000, FullHeight: 600})

	// letter box
	r = viewport.Centred(800, 800, 2.0)
	test.ExpectEquality(t, r, viewport.Rect{X: 0, Y: 200, Width: 800, Height: 400, FullWidth: 800, FullHeight: 800})

	r = viewport.Centred(0, 0, 1.0)
	test.ExpectEquality(t, r.Width, 0)
}
