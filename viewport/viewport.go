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

// Package viewport translates device coordinates into the coordinate space
// used for pointer queries. In that space the visible area of the emulated
// screen runs from -0x7fff to 0x7fff on both axes. Coordinates outside the
// visible area are reported as -0x8000.
package viewport

import (
	"fmt"
	"sync"
)

// Offscreen is the translated value of a coordinate outside the viewport.
const Offscreen = -0x8000

// Rect is the position of the emulated screen inside the window, together
// with the full size of the window. All values are in device pixels.
type Rect struct {
	X, Y          int
	Width, Height int

	FullWidth, FullHeight int
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d at %d,%d in %dx%d", r.Width, r.Height, r.X, r.Y, r.FullWidth, r.FullHeight)
}

// Viewport implements the driver.Viewport interface. The zero value has no
// size and cannot translate coordinates.
//
// The rectangle can be changed by the video side of the program at any time.
type Viewport struct {
	crit sync.RWMutex
	rect Rect
}

// New is the preferred method of initialisation for the Viewport type.
func New(r Rect) *Viewport {
	return &Viewport{rect: r}
}

// Set changes the viewport rectangle.
func (vp *Viewport) Set(r Rect) {
	vp.crit.Lock()
	defer vp.crit.Unlock()
	vp.rect = r
}

// Rect returns the current viewport rectangle.
func (vp *Viewport) Rect() Rect {
	vp.crit.RLock()
	defer vp.crit.RUnlock()
	return vp.rect
}

func scale(v int, size int) int16 {
	s := (2*v*0x7fff)/size - 0x7fff
	if s < -0x7fff || s > 0x7fff {
		return Offscreen
	}
	return int16(s)
}

// Translate implements the driver.Viewport interface. Returns false if the
// viewport has no size.
func (vp *Viewport) Translate(x, y float32) (int16, int16, bool) {
	r := vp.Rect()
	if r.Width <= 0 || r.Height <= 0 {
		return Offscreen, Offscreen, false
	}
	return scale(int(x)-r.X, r.Width), scale(int(y)-r.Y, r.Height), true
}

// TranslateScreen is like Translate but the coordinates are relative to the
// full window rather than the emulated screen.
func (vp *Viewport) TranslateScreen(x, y float32) (int16, int16, bool) {
	r := vp.Rect()
	if r.FullWidth <= 0 || r.FullHeight <= 0 {
		return Offscreen, Offscreen, false
	}
	return scale(int(x), r.FullWidth), scale(int(y), r.FullHeight), true
}

// Centred returns the largest rectangle of the given aspect ratio that fits
// inside a window of the given size, centred in the window.
func Centred(windowWidth, windowHeight int, aspect float64) Rect {
	r := Rect{
		FullWidth:  windowWidth,
		FullHeight: windowHeight,
	}
	if windowWidth <= 0 || windowHeight <= 0 || aspect <= 0 {
		return r
	}

	r.Width = windowWidth
	r.Height = int(float64(windowWidth) / aspect)
	if r.Height > windowHeight {
		r.Height = windowHeight
		r.Width = int(float64(windowHeight) * aspect)
	}
	r.X = (windowWidth - r.Width) / 2
	r.Y = (windowHeight - r.Height) / 2

	return r
}
