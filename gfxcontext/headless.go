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

package gfxcontext

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/retroinput/viewport"
)

// Headless implements the Context interface with no window. The window size
// only changes when Resize() is called.
type Headless struct {
	aspect float64
	vp     *viewport.Viewport

	width, height int
	resized       bool
	title         string

	frames atomic.Uint64
	quit   atomic.Bool
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. The viewport is the largest rectangle of the aspect ratio that fits
// the window.
func NewHeadless(width, height int, aspect float64) *Headless {
	return &Headless{
		aspect: aspect,
		width:  width,
		height: height,
		vp:     viewport.New(viewport.Centred(width, height, aspect)),
	}
}

func (h *Headless) String() string {
	return fmt.Sprintf("headless %dx%d (%s)", h.width, h.height, h.vp.Rect())
}

// Quit causes the next call to CheckWindow() to report that the window has
// been closed. Safe to call from any goroutine.
func (h *Headless) Quit() {
	h.quit.Store(true)
}

// Frames returns the number of times SwapBuffers() has been called.
func (h *Headless) Frames() uint64 {
	return h.frames.Load()
}

// Title returns the most recent title set by UpdateTitle().
func (h *Headless) Title() string {
	return h.title
}

// SwapInterval implements the Context interface.
func (h *Headless) SwapInterval(_ int) {
}

// SwapBuffers implements the Context interface.
func (h *Headless) SwapBuffers() {
	h.frames.Add(1)
}

// CheckWindow implements the Context interface.
func (h *Headless) CheckWindow(_ uint64) (bool, bool, int, int) {
	resized := h.resized
	h.resized = false
	return h.quit.Load(), resized, h.width, h.height
}

// Resize implements the Context interface.
func (h *Headless) Resize(width, height int) {
	if width == h.width && height == h.height {
		return
	}
	h.width = width
	h.height = height
	h.resized = true
	h.vp.Set(viewport.Centred(width, height, h.aspect))
}

// VideoSize implements the Context interface.
func (h *Headless) VideoSize() (int, int) {
	return h.width, h.height
}

// UpdateTitle implements the Context interface.
func (h *Headless) UpdateTitle(title string) {
	h.title = title
}

// HasFocus implements the Context interface.
func (h *Headless) HasFocus() bool {
	return true
}

// ShowMouse implements the Context interface.
func (h *Headless) ShowMouse(_ bool) {
}

// SuppressScreensaver implements the Context interface.
func (h *Headless) SuppressScreensaver(_ bool) bool {
	return false
}

// HasWindowed implements the Context interface.
func (h *Headless) HasWindowed() bool {
	return false
}

// Viewport implements the Context interface.
func (h *Headless) Viewport() *viewport.Viewport {
	return h.vp
}

// Destroy implements the Context interface.
func (h *Headless) Destroy() {
}
