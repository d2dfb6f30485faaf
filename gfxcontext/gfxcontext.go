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

// Package gfxcontext defines the contract between the video output and the
// window system. The context owns the window and keeps the viewport used by
// the input driver up to date as the window changes size.
//
// Headless is an implementation with no window. The sdlcontext package
// implements the contract with an SDL window.
package gfxcontext

import (
	"github.com/jetsetilly/retroinput/viewport"
)

// ErrInit is the pattern for errors returned when a context cannot be
// created.
const ErrInit = "gfxcontext: %v"

// Context is the contract for a graphics context.
type Context interface {
	// SwapInterval sets the number of vertical blanks to wait before
	// swapping buffers. Zero disables vsync.
	SwapInterval(interval int)

	SwapBuffers()

	// CheckWindow is called once per frame. It reports whether the window has
	// been closed and whether it has changed size since the previous call.
	CheckWindow(frame uint64) (quit bool, resize bool, width int, height int)

	// Resize the window.
	Resize(width, height int)

	// VideoSize is the size of the display the window is on.
	VideoSize() (int, int)

	UpdateTitle(title string)
	HasFocus() bool
	ShowMouse(show bool)

	// SuppressScreensaver returns false if the request is not supported.
	SuppressScreensaver(enable bool) bool

	// HasWindowed returns true if the context supports windowed mode.
	HasWindowed() bool

	// Viewport returns the viewport for the current window size.
	Viewport() *viewport.Viewport

	Destroy()
}
