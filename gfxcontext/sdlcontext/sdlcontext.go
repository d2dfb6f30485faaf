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

// Package sdlcontext implements the gfxcontext.Context interface with an SDL
// window and renderer.
//
// All functions MUST ONLY be called from the main thread.
package sdlcontext

import (
	"github.com/jetsetilly/retroinput/assert"
	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/gfxcontext"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/viewport"

	"github.com/veandco/go-sdl2/sdl"
)

// QuitSource reports whether the user has asked to close the window. SDL
// events are read by the input queue so the context needs to ask the queue.
type QuitSource interface {
	Quit() bool
}

// Context implements the gfxcontext.Context interface.
type Context struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	perm     logger.Permission

	quit     QuitSource
	aspect   float64
	vp       *viewport.Viewport
	interval int

	width, height int32

	// the goroutine the context was created on
	main assert.Thread
}

// New is the preferred method of initialisation for the Context type. SDL
// must have been initialised with the video subsystem.
func New(title string, width, height int32, aspect float64, quit QuitSource, perm logger.Permission) (*Context, error) {
	ctx := &Context{
		perm:     perm,
		quit:     quit,
		aspect:   aspect,
		interval: 1,
		width:    width,
		height:   height,
		main:     assert.NewThread(),
	}

	var err error

	ctx.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		width, height,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf(gfxcontext.ErrInit, err)
	}

	err = ctx.createRenderer()
	if err != nil {
		ctx.window.Destroy()
		return nil, curated.Errorf(gfxcontext.ErrInit, err)
	}

	ctx.vp = viewport.New(viewport.Centred(int(width), int(height), aspect))

	return ctx, nil
}

func (ctx *Context) createRenderer() error {
	if ctx.renderer != nil {
		_ = ctx.renderer.Destroy()
		ctx.renderer = nil
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if ctx.interval > 0 {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}

	var err error
	ctx.renderer, err = sdl.CreateRenderer(ctx.window, -1, flags)
	return err
}

// Renderer returns the SDL renderer for the window.
func (ctx *Context) Renderer() *sdl.Renderer {
	return ctx.renderer
}

// SwapInterval implements the gfxcontext.Context interface. The renderer is
// recreated if vsync is turned on or off.
func (ctx *Context) SwapInterval(interval int) {
	vsync := interval > 0
	if vsync == (ctx.interval > 0) {
		ctx.interval = interval
		return
	}
	ctx.interval = interval
	if err := ctx.createRenderer(); err != nil {
		logger.Logf(ctx.perm, "sdlcontext", "swap interval: %v", err)
	}
}

// SwapBuffers implements the gfxcontext.Context interface.
func (ctx *Context) SwapBuffers() {
	ctx.renderer.Present()
}

// CheckWindow implements the gfxcontext.Context interface.
func (ctx *Context) CheckWindow(_ uint64) (bool, bool, int, int) {
	if !ctx.main.Same() {
		logger.Log(ctx.perm, "sdlcontext", "CheckWindow() called from outside the main thread")
	}

	var quit bool
	if ctx.quit != nil {
		quit = ctx.quit.Quit()
	}

	w, h := ctx.window.GetSize()
	resize := w != ctx.width || h != ctx.height
	if resize {
		ctx.width = w
		ctx.height = h
		ctx.vp.Set(viewport.Centred(int(w), int(h), ctx.aspect))
		logger.Logf(ctx.perm, "sdlcontext", "resize %dx%d", w, h)
	}

	return quit, resize, int(w), int(h)
}

// Resize implements the gfxcontext.Context interface.
func (ctx *Context) Resize(width, height int) {
	ctx.window.SetSize(int32(width), int32(height))
}

// VideoSize implements the gfxcontext.Context interface.
func (ctx *Context) VideoSize() (int, int) {
	idx, err := ctx.window.GetDisplayIndex()
	if err != nil {
		idx = 0
	}
	mode, err := sdl.GetCurrentDisplayMode(idx)
	if err != nil {
		logger.Logf(ctx.perm, "sdlcontext", "video size: %v", err)
		return int(ctx.width), int(ctx.height)
	}
	return int(mode.W), int(mode.H)
}

// UpdateTitle implements the gfxcontext.Context interface.
func (ctx *Context) UpdateTitle(title string) {
	ctx.window.SetTitle(title)
}

// HasFocus implements the gfxcontext.Context interface.
func (ctx *Context) HasFocus() bool {
	return ctx.window.GetFlags()&sdl.WINDOW_INPUT_FOCUS == sdl.WINDOW_INPUT_FOCUS
}

// ShowMouse implements the gfxcontext.Context interface.
func (ctx *Context) ShowMouse(show bool) {
	toggle := sdl.DISABLE
	if show {
		toggle = sdl.ENABLE
	}
	_, _ = sdl.ShowCursor(toggle)
}

// SuppressScreensaver implements the gfxcontext.Context interface.
func (ctx *Context) SuppressScreensaver(enable bool) bool {
	if enable {
		sdl.DisableScreenSaver()
	} else {
		sdl.EnableScreenSaver()
	}
	return true
}

// HasWindowed implements the gfxcontext.Context interface.
func (ctx *Context) HasWindowed() bool {
	return true
}

// Viewport implements the gfxcontext.Context interface.
func (ctx *Context) Viewport() *viewport.Viewport {
	return ctx.vp
}

// Destroy implements the gfxcontext.Context interface.
func (ctx *Context) Destroy() {
	if ctx.renderer != nil {
		_ = ctx.renderer.Destroy()
	}
	if ctx.window != nil {
		_ = ctx.window.Destroy()
	}
}
