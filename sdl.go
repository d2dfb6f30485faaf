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
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/retroinput/gfxcontext/sdlcontext"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/performance/limiter"
	"github.com/jetsetilly/retroinput/platform/sdlqueue"
	"github.com/jetsetilly/retroinput/version"
	"github.com/jetsetilly/retroinput/viewport"
)

// initial size and aspect ratio of windows
const (
	windowWidth  = 640
	windowHeight = 480
	aspectRatio  = 4.0 / 3.0
)

var sdlCmd = &cobra.Command{
	Use:   "sdl",
	Short: "Read input from an SDL window",
	Args:  cobra.NoArgs,
	RunE:  runSDL,
}

func init() {
	rootCmd.AddCommand(sdlCmd)
}

// #mainthread
func runSDL(cmd *cobra.Command, _ []string) error {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_AUDIO)
	if err != nil {
		return err
	}
	defer sdl.Quit()

	q := sdlqueue.New(windowWidth, windowHeight, logger.Allow)
	q.OpenJoysticks()
	defer q.Close()

	ctx, err := sdlcontext.New(version.ApplicationName, windowWidth, windowHeight, aspectRatio, q, logger.Allow)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	s, err := newSession(cmd.OutOrStdout(), ctx.Viewport())
	if err != nil {
		return err
	}
	defer s.end()

	lim, err := limiter.New(opts.rate)
	if err != nil {
		return err
	}
	defer lim.Stop()

	// the limiter paces the loop so vsync is not needed
	ctx.SwapInterval(0)

	var frame uint64
	for {
		lim.Wait()
		frame++

		q.Service()

		quit, resize, w, h := ctx.CheckWindow(frame)
		if quit {
			return nil
		}
		if resize {
			q.SetWindowSize(int32(w), int32(h))
		}

		if s.poll(q) {
			return nil
		}

		drawSDL(ctx.Renderer(), ctx.Viewport().Rect(), s)
		ctx.SwapBuffers()

		if st, changed := s.update(); changed {
			ctx.UpdateTitle(st)
		}
	}
}

func drawSDL(r *sdl.Renderer, rect viewport.Rect, s *session) {
	_ = r.SetDrawColor(0, 0, 0, 255)
	_ = r.Clear()

	_ = r.SetDrawColor(32, 32, 48, 255)
	_ = r.FillRect(&sdl.Rect{X: int32(rect.X), Y: int32(rect.Y), W: int32(rect.Width), H: int32(rect.Height)})

	_ = r.SetDrawColor(255, 255, 255, 255)
	for _, c := range s.drv.Pointers() {
		x, y, ok := contactPosition(rect, c)
		if !ok {
			continue
		}
		_ = r.FillRect(&sdl.Rect{X: int32(x - marker/2), Y: int32(y - marker/2), W: marker, H: marker})
	}
}
