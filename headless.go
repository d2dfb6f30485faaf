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
	"fmt"
	"io"

	"github.com/jetsetilly/retroinput/gfxcontext"
	"github.com/jetsetilly/retroinput/performance/limiter"
	"github.com/jetsetilly/retroinput/userinput"
)

// runHeadless is the main loop for modes without a window. The service
// function is called once per poll and returns the queue to poll.
func runHeadless(out io.Writer, ctx *gfxcontext.Headless, s *session, lim *limiter.Limiter, service func() (userinput.Queue, bool, error)) error {
	var frame uint64
	for {
		lim.Wait()
		frame++

		q, quit, err := service()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if quit, _, _, _ := ctx.CheckWindow(frame); quit {
			return nil
		}

		if s.poll(q) {
			return nil
		}
		ctx.SwapBuffers()

		if st, changed := s.update(); changed {
			ctx.UpdateTitle(st)
			if !opts.quiet {
				// carriage return and clear to end of line
				fmt.Fprintf(out, "\r%s\x1b[K", ctx.Title())
			}
		}
	}
}
