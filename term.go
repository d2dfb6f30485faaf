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

	"github.com/spf13/cobra"

	"github.com/jetsetilly/retroinput/gfxcontext"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/performance/limiter"
	"github.com/jetsetilly/retroinput/platform/termqueue"
	"github.com/jetsetilly/retroinput/userinput"
)

var termOpts struct {
	tty string
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Read keyboard input from the terminal",
	Long: `Reads keyboard input from the terminal in raw mode. Terminals do not
report key releases so a key is released on the poll after it is last seen.
Press Ctrl-C to quit.`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&termOpts.tty, "tty", termqueue.DefaultTerminal, "terminal device")
	rootCmd.AddCommand(termCmd)
}

func runTerm(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	ctx := gfxcontext.NewHeadless(windowWidth, windowHeight, aspectRatio)
	defer ctx.Destroy()

	s, err := newSession(out, ctx.Viewport())
	if err != nil {
		return err
	}
	defer s.end()

	// the terminal is restored before the session ends
	q, err := termqueue.Open(termOpts.tty, logger.Allow)
	if err != nil {
		return err
	}
	defer func() {
		if err := q.Close(); err != nil {
			logger.Log(logger.Allow, "retroinput", err.Error())
		}
		fmt.Fprintln(out)
	}()

	lim, err := limiter.New(opts.rate)
	if err != nil {
		return err
	}
	defer lim.Stop()

	return runHeadless(out, ctx, s, lim, func() (userinput.Queue, bool, error) {
		if err := q.Service(); err != nil {
			return nil, true, err
		}
		return q, q.Quit(), nil
	})
}
