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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/retroinput/gfxcontext"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/performance/limiter"
	"github.com/jetsetilly/retroinput/platform/joydevqueue"
	"github.com/jetsetilly/retroinput/userinput"
)

var joydevOpts struct {
	dir string
}

var joydevCmd = &cobra.Command{
	Use:   "joydev",
	Short: "Read input from Linux joystick devices",
	Long: `Reads input from the joystick devices in the input directory. Devices
plugged in while the program runs are opened automatically. Press Ctrl-C to
quit.`,
	Args: cobra.NoArgs,
	RunE: runJoydev,
}

func init() {
	joydevCmd.Flags().StringVar(&joydevOpts.dir, "dir", joydevqueue.DefaultDir, "directory containing joystick devices")
	rootCmd.AddCommand(joydevCmd)
}

func runJoydev(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	ctx := gfxcontext.NewHeadless(windowWidth, windowHeight, aspectRatio)
	defer ctx.Destroy()

	s, err := newSession(out, ctx.Viewport())
	if err != nil {
		return err
	}
	defer s.end()

	q := joydevqueue.New(logger.Allow)
	defer q.Close()

	n, err := q.Scan(joydevOpts.dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d joystick devices in %s\n", n, joydevOpts.dir)

	sig, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		err := q.Watch(sig, joydevOpts.dir)
		if err != nil {
			logger.Log(logger.Allow, "retroinput", err.Error())
		}
	}()

	lim, err := limiter.New(opts.rate)
	if err != nil {
		return err
	}
	defer lim.Stop()

	defer fmt.Fprintln(out)

	return runHeadless(out, ctx, s, lim, func() (userinput.Queue, bool, error) {
		q.Service()
		return q, sig.Err() != nil, nil
	})
}
