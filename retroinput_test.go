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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/retroinput/gfxcontext"
	"github.com/jetsetilly/retroinput/performance/limiter"
	"github.com/jetsetilly/retroinput/test"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/controls"
	"github.com/jetsetilly/retroinput/userinput/driver"
	"github.com/jetsetilly/retroinput/userinput/pointer"
	"github.com/jetsetilly/retroinput/viewport"
)

// options that keep tests away from the resource directory
func testOptions(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	opts = options{
		prefsFile:    filepath.Join(dir, "preferences"),
		profilesFile: filepath.Join(dir, "profiles.toml"),
		rate:         60,
		quiet:        true,
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetErr(&b)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return b.String(), err
}

func TestCommands(t *testing.T) {
	out, err := execute(t, "version")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out, "retroinput"))

	out, err = execute(t, "profiles")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "[[profile]]"))

	_, err = execute(t, "version", "--rate", "0")
	test.ExpectFailure(t, err)
	opts.rate = 60

	_, err = execute(t, "perf", "--profile", "disk")
	test.ExpectFailure(t, err)
}

func TestContactPosition(t *testing.T) {
	rect := viewport.Centred(800, 600, aspectRatio)
	vp := viewport.New(rect)

	x, y, ok := vp.Translate(400, 300)
	test.DemandSuccess(t, ok)

	px, py, ok := contactPosition(rect, pointer.Contact{X: x, Y: y})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, px, 400)
	test.ExpectEquality(t, py, 300)

	_, _, ok = contactPosition(rect, pointer.Contact{X: viewport.Offscreen, Y: 0})
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, imageRect(rect).Dx(), rect.Width)
}

func TestSession(t *testing.T) {
	testOptions(t)
	opts.wav = filepath.Join(t.TempDir(), "feedback.wav")
	opts.dump = filepath.Join(t.TempDir(), "driver.dot")

	var out bytes.Buffer
	s, err := newSession(&out, viewport.New(viewport.Centred(640, 480, aspectRatio)))
	test.DemandSuccess(t, err)

	q := &userinput.SliceQueue{}
	q.Push(userinput.EventKey{Device: 1, Source: userinput.SourceKeyboard, Action: userinput.KeyDown, Code: userinput.KeyButtonA})
	q.Push(userinput.EventKey{Device: 1, Source: userinput.SourceKeyboard, Action: userinput.KeyDown, Code: userinput.KeyVolumeUp})
	test.ExpectFailure(t, s.poll(q))
	test.ExpectEquality(t, s.drv.State(0, driver.DeviceJoypad, 0, uint(controls.A)), int16(1))

	// the queue is reset after every poll
	test.ExpectEquality(t, len(q.Unhandled()), 0)

	_, changed := s.update()
	test.ExpectSuccess(t, changed)
	_, changed = s.update()
	test.ExpectFailure(t, changed)

	s.end()

	_, err = os.Stat(opts.wav)
	test.ExpectSuccess(t, err == nil)
	dot, err := os.ReadFile(opts.dump)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Contains(dot, []byte("digraph")))
}

func TestSessionBadAudio(t *testing.T) {
	testOptions(t)
	opts.audio = "speaker"
	_, err := newSession(&bytes.Buffer{}, nil)
	test.ExpectFailure(t, err)
}

func TestRunHeadless(t *testing.T) {
	testOptions(t)

	ctx := gfxcontext.NewHeadless(640, 480, aspectRatio)
	s, err := newSession(&bytes.Buffer{}, ctx.Viewport())
	test.DemandSuccess(t, err)
	defer s.end()

	lim, err := limiter.New(1000)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	q := &userinput.SliceQueue{}
	var polls int

	err = runHeadless(&bytes.Buffer{}, ctx, s, lim, func() (userinput.Queue, bool, error) {
		polls++
		switch polls {
		case 1:
			q.Push(userinput.EventKey{Device: 1, Source: userinput.SourceKeyboard, Action: userinput.KeyDown, Code: userinput.KeyButtonStart})
		case 5:
			ctx.Quit()
		}
		return q, false, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, polls, 5)
	test.ExpectEquality(t, ctx.Frames(), uint64(4))
	test.ExpectSuccess(t, strings.Contains(ctx.Title(), "p0: "))
}
