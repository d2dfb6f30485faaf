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
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/retroinput/audio"
	"github.com/jetsetilly/retroinput/audio/otosink"
	"github.com/jetsetilly/retroinput/audio/sdlsink"
	"github.com/jetsetilly/retroinput/audio/wavsink"
	"github.com/jetsetilly/retroinput/autodetect"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/overlay"
	"github.com/jetsetilly/retroinput/paths"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/controls"
	"github.com/jetsetilly/retroinput/userinput/driver"
)

// audio configuration for the feedback tone
const (
	feedbackRate    = 44100
	feedbackLatency = 50
	feedbackFreq    = 440
)

// session collates the input driver and its collaborators for the lifetime
// of a mode.
type session struct {
	output io.Writer

	prefs    *driver.Preferences
	profiles *autodetect.Profiles
	overlay  *overlay.Overlay
	drv      *driver.Driver

	sink audio.Driver
	tone *audio.Tone

	// frames of audio written for every poll
	framesPerPoll int

	// stops the profiles watcher
	cancel context.CancelFunc

	// the most recent status line
	status string
}

// newSession creates the input driver and its collaborators.
func newSession(output io.Writer, vp driver.Viewport) (*session, error) {
	s := &session{output: output}

	var err error
	if opts.prefsFile != "" {
		s.prefs, err = driver.NewPreferencesFromFile(opts.prefsFile)
	} else {
		s.prefs, err = driver.NewPreferences()
	}
	if err != nil {
		return nil, err
	}
	if opts.quiet {
		s.prefs.Quiet.Set(true)
	}

	pth := opts.profilesFile
	if pth == "" {
		pth, err = paths.ResourcePath(s.prefs.Profiles.Get().(string))
		if err != nil {
			return nil, err
		}
	}
	s.profiles, err = autodetect.NewProfiles(pth, logger.Allow)
	if err != nil {
		return nil, err
	}

	layout := overlay.DefaultLayout()
	if opts.overlayFile != "" {
		data, err := os.ReadFile(opts.overlayFile)
		if err != nil {
			return nil, err
		}
		layout, err = overlay.ParseLayout(data)
		if err != nil {
			return nil, err
		}
	}
	s.overlay = overlay.New(layout)

	s.drv, err = driver.New(driver.Options{
		Prefs:      s.prefs,
		Autodetect: s.profiles,
		Overlay:    s.overlay,
		Viewport:   vp,
	})
	if err != nil {
		return nil, err
	}

	err = s.openAudio()
	if err != nil {
		s.drv.Free()
		return nil, err
	}

	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	go func() {
		err := s.profiles.Watch(ctx)
		if err != nil {
			logger.Log(logger.Allow, "retroinput", err.Error())
		}
	}()

	logger.Logf(logger.Allow, "retroinput", "%s from %s", s.profiles, s.profiles.Path())

	return s, nil
}

func (s *session) openAudio() error {
	cfg := audio.Config{
		Rate:    feedbackRate,
		Latency: feedbackLatency,
	}

	var err error
	switch {
	case opts.wav != "":
		s.sink, err = wavsink.New(opts.wav, cfg, s.drv)
	case opts.audio == "oto":
		s.sink, err = otosink.New(cfg, s.drv)
	case opts.audio == "sdl":
		s.sink, err = sdlsink.New(cfg, s.drv)
	case opts.audio == "":
		return nil
	default:
		return fmt.Errorf("unknown audio device (%s)", opts.audio)
	}
	if err != nil {
		return err
	}

	s.sink.SetNonblock(true)
	s.tone = audio.NewTone(feedbackRate, feedbackFreq)
	s.framesPerPoll = feedbackRate / opts.rate
	logger.Logf(logger.Allow, "retroinput", "audio feedback: %s", s.sink.Ident())

	return nil
}

// poll the queue and update everything that depends on the driver state.
// returns true if the quit meta action is active.
func (s *session) poll(q userinput.Queue) bool {
	s.drv.Poll(q)
	s.overlay.Update(s.drv.Pointers())

	if sq, ok := q.(interface{ Unhandled() []userinput.Event }); ok {
		for _, ev := range sq.Unhandled() {
			logger.Logf(s.drv, "retroinput", "passed to platform: %s", ev)
		}
	}
	if r, ok := q.(interface{ Reset() }); ok {
		r.Reset()
	}

	if s.sink != nil {
		n := s.framesPerPoll * audio.Channels * 4
		if avail := s.sink.WriteAvail(); n > avail {
			n = avail
		}
		on := s.drv.Buttons(0) != 0
		_, err := s.sink.Write(s.tone.Frames(n/(audio.Channels*4), on))
		if err != nil {
			logger.Log(s.drv, "retroinput", err.Error())
		}
	}

	return s.drv.KeyPressed(controls.Quit)
}

// the status line shows the state of the driver. returns false if the status
// is unchanged since the last call
func (s *session) update() (string, bool) {
	st := s.drv.String()
	if s.overlay.Mask() != 0 {
		st = fmt.Sprintf("%s | overlay: %s", st, controls.Lifecycle(s.overlay.Mask()))
	}
	if st == s.status {
		return st, false
	}
	s.status = st
	return st, true
}

// end the session. the driver state is dumped if requested
func (s *session) end() {
	s.cancel()

	if s.sink != nil {
		s.sink.Free()
	}

	if opts.dump != "" {
		if err := s.dump(opts.dump); err != nil {
			fmt.Fprintf(s.output, "* error: %v\n", err)
		}
	}

	if !opts.quiet {
		fmt.Fprintln(s.output, s.drv.PollStats())
	}

	s.drv.Free()
}

func (s *session) dump(pth string) error {
	f, err := os.Create(filepath.Clean(pth))
	if err != nil {
		return err
	}
	s.drv.Dump(f)
	return f.Close()
}
