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

// Package otosink implements the audio.Driver interface with the oto library.
// Only one oto context can exist in a program so only one Sink can be created.
package otosink

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/retroinput/audio"
	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
)

// Sink implements the audio.Driver interface.
type Sink struct {
	ctx    *oto.Context
	player *oto.Player
	ring   *audio.Ring
	perm   logger.Permission

	crit     sync.Mutex
	nonblock bool
	paused   bool
}

// New is the preferred method of initialisation for the Sink type. The
// device field of the configuration is ignored.
func New(cfg audio.Config, perm logger.Permission) (*Sink, error) {
	cfg = cfg.Normalise()
	if cfg.Rate <= 0 {
		return nil, curated.Errorf(audio.ErrInit, "otosink: sample rate must be positive")
	}

	op := &oto.NewContextOptions{
		SampleRate:   cfg.Rate,
		ChannelCount: audio.Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(cfg.ActualLatency()) * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(audio.ErrInit, err)
	}
	<-ready

	s := &Sink{
		ctx:  ctx,
		ring: audio.NewRing(cfg.BufferSize()),
		perm: perm,
	}
	s.player = ctx.NewPlayer(s.ring)
	s.player.Play()

	logger.Logf(s.perm, "otosink", "requesting %dms latency, using %dms", cfg.Latency, cfg.ActualLatency())

	return s, nil
}

// Write implements the audio.Driver interface.
func (s *Sink) Write(data []byte) (int, error) {
	s.crit.Lock()
	paused := s.paused
	block := !s.nonblock
	s.crit.Unlock()

	if paused {
		return 0, nil
	}
	if err := s.ctx.Err(); err != nil {
		return 0, curated.Errorf(audio.ErrWrite, err)
	}
	return s.ring.Write(data, block), nil
}

// Stop implements the audio.Driver interface.
func (s *Sink) Stop() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.player.Pause()
	s.paused = true
	return true
}

// Start implements the audio.Driver interface.
func (s *Sink) Start() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.player.Play()
	s.paused = false
	return true
}

// Alive implements the audio.Driver interface.
func (s *Sink) Alive() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return !s.paused
}

// SetNonblock implements the audio.Driver interface.
func (s *Sink) SetNonblock(nonblock bool) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.nonblock = nonblock
}

// UseFloat implements the audio.Driver interface.
func (s *Sink) UseFloat() bool {
	return true
}

// WriteAvail implements the audio.Driver interface.
func (s *Sink) WriteAvail() int {
	return s.ring.Avail()
}

// BufferSize implements the audio.Driver interface.
func (s *Sink) BufferSize() int {
	return s.ring.Size()
}

// Free implements the audio.Driver interface.
func (s *Sink) Free() {
	s.ring.Close()
	if err := s.player.Close(); err != nil {
		logger.Log(s.perm, "otosink", err.Error())
	}
}

// Ident implements the audio.Driver interface.
func (s *Sink) Ident() string {
	return "oto"
}
