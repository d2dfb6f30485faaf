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

// Package sdlsink implements the audio.Driver interface with SDL queued
// audio. The SDL audio subsystem is initialised if necessary.
package sdlsink

import (
	"time"

	"github.com/jetsetilly/retroinput/audio"
	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// bytes in a stereo float32 frame. writes to the SDL queue are always whole
// frames
const frameSize = audio.Channels * 4

// how long a blocking write waits before checking the queue again
const blockingWait = time.Millisecond

// Sink implements the audio.Driver interface.
type Sink struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	perm logger.Permission

	bufferSize int
	nonblock   bool
	paused     bool

	// the audio subsystem was initialised by New() and must be shut down
	// by Free()
	subsystem bool
}

// the number of samples in the SDL callback buffer must be a power of two
func samples(frames int) uint16 {
	s := 1
	for s*2 <= frames && s < 1<<15 {
		s *= 2
	}
	return uint16(s)
}

// New is the preferred method of initialisation for the Sink type.
func New(cfg audio.Config, perm logger.Permission) (*Sink, error) {
	cfg = cfg.Normalise()
	if cfg.Rate <= 0 {
		return nil, curated.Errorf(audio.ErrInit, "sdlsink: sample rate must be positive")
	}

	s := &Sink{
		perm:       perm,
		bufferSize: cfg.BufferSize(),
	}

	if sdl.WasInit(sdl.INIT_AUDIO) == 0 {
		if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
			return nil, curated.Errorf(audio.ErrInit, err)
		}
		s.subsystem = true
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(cfg.Rate),
		Format:   sdl.AUDIO_F32SYS,
		Channels: audio.Channels,
		Samples:  samples(cfg.Frames()),
	}

	var err error
	s.id, err = sdl.OpenAudioDevice(cfg.Device, false, spec, &s.spec, 0)
	if err != nil {
		if s.subsystem {
			sdl.QuitSubSystem(sdl.INIT_AUDIO)
		}
		return nil, curated.Errorf(audio.ErrInit, err)
	}

	logger.Logf(s.perm, "sdlsink", "requesting %dms latency, using %dms", cfg.Latency, cfg.ActualLatency())

	sdl.PauseAudioDevice(s.id, false)

	return s, nil
}

// Write implements the audio.Driver interface.
func (s *Sink) Write(data []byte) (int, error) {
	if s.paused {
		return 0, nil
	}

	var n int
	for n < len(data) {
		avail := s.WriteAvail()
		if avail == 0 {
			if s.nonblock {
				break
			}
			time.Sleep(blockingWait)
			continue
		}

		end := n + avail
		if end > len(data) {
			end = len(data)
		}
		if err := sdl.QueueAudio(s.id, data[n:end]); err != nil {
			return n, curated.Errorf(audio.ErrWrite, err)
		}
		n = end

		if s.nonblock {
			break
		}
	}

	return n, nil
}

// Stop implements the audio.Driver interface.
func (s *Sink) Stop() bool {
	sdl.PauseAudioDevice(s.id, true)
	s.paused = true
	return true
}

// Start implements the audio.Driver interface.
func (s *Sink) Start() bool {
	sdl.PauseAudioDevice(s.id, false)
	s.paused = false
	return true
}

// Alive implements the audio.Driver interface.
func (s *Sink) Alive() bool {
	return !s.paused
}

// SetNonblock implements the audio.Driver interface.
func (s *Sink) SetNonblock(nonblock bool) {
	s.nonblock = nonblock
}

// UseFloat implements the audio.Driver interface.
func (s *Sink) UseFloat() bool {
	return true
}

// WriteAvail implements the audio.Driver interface.
func (s *Sink) WriteAvail() int {
	avail := s.bufferSize - int(sdl.GetQueuedAudioSize(s.id))
	if avail < 0 {
		return 0
	}
	return avail - avail%frameSize
}

// BufferSize implements the audio.Driver interface.
func (s *Sink) BufferSize() int {
	return s.bufferSize
}

// Free implements the audio.Driver interface.
func (s *Sink) Free() {
	sdl.ClearQueuedAudio(s.id)
	sdl.CloseAudioDevice(s.id)
	if s.subsystem {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
	}
}

// Ident implements the audio.Driver interface.
func (s *Sink) Ident() string {
	return "sdl"
}
