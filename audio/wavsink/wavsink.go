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

// Package wavsink implements the audio.Driver interface by writing audio data
// to disk as a WAV file. Note that audio data is buffered in memory in its
// entirity, and written to disk when the driver is closed. It is therefore
// probably only suitable for testing purposes.
package wavsink

import (
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/retroinput/audio"
	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
)

// Sink implements the audio.Driver interface.
type Sink struct {
	filename string
	cfg      audio.Config
	perm     logger.Permission

	buffer  []int
	stopped bool
}

// New is the preferred method of initialisation for the Sink type.
func New(filename string, cfg audio.Config, perm logger.Permission) (*Sink, error) {
	if cfg.Rate <= 0 {
		return nil, curated.Errorf(audio.ErrInit, "wavsink: sample rate must be positive")
	}
	if filename == "" {
		return nil, curated.Errorf(audio.ErrInit, "wavsink: no filename")
	}

	return &Sink{
		filename: filename,
		cfg:      cfg.Normalise(),
		perm:     perm,
	}, nil
}

// Write implements the audio.Driver interface. Writing never blocks.
func (s *Sink) Write(data []byte) (int, error) {
	if s.stopped {
		return 0, nil
	}
	s.buffer = append(s.buffer, audio.Int16(data)...)
	return len(data), nil
}

// Stop implements the audio.Driver interface. Audio written while the sink is
// stopped is discarded.
func (s *Sink) Stop() bool {
	s.stopped = true
	return true
}

// Start implements the audio.Driver interface.
func (s *Sink) Start() bool {
	s.stopped = false
	return true
}

// Alive implements the audio.Driver interface.
func (s *Sink) Alive() bool {
	return !s.stopped
}

// SetNonblock implements the audio.Driver interface. The sink never blocks.
func (s *Sink) SetNonblock(_ bool) {
}

// UseFloat implements the audio.Driver interface.
func (s *Sink) UseFloat() bool {
	return true
}

// WriteAvail implements the audio.Driver interface. The whole buffer is
// always available.
func (s *Sink) WriteAvail() int {
	return s.cfg.BufferSize()
}

// BufferSize implements the audio.Driver interface.
func (s *Sink) BufferSize() int {
	return s.cfg.BufferSize()
}

// Ident implements the audio.Driver interface.
func (s *Sink) Ident() string {
	return "wav"
}

// Samples returns the number of 16 bit samples that have been written.
func (s *Sink) Samples() int {
	return len(s.buffer)
}

// Free implements the audio.Driver interface. The WAV file is written and
// any error is logged.
func (s *Sink) Free() {
	if err := s.Close(); err != nil {
		logger.Log(s.perm, "wavsink", err.Error())
	}
}

// Close writes the buffered audio to the WAV file.
func (s *Sink) Close() (rerr error) {
	f, err := os.Create(s.filename)
	if err != nil {
		return curated.Errorf(audio.ErrWrite, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(audio.ErrWrite, err)
		}
	}()

	enc := wav.NewEncoder(f, s.cfg.Rate, 16, audio.Channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: audio.Channels,
			SampleRate:  s.cfg.Rate,
		},
		Data:           s.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(s.perm, "wavsink", "writing audio to %s", s.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(audio.ErrWrite, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(audio.ErrWrite, err)
	}

	return nil
}
