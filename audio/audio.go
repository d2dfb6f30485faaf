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

// Package audio defines the contract for audio output drivers. Audio is
// written as interleaved stereo samples, as little-endian float32 values when
// the driver reports UseFloat() and as little-endian int16 values otherwise.
//
// Implementations are in the sub-packages: wavsink writes to a WAV file,
// sdlsink uses SDL queued audio and otosink uses the oto library.
package audio

import (
	"fmt"
)

// Sentinel error patterns.
const (
	ErrInit  = "audio: init: %v"
	ErrWrite = "audio: write: %v"
)

// MinLatency is the lowest latency, in milliseconds, that a driver will use.
const MinLatency = 8

// Channels is the number of channels in the audio stream.
const Channels = 2

// bytes in a float32 sample
const sampleSize = 4

// Config is the requested configuration of an audio driver.
type Config struct {
	// name of the output device. the meaning is specific to the driver and
	// the empty string is the default device
	Device string

	// sample rate in Hz
	Rate int

	// requested latency in milliseconds
	Latency int
}

func (c Config) String() string {
	return fmt.Sprintf("%dHz %dms (%s)", c.Rate, c.Latency, c.Device)
}

// Normalise returns the configuration with the latency raised to MinLatency
// if necessary.
func (c Config) Normalise() Config {
	if c.Latency < MinLatency {
		c.Latency = MinLatency
	}
	return c
}

// Frames is the number of stereo frames in the buffer for the normalised
// configuration.
func (c Config) Frames() int {
	c = c.Normalise()
	return c.Latency * c.Rate / 1000
}

// BufferSize is the size in bytes of the buffer for the normalised
// configuration. The buffer always holds float32 samples.
func (c Config) BufferSize() int {
	return c.Frames() * Channels * sampleSize
}

// ActualLatency is the latency in milliseconds that results from the size of
// the buffer. It may be lower than the requested latency because of rounding.
func (c Config) ActualLatency() int {
	if c.Rate <= 0 {
		return 0
	}
	return c.Frames() * 1000 / c.Rate
}

// Driver is the contract for audio output.
type Driver interface {
	// Write audio data. In non-blocking mode, Write() writes as much as will
	// fit in the buffer and returns the number of bytes written. Otherwise
	// it waits until all the data has been written. Writing to a stopped
	// driver writes nothing.
	Write(data []byte) (int, error)

	// Stop and Start the output. Returns false if the state could not be
	// changed.
	Stop() bool
	Start() bool

	// Alive returns true if output has not been stopped.
	Alive() bool

	SetNonblock(nonblock bool)

	// UseFloat returns true if data should be float32 samples.
	UseFloat() bool

	// WriteAvail returns the number of bytes that can be written without
	// blocking.
	WriteAvail() int

	// BufferSize returns the size of the output buffer in bytes.
	BufferSize() int

	Free()

	// Ident is the short name of the driver.
	Ident() string
}
