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

package wavsink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/retroinput/audio"
	"github.com/jetsetilly/retroinput/audio/wavsink"
	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/test"
)

func TestSink(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "out.wav")

	var drv audio.Driver
	s, err := wavsink.New(pth, audio.Config{Rate: 22050, Latency: 4}, logger.Allow)
	test.DemandSuccess(t, err)
	drv = s

	test.ExpectEquality(t, drv.BufferSize(), audio.Config{Rate: 22050, Latency: 8}.BufferSize())
	test.ExpectSuccess(t, drv.UseFloat())
	test.ExpectSuccess(t, drv.Alive())

	n, err := drv.Write(audio.Float32(0.5, -0.5, 0.25, -0.25))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 16)

	// audio written while stopped is lost
	test.ExpectSuccess(t, drv.Stop())
	test.ExpectFailure(t, drv.Alive())
	n, _ = drv.Write(audio.Float32(1.0, 1.0))
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, drv.Start())

	test.ExpectEquality(t, s.Samples(), 4)
	test.DemandSuccess(t, s.Close())

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.SampleRate), 22050)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
}

func TestBadConfig(t *testing.T) {
	_, err := wavsink.New("x.wav", audio.Config{}, logger.Allow)
	test.ExpectSuccess(t, curated.Is(err, audio.ErrInit))
	_, err = wavsink.New("", audio.Config{Rate: 44100}, logger.Allow)
	test.ExpectSuccess(t, curated.Is(err, audio.ErrInit))
}
