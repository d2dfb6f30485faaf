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

package sdlsink_test

import (
	"testing"

	"github.com/jetsetilly/retroinput/audio"
	"github.com/jetsetilly/retroinput/audio/sdlsink"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/test"

	"github.com/veandco/go-sdl2/sdl"
)

// the test is skipped on machines without an audio device
func TestSink(t *testing.T) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		t.Skipf("no audio: %v", err)
	}
	defer sdl.QuitSubSystem(sdl.INIT_AUDIO)

	s, err := sdlsink.New(audio.Config{Rate: 48000, Latency: 16}, logger.Allow)
	if err != nil {
		t.Skipf("no audio: %v", err)
	}
	defer s.Free()

	var drv audio.Driver = s
	test.ExpectEquality(t, drv.BufferSize(), audio.Config{Rate: 48000, Latency: 16}.BufferSize())

	drv.SetNonblock(true)
	silence := make([]byte, drv.BufferSize()*2)
	n, err := drv.Write(silence)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, n <= drv.BufferSize())

	test.ExpectSuccess(t, drv.Stop())
	n, _ = drv.Write(silence)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, drv.Start())
	test.ExpectSuccess(t, drv.Alive())
}
