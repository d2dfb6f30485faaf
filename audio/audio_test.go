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

package audio_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/retroinput/audio"
	"github.com/jetsetilly/retroinput/test"
)

func TestConfig(t *testing.T) {
	c := audio.Config{Rate: 48000, Latency: 2}
	test.ExpectEquality(t, c.Normalise().Latency, audio.MinLatency)
	test.ExpectEquality(t, c.Frames(), 384)
	test.ExpectEquality(t, c.BufferSize(), 384*2*4)
	test.ExpectEquality(t, c.ActualLatency(), 8)

	c = audio.Config{Rate: 44100, Latency: 64}
	test.ExpectEquality(t, c.Frames(), 2822)
	test.ExpectEquality(t, c.ActualLatency(), 63)

	c = audio.Config{}
	test.ExpectEquality(t, c.BufferSize(), 0)
	test.ExpectEquality(t, c.ActualLatency(), 0)
}

func TestRing(t *testing.T) {
	r := audio.NewRing(8)
	test.ExpectEquality(t, r.Avail(), 8)

	// non-blocking writes are truncated
	test.ExpectEquality(t, r.Write([]byte{1, 2, 3, 4, 5, 6}, false), 6)
	test.ExpectEquality(t, r.Write([]byte{7, 8, 9, 10}, false), 2)
	test.ExpectEquality(t, r.Avail(), 0)

	p := make([]byte, 4)
	n, err := r.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, string(p), string([]byte{1, 2, 3, 4}))

	// data wraps around the end of the ring
	test.ExpectEquality(t, r.Write([]byte{11, 12}, false), 2)
	p = make([]byte, 8)
	_, _ = r.Read(p)
	test.ExpectEquality(t, string(p), string([]byte{5, 6, 7, 8, 11, 12, 0, 0}))

	// an empty ring reads silence
	_, _ = r.Read(p)
	test.ExpectEquality(t, string(p), string(make([]byte, 8)))
}

func TestRingBlocking(t *testing.T) {
	r := audio.NewRing(4)

	var wg sync.WaitGroup
	var n int
	wg.Add(1)
	go func() {
		defer wg.Done()
		n = r.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, true)
	}()

	// drain the ring until the writer has finished
	var got []byte
	done := make(chan bool)
	go func() {
		wg.Wait()
		close(done)
	}()
	p := make([]byte, 2)
	for len(got) < 10 {
		if r.Used() >= 2 {
			_, _ = r.Read(p)
			got = append(got, p...)
		}
	}
	<-done

	test.ExpectEquality(t, n, 10)
	test.ExpectEquality(t, string(got), string([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
}

func TestRingClose(t *testing.T) {
	r := audio.NewRing(2)
	done := make(chan int)
	go func() {
		done <- r.Write([]byte{1, 2, 3, 4}, true)
	}()
	for r.Avail() > 0 {
	}
	r.Close()
	test.ExpectEquality(t, <-done, 2)
	test.ExpectEquality(t, r.Write([]byte{1}, false), 0)
}

func TestConvert(t *testing.T) {
	b := audio.Float32(0.0, 1.0, -1.0, 2.0, 0.5)
	v := audio.Int16(b)
	test.DemandEquality(t, len(v), 5)
	test.ExpectEquality(t, v[0], 0)
	test.ExpectEquality(t, v[1], 32767)
	test.ExpectEquality(t, v[2], -32767)
	test.ExpectEquality(t, v[3], 32767)
	test.ExpectEquality(t, v[4], 16383)

	// partial samples are ignored
	test.ExpectEquality(t, len(audio.Int16(b[:7])), 1)
}

func TestTone(t *testing.T) {
	tone := audio.NewTone(8000, 1000)

	// silence is the right length
	b := tone.Frames(100, false)
	test.ExpectEquality(t, len(b), 100*audio.Channels*4)
	for _, v := range audio.Int16(b) {
		test.DemandEquality(t, v, 0)
	}

	// eight samples per cycle. the second frame is at 45 degrees and the
	// third is at the peak
	v := audio.Int16(tone.Frames(8, true))
	test.DemandEquality(t, len(v), 16)
	test.ExpectEquality(t, v[0], 0)
	test.ExpectEquality(t, v[0], v[1])
	test.ExpectSuccess(t, v[2] > 0)
	test.ExpectSuccess(t, v[4] >= 8190 && v[4] <= 8191)
	test.ExpectSuccess(t, v[12] < 0)

	test.ExpectEquality(t, len(tone.Frames(0, true)), 0)
}
