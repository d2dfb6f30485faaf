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

package audio

import (
	"sync"
)

// Ring is a fixed size buffer of audio data between a writer and a consumer.
// The consumer reads with Read(), which never blocks.
type Ring struct {
	crit sync.Mutex
	cond *sync.Cond

	buf    []byte
	start  int
	used   int
	closed bool
}

// NewRing is the preferred method of initialisation for the Ring type.
func NewRing(size int) *Ring {
	r := &Ring{
		buf: make([]byte, size),
	}
	r.cond = sync.NewCond(&r.crit)
	return r
}

// Size of the ring in bytes.
func (r *Ring) Size() int {
	return len(r.buf)
}

// Avail returns the free space in the ring.
func (r *Ring) Avail() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return len(r.buf) - r.used
}

// Used returns the number of bytes waiting to be read.
func (r *Ring) Used() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.used
}

// must be called with the lock held
func (r *Ring) push(p []byte) int {
	n := len(r.buf) - r.used
	if n > len(p) {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		r.buf[(r.start+r.used+i)%len(r.buf)] = p[i]
	}
	r.used += n
	return n
}

// Write data to the ring. If block is false, only the data that fits in the
// ring is written. Otherwise Write waits for the consumer to make space. A
// blocked Write returns early if the ring is closed.
func (r *Ring) Write(p []byte, block bool) int {
	r.crit.Lock()
	defer r.crit.Unlock()

	if r.closed || len(r.buf) == 0 {
		return 0
	}

	n := r.push(p)
	if !block {
		return n
	}

	for n < len(p) && !r.closed {
		r.cond.Wait()
		n += r.push(p[n:])
	}
	return n
}

// Read implements the io.Reader interface. The output is padded with silence
// if there isn't enough data in the ring. It never returns an error.
func (r *Ring) Read(p []byte) (int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	n := r.used
	if n > len(p) {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		p[i] = r.buf[(r.start+i)%len(r.buf)]
	}
	clear(p[n:])

	if n > 0 {
		r.start = (r.start + n) % len(r.buf)
		r.used -= n
		r.cond.Broadcast()
	}

	return len(p), nil
}

// Reset discards all data in the ring.
func (r *Ring) Reset() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.start = 0
	r.used = 0
	r.cond.Broadcast()
}

// Close the ring. Blocked writers are released and future writes write
// nothing.
func (r *Ring) Close() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.closed = true
	r.cond.Broadcast()
}
