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

// Package assert contains checks that should never fail in a correctly
// written program. They are used to catch misuse of functions that have
// threading requirements.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Thread remembers the goroutine it was created on.
type Thread struct {
	id uint64
}

// NewThread returns a Thread for the current goroutine.
func NewThread() Thread {
	return Thread{id: GoroutineID()}
}

// Same returns true if it is called from the goroutine the Thread was created
// on.
func (t Thread) Same() bool {
	return t.id == GoroutineID()
}
