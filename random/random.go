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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Sequence is anything that counts. The number of polls made by the input
// driver is a good example.
type Sequence interface {
	Sequence() int64
}

// Random is a random number generator that is sensitive to a sequence.
type Random struct {
	seq Sequence

	// use zero seed rather than the random base seed. this is only really
	// useful when random numbers must be predictable
	ZeroSeed bool

	free *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seq Sequence) *Random {
	return &Random{
		seq:  seq,
		free: rand.New(rand.NewSource(baseSeed)),
	}
}

func (rnd *Random) seed() int64 {
	var s int64
	if rnd.seq != nil {
		s = rnd.seq.Sequence()
	}
	if rnd.ZeroSeed {
		return s
	}
	return baseSeed + s
}

// Reproducible returns a number in the range 0 to n-1. The same number is
// returned for the same sequence value and n.
func (rnd *Random) Reproducible(n int) int {
	return rand.New(rand.NewSource(rnd.seed() + int64(n))).Intn(n)
}

// Intn returns a number in the range 0 to n-1 regardless of the sequence.
func (rnd *Random) Intn(n int) int {
	return rnd.free.Intn(n)
}
