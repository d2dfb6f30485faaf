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
	"encoding/binary"
	"math"
)

// Int16 converts float32 sample data to 16 bit integer values. Samples are
// clamped to the range -1.0 to 1.0. Trailing bytes that do not make a whole
// sample are ignored.
func Int16(data []byte) []int {
	out := make([]int, len(data)/sampleSize)
	for i := range out {
		f := math.Float32frombits(binary.LittleEndian.Uint32(data[i*sampleSize:]))
		if f > 1.0 {
			f = 1.0
		} else if f < -1.0 {
			f = -1.0
		}
		out[i] = int(f * math.MaxInt16)
	}
	return out
}

// Float32 converts float32 values to little-endian sample data.
func Float32(samples ...float32) []byte {
	out := make([]byte, len(samples)*sampleSize)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*sampleSize:], math.Float32bits(s))
	}
	return out
}
