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

import "math"

// Tone generates a sine wave as stereo float32 sample data. The phase is kept
// between calls so that the wave is continuous. When the tone is off the
// samples are silent.
type Tone struct {
	Freq   float64
	Volume float32

	rate  int
	phase float64
}

// NewTone is the preferred method of initialisation for the Tone type.
func NewTone(rate int, freq float64) *Tone {
	return &Tone{
		Freq:   freq,
		Volume: 0.25,
		rate:   rate,
	}
}

// Frames returns sample data for the number of stereo frames.
func (t *Tone) Frames(frames int, on bool) []byte {
	if frames <= 0 || t.rate <= 0 {
		return nil
	}

	s := make([]float32, frames*Channels)
	if !on {
		t.phase = 0
		return Float32(s...)
	}

	step := 2 * math.Pi * t.Freq / float64(t.rate)
	for i := 0; i < frames; i++ {
		v := t.Volume * float32(math.Sin(t.phase))
		s[i*Channels] = v
		s[i*Channels+1] = v
		t.phase = math.Mod(t.phase+step, 2*math.Pi)
	}

	return Float32(s...)
}
