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

package performance

import (
	"github.com/jetsetilly/retroinput/random"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/pointer"
)

// device IDs used by the synthetic event generator
const (
	synthKeyboard = 0x01
	synthTouch    = 0x03
	synthPad      = 0x10
)

// the number of pads the generator pretends are connected
const synthPads = 2

// Synth generates a stream of plausible input events. Events are produced
// in matching pairs where that matters: every key press is followed at some
// point by a release and every touch contact is eventually lifted.
type Synth struct {
	rnd *random.Random

	held    map[synthKey]bool
	fingers userinput.Fingers[int]
	nextID  int
}

type synthKey struct {
	device int
	code   userinput.KeyCode
}

// NewSynth is the preferred method of initialisation for the Synth type. The
// sequence is used to seed the random number generator.
func NewSynth(seq random.Sequence) *Synth {
	return &Synth{
		rnd:  random.NewRandom(seq),
		held: make(map[synthKey]bool),
	}
}

// Generate pushes n events onto the queue.
func (s *Synth) Generate(q *userinput.SliceQueue, n int) {
	// pad events in the same poll all come from the same pad
	pad := synthPad + s.rnd.Reproducible(synthPads)

	for i := 0; i < n; i++ {
		switch s.rnd.Intn(4) {
		case 0:
			q.Push(s.key(synthKeyboard, userinput.SourceKeyboard))
		case 1:
			q.Push(s.key(pad, userinput.SourceGamepad|userinput.SourceJoystick))
		case 2:
			q.Push(userinput.EventMotion{
				Device: pad,
				Source: userinput.SourceGamepad | userinput.SourceJoystick,
				Action: userinput.MotionMove,
				X:      s.axis(),
				Y:      s.axis(),
			})
		case 3:
			q.Push(s.touch())
		}
	}
}

// Release pushes release events for every key and contact that is still
// held.
func (s *Synth) Release(q *userinput.SliceQueue) {
	for k := range s.held {
		q.Push(userinput.EventKey{
			Device: k.device,
			Source: sourceOf(k.device),
			Action: userinput.KeyUp,
			Code:   k.code,
		})
	}
	clear(s.held)

	for s.fingers.Len() > 0 {
		id, _ := s.fingers.At(0)
		idx, action, _ := s.fingers.Up(id)
		q.Push(userinput.EventMotion{
			Device:  synthTouch,
			Source:  userinput.SourceTouchscreen,
			Action:  action,
			Pointer: idx,
		})
	}
}

func sourceOf(device int) userinput.Source {
	if device == synthKeyboard {
		return userinput.SourceKeyboard
	}
	return userinput.SourceGamepad | userinput.SourceJoystick
}

// axis values are spread either side of the threshold and occasionally out
// of range
func (s *Synth) axis() float32 {
	return float32(s.rnd.Intn(241)-120) / 100
}

func (s *Synth) key(device int, src userinput.Source) userinput.EventKey {
	k := synthKey{
		device: device,
		code:   userinput.KeyCode(1 + s.rnd.Intn(int(userinput.NumKeyCodes)-1)),
	}

	action := userinput.KeyDown
	if s.held[k] {
		action = userinput.KeyUp
		delete(s.held, k)
	} else {
		s.held[k] = true
	}

	return userinput.EventKey{
		Device: device,
		Source: src,
		Action: action,
		Code:   k.code,
	}
}

func (s *Synth) touch() userinput.EventMotion {
	ev := userinput.EventMotion{
		Device: synthTouch,
		Source: userinput.SourceTouchscreen,
		X:      float32(s.rnd.Intn(640)),
		Y:      float32(s.rnd.Intn(480)),
	}

	if n := s.fingers.Len(); n > 0 {
		id, _ := s.fingers.At(s.rnd.Intn(n))

		// lift a finger more often as more fingers are down
		if n >= pointer.MaxTouch || s.rnd.Intn(pointer.MaxTouch+1) < n {
			ev.Pointer, ev.Action, _ = s.fingers.Up(id)
			return ev
		}

		if s.rnd.Intn(2) == 0 {
			ev.Pointer, ev.Action, _ = s.fingers.Move(id)
			return ev
		}
	}

	s.nextID++
	ev.Pointer, ev.Action, _ = s.fingers.Down(s.nextID)
	return ev
}
