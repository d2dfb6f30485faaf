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

// Package sdlqueue implements the userinput.Queue interface for events read
// from SDL. Keyboard, joystick, touch and mouse events are translated into
// userinput events.
//
// SDL requires that events are read from the main thread. The Service()
// function should therefore be called from the main thread, once per frame
// and before the input driver is polled.
package sdlqueue

import (
	"fmt"

	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// device IDs for events that do not come from a joystick. joystick device
// IDs are the SDL instance ID offset by joystickBase
const (
	keyboardDevice = 0x01
	mouseDevice    = 0x02
	touchDevice    = 0x03
	joystickBase   = 0x10
)

// the source reported for joystick events
const joystickSource = userinput.SourceGamepad | userinput.SourceJoystick

// Queue implements the userinput.Queue interface.
type Queue struct {
	userinput.SliceQueue

	perm logger.Permission

	// the size of the window. touch events from SDL are normalised and need
	// to be scaled to device pixels
	width, height float32

	// joysticks opened by Open()
	pads []*sdl.GameController
	joys []*sdl.Joystick

	// the current position of the left stick of every joystick
	sticks map[sdl.JoystickID][2]float32

	fingers userinput.Fingers[sdl.FingerID]

	quit bool
}

// New is the preferred method of initialisation for the Queue type.
func New(width, height int32, perm logger.Permission) *Queue {
	return &Queue{
		perm:   perm,
		width:  float32(width),
		height: float32(height),
		sticks: make(map[sdl.JoystickID][2]float32),
	}
}

// OpenJoysticks opens every attached joystick. SDL must have been initialised
// with the joystick subsystem.
func (q *Queue) OpenJoysticks() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			pad := sdl.GameControllerOpen(i)
			if pad != nil && pad.Attached() {
				logger.Logf(q.perm, "sdlqueue", "gamepad: %s", pad.Joystick().Name())
				q.pads = append(q.pads, pad)
				continue
			}
		}
		joy := sdl.JoystickOpen(i)
		if joy != nil && joy.Attached() {
			logger.Logf(q.perm, "sdlqueue", "joystick: %s", joy.Name())
			q.joys = append(q.joys, joy)
		}
	}
}

// Close any open joysticks.
func (q *Queue) Close() {
	for _, p := range q.pads {
		p.Close()
	}
	for _, j := range q.joys {
		j.Close()
	}
	q.pads = q.pads[:0]
	q.joys = q.joys[:0]
}

// SetWindowSize should be called whenever the window changes size.
func (q *Queue) SetWindowSize(width, height int32) {
	q.width = float32(width)
	q.height = float32(height)
}

// Quit returns true if SDL has reported a quit event.
func (q *Queue) Quit() bool {
	return q.quit
}

// Service reads all pending events from SDL and adds them to the queue. Must
// be called from the main thread.
func (q *Queue) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		q.Translate(ev)
	}
}

// Translate a single SDL event and add the result to the queue. Events that
// have no meaning to the input driver are dropped.
func (q *Queue) Translate(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		q.quit = true

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			q.SetWindowSize(ev.Data1, ev.Data2)
		}

	case *sdl.KeyboardEvent:
		// key repeat is not an event for the driver. the key is held down
		// until the key up event
		if ev.Repeat != 0 {
			return
		}
		code, ok := scancodes[ev.Keysym.Scancode]
		if !ok {
			logger.Logf(q.perm, "sdlqueue", "unmapped scancode: %s", sdl.GetScancodeName(ev.Keysym.Scancode))
			return
		}
		act := userinput.KeyDown
		if ev.Type == sdl.KEYUP {
			act = userinput.KeyUp
		}
		q.Push(userinput.EventKey{
			Device: keyboardDevice,
			Source: userinput.SourceKeyboard,
			Action: act,
			Code:   code,
		})

	case *sdl.JoyButtonEvent:
		code, ok := joyButtons[ev.Button]
		if !ok {
			logger.Logf(q.perm, "sdlqueue", "unmapped joystick button: %d", ev.Button)
			return
		}
		act := userinput.KeyUp
		if ev.State == sdl.PRESSED {
			act = userinput.KeyDown
		}
		q.Push(userinput.EventKey{
			Device: joystickBase + int(ev.Which),
			Source: joystickSource,
			Action: act,
			Code:   code,
		})

	case *sdl.JoyHatEvent:
		q.hat(ev)

	case *sdl.JoyAxisEvent:
		// only the left stick drives the dpad emulation
		if ev.Axis > 1 {
			return
		}
		s := q.sticks[ev.Which]
		s[ev.Axis] = normaliseAxis(ev.Value)
		q.sticks[ev.Which] = s
		q.Push(userinput.EventMotion{
			Device: joystickBase + int(ev.Which),
			Source: joystickSource,
			Action: userinput.MotionMove,
			X:      s[0],
			Y:      s[1],
		})

	case *sdl.TouchFingerEvent:
		q.finger(ev)

	case *sdl.MouseButtonEvent:
		// mouse events synthesised from touch input duplicate the finger
		// events already sent to the pointer tracker
		if ev.Which == sdl.TOUCH_MOUSEID || ev.Button != sdl.BUTTON_LEFT {
			return
		}
		act := userinput.MotionUp
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			act = userinput.MotionDown
		}
		q.Push(userinput.EventMotion{
			Device: mouseDevice,
			Source: userinput.SourceMouse,
			Action: act,
			X:      float32(ev.X),
			Y:      float32(ev.Y),
		})

	case *sdl.MouseMotionEvent:
		if ev.Which == sdl.TOUCH_MOUSEID {
			return
		}
		// a mouse event that isn't a down event releases the pointer. motion
		// with the left button held is reported as a continued press
		act := userinput.MotionHoverMove
		if ev.State&sdl.ButtonLMask() != 0 {
			act = userinput.MotionDown
		}
		q.Push(userinput.EventMotion{
			Device: mouseDevice,
			Source: userinput.SourceMouse,
			Action: act,
			X:      float32(ev.X),
			Y:      float32(ev.Y),
		})
	}
}

// normalise an SDL axis value to the range -1.0 to 1.0
func normaliseAxis(v int16) float32 {
	if v < -32767 {
		v = -32767
	}
	return float32(v) / 32767
}

// the hat is converted to key events for the four directions. SDL reports the
// new hat position so every direction is sent
func (q *Queue) hat(ev *sdl.JoyHatEvent) {
	dirs := []struct {
		mask uint8
		code userinput.KeyCode
	}{
		{mask: sdl.HAT_UP, code: userinput.KeyDPadUp},
		{mask: sdl.HAT_DOWN, code: userinput.KeyDPadDown},
		{mask: sdl.HAT_LEFT, code: userinput.KeyDPadLeft},
		{mask: sdl.HAT_RIGHT, code: userinput.KeyDPadRight},
	}
	for _, d := range dirs {
		act := userinput.KeyUp
		if ev.Value&d.mask == d.mask {
			act = userinput.KeyDown
		}
		q.Push(userinput.EventKey{
			Device: joystickBase + int(ev.Which),
			Source: joystickSource,
			Action: act,
			Code:   d.code,
		})
	}
}

func (q *Queue) finger(ev *sdl.TouchFingerEvent) {
	var idx int
	var act userinput.MotionAction
	var ok bool

	switch ev.Type {
	case sdl.FINGERDOWN:
		idx, act, ok = q.fingers.Down(ev.FingerID)
	case sdl.FINGERUP:
		idx, act, ok = q.fingers.Up(ev.FingerID)
	case sdl.FINGERMOTION:
		idx, act, ok = q.fingers.Move(ev.FingerID)
	}
	if !ok {
		return
	}

	q.Push(userinput.EventMotion{
		Device:  touchDevice,
		Source:  userinput.SourceTouchscreen,
		Action:  act,
		Pointer: idx,
		X:       ev.X * q.width,
		Y:       ev.Y * q.height,
	})
}

func (q *Queue) String() string {
	return fmt.Sprintf("%d pending, %d fingers, %d joysticks", q.Len(), q.fingers.Len(), len(q.pads)+len(q.joys))
}
