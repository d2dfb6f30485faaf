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

// Package ebitenqueue implements the userinput.Queue interface for ebiten.
//
// Ebiten does not deliver events. Instead, input state is read once per tick
// with ReadFrame() and the differences are converted into events by Apply().
// Both should be called from the Update() function of the ebiten.Game.
package ebitenqueue

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/userinput"
)

const (
	keyboardDevice = 0x01
	mouseDevice    = 0x02
	touchDevice    = 0x03
	gamepadBase    = 0x10
)

const gamepadSource = userinput.SourceGamepad | userinput.SourceJoystick

// Pad is the state of one gamepad for a single tick.
type Pad struct {
	ID   ebiten.GamepadID
	Down []ebiten.StandardGamepadButton
	Up   []ebiten.StandardGamepadButton

	// position of the left stick
	X, Y float64
}

// Touch is a touch contact and its position.
type Touch struct {
	ID   ebiten.TouchID
	X, Y int
}

// Frame is the change in input state for a single tick.
type Frame struct {
	KeysDown []ebiten.Key
	KeysUp   []ebiten.Key

	Pads []Pad

	// touches that started, ended or continued during the tick
	TouchesDown []Touch
	TouchesUp   []ebiten.TouchID
	Touches     []Touch

	MouseDown bool
	MouseUp   bool
	MouseHeld bool
	MouseX    int
	MouseY    int
}

// ReadFrame reads the input state from ebiten. Must be called from the
// Update() function of the ebiten.Game.
func ReadFrame() Frame {
	var f Frame

	f.KeysDown = inpututil.AppendJustPressedKeys(f.KeysDown)
	f.KeysUp = inpututil.AppendJustReleasedKeys(f.KeysUp)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		f.Pads = append(f.Pads, Pad{
			ID:   id,
			Down: inpututil.AppendJustPressedStandardGamepadButtons(id, nil),
			Up:   inpututil.AppendJustReleasedStandardGamepadButtons(id, nil),
			X:    ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y:    ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		})
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		f.TouchesDown = append(f.TouchesDown, Touch{ID: id, X: x, Y: y})
	}
	f.TouchesUp = inpututil.AppendJustReleasedTouchIDs(nil)
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		f.Touches = append(f.Touches, Touch{ID: id, X: x, Y: y})
	}

	f.MouseDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	f.MouseUp = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	f.MouseHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	f.MouseX, f.MouseY = ebiten.CursorPosition()

	return f
}

// Queue implements the userinput.Queue interface.
type Queue struct {
	userinput.SliceQueue

	perm logger.Permission

	fingers userinput.Fingers[ebiten.TouchID]
	touches map[ebiten.TouchID]Touch
	sticks  map[ebiten.GamepadID][2]float64

	mouseX, mouseY int
}

// New is the preferred method of initialisation for the Queue type.
func New(perm logger.Permission) *Queue {
	return &Queue{
		perm:    perm,
		touches: make(map[ebiten.TouchID]Touch),
		sticks:  make(map[ebiten.GamepadID][2]float64),
	}
}

func (q *Queue) String() string {
	return fmt.Sprintf("%d pending, %d touches, %d gamepads", q.Len(), q.fingers.Len(), len(q.sticks))
}

// Apply converts the frame to events and adds them to the queue.
func (q *Queue) Apply(f Frame) {
	q.keys(f.KeysDown, userinput.KeyDown)
	q.keys(f.KeysUp, userinput.KeyUp)

	for _, p := range f.Pads {
		q.pad(p)
	}

	q.touch(f)
	q.mouse(f)
}

func (q *Queue) keys(keys []ebiten.Key, act userinput.KeyAction) {
	for _, k := range keys {
		code, ok := keyCodes[k]
		if !ok {
			logger.Logf(q.perm, "ebitenqueue", "unmapped key: %s", k)
			continue
		}
		q.Push(userinput.EventKey{
			Device: keyboardDevice,
			Source: userinput.SourceKeyboard,
			Action: act,
			Code:   code,
		})
	}
}

func (q *Queue) pad(p Pad) {
	dev := gamepadBase + int(p.ID)

	for _, b := range p.Down {
		if code, ok := padCodes[b]; ok {
			q.Push(userinput.EventKey{Device: dev, Source: gamepadSource, Action: userinput.KeyDown, Code: code})
		}
	}
	for _, b := range p.Up {
		if code, ok := padCodes[b]; ok {
			q.Push(userinput.EventKey{Device: dev, Source: gamepadSource, Action: userinput.KeyUp, Code: code})
		}
	}

	// stick motion is only sent when it changes
	s, seen := q.sticks[p.ID]
	if seen && s[0] == p.X && s[1] == p.Y {
		return
	}
	q.sticks[p.ID] = [2]float64{p.X, p.Y}
	q.Push(userinput.EventMotion{
		Device: dev,
		Source: gamepadSource,
		Action: userinput.MotionMove,
		X:      float32(p.X),
		Y:      float32(p.Y),
	})
}

func (q *Queue) pushTouch(idx int, act userinput.MotionAction, t Touch) {
	q.Push(userinput.EventMotion{
		Device:  touchDevice,
		Source:  userinput.SourceTouchscreen,
		Action:  act,
		Pointer: idx,
		X:       float32(t.X),
		Y:       float32(t.Y),
	})
}

func (q *Queue) touch(f Frame) {
	for _, id := range f.TouchesUp {
		idx, act, ok := q.fingers.Up(id)
		if !ok {
			continue
		}
		q.pushTouch(idx, act, q.touches[id])
		delete(q.touches, id)
	}

	for _, t := range f.TouchesDown {
		idx, act, ok := q.fingers.Down(t.ID)
		if !ok {
			continue
		}
		q.touches[t.ID] = t
		q.pushTouch(idx, act, t)
	}

	for _, t := range f.Touches {
		prev, ok := q.touches[t.ID]
		if !ok || prev == t {
			continue
		}
		idx, act, ok := q.fingers.Move(t.ID)
		if !ok {
			continue
		}
		q.touches[t.ID] = t
		q.pushTouch(idx, act, t)
	}
}

func (q *Queue) mouse(f Frame) {
	moved := f.MouseX != q.mouseX || f.MouseY != q.mouseY
	q.mouseX = f.MouseX
	q.mouseY = f.MouseY

	var act userinput.MotionAction
	switch {
	case f.MouseDown:
		act = userinput.MotionDown
	case f.MouseUp:
		act = userinput.MotionUp
	case moved && f.MouseHeld:
		act = userinput.MotionDown
	case moved:
		act = userinput.MotionHoverMove
	default:
		return
	}

	q.Push(userinput.EventMotion{
		Device: mouseDevice,
		Source: userinput.SourceMouse,
		Action: act,
		X:      float32(f.MouseX),
		Y:      float32(f.MouseY),
	})
}
