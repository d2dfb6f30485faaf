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

// Package joydevqueue implements the userinput.Queue interface for the Linux
// joystick API. Devices are the /dev/input/js* files. Each open device is
// read by its own goroutine and events are collected by Service().
//
// On other platforms Open() always fails.
package joydevqueue

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/userinput"
)

// DefaultDir is the directory that contains the joystick device files.
const DefaultDir = "/dev/input"

// Sentinel error patterns.
const (
	ErrOpen    = "joydevqueue: open: %v"
	ErrWatch   = "joydevqueue: watch: %v"
	ErrSupport = "joydevqueue: not supported on this platform"
)

// event types of the joystick API
const (
	typeButton = 0x01
	typeAxis   = 0x02
	typeInit   = 0x80
)

// RawEvent is an event as read from a joystick device file.
type RawEvent struct {
	Timestamp uint32
	Value     int16
	Type      uint8
	Index     uint8
}

const joystickSource = userinput.SourceGamepad | userinput.SourceJoystick

// axes reported by the xpad driver for the dpad
const (
	hatAxisX = 6
	hatAxisY = 7
)

// joystick buttons in the order used by the xpad driver
var joyButtons = map[uint8]userinput.KeyCode{
	0:  userinput.KeyButtonA,
	1:  userinput.KeyButtonB,
	2:  userinput.KeyButtonX,
	3:  userinput.KeyButtonY,
	4:  userinput.KeyButtonL1,
	5:  userinput.KeyButtonR1,
	6:  userinput.KeyButtonSelect,
	7:  userinput.KeyButtonStart,
	8:  userinput.KeyButtonMode,
	9:  userinput.KeyButtonThumbL,
	10: userinput.KeyButtonThumbR,
}

type taggedEvent struct {
	device int
	raw    RawEvent
}

// Queue implements the userinput.Queue interface.
type Queue struct {
	userinput.SliceQueue

	perm logger.Permission

	// events from the device goroutines
	events chan taggedEvent

	crit    sync.Mutex
	devices map[string]*device

	// device IDs by path. a reopened path keeps its ID
	ids    map[string]int
	nextID int

	// closed by Close() to stop the device goroutines
	done chan struct{}

	sticks map[int][2]float32
}

// New is the preferred method of initialisation for the Queue type. No
// devices are opened until Open() or Scan() is called.
func New(perm logger.Permission) *Queue {
	return &Queue{
		perm:    perm,
		events:  make(chan taggedEvent, 256),
		devices: make(map[string]*device),
		ids:     make(map[string]int),
		done:    make(chan struct{}),
		sticks:  make(map[int][2]float32),
	}
}

func (q *Queue) String() string {
	q.crit.Lock()
	defer q.crit.Unlock()
	return fmt.Sprintf("%d pending, %d devices", q.Len(), len(q.devices))
}

// Devices returns the number of open devices.
func (q *Queue) Devices() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.devices)
}

// Service collects events read by the device goroutines and adds them to the
// queue. Does not block.
func (q *Queue) Service() {
	for {
		select {
		case ev := <-q.events:
			q.Translate(ev.device, ev.raw)
		default:
			return
		}
	}
}

// Translate a raw event from the numbered device and add the result to the
// queue.
func (q *Queue) Translate(dev int, raw RawEvent) {
	switch raw.Type &^ typeInit {
	case typeButton:
		code, ok := joyButtons[raw.Index]
		if !ok {
			logger.Logf(q.perm, "joydevqueue", "unmapped button: %d", raw.Index)
			return
		}
		// the initial state of a button is only interesting if it's pressed
		if raw.Type&typeInit == typeInit && raw.Value == 0 {
			return
		}
		act := userinput.KeyUp
		if raw.Value != 0 {
			act = userinput.KeyDown
		}
		q.Push(userinput.EventKey{Device: dev, Source: joystickSource, Action: act, Code: code})

	case typeAxis:
		switch raw.Index {
		case 0, 1:
			s := q.sticks[dev]
			s[raw.Index] = normaliseAxis(raw.Value)
			q.sticks[dev] = s
			q.Push(userinput.EventMotion{
				Device: dev,
				Source: joystickSource,
				Action: userinput.MotionMove,
				X:      s[0],
				Y:      s[1],
			})
		case hatAxisX:
			q.hat(dev, raw.Value, userinput.KeyDPadLeft, userinput.KeyDPadRight)
		case hatAxisY:
			q.hat(dev, raw.Value, userinput.KeyDPadUp, userinput.KeyDPadDown)
		}
	}
}

func (q *Queue) hat(dev int, v int16, neg, pos userinput.KeyCode) {
	negAct, posAct := userinput.KeyUp, userinput.KeyUp
	if v < 0 {
		negAct = userinput.KeyDown
	} else if v > 0 {
		posAct = userinput.KeyDown
	}
	q.Push(userinput.EventKey{Device: dev, Source: joystickSource, Action: negAct, Code: neg})
	q.Push(userinput.EventKey{Device: dev, Source: joystickSource, Action: posAct, Code: pos})
}

func normaliseAxis(v int16) float32 {
	if v < -32767 {
		v = -32767
	}
	return float32(v) / 32767
}
