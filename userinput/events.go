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

package userinput

import (
	"fmt"
	"strings"
)

// Source is a bitset describing the capabilities of the device that produced
// an event. A single device can report more than one capability.
type Source uint32

// List of valid Source flags.
const (
	SourceKeyboard Source = 1 << iota
	SourceDPad
	SourceGamepad
	SourceJoystick
	SourceTouchscreen
	SourceMouse
	SourceStylus
	SourceTrackball
	SourceTouchpad

	// SourceNone is the empty set of capabilities
	SourceNone Source = 0
)

var sourceNames = []string{
	"keyboard",
	"dpad",
	"gamepad",
	"joystick",
	"touchscreen",
	"mouse",
	"stylus",
	"trackball",
	"touchpad",
}

func (s Source) String() string {
	if s == SourceNone {
		return "none"
	}

	var n []string
	for i, name := range sourceNames {
		if s&(1<<i) != 0 {
			n = append(n, name)
		}
	}
	if s>>len(sourceNames) != 0 {
		n = append(n, fmt.Sprintf("%#x", uint32(s>>len(sourceNames)<<len(sourceNames))))
	}

	return strings.Join(n, "|")
}

// Has returns true if any of the flags in f are present in s.
func (s Source) Has(f Source) bool {
	return s&f != 0
}

// ParseSource converts the name of a single capability to a Source flag. The
// name is not case sensitive.
func ParseSource(name string) (Source, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sourceNames {
		if n == name {
			return 1 << i, nil
		}
	}
	return SourceNone, fmt.Errorf("userinput: unknown source (%s)", name)
}

// MotionAction is the action reported with a motion event.
type MotionAction int

// List of valid MotionAction values.
const (
	MotionDown MotionAction = iota
	MotionUp
	MotionMove
	MotionCancel
	MotionOutside
	MotionPointerDown
	MotionPointerUp
	MotionHoverMove
	MotionScroll
)

func (a MotionAction) String() string {
	switch a {
	case MotionDown:
		return "down"
	case MotionUp:
		return "up"
	case MotionMove:
		return "move"
	case MotionCancel:
		return "cancel"
	case MotionOutside:
		return "outside"
	case MotionPointerDown:
		return "pointer down"
	case MotionPointerUp:
		return "pointer up"
	case MotionHoverMove:
		return "hover move"
	case MotionScroll:
		return "scroll"
	}
	return fmt.Sprintf("motion action %d", int(a))
}

// KeyAction is the action reported with a key event.
type KeyAction int

// List of valid KeyAction values.
const (
	KeyDown KeyAction = iota
	KeyUp
	KeyMultiple
)

func (a KeyAction) String() string {
	switch a {
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeyMultiple:
		return "multiple"
	}
	return fmt.Sprintf("key action %d", int(a))
}

// Event represents all the different types of input event.
type Event interface {
	// Origin returns the raw device ID and the capabilities of the device
	// that produced the event
	Origin() (int, Source)
}

// EventMotion is produced by touch screens, mice and analog sticks.
//
// For analog sources X and Y are axis values in the range -1.0 to 1.0. For
// pointing sources they are in device coordinates and are translated by the
// viewport before being stored.
type EventMotion struct {
	Device  int
	Source  Source
	Action  MotionAction
	Pointer int
	X       float32
	Y       float32
}

// Origin implements the Event interface.
func (ev EventMotion) Origin() (int, Source) {
	return ev.Device, ev.Source
}

func (ev EventMotion) String() string {
	return fmt.Sprintf("motion %s [%d] %.3f,%.3f (dev %d %s)", ev.Action, ev.Pointer, ev.X, ev.Y, ev.Device, ev.Source)
}

// EventKey is produced by buttons and keyboard keys.
type EventKey struct {
	Device int
	Source Source
	Action KeyAction
	Code   KeyCode
}

// Origin implements the Event interface.
func (ev EventKey) Origin() (int, Source) {
	return ev.Device, ev.Source
}

func (ev EventKey) String() string {
	return fmt.Sprintf("key %s %s (dev %d %s)", ev.Code, ev.Action, ev.Device, ev.Source)
}
