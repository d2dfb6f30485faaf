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

package driver_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/retroinput/test"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/controls"
	"github.com/jetsetilly/retroinput/userinput/devices"
	"github.com/jetsetilly/retroinput/userinput/driver"
	"github.com/jetsetilly/retroinput/userinput/keybinds"
	"github.com/jetsetilly/retroinput/userinput/pointer"
)

func newDriver(t *testing.T, opts driver.Options) *driver.Driver {
	t.Helper()
	d, err := driver.New(opts)
	test.DemandSuccess(t, err)
	return d
}

func key(dev int, code userinput.KeyCode, action userinput.KeyAction) userinput.EventKey {
	return userinput.EventKey{Device: dev, Source: userinput.SourceGamepad, Action: action, Code: code}
}

func stick(dev int, x, y float32) userinput.EventMotion {
	return userinput.EventMotion{Device: dev, Source: userinput.SourceJoystick, Action: userinput.MotionMove, X: x, Y: y}
}

func touch(action userinput.MotionAction, index int, x, y float32) userinput.EventMotion {
	return userinput.EventMotion{Device: 1, Source: userinput.SourceTouchscreen, Action: action, Pointer: index, X: x, Y: y}
}

func poll(d *driver.Driver, ev ...userinput.Event) *userinput.SliceQueue {
	q := &userinput.SliceQueue{}
	q.Push(ev...)
	d.Poll(q)
	return q
}

func joypad(d *driver.Driver, port uint, b controls.Button) int16 {
	return d.State(port, driver.DeviceJoypad, 0, uint(b))
}

func TestKeyDownUp(t *testing.T) {
	d := newDriver(t, driver.Options{})

	poll(d, key(0, userinput.KeyButtonA, userinput.KeyDown))
	test.ExpectEquality(t, joypad(d, 0, controls.A), int16(1))
	test.ExpectEquality(t, joypad(d, 0, controls.B), int16(0))

	// state persists across empty polls
	poll(d)
	test.ExpectEquality(t, joypad(d, 0, controls.A), int16(1))

	poll(d, key(0, userinput.KeyButtonA, userinput.KeyUp))
	test.ExpectEquality(t, joypad(d, 0, controls.A), int16(0))

	// key multiple is neither a press nor a release
	poll(d, key(0, userinput.KeyButtonB, userinput.KeyMultiple))
	test.ExpectEquality(t, joypad(d, 0, controls.B), int16(0))
}

func TestDuplicateKeyDown(t *testing.T) {
	d := newDriver(t, driver.Options{})

	poll(d,
		key(0, userinput.KeyButtonX, userinput.KeyDown),
		key(0, userinput.KeyButtonX, userinput.KeyDown),
	)
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(1<<uint(controls.X)))

	// a single release clears the button
	poll(d, key(0, userinput.KeyButtonX, userinput.KeyUp))
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(0))
}

func TestUnmappedKey(t *testing.T) {
	d := newDriver(t, driver.Options{})

	q := poll(d,
		key(0, userinput.KeyUnknown, userinput.KeyDown),
		key(0, userinput.KeySearch, userinput.KeyDown),
	)
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(0))
	test.ExpectEquality(t, d.Lifecycle(), controls.Lifecycle(0))

	// unmapped keys are still handled
	test.ExpectEquality(t, len(q.Unhandled()), 0)

	_, err := d.Decode(0, userinput.KeySearch)
	test.ExpectFailure(t, err)
	b, err := d.Decode(0, userinput.KeyButtonStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, controls.ButtonBinding(controls.Start))
}

func TestPortQueries(t *testing.T) {
	d := newDriver(t, driver.Options{})

	// nothing is connected so nothing is pressed
	test.ExpectEquality(t, joypad(d, 0, controls.A), int16(0))

	poll(d,
		key(5, userinput.KeyButtonStart, userinput.KeyDown),
		key(6, userinput.KeyButtonSelect, userinput.KeyDown),
	)
	test.ExpectEquality(t, d.Connected(), 2)
	test.ExpectEquality(t, joypad(d, 0, controls.Start), int16(1))
	test.ExpectEquality(t, joypad(d, 0, controls.Select), int16(0))
	test.ExpectEquality(t, joypad(d, 1, controls.Select), int16(1))

	// out of range queries
	test.ExpectEquality(t, joypad(d, 2, controls.Select), int16(0))
	test.ExpectEquality(t, joypad(d, 100, controls.Select), int16(0))
	test.ExpectEquality(t, d.State(0, driver.DeviceJoypad, 0, 99), int16(0))
	test.ExpectEquality(t, d.State(0, driver.DeviceMouse, 0, 0), int16(0))
	test.ExpectEquality(t, d.State(0, driver.DeviceClass(42), 0, 0), int16(0))
}

func TestJoyKeyMask(t *testing.T) {
	d := newDriver(t, driver.Options{})
	poll(d, key(0, userinput.KeyButtonA, userinput.KeyDown))

	// remapping the joykey changes which state bit the query tests
	test.DemandSuccess(t, d.Bindings().SetJoyKey(0, controls.B, 1<<uint(controls.A)))
	test.ExpectEquality(t, joypad(d, 0, controls.B), int16(1))

	test.DemandSuccess(t, d.Bindings().SetJoyKey(0, controls.A, 0))
	test.ExpectEquality(t, joypad(d, 0, controls.A), int16(0))
}

func TestSharedLowByte(t *testing.T) {
	d := newDriver(t, driver.Options{})

	poll(d,
		key(0x10001, userinput.KeyButtonA, userinput.KeyDown),
		key(0x00001, userinput.KeyButtonB, userinput.KeyDown),
	)
	test.ExpectEquality(t, d.Connected(), 1)
	test.ExpectEquality(t, joypad(d, 0, controls.A), int16(1))
	test.ExpectEquality(t, joypad(d, 0, controls.B), int16(1))
}

func TestPlayersExhausted(t *testing.T) {
	d := newDriver(t, driver.Options{})

	for i := 0; i < devices.MaxPlayers; i++ {
		poll(d, key(i, userinput.KeyButtonY, userinput.KeyUp))
	}
	test.ExpectEquality(t, d.PollStats().AliasedDevices, 0)

	// the fifth device shares the last slot
	poll(d, key(50, userinput.KeyButtonL1, userinput.KeyDown))
	test.ExpectEquality(t, d.Connected(), devices.MaxPlayers)
	test.ExpectEquality(t, d.PollStats().AliasedDevices, 1)
	test.ExpectEquality(t, joypad(d, devices.MaxPlayers-1, controls.L), int16(1))
}

func TestAnalogThreshold(t *testing.T) {
	d := newDriver(t, driver.Options{})

	poll(d, stick(0, 0.9, 0.0))
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(1<<uint(controls.Right)))

	// exactly at the threshold does not press
	poll(d, stick(0, 0.80, -0.80))
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(0))

	poll(d, stick(0, -0.81, -0.81))
	test.ExpectSuccess(t, d.Buttons(0).IsSet(controls.Left))
	test.ExpectSuccess(t, d.Buttons(0).IsSet(controls.Up))
	test.ExpectFailure(t, d.Buttons(0).IsSet(controls.Right))
	test.ExpectFailure(t, d.Buttons(0).IsSet(controls.Down))

	poll(d, stick(0, 0.0, 1.0))
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(1<<uint(controls.Down)))

	// sticks reporting past full deflection still press
	poll(d, stick(0, 1.5, 0.0))
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(1<<uint(controls.Right)))

	poll(d, stick(0, 1.02, -1.05))
	test.ExpectSuccess(t, d.Buttons(0).IsSet(controls.Right))
	test.ExpectSuccess(t, d.Buttons(0).IsSet(controls.Up))
}

func TestAnalogLeavesOtherButtons(t *testing.T) {
	d := newDriver(t, driver.Options{})

	poll(d, key(0, userinput.KeyButtonA, userinput.KeyDown), stick(0, 0.0, -0.95))
	test.ExpectSuccess(t, d.Buttons(0).IsSet(controls.A))
	test.ExpectSuccess(t, d.Buttons(0).IsSet(controls.Up))

	// returning the stick to centre releases only the directions
	poll(d, stick(0, 0, 0))
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(1<<uint(controls.A)))
}

func TestDPadEmulationNone(t *testing.T) {
	d := newDriver(t, driver.Options{})

	// bind the device and then disable emulation for its slot
	poll(d, key(0, userinput.KeyUnknown, userinput.KeyDown))
	test.DemandSuccess(t, d.Bindings().SetDPadEmulation(0, keybinds.DPadEmulationNone))

	q := poll(d, stick(0, 1.0, 0.0))
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(0))
	test.ExpectEquality(t, q.Finished(), 1)
	test.ExpectEquality(t, len(q.Unhandled()), 0)
}

func TestEdgeTriggeredMeta(t *testing.T) {
	d := newDriver(t, driver.Options{})

	poll(d,
		key(0, userinput.KeyF2, userinput.KeyDown),
		key(0, userinput.KeyP, userinput.KeyDown),
	)
	test.ExpectSuccess(t, d.KeyPressed(controls.SaveState))
	test.ExpectSuccess(t, d.KeyPressed(controls.Pause))

	// an empty poll clears the edge triggered action but not the held action
	poll(d)
	test.ExpectFailure(t, d.KeyPressed(controls.SaveState))
	test.ExpectSuccess(t, d.KeyPressed(controls.Pause))

	poll(d, key(0, userinput.KeyP, userinput.KeyUp))
	test.ExpectFailure(t, d.KeyPressed(controls.Pause))
}

type overlay uint64

func (o overlay) Mask() uint64 {
	return uint64(o)
}

func TestOverlayMeta(t *testing.T) {
	o := overlay(controls.Menu.Mask())
	d := newDriver(t, driver.Options{Overlay: o})

	test.ExpectSuccess(t, d.KeyPressed(controls.Menu))
	test.ExpectFailure(t, d.KeyPressed(controls.Quit))

	// overlay state is not part of the lifecycle
	test.ExpectEquality(t, d.Lifecycle(), controls.Lifecycle(0))
}

func TestVolumeKeysPassThrough(t *testing.T) {
	d := newDriver(t, driver.Options{})

	q := poll(d,
		key(0, userinput.KeyVolumeUp, userinput.KeyDown),
		key(0, userinput.KeyButtonA, userinput.KeyDown),
	)
	test.DemandEquality(t, len(q.Unhandled()), 1)
	test.ExpectEquality(t, q.Unhandled()[0], userinput.Event(key(0, userinput.KeyVolumeUp, userinput.KeyDown)))

	// the key is still applied
	test.ExpectSuccess(t, d.KeyPressed(controls.VolumeUp))

	d.ClearPassThrough()
	q = poll(d, key(0, userinput.KeyVolumeDown, userinput.KeyDown))
	test.ExpectEquality(t, len(q.Unhandled()), 0)
}

func TestVolumeKeysPreference(t *testing.T) {
	p, err := driver.NewPreferencesFromFile(t.TempDir() + "/prefs")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.VolumeKeys.Set(false))

	d := newDriver(t, driver.Options{Prefs: p})
	q := poll(d, key(0, userinput.KeyVolumeUp, userinput.KeyDown))
	test.ExpectEquality(t, len(q.Unhandled()), 0)
}

func TestTouchContacts(t *testing.T) {
	d := newDriver(t, driver.Options{})

	poll(d,
		touch(userinput.MotionDown, 0, 10, 20),
		touch(userinput.MotionPointerDown, 1, 30, 40),
		touch(userinput.MotionPointerDown, 2, 50, 60),
	)
	test.ExpectEquality(t, d.State(0, driver.DevicePointer, 2, driver.PointerPressed), int16(1))
	test.ExpectEquality(t, d.State(0, driver.DevicePointer, 3, driver.PointerPressed), int16(0))
	test.ExpectEquality(t, d.State(0, driver.DevicePointer, 1, driver.PointerX), int16(30))
	test.ExpectEquality(t, d.State(0, driver.DevicePointer, 1, driver.PointerY), int16(40))

	// removing the middle contact keeps the order of the others
	poll(d, touch(userinput.MotionPointerUp, 1, 0, 0))
	test.ExpectEquality(t, len(d.Pointers()), 2)
	test.ExpectEquality(t, d.Pointers()[0], pointer.Contact{X: 10, Y: 20})
	test.ExpectEquality(t, d.Pointers()[1], pointer.Contact{X: 50, Y: 60})
	test.ExpectEquality(t, d.State(0, driver.DevicePointer, 2, driver.PointerPressed), int16(0))

	poll(d, touch(userinput.MotionCancel, 0, 0, 0), touch(userinput.MotionUp, 0, 0, 0))
	test.ExpectEquality(t, len(d.Pointers()), 0)

	// unknown pointer id
	test.ExpectEquality(t, d.State(0, driver.DevicePointer, 0, 99), int16(0))
	test.ExpectEquality(t, d.State(0, driver.DevicePointer, pointer.MaxTouch, driver.PointerX), int16(0))

	// touch input is not joypad input
	test.ExpectEquality(t, d.Buttons(0), controls.Buttons(0))
}

func TestNinthContact(t *testing.T) {
	d := newDriver(t, driver.Options{})

	for i := 0; i < pointer.MaxTouch; i++ {
		poll(d, touch(userinput.MotionPointerDown, i, float32(i), float32(i)))
	}
	test.ExpectEquality(t, len(d.Pointers()), pointer.MaxTouch)

	poll(d, touch(userinput.MotionPointerDown, pointer.MaxTouch, 100, 100))
	test.ExpectEquality(t, len(d.Pointers()), pointer.MaxTouch)
	test.ExpectEquality(t, d.PollStats().RejectedContacts, 1)
	test.ExpectEquality(t, d.Pointers()[pointer.MaxTouch-1], pointer.Contact{X: 7, Y: 7})
}

func TestMouse(t *testing.T) {
	d := newDriver(t, driver.Options{})

	mouse := func(action userinput.MotionAction) userinput.EventMotion {
		return userinput.EventMotion{Device: 2, Source: userinput.SourceMouse, Action: action, X: 5, Y: 6}
	}

	poll(d, mouse(userinput.MotionDown))
	test.ExpectEquality(t, len(d.Pointers()), 1)

	// for a mouse any action other than down is a release
	poll(d, mouse(userinput.MotionMove))
	test.ExpectEquality(t, len(d.Pointers()), 0)

	// further moves with no contact change nothing
	poll(d, mouse(userinput.MotionHoverMove), mouse(userinput.MotionMove))
	test.ExpectEquality(t, len(d.Pointers()), 0)
	test.ExpectEquality(t, d.PollStats().RejectedContacts, 0)
}

type viewport struct {
	ok bool
}

func (v viewport) Translate(x, y float32) (int16, int16, bool) {
	return int16(x * 2), int16(y * 2), v.ok
}

func TestViewport(t *testing.T) {
	d := newDriver(t, driver.Options{Viewport: viewport{ok: true}})
	poll(d, touch(userinput.MotionDown, 0, 10, 20))
	test.ExpectEquality(t, d.Pointers()[0], pointer.Contact{X: 20, Y: 40})

	// failed translation still records the contact, off screen
	d = newDriver(t, driver.Options{Viewport: viewport{ok: false}})
	poll(d, touch(userinput.MotionDown, 0, 10, 20))
	test.ExpectEquality(t, d.Pointers()[0], pointer.Contact{X: -0x8000, Y: -0x8000})
	test.ExpectEquality(t, d.State(0, driver.DevicePointer, 0, driver.PointerPressed), int16(1))
}

func TestQueriesDoNotMutate(t *testing.T) {
	d := newDriver(t, driver.Options{})
	poll(d, key(0, userinput.KeyButtonR1, userinput.KeyDown), touch(userinput.MotionDown, 0, 1, 1))

	before := d.String()
	for i := 0; i < 3; i++ {
		joypad(d, 0, controls.R)
		d.State(0, driver.DevicePointer, 0, driver.PointerPressed)
		d.KeyPressed(controls.Reset)
	}
	test.ExpectEquality(t, d.String(), before)
}

func TestPollStatsAndDump(t *testing.T) {
	d := newDriver(t, driver.Options{})
	poll(d, key(0, userinput.KeyButtonA, userinput.KeyDown), key(0, userinput.KeyButtonA, userinput.KeyUp))
	poll(d)

	s := d.PollStats()
	test.ExpectEquality(t, s.Polls, 2)
	test.ExpectEquality(t, s.Events, 2)
	test.ExpectSuccess(t, s.Longest >= s.Last)
	test.ExpectEquality(t, d.Sequence(), int64(2))

	w := &test.Writer{}
	d.Dump(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}

func TestQuiet(t *testing.T) {
	p, err := driver.NewPreferencesFromFile(t.TempDir() + "/prefs")
	test.DemandSuccess(t, err)

	d := newDriver(t, driver.Options{Prefs: p})
	test.ExpectSuccess(t, d.AllowLogging())
	test.DemandSuccess(t, p.Quiet.Set(true))
	test.ExpectFailure(t, d.AllowLogging())
}
