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

package driver

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/controls"
	"github.com/jetsetilly/retroinput/userinput/devices"
	"github.com/jetsetilly/retroinput/userinput/keybinds"
	"github.com/jetsetilly/retroinput/userinput/pointer"
)

// DeviceClass is the class of device named in a State() query.
type DeviceClass uint

// List of valid DeviceClass values.
const (
	DeviceNone DeviceClass = iota
	DeviceJoypad
	DeviceMouse
	DeviceKeyboard
	DeviceLightgun
	DeviceAnalog
	DevicePointer
)

// IDs for DevicePointer queries.
const (
	PointerX uint = iota
	PointerY
	PointerPressed
)

// AxisThreshold is the magnitude an analog axis must exceed before the
// directional button is pressed.
const AxisThreshold = 0.80

// OverlayState is the collaborator that contributes meta actions from an on
// screen overlay.
type OverlayState interface {
	Mask() uint64
}

// Viewport is the collaborator that translates device coordinates into
// viewport space. The boolean return is false if the translation could not
// be made.
type Viewport interface {
	Translate(x, y float32) (int16, int16, bool)
}

// the value written to a contact when the viewport cannot translate the
// device coordinates
const offscreen = -0x8000

// Options for New(). Every field is optional.
type Options struct {
	Prefs      *Preferences
	Autodetect devices.Autodetect
	Overlay    OverlayState
	Viewport   Viewport
}

// Driver is the input driver. It owns all the state that persists between
// polls.
type Driver struct {
	prefs *Preferences

	binds    *keybinds.Table
	registry *devices.Registry
	pointers pointer.Tracker

	buttons   [devices.MaxPlayers]controls.Buttons
	lifecycle controls.Lifecycle

	overlay  OverlayState
	viewport Viewport

	// key codes that are passed back to the platform after being applied
	passThrough map[userinput.KeyCode]bool

	stats PollStats
}

// New is the preferred method of initialisation for the Driver type.
func New(opts Options) (*Driver, error) {
	d := &Driver{
		prefs:       opts.Prefs,
		overlay:     opts.Overlay,
		viewport:    opts.Viewport,
		passThrough: make(map[userinput.KeyCode]bool),
	}

	if d.prefs == nil {
		d.prefs = defaultPreferences()
	}

	d.binds = keybinds.New(devices.MaxPlayers)
	d.registry = devices.NewRegistry(d.binds, opts.Autodetect, d)

	if d.prefs.VolumeKeys.Get().(bool) {
		d.SetPassThrough(userinput.KeyVolumeUp, userinput.KeyVolumeDown)
	}

	return d, nil
}

// AllowLogging implements the logger.Permission interface.
func (d *Driver) AllowLogging() bool {
	return !d.prefs.Quiet.Get().(bool)
}

// Free releases the driver. The driver should not be used afterwards.
func (d *Driver) Free() {
	d.pointers.Reset()
}

func (d *Driver) String() string {
	s := strings.Builder{}
	s.WriteString(d.registry.String())
	for i := 0; i < d.registry.Connected(); i++ {
		s.WriteString(fmt.Sprintf(" | p%d: %s", i, d.buttons[i]))
	}
	s.WriteString(fmt.Sprintf(" | meta: %s", d.lifecycle))
	s.WriteString(fmt.Sprintf(" | touch: %s", d.pointers.String()))
	return s.String()
}

// Dump writes a graph of the driver state in graphviz dot format.
func (d *Driver) Dump(w io.Writer) {
	memviz.Map(w, d)
}

// SetPassThrough adds key codes to the list of codes that are passed back to
// the platform as unhandled. The key is still applied to the driver state.
func (d *Driver) SetPassThrough(codes ...userinput.KeyCode) {
	for _, c := range codes {
		d.passThrough[c] = true
	}
}

// ClearPassThrough empties the list of pass through key codes.
func (d *Driver) ClearPassThrough() {
	d.passThrough = make(map[userinput.KeyCode]bool)
}

// Bindings returns the key binding table. Changes to the table take effect
// from the next poll.
func (d *Driver) Bindings() *keybinds.Table {
	return d.binds
}

// Connected returns the number of player slots in use.
func (d *Driver) Connected() int {
	return d.registry.Connected()
}

// Buttons returns the pad state for the slot.
func (d *Driver) Buttons(slot devices.Slot) controls.Buttons {
	if slot < 0 || slot >= devices.MaxPlayers {
		return 0
	}
	return d.buttons[slot]
}

// Lifecycle returns the state of the meta actions, not including the overlay.
func (d *Driver) Lifecycle() controls.Lifecycle {
	return d.lifecycle
}

// Pointers returns a copy of the active contacts.
func (d *Driver) Pointers() []pointer.Contact {
	return d.pointers.Active()
}

// PollStats returns the accumulated poll statistics.
func (d *Driver) PollStats() PollStats {
	return d.stats
}

// Sequence returns the number of polls. Implements the random.Sequence
// interface.
func (d *Driver) Sequence() int64 {
	return int64(d.stats.Polls)
}

// Poll drains the queue, applying every event to the driver state.
func (d *Driver) Poll(q userinput.Queue) {
	start := time.Now()

	d.lifecycle.ClearMask(controls.EdgeTriggered)

	var n int
	for q.HasEvents() {
		ev := q.GetEvent()
		if ev == nil {
			break
		}
		n++
		q.FinishEvent(ev, d.handleEvent(ev))
	}

	d.stats.record(time.Since(start), n)
}

// returns false if the event should also be processed by the platform
func (d *Driver) handleEvent(ev userinput.Event) bool {
	rawID, src := ev.Origin()

	slot, err := d.registry.Bind(rawID, src)
	if err != nil {
		d.stats.AliasedDevices++
		logger.Log(d, "driver", err.Error())
	}

	switch ev := ev.(type) {
	case userinput.EventMotion:
		if d.binds.DPadEmulation(int(slot)) == keybinds.DPadEmulationNone {
			return true
		}
		if src&^(userinput.SourceTouchscreen|userinput.SourceMouse) != 0 {
			d.analog(slot, ev)
		} else {
			d.touch(ev)
		}
		return true

	case userinput.EventKey:
		d.key(slot, ev)
		return !d.passThrough[ev.Code]
	}

	logger.Logf(d, "driver", "unhandled event type (%T)", ev)
	return false
}

func pressed(v float32, negative bool) bool {
	if negative {
		return v < -AxisThreshold
	}
	return v > AxisThreshold
}

func (d *Driver) analog(slot devices.Slot, ev userinput.EventMotion) {
	b := &d.buttons[slot]
	b.Clear(controls.Up)
	b.Clear(controls.Down)
	b.Clear(controls.Left)
	b.Clear(controls.Right)

	if pressed(ev.Y, true) {
		b.Set(controls.Up)
	}
	if pressed(ev.Y, false) {
		b.Set(controls.Down)
	}
	if pressed(ev.X, true) {
		b.Set(controls.Left)
	}
	if pressed(ev.X, false) {
		b.Set(controls.Right)
	}
}

func (d *Driver) touch(ev userinput.EventMotion) {
	var release bool
	switch ev.Action {
	case userinput.MotionUp, userinput.MotionCancel, userinput.MotionPointerUp:
		release = true
	default:
		release = ev.Source == userinput.SourceMouse && ev.Action != userinput.MotionDown
	}

	if release {
		// releasing a contact that isn't active happens whenever a mouse moves
		// with no button held. it isn't worth logging
		_ = d.pointers.Release(ev.Pointer)
		return
	}

	c := pointer.Contact{X: offscreen, Y: offscreen}
	if x, y, ok := d.translate(ev.X, ev.Y); ok {
		c.X = x
		c.Y = y
	}

	if err := d.pointers.Press(ev.Pointer, c); err != nil {
		d.stats.RejectedContacts++
		logger.Log(d, "driver", err.Error())
	}
}

func (d *Driver) translate(x, y float32) (int16, int16, bool) {
	if d.viewport != nil {
		return d.viewport.Translate(x, y)
	}
	return clamp(x), clamp(y), true
}

// device coordinates are used directly when there is no viewport
func clamp(v float32) int16 {
	r := math.Round(float64(v))
	if r > math.MaxInt16 {
		return math.MaxInt16
	}
	if r < math.MinInt16 {
		return math.MinInt16
	}
	return int16(r)
}

func (d *Driver) key(slot devices.Slot, ev userinput.EventKey) {
	b := d.binds.Decode(int(slot), ev.Code)

	switch b.Kind {
	case controls.BindingButton:
		switch ev.Action {
		case userinput.KeyDown:
			d.buttons[slot].Set(b.Button)
		case userinput.KeyUp:
			d.buttons[slot].Clear(b.Button)
		}
	case controls.BindingMeta:
		switch ev.Action {
		case userinput.KeyDown:
			d.lifecycle.Set(b.Meta)
		case userinput.KeyUp:
			d.lifecycle.Clear(b.Meta)
		}
	}
}

// State returns the value of a control for the emulation core. Queries for
// unknown devices, ports or IDs return zero.
func (d *Driver) State(port uint, device DeviceClass, index uint, id uint) int16 {
	switch device {
	case DeviceJoypad:
		if port >= devices.MaxPlayers || port >= uint(d.registry.Connected()) {
			return 0
		}
		if id >= uint(controls.NumButtons) {
			return 0
		}
		if d.buttons[port].Test(d.binds.JoyKey(int(port), controls.Button(id))) {
			return 1
		}
		return 0

	case DevicePointer:
		if index >= pointer.MaxTouch {
			return 0
		}
		switch id {
		case PointerX:
			return d.pointers.At(int(index)).X
		case PointerY:
			return d.pointers.At(int(index)).Y
		case PointerPressed:
			if index < uint(d.pointers.Count()) {
				return 1
			}
			return 0
		}
		return 0
	}

	return 0
}

// KeyPressed returns true if the meta action is active, either from a key
// event or from the overlay.
func (d *Driver) KeyPressed(m controls.Meta) bool {
	mask := uint64(d.lifecycle)
	if d.overlay != nil {
		mask |= d.overlay.Mask()
	}
	return mask&m.Mask() != 0
}

// ErrUnknownKey is the pattern for errors returned by Decode.
const ErrUnknownKey = "driver: key not bound in slot %d (%s)"

// Decode the key code for the slot without applying it. Useful for checking
// the bindings set up by the autodetect profiles.
func (d *Driver) Decode(slot devices.Slot, code userinput.KeyCode) (controls.Binding, error) {
	b := d.binds.Decode(int(slot), code)
	if b.Kind == controls.BindingNone {
		return b, curated.Errorf(ErrUnknownKey, int(slot), code)
	}
	return b, nil
}
