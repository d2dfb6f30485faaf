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

// Package keybinds holds the per player configuration of the input driver:
// how key codes decode to buttons and meta actions, which bits of a pad's
// state satisfy a joypad query for each button, and whether analog motion is
// used to emulate the directional pad.
//
// The table is written when a device is first bound to a player slot (see the
// autodetect package) and is read by every poll and query afterwards.
package keybinds

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/controls"
)

// Sentinel error patterns.
const (
	ErrSlot   = "keybinds: no such player slot (%d)"
	ErrButton = "keybinds: no such button (%d)"
)

// DPadEmulation says how motion events from analog sources affect a slot.
type DPadEmulation int

// List of valid DPadEmulation values.
const (
	// motion events are consumed without changing the pad state
	DPadEmulationNone DPadEmulation = iota

	// analog axes beyond the threshold press the directional buttons
	DPadEmulationAnalog
)

func (e DPadEmulation) String() string {
	switch e {
	case DPadEmulationNone:
		return "none"
	case DPadEmulationAnalog:
		return "analog"
	}
	return fmt.Sprintf("dpad emulation %d", int(e))
}

// ParseDPadEmulation converts the string returned by DPadEmulation.String()
// back into a DPadEmulation value.
func ParseDPadEmulation(s string) (DPadEmulation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return DPadEmulationNone, nil
	case "analog":
		return DPadEmulationAnalog, nil
	}
	return DPadEmulationNone, fmt.Errorf("keybinds: unknown dpad emulation (%s)", s)
}

type slot struct {
	decode map[userinput.KeyCode]controls.Binding
	joykey [controls.NumButtons]uint64
	dpad   DPadEmulation
}

// Table is the key binding table for every player slot.
type Table struct {
	slots []slot
}

// New is the preferred method of initialisation for the Table type. Every
// slot is initialised with the default bindings.
func New(players int) *Table {
	t := &Table{
		slots: make([]slot, players),
	}
	for i := range t.slots {
		t.reset(i)
	}
	return t
}

func (t *Table) reset(i int) {
	t.slots[i].decode = make(map[userinput.KeyCode]controls.Binding, len(defaultDecode))
	for k, b := range defaultDecode {
		t.slots[i].decode[k] = b
	}
	for b := controls.B; b < controls.NumButtons; b++ {
		t.slots[i].joykey[b] = 1 << uint(b)
	}
	t.slots[i].dpad = DPadEmulationAnalog
}

func (t *Table) valid(i int) bool {
	return i >= 0 && i < len(t.slots)
}

// Players returns the number of slots in the table.
func (t *Table) Players() int {
	return len(t.slots)
}

// Reset the slot to the default bindings.
func (t *Table) Reset(i int) error {
	if !t.valid(i) {
		return curated.Errorf(ErrSlot, i)
	}
	t.reset(i)
	return nil
}

// Clear removes every key binding for the slot. The joykey masks and the
// directional emulation are not affected.
func (t *Table) Clear(i int) error {
	if !t.valid(i) {
		return curated.Errorf(ErrSlot, i)
	}
	t.slots[i].decode = make(map[userinput.KeyCode]controls.Binding)
	return nil
}

// Decode returns the Binding for the key code in the slot. Key codes with no
// binding and invalid slots decode to controls.NoBinding.
func (t *Table) Decode(i int, code userinput.KeyCode) controls.Binding {
	if !t.valid(i) {
		return controls.NoBinding
	}
	if b, ok := t.slots[i].decode[code]; ok {
		return b
	}
	return controls.NoBinding
}

// Bind the key code to the Binding for the slot. Binding to
// controls.NoBinding removes the binding.
func (t *Table) Bind(i int, code userinput.KeyCode, b controls.Binding) error {
	if !t.valid(i) {
		return curated.Errorf(ErrSlot, i)
	}
	if b.Kind == controls.BindingNone {
		delete(t.slots[i].decode, code)
		return nil
	}
	t.slots[i].decode[code] = b
	return nil
}

// JoyKey returns the mask tested against the pad state when the button is
// queried. Returns zero for invalid slots and buttons.
func (t *Table) JoyKey(i int, b controls.Button) uint64 {
	if !t.valid(i) || b < 0 || b >= controls.NumButtons {
		return 0
	}
	return t.slots[i].joykey[b]
}

// SetJoyKey changes the mask tested when the button is queried. A mask of
// zero means the button never reads as pressed.
func (t *Table) SetJoyKey(i int, b controls.Button, mask uint64) error {
	if !t.valid(i) {
		return curated.Errorf(ErrSlot, i)
	}
	if b < 0 || b >= controls.NumButtons {
		return curated.Errorf(ErrButton, int(b))
	}
	t.slots[i].joykey[b] = mask
	return nil
}

// DPadEmulation returns the directional emulation mode for the slot. Invalid
// slots return DPadEmulationNone.
func (t *Table) DPadEmulation(i int) DPadEmulation {
	if !t.valid(i) {
		return DPadEmulationNone
	}
	return t.slots[i].dpad
}

// SetDPadEmulation changes the directional emulation mode for the slot.
func (t *Table) SetDPadEmulation(i int, e DPadEmulation) error {
	if !t.valid(i) {
		return curated.Errorf(ErrSlot, i)
	}
	t.slots[i].dpad = e
	return nil
}

// Bindings returns the number of key codes bound in the slot.
func (t *Table) Bindings(i int) int {
	if !t.valid(i) {
		return 0
	}
	return len(t.slots[i].decode)
}
