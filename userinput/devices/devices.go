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

// Package devices maps the raw device IDs reported by the platform onto a
// small number of player slots.
//
// Only the low byte of a raw device ID is significant. Two devices whose IDs
// share a low byte are treated as the same device.
//
// A slot is allocated the first time a device is seen and the device keeps
// that slot for the lifetime of the Registry. There is no unbinding. When
// every slot is in use, further devices are bound to the last slot.
package devices

import (
	"fmt"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/keybinds"
)

// MaxPlayers is the number of player slots.
const MaxPlayers = 4

// MaxDeviceIDs is the number of distinct device IDs. Raw IDs are reduced to
// this range by masking.
const MaxDeviceIDs = 0x100

// Slot is a player slot in the range 0 to MaxPlayers-1.
type Slot int

// Unbound is the Slot value for a device that has not been seen.
const Unbound Slot = -1

// ErrPlayersExhausted is returned by Bind() when a new device had to share
// the last slot with another device.
const ErrPlayersExhausted = "devices: all player slots in use: device %#x aliased to slot %d"

// Key reduces a raw device ID to its index in the registry.
func Key(rawID int) int {
	return rawID & (MaxDeviceIDs - 1)
}

// Autodetect is the collaborator informed when a device is bound to a slot
// for the first time. Implementations configure the slot's entry in the
// key binding table according to the device's capabilities.
type Autodetect interface {
	Setup(binds *keybinds.Table, slot Slot, rawID int, src userinput.Source)
}

// Registry records which slot each device has been bound to.
type Registry struct {
	ids       [MaxDeviceIDs]Slot
	connected int

	binds      *keybinds.Table
	autodetect Autodetect
	perm       logger.Permission
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The autodetect argument can be nil.
func NewRegistry(binds *keybinds.Table, autodetect Autodetect, perm logger.Permission) *Registry {
	r := &Registry{
		binds:      binds,
		autodetect: autodetect,
		perm:       perm,
	}
	for i := range r.ids {
		r.ids[i] = Unbound
	}
	return r
}

func (r *Registry) String() string {
	return fmt.Sprintf("%d/%d players", r.connected, MaxPlayers)
}

// Bind returns the slot for the device, allocating a new slot if this is the
// first time the device has been seen.
//
// If there are no free slots the device is bound to the last slot and the
// returned error is ErrPlayersExhausted. The returned slot is valid even
// when the error is not nil.
func (r *Registry) Bind(rawID int, src userinput.Source) (Slot, error) {
	k := Key(rawID)
	if s := r.ids[k]; s != Unbound {
		return s, nil
	}

	if r.connected >= MaxPlayers {
		s := Slot(MaxPlayers - 1)
		r.ids[k] = s
		return s, curated.Errorf(ErrPlayersExhausted, rawID, int(s))
	}

	s := Slot(r.connected)
	r.ids[k] = s
	r.connected++

	logger.Logf(r.perm, "devices", "device %#x (%s) bound to slot %d", rawID, src, int(s))

	if r.autodetect != nil && r.binds != nil {
		r.autodetect.Setup(r.binds, s, rawID, src)
	}

	return s, nil
}

// Lookup returns the slot for the device without binding it.
func (r *Registry) Lookup(rawID int) (Slot, bool) {
	s := r.ids[Key(rawID)]
	return s, s != Unbound
}

// Connected returns the number of slots in use.
func (r *Registry) Connected() int {
	return r.connected
}
