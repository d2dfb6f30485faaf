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

package devices_test

import (
	"testing"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/test"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/devices"
	"github.com/jetsetilly/retroinput/userinput/keybinds"
)

type setup struct {
	slot  devices.Slot
	rawID int
	src   userinput.Source
}

// records every call to Setup()
type recorder struct {
	calls []setup
}

func (r *recorder) Setup(_ *keybinds.Table, slot devices.Slot, rawID int, src userinput.Source) {
	r.calls = append(r.calls, setup{slot: slot, rawID: rawID, src: src})
}

func TestBind(t *testing.T) {
	var rec recorder
	reg := devices.NewRegistry(keybinds.New(devices.MaxPlayers), &rec, logger.Allow)

	_, ok := reg.Lookup(7)
	test.ExpectFailure(t, ok)

	s, err := reg.Bind(7, userinput.SourceGamepad)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, devices.Slot(0))
	test.ExpectEquality(t, reg.Connected(), 1)

	// binding is idempotent and autodetect is only called once
	s, err = reg.Bind(7, userinput.SourceKeyboard)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, devices.Slot(0))
	test.ExpectEquality(t, reg.Connected(), 1)
	test.DemandEquality(t, len(rec.calls), 1)
	test.ExpectEquality(t, rec.calls[0], setup{slot: 0, rawID: 7, src: userinput.SourceGamepad})

	s, err = reg.Bind(3, userinput.SourceTouchscreen)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, devices.Slot(1))

	s, ok = reg.Lookup(3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, devices.Slot(1))
}

func TestLowByteCollision(t *testing.T) {
	reg := devices.NewRegistry(nil, nil, logger.Allow)

	a, err := reg.Bind(0x10001, userinput.SourceGamepad)
	test.ExpectSuccess(t, err)
	b, err := reg.Bind(0x00001, userinput.SourceGamepad)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, reg.Connected(), 1)
	test.ExpectEquality(t, devices.Key(0x10001), 1)
	test.ExpectEquality(t, devices.Key(-1), 0xff)
}

func TestPlayersExhausted(t *testing.T) {
	var rec recorder
	reg := devices.NewRegistry(keybinds.New(devices.MaxPlayers), &rec, logger.Allow)

	for i := 0; i < devices.MaxPlayers; i++ {
		s, err := reg.Bind(i+10, userinput.SourceGamepad)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, devices.Slot(i))
	}
	test.ExpectEquality(t, reg.Connected(), devices.MaxPlayers)

	// the next device shares the last slot and the condition is reported
	s, err := reg.Bind(99, userinput.SourceGamepad)
	test.ExpectSuccess(t, curated.Is(err, devices.ErrPlayersExhausted))
	test.ExpectEquality(t, s, devices.Slot(devices.MaxPlayers-1))
	test.ExpectEquality(t, reg.Connected(), devices.MaxPlayers)

	// the aliased device is bound from now on. it is not reported again
	s, err = reg.Bind(99, userinput.SourceGamepad)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, devices.Slot(devices.MaxPlayers-1))

	// autodetect is not called for aliased devices
	test.ExpectEquality(t, len(rec.calls), devices.MaxPlayers)
}
