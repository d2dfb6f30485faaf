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

// Package driver is the input driver. It drains a userinput.Queue once per
// frame and answers state queries from the emulation core between polls.
//
// A poll begins by clearing the edge triggered meta actions (see
// controls.EdgeTriggered). Every pending event is then resolved to a player
// slot, by way of the devices.Registry, and applied:
//
//   - Motion events from analog sources press or release the directional
//     buttons of the slot, when the slot's directional emulation is enabled.
//     An axis is pressed when its value is beyond AxisThreshold.
//
//   - Motion events from touch screens and mice add, move or remove contacts
//     in the pointer table. Coordinates are translated by the Viewport.
//
//   - Key events are decoded by the key binding table for the slot into
//     either a button press for the slot or a meta action.
//
// The State() and KeyPressed() functions never change the state of the
// driver.
//
// The driver is not safe for concurrent use. Poll() and the queries must be
// called from the same goroutine, normally the emulation's main loop.
package driver
