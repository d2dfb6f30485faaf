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

// Package userinput defines the platform neutral input events that are fed to
// the input driver. It can be thought of as the boundary between the platform
// (SDL, ebiten, a raw terminal, a Linux joystick device) and the canonical
// controller model found in the driver package.
//
// Platform adapters translate whatever their platform reports into either an
// EventMotion or an EventKey and offer them through the Queue interface. Key
// codes, source flags and motion actions are enumerated here rather than being
// taken from any one platform.
//
// The SliceQueue type is a simple in-memory Queue. It is used by tests and is
// useful for replaying a recorded sequence of events.
package userinput
