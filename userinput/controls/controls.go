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

// Package controls defines the canonical controller model. A Buttons value is
// the state of one player's pad and a Lifecycle value is the state of the
// frontend meta actions (save state, rewind, etc.) which are not tied to a
// player.
package controls

import (
	"fmt"
	"strings"
)

// Button is a single logical button on a canonical pad. The values are the
// bit positions used by the Buttons type.
type Button int

// List of valid Button values.
const (
	B Button = iota
	Y
	Select
	Start
	Up
	Down
	Left
	Right
	A
	X
	L
	R
	L2
	R2
	L3
	R3

	// NumButtons is the number of buttons on a canonical pad
	NumButtons
)

var buttonNames = [NumButtons]string{
	"b", "y", "select", "start", "up", "down", "left", "right",
	"a", "x", "l", "r", "l2", "r2", "l3", "r3",
}

func (b Button) String() string {
	if b >= 0 && b < NumButtons {
		return buttonNames[b]
	}
	return fmt.Sprintf("button %d", int(b))
}

// Meta is a frontend action. The values are the bit positions used by the
// Lifecycle type.
type Meta int

// List of valid Meta values.
const (
	FastForward Meta = iota
	FastForwardHold
	LoadState
	SaveState
	FullscreenToggle
	Quit
	StateSlotPlus
	StateSlotMinus
	Rewind
	MovieRecordToggle
	Pause
	FrameAdvance
	Reset
	ShaderNext
	ShaderPrev
	CheatIndexPlus
	CheatIndexMinus
	CheatToggle
	Screenshot
	DSPConfig
	Mute
	SlowMotion
	EnableHotkey
	VolumeUp
	VolumeDown
	OverlayNext
	DiskEjectToggle
	DiskNext
	GrabMouseToggle
	Menu

	// NumMeta is the number of meta actions
	NumMeta
)

var metaNames = [NumMeta]string{
	"fast_forward", "fast_forward_hold", "load_state", "save_state",
	"fullscreen_toggle", "quit", "state_slot_plus", "state_slot_minus",
	"rewind", "movie_record_toggle", "pause", "frame_advance", "reset",
	"shader_next", "shader_prev", "cheat_index_plus", "cheat_index_minus",
	"cheat_toggle", "screenshot", "dsp_config", "mute", "slow_motion",
	"enable_hotkey", "volume_up", "volume_down", "overlay_next",
	"disk_eject_toggle", "disk_next", "grab_mouse_toggle", "menu",
}

func (m Meta) String() string {
	if m >= 0 && m < NumMeta {
		return metaNames[m]
	}
	return fmt.Sprintf("meta %d", int(m))
}

// Mask returns the single bit for the meta action. Returns zero for invalid
// meta values.
func (m Meta) Mask() uint64 {
	if m < 0 || m >= NumMeta {
		return 0
	}
	return 1 << uint(m)
}

// EdgeTriggered is the set of meta actions that are cleared at the start of
// every poll. They are reported for the poll in which the key went down and
// never afterwards.
const EdgeTriggered uint64 = 1<<Reset |
	1<<Rewind |
	1<<FastForward |
	1<<FastForwardHold |
	1<<Mute |
	1<<SaveState |
	1<<LoadState |
	1<<StateSlotPlus |
	1<<StateSlotMinus

// Buttons is the state of a player's pad. Bit n is set when Button(n) is
// held.
type Buttons uint64

// Set the bit for the button.
func (s *Buttons) Set(b Button) {
	if b >= 0 && b < NumButtons {
		*s |= 1 << uint(b)
	}
}

// Clear the bit for the button.
func (s *Buttons) Clear(b Button) {
	if b >= 0 && b < NumButtons {
		*s &^= 1 << uint(b)
	}
}

// IsSet returns true if the button is held.
func (s Buttons) IsSet(b Button) bool {
	if b < 0 || b >= NumButtons {
		return false
	}
	return s&(1<<uint(b)) != 0
}

// Test returns true if any of the bits in mask are set.
func (s Buttons) Test(mask uint64) bool {
	return uint64(s)&mask != 0
}

func (s Buttons) String() string {
	var n []string
	for b := B; b < NumButtons; b++ {
		if s.IsSet(b) {
			n = append(n, b.String())
		}
	}
	if len(n) == 0 {
		return "-"
	}
	return strings.Join(n, "+")
}

// Lifecycle is the state of the meta actions. Bit n is set when Meta(n) is
// active.
type Lifecycle uint64

// Set the bit for the meta action.
func (s *Lifecycle) Set(m Meta) {
	*s |= Lifecycle(m.Mask())
}

// Clear the bit for the meta action.
func (s *Lifecycle) Clear(m Meta) {
	*s &^= Lifecycle(m.Mask())
}

// ClearMask clears every bit in mask.
func (s *Lifecycle) ClearMask(mask uint64) {
	*s &^= Lifecycle(mask)
}

// IsSet returns true if the meta action is active.
func (s Lifecycle) IsSet(m Meta) bool {
	return uint64(s)&m.Mask() != 0
}

func (s Lifecycle) String() string {
	var n []string
	for m := FastForward; m < NumMeta; m++ {
		if s.IsSet(m) {
			n = append(n, m.String())
		}
	}
	if len(n) == 0 {
		return "-"
	}
	return strings.Join(n, "+")
}
