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

package keybinds

import (
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/controls"
)

// the bindings every slot starts with. gamepad buttons map to the button of
// the same name and the keyboard follows the usual frontend layout
var defaultDecode = map[userinput.KeyCode]controls.Binding{
	userinput.KeyDPadUp:       controls.ButtonBinding(controls.Up),
	userinput.KeyDPadDown:     controls.ButtonBinding(controls.Down),
	userinput.KeyDPadLeft:     controls.ButtonBinding(controls.Left),
	userinput.KeyDPadRight:    controls.ButtonBinding(controls.Right),
	userinput.KeyButtonA:      controls.ButtonBinding(controls.A),
	userinput.KeyButtonB:      controls.ButtonBinding(controls.B),
	userinput.KeyButtonX:      controls.ButtonBinding(controls.X),
	userinput.KeyButtonY:      controls.ButtonBinding(controls.Y),
	userinput.KeyButtonL1:     controls.ButtonBinding(controls.L),
	userinput.KeyButtonR1:     controls.ButtonBinding(controls.R),
	userinput.KeyButtonL2:     controls.ButtonBinding(controls.L2),
	userinput.KeyButtonR2:     controls.ButtonBinding(controls.R2),
	userinput.KeyButtonThumbL: controls.ButtonBinding(controls.L3),
	userinput.KeyButtonThumbR: controls.ButtonBinding(controls.R3),
	userinput.KeyButtonStart:  controls.ButtonBinding(controls.Start),
	userinput.KeyButtonSelect: controls.ButtonBinding(controls.Select),
	userinput.KeyButtonMode:   controls.MetaBinding(controls.Menu),

	userinput.KeyBack:             controls.MetaBinding(controls.Menu),
	userinput.KeyMenu:             controls.MetaBinding(controls.Menu),
	userinput.KeyVolumeUp:         controls.MetaBinding(controls.VolumeUp),
	userinput.KeyVolumeDown:       controls.MetaBinding(controls.VolumeDown),
	userinput.KeyVolumeMute:       controls.MetaBinding(controls.Mute),
	userinput.KeyMediaPlayPause:   controls.MetaBinding(controls.Pause),
	userinput.KeyMediaFastForward: controls.MetaBinding(controls.FastForward),
	userinput.KeyMediaRewind:      controls.MetaBinding(controls.Rewind),

	userinput.KeyCursorUp:    controls.ButtonBinding(controls.Up),
	userinput.KeyCursorDown:  controls.ButtonBinding(controls.Down),
	userinput.KeyCursorLeft:  controls.ButtonBinding(controls.Left),
	userinput.KeyCursorRight: controls.ButtonBinding(controls.Right),
	userinput.KeyX:           controls.ButtonBinding(controls.A),
	userinput.KeyZ:           controls.ButtonBinding(controls.B),
	userinput.KeyS:           controls.ButtonBinding(controls.X),
	userinput.KeyA:           controls.ButtonBinding(controls.Y),
	userinput.KeyQ:           controls.ButtonBinding(controls.L),
	userinput.KeyW:           controls.ButtonBinding(controls.R),
	userinput.KeyEnter:       controls.ButtonBinding(controls.Start),
	userinput.KeyShiftRight:  controls.ButtonBinding(controls.Select),

	userinput.KeyEscape: controls.MetaBinding(controls.Quit),
	userinput.KeySpace:  controls.MetaBinding(controls.FastForward),
	userinput.KeyL:      controls.MetaBinding(controls.FastForwardHold),
	userinput.KeyR:      controls.MetaBinding(controls.Rewind),
	userinput.KeyH:      controls.MetaBinding(controls.Reset),
	userinput.KeyP:      controls.MetaBinding(controls.Pause),
	userinput.KeyK:      controls.MetaBinding(controls.FrameAdvance),
	userinput.KeyF:      controls.MetaBinding(controls.FullscreenToggle),
	userinput.KeyF1:     controls.MetaBinding(controls.Menu),
	userinput.KeyF2:     controls.MetaBinding(controls.SaveState),
	userinput.KeyF4:     controls.MetaBinding(controls.LoadState),
	userinput.KeyF6:     controls.MetaBinding(controls.StateSlotMinus),
	userinput.KeyF7:     controls.MetaBinding(controls.StateSlotPlus),
	userinput.KeyF8:     controls.MetaBinding(controls.Screenshot),
	userinput.KeyF9:     controls.MetaBinding(controls.Mute),
	userinput.KeyF11:    controls.MetaBinding(controls.GrabMouseToggle),
}
