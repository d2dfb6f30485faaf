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

// Package overlay implements an on screen overlay of touch buttons that
// trigger meta actions. The overlay is updated with the active touch contacts
// between polls and its mask is combined with the driver's meta state by
// driver.KeyPressed().
package overlay

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/userinput/controls"
	"github.com/jetsetilly/retroinput/userinput/pointer"
)

// ErrLayout is the pattern for errors returned by ParseLayout.
const ErrLayout = "overlay: layout: %v"

// Button is a rectangle of the screen. Coordinates are normalised so that
// 0,0 is the top left of the viewport and 1,1 is the bottom right.
type Button struct {
	X, Y          float32
	Width, Height float32
	Meta          controls.Meta
}

func (b Button) String() string {
	return fmt.Sprintf("%s (%.2f,%.2f %.2fx%.2f)", b.Meta, b.X, b.Y, b.Width, b.Height)
}

func (b Button) contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Overlay implements the driver.OverlayState interface.
type Overlay struct {
	buttons []Button
	mask    uint64
	enabled bool
}

// New is the preferred method of initialisation for the Overlay type. The
// overlay is enabled.
func New(buttons []Button) *Overlay {
	return &Overlay{
		buttons: buttons,
		enabled: true,
	}
}

func (o *Overlay) String() string {
	s := make([]string, len(o.buttons))
	for i, b := range o.buttons {
		s[i] = b.String()
	}
	return strings.Join(s, "\n")
}

// SetEnabled turns the overlay on or off. A disabled overlay has an empty
// mask.
func (o *Overlay) SetEnabled(enabled bool) {
	o.enabled = enabled
	if !enabled {
		o.mask = 0
	}
}

// convert a viewport coordinate to the normalised range. returns false for
// coordinates that are off screen
func normalise(v int16) (float32, bool) {
	if v == -0x8000 {
		return 0, false
	}
	return (float32(v) + 0x7fff) / (2 * 0x7fff), true
}

// Update recalculates the mask from the active contacts.
func (o *Overlay) Update(contacts []pointer.Contact) {
	o.mask = 0
	if !o.enabled {
		return
	}

	for _, c := range contacts {
		x, okx := normalise(c.X)
		y, oky := normalise(c.Y)
		if !okx || !oky {
			continue
		}
		for _, b := range o.buttons {
			if b.contains(x, y) {
				o.mask |= b.Meta.Mask()
			}
		}
	}
}

// Mask implements the driver.OverlayState interface.
func (o *Overlay) Mask() uint64 {
	return o.mask
}

// DefaultLayout is a small layout of frontend buttons along the top of the
// screen.
func DefaultLayout() []Button {
	return []Button{
		{X: 0.00, Y: 0.00, Width: 0.10, Height: 0.10, Meta: controls.Menu},
		{X: 0.40, Y: 0.00, Width: 0.10, Height: 0.10, Meta: controls.SaveState},
		{X: 0.50, Y: 0.00, Width: 0.10, Height: 0.10, Meta: controls.LoadState},
		{X: 0.80, Y: 0.00, Width: 0.10, Height: 0.10, Meta: controls.Rewind},
		{X: 0.90, Y: 0.00, Width: 0.10, Height: 0.10, Meta: controls.FastForwardHold},
	}
}

type layoutFile struct {
	Buttons []struct {
		Action string  `toml:"action"`
		X      float32 `toml:"x"`
		Y      float32 `toml:"y"`
		Width  float32 `toml:"width"`
		Height float32 `toml:"height"`
	} `toml:"button"`
}

// ParseLayout reads a layout from TOML data. For example:
//
//	[[button]]
//	action = "menu"
//	x = 0.0
//	y = 0.0
//	width = 0.1
//	height = 0.1
func ParseLayout(data []byte) ([]Button, error) {
	var f layoutFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, curated.Errorf(ErrLayout, err)
	}

	buttons := make([]Button, 0, len(f.Buttons))
	for _, fb := range f.Buttons {
		b, err := controls.ParseBinding(fb.Action)
		if err != nil {
			return nil, curated.Errorf(ErrLayout, err)
		}
		if b.Kind != controls.BindingMeta {
			return nil, curated.Errorf(ErrLayout, fmt.Errorf("not a meta action (%s)", fb.Action))
		}
		buttons = append(buttons, Button{
			X:      fb.X,
			Y:      fb.Y,
			Width:  fb.Width,
			Height: fb.Height,
			Meta:   b.Meta,
		})
	}

	return buttons, nil
}
