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

package controls

import (
	"fmt"
	"strings"
)

// BindingKind says what a key is bound to.
type BindingKind int

// List of valid BindingKind values.
const (
	BindingNone BindingKind = iota
	BindingButton
	BindingMeta
)

// Binding is the result of decoding a key code. Only one of Button or Meta
// is meaningful, as indicated by Kind. The zero value is an unbound key.
type Binding struct {
	Kind   BindingKind
	Button Button
	Meta   Meta
}

// NoBinding is the binding for keys that have no effect.
var NoBinding = Binding{}

// ButtonBinding returns a Binding for a pad button.
func ButtonBinding(b Button) Binding {
	return Binding{Kind: BindingButton, Button: b}
}

// MetaBinding returns a Binding for a meta action.
func MetaBinding(m Meta) Binding {
	return Binding{Kind: BindingMeta, Meta: m}
}

func (b Binding) String() string {
	switch b.Kind {
	case BindingButton:
		return b.Button.String()
	case BindingMeta:
		return b.Meta.String()
	}
	return "none"
}

// ParseBinding converts the name of a button or meta action, as returned by
// Binding.String(), into a Binding. The name "none" is the unbound Binding.
func ParseBinding(name string) (Binding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" {
		return NoBinding, nil
	}
	for i, n := range buttonNames {
		if n == name {
			return ButtonBinding(Button(i)), nil
		}
	}
	for i, n := range metaNames {
		if n == name {
			return MetaBinding(Meta(i)), nil
		}
	}
	return NoBinding, fmt.Errorf("controls: unknown binding (%s)", name)
}
