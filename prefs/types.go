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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all pref types. the post hook is called after the value
// has been stored. an error from the pre hook prevents the value from being
// stored
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		return h.post(nv)
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(&p.value, v)
	case string:
		return p.store(&p.value, strings.ToLower(strings.TrimSpace(v)) == "true")
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(bool)
	}
	return false
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(&p.value, v)
	case int32:
		return p.store(&p.value, int(v))
	case int64:
		return p.store(&p.value, int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
		return p.store(&p.value, n)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(int)
	}
	return 0
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating-point type in the prefs system.
type Float struct {
	hooks
	value atomic.Value // float64
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Get())
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(&p.value, v)
	case float32:
		return p.store(&p.value, float64(v))
	case int:
		return p.store(&p.value, float64(v))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float: %w", v, err)
		}
		return p.store(&p.value, f)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(float64)
	}
	return float64(0.0)
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value atomic.Value // string
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set new value to String type. Any value will be converted to its string form.
func (p *String) Set(v Value) error {
	return p.store(&p.value, fmt.Sprintf("%v", v))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
