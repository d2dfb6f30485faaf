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

// Package pointer tracks the active touch contacts. Contacts are held in a
// fixed size table. The first Count() entries are the active contacts and
// there are never any gaps between them.
package pointer

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/retroinput/curated"
)

// MaxTouch is the maximum number of simultaneous contacts.
const MaxTouch = 8

// Sentinel error patterns.
const (
	ErrOverflow  = "pointer: contact index out of range (%d)"
	ErrGap       = "pointer: contact index %d leaves a gap (%d active)"
	ErrNotActive = "pointer: contact index not active (%d)"
)

// Contact is a single touch in viewport coordinates.
type Contact struct {
	X int16
	Y int16
}

func (c Contact) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Tracker is the table of active contacts. The zero value has no contacts.
type Tracker struct {
	contacts [MaxTouch]Contact
	count    int
}

func (t *Tracker) String() string {
	if t.count == 0 {
		return "no contacts"
	}
	s := make([]string, t.count)
	for i := 0; i < t.count; i++ {
		s[i] = t.contacts[i].String()
	}
	return strings.Join(s, " ")
}

// Press writes the contact at the index. The index must be less than
// MaxTouch and must not leave a gap after the last active contact.
//
// Writing to an index equal to Count() adds a new contact. Writing to a lower
// index moves an existing contact.
func (t *Tracker) Press(index int, c Contact) error {
	if index < 0 || index >= MaxTouch {
		return curated.Errorf(ErrOverflow, index)
	}
	if index > t.count {
		return curated.Errorf(ErrGap, index, t.count)
	}

	t.contacts[index] = c
	if index+1 > t.count {
		t.count = index + 1
	}

	return nil
}

// Release removes the contact at the index. Contacts above the index move
// down one place, keeping their order.
func (t *Tracker) Release(index int) error {
	if index < 0 || index >= t.count {
		return curated.Errorf(ErrNotActive, index)
	}

	copy(t.contacts[index:t.count-1], t.contacts[index+1:t.count])
	t.count--
	t.contacts[t.count] = Contact{}

	return nil
}

// Count returns the number of active contacts.
func (t *Tracker) Count() int {
	return t.count
}

// At returns the contact stored at the index. Indexes beyond Count() return
// the zero contact.
func (t *Tracker) At(index int) Contact {
	if index < 0 || index >= MaxTouch {
		return Contact{}
	}
	return t.contacts[index]
}

// Active returns a copy of the active contacts.
func (t *Tracker) Active() []Contact {
	c := make([]Contact, t.count)
	copy(c, t.contacts[:t.count])
	return c
}

// Reset removes every contact.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
