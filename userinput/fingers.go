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

package userinput

// Fingers assigns pointer indexes to the touch contacts of a platform. The
// index of a contact is its position in the order of contacts still touching
// the screen, so lifting a contact moves every later contact down one place.
// This matches the compaction performed by the input driver.
//
// The zero value has no contacts.
type Fingers[T comparable] struct {
	ids []T
}

func (f *Fingers[T]) index(id T) int {
	for i, v := range f.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Len returns the number of contacts touching the screen.
func (f *Fingers[T]) Len() int {
	return len(f.ids)
}

// Down adds a new contact. The action is MotionDown for the first contact and
// MotionPointerDown for subsequent contacts. Returns false if the contact is
// already down.
func (f *Fingers[T]) Down(id T) (int, MotionAction, bool) {
	if f.index(id) != -1 {
		return 0, MotionDown, false
	}
	act := MotionPointerDown
	if len(f.ids) == 0 {
		act = MotionDown
	}
	f.ids = append(f.ids, id)
	return len(f.ids) - 1, act, true
}

// Up removes a contact. The action is MotionUp for the last contact and
// MotionPointerUp otherwise. Returns false if the contact is not down.
func (f *Fingers[T]) Up(id T) (int, MotionAction, bool) {
	idx := f.index(id)
	if idx == -1 {
		return 0, MotionUp, false
	}
	act := MotionPointerUp
	if len(f.ids) == 1 {
		act = MotionUp
	}
	f.ids = append(f.ids[:idx], f.ids[idx+1:]...)
	return idx, act, true
}

// Move returns the index of a contact that is down. Returns false if the
// contact is not down.
func (f *Fingers[T]) Move(id T) (int, MotionAction, bool) {
	idx := f.index(id)
	if idx == -1 {
		return 0, MotionMove, false
	}
	return idx, MotionMove, true
}

// At returns the ID of the contact at the index. Returns false if there is no
// contact at that index.
func (f *Fingers[T]) At(idx int) (T, bool) {
	if idx < 0 || idx >= len(f.ids) {
		var z T
		return z, false
	}
	return f.ids[idx], true
}

// Reset removes all contacts.
func (f *Fingers[T]) Reset() {
	f.ids = f.ids[:0]
}
