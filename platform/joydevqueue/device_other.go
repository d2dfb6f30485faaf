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

//go:build !linux

package joydevqueue

import (
	"github.com/jetsetilly/retroinput/curated"
)

type device struct{}

// Open is not supported on this platform.
func (q *Queue) Open(path string) error {
	return curated.Errorf(ErrSupport)
}

// Close does nothing on this platform.
func (q *Queue) Close() {
}
