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

// Package termqueue implements the userinput.Queue interface for a terminal
// in raw mode.
//
// A terminal only reports key presses. Every key read from the terminal is
// sent as a key down event and is released on the next call to Service()
// unless it has been read again.
package termqueue

import (
	"fmt"

	"github.com/pkg/term"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/userinput"
)

// ErrOpen is the pattern for errors returned by Open.
const ErrOpen = "termqueue: %v"

// DefaultTerminal is the terminal opened by Open when no name is given.
const DefaultTerminal = "/dev/tty"

const keyboardDevice = 0x01

// Queue implements the userinput.Queue interface.
type Queue struct {
	userinput.SliceQueue

	perm logger.Permission
	tty  *term.Term

	held map[userinput.KeyCode]bool
	quit bool
}

// New returns a Queue that is not attached to a terminal. Input is added with
// Feed().
func New(perm logger.Permission) *Queue {
	return &Queue{
		perm: perm,
		held: make(map[userinput.KeyCode]bool),
	}
}

// Open the named terminal in raw mode. The terminal is restored by Close().
func Open(name string, perm logger.Permission) (*Queue, error) {
	if name == "" {
		name = DefaultTerminal
	}
	tty, err := term.Open(name, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(ErrOpen, err)
	}
	q := New(perm)
	q.tty = tty
	return q, nil
}

// Close restores the terminal to the state it was in before Open.
func (q *Queue) Close() error {
	if q.tty == nil {
		return nil
	}
	defer func() { q.tty = nil }()
	if err := q.tty.Restore(); err != nil {
		_ = q.tty.Close()
		return curated.Errorf(ErrOpen, err)
	}
	if err := q.tty.Close(); err != nil {
		return curated.Errorf(ErrOpen, err)
	}
	return nil
}

// Quit returns true if the interrupt key has been read.
func (q *Queue) Quit() bool {
	return q.quit
}

func (q *Queue) String() string {
	return fmt.Sprintf("%d pending, %d held", q.Len(), len(q.held))
}

// Service reads pending input from the terminal without blocking and adds the
// resulting events to the queue.
func (q *Queue) Service() error {
	if q.tty == nil {
		return nil
	}

	n, err := q.tty.Available()
	if err != nil {
		return curated.Errorf(ErrOpen, err)
	}

	var b []byte
	if n > 0 {
		b = make([]byte, n)
		n, err = q.tty.Read(b)
		if err != nil {
			return curated.Errorf(ErrOpen, err)
		}
		b = b[:n]
	}

	q.Feed(b)
	return nil
}

// Feed decodes terminal input and adds the resulting events to the queue.
// Keys held from the previous call that are not in the input are released.
func (q *Queue) Feed(b []byte) {
	codes, quit := decode(b)
	if quit {
		q.quit = true
	}

	now := make(map[userinput.KeyCode]bool, len(codes))
	for _, c := range codes {
		now[c] = true
	}

	for c := range q.held {
		if !now[c] {
			q.push(c, userinput.KeyUp)
			delete(q.held, c)
		}
	}

	for _, c := range codes {
		if q.held[c] {
			continue
		}
		q.held[c] = true
		q.push(c, userinput.KeyDown)
	}
}

func (q *Queue) push(c userinput.KeyCode, act userinput.KeyAction) {
	q.Push(userinput.EventKey{
		Device: keyboardDevice,
		Source: userinput.SourceKeyboard,
		Action: act,
		Code:   c,
	})
}
