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

// Queue is the source of events drained by the input driver on every poll.
//
// Every event returned by GetEvent() must be passed back to FinishEvent().
// The handled argument is false if the event should continue to be processed
// by the platform. Volume keys are the usual example of this.
type Queue interface {
	HasEvents() bool
	GetEvent() Event
	FinishEvent(ev Event, handled bool)
}

// SliceQueue is an in-memory implementation of the Queue interface. The zero
// value is an empty queue.
type SliceQueue struct {
	pending   []Event
	finished  int
	unhandled []Event
}

// Push events onto the end of the queue.
func (q *SliceQueue) Push(ev ...Event) {
	q.pending = append(q.pending, ev...)
}

// HasEvents implements the Queue interface.
func (q *SliceQueue) HasEvents() bool {
	return len(q.pending) > 0
}

// GetEvent implements the Queue interface. Returns nil if the queue is empty.
func (q *SliceQueue) GetEvent() Event {
	if len(q.pending) == 0 {
		return nil
	}
	ev := q.pending[0]
	q.pending = q.pending[1:]
	return ev
}

// FinishEvent implements the Queue interface.
func (q *SliceQueue) FinishEvent(ev Event, handled bool) {
	q.finished++
	if !handled {
		q.unhandled = append(q.unhandled, ev)
	}
}

// Len returns the number of events still in the queue.
func (q *SliceQueue) Len() int {
	return len(q.pending)
}

// Finished returns the number of events that have been passed to
// FinishEvent().
func (q *SliceQueue) Finished() int {
	return q.finished
}

// Unhandled returns the events that were finished with handled set to false,
// in the order they were finished.
func (q *SliceQueue) Unhandled() []Event {
	return q.unhandled
}

// Reset forgets the finished and unhandled events. Pending events are
// unaffected.
func (q *SliceQueue) Reset() {
	q.finished = 0
	q.unhandled = q.unhandled[:0]
}
