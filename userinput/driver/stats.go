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

package driver

import (
	"fmt"
	"time"
)

// PollStats records the cost of calls to Poll() and the number of events
// that could not be applied.
type PollStats struct {
	Polls  int
	Events int

	// duration of the most recent poll and the longest poll
	Last    time.Duration
	Longest time.Duration
	Total   time.Duration

	// contacts rejected because the index was out of range
	RejectedContacts int

	// devices that had to share the last player slot
	AliasedDevices int
}

// Mean returns the average duration of a poll.
func (s PollStats) Mean() time.Duration {
	if s.Polls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Polls)
}

func (s PollStats) String() string {
	return fmt.Sprintf("%d polls, %d events, mean %v, longest %v, %d rejected contacts, %d aliased devices",
		s.Polls, s.Events, s.Mean(), s.Longest, s.RejectedContacts, s.AliasedDevices)
}

func (s *PollStats) record(d time.Duration, events int) {
	s.Polls++
	s.Events += events
	s.Last = d
	s.Total += d
	if d > s.Longest {
		s.Longest = d
	}
}
