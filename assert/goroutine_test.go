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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/retroinput/assert"
	"github.com/jetsetilly/retroinput/test"
)

func TestThread(t *testing.T) {
	th := assert.NewThread()
	test.ExpectSuccess(t, th.Same())
	test.ExpectInequality(t, assert.GoroutineID(), uint64(0))

	done := make(chan bool)
	go func() {
		done <- th.Same()
	}()
	test.ExpectFailure(t, <-done)
}
