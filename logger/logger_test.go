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

package logger_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "same")
	log.Log(logger.Allow, "tag", "same")
	log.Log(logger.Allow, "tag", "same")
	test.ExpectEquality(t, log.Len(), 1)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: same (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for i := 0; i < 5; i++ {
		log.Logf(logger.Allow, "tag", "entry %d", i)
	}
	test.ExpectEquality(t, log.Len(), 3)

	w := &strings.Builder{}
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "tag: entry 4\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "one")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: one\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "b", "two")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: two\n")
}

type prohibit struct{}

func (prohibit) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	log.Log(prohibit{}, "tag", "should not appear")
	log.Logf(prohibit{}, "tag", "should not appear %d", 1)
	test.ExpectEquality(t, log.Len(), 0)

	log.Log(logger.Allow, "tag", "should appear")
	test.ExpectEquality(t, log.Len(), 1)
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}
	log.SetEcho(w)
	log.Log(logger.Allow, "echo", "hello")
	test.ExpectEquality(t, w.String(), fmt.Sprintf("%s: %s\n", "echo", "hello"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "world")
	test.ExpectEquality(t, w.String(), "echo: hello\n")
}
