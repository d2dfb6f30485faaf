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

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string

	// number of times the entry has been repeated
	repeated int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a bounded list of log entries. Most packages should use the
// package level functions, which log to the central logger.
//
// A Logger is safe to use from more than one goroutine. Platform adapters
// (fsnotify watchers, audio callbacks) log from outside the main thread.
type Logger struct {
	crit       sync.Mutex
	maxEntries int
	entries    []Entry

	// entries are also written to echo, if it is not nil
	echo io.Writer

	// the index of the first entry not yet seen by WriteRecent()
	recentStart int
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the logger if the Permission allows it.
func (l *Logger) Log(perm Permission, tag, detail string) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	// an identical entry to the last one is not added, the repeat count of the
	// last entry is increased instead
	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		e := &l.entries[n-1]
		e.repeated++
		e.Timestamp = time.Now()
		if l.echo != nil {
			io.WriteString(l.echo, e.String())
		}
		return
	}

	l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})

	if len(l.entries) > l.maxEntries {
		trim := len(l.entries) - l.maxEntries
		l.entries = l.entries[trim:]
		l.recentStart -= trim
		if l.recentStart < 0 {
			l.recentStart = 0
		}
	}

	if l.echo != nil {
		e := &l.entries[len(l.entries)-1]
		io.WriteString(l.echo, e.String())
	}
}

// Logf adds a formatted entry to the logger if the Permission allows it.
func (l *Logger) Logf(perm Permission, tag, detail string, args ...interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	l.Log(Allow, tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the logger.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
	l.recentStart = 0
}

// Write contents of logger to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for i := range l.entries {
		io.WriteString(output, l.entries[i].String())
	}
}

// WriteRecent writes only the entries added since the last call to
// WriteRecent.
func (l *Logger) WriteRecent(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for i := l.recentStart; i < len(l.entries); i++ {
		io.WriteString(output, l.entries[i].String())
	}
	l.recentStart = len(l.entries)
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if number > len(l.entries) {
		number = len(l.entries)
	}
	for i := len(l.entries) - number; i < len(l.entries); i++ {
		io.WriteString(output, l.entries[i].String())
	}
}

// SetEcho prints new log entries to io.Writer as they are added. A nil
// writer turns echoing off.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}

// Len returns the number of entries in the logger.
func (l *Logger) Len() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return len(l.entries)
}
