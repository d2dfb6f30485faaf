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
	"sort"
	"strings"
)

// a group of key/value pairs taken from a single command line argument
type group map[string]string

// parse a string of the form "key::value; key::value". malformed pairs are
// silently ignored
func parseGroup(s string) group {
	g := make(group)
	for _, p := range strings.Split(s, ";") {
		kv := strings.Split(p, "::")
		if len(kv) != 2 {
			continue
		}
		g[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return g
}

// the string form of the group with keys in sorted order
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, g[k]))
	}
	return strings.Join(s, "; ")
}

var commandLineStack []group

// PushCommandLineStack parses a prefs string from the command line and adds it
// as a new group. Values in the group override the values loaded by
// Disk.Load() until the group is popped.
func PushCommandLineStack(prefs string) {
	commandLineStack = append(commandLineStack, parseGroup(prefs))
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the unused preferences of the group.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	g := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return g.String()
}

// GetCommandLinePref returns the value of key in the most recent group. The
// value is deleted from the group when it is returned.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}
	g := commandLineStack[len(commandLineStack)-1]
	if v, ok := g[key]; ok {
		delete(g, key)
		return true, v
	}
	return false, ""
}
