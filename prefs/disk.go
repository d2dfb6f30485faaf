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
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/retroinput/curated"
)

// WarningBoilerPlate is written to the head of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand while the program is running ***"

// DefaultPrefsFile is the name of the prefs file in the resource directory.
const DefaultPrefsFile = "preferences"

// the separator between key and value in the prefs file
const separator = " :: "

// Sentinel error patterns.
const (
	ErrDuplicateKey = "prefs: key already added (%s)"
	ErrLoad         = "prefs: load: %v"
	ErrSave         = "prefs: save: %v"
)

// Disk represents preference values as stored on disk. Keys added to the Disk
// instance are loaded and saved together.
//
// Values in the file for keys that have not been added are preserved when the
// file is saved. This allows more than one Disk instance to share a file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s strings.Builder
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k].String()))
	}
	return s.String()
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the preference value in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(ErrDuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// read the prefs file into a key/value map. a missing file is not an error
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line is the boilerplate
	if !scanner.Scan() {
		return data, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		data[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	return data, scanner.Err()
}

// Load preference values from disk. Values present in the current command
// line group (see PushCommandLineStack()) take precedence over the values in
// the file.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(ErrLoad, err)
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(ErrLoad, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(ErrLoad, err)
			}
		}
	}

	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(ErrSave, err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(ErrSave, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(ErrSave, err)
	}

	return nil
}

// Reset all preference values added to the Disk instance to their zero
// values.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
