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
	"github.com/jetsetilly/retroinput/paths"
	"github.com/jetsetilly/retroinput/prefs"
)

// Preferences defines and collates the preference values used by the input
// driver.
type Preferences struct {
	dsk *prefs.Disk

	// volume keys are not handled by the driver and are passed back to the
	// platform
	VolumeKeys prefs.Bool

	// suppress logging from the driver
	Quiet prefs.Bool

	// name of the autodetect profiles file in the resource directory
	Profiles prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return "input preferences (not on disk)"
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default prefs file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but loads values from the
// named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := defaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.volumekeys", &p.VolumeKeys)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.quiet", &p.Quiet)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.profiles", &p.Profiles)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// preferences that are never loaded from or saved to disk
func defaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all input preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.VolumeKeys.Set(true)
	p.Quiet.Set(false)
	p.Profiles.Set("profiles.toml")
}

// Load input preferences from disk. Does nothing if the preferences were not
// created with NewPreferences().
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current input preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
