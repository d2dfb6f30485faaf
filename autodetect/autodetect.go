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

// Package autodetect configures the key bindings of a player slot when a
// device is first bound to it. The configuration is chosen from a list of
// profiles according to the capabilities of the device.
//
// Profiles are read from a TOML file. For example:
//
//	[[profile]]
//	name = "arcade stick"
//	sources = ["joystick"]
//	dpad = "analog"
//	replace = true
//
//	[profile.keys]
//	button_a = "b"
//	button_b = "a"
//	button_start = "start"
//	back = "menu"
//
// The first profile with a source in common with the device is used. A
// profile with no sources matches every device. The keys table maps key code
// names to button or meta action names. If replace is true the default
// bindings are removed before the profile's keys are bound.
//
// When no profile matches, the slot keeps the default bindings and analog
// directional emulation.
package autodetect

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/controls"
	"github.com/jetsetilly/retroinput/userinput/devices"
	"github.com/jetsetilly/retroinput/userinput/keybinds"
)

// Sentinel error patterns.
const (
	ErrParse   = "autodetect: %v"
	ErrProfile = "autodetect: profile %q: %v"
)

// Profile is a single entry in the profiles file.
type Profile struct {
	Name    string            `toml:"name"`
	Sources []string          `toml:"sources,omitempty"`
	DPad    string            `toml:"dpad,omitempty"`
	Replace bool              `toml:"replace,omitempty"`
	Keys    map[string]string `toml:"keys,omitempty"`
}

type profileFile struct {
	Profiles []Profile `toml:"profile"`
}

// a profile with all the names resolved
type compiled struct {
	name    string
	sources userinput.Source
	dpad    keybinds.DPadEmulation
	replace bool
	keys    map[userinput.KeyCode]controls.Binding
}

func (p compiled) matches(src userinput.Source) bool {
	return p.sources == userinput.SourceNone || p.sources.Has(src)
}

func compile(p Profile) (compiled, error) {
	c := compiled{
		name:    p.Name,
		dpad:    keybinds.DPadEmulationAnalog,
		replace: p.Replace,
		keys:    make(map[userinput.KeyCode]controls.Binding, len(p.Keys)),
	}

	for _, s := range p.Sources {
		f, err := userinput.ParseSource(s)
		if err != nil {
			return c, curated.Errorf(ErrProfile, p.Name, err)
		}
		c.sources |= f
	}

	if p.DPad != "" {
		var err error
		c.dpad, err = keybinds.ParseDPadEmulation(p.DPad)
		if err != nil {
			return c, curated.Errorf(ErrProfile, p.Name, err)
		}
	}

	for k, b := range p.Keys {
		code, err := userinput.ParseKeyCode(k)
		if err != nil {
			return c, curated.Errorf(ErrProfile, p.Name, err)
		}
		bnd, err := controls.ParseBinding(b)
		if err != nil {
			return c, curated.Errorf(ErrProfile, p.Name, err)
		}
		c.keys[code] = bnd
	}

	return c, nil
}

// Profiles implements the devices.Autodetect interface.
type Profiles struct {
	crit     sync.Mutex
	path     string
	profiles []compiled

	perm logger.Permission
}

// NewProfiles is the preferred method of initialisation for the Profiles
// type. The profiles are loaded from the named file. A missing file is not an
// error and results in an empty list of profiles. An empty path means no file
// is used.
func NewProfiles(path string, perm logger.Permission) (*Profiles, error) {
	p := &Profiles{
		path: path,
		perm: perm,
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profiles) String() string {
	p.crit.Lock()
	defer p.crit.Unlock()
	return fmt.Sprintf("%d autodetect profiles", len(p.profiles))
}

// Path returns the path of the profiles file.
func (p *Profiles) Path() string {
	return p.path
}

// Reload the profiles file. The current profiles are kept if the file cannot
// be parsed.
func (p *Profiles) Reload() error {
	if p.path == "" {
		return nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			p.crit.Lock()
			p.profiles = p.profiles[:0]
			p.crit.Unlock()
			return nil
		}
		return curated.Errorf(ErrParse, err)
	}

	return p.Parse(data)
}

// Parse replaces the current profiles with the profiles in the TOML data.
func (p *Profiles) Parse(data []byte) error {
	var f profileFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return curated.Errorf(ErrParse, err)
	}

	profiles := make([]compiled, 0, len(f.Profiles))
	for _, fp := range f.Profiles {
		c, err := compile(fp)
		if err != nil {
			return err
		}
		profiles = append(profiles, c)
	}

	p.crit.Lock()
	p.profiles = profiles
	p.crit.Unlock()

	logger.Logf(p.perm, "autodetect", "%d profiles loaded", len(profiles))

	return nil
}

// Match returns the name of the profile that would be used for a device with
// the capabilities in src. Returns false if no profile matches.
func (p *Profiles) Match(src userinput.Source) (string, bool) {
	p.crit.Lock()
	defer p.crit.Unlock()
	for _, c := range p.profiles {
		if c.matches(src) {
			return c.name, true
		}
	}
	return "", false
}

// Setup implements the devices.Autodetect interface.
func (p *Profiles) Setup(binds *keybinds.Table, slot devices.Slot, rawID int, src userinput.Source) {
	p.crit.Lock()
	defer p.crit.Unlock()

	for _, c := range p.profiles {
		if !c.matches(src) {
			continue
		}

		if c.replace {
			_ = binds.Clear(int(slot))
		}
		for code, b := range c.keys {
			_ = binds.Bind(int(slot), code, b)
		}
		_ = binds.SetDPadEmulation(int(slot), c.dpad)

		logger.Logf(p.perm, "autodetect", "slot %d: device %#x using %q profile", int(slot), rawID, c.name)
		return
	}

	logger.Logf(p.perm, "autodetect", "slot %d: device %#x (%s) using default bindings", int(slot), rawID, src)
}

// Example writes an example profiles file.
func Example(w io.Writer) error {
	f := profileFile{
		Profiles: []Profile{
			{
				Name:    "gamepad",
				Sources: []string{"gamepad", "joystick", "dpad"},
				DPad:    "analog",
				Keys: map[string]string{
					"button_mode": "menu",
					"back":        "menu",
				},
			},
			{
				Name:    "keyboard",
				Sources: []string{"keyboard"},
				DPad:    "none",
			},
			{
				Name:    "touch",
				Sources: []string{"touchscreen", "mouse"},
				DPad:    "analog",
			},
		},
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return curated.Errorf(ErrParse, err)
	}

	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}
