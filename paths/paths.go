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

// Package paths contains functions to prepare paths for retroinput resources.
// Resources are the prefs file and the autodetect profiles file.
//
// If a directory named ".retroinput" exists in the current working directory
// then that is used as the base path. Otherwise the base path is a
// "retroinput" directory in the user's configuration directory, as reported
// by os.UserConfigDir(). The base path is created if it doesn't exist.
package paths

import (
	"os"
	"path/filepath"
)

// name of local resource directory. takes precedence over configDir
const localDir = ".retroinput"

// name of directory in the user's configuration directory
const configDir = "retroinput"

// ResourcePath returns the path to the named resource. Parts of the resource
// name are joined with the path separator. The directory containing the
// resource will be created if it does not exist but the resource itself is
// not checked.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(append([]string{base}, resource...)...)

	if err := os.MkdirAll(filepath.Dir(pth), 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

func getBasePath() (string, error) {
	if info, err := os.Stat(localDir); err == nil && info.IsDir() {
		return localDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configDir), nil
}
