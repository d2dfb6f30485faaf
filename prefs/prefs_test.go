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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/prefs"
	"github.com/jetsetilly/retroinput/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// duplicate keys are not allowed
	err = dsk.Add("test", &w)
	test.ExpectSuccess(t, curated.Is(err, prefs.ErrDuplicateKey))
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloatAndString(t *testing.T) {
	var f prefs.Float
	test.ExpectSuccess(t, f.Set("0.8"))
	test.ExpectEquality(t, f.String(), "0.800")
	test.ExpectFailure(t, f.Set("x"))

	var s prefs.String
	test.ExpectEquality(t, s.String(), "")
	test.ExpectSuccess(t, s.Set("profiles.toml"))
	test.ExpectEquality(t, s.Get().(string), "profiles.toml")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	// save values with one disk instance and load them with another
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("input.volumekeys", &v))
	test.ExpectSuccess(t, dsk.Add("other", &w))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set(7))
	test.DemandSuccess(t, dsk.Save())

	// the second disk only knows about one of the keys
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v2 prefs.Bool
	test.ExpectSuccess(t, dsk2.Add("input.volumekeys", &v2))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, v2.Get().(bool), true)

	// saving the second disk must preserve the unknown key
	test.ExpectSuccess(t, v2.Set(false))
	test.DemandSuccess(t, dsk2.Save())
	cmpFile(t, fn, "input.volumekeys :: false\nother :: 7\n")
}

func TestLoadCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("input.quiet", &v))

	// command line value overrides the (missing) file
	prefs.PushCommandLineStack("input.quiet::true")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, seen, 5)

	// the pre hook prevents the value being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, seen, 5)
}
