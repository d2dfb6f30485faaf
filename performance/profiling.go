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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/retroinput/curated"
)

// Sentinel errors.
const (
	ErrProfile = "performance: profile: %v"
)

// Profile specifies which profiling files should be created.
type Profile int

// List of valid Profile flags. The flags can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

// ParseProfile converts a comma separated list of profile names into a
// Profile value. Valid names are "none", "cpu", "mem", "trace" and "all".
func ParseProfile(s string) (Profile, error) {
	var p Profile
	s = strings.TrimSpace(s)
	if s == "" {
		return ProfileNone, nil
	}
	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(ErrProfile, fmt.Errorf("unknown profile type (%s)", n))
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function, creating the profile files
// requested by the Profile argument. Files are created in the current
// directory and are named with the filenameHeader as a prefix.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ErrProfile, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ErrProfile, err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ErrProfile, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ErrProfile, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ErrProfile, err)
			}
		}()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf(ErrProfile, err)
		}
		defer trace.Stop()
	}

	if profile&ProfileMem == ProfileMem {
		defer func() {
			f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
			if err != nil {
				if rerr == nil {
					rerr = curated.Errorf(ErrProfile, err)
				}
				return
			}
			defer f.Close()

			runtime.GC()
			err = pprof.WriteHeapProfile(f)
			if err != nil && rerr == nil {
				rerr = curated.Errorf(ErrProfile, err)
			}
		}()
	}

	return run()
}
