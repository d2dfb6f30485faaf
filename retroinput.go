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

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/prefs"
	"github.com/jetsetilly/retroinput/statsview"
	"github.com/jetsetilly/retroinput/version"
)

// options shared by every mode
type options struct {
	prefsFile    string
	profilesFile string
	overlayFile  string
	override     string
	statsview    bool
	statsAddr    string
	dump         string
	wav          string
	audio        string
	rate         int
	log          bool
	quiet        bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   version.ApplicationName,
	Short: "Normalise input from keyboards, gamepads and touch screens",
	Long: `Reads input events from one of several platforms and normalises them
into joypad, pointer and meta action state. The state is shown while the
program runs.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// SDL must be serviced from the main thread
	runtime.LockOSThread()

	f := rootCmd.PersistentFlags()
	f.StringVar(&opts.prefsFile, "prefs", "", "preferences file (default is in the resource directory)")
	f.StringVar(&opts.override, "pref", "", "override preferences. eg. input.volumekeys::false; input.quiet::true")
	f.StringVar(&opts.profilesFile, "profiles", "", "autodetect profiles file (default is the input.profiles preference)")
	f.StringVar(&opts.overlayFile, "overlay", "", "overlay layout file")
	f.BoolVar(&opts.statsview, "statsview", false, "run the stats server")
	f.StringVar(&opts.statsAddr, "statsaddr", statsview.Address, "address of the stats server")
	f.StringVar(&opts.dump, "dump", "", "write a graph of the driver state to file on exit")
	f.StringVar(&opts.wav, "wav", "", "write audio feedback to a WAV file")
	f.StringVar(&opts.audio, "audio", "", "audio feedback device (oto or sdl)")
	f.IntVar(&opts.rate, "rate", 60, "number of polls per second")
	f.BoolVar(&opts.log, "log", false, "echo log to stderr")
	f.BoolVar(&opts.quiet, "quiet", false, "do not show input state")
}

func setup(cmd *cobra.Command, _ []string) error {
	if opts.log {
		logger.SetEcho(os.Stderr)
	}
	if opts.override != "" {
		prefs.PushCommandLineStack(opts.override)
	}
	if opts.statsview {
		statsview.Launch(cmd.OutOrStdout(), opts.statsAddr)
	}
	if opts.rate <= 0 {
		return fmt.Errorf("rate must be positive (%d)", opts.rate)
	}
	return nil
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		// cobra has already printed the error
		os.Exit(10)
	}
}
