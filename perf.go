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
	"github.com/spf13/cobra"

	"github.com/jetsetilly/retroinput/performance"
)

var perfOpts struct {
	duration string
	profile  string
	uncapped bool
}

var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: "Measure the cost of polling the input driver",
	Long: `Polls the input driver with synthetic events for a fixed duration and
reports the poll rate. Profiling files can be created with the --profile flag.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		profile, err := performance.ParseProfile(perfOpts.profile)
		if err != nil {
			return err
		}
		return performance.Check(cmd.OutOrStdout(), profile, perfOpts.duration, perfOpts.uncapped)
	},
}

func init() {
	f := perfCmd.Flags()
	f.StringVar(&perfOpts.duration, "duration", "5s", "run duration (after a two second lead time)")
	f.StringVar(&perfOpts.profile, "profile", "none", "create profiling data. cpu, mem, trace or all")
	f.BoolVar(&perfOpts.uncapped, "uncapped", true, "poll as fast as possible")
	rootCmd.AddCommand(perfCmd)
}
