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

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the input driver for a fixed duration of
// time against a stream of synthetic events. It will optionally generate
// profiling information.
//
// RunProfiler() can be used to generate the various profile types. On it's own
// it will not limit the amount of time the program runs for so it is useful
// for more real-world situations.
//
// CalcRate() calculates polls-per-second in aggregate along with an accuracy
// value (as compared to the requested rate). Not suitable for "live"
// monitoring.
package performance
