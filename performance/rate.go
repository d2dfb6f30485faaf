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

// CalcRate takes the number of polls and the duration (in seconds) and
// returns the polls-per-second and the accuracy of that value as a
// percentage of the target rate. Accuracy is zero if there is no target.
func CalcRate(target int, numPolls int, duration float64) (rate float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(numPolls) / duration
	if target > 0 {
		accuracy = 100 * float64(numPolls) / (duration * float64(target))
	}
	return rate, accuracy
}
