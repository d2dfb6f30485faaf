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

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/retroinput/statsview"
	"github.com/jetsetilly/retroinput/test"
)

func TestLaunch(t *testing.T) {
	w := &test.Writer{}
	statsview.Launch(w, "localhost:0")
	test.ExpectSuccess(t, w.Contains("stats server available"))

	w.Clear()
	statsview.Launch(w, "")
	test.ExpectEquality(t, w.String(), "")
}
