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

package performance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/performance"
	"github.com/jetsetilly/retroinput/test"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/driver"
	"github.com/jetsetilly/retroinput/userinput/pointer"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,trace")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = performance.ParseProfile("ALL")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfile("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, performance.ErrProfile))
}

func TestCalcRate(t *testing.T) {
	rate, accuracy := performance.CalcRate(60, 120, 2.0)
	test.ExpectEquality(t, rate, 60.0)
	test.ExpectEquality(t, accuracy, 100.0)

	rate, accuracy = performance.CalcRate(0, 100, 2.0)
	test.ExpectEquality(t, rate, 50.0)
	test.ExpectEquality(t, accuracy, 0.0)

	rate, _ = performance.CalcRate(60, 100, 0)
	test.ExpectEquality(t, rate, 0.0)
}

func TestRunProfiler(t *testing.T) {
	wd, wdErr := os.Getwd()
	test.DemandSuccess(t, wdErr)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(filepath.Join(".", "test_cpu.profile"))
	test.ExpectSuccess(t, err == nil)
	_, err = os.Stat(filepath.Join(".", "test_mem.profile"))
	test.ExpectSuccess(t, err == nil)
	_, err = os.Stat(filepath.Join(".", "test_trace.profile"))
	test.ExpectSuccess(t, os.IsNotExist(err))
}

type counter int64

func (c counter) Sequence() int64 {
	return int64(c)
}

func TestSynth(t *testing.T) {
	drv, err := driver.New(driver.Options{})
	test.DemandSuccess(t, err)

	synth := performance.NewSynth(counter(0))
	q := &userinput.SliceQueue{}

	for i := 0; i < 100; i++ {
		synth.Generate(q, 20)
		test.ExpectEquality(t, q.Len(), 20)
		drv.Poll(q)
		test.ExpectSuccess(t, len(drv.Pointers()) <= pointer.MaxTouch)
	}

	// generated touch events never exceed the number of contacts
	test.ExpectEquality(t, drv.PollStats().RejectedContacts, 0)

	synth.Release(q)
	drv.Poll(q)
	test.ExpectEquality(t, len(drv.Pointers()), 0)
	test.ExpectEquality(t, drv.Lifecycle(), 0)
}

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("performance check is slow")
	}

	w := &test.Writer{}
	err := performance.Check(w, performance.ProfileNone, "100ms", true)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("polls/sec"))

	err = performance.Check(w, performance.ProfileNone, "ten seconds", true)
	test.ExpectSuccess(t, curated.Is(err, performance.ErrCheck))
}
