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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/performance/limiter"
	"github.com/jetsetilly/retroinput/userinput"
	"github.com/jetsetilly/retroinput/userinput/driver"
)

// Sentinel errors.
const (
	ErrCheck = "performance: %v"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Rate is the number of polls per second when the check is capped.
const Rate = 60

// EventsPerPoll is the number of synthetic events queued before every poll.
const EventsPerPoll = 16

// LeadTime is the time the check runs for before measurement begins.
const LeadTime = 2 * time.Second

// Check the performance of the input driver.
//
// The driver will be polled for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, duration string, uncapped bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(ErrCheck, err)
	}

	drv, err := driver.New(driver.Options{})
	if err != nil {
		return curated.Errorf(ErrCheck, err)
	}
	defer drv.Free()

	var lim *limiter.Limiter
	if !uncapped {
		lim, err = limiter.New(Rate)
		if err != nil {
			return curated.Errorf(ErrCheck, err)
		}
		defer lim.Stop()
	}

	synth := NewSynth(drv)
	queue := &userinput.SliceQueue{}

	// number of polls at the start of the measurement period
	var startPolls int

	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 2)

		// the lead time will put false on the timerChan. the conclusion of the
		// rest of the time will put true on the timerChan.
		time.AfterFunc(LeadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			if lim != nil {
				lim.Wait()
			}

			synth.Generate(queue, EventsPerPoll)
			drv.Poll(queue)
			queue.Reset()

			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startPolls = drv.PollStats().Polls
			default:
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(ErrCheck, err)
	}

	stats := drv.PollStats()
	numPolls := stats.Polls - startPolls

	target := Rate
	if uncapped {
		target = 0
	}

	rate, accuracy := CalcRate(target, numPolls, dur.Seconds())
	if uncapped {
		fmt.Fprintf(output, "%.2f polls/sec (%d polls in %.2f seconds)\n", rate, numPolls, dur.Seconds())
	} else {
		fmt.Fprintf(output, "%.2f polls/sec (%d polls in %.2f seconds) %.1f%%\n", rate, numPolls, dur.Seconds(), accuracy)
	}
	fmt.Fprintln(output, stats.String())

	return nil
}
