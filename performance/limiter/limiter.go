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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to pace the polling of the input driver.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.New(60)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		drv.Poll(queue)
//	}
package limiter

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/retroinput/curated"
)

// Sentinel errors.
const (
	ErrRate = "limiter: rate: %v"
)

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger a fixed number of times every second.
type Limiter struct {
	period atomic.Int64

	tick chan bool
	done chan bool
	stop sync.Once
}

// New is the preferred method of initialisation for Limiter type. The
// goroutine started by New() runs until Stop() is called.
func New(perSecond int) (*Limiter, error) {
	lim := &Limiter{
		tick: make(chan bool),
		done: make(chan bool),
	}

	err := lim.SetLimit(perSecond)
	if err != nil {
		return nil, err
	}

	// run ticker concurrently
	go func() {
		period := time.Duration(lim.period.Load())
		adjusted := period
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.done:
				return
			}

			time.Sleep(adjusted)

			// the limit may have changed since the last tick
			if p := time.Duration(lim.period.Load()); p != period {
				period = p
				adjusted = p
			}

			nt := time.Now()
			adjusted -= nt.Sub(t) - period
			if adjusted < 0 {
				adjusted = 0
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(perSecond int) error {
	if perSecond <= 0 {
		return curated.Errorf(ErrRate, fmt.Errorf("must be positive (%d)", perSecond))
	}
	lim.period.Store(int64(time.Second / time.Duration(perSecond)))
	return nil
}

// Period returns the time between triggers.
func (lim *Limiter) Period() time.Duration {
	return time.Duration(lim.period.Load())
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	select {
	case <-lim.tick:
	case <-lim.done:
	}
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Calls to Wait() will no longer block.
func (lim *Limiter) Stop() {
	lim.stop.Do(func() {
		close(lim.done)
	})
}
