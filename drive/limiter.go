// This file is part of ArcJr.
//
// ArcJr is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ArcJr is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ArcJr.  If not, see <https://www.gnu.org/licenses/>.

package drive

import (
	"time"
)

// limiter paces the tick loop with a pulse ticker and measures the rate
// actually being achieved.
type limiter struct {
	pulse *time.Ticker

	// measurement of the actual tick rate
	measureCt    int
	measureTime  time.Time
	measurePulse *time.Ticker
	measured     float64
}

func newLimiter(hz float64) *limiter {
	lmt := &limiter{
		measured: hz,
	}
	lmt.pulse = time.NewTicker(time.Duration(float64(time.Second) / hz))
	lmt.measurePulse = time.NewTicker(time.Second)
	lmt.measureTime = time.Now()
	return lmt
}

// wait blocks until the next tick is due.
func (lmt *limiter) wait() {
	<-lmt.pulse.C
	lmt.measureCt++

	select {
	case <-lmt.measurePulse.C:
		t := time.Now()
		lmt.measured = float64(lmt.measureCt) / t.Sub(lmt.measureTime).Seconds()
		lmt.measureTime = t
		lmt.measureCt = 0
	default:
	}
}

// actual returns the most recently measured tick rate. The requested rate is
// returned until the first measurement window completes.
func (lmt *limiter) actual() float64 {
	return lmt.measured
}

func (lmt *limiter) release() {
	lmt.pulse.Stop()
	lmt.measurePulse.Stop()
}
