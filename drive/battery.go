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
	"math"
	"time"

	"github.com/teamfireflies/arcjr/logger"
	"github.com/teamfireflies/arcjr/notifications"
)

// the battery is a simulation. charge drains at a fixed rate per second of
// wall-clock time, with warning notices as it crosses the low and critical
// levels.
const (
	fullCharge     = 100.0
	drainPerSecond = 0.01
	lowCharge      = 25.0
	criticalCharge = 10.0
)

type battery struct {
	notify notifications.Notify

	charge float64
	last   time.Time

	// warning notices are posted once each
	low      bool
	critical bool
}

func newBattery(notify notifications.Notify) *battery {
	return &battery{
		notify: notify,
		charge: fullCharge,
		last:   time.Now(),
	}
}

// update applies drain for the whole seconds elapsed since the last update.
// Calls less than a second apart are no-ops, so calling once per tick is
// fine at any tick rate.
func (bat *battery) update() {
	elapsed := time.Since(bat.last)
	if elapsed < time.Second {
		return
	}

	secs := math.Floor(elapsed.Seconds())
	bat.charge -= secs * drainPerSecond
	if bat.charge < 0.0 {
		bat.charge = 0.0
	}
	bat.last = bat.last.Add(time.Duration(secs * float64(time.Second)))

	if !bat.low && bat.charge <= lowCharge {
		bat.low = true
		bat.post(notifications.NotifyBatteryLow)
	}
	if !bat.critical && bat.charge <= criticalCharge {
		bat.critical = true
		bat.post(notifications.NotifyBatteryCritical)
	}
}

func (bat *battery) post(n notifications.Notice) {
	if bat.notify == nil {
		return
	}
	if err := bat.notify.Notify(n); err != nil {
		logger.Logf("drive", "%v", err)
	}
}
