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

package debounce

import (
	"time"

	"github.com/teamfireflies/arcjr/control"
	"github.com/teamfireflies/arcjr/logger"
)

// Trigger thresholds. An analog trigger engages only above TriggerPress and
// disengages only below TriggerRelease. Values between the two thresholds
// hold whatever state the trigger is already in.
const (
	TriggerPress   = 0.5
	TriggerRelease = 0.1
)

// haptic pulse sent on every press event
const (
	pulseStrength = 0.5
	pulseDuration = 100 * time.Millisecond
)

// Rumbler is any device that can produce a haptic pulse. Pulses are
// fire-and-forget so implementations should return quickly.
type Rumbler interface {
	Rumble(strength float64, d time.Duration) error
}

// Debouncer tracks the pressed state of every action and emits an event only
// on a change of state.
type Debouncer struct {
	pressed map[control.Action]bool

	rumbler Rumbler
	haptics bool

	// a failing Rumbler is logged once per attachment
	rumbleFailed bool
}

// NewDebouncer is the preferred method of initialisation for the Debouncer
// type. Haptic feedback is enabled by default but no Rumbler is attached.
func NewDebouncer() *Debouncer {
	return &Debouncer{
		pressed: make(map[control.Action]bool),
		haptics: true,
	}
}

// SetRumbler attaches the device that receives haptic pulses. A nil value
// detaches any previous Rumbler.
func (deb *Debouncer) SetRumbler(r Rumbler) {
	deb.rumbler = r
	deb.rumbleFailed = false
}

// SetHaptics enables or disables haptic feedback on press events.
func (deb *Debouncer) SetHaptics(enabled bool) {
	deb.haptics = enabled
}

// Haptics returns whether haptic feedback is currently enabled.
func (deb *Debouncer) Haptics() bool {
	return deb.haptics
}

// IsPressed returns the current debounced state of the action.
func (deb *Debouncer) IsPressed(act control.Action) bool {
	return deb.pressed[act]
}

// Reset forgets all pressed state without emitting any events.
func (deb *Debouncer) Reset() {
	deb.pressed = make(map[control.Action]bool)
}

// Button processes one sample of an ordinary button. The returned boolean is
// true if the sample caused a state change and the accompanying event is
// valid.
func (deb *Debouncer) Button(act control.Action, down bool) (control.Event, bool) {
	if down == deb.pressed[act] {
		return control.Event{}, false
	}

	deb.pressed[act] = down
	if down {
		deb.pulse()
	}

	return control.Event{Action: act, Pressed: down}, true
}

// Trigger processes one sample of an analog trigger. The value is the raw
// axis reading in the range [-1, 1]. The returned boolean is true if the
// sample caused a state change and the accompanying event is valid.
func (deb *Debouncer) Trigger(act control.Action, value float64) (control.Event, bool) {
	if deb.pressed[act] {
		if value < TriggerRelease {
			deb.pressed[act] = false
			return control.Event{Action: act, Pressed: false}, true
		}
		return control.Event{}, false
	}

	if value > TriggerPress {
		deb.pressed[act] = true
		deb.pulse()
		return control.Event{Action: act, Pressed: true}, true
	}

	return control.Event{}, false
}

// pulse requests a haptic pulse from the attached Rumbler. a failing Rumbler
// never affects debounce state.
func (deb *Debouncer) pulse() {
	if !deb.haptics || deb.rumbler == nil {
		return
	}
	err := deb.rumbler.Rumble(pulseStrength, pulseDuration)
	if err != nil && !deb.rumbleFailed {
		deb.rumbleFailed = true
		logger.Logf("debounce", "%v", err)
	}
}
