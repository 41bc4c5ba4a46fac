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

// Package control defines the unit of output of the driving session: the
// control frame. One frame is emitted per tick and carries the four
// normalised stick axes along with whatever discrete action events resolved
// during that tick. The frame is also the unit of recording.
package control

import (
	"fmt"
	"strings"
)

// Action is a logical rover action. Exactly one physical input maps to each
// action.
type Action string

// List of defined actions.
const (
	Stop       Action = "STOP"        // emergency stop
	ToggleMode Action = "TOGGLE_MODE" // toggle between manual/autonomous
	CameraUp   Action = "CAMERA_UP"   // tilt camera up
	CameraDown Action = "CAMERA_DOWN" // tilt camera down
	SpeedLow   Action = "SPEED_LOW"   // low speed mode
	SpeedHigh  Action = "SPEED_HIGH"  // high speed mode
	ArmUp      Action = "ARM_UP"      // raise arm
	ArmDown    Action = "ARM_DOWN"    // lower arm
	Calibrate  Action = "CALIBRATE"   // calibration mode
	Reset      Action = "RESET"       // reset rover
)

// Actions is the list of defined actions in canonical order. The debouncer
// and the transcript encoding both rely on this order being fixed.
var Actions = []Action{
	Stop, ToggleMode, CameraUp, CameraDown, SpeedLow,
	SpeedHigh, ArmUp, ArmDown, Calibrate, Reset,
}

// ParseAction converts a string to an Action, reporting whether the string
// names a defined action.
func ParseAction(s string) (Action, bool) {
	for _, a := range Actions {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Event is a single action transition. Pressed is true for the
// released-to-pressed edge and false for the opposite edge.
type Event struct {
	Action  Action
	Pressed bool
}

func (e Event) String() string {
	if e.Pressed {
		return fmt.Sprintf("%s+", e.Action)
	}
	return fmt.Sprintf("%s-", e.Action)
}

// Frame is one tick's complete normalised output. Axis values are always in
// the range [-1, 1].
type Frame struct {
	LX float64
	LY float64
	RX float64
	RY float64

	// the action transitions that resolved this tick, in canonical action
	// order. nil when no transitions occurred
	Events []Event
}

func (f Frame) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("L: %+.2f %+.2f | R: %+.2f %+.2f", f.LX, f.LY, f.RX, f.RY))
	for _, e := range f.Events {
		s.WriteString(fmt.Sprintf(" %s", e.String()))
	}
	return s.String()
}

// Consumer is the destination for assembled frames. The shipped program
// attaches the terminal status line but a vehicle transport would implement
// the same interface.
type Consumer interface {
	Consume(frame Frame) error
}
