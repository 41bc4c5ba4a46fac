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

// Package stick normalises raw analogue stick values. The Transform()
// function takes a raw axis sample in the range [-1, 1] and shapes it
// according to the per-stick Settings: a deadzone gate, re-normalisation of
// the remaining travel, a power-law response curve, a sensitivity scale and
// optional Y-axis inversion. The result is always clamped to [-1, 1].
//
// Settings are mutated only through the bounded setter functions. A request
// outside a setting's valid range is a silent no-op; the setters report
// acceptance with their return value but never raise an error.
package stick

import "math"

// Axis distinguishes the horizontal and vertical channel of a stick. The
// distinction matters only for Y-axis inversion.
type Axis int

// The two axes of a stick.
const (
	X Axis = iota
	Y
)

// Valid ranges for each setting.
const (
	MinSensitivity = 0.1
	MaxSensitivity = 2.0
	MinDeadzone    = 0.0
	MaxDeadzone    = 0.5
	MinExponential = 1.0
	MaxExponential = 3.0
)

// Default values for each setting.
const (
	DefaultSensitivity = 1.0
	DefaultDeadzone    = 0.1
	DefaultExponential = 1.5
)

// the exponential values the ToggleExponential() function flips between.
const (
	linearResponse = 1.0
	curvedResponse = 1.5
)

// Settings gathers the response shaping values for one logical stick.
type Settings struct {
	sensitivity float64
	deadzone    float64
	exponential float64
	invertY     bool
}

// NewSettings is the preferred method of initialisation for the Settings
// type. All values start at their defaults.
func NewSettings() *Settings {
	s := &Settings{}
	s.Reset()
	return s
}

// Reset restores every setting to its default value.
func (s *Settings) Reset() {
	s.sensitivity = DefaultSensitivity
	s.deadzone = DefaultDeadzone
	s.exponential = DefaultExponential
	s.invertY = false
}

// Sensitivity returns the current sensitivity value.
func (s *Settings) Sensitivity() float64 {
	return s.sensitivity
}

// Deadzone returns the current deadzone value.
func (s *Settings) Deadzone() float64 {
	return s.deadzone
}

// Exponential returns the current exponential value.
func (s *Settings) Exponential() float64 {
	return s.exponential
}

// InvertY returns whether the Y axis is inverted.
func (s *Settings) InvertY() bool {
	return s.invertY
}

// SetSensitivity changes the sensitivity value. Values outside the valid
// range are ignored; the return value reports whether the change was
// accepted.
func (s *Settings) SetSensitivity(v float64) bool {
	if v < MinSensitivity || v > MaxSensitivity {
		return false
	}
	s.sensitivity = v
	return true
}

// SetDeadzone changes the deadzone value. Values outside the valid range are
// ignored; the return value reports whether the change was accepted.
func (s *Settings) SetDeadzone(v float64) bool {
	if v < MinDeadzone || v > MaxDeadzone {
		return false
	}
	s.deadzone = v
	return true
}

// SetExponential changes the exponential value. Values outside the valid
// range are ignored; the return value reports whether the change was
// accepted.
func (s *Settings) SetExponential(v float64) bool {
	if v < MinExponential || v > MaxExponential {
		return false
	}
	s.exponential = v
	return true
}

// SetInvertY changes the Y-axis inversion flag.
func (s *Settings) SetInvertY(v bool) bool {
	s.invertY = v
	return true
}

// ToggleInvertY flips the Y-axis inversion flag, returning the new state.
func (s *Settings) ToggleInvertY() bool {
	s.invertY = !s.invertY
	return s.invertY
}

// ToggleExponential flips the response curve between linear and the default
// curve. Returns true if the response is now curved.
func (s *Settings) ToggleExponential() bool {
	if s.exponential == linearResponse {
		s.exponential = curvedResponse
		return true
	}
	s.exponential = linearResponse
	return false
}

// Transform shapes one raw axis sample according to the supplied settings.
//
// The stages are fixed: the deadzone gate, re-normalisation of the remaining
// travel back to the full range (so the dead band does not shrink usable
// travel), the power-law response curve, the sensitivity scale and, for the
// Y axis only, inversion. The final clamp is mandatory; a sensitivity of 2.0
// with a linear response can exceed the range before it.
func Transform(raw float64, s *Settings, axis Axis) float64 {
	if math.Abs(raw) < s.deadzone {
		return 0.0
	}

	sign := 1.0
	if raw < 0 {
		sign = -1.0
	}

	normalized := (math.Abs(raw) - s.deadzone) / (1.0 - s.deadzone)
	curved := math.Pow(normalized, s.exponential)
	v := sign * curved * s.sensitivity

	if axis == Y && s.invertY {
		v = -v
	}

	return clamp(v)
}

func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < -1.0 {
		return -1.0
	}
	return v
}
