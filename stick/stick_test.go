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

package stick_test

import (
	"math"
	"testing"

	"github.com/teamfireflies/arcjr/stick"
	"github.com/teamfireflies/arcjr/test"
)

func TestDeadzoneGate(t *testing.T) {
	s := stick.NewSettings()

	// default deadzone is 0.1. anything below it is centred
	test.Equate(t, stick.Transform(0.05, s, stick.X), 0.0)
	test.Equate(t, stick.Transform(-0.05, s, stick.X), 0.0)
	test.Equate(t, stick.Transform(0.0999, s, stick.Y), 0.0)
	test.Equate(t, stick.Transform(0.0, s, stick.X), 0.0)

	// anything above it is not
	if stick.Transform(0.5, s, stick.X) == 0.0 {
		t.Errorf("value above deadzone transformed to zero")
	}
}

func TestTransformConcrete(t *testing.T) {
	s := stick.NewSettings()

	// deadzone 0.1, sensitivity 1.0, exponential 1.5 and a raw value of
	// 0.55: normalised = (0.55-0.1)/0.9 = 0.5, curved = 0.5^1.5
	test.ExpectedSuccess(t, s.SetDeadzone(0.1))
	test.ExpectedSuccess(t, s.SetSensitivity(1.0))
	test.ExpectedSuccess(t, s.SetExponential(1.5))

	test.Approximate(t, stick.Transform(0.55, s, stick.X), 0.35355, 0.0001)
	test.Approximate(t, stick.Transform(-0.55, s, stick.X), -0.35355, 0.0001)
}

func TestMonotonicity(t *testing.T) {
	s := stick.NewSettings()
	test.ExpectedSuccess(t, s.SetExponential(2.5))
	test.ExpectedSuccess(t, s.SetSensitivity(1.8))

	prev := 0.0
	for raw := 0.1; raw <= 1.0; raw += 0.01 {
		v := stick.Transform(raw, s, stick.X)
		if v < prev {
			t.Fatalf("transform not monotonic at raw=%f (%f < %f)", raw, v, prev)
		}
		prev = v
	}
}

func TestBoundedOutput(t *testing.T) {
	s := stick.NewSettings()

	// the most aggressive legal settings can exceed the range before the
	// clamp. the clamp is part of the contract
	test.ExpectedSuccess(t, s.SetSensitivity(2.0))
	test.ExpectedSuccess(t, s.SetExponential(1.0))
	test.ExpectedSuccess(t, s.SetDeadzone(0.0))

	for raw := -1.0; raw <= 1.0; raw += 0.05 {
		v := stick.Transform(raw, s, stick.X)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("transform out of bounds at raw=%f (%f)", raw, v)
		}
	}

	test.Equate(t, stick.Transform(1.0, s, stick.X), 1.0)
	test.Equate(t, stick.Transform(-1.0, s, stick.X), -1.0)
}

func TestYInversion(t *testing.T) {
	s := stick.NewSettings()
	s.SetInvertY(true)

	// inversion applies to the Y axis only
	y := stick.Transform(0.55, s, stick.Y)
	x := stick.Transform(0.55, s, stick.X)
	test.ExpectedSuccess(t, y < 0)
	test.ExpectedSuccess(t, x > 0)
	test.Equate(t, math.Abs(y), x)
}

func TestSetterRejection(t *testing.T) {
	s := stick.NewSettings()

	// out of range requests are silent no-ops
	test.ExpectedFailure(t, s.SetSensitivity(2.5))
	test.Equate(t, s.Sensitivity(), 1.0)

	test.ExpectedFailure(t, s.SetSensitivity(0.05))
	test.Equate(t, s.Sensitivity(), 1.0)

	test.ExpectedFailure(t, s.SetDeadzone(0.6))
	test.Equate(t, s.Deadzone(), 0.1)

	test.ExpectedFailure(t, s.SetDeadzone(-0.1))
	test.Equate(t, s.Deadzone(), 0.1)

	test.ExpectedFailure(t, s.SetExponential(3.5))
	test.Equate(t, s.Exponential(), 1.5)

	// boundary values are accepted
	test.ExpectedSuccess(t, s.SetSensitivity(0.1))
	test.ExpectedSuccess(t, s.SetSensitivity(2.0))
	test.ExpectedSuccess(t, s.SetDeadzone(0.0))
	test.ExpectedSuccess(t, s.SetDeadzone(0.5))
	test.ExpectedSuccess(t, s.SetExponential(1.0))
	test.ExpectedSuccess(t, s.SetExponential(3.0))
}

func TestToggleExponential(t *testing.T) {
	s := stick.NewSettings()

	// default response is curved. first toggle flips to linear
	test.ExpectedFailure(t, s.ToggleExponential())
	test.Equate(t, s.Exponential(), 1.0)

	test.ExpectedSuccess(t, s.ToggleExponential())
	test.Equate(t, s.Exponential(), 1.5)

	// a custom exponential also flips to linear
	test.ExpectedSuccess(t, s.SetExponential(2.2))
	test.ExpectedFailure(t, s.ToggleExponential())
	test.Equate(t, s.Exponential(), 1.0)
}

func TestPresets(t *testing.T) {
	s := stick.NewSettings()
	s.SetInvertY(true)

	test.ExpectedSuccess(t, s.ApplyPreset(stick.PresetFast))
	test.Equate(t, s.Sensitivity(), 1.5)
	test.Equate(t, s.Deadzone(), 0.05)
	test.Equate(t, s.Exponential(), 1.8)

	// presets do not touch inversion
	test.Equate(t, s.InvertY(), true)

	test.ExpectedSuccess(t, s.ApplyPreset(stick.PresetSlow))
	test.Equate(t, s.Sensitivity(), 0.5)

	test.ExpectedFailure(t, s.ApplyPreset(stick.Preset("bogus")))
	test.Equate(t, s.Sensitivity(), 0.5)

	_, ok := stick.ParsePreset("normal")
	test.ExpectedSuccess(t, ok)
	_, ok = stick.ParsePreset("warp")
	test.ExpectedFailure(t, ok)
}

func TestReset(t *testing.T) {
	s := stick.NewSettings()
	s.SetSensitivity(1.9)
	s.SetDeadzone(0.4)
	s.SetInvertY(true)

	s.Reset()
	test.Equate(t, s.Sensitivity(), 1.0)
	test.Equate(t, s.Deadzone(), 0.1)
	test.Equate(t, s.Exponential(), 1.5)
	test.Equate(t, s.InvertY(), false)
}
