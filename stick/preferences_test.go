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
	"os"
	"path/filepath"
	"testing"

	"github.com/teamfireflies/arcjr/prefs"
	"github.com/teamfireflies/arcjr/stick"
	"github.com/teamfireflies/arcjr/test"
)

func TestPreferencesRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "arcjr.prefs")

	left := stick.NewSettings()
	right := stick.NewSettings()

	p, err := stick.NewPreferencesAtPath(pth, left, right)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, left.SetSensitivity(0.8))
	test.ExpectedSuccess(t, left.SetDeadzone(0.2))
	test.ExpectedSuccess(t, right.SetExponential(2.0))
	right.SetInvertY(true)

	test.ExpectedSuccess(t, p.Save())

	// load into a fresh pair of settings
	left2 := stick.NewSettings()
	right2 := stick.NewSettings()

	_, err = stick.NewPreferencesAtPath(pth, left2, right2)
	test.ExpectedSuccess(t, err)

	test.Equate(t, left2.Sensitivity(), 0.8)
	test.Equate(t, left2.Deadzone(), 0.2)
	test.Equate(t, right2.Exponential(), 2.0)
	test.Equate(t, right2.InvertY(), true)

	// untouched values stay at their defaults
	test.Equate(t, left2.Exponential(), 1.5)
	test.Equate(t, right2.Sensitivity(), 1.0)
}

// a value in the preferences file that fails the range check keeps the
// default, without the load being reported as a failure.
func TestPreferencesOutOfRange(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "arcjr.prefs")

	content := prefs.WarningBoilerPlate + "\n" +
		"controller.left.sensitivity :: 9.000\n" +
		"controller.left.deadzone :: 0.300\n"
	test.ExpectedSuccess(t, os.WriteFile(pth, []byte(content), 0600))

	left := stick.NewSettings()
	right := stick.NewSettings()

	_, err := stick.NewPreferencesAtPath(pth, left, right)
	test.ExpectedSuccess(t, err)

	test.Equate(t, left.Sensitivity(), 1.0)
	test.Equate(t, left.Deadzone(), 0.3)
}

// a structurally damaged preferences file abandons the load entirely,
// leaving defaults in place.
func TestPreferencesMalformedFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "arcjr.prefs")

	test.ExpectedSuccess(t, os.WriteFile(pth, []byte("{ not a prefs file }\n"), 0600))

	left := stick.NewSettings()
	right := stick.NewSettings()

	_, err := stick.NewPreferencesAtPath(pth, left, right)
	test.ExpectedFailure(t, err)

	test.Equate(t, left.Sensitivity(), 1.0)
	test.Equate(t, left.Deadzone(), 0.1)
	test.Equate(t, left.Exponential(), 1.5)
}
