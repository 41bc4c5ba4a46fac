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

package performance_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/teamfireflies/arcjr/performance"
	"github.com/teamfireflies/arcjr/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileCPU))

	p, err = performance.ParseProfile("MEM")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileMem))

	p, err = performance.ParseProfile("all")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileAll))

	p, err = performance.ParseProfile("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileNone))

	_, err = performance.ParseProfile("everything")
	test.ExpectedFailure(t, err)
}

func TestCheck(t *testing.T) {
	buf := &strings.Builder{}

	err := performance.Check(buf, performance.ProfileNone, 100.0, "250ms")
	test.ExpectedSuccess(t, err)

	var achieved float64
	_, err = fmt.Sscanf(buf.String(), "%f ticks/s", &achieved)
	test.ExpectedSuccess(t, err)

	// generous tolerance. the test machine may be heavily loaded.
	if achieved < 20.0 || achieved > 150.0 {
		t.Errorf("achieved rate outside of tolerance (%.2f ticks/s)", achieved)
	}
}

func TestCheckBadDuration(t *testing.T) {
	err := performance.Check(&strings.Builder{}, performance.ProfileNone, 100.0, "quickly")
	test.ExpectedFailure(t, err)
}
