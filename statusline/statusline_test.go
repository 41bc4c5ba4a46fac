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

package statusline_test

import (
	"strings"
	"testing"

	"github.com/teamfireflies/arcjr/control"
	"github.com/teamfireflies/arcjr/notifications"
	"github.com/teamfireflies/arcjr/statusline"
	"github.com/teamfireflies/arcjr/terminal"
	"github.com/teamfireflies/arcjr/test"
)

// an uninitialised terminal is never interactive, which means the display
// emits plain text with no colour codes and no in-place refreshes. exactly
// what we want for string comparison.
func testDisplay() (*statusline.Display, *strings.Builder) {
	buf := &strings.Builder{}
	return statusline.NewDisplay(&terminal.Terminal{}, buf), buf
}

func TestLineCompact(t *testing.T) {
	dsp, _ := testDisplay()

	dsp.SetStatus(statusline.Status{
		Source:    "controller",
		Connected: true,
		Battery:   100.0,
	})
	err := dsp.Consume(control.Frame{LX: 0.35, LY: -0.5, RX: 0.0, RY: 1.0})
	test.ExpectedSuccess(t, err)

	test.Equate(t, dsp.Line(79), "controller | L +0.35 -0.50  R +0.00 +1.00 | bat 100%")
}

func TestLineDebug(t *testing.T) {
	dsp, _ := testDisplay()
	dsp.SetMode(statusline.Debug)

	dsp.SetStatus(statusline.Status{
		Source:    "controller",
		Connected: true,
		Battery:   100.0,
		TickRate:  20.0,
		RawLX:     0.4,
		RawLY:     -0.6,
	})
	err := dsp.Consume(control.Frame{LX: 0.35, LY: -0.5})
	test.ExpectedSuccess(t, err)

	test.Equate(t, dsp.Line(120),
		"controller | L +0.40>+0.35 -0.60>-0.50  R +0.00>+0.00 +0.00>+0.00 | bat 100% | 20.0Hz")
}

func TestLineMarkers(t *testing.T) {
	dsp, _ := testDisplay()

	dsp.SetStatus(statusline.Status{
		Source:        "keyboard",
		Battery:       50.0,
		Recording:     true,
		RecordedCount: 42,
	})
	test.Equate(t, dsp.Line(120), "REC 42 | keyboard | L +0.00 +0.00  R +0.00 +0.00 | bat 50%")

	dsp.SetStatus(statusline.Status{
		Source:        "keyboard",
		Battery:       50.0,
		Playing:       true,
		PlaybackPos:   "3/10",
		PlaybackSpeed: 2.0,
	})
	test.Equate(t, dsp.Line(120), "PLAY 3/10 @2.0x | keyboard | L +0.00 +0.00  R +0.00 +0.00 | bat 50%")
}

func TestLineClip(t *testing.T) {
	dsp, _ := testDisplay()

	dsp.SetStatus(statusline.Status{
		Source:    "controller",
		Connected: true,
		Battery:   100.0,
	})

	full := dsp.Line(200)
	clipped := dsp.Line(20)
	test.Equate(t, len(clipped), 20)
	test.Equate(t, clipped, full[:20])
}

func TestCycleMode(t *testing.T) {
	dsp, _ := testDisplay()

	test.Equate(t, dsp.Mode().String(), "compact")
	test.Equate(t, dsp.CycleMode().String(), "debug")
	test.Equate(t, dsp.CycleMode().String(), "compact")
}

func TestParseMode(t *testing.T) {
	m, ok := statusline.ParseMode("debug")
	test.Equate(t, ok, true)
	test.Equate(t, m.String(), "debug")

	m, ok = statusline.ParseMode("COMPACT")
	test.Equate(t, ok, true)
	test.Equate(t, m.String(), "compact")

	_, ok = statusline.ParseMode("verbose")
	test.Equate(t, ok, false)
}

func TestNotify(t *testing.T) {
	dsp, buf := testDisplay()

	err := dsp.Notify(notifications.NotifyControllerConnected)
	test.ExpectedSuccess(t, err)
	test.Equate(t, buf.String(), "controller connected\n")

	buf.Reset()
	err = dsp.Notify(notifications.Notice("NotifySomethingElse"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, buf.String(), "NotifySomethingElse\n")
}

func TestHistory(t *testing.T) {
	dsp, buf := testDisplay()

	dsp.ShowHistory()
	test.Equate(t, buf.String(), "no recent commands\n")

	for _, c := range []string{
		"record start", "record stop", "playback start", "playback stop",
		"sensitivity 0.5", "deadzone 0.10", "invert Y", "save settings",
		"display debug", "battery check", "history", "reset settings",
	} {
		dsp.AddHistory(c)
	}

	buf.Reset()
	dsp.ShowHistory()
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	// header plus the five most recent entries
	test.Equate(t, len(lines), 6)
	test.Equate(t, lines[0], "recent commands:")
	test.Equate(t, strings.Contains(lines[1], "save settings"), true)
	test.Equate(t, strings.Contains(lines[5], "reset settings"), true)
}
