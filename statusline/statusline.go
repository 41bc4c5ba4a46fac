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

// Package statusline draws the single line session summary that lives at the
// bottom of the terminal during a drive. It is the receiving end of both the
// control pipeline (it implements control.Consumer) and the notification
// system (it implements notifications.Notify).
//
// The line is rewritten in place with a carriage return rather than printed
// afresh every tick. Messages and notifications are printed as full lines
// "above" the status line; the line is cleared first and redrawn after, so
// scrollback stays readable.
//
// When output has been redirected the display degrades gracefully: the
// per-tick refresh is suppressed entirely and messages are printed without
// colour.
package statusline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/teamfireflies/arcjr/control"
	"github.com/teamfireflies/arcjr/notifications"
	"github.com/teamfireflies/arcjr/terminal"
	"github.com/teamfireflies/arcjr/terminal/ansi"
)

// Mode controls how much detail the status line carries.
type Mode int

// List of display modes. Compact shows the processed stick values only.
// Debug adds the raw values and the measured tick rate.
const (
	Compact Mode = iota
	Debug
)

func (m Mode) String() string {
	switch m {
	case Compact:
		return "compact"
	case Debug:
		return "debug"
	}
	return "unknown"
}

// ParseMode converts a string to a Mode. The boolean return value is false
// if the string is not recognised.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "compact":
		return Compact, true
	case "debug":
		return Debug, true
	}
	return Compact, false
}

// Status is a snapshot of the session state that is not carried by the
// control frames themselves. The drive loop pushes a fresh snapshot every
// tick with SetStatus().
type Status struct {
	// name of the active input source
	Source string

	// true if the source is a physical controller
	Connected bool

	// remaining simulated battery charge as a percentage
	Battery float64

	Recording     bool
	RecordedCount int

	Playing       bool
	PlaybackPos   string
	PlaybackSpeed float64

	// measured tick rate. only shown in Debug mode
	TickRate float64

	// stick values before processing. only shown in Debug mode
	RawLX float64
	RawLY float64
	RawRX float64
	RawRY float64
}

// battery percentages at which the readout changes colour. these match the
// levels at which the battery model posts its warning notices.
const (
	lowBattery      = 25.0
	criticalBattery = 10.0
)

// history sizing. older entries are discarded.
const (
	maxHistory  = 10
	showHistory = 5
)

// Display is the terminal status line and message printer.
type Display struct {
	term *terminal.Terminal
	out  io.Writer

	mode   Mode
	status Status
	frame  control.Frame

	history []string
}

// NewDisplay is the preferred method of initialisation for the Display type.
//
// The supplied Terminal decides interactivity and width. The out writer is
// where all text is sent and would normally be the same file the Terminal
// was initialised with.
func NewDisplay(term *terminal.Terminal, out io.Writer) *Display {
	return &Display{
		term:    term,
		out:     out,
		history: make([]string, 0, maxHistory),
	}
}

// SetMode changes the display mode with immediate effect.
func (dsp *Display) SetMode(mode Mode) {
	dsp.mode = mode
	dsp.Refresh()
}

// Mode returns the current display mode.
func (dsp *Display) Mode() Mode {
	return dsp.mode
}

// CycleMode advances to the next display mode, returning the new mode.
func (dsp *Display) CycleMode() Mode {
	switch dsp.mode {
	case Compact:
		dsp.mode = Debug
	default:
		dsp.mode = Compact
	}
	dsp.Refresh()
	return dsp.mode
}

// SetStatus replaces the session snapshot shown in the status line. The
// line is not redrawn until the next Consume() or Refresh().
func (dsp *Display) SetStatus(status Status) {
	dsp.status = status
}

// Consume implements the control.Consumer interface. The frame's processed
// stick values become the values shown in the status line.
func (dsp *Display) Consume(frame control.Frame) error {
	dsp.frame = frame
	dsp.Refresh()
	return nil
}

// Notify implements the notifications.Notify interface. Notices are printed
// as full lines above the status line.
func (dsp *Display) Notify(notice notifications.Notice) error {
	text, ok := noticeText[notice]
	if !ok {
		text = string(notice)
	}

	if pen := noticePen(notice); pen != "" && dsp.term.IsInteractive() {
		dsp.Print(fmt.Sprintf("%s%s%s", pen, text, ansi.NormalPen))
		return nil
	}

	dsp.Print(text)
	return nil
}

// Print writes a line of text above the status line. The status line is
// cleared before the text is written and redrawn after it.
func (dsp *Display) Print(s string) {
	if dsp.term.IsInteractive() {
		fmt.Fprintf(dsp.out, "\r%s", ansi.ClearLine)
	}
	fmt.Fprintln(dsp.out, s)
	dsp.Refresh()
}

// Printf is a formatted convenience for the Print() function.
func (dsp *Display) Printf(format string, args ...interface{}) {
	dsp.Print(fmt.Sprintf(format, args...))
}

// Refresh redraws the status line in place. It is a no-op when output is
// not a terminal.
func (dsp *Display) Refresh() {
	if !dsp.term.IsInteractive() {
		return
	}

	// leave the last column alone or the terminal will wrap the line
	fmt.Fprintf(dsp.out, "\r%s%s", ansi.ClearLine, dsp.Line(dsp.term.Width()-1))
}

// Clear erases the status line. Called before handing the terminal back to
// the shell.
func (dsp *Display) Clear() {
	if !dsp.term.IsInteractive() {
		return
	}
	fmt.Fprintf(dsp.out, "\r%s", ansi.ClearLine)
}

// Line builds the status line clipped to the specified width. Colour codes
// are only emitted when output is a terminal and are not counted against
// the width.
func (dsp *Display) Line(width int) string {
	s := strings.Builder{}
	colour := dsp.term.IsInteractive()
	n := 0

	add := func(text string, pen string) {
		if n >= width {
			return
		}
		if n+len(text) > width {
			text = text[:width-n]
		}
		if colour && pen != "" {
			s.WriteString(pen)
			s.WriteString(text)
			s.WriteString(ansi.NormalPen)
		} else {
			s.WriteString(text)
		}
		n += len(text)
	}

	sts := dsp.status

	if sts.Recording {
		add(fmt.Sprintf("REC %d", sts.RecordedCount), ansi.Pens["red"])
		add(" | ", "")
	}
	if sts.Playing {
		add(fmt.Sprintf("PLAY %s @%.1fx", sts.PlaybackPos, sts.PlaybackSpeed), ansi.Pens["green"])
		add(" | ", "")
	}

	srcPen := ansi.Pens["yellow"]
	if sts.Connected {
		srcPen = ansi.Pens["green"]
	}
	add(sts.Source, srcPen)

	switch dsp.mode {
	case Debug:
		add(fmt.Sprintf(" | L %+.2f>%+.2f %+.2f>%+.2f", sts.RawLX, dsp.frame.LX, sts.RawLY, dsp.frame.LY), "")
		add(fmt.Sprintf("  R %+.2f>%+.2f %+.2f>%+.2f", sts.RawRX, dsp.frame.RX, sts.RawRY, dsp.frame.RY), "")
	default:
		add(fmt.Sprintf(" | L %+.2f %+.2f", dsp.frame.LX, dsp.frame.LY), "")
		add(fmt.Sprintf("  R %+.2f %+.2f", dsp.frame.RX, dsp.frame.RY), "")
	}

	batPen := ""
	if sts.Battery <= criticalBattery {
		batPen = ansi.Pens["red"]
	} else if sts.Battery <= lowBattery {
		batPen = ansi.Pens["yellow"]
	}
	add(fmt.Sprintf(" | bat %.0f%%", sts.Battery), batPen)

	if dsp.mode == Debug {
		add(fmt.Sprintf(" | %.1fHz", sts.TickRate), "")
	}

	return s.String()
}

// AddHistory records a command description for later recall with
// ShowHistory(). Entries are timestamped as they arrive.
func (dsp *Display) AddHistory(entry string) {
	entry = fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), entry)
	dsp.history = append(dsp.history, entry)
	if len(dsp.history) > maxHistory {
		dsp.history = dsp.history[len(dsp.history)-maxHistory:]
	}
}

// ShowHistory prints the most recent commands, newest last.
func (dsp *Display) ShowHistory() {
	if len(dsp.history) == 0 {
		dsp.Print("no recent commands")
		return
	}

	dsp.Print("recent commands:")
	n := len(dsp.history) - showHistory
	if n < 0 {
		n = 0
	}
	for _, e := range dsp.history[n:] {
		dsp.Print(fmt.Sprintf("  %s", e))
	}
}

// human readable text for each notice.
var noticeText = map[notifications.Notice]string{
	notifications.NotifyControllerConnected:    "controller connected",
	notifications.NotifyControllerDisconnected: "controller disconnected. keyboard input",
	notifications.NotifyRecordingStarted:       "recording started",
	notifications.NotifyRecordingStopped:       "recording stopped",
	notifications.NotifyRecordingCleared:       "recording cleared",
	notifications.NotifyPlaybackStarted:        "playback started",
	notifications.NotifyPlaybackStopped:        "playback stopped",
	notifications.NotifyPlaybackCompleted:      "playback completed",
	notifications.NotifySettingsSaved:          "settings saved",
	notifications.NotifySettingsLoaded:         "settings loaded",
	notifications.NotifySettingsReset:          "settings reset to defaults",
	notifications.NotifyBatteryLow:             "battery low",
	notifications.NotifyBatteryCritical:        "battery critically low",
}

// noticePen selects the colour a notice is printed in. the empty string
// means the default pen.
func noticePen(notice notifications.Notice) string {
	switch notice {
	case notifications.NotifyControllerConnected,
		notifications.NotifyPlaybackStarted,
		notifications.NotifySettingsSaved,
		notifications.NotifySettingsLoaded:
		return ansi.Pens["green"]
	case notifications.NotifyControllerDisconnected,
		notifications.NotifyRecordingStarted,
		notifications.NotifyBatteryCritical:
		return ansi.Pens["red"]
	case notifications.NotifyBatteryLow,
		notifications.NotifySettingsReset:
		return ansi.Pens["yellow"]
	case notifications.NotifyPlaybackCompleted:
		return ansi.Pens["cyan"]
	}
	return ""
}
