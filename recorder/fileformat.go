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

package recorder

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/teamfireflies/arcjr/control"
	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/logger"
)

// transcript file format
// ----------------------
//
// four header lines:
//
//	# arcjr recording
//	# version: 1.0
//	# tick rate: 20
//	# date: Sun, 23 Aug 2026 14:03:22 UTC
//
// followed by one line per recorded command. fields are separated by
// semicolons:
//
//	timestamp;left x;left y;right x;right y;events
//
// the events field is a comma separated list of action transitions, "STOP+"
// for a press and "STOP-" for a release, and may be empty.

const (
	fieldTimestamp int = iota
	fieldLeftX
	fieldLeftY
	fieldRightX
	fieldRightY
	fieldEvents
	numFields
)

const (
	fieldSep = ";"
	eventSep = ","
)

const (
	lineMagic int = iota
	lineVersion
	lineTickRate
	lineDate
	numHeaderLines
)

const (
	magicLine      = "# arcjr recording"
	versionPrefix  = "# version: "
	tickRatePrefix = "# tick rate: "
	datePrefix     = "# date: "
)

// transcript version expected by this build
const transcriptVersion = "1.0"

// Sentinel error returned by Load for files that are not arcjr transcripts.
const NotATranscript = "recorder: %s is not an arcjr transcript"

// Write exports the recorded session as a transcript. The tick rate the
// session was recorded at is carried in the header so that later playback
// can run at the same cadence.
func (rec *Recorder) Write(w io.Writer, tickHz float64) error {
	s := strings.Builder{}

	s.WriteString(magicLine)
	s.WriteRune('\n')
	s.WriteString(versionPrefix)
	s.WriteString(transcriptVersion)
	s.WriteRune('\n')
	s.WriteString(tickRatePrefix)
	s.WriteString(strconv.FormatFloat(tickHz, 'f', -1, 64))
	s.WriteRune('\n')
	s.WriteString(datePrefix)
	s.WriteString(time.Now().Format(time.RFC1123))
	s.WriteRune('\n')

	for _, c := range rec.commands {
		s.WriteString(c.line())
		s.WriteRune('\n')
	}

	n, err := io.WriteString(w, s.String())
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != s.Len() {
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}

// WriteFile exports the recorded session to a transcript file.
func (rec *Recorder) WriteFile(path string, tickHz float64) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	err = rec.Write(f, tickHz)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	logger.Logf("recorder", "transcript written to %s", path)
	return nil
}

// line encodes one command as a transcript line.
func (c Command) line() string {
	flds := make([]string, numFields)
	flds[fieldTimestamp] = strconv.FormatFloat(c.Timestamp, 'f', 3, 64)
	flds[fieldLeftX] = strconv.FormatFloat(c.Frame.LX, 'f', -1, 64)
	flds[fieldLeftY] = strconv.FormatFloat(c.Frame.LY, 'f', -1, 64)
	flds[fieldRightX] = strconv.FormatFloat(c.Frame.RX, 'f', -1, 64)
	flds[fieldRightY] = strconv.FormatFloat(c.Frame.RY, 'f', -1, 64)

	evs := make([]string, 0, len(c.Frame.Events))
	for _, e := range c.Frame.Events {
		evs = append(evs, e.String())
	}
	flds[fieldEvents] = strings.Join(evs, eventSep)

	return strings.Join(flds, fieldSep)
}

// Load reads a transcript from disk, returning the session and the tick rate
// it was recorded at. Errors identify the offending line where possible.
func Load(path string) ([]Command, float64, error) {
	buffer, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, curated.Errorf("recorder: %v", err)
	}

	lines := strings.Split(string(buffer), "\n")
	if len(lines) < numHeaderLines {
		return nil, 0, curated.Errorf(NotATranscript, path)
	}

	if lines[lineMagic] != magicLine {
		return nil, 0, curated.Errorf(NotATranscript, path)
	}

	if !strings.HasPrefix(lines[lineVersion], versionPrefix) ||
		strings.TrimPrefix(lines[lineVersion], versionPrefix) != transcriptVersion {
		return nil, 0, curated.Errorf("recorder: unsupported transcript version at line %d", lineVersion+1)
	}

	if !strings.HasPrefix(lines[lineTickRate], tickRatePrefix) {
		return nil, 0, curated.Errorf("recorder: bad tick rate at line %d", lineTickRate+1)
	}
	tickHz, err := strconv.ParseFloat(strings.TrimPrefix(lines[lineTickRate], tickRatePrefix), 64)
	if err != nil || tickHz <= 0 {
		return nil, 0, curated.Errorf("recorder: bad tick rate at line %d", lineTickRate+1)
	}

	// the date header line is informational and is not validated beyond its
	// prefix
	if !strings.HasPrefix(lines[lineDate], datePrefix) {
		return nil, 0, curated.Errorf("recorder: bad date at line %d", lineDate+1)
	}

	commands := make([]Command, 0, len(lines)-numHeaderLines)

	for i := numHeaderLines; i < len(lines); i++ {
		if len(lines[i]) == 0 {
			continue
		}

		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, 0, curated.Errorf("recorder: expected %d fields at line %d", numFields, i+1)
		}

		c := Command{}

		c.Timestamp, err = strconv.ParseFloat(toks[fieldTimestamp], 64)
		if err != nil {
			return nil, 0, curated.Errorf("recorder: %s at line %d", err, i+1)
		}

		c.Frame.LX, err = strconv.ParseFloat(toks[fieldLeftX], 64)
		if err != nil {
			return nil, 0, curated.Errorf("recorder: %s at line %d", err, i+1)
		}

		c.Frame.LY, err = strconv.ParseFloat(toks[fieldLeftY], 64)
		if err != nil {
			return nil, 0, curated.Errorf("recorder: %s at line %d", err, i+1)
		}

		c.Frame.RX, err = strconv.ParseFloat(toks[fieldRightX], 64)
		if err != nil {
			return nil, 0, curated.Errorf("recorder: %s at line %d", err, i+1)
		}

		c.Frame.RY, err = strconv.ParseFloat(toks[fieldRightY], 64)
		if err != nil {
			return nil, 0, curated.Errorf("recorder: %s at line %d", err, i+1)
		}

		c.Frame.Events, err = parseEvents(toks[fieldEvents])
		if err != nil {
			return nil, 0, curated.Errorf("recorder: %s at line %d", err, i+1)
		}

		commands = append(commands, c)
	}

	return commands, tickHz, nil
}

// parseEvents decodes the events field of a transcript line.
func parseEvents(s string) ([]control.Event, error) {
	if len(s) == 0 {
		return nil, nil
	}

	var events []control.Event

	for _, tok := range strings.Split(s, eventSep) {
		if len(tok) < 2 {
			return nil, curated.Errorf("unrecognised event (%s)", tok)
		}

		act, ok := control.ParseAction(tok[:len(tok)-1])
		if !ok {
			return nil, curated.Errorf("unrecognised action (%s)", tok[:len(tok)-1])
		}

		switch tok[len(tok)-1] {
		case '+':
			events = append(events, control.Event{Action: act, Pressed: true})
		case '-':
			events = append(events, control.Event{Action: act, Pressed: false})
		default:
			return nil, curated.Errorf("unrecognised event (%s)", tok)
		}
	}

	return events, nil
}
