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
	"time"

	"github.com/teamfireflies/arcjr/control"
	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/logger"
	"github.com/teamfireflies/arcjr/notifications"
)

// Sentinel error returned by Stop if no recording is active.
const NotRecording = "recorder: not recording"

// Command is one recorded tick. Timestamp is in seconds, relative to the
// start of the recording session.
type Command struct {
	Frame     control.Frame
	Timestamp float64
}

// Recorder accumulates commands while recording is active.
type Recorder struct {
	commands  []Command
	start     time.Time
	recording bool

	notify notifications.Notify
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The notify argument can be nil.
func NewRecorder(notify notifications.Notify) *Recorder {
	return &Recorder{
		commands: make([]Command, 0),
		notify:   notify,
	}
}

func (rec *Recorder) post(n notifications.Notice) error {
	if rec.notify == nil {
		return nil
	}
	return rec.notify.Notify(n)
}

// Start begins a recording session. Any previously recorded commands are
// discarded, which means that starting while a recording is already active is
// the same as starting afresh.
func (rec *Recorder) Start() error {
	rec.commands = make([]Command, 0)
	rec.start = time.Now()
	rec.recording = true

	logger.Log("recorder", "recording started")
	return rec.post(notifications.NotifyRecordingStarted)
}

// Append adds the live frame for the current tick to the recording. Exactly
// one call per tick while recording is active. Calls while no recording is
// active are ignored.
func (rec *Recorder) Append(frame control.Frame) {
	if !rec.recording {
		return
	}

	rec.commands = append(rec.commands, Command{
		Frame:     frame,
		Timestamp: time.Since(rec.start).Seconds(),
	})
}

// Stop ends the recording session, returning the number of commands recorded
// and the session duration in seconds. Returns the NotRecording error if no
// recording is active.
func (rec *Recorder) Stop() (int, float64, error) {
	if !rec.recording {
		return 0, 0, curated.Errorf(NotRecording)
	}

	rec.recording = false
	duration := time.Since(rec.start).Seconds()

	logger.Logf("recorder", "recording stopped: %d commands over %.1fs", len(rec.commands), duration)
	return len(rec.commands), duration, rec.post(notifications.NotifyRecordingStopped)
}

// Clear empties the command buffer. The recording flag is unaffected, a
// recording in progress continues with an empty buffer.
func (rec *Recorder) Clear() error {
	rec.commands = make([]Command, 0)

	logger.Log("recorder", "recording cleared")
	return rec.post(notifications.NotifyRecordingCleared)
}

// IsRecording returns whether a recording session is active.
func (rec *Recorder) IsRecording() bool {
	return rec.recording
}

// Count returns the number of commands in the buffer.
func (rec *Recorder) Count() int {
	return len(rec.commands)
}

// Commands returns the recorded session as it stands. The returned slice is
// the recorder's own buffer, the caller must not modify it.
func (rec *Recorder) Commands() []Command {
	return rec.commands
}
