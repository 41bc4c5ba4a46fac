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
	"fmt"

	"github.com/teamfireflies/arcjr/logger"
	"github.com/teamfireflies/arcjr/notifications"
)

// Playback walks a recorded session strictly forwards, one command per tick.
type Playback struct {
	commands []Command
	index    int
	playing  bool
	speed    float64

	notify notifications.Notify
}

// NewPlayback is the preferred method of initialisation for the Playback
// type. The notify argument can be nil.
func NewPlayback(notify notifications.Notify) *Playback {
	return &Playback{
		speed:  1.0,
		notify: notify,
	}
}

func (plb *Playback) post(n notifications.Notice) error {
	if plb.notify == nil {
		return nil
	}
	return plb.notify.Notify(n)
}

// String returns the playback cursor position in index/total form.
func (plb *Playback) String() string {
	return fmt.Sprintf("%d/%d", plb.index, len(plb.commands))
}

// Start begins playback of the given session from the beginning. A no-op if
// the session is empty or if playback is already active.
func (plb *Playback) Start(commands []Command) error {
	if plb.playing || len(commands) == 0 {
		return nil
	}

	plb.commands = commands
	plb.index = 0
	plb.playing = true

	logger.Logf("recorder", "playback started: %d commands at %.1fx", len(commands), plb.speed)
	return plb.post(notifications.NotifyPlaybackStarted)
}

// Next returns the command under the cursor and advances. The boolean return
// value is false when no command was available, either because playback is
// not active or because the cursor passed the end of the session on this
// call. In the latter case playback stops itself and the completion is
// notified.
func (plb *Playback) Next() (Command, bool, error) {
	if !plb.playing {
		return Command{}, false, nil
	}

	if plb.index < len(plb.commands) {
		c := plb.commands[plb.index]
		plb.index++
		return c, true, nil
	}

	plb.playing = false

	logger.Log("recorder", "playback completed")
	return Command{}, false, plb.post(notifications.NotifyPlaybackCompleted)
}

// Stop ends playback at the current cursor position. Idempotent, stopping a
// stopped playback has no effect.
func (plb *Playback) Stop() error {
	if !plb.playing {
		return nil
	}

	plb.playing = false

	logger.Logf("recorder", "playback stopped at %s", plb.String())
	return plb.post(notifications.NotifyPlaybackStopped)
}

// SetSpeed changes the playback speed multiplier. The multiplier scales the
// delay the drive loop applies between successive playback frames, the
// recorded timestamps themselves are never altered. Values less than or equal
// to zero are rejected, reported by the return value.
func (plb *Playback) SetSpeed(m float64) bool {
	if m <= 0 {
		return false
	}
	plb.speed = m
	return true
}

// Speed returns the current playback speed multiplier.
func (plb *Playback) Speed() float64 {
	return plb.speed
}

// IsPlaying returns whether playback is active.
func (plb *Playback) IsPlaying() bool {
	return plb.playing
}
