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

package device

import (
	"github.com/teamfireflies/arcjr/logger"
	"github.com/teamfireflies/arcjr/notifications"
)

// Source identifies where raw input samples come from.
type Source string

// The two input sources. A physical controller is always preferred, the
// keyboard is the fallback.
const (
	SourceController Source = "controller"
	SourceKeyboard   Source = "keyboard"
)

// Selector owns the decision of which input source is active. The source
// changes only as a result of the once-per-tick Check.
type Selector struct {
	enum    Enumerator
	notify  notifications.Notify
	source  Source
	session Session
}

// NewSelector is the preferred method of initialisation for the Selector
// type. The initial source is Controller if a device can be enumerated and
// opened, Keyboard otherwise. The notify argument can be nil.
func NewSelector(enum Enumerator, notify notifications.Notify) (*Selector, error) {
	sel := &Selector{
		enum:   enum,
		notify: notify,
		source: SourceKeyboard,
	}

	// initial adoption follows the same path as the per-tick check
	if err := sel.Check(); err != nil {
		return nil, err
	}

	if sel.source == SourceKeyboard {
		logger.Log("device", "no controller attached. keyboard input")
	}

	return sel, nil
}

// Check looks for a change in the set of attached devices and transitions
// the active source accordingly. Called exactly once per tick, before any
// input sampling. Device failures are absorbed; the returned error can only
// come from the status collaborator.
func (sel *Selector) Check() error {
	switch sel.source {
	case SourceController:
		if sel.enum.Count() > 0 {
			return nil
		}

		// the device has vanished
		if sel.session != nil {
			_ = sel.session.Close()
			sel.session = nil
		}
		sel.source = SourceKeyboard

		logger.Log("device", "controller disconnected. keyboard input")
		return sel.post(notifications.NotifyControllerDisconnected)

	case SourceKeyboard:
		if sel.enum.Count() == 0 {
			return nil
		}

		s, err := sel.enum.Open(0)
		if err != nil {
			// remain with the keyboard. the open is retried on the next tick
			logger.Logf("device", "%v", err)
			return nil
		}

		sel.session = s
		sel.source = SourceController

		logger.Logf("device", "controller connected: %s", s.Name())
		return sel.post(notifications.NotifyControllerConnected)
	}

	return nil
}

func (sel *Selector) post(n notifications.Notice) error {
	if sel.notify == nil {
		return nil
	}
	return sel.notify.Notify(n)
}

// Source returns the currently active input source.
func (sel *Selector) Source() Source {
	return sel.source
}

// Session returns the open device session. nil when the keyboard is the
// active source.
func (sel *Selector) Session() Session {
	return sel.session
}

// Name returns a human readable name for the active source. The device name
// when a controller is attached, "keyboard" otherwise.
func (sel *Selector) Name() string {
	if sel.session != nil {
		return sel.session.Name()
	}
	return string(SourceKeyboard)
}

// Release closes any open device session. Called once, when the program is
// ending.
func (sel *Selector) Release() {
	if sel.session != nil {
		_ = sel.session.Close()
		sel.session = nil
		sel.source = SourceKeyboard
	}
}
