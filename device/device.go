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

import "time"

// Enumerator reports on the physical devices currently attached to the
// machine.
type Enumerator interface {
	// Count returns the number of attached devices.
	Count() int

	// Open initialises the device with the given index and returns a session
	// over it.
	Open(n int) (Session, error)
}

// Session is an open connection to a single physical device.
type Session interface {
	// Name returns the human readable name of the device.
	Name() string

	// Axis returns the current value of the numbered axis, normalised to the
	// range [-1, 1].
	Axis(n int) float64

	// Button returns whether the numbered button is currently held down.
	Button(n int) bool

	// Rumble requests a haptic pulse of the given strength for the given
	// duration. Best-effort. Devices without rumble hardware return an error
	// that the caller is free to ignore.
	Rumble(strength float64, d time.Duration) error

	// Close releases the device.
	Close() error
}

// Keyboard is a point-in-time view of the keyboard, used when no controller
// is attached.
type Keyboard interface {
	IsDown(k Key) bool
}

// EventPump drains input events gathered since the last call. The returned
// keys are the presses that occurred, in arrival order. quit is true if the
// user has asked for the program to end.
type EventPump interface {
	Pump() (keys []Key, quit bool)
}

// Key identifies a key on the keyboard. Values are the uppercase rune of the
// key or one of the named constants below.
type Key string

// Named keys used by the keyboard drive mapping and the in-session keymap.
const (
	KeyW Key = "W"
	KeyA Key = "A"
	KeyS Key = "S"
	KeyD Key = "D"
	KeyQ Key = "Q"
	KeyE Key = "E"

	KeySpace     Key = "SPACE"
	KeyTab       Key = "TAB"
	KeyShift     Key = "SHIFT"
	KeyEscape    Key = "ESCAPE"
	KeyBackspace Key = "BACKSPACE"

	KeyF1  Key = "F1"
	KeyF2  Key = "F2"
	KeyF3  Key = "F3"
	KeyF4  Key = "F4"
	KeyF5  Key = "F5"
	KeyF6  Key = "F6"
	KeyF7  Key = "F7"
	KeyF8  Key = "F8"
	KeyF9  Key = "F9"
	KeyF10 Key = "F10"
	KeyF11 Key = "F11"
	KeyF12 Key = "F12"
)

// Error patterns for device failures.
const (
	NoDevice   = "device: no devices available"
	OpenFailed = "device: open failed: %v"
)
