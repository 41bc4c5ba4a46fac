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

package sdlinput

import (
	"time"

	"github.com/teamfireflies/arcjr/curated"

	"github.com/veandco/go-sdl2/sdl"
)

// session implements device.Session over an open SDL joystick.
type session struct {
	joy *sdl.Joystick
}

// Name returns the human readable name of the joystick.
func (s *session) Name() string {
	return s.joy.Name()
}

// Axis returns the axis value normalised to the range [-1, 1].
func (s *session) Axis(n int) float64 {
	return float64(s.joy.Axis(n)) / 32768.0
}

// Button returns whether the numbered button is held down.
func (s *session) Button(n int) bool {
	return s.joy.Button(n) == 1
}

// Rumble requests a haptic pulse. Joysticks without rumble hardware return
// an error, which the caller is free to ignore.
func (s *session) Rumble(strength float64, d time.Duration) error {
	if strength < 0.0 {
		strength = 0.0
	} else if strength > 1.0 {
		strength = 1.0
	}

	v := uint16(strength * 65535)
	err := s.joy.Rumble(v, v, uint32(d.Milliseconds()))
	if err != nil {
		return curated.Errorf("sdl: rumble: %v", err)
	}

	return nil
}

// Close releases the joystick.
func (s *session) Close() error {
	s.joy.Close()
	return nil
}
