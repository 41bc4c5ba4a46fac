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

// Package sdlinput is the SDL implementation of the device interfaces. It
// owns the SDL lifecycle: a small utility window (needed for keyboard focus
// and for the close button), the event queue, joystick enumeration and the
// keyboard state array.
//
// The event queue must be drained once per tick with the Pump function even
// if the result is not interesting, otherwise joystick hotplug state goes
// stale and the window becomes unresponsive.
package sdlinput
