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

// Package debounce turns raw button and trigger samples into discrete
// press/release events. Raw samples arrive once per tick for every action and
// an event is emitted only when the state of an action actually changes. A
// button that is held down for many ticks therefore produces exactly one
// press event, followed by exactly one release event when it is let go.
//
// Ordinary buttons are edge detected on their boolean state. Analog triggers
// use two thresholds, one for engaging and a lower one for disengaging, so
// that a trigger hovering near a single threshold does not flicker between
// pressed and released.
//
// Because every input source feeds the same set of per-action state machines,
// an action held on a device that subsequently disappears is released on the
// first tick of the replacement source reporting it up.
package debounce
