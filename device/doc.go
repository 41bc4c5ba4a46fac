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

// Package device defines how the rest of the program sees physical input
// hardware. The interfaces in this package describe the smallest possible
// surface: how many devices are attached, a session over an open device, and
// a snapshot of the keyboard. The concrete implementation lives in the sdl
// sub-package.
//
// The Selector type decides where raw input comes from on any given tick. It
// prefers a physical controller and falls back to the keyboard when no
// controller is attached, checking for changes exactly once per tick. A
// controller appearing while in keyboard mode is opened and adopted; a
// controller vanishing mid-session drops the program back to the keyboard.
// Either transition is reported to the status collaborator exactly once.
package device
