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

// Package drive assembles the other packages into a working control console.
//
// The Console type owns the per-stick settings, the debouncer, the device
// selector, the recorder and the playback session. Its Tick() function runs
// one pass of the control pipeline in a fixed order: device check, raw
// samples, stick transform, debounce, frame assembly, recorder append,
// playback override, emit. The recorder always captures the live frame, even
// on ticks where a playback session replaces the emitted one.
//
// The Run() function ticks the console at a fixed rate until the user quits.
// Everything happens on the one goroutine: device reads, keymap dispatch,
// settings changes and frame emission. A setting changed by a keypress is
// visible to the transform pass of the same tick.
//
// The Replay() function is the detached form of playback. It feeds a
// transcript file through a consumer at the transcript's own tick rate
// without opening any input device.
package drive
