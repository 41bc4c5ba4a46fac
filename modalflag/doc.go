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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) with a different set of flags for each mode.
//
// Usage differs from the flag package in that the argument list is given
// up front with NewArgs() and the Parse() function takes no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "play", "keymap")
//	p, err := md.Parse()
//
// After parsing, Mode() says which sub-mode was selected and non-flag
// arguments can be retrieved with RemainingArgs() or GetArg(). Sub-mode
// comparisons are case insensitive and the first sub-mode in the list is
// the default, selected when the first argument matches no listed mode.
//
// Flags are added before the call to Parse() with the Add*() functions,
// which work like their flag package counterparts:
//
//	tick := md.AddFloat64("tick", 20.0, "control loop rate")
//
// Each mode can define its own flags. Once a mode has been selected, call
// NewMode(), add the flags for that mode and Parse() again:
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		speed := md.AddFloat64("speed", 1.0, "playback speed multiplier")
//		p, err := md.Parse()
//		...
//	}
//
// Help messages are assembled from the flag summary, the list of available
// sub-modes and any text given to AdditionalHelp(). The ParseHelp result
// means a help message has been printed and the program should exit without
// further comment. The ParseError result is accompanied by an error.
package modalflag
