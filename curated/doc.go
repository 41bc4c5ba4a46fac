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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package: it takes a formatting pattern
// and placeholder values and returns an error. Unlike fmt, the pattern is
// retained and can be matched against later.
//
// The Is() function checks whether an error was created with a specific
// pattern:
//
//	e := curated.Errorf("selector: no devices")
//
//	if curated.Is(e, "selector: no devices") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the chain of wrapped errors:
//
//	e := curated.Errorf("selector: no devices")
//	f := curated.Errorf("drive: %v", e)
//
//	curated.Is(f, "selector: no devices")  // false
//	curated.Has(f, "selector: no devices") // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Put another way, it divides errors into 'curated'
// and 'uncurated', which callers are free to read as 'expected' and
// 'unexpected'.
//
// The Error() function implementation for curated errors normalises the
// message chain, removing adjacent duplicate parts. This keeps messages
// like:
//
//	recorder: recorder: file not found
//
// from reaching the user. For the purposes of this package a chain is
// composed of parts separated by the sub-string ': ' as suggested on p239 of
// "The Go Programming Language" (Donovan, Kernighan).
//
// There is no special provision for sentinel errors but they are achievable
// in practice through the Is() and Has() functions. Sentinel patterns should
// be stored as a const string, suitably named and commented.
package curated
