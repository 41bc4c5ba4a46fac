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

// Package performance measures how well the control loop keeps to its tick
// rate on the host machine. The console is run headlessly, with no input
// devices and no status line, for a fixed wall-clock duration. The number of
// frames consumed over that period gives the achieved rate.
//
// The package also provides the profiling harness used by the performance
// mode of the command line program. CPU and memory profiles are written to
// the current directory in a format suitable for "go tool pprof".
package performance
