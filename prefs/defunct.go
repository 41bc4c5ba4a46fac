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

package prefs

// list of preference keys that are no longer used. entries with these keys
// are dropped the next time the file is read or written.
var defunct = []string{
	// the stick keys before the left/right naming settled down
	"controller.leftstick.sensitivity",
	"controller.leftstick.deadzone",
	"controller.leftstick.exponential",
	"controller.leftstick.inverty",
	"controller.rightstick.sensitivity",
	"controller.rightstick.deadzone",
	"controller.rightstick.exponential",
	"controller.rightstick.inverty",
}

// returns true if string is in list of defunct keys.
func isDefunct(s string) bool {
	for _, m := range defunct {
		if s == m {
			return true
		}
	}
	return false
}
