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

package stick

// Preset names a ready-made group of response settings.
type Preset string

// List of defined presets.
const (
	PresetSlow   Preset = "slow"
	PresetNormal Preset = "normal"
	PresetFast   Preset = "fast"
)

// the settings each preset applies. presets never touch Y-axis inversion.
var presets = map[Preset]struct {
	sensitivity float64
	deadzone    float64
	exponential float64
}{
	PresetSlow:   {sensitivity: 0.5, deadzone: 0.15, exponential: 1.2},
	PresetNormal: {sensitivity: 1.0, deadzone: 0.1, exponential: 1.5},
	PresetFast:   {sensitivity: 1.5, deadzone: 0.05, exponential: 1.8},
}

// ParsePreset converts a string to a Preset, reporting whether the string
// names a defined preset.
func ParsePreset(s string) (Preset, bool) {
	p := Preset(s)
	_, ok := presets[p]
	return p, ok
}

// ApplyPreset sets sensitivity, deadzone and exponential to the preset's
// values. Returns false, changing nothing, for an unknown preset.
func (s *Settings) ApplyPreset(p Preset) bool {
	v, ok := presets[p]
	if !ok {
		return false
	}
	s.sensitivity = v.sensitivity
	s.deadzone = v.deadzone
	s.exponential = v.exponential
	return true
}
