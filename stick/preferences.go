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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teamfireflies/arcjr/logger"
	"github.com/teamfireflies/arcjr/prefs"
	"github.com/teamfireflies/arcjr/resources"
)

// name of the preferences file.
const prefsFile = "arcjr.prefs"

// Preferences binds two stick Settings instances to the preferences file on
// disk.
type Preferences struct {
	dsk *prefs.Disk

	left  *Settings
	right *Settings
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values in the preferences file are applied to the
// supplied Settings immediately; a missing file leaves the settings as they
// are.
func NewPreferences(left, right *Settings) (*Preferences, error) {
	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesAtPath(pth, left, right)
}

// NewPreferencesAtPath is like NewPreferences but with an explicit file
// path, bypassing the resources lookup.
func NewPreferencesAtPath(path string, left, right *Settings) (*Preferences, error) {
	p := &Preferences{
		left:  left,
		right: right,
	}

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, g := range []struct {
		key string
		s   *Settings
		set func(s *Settings, v float64) bool
		get func(s *Settings) float64
	}{
		{"controller.left.sensitivity", p.left, (*Settings).SetSensitivity, (*Settings).Sensitivity},
		{"controller.left.deadzone", p.left, (*Settings).SetDeadzone, (*Settings).Deadzone},
		{"controller.left.exponential", p.left, (*Settings).SetExponential, (*Settings).Exponential},
		{"controller.right.sensitivity", p.right, (*Settings).SetSensitivity, (*Settings).Sensitivity},
		{"controller.right.deadzone", p.right, (*Settings).SetDeadzone, (*Settings).Deadzone},
		{"controller.right.exponential", p.right, (*Settings).SetExponential, (*Settings).Exponential},
	} {
		g := g
		err = p.dsk.Add(g.key, prefs.NewGeneric(
			func(v prefs.Value) error {
				f, err := strconv.ParseFloat(fmt.Sprintf("%v", v), 64)
				if err != nil {
					// a value that doesn't parse keeps the default. the
					// settings document is advisory, never load-bearing
					logger.Logf("stick", "prefs: ignoring %s (%v)", g.key, v)
					return nil
				}
				if !g.set(g.s, f) {
					logger.Logf("stick", "prefs: %s out of range (%v)", g.key, f)
				}
				return nil
			},
			func() prefs.Value {
				return fmt.Sprintf("%.3f", g.get(g.s))
			},
		))
		if err != nil {
			return nil, err
		}
	}

	for _, g := range []struct {
		key string
		s   *Settings
	}{
		{"controller.left.inverty", p.left},
		{"controller.right.inverty", p.right},
	} {
		g := g
		err = p.dsk.Add(g.key, prefs.NewGeneric(
			func(v prefs.Value) error {
				g.s.SetInvertY(strings.EqualFold(fmt.Sprintf("%v", v), "true"))
				return nil
			},
			func() prefs.Value {
				return fmt.Sprintf("%v", g.s.InvertY())
			},
		))
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(false)
	if err != nil {
		return p, err
	}

	return p, nil
}

// Load settings preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current settings preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
