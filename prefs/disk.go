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

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/teamfireflies/arcjr/curated"
)

// WarningBoilerPlate is the first line in a prefs file. Any file that does
// not start with this line verbatim is rejected.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value on each line of a prefs
// file.
const entrySep = " :: "

// Disk represents preference values as stored on disk. Many Disk instances
// can point to the same file; each instance reads and updates only the keys
// registered with it and leaves every other key in the file untouched.
type Disk struct {
	path    string
	entries map[string]pref
}

// sentinel error pattern returned by Load() when the prefs file does not
// exist.
const NoPrefsFile = "prefs: no prefs file (%s)"

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference entry to disk registry under the specified key.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, entrySep) {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already registered (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// HasEntry returns true if the key has been registered with this Disk
// instance.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.sortedKeys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, entrySep, dsk.entries[k].String()))
	}
	return s.String()
}

// Save current preference values to disk. Keys in the file that belong to
// other Disk instances are preserved; defunct keys are dropped.
func (dsk *Disk) Save() error {
	// load the existing file so that keys registered elsewhere survive
	onDisk, err := dsk.readFile()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}
	if onDisk == nil {
		onDisk = make(map[string]string)
	}

	for k, p := range dsk.entries {
		onDisk[k] = p.String()
	}

	keys := make([]string, 0, len(onDisk))
	for k := range onDisk {
		if isDefunct(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, entrySep, onDisk[k]))
	}

	if _, err := f.WriteString(s.String()); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk, setting every registered entry whose key
// appears in the file. Keys in the file that have not been registered with
// this instance are ignored.
//
// If the prefs file does not exist and saveOnCreate is true the file is
// created with the current values; if saveOnCreate is false the missing file
// is not an error and every entry keeps its current value.
func (dsk *Disk) Load(saveOnCreate bool) error {
	onDisk, err := dsk.readFile()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnCreate {
			return dsk.Save()
		}
		if curated.Is(err, NoPrefsFile) {
			return nil
		}
		return err
	}

	for k, v := range onDisk {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// readFile returns the key/value pairs in the prefs file. Defunct keys are
// dropped at this point.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	onDisk := make(map[string]string)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++

		if line == 1 {
			if scanner.Text() != WarningBoilerPlate {
				return nil, curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
			}
			continue
		}

		if scanner.Text() == "" {
			continue
		}

		kv := strings.SplitN(scanner.Text(), entrySep, 2)
		if len(kv) != 2 {
			return nil, curated.Errorf("prefs: invalid entry at line %d (%s)", line, dsk.path)
		}

		if isDefunct(kv[0]) {
			continue
		}

		onDisk[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return onDisk, nil
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
