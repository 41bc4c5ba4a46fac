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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/prefs"
	"github.com/teamfireflies/arcjr/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "arcjr_prefs_test")
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		fmt.Println("expected:")
		fmt.Println(expected)
		fmt.Println("\nin file:")
		fmt.Println(string(data))
	}
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testB", &w)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testC", &x)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)
	err = w.Set("foo")
	test.ExpectedSuccess(t, err)
	err = x.Set("true")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
		return
	}

	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestFloat(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Float
	var w prefs.Float
	err = dsk.Add("sens", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("zone", &w)
	test.ExpectedSuccess(t, err)

	err = v.Set(1.5)
	test.ExpectedSuccess(t, err)

	// test string conversion to float
	err = w.Set("0.1")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
	}

	cmpPrefsFile(t, fn, "sens :: 1.500\nzone :: 0.100\n")

	// while we have a prefs.Float instance set up we'll test some failure
	// conditions
	err = v.Set("---")
	test.ExpectedFailure(t, err)
	test.Equate(t, v.Get().(float64), 1.5)

	err = v.Set(true)
	test.ExpectedFailure(t, err)
}

func TestLoad(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Float
	err = dsk.Add("sens", &v)
	test.ExpectedSuccess(t, err)

	err = v.Set(0.75)
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	// clobber the live value and reload from disk
	err = v.Set(2.0)
	test.ExpectedSuccess(t, err)

	err = dsk.Load(false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v.Get().(float64), 0.75)
}

func TestLoadMissingFile(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Float
	err = dsk.Add("sens", &v)
	test.ExpectedSuccess(t, err)
	err = v.Set(1.0)
	test.ExpectedSuccess(t, err)

	// a missing file is not an error and does not touch the live value
	err = dsk.Load(false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v.Get().(float64), 1.0)

	// saveOnCreate writes the file
	err = dsk.Load(true)
	test.ExpectedSuccess(t, err)
	cmpPrefsFile(t, fn, "sens :: 1.000\n")
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefsFile(t)

	err := os.WriteFile(fn, []byte("not a prefs file\n"), 0600)
	test.ExpectedSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Float
	err = dsk.Add("sens", &v)
	test.ExpectedSuccess(t, err)

	err = dsk.Load(false)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, "prefs: not a valid prefs file (%s)"))
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var w, h int

	v := prefs.NewGeneric(
		func(v prefs.Value) error {
			_, err := fmt.Sscanf(v.(string), "%d,%d", &w, &h)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	err = dsk.Add("generic", v)
	test.ExpectedSuccess(t, err)

	// change values
	w = 1
	h = 2

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
	}

	cmpPrefsFile(t, fn, "generic :: 1,2\n")

	// reset values and reload them from disk
	w = 0
	h = 0

	err = dsk.Load(false)
	if err != nil {
		t.Errorf("error loading disk: %v", err)
	}

	test.Equate(t, w, 1)
	test.Equate(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second write doesn't clobber the results of the first.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
		return
	}

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var s prefs.String
	err = dsk.Add("foo", &s)
	test.ExpectedSuccess(t, err)

	err = s.Set("bar")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
		return
	}

	// the file should contain the contents set by both disk instances
	cmpPrefsFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var s prefs.String
	err = dsk.Add("test", &s)
	test.ExpectedSuccess(t, err)
	err = s.Set("123456789")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.Equate(t, s.String(), "12345")

	// unsetting the maximum length (value zero) does not make the cropped
	// information reappear
	s.SetMaxLen(0)
	test.Equate(t, s.String(), "12345")

	// setting a string after setting a maximum length will crop the new
	// string
	s.SetMaxLen(3)
	err = s.Set("abcdefghi")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "abc")
}

// a pre-hook that returns an error prevents the value from changing.
func TestHookPre(t *testing.T) {
	var v prefs.Float

	err := v.Set(1.0)
	test.ExpectedSuccess(t, err)

	v.SetHookPre(func(value prefs.Value) error {
		if value.(float64) > 2.0 {
			return curated.Errorf("too big")
		}
		return nil
	})

	err = v.Set(5.0)
	test.ExpectedFailure(t, err)
	test.Equate(t, v.Get().(float64), 1.0)

	err = v.Set(1.5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v.Get().(float64), 1.5)
}
