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

// Package resources centralises the location of files the program needs at
// run time: the preferences file, recording transcripts, chime samples.
//
// Resources live in the user's config directory (as reported by the
// operating system) under the "arcjr" folder. If a ".arcjr" directory exists
// in the current working directory it is used instead, allowing a portable
// installation that keeps everything alongside the binary.
package resources

import (
	"os"
	"path/filepath"
)

// name of the resource directory in the user's config directory.
const baseName = "arcjr"

// name of the portable resource directory in the current working directory.
const portableName = ".arcjr"

// JoinPath prepends the supplied path with the OS/installation specific base
// path.
//
// The function creates all folders necessary to reach the end of the
// sub-path. It does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	b, err := basePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(b, filepath.Join(path...))

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

// basePath prefers the portable directory when it exists.
func basePath() (string, error) {
	if _, err := os.Stat(portableName); err == nil {
		return portableName, nil
	}

	home, err := os.UserConfigDir()
	if err != nil {
		// no config dir at all. fall back to the portable location
		return portableName, nil
	}
	return filepath.Join(home, baseName), nil
}
