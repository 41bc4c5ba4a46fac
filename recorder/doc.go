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

// Package recorder captures driving sessions and plays them back.
//
// The Recorder appends one Command per tick while recording is active. A
// Command is the tick's live control frame, the frame assembled from real
// input, along with a timestamp relative to the start of the recording.
//
// The Playback type walks a recorded session strictly forwards. While
// playback is active the recalled frame entirely replaces the live frame for
// that tick. The cursor never rewinds; when it passes the end of the session,
// playback stops itself and posts a completion notification.
//
// Sessions can be saved to and loaded from a plain-text transcript. See the
// comments in fileformat.go for the layout.
package recorder
