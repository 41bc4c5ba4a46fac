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

// Package notifications defines the events the driving session wants the
// user to know about. The core hands a Notice to whatever Notify
// implementation it was given (the terminal status line in the shipped
// program) and carries on; no core logic depends on what the receiver does
// with it.
package notifications

// Notice describes an event that changes how the session presents itself to
// the user.
type Notice string

// List of defined notifications.
const (
	// input source transitions. sent exactly once per transition by the
	// device selector
	NotifyControllerConnected    Notice = "NotifyControllerConnected"
	NotifyControllerDisconnected Notice = "NotifyControllerDisconnected"

	// recording
	NotifyRecordingStarted Notice = "NotifyRecordingStarted"
	NotifyRecordingStopped Notice = "NotifyRecordingStopped"
	NotifyRecordingCleared Notice = "NotifyRecordingCleared"

	// playback. NotifyPlaybackCompleted is sent when the cursor walks off
	// the end of the session, as opposed to an explicit stop
	NotifyPlaybackStarted   Notice = "NotifyPlaybackStarted"
	NotifyPlaybackStopped   Notice = "NotifyPlaybackStopped"
	NotifyPlaybackCompleted Notice = "NotifyPlaybackCompleted"

	// settings
	NotifySettingsSaved  Notice = "NotifySettingsSaved"
	NotifySettingsLoaded Notice = "NotifySettingsLoaded"
	NotifySettingsReset  Notice = "NotifySettingsReset"

	// the simulated battery level has crossed the low or critical threshold
	NotifyBatteryLow      Notice = "NotifyBatteryLow"
	NotifyBatteryCritical Notice = "NotifyBatteryCritical"
)

// Notify is implemented by the status/log sink. Implementations must not
// block; the notification arrives on the tick goroutine.
type Notify interface {
	Notify(notice Notice) error
}
