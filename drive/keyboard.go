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

package drive

import (
	"fmt"
	"strings"

	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/device"
	"github.com/teamfireflies/arcjr/logger"
	"github.com/teamfireflies/arcjr/notifications"
	"github.com/teamfireflies/arcjr/recorder"
	"github.com/teamfireflies/arcjr/stick"
)

// dispatch acts on a single keypress. Dispatch happens inside the tick, so a
// settings change is visible to the transform pass that follows it.
func (con *Console) dispatch(key device.Key) {
	// while the keyboard is the active drive source its movement and action
	// keys lose their tuning meanings
	if con.Selector.Source() == device.SourceKeyboard {
		switch key {
		case device.KeyW, device.KeyA, device.KeyS, device.KeyD,
			device.KeyQ, device.KeyE,
			device.KeySpace, device.KeyTab, device.KeyShift:
			return
		}
	}

	switch key {
	// tuning. out-of-range requests never happen from this table but the
	// setters have the final say regardless
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		v := float64(key[0]-'0') / 10.0
		if con.Left.SetSensitivity(v) {
			con.report("left sensitivity %.1f", v)
		}
	case "0":
		if con.Left.SetSensitivity(1.0) {
			con.report("left sensitivity 1.0")
		}
	case "F", "G", "H", "J", "K", "L":
		v := float64(strings.Index("FGHJKL", string(key))+1) / 10.0
		if con.Right.SetSensitivity(v) {
			con.report("right sensitivity %.1f", v)
		}
	case "Q", "W", "E", "R":
		v := float64(strings.Index("QWER", string(key))) / 10.0
		if con.Left.SetDeadzone(v) {
			con.report("left deadzone %.2f", v)
		}
	case "Z", "X", "C", "V":
		v := float64(strings.Index("ZXCV", string(key))) / 10.0
		if con.Right.SetDeadzone(v) {
			con.report("right deadzone %.2f", v)
		}
	case "I":
		con.report("left Y-axis inverted %v", con.Left.ToggleInvertY())
	case "O":
		con.report("right Y-axis inverted %v", con.Right.ToggleInvertY())
	case "T":
		con.report("left exponential response %v", con.Left.ToggleExponential())
	case "Y":
		con.report("right exponential response %v", con.Right.ToggleExponential())
	case device.KeyF9:
		con.ApplyPreset(stick.PresetSlow)
	case device.KeyF10:
		con.ApplyPreset(stick.PresetNormal)
	case device.KeyF11:
		con.ApplyPreset(stick.PresetFast)
	case device.KeyBackspace:
		con.Left.Reset()
		con.Right.Reset()
		con.dsp.AddHistory("settings reset")
		_ = con.dsp.Notify(notifications.NotifySettingsReset)

	// settings file and display
	case device.KeyS:
		con.saveSettings()
	case device.KeyD:
		con.report("display mode %s", con.dsp.CycleMode())

	// recording and playback
	case device.KeyF1:
		if err := con.Recorder.Start(); err != nil {
			logger.Logf("drive", "%v", err)
		}
		con.dsp.AddHistory("recording started")
	case device.KeyF2:
		con.stopRecording()
	case device.KeyF3:
		if err := con.Playback.Start(con.Recorder.Commands()); err != nil {
			logger.Logf("drive", "%v", err)
		}
	case device.KeyF4:
		if err := con.Playback.Stop(); err != nil {
			logger.Logf("drive", "%v", err)
		}
	case device.KeyF5:
		if err := con.Recorder.Clear(); err != nil {
			logger.Logf("drive", "%v", err)
		}
	case device.KeyF6:
		if con.Playback.SetSpeed(0.5) {
			con.report("playback speed 0.5x")
		}
	case device.KeyF7:
		if con.Playback.SetSpeed(1.0) {
			con.report("playback speed 1.0x")
		}
	case device.KeyF8:
		if con.Playback.SetSpeed(2.0) {
			con.report("playback speed 2.0x")
		}

	// session
	case "A":
		con.autoCentre = !con.autoCentre
		con.report("auto-centre %v", con.autoCentre)
	case "U":
		con.Debounce.SetHaptics(!con.Debounce.Haptics())
		con.report("vibration %v", con.Debounce.Haptics())
	case "M":
		if con.chime == nil {
			con.dsp.Print("sound unavailable")
			return
		}
		con.chime.SetEnabled(!con.chime.Enabled())
		con.report("sound %v", con.chime.Enabled())
	case "B":
		con.dsp.Printf("battery %.1f%%", con.bat.charge)
	case "N":
		con.dsp.Printf("input source: %s", con.Selector.Name())
	case "P":
		con.dsp.ShowHistory()
	case device.KeyF12:
		con.dsp.Print(Keymap())
	case device.KeyEscape:
		con.quit = true
	}
}

// report prints a change of session state and adds it to the command
// history.
func (con *Console) report(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	con.dsp.Print(s)
	con.dsp.AddHistory(s)
}

// saveSettings writes the current settings to the preferences file.
func (con *Console) saveSettings() {
	if con.Prefs == nil {
		con.dsp.Print("settings file unavailable")
		return
	}

	if err := con.Prefs.Save(); err != nil {
		logger.Logf("drive", "%v", err)
		return
	}

	con.dsp.AddHistory("settings saved")
	_ = con.dsp.Notify(notifications.NotifySettingsSaved)
}

// stopRecording stops the recorder and, when a recording path has been set,
// writes the transcript.
func (con *Console) stopRecording() {
	n, dur, err := con.Recorder.Stop()
	if err != nil {
		if curated.Is(err, recorder.NotRecording) {
			con.dsp.Print("not recording")
		} else {
			logger.Logf("drive", "%v", err)
		}
		return
	}

	con.dsp.AddHistory(fmt.Sprintf("recording stopped. %d commands over %.1fs", n, dur))

	if con.recordPath == "" {
		return
	}

	if err := con.Recorder.WriteFile(con.recordPath, con.tickHz); err != nil {
		logger.Logf("drive", "%v", err)
		return
	}
	con.dsp.Printf("transcript written to %s", con.recordPath)
}

const keymapText = `drive keys (keyboard source)
  W/A/S/D     steer the left stick (hold SHIFT for full deflection)
  SPACE       STOP            TAB  TOGGLE_MODE
  Q           CAMERA_UP       E    CAMERA_DOWN

controller pad
  A STOP   B TOGGLE_MODE   X CAMERA_UP   Y CAMERA_DOWN
  LB SPEED_LOW   RB SPEED_HIGH   BACK RESET   START CALIBRATE
  LT ARM_UP   RT ARM_DOWN (pull past half to press, release below a tenth)

tuning (suspended for W/A/S/D/Q/E while driving on the keyboard)
  1..9,0      left sensitivity 0.1..0.9, 1.0
  F/G/H/J/K/L right sensitivity 0.1..0.6
  Q/W/E/R     left deadzone 0.00/0.10/0.20/0.30
  Z/X/C/V     right deadzone 0.00/0.10/0.20/0.30
  I / O       toggle left/right Y-axis inversion
  T / Y       toggle left/right exponential response
  F9/F10/F11  preset slow/normal/fast
  BACKSPACE   reset all settings

session
  F1 start recording   F2 stop recording    F5 clear recording
  F3 start playback    F4 stop playback     F6/F7/F8 speed 0.5x/1x/2x
  S save settings      D cycle display      A auto-centre
  U vibration          M sound              B battery
  N connection         P command history    F12 this help
  ESC quit`

// Keymap returns the help text describing every key binding.
func Keymap() string {
	return keymapText
}
