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
	"math"

	"github.com/teamfireflies/arcjr/chime"
	"github.com/teamfireflies/arcjr/control"
	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/debounce"
	"github.com/teamfireflies/arcjr/device"
	"github.com/teamfireflies/arcjr/logger"
	"github.com/teamfireflies/arcjr/notifications"
	"github.com/teamfireflies/arcjr/recorder"
	"github.com/teamfireflies/arcjr/statusline"
	"github.com/teamfireflies/arcjr/stick"
)

// axis numbers follow the common gamepad layout. the trigger axes rest at
// the bottom of their travel.
const (
	axisLX = 0
	axisLY = 1
	axisRX = 2
	axisRY = 3
	axisLT = 4
	axisRT = 5
)

// value reported by a trigger axis at rest.
const triggerRest = -1.0

// raw magnitude below which the auto-centre gate forces the processed value
// to zero.
const autoCentreEpsilon = 0.05

// pad button number for each button-driven action. the two arm actions are
// driven by the trigger axes and are not in this table.
var padButtons = map[control.Action]int{
	control.Stop:       0, // A
	control.ToggleMode: 1, // B
	control.CameraUp:   2, // X
	control.CameraDown: 3, // Y
	control.SpeedLow:   4, // LB
	control.SpeedHigh:  5, // RB
	control.Reset:      6, // BACK
	control.Calibrate:  7, // START
}

// sample is everything read from the active input source in one tick.
type sample struct {
	lx float64
	ly float64
	rx float64
	ry float64

	// held state of the pad buttons, by button number
	held [8]bool

	// trigger axis values
	lt float64
	rt float64
}

// Console owns the control pipeline and every piece of session state.
type Console struct {
	Left  *stick.Settings
	Right *stick.Settings
	Prefs *stick.Preferences

	Debounce *debounce.Debouncer
	Selector *device.Selector
	Recorder *recorder.Recorder
	Playback *recorder.Playback

	keyboard device.Keyboard
	consumer control.Consumer
	dsp      *statusline.Display
	chime    *chime.Chime

	bat *battery

	autoCentre bool

	// transcript written automatically when recording stops. empty means no
	// transcript
	recordPath string

	// the tick rate requested of the run loop. recorded in the transcript
	// header
	tickHz float64

	// measured tick rate, maintained by the run loop
	measured float64

	// true when the frame emitted this tick came from the playback session
	overrode bool

	// set by the keymap dispatch when the session should end
	quit bool
}

// NewConsole is the preferred method of initialisation for the Console type.
//
// The display is also the notification sink for every collaborator that
// posts notices. The consumer receives the assembled frame each tick; the
// shipped program passes the display here too but any control.Consumer
// serves.
func NewConsole(enum device.Enumerator, keyboard device.Keyboard,
	dsp *statusline.Display, consumer control.Consumer) (*Console, error) {

	con := &Console{
		Left:     stick.NewSettings(),
		Right:    stick.NewSettings(),
		keyboard: keyboard,
		consumer: consumer,
		dsp:      dsp,
		bat:      newBattery(dsp),
	}

	var err error

	// the settings file is advisory. a missing or malformed file leaves the
	// defaults in place
	con.Prefs, err = stick.NewPreferences(con.Left, con.Right)
	if err != nil {
		logger.Logf("drive", "%v", err)
	} else {
		_ = dsp.Notify(notifications.NotifySettingsLoaded)
	}

	con.Debounce = debounce.NewDebouncer()
	con.Recorder = recorder.NewRecorder(dsp)
	con.Playback = recorder.NewPlayback(dsp)

	con.Selector, err = device.NewSelector(enum, dsp)
	if err != nil {
		return nil, curated.Errorf("drive: %v", err)
	}

	return con, nil
}

// SetChime attaches the audio cue played on action presses. A nil chime
// means silence.
func (con *Console) SetChime(chm *chime.Chime) {
	con.chime = chm
}

// SetRecordPath arranges for a transcript to be written to the given path
// whenever recording stops.
func (con *Console) SetRecordPath(path string) {
	con.recordPath = path
}

// ApplyPreset applies the named preset to both sticks. Returns false,
// changing nothing, for an unknown preset.
func (con *Console) ApplyPreset(p stick.Preset) bool {
	if !con.Left.ApplyPreset(p) {
		return false
	}
	_ = con.Right.ApplyPreset(p)
	con.report("preset %s", p)
	return true
}

// MeasuredRate returns the tick rate most recently measured by the run
// loop.
func (con *Console) MeasuredRate() float64 {
	return con.measured
}

// Tick runs one pass of the control pipeline.
//
// The order of operations is fixed: device check, raw samples, stick
// transform, debounce, frame assembly, recorder append, playback override,
// emit. The recorder appends before the playback override so a recording
// made during playback captures the live input, not the replayed session.
func (con *Console) Tick() error {
	if err := con.Selector.Check(); err != nil {
		return err
	}

	var smp sample

	controller := con.Selector.Source() == device.SourceController
	if controller {
		smp = con.sampleController()
		con.Debounce.SetRumbler(con.Selector.Session())
	} else {
		smp = con.sampleKeyboard()
		con.Debounce.SetRumbler(nil)
	}

	frame := control.Frame{
		LX: stick.Transform(smp.lx, con.Left, stick.X),
		LY: stick.Transform(smp.ly, con.Left, stick.Y),
		RX: stick.Transform(smp.rx, con.Right, stick.X),
		RY: stick.Transform(smp.ry, con.Right, stick.Y),
	}

	// the auto-centre gate works on the raw magnitude but zeroes the
	// processed value. it exists for pads whose sticks do not return all the
	// way to rest, so it only applies to the controller source
	if con.autoCentre && controller {
		if math.Abs(smp.lx) < autoCentreEpsilon {
			frame.LX = 0.0
		}
		if math.Abs(smp.ly) < autoCentreEpsilon {
			frame.LY = 0.0
		}
		if math.Abs(smp.rx) < autoCentreEpsilon {
			frame.RX = 0.0
		}
		if math.Abs(smp.ry) < autoCentreEpsilon {
			frame.RY = 0.0
		}
	}

	frame.Events = con.debounceStep(smp)

	con.Recorder.Append(frame)

	con.overrode = false
	if con.Playback.IsPlaying() {
		cmd, ok, err := con.Playback.Next()
		if err != nil {
			return err
		}
		if ok {
			frame = cmd.Frame
			con.overrode = true
		}
	}

	con.dsp.SetStatus(con.snapshot(smp))

	if err := con.consumer.Consume(frame); err != nil {
		return err
	}

	for _, ev := range frame.Events {
		if ev.Pressed {
			con.actionPress(ev)
		}
	}

	con.bat.update()

	return nil
}

// sampleController reads the stick axes, trigger axes and pad buttons from
// the open device session.
func (con *Console) sampleController() sample {
	ses := con.Selector.Session()

	smp := sample{
		lx: ses.Axis(axisLX),
		ly: ses.Axis(axisLY),
		rx: ses.Axis(axisRX),
		ry: ses.Axis(axisRY),
		lt: ses.Axis(axisLT),
		rt: ses.Axis(axisRT),
	}

	for i := range smp.held {
		smp.held[i] = ses.Button(i)
	}

	return smp
}

// sampleKeyboard builds a sample from the held state of the drive keys.
// W/A/S/D steer the left stick at half deflection, full deflection with
// SHIFT held. SPACE, TAB, Q and E stand in for the first four pad buttons.
func (con *Console) sampleKeyboard() sample {
	smp := sample{
		lt: triggerRest,
		rt: triggerRest,
	}

	speed := 0.5
	if con.keyboard.IsDown(device.KeyShift) {
		speed = 1.0
	}

	// pushing a stick forward reads negative, matching the pad convention
	if con.keyboard.IsDown(device.KeyW) {
		smp.ly -= speed
	}
	if con.keyboard.IsDown(device.KeyS) {
		smp.ly += speed
	}
	if con.keyboard.IsDown(device.KeyA) {
		smp.lx -= speed
	}
	if con.keyboard.IsDown(device.KeyD) {
		smp.lx += speed
	}

	smp.held[padButtons[control.Stop]] = con.keyboard.IsDown(device.KeySpace)
	smp.held[padButtons[control.ToggleMode]] = con.keyboard.IsDown(device.KeyTab)
	smp.held[padButtons[control.CameraUp]] = con.keyboard.IsDown(device.KeyQ)
	smp.held[padButtons[control.CameraDown]] = con.keyboard.IsDown(device.KeyE)

	return smp
}

// debounceStep runs every sampled input through the per-action state
// machines, collecting the transitions in canonical action order.
func (con *Console) debounceStep(smp sample) []control.Event {
	var events []control.Event

	for _, act := range control.Actions {
		var ev control.Event
		var ok bool

		switch act {
		case control.ArmUp:
			ev, ok = con.Debounce.Trigger(act, smp.lt)
		case control.ArmDown:
			ev, ok = con.Debounce.Trigger(act, smp.rt)
		default:
			ev, ok = con.Debounce.Button(act, smp.held[padButtons[act]])
		}

		if ok {
			events = append(events, ev)
		}
	}

	return events
}

// snapshot gathers the status line's view of the session.
func (con *Console) snapshot(smp sample) statusline.Status {
	return statusline.Status{
		Source:        con.Selector.Name(),
		Connected:     con.Selector.Source() == device.SourceController,
		Battery:       con.bat.charge,
		Recording:     con.Recorder.IsRecording(),
		RecordedCount: con.Recorder.Count(),
		Playing:       con.Playback.IsPlaying(),
		PlaybackPos:   con.Playback.String(),
		PlaybackSpeed: con.Playback.Speed(),
		TickRate:      con.measured,
		RawLX:         smp.lx,
		RawLY:         smp.ly,
		RawRX:         smp.rx,
		RawRY:         smp.ry,
	}
}

// actionPress reacts to a press event on the emitted frame. replayed
// sessions chime and enter the history the same as live input.
func (con *Console) actionPress(ev control.Event) {
	con.dsp.AddHistory(fmt.Sprintf("action %s", ev.Action))

	if con.chime != nil {
		if err := con.chime.Play(); err != nil {
			logger.Logf("drive", "%v", err)
		}
	}
}

// banner prints the session header.
func (con *Console) banner(hz float64) {
	con.dsp.Printf("input source: %s", con.Selector.Name())
	con.dsp.Printf("tick rate: %.0fHz. F12 for the keymap, ESC to quit", hz)
	con.dsp.Print(con.settingsSummary())
}

// settingsSummary describes both sticks' settings in two lines.
func (con *Console) settingsSummary() string {
	f := func(tag string, s *stick.Settings) string {
		return fmt.Sprintf("%s: sens %.1f dz %.2f exp %.1f invert %v",
			tag, s.Sensitivity(), s.Deadzone(), s.Exponential(), s.InvertY())
	}
	return fmt.Sprintf("%s\n%s", f("left", con.Left), f("right", con.Right))
}
