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
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/teamfireflies/arcjr/control"
	"github.com/teamfireflies/arcjr/debounce"
	"github.com/teamfireflies/arcjr/device"
	"github.com/teamfireflies/arcjr/recorder"
	"github.com/teamfireflies/arcjr/statusline"
	"github.com/teamfireflies/arcjr/stick"
	"github.com/teamfireflies/arcjr/terminal"
	"github.com/teamfireflies/arcjr/test"
)

type mockSession struct {
	name    string
	axes    [6]float64
	buttons [8]bool
	rumbles int
	closed  bool
}

func (m *mockSession) Name() string {
	return m.name
}

func (m *mockSession) Axis(n int) float64 {
	return m.axes[n]
}

func (m *mockSession) Button(n int) bool {
	return m.buttons[n]
}

func (m *mockSession) Rumble(strength float64, d time.Duration) error {
	m.rumbles++
	return nil
}

func (m *mockSession) Close() error {
	m.closed = true
	return nil
}

type mockEnumerator struct {
	count int
	ses   *mockSession
}

func (m *mockEnumerator) Count() int {
	return m.count
}

func (m *mockEnumerator) Open(n int) (device.Session, error) {
	return m.ses, nil
}

type mockKeyboard struct {
	down map[device.Key]bool
}

func (m *mockKeyboard) IsDown(k device.Key) bool {
	return m.down[k]
}

type mockConsumer struct {
	frames []control.Frame
}

func (m *mockConsumer) Consume(frame control.Frame) error {
	m.frames = append(m.frames, frame)
	return nil
}

// testConsole builds a console by hand, skipping the preferences file so the
// host machine's settings cannot leak into the assertions. The display is
// real but non-interactive, writing plain text to the returned buffer.
func testConsole(t *testing.T, enum device.Enumerator, kb device.Keyboard) (*Console, *mockConsumer, *strings.Builder) {
	t.Helper()

	buf := &strings.Builder{}
	dsp := statusline.NewDisplay(&terminal.Terminal{}, buf)
	cons := &mockConsumer{}

	con := &Console{
		Left:     stick.NewSettings(),
		Right:    stick.NewSettings(),
		keyboard: kb,
		consumer: cons,
		dsp:      dsp,
		bat:      newBattery(dsp),
	}
	con.Debounce = debounce.NewDebouncer()
	con.Recorder = recorder.NewRecorder(dsp)
	con.Playback = recorder.NewPlayback(dsp)

	var err error
	con.Selector, err = device.NewSelector(enum, dsp)
	test.ExpectedSuccess(t, err)

	return con, cons, buf
}

// a raw deflection of 0.5 through the default settings: the deadzone gate
// passes, renormalisation gives 4/9 and the 1.5 exponent makes that 8/27.
const halfDeflection = 8.0 / 27.0

func TestTickOrder(t *testing.T) {
	ses := &mockSession{name: "test pad"}
	enum := &mockEnumerator{count: 1, ses: ses}
	con, cons, buf := testConsole(t, enum, &mockKeyboard{})

	ses.axes[axisLX] = 0.5
	ses.axes[axisLT] = triggerRest
	ses.axes[axisRT] = triggerRest

	test.ExpectedSuccess(t, con.Recorder.Start())
	test.ExpectedSuccess(t, con.Playback.Start([]recorder.Command{
		{Frame: control.Frame{LX: -0.9}},
		{Frame: control.Frame{LX: -0.8}},
	}))

	// while the playback session runs the consumer sees the replayed frames
	// and the recorder captures the live ones
	test.ExpectedSuccess(t, con.Tick())
	test.Equate(t, len(cons.frames), 1)
	test.Approximate(t, cons.frames[0].LX, -0.9, 1e-9)
	test.Equate(t, con.Recorder.Count(), 1)
	test.Approximate(t, con.Recorder.Commands()[0].Frame.LX, halfDeflection, 1e-9)

	test.ExpectedSuccess(t, con.Tick())
	test.Approximate(t, cons.frames[1].LX, -0.8, 1e-9)

	// the session is exhausted. playback stops itself and the tick falls
	// back to emitting the live frame
	test.ExpectedSuccess(t, con.Tick())
	test.Equate(t, con.Playback.IsPlaying(), false)
	test.Approximate(t, cons.frames[2].LX, halfDeflection, 1e-9)
	test.Equate(t, con.Recorder.Count(), 3)
	test.Equate(t, strings.Count(buf.String(), "playback completed"), 1)
}

func TestFailoverOnce(t *testing.T) {
	ses := &mockSession{name: "test pad"}
	enum := &mockEnumerator{count: 1, ses: ses}
	con, cons, buf := testConsole(t, enum, &mockKeyboard{})

	test.Equate(t, string(con.Selector.Source()), "controller")

	// the device vanishes. many ticks later there has still been exactly one
	// disconnection notice
	enum.count = 0
	for i := 0; i < 5; i++ {
		test.ExpectedSuccess(t, con.Tick())
	}

	test.Equate(t, string(con.Selector.Source()), "keyboard")
	test.Equate(t, ses.closed, true)
	test.Equate(t, strings.Count(buf.String(), "controller disconnected"), 1)
	test.Equate(t, len(cons.frames), 5)
}

func TestSettingsChangeVisibleNextTick(t *testing.T) {
	ses := &mockSession{name: "test pad"}
	enum := &mockEnumerator{count: 1, ses: ses}
	con, cons, buf := testConsole(t, enum, &mockKeyboard{})

	ses.axes[axisLX] = 0.5

	test.ExpectedSuccess(t, con.Tick())
	test.Approximate(t, cons.frames[0].LX, halfDeflection, 1e-9)

	con.dispatch("1")
	test.ExpectedSuccess(t, con.Tick())
	test.Approximate(t, cons.frames[1].LX, halfDeflection*0.1, 1e-9)
	test.Equate(t, strings.Contains(buf.String(), "left sensitivity 0.1"), true)
}

func TestAutoCentreGate(t *testing.T) {
	ses := &mockSession{name: "test pad"}
	enum := &mockEnumerator{count: 1, ses: ses}
	con, cons, _ := testConsole(t, enum, &mockKeyboard{})

	// with no deadzone a slight stick drift leaks into the frame
	ses.axes[axisLX] = 0.03
	con.dispatch(device.KeyQ)
	test.Equate(t, con.Left.Deadzone(), 0.0)

	test.ExpectedSuccess(t, con.Tick())
	test.Approximate(t, cons.frames[0].LX, math.Pow(0.03, 1.5), 1e-9)

	// the auto-centre gate zeroes it
	con.dispatch("A")
	test.ExpectedSuccess(t, con.Tick())
	test.Equate(t, cons.frames[1].LX, 0.0)
}

func TestKeyboardDrive(t *testing.T) {
	enum := &mockEnumerator{count: 0}
	kb := &mockKeyboard{down: map[device.Key]bool{
		device.KeyW:     true,
		device.KeySpace: true,
	}}
	con, cons, _ := testConsole(t, enum, kb)

	test.Equate(t, string(con.Selector.Source()), "keyboard")

	// half deflection forward plus a STOP press
	test.ExpectedSuccess(t, con.Tick())
	test.Approximate(t, cons.frames[0].LY, -halfDeflection, 1e-9)
	test.Equate(t, len(cons.frames[0].Events), 1)
	test.Equate(t, string(cons.frames[0].Events[0].Action), "STOP")
	test.Equate(t, cons.frames[0].Events[0].Pressed, true)

	// held keys do not refire
	test.ExpectedSuccess(t, con.Tick())
	test.Equate(t, len(cons.frames[1].Events), 0)

	// shift gives full deflection
	kb.down[device.KeyShift] = true
	test.ExpectedSuccess(t, con.Tick())
	test.Approximate(t, cons.frames[2].LY, -1.0, 1e-9)
}

func TestKeyboardSuspendsTuning(t *testing.T) {
	enum := &mockEnumerator{count: 0}
	con, _, _ := testConsole(t, enum, &mockKeyboard{})

	// E is a drive key while the keyboard is the active source, so its
	// tuning meaning is suspended
	con.dispatch(device.KeyE)
	test.Equate(t, con.Left.Deadzone(), 0.1)

	// keys outside the drive set still work
	con.dispatch("G")
	test.Equate(t, con.Right.Sensitivity(), 0.2)
}

func TestKeymapDispatch(t *testing.T) {
	ses := &mockSession{name: "test pad"}
	enum := &mockEnumerator{count: 1, ses: ses}
	con, _, buf := testConsole(t, enum, &mockKeyboard{})

	con.dispatch("5")
	test.Equate(t, con.Left.Sensitivity(), 0.5)
	con.dispatch("0")
	test.Equate(t, con.Left.Sensitivity(), 1.0)
	con.dispatch("L")
	test.Equate(t, con.Right.Sensitivity(), 0.6)
	con.dispatch("R")
	test.Equate(t, con.Left.Deadzone(), 0.3)
	con.dispatch("V")
	test.Equate(t, con.Right.Deadzone(), 0.3)
	con.dispatch("I")
	test.Equate(t, con.Left.InvertY(), true)

	// the exponential toggle flips between linear and curved
	con.dispatch("T")
	test.Equate(t, con.Left.Exponential(), 1.0)
	con.dispatch("T")
	test.Equate(t, con.Left.Exponential(), 1.5)

	con.dispatch(device.KeyF9)
	test.Equate(t, con.Left.Sensitivity(), 0.5)
	test.Equate(t, con.Right.Deadzone(), 0.15)
	test.Equate(t, con.Right.Exponential(), 1.2)

	con.dispatch(device.KeyBackspace)
	test.Equate(t, con.Left.Sensitivity(), 1.0)
	test.Equate(t, con.Left.Deadzone(), 0.1)
	test.Equate(t, con.Left.InvertY(), false)
	test.Equate(t, con.Right.Deadzone(), 0.1)
	test.Equate(t, strings.Contains(buf.String(), "settings reset to defaults"), true)
}

func TestSessionKeys(t *testing.T) {
	ses := &mockSession{name: "test pad"}
	enum := &mockEnumerator{count: 1, ses: ses}
	con, _, buf := testConsole(t, enum, &mockKeyboard{})

	con.dispatch(device.KeyF1)
	test.Equate(t, con.Recorder.IsRecording(), true)

	test.ExpectedSuccess(t, con.Tick())
	test.ExpectedSuccess(t, con.Tick())
	test.Equate(t, con.Recorder.Count(), 2)

	con.dispatch(device.KeyF2)
	test.Equate(t, con.Recorder.IsRecording(), false)
	test.Equate(t, strings.Contains(buf.String(), "recording stopped"), true)

	con.dispatch(device.KeyF3)
	test.Equate(t, con.Playback.IsPlaying(), true)

	con.dispatch(device.KeyF6)
	test.Equate(t, con.Playback.Speed(), 0.5)

	con.dispatch(device.KeyF4)
	test.Equate(t, con.Playback.IsPlaying(), false)

	con.dispatch(device.KeyF5)
	test.Equate(t, con.Recorder.Count(), 0)
}

func TestEndWritesTranscript(t *testing.T) {
	ses := &mockSession{name: "test pad"}
	enum := &mockEnumerator{count: 1, ses: ses}
	con, _, _ := testConsole(t, enum, &mockKeyboard{})

	ses.axes[axisLX] = 0.5

	path := filepath.Join(t.TempDir(), "session.rec")
	con.SetRecordPath(path)
	con.tickHz = 20.0

	test.ExpectedSuccess(t, con.Recorder.Start())
	test.ExpectedSuccess(t, con.Tick())
	test.ExpectedSuccess(t, con.Tick())
	test.ExpectedSuccess(t, con.Tick())

	con.end()
	test.Equate(t, con.Recorder.IsRecording(), false)
	test.Equate(t, ses.closed, true)

	commands, tickHz, err := recorder.Load(path)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(commands), 3)
	test.Equate(t, tickHz, 20.0)
	test.Approximate(t, commands[0].Frame.LX, halfDeflection, 1e-9)
}

func TestBatteryDrain(t *testing.T) {
	buf := &strings.Builder{}
	dsp := statusline.NewDisplay(&terminal.Terminal{}, buf)

	bat := newBattery(dsp)
	test.Equate(t, bat.charge, 100.0)

	// under a second of elapsed time nothing changes
	bat.update()
	test.Equate(t, bat.charge, 100.0)

	bat.last = time.Now().Add(-10 * time.Second)
	bat.update()
	test.Approximate(t, bat.charge, 99.9, 1e-9)
	test.Equate(t, buf.String(), "")

	// crossing the low level posts one notice
	bat.charge = 25.005
	bat.last = time.Now().Add(-time.Second)
	bat.update()
	test.Equate(t, strings.Count(buf.String(), "battery low"), 1)

	// and never again
	bat.last = time.Now().Add(-time.Second)
	bat.update()
	test.Equate(t, strings.Count(buf.String(), "battery low"), 1)

	bat.charge = 10.0
	bat.last = time.Now().Add(-time.Second)
	bat.update()
	test.Equate(t, strings.Count(buf.String(), "battery critically low"), 1)
}

func TestReplay(t *testing.T) {
	buf := &strings.Builder{}
	dsp := statusline.NewDisplay(&terminal.Terminal{}, buf)

	rec := recorder.NewRecorder(dsp)
	test.ExpectedSuccess(t, rec.Start())
	rec.Append(control.Frame{LX: 0.25})
	rec.Append(control.Frame{LY: -0.5, Events: []control.Event{{Action: control.Stop, Pressed: true}}})
	rec.Append(control.Frame{})
	_, _, err := rec.Stop()
	test.ExpectedSuccess(t, err)

	path := filepath.Join(t.TempDir(), "session.rec")
	test.ExpectedSuccess(t, rec.WriteFile(path, 100.0))

	cons := &mockConsumer{}
	test.ExpectedSuccess(t, Replay(path, dsp, cons, 2.0))

	test.Equate(t, len(cons.frames), 3)
	test.Approximate(t, cons.frames[0].LX, 0.25, 1e-9)
	test.Equate(t, len(cons.frames[1].Events), 1)
	test.Equate(t, strings.Count(buf.String(), "playback completed"), 1)
}

func TestLimiterCadence(t *testing.T) {
	lmt := newLimiter(100.0)
	defer lmt.release()

	start := time.Now()
	for i := 0; i < 10; i++ {
		lmt.wait()
	}
	elapsed := time.Since(start)

	if elapsed < 90*time.Millisecond || elapsed > 500*time.Millisecond {
		t.Errorf("10 ticks at 100Hz took %v", elapsed)
	}
}
