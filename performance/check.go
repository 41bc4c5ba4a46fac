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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/teamfireflies/arcjr/control"
	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/device"
	"github.com/teamfireflies/arcjr/drive"
	"github.com/teamfireflies/arcjr/statusline"
	"github.com/teamfireflies/arcjr/terminal"
)

// nullPad is an enumerator with no devices attached. The console falls back
// to the keyboard source, which for a performance check is always idle.
type nullPad struct{}

func (nullPad) Count() int {
	return 0
}

func (nullPad) Open(n int) (device.Session, error) {
	return nil, curated.Errorf("performance: no device to open")
}

// nullKeyboard reports every key as released.
type nullKeyboard struct{}

func (nullKeyboard) IsDown(k device.Key) bool {
	return false
}

// timedPump ends the control loop once the deadline has passed. No key
// events are ever returned.
type timedPump struct {
	deadline time.Time
}

func (p *timedPump) Pump() ([]device.Key, bool) {
	return nil, time.Now().After(p.deadline)
}

// counter counts the frames emitted by the console.
type counter struct {
	frames int
}

func (c *counter) Consume(frame control.Frame) error {
	c.frames++
	return nil
}

// Check runs the console headlessly for the given duration and reports the
// achieved tick rate to output. The duration is a string suitable for
// time.ParseDuration. Profiles, if requested, cover the entire run.
func Check(output io.Writer, profile Profile, hz float64, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dsp := statusline.NewDisplay(&terminal.Terminal{}, io.Discard)
	cnt := &counter{}

	con, err := drive.NewConsole(nullPad{}, nullKeyboard{}, dsp, cnt)
	if err != nil {
		return err
	}

	pump := &timedPump{deadline: time.Now().Add(dur)}

	runner := func() error {
		return con.Run(pump, hz)
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	achieved := float64(cnt.frames) / dur.Seconds()
	accuracy := 100 * achieved / hz
	output.Write([]byte(fmt.Sprintf("%.2f ticks/s (%d ticks in %.2f seconds) %.1f%%\n",
		achieved, cnt.frames, dur.Seconds(), accuracy)))

	return nil
}
