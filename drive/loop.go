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
	"os"
	"os/signal"
	"time"

	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/device"
	"github.com/teamfireflies/arcjr/logger"
)

// Run ticks the console at the requested rate until the user quits with the
// escape key, the window close button or an interrupt signal. All three are
// polled at the tick boundary; a tick that has started always completes.
func (con *Console) Run(pump device.EventPump, hz float64) error {
	if hz <= 0.0 {
		return curated.Errorf("drive: tick rate must be positive (%.1f)", hz)
	}

	con.tickHz = hz

	lmt := newLimiter(hz)
	defer lmt.release()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	con.banner(hz)

	for !con.quit {
		lmt.wait()
		con.measured = lmt.actual()

		select {
		case <-intChan:
			con.quit = true
			continue
		default:
		}

		keys, quit := pump.Pump()
		if quit {
			con.quit = true
			continue
		}
		for _, k := range keys {
			con.dispatch(k)
		}
		if con.quit {
			continue
		}

		if err := con.Tick(); err != nil {
			con.end()
			return err
		}

		// playback is paced by an extra wait after each overridden frame,
		// scaled by the speed multiplier. recorded timestamps are not
		// consulted
		if con.overrode {
			time.Sleep(time.Duration(float64(time.Second) / hz / con.Playback.Speed()))
		}
	}

	con.end()
	return nil
}

// end closes the session: any active recording is stopped (and its
// transcript written), the device is released and the status line cleared.
func (con *Console) end() {
	if con.Recorder.IsRecording() {
		con.stopRecording()
	}
	_ = con.Playback.Stop()
	con.Selector.Release()
	con.dsp.Clear()
	logger.Log("drive", "session ended")
}
