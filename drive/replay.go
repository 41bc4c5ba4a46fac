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

	"github.com/teamfireflies/arcjr/control"
	"github.com/teamfireflies/arcjr/logger"
	"github.com/teamfireflies/arcjr/recorder"
	"github.com/teamfireflies/arcjr/statusline"
)

// Replay feeds a transcript file through the consumer without opening any
// input device. The transcript's recorded tick rate paces the replay, scaled
// by the speed multiplier; a multiplier of zero or less means the
// transcript's natural speed.
func Replay(path string, dsp *statusline.Display, consumer control.Consumer, speed float64) error {
	commands, tickHz, err := recorder.Load(path)
	if err != nil {
		return err
	}

	// a non-positive multiplier is rejected by SetSpeed, leaving the
	// default of 1x
	plb := recorder.NewPlayback(dsp)
	plb.SetSpeed(speed)

	if err := plb.Start(commands); err != nil {
		return err
	}

	logger.Logf("drive", "replaying %s: %d commands at %.1fHz", path, len(commands), tickHz)

	lmt := newLimiter(tickHz * plb.Speed())
	defer lmt.release()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for plb.IsPlaying() {
		lmt.wait()

		select {
		case <-intChan:
			if err := plb.Stop(); err != nil {
				return err
			}
			continue
		default:
		}

		cmd, ok, err := plb.Next()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		dsp.SetStatus(statusline.Status{
			Source:        "transcript",
			Battery:       fullCharge,
			Playing:       true,
			PlaybackPos:   plb.String(),
			PlaybackSpeed: plb.Speed(),
			TickRate:      tickHz,
		})

		if err := consumer.Consume(cmd.Frame); err != nil {
			return err
		}
	}

	dsp.Clear()
	return nil
}
