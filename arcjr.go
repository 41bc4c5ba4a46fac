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

package main

import (
	"fmt"
	"os"

	"github.com/teamfireflies/arcjr/chime"
	"github.com/teamfireflies/arcjr/device/sdlinput"
	"github.com/teamfireflies/arcjr/drive"
	"github.com/teamfireflies/arcjr/logger"
	"github.com/teamfireflies/arcjr/modalflag"
	"github.com/teamfireflies/arcjr/performance"
	"github.com/teamfireflies/arcjr/statsview"
	"github.com/teamfireflies/arcjr/statusline"
	"github.com/teamfireflies/arcjr/stick"
	"github.com/teamfireflies/arcjr/terminal"
	"github.com/teamfireflies/arcjr/version"
)

// the default rate of the control loop. the same value the rover firmware
// expects frames at.
const defaultTick = 20.0

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "KEYMAP", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PLAY":
		err = play(md)

	case "KEYMAP":
		fmt.Println(drive.Keymap())

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		vrsn, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vrsn)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	tick := md.AddFloat64("tick", defaultTick, "control loop rate (ticks per second)")
	record := md.AddString("record", "", "write a session transcript to file on exit")
	display := md.AddString("display", "compact", "status line mode: compact, debug")
	chimeFile := md.AddString("chime", "", "WAV or MP3 file for the action cue (default is a synthesised beep)")
	preset := md.AddString("preset", "", "apply a settings preset on start: slow, normal, fast")
	log := md.AddBool("log", false, "echo the debugging log to stderr")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// echo to stderr. the status line owns stdout
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr), true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not in this build")
		}
	}

	mode, ok := statusline.ParseMode(*display)
	if !ok {
		return fmt.Errorf("unknown display mode (%s)", *display)
	}

	pst, pstOk := stick.ParsePreset(*preset)
	if *preset != "" && !pstOk {
		return fmt.Errorf("unknown preset (%s)", *preset)
	}

	trm := &terminal.Terminal{}
	if err := trm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer trm.CleanUp()

	// cbreak mode. keypresses arrive through the input window and must not
	// echo into the status line
	trm.Quiet()

	dsp := statusline.NewDisplay(trm, os.Stdout)
	dsp.SetMode(mode)

	inp, err := sdlinput.NewInput(version.ApplicationName)
	if err != nil {
		return err
	}
	defer inp.Destroy()

	// the display is both the notification surface and the frame consumer
	con, err := drive.NewConsole(inp, inp, dsp, dsp)
	if err != nil {
		return err
	}

	// no audio device is not worth stopping for
	chm, err := chime.NewChime(*chimeFile)
	if err != nil {
		logger.Logf("chime", "unavailable: %v", err)
	} else {
		defer chm.Close()
		con.SetChime(chm)
	}

	if *preset != "" {
		con.ApplyPreset(pst)
	}

	if *record != "" {
		con.SetRecordPath(*record)
	}

	return con.Run(inp, *tick)
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	speed := md.AddFloat64("speed", 1.0, "playback speed multiplier")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript file required for %s mode", md)
	case 1:
		trm := &terminal.Terminal{}
		if err := trm.Initialise(os.Stdin, os.Stdout); err != nil {
			return err
		}
		defer trm.CleanUp()
		trm.Quiet()

		dsp := statusline.NewDisplay(trm, os.Stdout)

		return drive.Replay(md.GetArg(0), dsp, dsp, *speed)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	tick := md.AddFloat64("tick", defaultTick, "control loop rate (ticks per second)")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "profiles to record: none, cpu, mem, all")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, *tick, *duration)
}
