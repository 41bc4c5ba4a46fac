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

package sdlinput

import (
	"runtime"
	"strings"

	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/device"
	"github.com/teamfireflies/arcjr/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// dimensions of the input-capture window
const (
	windowW = 400
	windowH = 300
)

// Input is the concrete SDL input layer. It implements device.Enumerator,
// device.Keyboard and device.EventPump.
type Input struct {
	window *sdl.Window
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(title string) (*Input, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	inp := &Input{}

	// the window exists to receive keyboard focus and the close button. it is
	// deliberately small and is never drawn to
	inp.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowW, windowH, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	return inp, nil
}

// Destroy closes the window and shuts SDL down.
func (inp *Input) Destroy() {
	if inp.window != nil {
		_ = inp.window.Destroy()
		inp.window = nil
	}
	sdl.Quit()
}

// Count returns the number of attached joysticks.
func (inp *Input) Count() int {
	return sdl.NumJoysticks()
}

// Open initialises the numbered joystick and returns a session over it.
func (inp *Input) Open(n int) (device.Session, error) {
	if n >= sdl.NumJoysticks() {
		return nil, curated.Errorf(device.NoDevice)
	}

	joy := sdl.JoystickOpen(n)
	if joy == nil || !joy.Attached() {
		return nil, curated.Errorf(device.OpenFailed, "joystick not attached")
	}

	logger.Logf("sdl", "joystick: %s", joy.Name())

	return &session{joy: joy}, nil
}

// scancodes for the keys read by held state rather than by press event
var scancodes = map[device.Key]sdl.Scancode{
	"W":             sdl.SCANCODE_W,
	"A":             sdl.SCANCODE_A,
	"S":             sdl.SCANCODE_S,
	"D":             sdl.SCANCODE_D,
	"Q":             sdl.SCANCODE_Q,
	"E":             sdl.SCANCODE_E,
	device.KeySpace: sdl.SCANCODE_SPACE,
	device.KeyTab:   sdl.SCANCODE_TAB,
}

// IsDown returns whether the key is currently held.
func (inp *Input) IsDown(k device.Key) bool {
	states := sdl.GetKeyboardState()

	if k == device.KeyShift {
		return states[sdl.SCANCODE_LSHIFT] == 1 || states[sdl.SCANCODE_RSHIFT] == 1
	}

	sc, ok := scancodes[k]
	if !ok {
		return false
	}
	return states[sc] == 1
}

// Pump drains the SDL event queue. The returned keys are the presses since
// the last call (key repeats are not included) and quit is true if the window
// has been closed.
func (inp *Input) Pump() ([]device.Key, bool) {
	var keys []device.Key
	var quit bool

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
				keys = append(keys, normalise(ev.Keysym.Scancode))
			}
		}
	}

	return keys, quit
}

// normalise converts an SDL scancode to a device.Key.
func normalise(sc sdl.Scancode) device.Key {
	switch sc {
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		return device.KeyShift
	}
	return device.Key(strings.ToUpper(sdl.GetScancodeName(sc)))
}
