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

// Package terminal is a thin wrapper around "github.com/pkg/term/termios".
// It provides the few posix terminal services the status line needs:
// knowing whether output really is a terminal, the terminal's width, and a
// "quiet" input mode that keeps stray keypresses from echoing into (and
// garbling) the status line.
package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"unsafe"

	"github.com/pkg/term/termios"
)

// geometry contains the dimensions of the output terminal.
type geometry struct {
	// characters
	rows uint16
	cols uint16

	// pixels
	x uint16
	y uint16
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	// whether the input file really is a terminal. when false the mode
	// switching functions are no-ops and Width() returns a fallback value.
	interactive bool

	geometry geometry

	canAttr   syscall.Termios
	quietAttr syscall.Termios

	// sig/ack channels to control the SIGWINCH handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated from the signal handler goroutine
	mu sync.Mutex
}

// width returned by Width() when output is not a terminal.
const fallbackWidth = 80

// Initialise the fields in the Terminal struct. A nil error does not imply
// the files are real terminals; check IsInteractive().
func (t *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil || outputFile == nil {
		return fmt.Errorf("terminal: input and output files are required")
	}

	t.input = inputFile
	t.output = outputFile

	// a failing tcgetattr means input has been redirected. that's fine but
	// there is no terminal state to manage
	if err := termios.Tcgetattr(t.input.Fd(), &t.canAttr); err != nil {
		t.interactive = false
		return nil
	}
	t.interactive = true

	t.quietAttr = t.canAttr
	termios.Cfmakecbreak(&t.quietAttr)

	_ = t.updateGeometry()

	t.terminateHandlerSig = make(chan bool)
	t.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			t.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = t.updateGeometry()
			case <-t.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores canonical mode and stops the SIGWINCH handler.
func (t *Terminal) CleanUp() {
	if !t.interactive {
		return
	}
	t.Restore()
	t.terminateHandlerSig <- true
	<-t.terminateHandlerAck
}

// IsInteractive returns true if the terminal is real and mode switching will
// have an effect.
func (t *Terminal) IsInteractive() bool {
	return t.interactive
}

// Quiet puts the terminal into cbreak mode. Typed characters are not echoed,
// keeping the status line clean while the input window has focus elsewhere.
func (t *Terminal) Quiet() {
	if !t.interactive {
		return
	}
	_ = termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.quietAttr)
}

// Restore puts the terminal back into the canonical mode it started in.
func (t *Terminal) Restore() {
	if !t.interactive {
		return
	}
	_ = termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr)
}

// Width returns the current width of the terminal in characters.
func (t *Terminal) Width() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.interactive || t.geometry.cols == 0 {
		return fallbackWidth
	}
	return int(t.geometry.cols)
}

// updateGeometry gets the current dimensions (in characters and pixels) of
// the output terminal.
func (t *Terminal) updateGeometry() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, t.output.Fd(),
		uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(&t.geometry)))
	if errno != 0 {
		return fmt.Errorf("terminal: error updating geometry (%d)", errno)
	}
	return nil
}
