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

// Package chime plays a short audio cue whenever an action is pressed. The
// cue is either decoded from a user supplied WAV or MP3 file or, with no
// file, synthesised at startup. Playback goes through an SDL audio device
// and is fire-and-forget, a cue that is still sounding when the next one
// arrives is simply cut off.
package chime

import (
	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// Chime is the audio cue player.
type Chime struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// little endian 16bit mono samples, ready for queueing
	pcm []byte

	enabled bool
}

// NewChime is the preferred method of initialisation for the Chime type.
// With an empty path the cue is a synthesised beep.
func NewChime(path string) (*Chime, error) {
	chm := &Chime{
		enabled: true,
	}

	var p pcmData
	var err error

	if path == "" {
		p = beep()
	} else {
		p, err = loadPCM(path)
		if err != nil {
			return nil, err
		}
	}
	chm.pcm = p.data

	err = sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("chime: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(p.sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var actualSpec sdl.AudioSpec

	chm.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("chime: %v", err)
	}
	chm.spec = actualSpec

	// an unpaused device with an empty queue outputs silence
	sdl.PauseAudioDevice(chm.id, false)

	logger.Logf("chime", "cue length %.2fs at %.0fHz", p.totalTime, p.sampleRate)

	return chm, nil
}

// length of the device buffer in samples. the precise value is not critical
// for a fire-and-forget cue.
const bufferLength = 512

// Play queues the cue. A cue already sounding is cut off. A no-op while the
// chime is disabled.
func (chm *Chime) Play() error {
	if !chm.enabled {
		return nil
	}

	sdl.ClearQueuedAudio(chm.id)
	err := sdl.QueueAudio(chm.id, chm.pcm)
	if err != nil {
		return curated.Errorf("chime: %v", err)
	}

	return nil
}

// SetEnabled turns the cue on or off.
func (chm *Chime) SetEnabled(enabled bool) {
	chm.enabled = enabled
}

// Enabled returns whether the cue is on.
func (chm *Chime) Enabled() bool {
	return chm.enabled
}

// Close releases the audio device.
func (chm *Chime) Close() {
	sdl.ClearQueuedAudio(chm.id)
	sdl.CloseAudioDevice(chm.id)
}
