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

package chime

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/teamfireflies/arcjr/curated"
	"github.com/teamfireflies/arcjr/logger"
)

type pcmData struct {
	totalTime  float64 // in seconds
	sampleRate float64

	// data is mono, little endian 16bit samples (the left channel in the
	// case of stereo source files)
	data []byte
}

func (p *pcmData) appendSample(s int16) {
	p.data = append(p.data, byte(s), byte(s>>8))
}

// loadPCM decodes a WAV or MP3 file to mono 16bit PCM.
func loadPCM(path string) (pcmData, error) {
	p := pcmData{
		data: make([]byte, 0),
	}

	f, err := os.Open(path)
	if err != nil {
		return p, curated.Errorf("chime: %v", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if dec == nil || !dec.IsValidFile() {
			return p, curated.Errorf("chime: %s is not a valid wav file", path)
		}

		logger.Log("chime", "loading from wav file")

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, curated.Errorf("chime: wav: %v", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// float values are in the range of the source bit depth, not [-1, 1]
		bitDepth := buf.SourceBitDepth
		if bitDepth == 0 {
			bitDepth = 16
		}
		scale := float64(int(1) << (bitDepth - 1))

		// copy first channel only of the data stream
		for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
			v := float64(floatBuf.Data[i]) / scale
			p.appendSample(int16(v * 32767))
		}

		p.sampleRate = float64(dec.SampleRate)

		dur, err := dec.Duration()
		if err != nil {
			return p, curated.Errorf("chime: wav: %v", err)
		}
		p.totalTime = dur.Seconds()

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return p, curated.Errorf("chime: mp3: %v", err)
		}

		logger.Log("chime", "loading from mp3 file")

		// the go-mp3 stream is always 16bit little endian with two channels,
		// so a full sample is four bytes. we keep the left channel
		err = nil
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return p, curated.Errorf("chime: mp3: %v", err)
			}

			for i := 0; i+1 < chunkLen; i += 4 {
				p.appendSample(int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8))
			}
		}

		p.sampleRate = float64(dec.SampleRate())
		p.totalTime = float64(len(p.data)/2) / p.sampleRate

	default:
		return p, curated.Errorf("chime: unsupported file type (%s)", filepath.Ext(path))
	}

	return p, nil
}

// parameters for the synthesised cue
const (
	beepFreq     = 880.0
	beepDuration = 0.12
	beepRate     = 22050
	beepVolume   = 0.25
)

// beep synthesises the default cue. A short sine tone with a linear decay.
func beep() pcmData {
	samples := int(beepRate * beepDuration)

	p := pcmData{
		totalTime:  beepDuration,
		sampleRate: beepRate,
		data:       make([]byte, 0, samples*2),
	}

	for i := 0; i < samples; i++ {
		decay := 1.0 - float64(i)/float64(samples)
		v := math.Sin(2 * math.Pi * beepFreq * float64(i) / beepRate)
		p.appendSample(int16(v * decay * beepVolume * 32767))
	}

	return p
}
