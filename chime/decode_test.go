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
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/teamfireflies/arcjr/test"
)

func writeTestWAV(t *testing.T, path string, rate int, samples []int) {
	t.Helper()

	f, err := os.Create(path)
	test.ExpectedSuccess(t, err)

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	test.ExpectedSuccess(t, enc.Write(buf))
	test.ExpectedSuccess(t, enc.Close())
	test.ExpectedSuccess(t, f.Close())
}

// decode a little endian 16bit sample out of the pcm byte stream.
func sampleAt(p pcmData, n int) int {
	return int(int16(uint16(p.data[n*2]) | uint16(p.data[n*2+1])<<8))
}

func TestLoadWAV(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "cue.wav")

	samples := make([]int, 100)
	for i := range samples {
		samples[i] = i * 100
	}
	writeTestWAV(t, pth, 8000, samples)

	p, err := loadPCM(pth)
	test.ExpectedSuccess(t, err)

	test.Equate(t, p.sampleRate, 8000.0)
	test.Equate(t, len(p.data), 200)
	test.Approximate(t, p.totalTime, 0.0125, 0.001)

	// sample values survive the round trip to within rescaling error
	test.Equate(t, sampleAt(p, 0), 0)
	test.Approximate(t, float64(sampleAt(p, 50)), 5000.0, 2.0)
}

func TestLoadUnsupported(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "cue.ogg")
	test.ExpectedSuccess(t, os.WriteFile(pth, []byte("not audio"), 0600))

	_, err := loadPCM(pth)
	test.ExpectedFailure(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := loadPCM(filepath.Join(t.TempDir(), "nonexistent.wav"))
	test.ExpectedFailure(t, err)
}

func TestBeep(t *testing.T) {
	p := beep()

	test.Equate(t, p.sampleRate, 22050.0)
	test.Approximate(t, p.totalTime, 0.12, 0.0001)
	test.Equate(t, len(p.data), int(beepRate*beepDuration)*2)

	// the tone starts at zero and never exceeds the synthesis volume
	test.Equate(t, sampleAt(p, 0), 0)
	vol := float64(beepVolume)
	limit := int(vol*32767) + 1
	for i := 0; i < len(p.data)/2; i++ {
		s := sampleAt(p, i)
		if s > limit || s < -limit {
			t.Fatalf("sample %d out of range (%d)", i, s)
		}
	}
}
