// This file is part of SDLTour.
//
// SDLTour is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SDLTour is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SDLTour.  If not, see <https://www.gnu.org/licenses/>.

package audio

import (
	"testing"

	"github.com/sdltour/sdltour/test"

	gaudio "github.com/go-audio/audio"
)

func TestPCM16LE(t *testing.T) {
	// 16bit samples pass through unchanged, little-endian
	data := pcm16LE([]int{0, 1, -1, 0x1234}, 16)
	test.Equate(t, len(data), 8)
	test.Equate(t, int(data[0]), 0)
	test.Equate(t, int(data[1]), 0)
	test.Equate(t, int(data[2]), 1)
	test.Equate(t, int(data[3]), 0)
	test.Equate(t, int(data[4]), 0xff)
	test.Equate(t, int(data[5]), 0xff)
	test.Equate(t, int(data[6]), 0x34)
	test.Equate(t, int(data[7]), 0x12)

	// 24bit samples are scaled down
	data = pcm16LE([]int{0x123456}, 24)
	test.Equate(t, int(data[0]), 0x34)
	test.Equate(t, int(data[1]), 0x12)

	// 8bit samples are unsigned. midpoint becomes zero, extremes scale to
	// the 16bit range
	data = pcm16LE([]int{128, 0, 255}, 8)
	test.Equate(t, int(data[0]), 0)
	test.Equate(t, int(data[1]), 0)
	test.Equate(t, int(data[2]), 0x00)
	test.Equate(t, int(data[3]), 0x80)
	test.Equate(t, int(data[4]), 0x00)
	test.Equate(t, int(data[5]), 0x7f)
}

func TestClipFromBuffer(t *testing.T) {
	buf := &gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: 1,
			SampleRate:  22050,
		},
		Data:           []int{0, 0x1234, -1},
		SourceBitDepth: 16,
	}

	cl := clipFromBuffer(buf, buf.SourceBitDepth)
	test.Equate(t, cl.sampleRate, 22050)
	test.Equate(t, int(cl.channels), 1)
	test.Equate(t, len(cl.data), 6)
}

func TestClipDuration(t *testing.T) {
	// one second of 16bit stereo at 44.1kHz
	cl := Clip{
		data:       make([]byte, 44100*2*2),
		sampleRate: 44100,
		channels:   2,
	}
	test.Equate(t, cl.Duration(), 1.0)

	// an empty clip has no duration and no division by zero
	empty := Clip{}
	test.Equate(t, empty.Duration(), 0.0)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("music.ogg")
	test.ExpectedFailure(t, err)
}
