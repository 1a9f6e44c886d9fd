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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdltour/sdltour/logger"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// Clip is a fully decoded piece of audio: 16bit signed little-endian PCM
// plus the sample rate and channel count it was decoded at.
type Clip struct {
	data       []byte
	sampleRate int32
	channels   uint8
}

// SampleRate of the decoded PCM in Hz.
func (cl *Clip) SampleRate() int32 {
	return cl.sampleRate
}

// Channels in the decoded PCM.
func (cl *Clip) Channels() uint8 {
	return cl.channels
}

// Duration of the clip in seconds.
func (cl *Clip) Duration() float64 {
	if cl.sampleRate == 0 || cl.channels == 0 {
		return 0
	}
	return float64(len(cl.data)) / 2 / float64(cl.channels) / float64(cl.sampleRate)
}

// Load decodes the audio file at path. The decoder is chosen by the file
// extension; wav and mp3 are supported.
func Load(path string) (*Clip, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return LoadWAV(path)
	case ".mp3":
		return LoadMP3(path)
	}
	return nil, fmt.Errorf("audio: %s: unsupported file extension", path)
}

// LoadWAV decodes an entire wav file into a Clip.
func LoadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("audio: %s: not a valid wav file", path)
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: wav: %w", err)
	}

	cl := clipFromBuffer(buf, int(dec.BitDepth))

	logger.Logf(logger.Allow, "audio", "%s: wav %dHz %dch %.2fs", path, cl.sampleRate, cl.channels, cl.Duration())

	return cl, nil
}

// clipFromBuffer converts a fully decoded go-audio buffer to a Clip. The
// sample rate and channel count come from the buffer's format, the bit depth
// must be supplied because the buffer only records it optionally.
func clipFromBuffer(buf *gaudio.IntBuffer, sourceBitDepth int) *Clip {
	return &Clip{
		data:       pcm16LE(buf.Data, sourceBitDepth),
		sampleRate: int32(buf.Format.SampleRate),
		channels:   uint8(buf.Format.NumChannels),
	}
}

// LoadMP3 decodes an entire mp3 file into a Clip.
//
// According to the go-mp3 docs the stream is always formatted as 16bit
// (little endian) 2 channels even if the source is single channel MP3, so
// there is no conversion step.
func LoadMP3(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("audio: mp3: %w", err)
	}

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("audio: mp3: %w", err)
	}

	cl := &Clip{
		data:       data,
		sampleRate: int32(dec.SampleRate()),
		channels:   2,
	}

	logger.Logf(logger.Allow, "audio", "%s: mp3 %dHz %dch %.2fs", path, cl.sampleRate, cl.channels, cl.Duration())

	return cl, nil
}

// pcm16LE converts raw samples at the given source bit depth to 16bit
// signed little-endian bytes.
func pcm16LE(samples []int, sourceBitDepth int) []byte {
	shift := uint(0)
	up := false
	switch {
	case sourceBitDepth > 16:
		shift = uint(sourceBitDepth - 16)
	case sourceBitDepth < 16:
		shift = uint(16 - sourceBitDepth)
		up = true
	}

	data := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		if up {
			// low bit depth samples are unsigned. recentre around zero
			// before scaling up
			s = (s - (1 << uint(sourceBitDepth-1))) << shift
		} else {
			s >>= shift
		}
		data = append(data, byte(s), byte(s>>8))
	}

	return data
}
