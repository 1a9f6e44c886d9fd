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

	"github.com/veandco/go-sdl2/sdl"
)

// fakeDevice stands in for the SDL audio device so queueing behaviour can be
// tested without audio hardware.
type fakeDevice struct {
	opens  int
	closes int
	queued []byte
	paused bool
}

func (f *fakeDevice) Open(want, got *sdl.AudioSpec) (sdl.AudioDeviceID, error) {
	f.opens++
	*got = *want
	f.paused = true
	return sdl.AudioDeviceID(f.opens), nil
}

func (f *fakeDevice) Close(id sdl.AudioDeviceID) {
	f.closes++
}

func (f *fakeDevice) Queue(id sdl.AudioDeviceID, data []byte) error {
	f.queued = append(f.queued, data...)
	return nil
}

func (f *fakeDevice) ClearQueued(id sdl.AudioDeviceID) {
	f.queued = nil
}

func (f *fakeDevice) QueuedSize(id sdl.AudioDeviceID) uint32 {
	return uint32(len(f.queued))
}

func (f *fakeDevice) Pause(id sdl.AudioDeviceID, pause bool) {
	f.paused = pause
}

func TestPlayReplacesQueue(t *testing.T) {
	dev := &fakeDevice{}
	pl := &Player{dev: dev}

	cl := &Clip{data: []byte{1, 2, 3, 4}, sampleRate: 44100, channels: 2}

	test.ExpectedSuccess(t, pl.Play(cl))
	test.Equate(t, len(dev.queued), 4)
	test.Equate(t, dev.paused, false)

	// playing again does not accumulate. the queue is replaced
	test.ExpectedSuccess(t, pl.Play(cl))
	test.Equate(t, len(dev.queued), 4)

	// the device is opened once for a constant clip format
	test.Equate(t, dev.opens, 1)
}

func TestQueueAppends(t *testing.T) {
	dev := &fakeDevice{}
	pl := &Player{dev: dev}

	cl := &Clip{data: []byte{1, 2, 3, 4}, sampleRate: 44100, channels: 2}

	// queued clips play back to back rather than cutting each other off
	test.ExpectedSuccess(t, pl.Queue(cl))
	test.ExpectedSuccess(t, pl.Queue(cl))
	test.Equate(t, len(dev.queued), 8)
	test.Equate(t, dev.paused, false)
}

func TestIsPlaying(t *testing.T) {
	dev := &fakeDevice{}
	pl := &Player{dev: dev}

	// a player that has never opened its device is not playing
	test.Equate(t, pl.IsPlaying(), false)

	cl := &Clip{data: []byte{1, 2}, sampleRate: 22050, channels: 1}
	test.ExpectedSuccess(t, pl.Play(cl))
	test.Equate(t, pl.IsPlaying(), true)

	// stopping discards the queue
	pl.Stop()
	test.Equate(t, pl.IsPlaying(), false)
}

func TestReopenOnFormatChange(t *testing.T) {
	dev := &fakeDevice{}
	pl := &Player{dev: dev}

	test.ExpectedSuccess(t, pl.Play(&Clip{data: []byte{1, 2}, sampleRate: 44100, channels: 2}))
	test.Equate(t, dev.opens, 1)
	test.Equate(t, dev.closes, 0)

	// a clip with a different sample rate closes and reopens the device
	test.ExpectedSuccess(t, pl.Play(&Clip{data: []byte{1, 2}, sampleRate: 22050, channels: 2}))
	test.Equate(t, dev.opens, 2)
	test.Equate(t, dev.closes, 1)

	pl.Destroy()
	test.Equate(t, dev.closes, 2)
}
