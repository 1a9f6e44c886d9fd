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

// Package audio decodes wav and mp3 files to PCM and plays them through an
// SDL audio device.
//
// Decoding happens entirely up front: a Clip is the whole file in memory,
// ready to be queued on the device. This is plenty for tutorial sized music
// and effect files and avoids a streaming thread.
//
// The audio subsystem must have been initialised (see the platform package)
// before a Player is created.
package audio

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// device is the subset of the SDL queue-audio API used by the Player. it
// exists so the queueing behaviour can be tested without an audio device.
type device interface {
	Open(want, got *sdl.AudioSpec) (sdl.AudioDeviceID, error)
	Close(id sdl.AudioDeviceID)
	Queue(id sdl.AudioDeviceID, data []byte) error
	ClearQueued(id sdl.AudioDeviceID)
	QueuedSize(id sdl.AudioDeviceID) uint32
	Pause(id sdl.AudioDeviceID, pause bool)
}

// sdlDevice forwards to the package level SDL functions. the device used in
// normal use.
type sdlDevice struct{}

func (sdlDevice) Open(want, got *sdl.AudioSpec) (sdl.AudioDeviceID, error) {
	return sdl.OpenAudioDevice("", false, want, got, 0)
}

func (sdlDevice) Close(id sdl.AudioDeviceID) {
	sdl.CloseAudioDevice(id)
}

func (sdlDevice) Queue(id sdl.AudioDeviceID, data []byte) error {
	return sdl.QueueAudio(id, data)
}

func (sdlDevice) ClearQueued(id sdl.AudioDeviceID) {
	sdl.ClearQueuedAudio(id)
}

func (sdlDevice) QueuedSize(id sdl.AudioDeviceID) uint32 {
	return sdl.GetQueuedAudioSize(id)
}

func (sdlDevice) Pause(id sdl.AudioDeviceID, pause bool) {
	sdl.PauseAudioDevice(id, pause)
}

// Player owns one SDL audio device and queues Clips on it.
type Player struct {
	dev  device
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	open bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The device itself is opened lazily, on the first Play() or Queue(),
// because its parameters depend on the clip being played.
func NewPlayer() *Player {
	return &Player{dev: sdlDevice{}}
}

// ensure the device is open with parameters matching the clip. a device
// opened for a different sample rate or channel count is closed and
// reopened.
func (pl *Player) ensure(cl *Clip) error {
	if pl.open && pl.spec.Freq == cl.sampleRate && pl.spec.Channels == cl.channels {
		return nil
	}

	if pl.open {
		pl.dev.Close(pl.id)
		pl.open = false
	}

	want := sdl.AudioSpec{
		Freq:     cl.sampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: cl.channels,
		Samples:  4096,
	}

	var got sdl.AudioSpec
	id, err := pl.dev.Open(&want, &got)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	pl.id = id
	pl.spec = got
	pl.open = true

	return nil
}

// Play replaces whatever is queued on the device with the clip and unpauses
// the device.
func (pl *Player) Play(cl *Clip) error {
	err := pl.ensure(cl)
	if err != nil {
		return err
	}

	pl.dev.ClearQueued(pl.id)

	err = pl.dev.Queue(pl.id, cl.data)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	pl.dev.Pause(pl.id, false)

	return nil
}

// Queue appends the clip after whatever is already queued and unpauses the
// device. Used for short effects while music is playing.
func (pl *Player) Queue(cl *Clip) error {
	err := pl.ensure(cl)
	if err != nil {
		return err
	}

	err = pl.dev.Queue(pl.id, cl.data)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	pl.dev.Pause(pl.id, false)

	return nil
}

// Pause playback, holding the queue in place.
func (pl *Player) Pause() {
	if pl.open {
		pl.dev.Pause(pl.id, true)
	}
}

// Resume playback from where Pause() left it.
func (pl *Player) Resume() {
	if pl.open {
		pl.dev.Pause(pl.id, false)
	}
}

// Stop playback and discard anything still queued.
func (pl *Player) Stop() {
	if pl.open {
		pl.dev.Pause(pl.id, true)
		pl.dev.ClearQueued(pl.id)
	}
}

// IsPlaying returns true while queued audio remains on an unpaused device.
func (pl *Player) IsPlaying() bool {
	if !pl.open {
		return false
	}
	return pl.dev.QueuedSize(pl.id) > 0
}

// Destroy closes the audio device. The Player must not be used afterwards.
func (pl *Player) Destroy() {
	if pl.open {
		pl.dev.Close(pl.id)
		pl.open = false
	}
}
