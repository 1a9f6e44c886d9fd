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

package demo

import (
	"fmt"

	"github.com/sdltour/sdltour/audio"
	"github.com/sdltour/sdltour/platform"
	"github.com/sdltour/sdltour/texture"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func init() {
	register(Demo{
		Name:        "sound",
		Description: "music and effects. m music, 1-4 effects, 9 pause, 0 stop",
		Run:         runSound,
	})
}

type soundScene struct {
	rnd  *sdl.Renderer
	text *texture.Texture

	// separate players so an effect never interrupts the music queue
	music   *audio.Player
	effects *audio.Player

	song  *audio.Clip
	clips [4]*audio.Clip

	musicPaused bool
}

func (sc *soundScene) HandleEvent(ev sdl.Event) error {
	kev, ok := ev.(*sdl.KeyboardEvent)
	if !ok || kev.Type != sdl.KEYDOWN {
		return nil
	}

	switch kev.Keysym.Sym {
	case sdl.K_m:
		// don't restart the music if it is already playing
		if sc.music.IsPlaying() && !sc.musicPaused {
			return nil
		}
		sc.musicPaused = false
		return sc.music.Play(sc.song)
	case sdl.K_1, sdl.K_2, sdl.K_3, sdl.K_4:
		// queued rather than played so that rapid key presses play the
		// effects back to back instead of cutting each other off
		i := int(kev.Keysym.Sym - sdl.K_1)
		return sc.effects.Queue(sc.clips[i])
	case sdl.K_9:
		if sc.musicPaused {
			sc.music.Resume()
		} else {
			sc.music.Pause()
		}
		sc.musicPaused = !sc.musicPaused
	case sdl.K_0:
		sc.music.Stop()
		sc.musicPaused = false
	}

	return nil
}

func (sc *soundScene) Update() error {
	return nil
}

func (sc *soundScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	err := sc.text.Render(sc.rnd,
		(screenWidth-sc.text.Width())/2, (screenHeight-sc.text.Height())/2, nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

func runSound(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: sound",
		Width:  screenWidth,
		Height: screenHeight,
		Audio:  true,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}
	defer plt.Destroy()

	font, err := ttf.OpenFont(asset("lazy.ttf"), 22)
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}
	defer font.Close()

	sc := &soundScene{
		rnd:     plt.Window().Renderer(),
		text:    &texture.Texture{},
		music:   audio.NewPlayer(),
		effects: audio.NewPlayer(),
	}
	defer sc.text.Free()
	defer sc.music.Destroy()
	defer sc.effects.Destroy()

	err = sc.text.LoadText(sc.rnd, font, "m music, 1-4 effects, 9 pause, 0 stop",
		sdl.Color{R: 0, G: 0, B: 0, A: 255})
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}

	sc.song, err = audio.Load(asset("beat.mp3"))
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}

	for i, f := range []string{"scratch.wav", "high.wav", "medium.wav", "low.wav"} {
		sc.clips[i], err = audio.Load(asset(f))
		if err != nil {
			return fmt.Errorf("sound: %w", err)
		}
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}

	return nil
}
