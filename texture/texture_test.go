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

package texture

import (
	"testing"

	"github.com/sdltour/sdltour/test"

	"github.com/veandco/go-sdl2/sdl"
)

// fakeHandle stands in for a native texture so ownership can be tested
// without a video device.
type fakeHandle struct {
	destroyed int
}

func (f *fakeHandle) Destroy() error {
	f.destroyed++
	return nil
}

func (f *fakeHandle) SetColorMod(r, g, b uint8) error     { return nil }
func (f *fakeHandle) SetAlphaMod(alpha uint8) error       { return nil }
func (f *fakeHandle) SetBlendMode(bm sdl.BlendMode) error { return nil }

// fakeTarget records the arguments of the most recent copy request.
type fakeTarget struct {
	copies int
	src    *sdl.Rect
	dst    sdl.Rect
}

func (f *fakeTarget) CopyEx(texture *sdl.Texture, src, dst *sdl.Rect, angle float64, center *sdl.Point, flip sdl.RendererFlip) error {
	f.copies++
	f.src = src
	f.dst = *dst
	return nil
}

func TestFreeIsIdempotent(t *testing.T) {
	tex := Texture{}

	tex.Free()
	test.Equate(t, tex.Width(), 0)
	test.Equate(t, tex.Height(), 0)

	tex.Free()
	test.Equate(t, tex.Width(), 0)
	test.Equate(t, tex.Height(), 0)
	test.Equate(t, tex.IsLoaded(), false)

	// a held handle is destroyed exactly once no matter how often Free() is
	// called
	h := &fakeHandle{}
	tex.swap(h, 64, 48)
	test.Equate(t, tex.Width(), 64)
	test.Equate(t, tex.Height(), 48)

	tex.Free()
	tex.Free()
	test.Equate(t, h.destroyed, 1)
	test.Equate(t, tex.Width(), 0)
	test.Equate(t, tex.Height(), 0)
}

func TestLoadReplacesPrevious(t *testing.T) {
	tex := Texture{}

	first := &fakeHandle{}
	tex.swap(first, 400, 400)
	test.Equate(t, first.destroyed, 0)

	// storing a second handle releases the first. dimensions follow the
	// replacement
	second := &fakeHandle{}
	tex.swap(second, 100, 200)
	test.Equate(t, first.destroyed, 1)
	test.Equate(t, second.destroyed, 0)
	test.Equate(t, tex.Width(), 100)
	test.Equate(t, tex.Height(), 200)
}

func TestClipSizedDestination(t *testing.T) {
	tex := Texture{}
	tex.swap(&fakeHandle{}, 400, 400)

	target := &fakeTarget{}

	// no clip: destination takes the full texture dimensions
	err := tex.Render(target, 10, 20, nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, target.dst.X, 10)
	test.Equate(t, target.dst.Y, 20)
	test.Equate(t, target.dst.W, 400)
	test.Equate(t, target.dst.H, 400)

	// with clip: destination takes the clip dimensions, not the texture's
	clip := &sdl.Rect{X: 0, Y: 0, W: 100, H: 100}
	err = tex.Render(target, 10, 20, &Options{Clip: clip})
	test.ExpectedSuccess(t, err)
	test.Equate(t, target.dst.W, 100)
	test.Equate(t, target.dst.H, 100)
	test.Equate(t, target.src == clip, true)
}

func TestEmptyTexture(t *testing.T) {
	tex := Texture{}
	target := &fakeTarget{}

	// no operation is valid on an empty texture
	test.ExpectedFailure(t, tex.Render(target, 0, 0, nil))
	test.Equate(t, target.copies, 0)

	test.ExpectedFailure(t, tex.SetColorMod(255, 0, 0))
	test.ExpectedFailure(t, tex.SetAlphaMod(127))
	test.ExpectedFailure(t, tex.SetBlendMode(sdl.BLENDMODE_BLEND))
}
