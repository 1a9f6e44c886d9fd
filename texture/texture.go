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

// Package texture wraps a single renderer-native texture handle and its
// cached pixel dimensions.
//
// A Texture owns at most one live handle. Loading a new image releases any
// previously held handle before the new handle is stored; a failed load
// leaves the Texture empty. Free() is idempotent.
//
// A Texture must only be used from the main thread, like every other SDL
// resource.
package texture

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// handle is the subset of the SDL texture API needed for ownership
// bookkeeping. it exists so the ownership rules can be tested without a
// video device. *sdl.Texture implements it.
type handle interface {
	Destroy() error
	SetColorMod(r, g, b uint8) error
	SetAlphaMod(alpha uint8) error
	SetBlendMode(bm sdl.BlendMode) error
}

// RenderTarget is the subset of the SDL renderer API used when drawing a
// Texture. *sdl.Renderer implements it.
type RenderTarget interface {
	CopyEx(texture *sdl.Texture, src, dst *sdl.Rect, angle float64, center *sdl.Point, flip sdl.RendererFlip) error
}

// Options modify how a Texture is drawn by the Render() function. The zero
// value draws the whole texture with no rotation or flipping.
type Options struct {
	// draw only this sub-region of the texture. the destination rectangle
	// takes the clip's dimensions
	Clip *sdl.Rect

	// rotation in degrees, clockwise, around Center. a nil Center means the
	// middle of the destination rectangle
	Angle  float64
	Center *sdl.Point

	Flip sdl.RendererFlip
}

// Texture owns one native texture handle and its pixel dimensions.
type Texture struct {
	tex    handle
	width  int32
	height int32
}

// Load decodes the image at path and uploads it to a renderer-native
// texture. Any previously held handle is released first. On failure the
// Texture is left empty.
func (t *Texture) Load(rnd *sdl.Renderer, path string) error {
	return t.load(rnd, path, false, 0, 0, 0)
}

// LoadWithColorKey is the same as Load except that pixels matching the given
// RGB value become fully transparent.
func (t *Texture) LoadWithColorKey(rnd *sdl.Renderer, path string, r, g, b uint8) error {
	return t.load(rnd, path, true, r, g, b)
}

func (t *Texture) load(rnd *sdl.Renderer, path string, key bool, r, g, b uint8) error {
	t.Free()

	surface, err := img.Load(path)
	if err != nil {
		return fmt.Errorf("texture: %s: %w", path, err)
	}
	defer surface.Free()

	if key {
		err = surface.SetColorKey(true, sdl.MapRGB(surface.Format, r, g, b))
		if err != nil {
			return fmt.Errorf("texture: %s: %w", path, err)
		}
	}

	tex, err := rnd.CreateTextureFromSurface(surface)
	if err != nil {
		return fmt.Errorf("texture: %s: %w", path, err)
	}

	t.swap(tex, surface.W, surface.H)

	return nil
}

// LoadText rasterises text with the given font and color and uploads the
// result as with Load().
func (t *Texture) LoadText(rnd *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) error {
	t.Free()

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return fmt.Errorf("texture: text: %w", err)
	}
	defer surface.Free()

	tex, err := rnd.CreateTextureFromSurface(surface)
	if err != nil {
		return fmt.Errorf("texture: text: %w", err)
	}

	t.swap(tex, surface.W, surface.H)

	return nil
}

// swap stores a newly uploaded handle, releasing any handle held before.
func (t *Texture) swap(tex handle, width, height int32) {
	if t.tex != nil {
		_ = t.tex.Destroy()
	}
	t.tex = tex
	t.width = width
	t.height = height
}

// Free releases the native handle if present and resets the cached
// dimensions. Safe to call on an empty Texture.
func (t *Texture) Free() {
	if t.tex != nil {
		_ = t.tex.Destroy()
		t.tex = nil
	}
	t.width = 0
	t.height = 0
}

// IsLoaded returns true if the Texture currently holds a native handle.
func (t *Texture) IsLoaded() bool {
	return t.tex != nil
}

// SetColorMod modulates the texture's color channels when drawn.
func (t *Texture) SetColorMod(r, g, b uint8) error {
	if t.tex == nil {
		return fmt.Errorf("texture: color mod on empty texture")
	}
	return t.tex.SetColorMod(r, g, b)
}

// SetAlphaMod modulates the texture's alpha when drawn.
func (t *Texture) SetAlphaMod(a uint8) error {
	if t.tex == nil {
		return fmt.Errorf("texture: alpha mod on empty texture")
	}
	return t.tex.SetAlphaMod(a)
}

// SetBlendMode sets how the texture blends with the pixels beneath it.
func (t *Texture) SetBlendMode(mode sdl.BlendMode) error {
	if t.tex == nil {
		return fmt.Errorf("texture: blend mode on empty texture")
	}
	return t.tex.SetBlendMode(mode)
}

// Render draws the texture into the target's back buffer with its top-left
// corner at (x, y). The pixels are not visible until the frame is presented.
func (t *Texture) Render(target RenderTarget, x, y int32, opts *Options) error {
	if t.tex == nil {
		return fmt.Errorf("texture: render of empty texture")
	}

	o := Options{}
	if opts != nil {
		o = *opts
	}

	dst := destRect(x, y, o.Clip, t.width, t.height)

	return target.CopyEx(t.sdlTexture(), o.Clip, &dst, o.Angle, o.Center, o.Flip)
}

// destRect computes the destination rectangle for a draw: positioned at
// (x, y) and sized to the clip if there is one, the full texture otherwise.
func destRect(x, y int32, clip *sdl.Rect, width, height int32) sdl.Rect {
	dst := sdl.Rect{X: x, Y: y, W: width, H: height}
	if clip != nil {
		dst.W = clip.W
		dst.H = clip.H
	}
	return dst
}

// sdlTexture returns the held handle as a concrete SDL texture, as required
// by the renderer copy function.
func (t *Texture) sdlTexture() *sdl.Texture {
	tex, _ := t.tex.(*sdl.Texture)
	return tex
}

// Width returns the cached pixel width. Zero for an empty Texture.
func (t *Texture) Width() int32 {
	return t.width
}

// Height returns the cached pixel height. Zero for an empty Texture.
func (t *Texture) Height() int32 {
	return t.height
}
