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

package sprite_test

import (
	"testing"

	"github.com/sdltour/sdltour/sprite"
	"github.com/sdltour/sdltour/test"
)

func TestStrip(t *testing.T) {
	clips := sprite.Strip(64, 205, 4)
	test.Equate(t, len(clips), 4)
	test.Equate(t, clips[0].X, 0)
	test.Equate(t, clips[3].X, 192)
	test.Equate(t, clips[3].W, 64)
	test.Equate(t, clips[3].H, 205)
}

func TestAnimationCycling(t *testing.T) {
	// four walking frames at a slow factor of five
	an, err := sprite.NewAnimation(sprite.Strip(64, 205, 4), 5)
	test.ExpectedSuccess(t, err)

	// each clip is held for five frames: 0,0,0,0,0,1,1,1,1,1,2,...
	expected := []int{
		0, 0, 0, 0, 0,
		1, 1, 1, 1, 1,
		2, 2, 2, 2, 2,
		3, 3, 3, 3, 3,
	}

	for i, e := range expected {
		if an.Frame() != e {
			t.Fatalf("frame %d: expected clip %d (got %d)", i, e, an.Frame())
		}
		an.Advance()
	}

	// the counter has reached 20 and the animation has wrapped back to the
	// first clip
	test.Equate(t, an.Frame(), 0)

	// and the cycle repeats identically
	for i, e := range expected {
		if an.Frame() != e {
			t.Fatalf("second cycle, frame %d: expected clip %d (got %d)", i, e, an.Frame())
		}
		an.Advance()
	}
}

func TestAnimationReset(t *testing.T) {
	an, err := sprite.NewAnimation(sprite.Strip(10, 10, 3), 2)
	test.ExpectedSuccess(t, err)

	an.Advance()
	an.Advance()
	test.Equate(t, an.Frame(), 1)

	an.Reset()
	test.Equate(t, an.Frame(), 0)
}

func TestAnimationErrors(t *testing.T) {
	_, err := sprite.NewAnimation(nil, 5)
	test.ExpectedFailure(t, err)

	_, err = sprite.NewAnimation(sprite.Strip(10, 10, 2), 0)
	test.ExpectedFailure(t, err)
}
