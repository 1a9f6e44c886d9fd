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

package platform_test

import (
	"testing"

	"github.com/sdltour/sdltour/platform"
	"github.com/sdltour/sdltour/test"

	"github.com/veandco/go-sdl2/sdl"
)

func TestDisplayForPoint(t *testing.T) {
	// two 1920x1080 displays side by side
	bounds := []sdl.Rect{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 1920, Y: 0, W: 1920, H: 1080},
	}

	test.Equate(t, platform.DisplayForPoint(0, 0, bounds), 0)
	test.Equate(t, platform.DisplayForPoint(1919, 1079, bounds), 0)
	test.Equate(t, platform.DisplayForPoint(1920, 0, bounds), 1)
	test.Equate(t, platform.DisplayForPoint(3000, 500, bounds), 1)

	// point outside any display resolves to the nearest display to the left
	test.Equate(t, platform.DisplayForPoint(4000, 5000, bounds), 1)
}

func TestNextDisplay(t *testing.T) {
	test.Equate(t, platform.NextDisplay(0, 1, 3), 1)
	test.Equate(t, platform.NextDisplay(2, 1, 3), 0)
	test.Equate(t, platform.NextDisplay(0, -1, 3), 2)
	test.Equate(t, platform.NextDisplay(1, -1, 3), 0)

	// single display setups always resolve to display 0
	test.Equate(t, platform.NextDisplay(0, 1, 1), 0)
	test.Equate(t, platform.NextDisplay(0, -1, 1), 0)

	// no display information at all
	test.Equate(t, platform.NextDisplay(3, 1, 0), 0)
}
