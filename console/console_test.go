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

package console_test

import (
	"os"
	"strings"
	"testing"

	"github.com/sdltour/sdltour/console"
	"github.com/sdltour/sdltour/test"
)

func TestWaitEnter(t *testing.T) {
	tw := &test.Writer{}

	err := console.WaitEnter(strings.NewReader("\n"), tw, "press enter")
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.Compare("press enter"), true)

	// input ending without a newline is an error
	err = console.WaitEnter(strings.NewReader(""), tw, "")
	test.ExpectedFailure(t, err)
}

func TestWaitKeyRequiresTerminal(t *testing.T) {
	tw := &test.Writer{}

	// a pipe is not a terminal so cbreak mode cannot be entered
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	err = console.WaitKey(r, tw, "press any key")
	test.ExpectedFailure(t, err)
}
