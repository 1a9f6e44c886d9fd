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
	"sort"
	"strings"
	"testing"

	"github.com/sdltour/sdltour/test"
)

func TestRegistry(t *testing.T) {
	names := Names()

	if len(names) == 0 {
		t.Fatal("no demos registered")
	}

	test.Equate(t, sort.StringsAreSorted(names), true)

	for _, n := range names {
		dm, ok := Lookup(n)
		test.ExpectedSuccess(t, ok)
		test.Equate(t, dm.Name, n)

		if dm.Run == nil {
			t.Errorf("demo %s has no run function", n)
		}
		if dm.Description == "" {
			t.Errorf("demo %s has no description", n)
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	dm, ok := Lookup("HELLO")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, dm.Name, "hello")

	_, ok = Lookup("no such demo")
	test.ExpectedFailure(t, ok)
}

func TestList(t *testing.T) {
	output := &strings.Builder{}
	List(output)

	for _, n := range Names() {
		if !strings.Contains(output.String(), n) {
			t.Errorf("demo %s missing from listing", n)
		}
	}
}
