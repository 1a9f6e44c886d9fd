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

// Package demo contains the tour programs themselves, one per file. Each
// demo creates its own platform, loads its own assets, runs its own
// event/render loop and tears everything down before returning.
//
// Demos register themselves by name. The main program looks them up with
// Lookup() and lists them with List().
package demo

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sdltour/sdltour/loop"
)

// standard screen dimensions used by almost every demo.
const (
	screenWidth  = 640
	screenHeight = 480
)

// Options are the command line adjustments accepted by every demo.
type Options struct {
	// cap the event/render loop at this rate. zero means uncapped
	FPSCap int

	// request a renderer that presents in step with the display refresh
	VSync bool
}

// Demo is one runnable tour program.
type Demo struct {
	Name        string
	Description string
	Run         func(opts Options) error
}

var demos = make(map[string]Demo)

func register(dm Demo) {
	demos[dm.Name] = dm
}

// Lookup the named demo. Names are case insensitive.
func Lookup(name string) (Demo, bool) {
	dm, ok := demos[strings.ToLower(name)]
	return dm, ok
}

// Names of all registered demos, sorted.
func Names() []string {
	names := make([]string, 0, len(demos))
	for n := range demos {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// List writes every registered demo and its description to the io.Writer.
func List(output io.Writer) {
	for _, n := range Names() {
		fmt.Fprintf(output, "%-12s %s\n", n, demos[n].Description)
	}
}

// asset returns the path of a file in the assets directory.
func asset(name string) string {
	return filepath.Join("assets", name)
}

// runLoop runs a scene through the event/render loop with the frame rate cap
// from the Options applied. Most demos end with a call to this.
func runLoop(sc loop.Scene, opts Options) error {
	lp := loop.New(sc)

	if opts.FPSCap > 0 {
		err := lp.SetFPSLimit(opts.FPSCap)
		if err != nil {
			return err
		}
	}

	return lp.Run()
}
