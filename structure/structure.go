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

// Package structure writes a graphviz representation of a live object graph.
// It is a thin wrapper around "github.com/bradleyjkemp/memviz" and is only
// useful as a debugging aid. The resulting file can be rendered with:
//
//	dot -Tsvg -o structure.svg structure.dot
package structure

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
)

// Write the object graph rooted at graph to the named file, in graphviz dot
// format.
func Write(filename string, graph interface{}) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("structure: %w", err)
	}
	defer f.Close()

	memviz.Map(f, graph)

	return nil
}
