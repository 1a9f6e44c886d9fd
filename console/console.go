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

// Package console provides the pacing devices used by the earliest demos: a
// fixed delay, a wait-for-ENTER prompt and a wait-for-any-key prompt. These
// exist purely to keep a console window readable before the program exits.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Delay stalls the calling goroutine for the specified duration.
func Delay(d time.Duration) {
	time.Sleep(d)
}

// WaitEnter prints the prompt and blocks until the user presses ENTER. The
// input will be os.Stdin in normal use.
func WaitEnter(input io.Reader, output io.Writer, prompt string) error {
	if prompt != "" {
		fmt.Fprintf(output, "%s", prompt)
	}

	_, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	return nil
}

// WaitKey prints the prompt and blocks until any single key is pressed. The
// input must be a terminal, os.Stdin in normal use; it is put into cbreak
// mode for the duration of the wait.
func WaitKey(input *os.File, output io.Writer, prompt string) error {
	if prompt != "" {
		fmt.Fprintf(output, "%s", prompt)
	}

	fd := input.Fd()

	var canonical unix.Termios
	err := termios.Tcgetattr(fd, &canonical)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	cbreak := canonical
	termios.Cfmakecbreak(&cbreak)

	err = termios.Tcsetattr(fd, termios.TCSANOW, &cbreak)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	// whatever happens, return the terminal to canonical mode
	defer termios.Tcsetattr(fd, termios.TCSANOW, &canonical)

	b := make([]byte, 1)
	_, err = input.Read(b)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	fmt.Fprintf(output, "\n")

	return nil
}
