package commands

import (
	"bufio"
	"fmt"
	"io"

	"phonebook/internal/dispatch"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// runLoop reads one command per line from in until close/exit or EOF.
func runLoop(in io.Reader, out io.Writer, d *dispatch.Dispatcher) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	fmt.Fprintln(out, "Welcome to the assistant bot!")
	for {
		fmt.Fprint(out, "Enter a command: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		cmd, args := dispatch.ParseInput(sc.Text())
		switch {
		case cmd == "":
			continue
		case dispatch.IsExit(cmd):
			fmt.Fprintln(out, "Good bye!")
			return nil
		}
		fmt.Fprintln(out, d.Dispatch(cmd, args))
	}
}
