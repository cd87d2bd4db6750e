package sim

import (
	"io"

	"github.com/itohio/ohmmeter/ui"
)

const clearScreen = "\x1b[H\x1b[2J"

// TerminalFlush returns a Buffer flush func that redraws the frame on w.
func TerminalFlush(w io.Writer) func(*ui.Buffer) error {
	return func(b *ui.Buffer) error {
		_, err := io.WriteString(w, clearScreen+b.String())
		return err
	}
}
