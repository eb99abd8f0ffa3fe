package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// errNotInteractive is returned when a confirmation is needed but nobody can
// answer it.
var errNotInteractive = errors.New("refusing to delete without confirmation: stdin is not a terminal (pass -yes)")

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// TerminalConfirmer prompts on an interactive terminal and reads a y/N answer.
type TerminalConfirmer struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminalConfirmer prompts on out and reads answers from in.
func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{in: in, reader: bufio.NewReader(in), out: out}
}

// Confirm implements Confirmer. Anything but "y" or "yes" declines.
func (c *TerminalConfirmer) Confirm(prompt string) (bool, error) {
	if !isTerminal(c.in) {
		return false, errNotInteractive
	}
	if _, err := fmt.Fprintf(c.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// confirmDelete asks before deleting unless yes is set. A declined prompt is
// the same failure the view surface reports for a missing confirm=true.
func (r *Runner) confirmDelete(yes bool, what string) error {
	if yes {
		return nil
	}
	ok, err := r.confirm.Confirm("Delete " + what + "?")
	if err != nil {
		return err
	}
	if !ok {
		return errDeclined
	}
	return nil
}

var errDeclined = errors.New("deletion cancelled")
