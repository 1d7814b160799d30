package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gen3ops/dictops/pkg/domain/interfaces"
)

type stdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// newStdinPrompter returns a Prompter reading from stdin. Only a single
// case-insensitive "y" counts as confirmation.
func newStdinPrompter() interfaces.Prompter {
	return &stdinPrompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
	}
}

func (p *stdinPrompter) Confirm(message string) (bool, error) {
	fmt.Fprintf(p.out, "%s %s ", message, color.YellowString("(y/N):"))

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
