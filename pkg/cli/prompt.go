package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrNoAnswer é retornado quando a entrada termina antes de uma resposta válida
var ErrNoAnswer = errors.New("no answer to confirmation prompt")

// Prompter faz perguntas sim/não ao usuário
type Prompter struct {
	in          *bufio.Reader
	printer     *Printer
	interactive bool
}

// NewPrompter cria um Prompter lendo de in e escrevendo via printer
func NewPrompter(in io.Reader, printer *Printer) *Prompter {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		printer:     printer,
		interactive: interactive,
	}
}

// Confirm repete a pergunta até receber y, yes, n ou no (sem diferenciar
// maiúsculas). Não há timeout.
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(p.printer.out, "%s%s [yes/no] ", prefixQuestion, question)

		line, err := p.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))

		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err != nil {
			fmt.Fprintln(p.printer.out)
			if !p.interactive {
				return false, fmt.Errorf("%w: stdin is not a terminal, use --yes to skip confirmation", ErrNoAnswer)
			}
			return false, fmt.Errorf("%w: %v", ErrNoAnswer, err)
		}

		p.printer.Warn("Please type either 'yes' or 'no'")
	}
}
