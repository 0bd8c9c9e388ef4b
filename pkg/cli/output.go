package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prefixos das mensagens para o usuário
const (
	prefixOK       = "[+] "
	prefixFailure  = "[!] "
	prefixContinue = "... "
	prefixQuestion = "[?] "
)

// Printer escreve a saída destinada ao usuário
type Printer struct {
	out io.Writer
}

// NewPrinter cria um Printer sobre out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// YAML serializa v e imprime precedido de uma linha em branco
func (p *Printer) YAML(v any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("falha ao serializar saída: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("falha ao serializar saída: %w", err)
	}

	_, err := fmt.Fprintf(p.out, "\n%s\n", buf.String())
	return err
}

// Text imprime msg linha a linha. A primeira linha recebe [!] quando
// failed, [+] caso contrário; as seguintes recebem "... ".
func (p *Printer) Text(msg string, failed bool) {
	prefix := prefixOK
	if failed {
		prefix = prefixFailure
	}
	p.lines(prefix, msg)
}

// Warn imprime msg sempre com o prefixo [!]
func (p *Printer) Warn(msg string) {
	p.lines(prefixFailure, msg)
}

func (p *Printer) lines(prefix, msg string) {
	for _, line := range strings.Split(msg, "\n") {
		fmt.Fprintln(p.out, prefix+line)
		prefix = prefixContinue
	}
}
