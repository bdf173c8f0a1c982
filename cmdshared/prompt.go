package cmdshared

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Prompter asks the user for values, unless running in non-interactive mode
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from in and writes prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadValue prints prompt and reads a line, returning def if the line is empty
func (p *Prompter) ReadValue(prompt string, def string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if viper.GetBool("non-interactive") {
		fmt.Fprintf(p.out, "%s\n", def)
		return def, nil
	}
	value, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || len(value) == 0) {
		return "", errors.Wrap(err, "error reading input")
	}
	// Trims both CR and LF
	value = strings.TrimSpace(strings.TrimRight(value, "\r\n"))
	if len(value) > 0 {
		return value, nil
	}
	return def, nil
}

// PromptYesNo asks a yes/no question, defaulting to yes
func (p *Prompter) PromptYesNo(prompt string) (bool, error) {
	fmt.Fprint(p.out, prompt)
	if viper.GetBool("non-interactive") {
		fmt.Fprintln(p.out, "Y (non-interactive mode)")
		return true, nil
	}
	answer, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || len(answer) == 0) {
		return false, errors.Wrap(err, "failed to prompt user")
	}

	ansNormal := strings.ToLower(strings.TrimSpace(answer))
	if len(ansNormal) > 0 && ansNormal[0] == 'n' {
		return false, nil
	}
	return true, nil
}
