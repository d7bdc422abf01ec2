package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/inventory"
)

// MaxAttempts is the number of times a numeric field is asked before giving up.
const MaxAttempts = 3

// prompter asks questions on out and reads one line answers from in.
// Lines are read without a length limit.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{reader: bufio.NewReader(in), out: out}
}

// Ask prints label and returns the next input line.
// It returns io.EOF when the input is exhausted.
func (p *prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// askParsed asks label until parse accepts the answer, at most MaxAttempts times.
func askParsed[T any](p *prompter, label string, parse func(string) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		answer, err := p.Ask(label)
		if err != nil {
			return zero, err
		}
		v, err := parse(strings.TrimSpace(answer))
		if err == nil {
			return v, nil
		}
		if attempt >= MaxAttempts {
			return zero, fmt.Errorf("%w: %q after %d attempts", inventory.ErrMalformedInput, answer, attempt)
		}
		fmt.Fprintf(p.out, "Invalid input %q, please try again.\n", answer)
	}
}

func parseCost(s string) (inventory.Money, error) { return inventory.ParseMoney(s, "") }

func parseRestockQuantity(s string) (inventory.Quantity, error) {
	q, err := inventory.ParseQuantity(s)
	if err != nil {
		return 0, err
	}
	if q.IsNegative() {
		return 0, errors.New("quantity must not be negative")
	}
	return q, nil
}
