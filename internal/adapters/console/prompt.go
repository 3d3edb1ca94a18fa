package console

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxCost is the sanity ceiling for a nightly base cost.
const maxCost = 1_000_000

// Prompter reads validated values from an interactive stream. Each helper
// re-prompts until the input is acceptable; the only errors it returns are
// I/O ones (io.EOF once the stream is exhausted).
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine has no line-length ceiling: an absurdly long line is still input
// to validate, not a reason to end the session.
func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// NonEmptyString trims surrounding whitespace and rejects anything that
// becomes empty.
func (p *Prompter) NonEmptyString(prompt string) (string, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if s := strings.TrimSpace(line); s != "" {
			return s, nil
		}
		fmt.Fprintln(p.out, "Error: the value cannot be empty. Try again.")
	}
}

// PositiveFloat accepts a number in (0, 1000000].
func (p *Prompter) PositiveFloat(prompt string) (float64, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		x, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if perr != nil || math.IsNaN(x) {
			fmt.Fprintln(p.out, "Error: enter a number.")
			continue
		}
		if x <= 0 {
			fmt.Fprintln(p.out, "Error: the value must be greater than 0. Try again.")
			continue
		}
		if x > maxCost {
			fmt.Fprintf(p.out, "Error: the value must not exceed %d. Try again.\n", maxCost)
			continue
		}
		return x, nil
	}
}

// Percent accepts a number in [0, 100).
func (p *Prompter) Percent(prompt string) (float64, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		x, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if perr != nil || math.IsNaN(x) {
			fmt.Fprintln(p.out, "Error: enter a number.")
			continue
		}
		if x < 0 {
			fmt.Fprintln(p.out, "Error: the value cannot be negative. Try again.")
			continue
		}
		if x >= 100 {
			fmt.Fprintln(p.out, "Error: the discount percent must be below 100. Try again.")
			continue
		}
		return x, nil
	}
}

// MenuChoice accepts an integer in [low, high].
func (p *Prompter) MenuChoice(prompt string, low, high int) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr != nil {
			fmt.Fprintln(p.out, "Error: enter a whole number.")
			continue
		}
		if n < low || n > high {
			fmt.Fprintf(p.out, "Error: the number must be in the range [%d, %d].\n", low, high)
			continue
		}
		return n, nil
	}
}
