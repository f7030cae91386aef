package standings

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Read parses a division in the whitespace-separated text format
//
//	n
//	name wins losses remaining g_0 g_1 ... g_{n-1}
//	...
//
// with exactly n team lines, and validates it through New.
// Any parse failure wraps ErrInvalidInput.
func Read(r io.Reader) (*Division, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	t := &tokenizer{sc: sc}

	n, err := t.int("team count")
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: team count must be positive, got %d", ErrInvalidInput, n)
	}

	rows := make([]Row, n)
	for i := range rows {
		name, err := t.word(fmt.Sprintf("team %d name", i))
		if err != nil {
			return nil, err
		}
		row := Row{Name: name, Against: make([]int, n)}
		if row.Wins, err = t.int(name + " wins"); err != nil {
			return nil, err
		}
		if row.Losses, err = t.int(name + " losses"); err != nil {
			return nil, err
		}
		if row.Remaining, err = t.int(name + " remaining"); err != nil {
			return nil, err
		}
		for j := range row.Against {
			if row.Against[j], err = t.int(fmt.Sprintf("%s against %d", name, j)); err != nil {
				return nil, err
			}
		}
		rows[i] = row
	}
	extra, err := t.word("end of input")
	if err == nil {
		return nil, fmt.Errorf("%w: unexpected trailing token %q", ErrInvalidInput, extra)
	}
	if t.sc.Err() != nil {
		return nil, err
	}

	return New(rows)
}

// tokenizer pulls whitespace-separated tokens and names what it expected
// when input runs out.
type tokenizer struct {
	sc *bufio.Scanner
}

func (t *tokenizer) word(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("%w: reading %s: %w", ErrInvalidInput, what, err)
		}
		return "", fmt.Errorf("%w: missing %s", ErrInvalidInput, what)
	}

	return t.sc.Text(), nil
}

func (t *tokenizer) int(what string) (int, error) {
	tok, err := t.word(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidInput, what, tok)
	}

	return v, nil
}
