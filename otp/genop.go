package otp

import (
	"fmt"
	"strconv"
	"strings"
)

// Genop is one VM instruction from genop.tab.
type Genop struct {
	Name   string
	Arity  int
	Opcode int
}

// parseGenops reads genop.tab text into an opcode -> instruction map.
//
// Lines have the form "12: -label-/1". Blank lines and # comments are
// skipped. Lines that do not split on a single space into exactly two
// tokens are also skipped: the upstream files carry stray metadata lines
// in that shape, so this is policy, not an error. A repeated opcode
// number overwrites the earlier entry.
func parseGenops(text string) (map[int]Genop, error) {
	ops := make(map[int]Genop)

	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}

		parts := strings.Split(ln, " ")
		if len(parts) != 2 {
			continue
		}

		opcode, err := strconv.Atoi(strings.TrimSuffix(parts[0], ":"))
		if err != nil {
			return nil, fmt.Errorf("otp: bad opcode number in %q: %w", ln, err)
		}

		name, arityTok, ok := strings.Cut(parts[1], "/")
		if !ok {
			return nil, fmt.Errorf("otp: missing arity in %q", ln)
		}
		arity, err := strconv.Atoi(arityTok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidArity, arityTok, ln)
		}

		ops[opcode] = Genop{
			Name:   strings.Trim(name, "-"),
			Arity:  arity,
			Opcode: opcode,
		}
	}

	return ops, nil
}
