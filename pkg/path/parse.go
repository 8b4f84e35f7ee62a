package path

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedPath is returned by Parse for input that is not a path.
var ErrMalformedPath = errors.New("malformed path")

// Parse reads a path string in the standard command grammar. Commands keep
// their case; repeated argument groups after a command letter become
// separate commands (extra pairs after a move are lines).
func Parse(s string) (Path, error) {
	sc := scanner{src: s}

	var (
		out     Path
		current Command
		pending bool
	)

	for {
		sc.skipSeparators()
		if sc.done() {
			break
		}

		ch := sc.src[sc.pos]
		if isLetter(ch) {
			op := Op(upper(ch))
			if _, ok := arity[op]; !ok {
				return nil, fmt.Errorf("%w: unknown command %q at %d", ErrMalformedPath, ch, sc.pos)
			}
			if len(out) == 0 && op != OpMove {
				return nil, fmt.Errorf("%w: path must start with a move", ErrMalformedPath)
			}
			sc.pos++
			current = Command{Op: op, Relative: ch != upper(ch)}
			pending = true
			if op == OpClose {
				out = append(out, current)
				pending = false
			}
			continue
		}

		if current.Op == 0 || current.Op == OpClose {
			return nil, fmt.Errorf("%w: number without command at %d", ErrMalformedPath, sc.pos)
		}

		args := make([]float64, arity[current.Op])
		for i := range args {
			sc.skipSeparators()
			var (
				v   float64
				err error
			)
			if current.Op == OpArc && (i == 3 || i == 4) {
				v, err = sc.flag()
			} else {
				v, err = sc.number()
			}
			if err != nil {
				return nil, err
			}
			args[i] = v
		}

		cmd := Command{Op: current.Op, Relative: current.Relative, Args: args}
		if !pending && current.Op == OpMove {
			cmd.Op = OpLine
		}
		out = append(out, cmd)
		pending = false
	}

	return out, nil
}

// MustParse is like Parse but panics on malformed input. For tests and
// constant paths.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

func (s *scanner) skipSeparators() {
	for !s.done() {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) flag() (float64, error) {
	if s.done() {
		return 0, fmt.Errorf("%w: missing arc flag", ErrMalformedPath)
	}
	switch s.src[s.pos] {
	case '0':
		s.pos++
		return 0, nil
	case '1':
		s.pos++
		return 1, nil
	}
	return 0, fmt.Errorf("%w: bad arc flag at %d", ErrMalformedPath, s.pos)
}

func (s *scanner) number() (float64, error) {
	start := s.pos
	if !s.done() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
		s.pos++
	}

	digits, dot := 0, false
	for !s.done() {
		ch := s.src[s.pos]
		if ch >= '0' && ch <= '9' {
			digits++
		} else if ch == '.' && !dot {
			dot = true
		} else {
			break
		}
		s.pos++
	}

	if digits > 0 && !s.done() && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		mark := s.pos
		s.pos++
		if !s.done() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		exp := 0
		for !s.done() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
			exp++
		}
		if exp == 0 {
			s.pos = mark
		}
	}

	if digits == 0 {
		return 0, fmt.Errorf("%w: expected number at %d", ErrMalformedPath, start)
	}

	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPath, err)
	}
	return v, nil
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - ('a' - 'A')
	}
	return ch
}
