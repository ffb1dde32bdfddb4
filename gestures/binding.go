package gestures

import (
	"fmt"
	"strconv"
	"strings"
)

// Binding ties a finger count and a from/to direction pair to a command line.
type Binding struct {
	Fingers int
	From    string
	To      string
	Command string
}

// pairs lists the only from/to letters accepted for each direction
var pairs = map[Direction][2]string{
	Up:    {"D", "U"},
	Right: {"L", "R"},
	Down:  {"U", "D"},
	Left:  {"R", "L"},
}

// ParseBinding parses "<fingers>,<from>,<to>,<command>". Only the first three
// commas separate fields, so the command may contain commas of its own.
// Direction letters are not validated: a binding with unknown letters is
// accepted and never matches.
func ParseBinding(s string) (Binding, error) {
	parts := strings.SplitN(s, ",", 4)
	if len(parts) < 4 {
		return Binding{}, fmt.Errorf("invalid gesture %q: expected <fingers>,<from>,<to>,<command>", s)
	}

	fingers, err := strconv.Atoi(parts[0])
	if err != nil {
		return Binding{}, fmt.Errorf("invalid finger count in gesture %q: %w", s, err)
	}

	return Binding{
		Fingers: fingers,
		From:    parts[1],
		To:      parts[2],
		Command: parts[3],
	}, nil
}

// ParseBindings parses every binding, keeping configuration order.
func ParseBindings(specs []string) ([]Binding, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one gesture is required")
	}

	bindings := make([]Binding, 0, len(specs))
	for _, s := range specs {
		b, err := ParseBinding(s)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// Matches reports whether the binding fires for a swipe with the given
// finger count and direction.
func (b Binding) Matches(fingers int, dir Direction) bool {
	if b.Fingers != fingers {
		return false
	}
	pair, ok := pairs[dir]
	return ok && b.From == pair[0] && b.To == pair[1]
}

func (b Binding) String() string {
	return fmt.Sprintf("%d,%s,%s,%s", b.Fingers, b.From, b.To, b.Command)
}
