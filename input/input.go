package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoviz/graph"
)

// ErrInvalidInput is wrapped by every parse failure.
var ErrInvalidInput = errors.New("input: invalid input")

// Null is the level-order token for an absent tree node.
const Null = "null"

const (
	listSep = ","
	edgeSep = "-"
)

// split trims raw and returns its comma-separated tokens, or nil when raw
// is blank.
func split(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, listSep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Int parses a single integer.
func Int(raw string) (int, error) {
	tok := strings.TrimSpace(raw)
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, tok)
	}
	return v, nil
}

// Ints parses a comma-separated integer list. A blank string yields an
// empty, non-nil slice.
func Ints(raw string) ([]int, error) {
	toks := split(raw)
	out := make([]int, 0, len(toks))
	for i, tok := range toks {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %q is not an integer", ErrInvalidInput, i, tok)
		}
		out = append(out, v)
	}
	return out, nil
}

// LevelOrder parses a level-order tree encoding. Absent nodes come back
// as nil entries; a blank string yields an empty slice.
func LevelOrder(raw string) ([]*int, error) {
	toks := split(raw)
	out := make([]*int, 0, len(toks))
	for i, tok := range toks {
		if tok == Null {
			out = append(out, nil)
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: tree slot %d: %q is neither an integer nor %q", ErrInvalidInput, i, tok, Null)
		}
		out = append(out, &v)
	}
	return out, nil
}

// Edges parses a comma-separated list of "u-v" pairs.
func Edges(raw string) ([]graph.Edge, error) {
	toks := split(raw)
	out := make([]graph.Edge, 0, len(toks))
	for _, tok := range toks {
		e, err := edge(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// edge parses one "u-v" token. A leading minus belongs to u, so "-1-2"
// is rejected rather than misread; node IDs are non-negative.
func edge(tok string) (graph.Edge, error) {
	u, v, ok := strings.Cut(tok, edgeSep)
	if !ok {
		return graph.Edge{}, fmt.Errorf("%w: edge %q is not of the form u-v", ErrInvalidInput, tok)
	}
	a, errU := strconv.Atoi(strings.TrimSpace(u))
	b, errV := strconv.Atoi(strings.TrimSpace(v))
	if errU != nil || errV != nil || a < 0 || b < 0 {
		return graph.Edge{}, fmt.Errorf("%w: edge %q needs two non-negative integers", ErrInvalidInput, tok)
	}
	return graph.Edge{U: a, V: b}, nil
}

// FormatInts renders values in the form Ints accepts.
func FormatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, listSep)
}

// FormatEdges renders edges in the form Edges accepts.
func FormatEdges(edges []graph.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}
	return strings.Join(parts, listSep)
}

// FormatLevelOrder renders a level-order encoding in the form LevelOrder
// accepts.
func FormatLevelOrder(values []*int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			parts[i] = Null
			continue
		}
		parts[i] = strconv.Itoa(*v)
	}
	return strings.Join(parts, listSep)
}
