package parser

import (
	"slices"
	"strings"
)

// Prefix marks the start of an argument, e.g. "n/" for a name.
type Prefix string

const (
	PrefixName     Prefix = "n/"
	PrefixPhone    Prefix = "p/"
	PrefixCuisine  Prefix = "c/"
	PrefixLocation Prefix = "l/"
	PrefixTag      Prefix = "t/"
)

// ArgumentMap holds the values found for each prefix, in input order.
// The text before the first prefix is the preamble.
type ArgumentMap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first recognised prefix.
func (a ArgumentMap) Preamble() string { return a.preamble }

// Value returns the last value given for p, if any.
func (a ArgumentMap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p.
func (a ArgumentMap) AllValues(p Prefix) []string {
	return slices.Clone(a.values[p])
}

// Has reports whether p appeared at least once.
func (a ArgumentMap) Has(p Prefix) bool {
	return len(a.values[p]) > 0
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args by prefixes. A prefix only counts when it starts the
// string or follows whitespace, so "l/Blk 1/2" keeps "1/2" in the location.
// Values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMap {
	positions := findPrefixPositions(args, prefixes)
	slices.SortFunc(positions, func(a, b prefixPosition) int { return a.start - b.start })

	out := ArgumentMap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	out.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		out.values[pos.prefix] = append(out.values[pos.prefix], value)
	}
	return out
}

func findPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var out []prefixPosition
	for _, p := range prefixes {
		from := 0
		for {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			i += from
			if i == 0 || isSpace(args[i-1]) {
				out = append(out, prefixPosition{prefix: p, start: i})
			}
			from = i + 1
		}
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
