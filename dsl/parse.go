package dsl

import (
	"os"
	"strings"

	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/pattern"
	"github.com/katalvlaran/markovgrid/rule"
	"github.com/katalvlaran/markovgrid/ruletree"
	"github.com/katalvlaran/markovgrid/symmetry"
)

// ParseRule parses a single "[origin:][symmetry;]find>replace" clause into
// a *rule.Rule. Whitespace and quote characters anywhere in clause are
// ignored; find and replace rows are separated by "/".
func ParseRule(clause string) (*rule.Rule, error) {
	s := stripIgnored(clause)
	if s == "" {
		return nil, ErrMalformedRule
	}

	var origin *grid.Symbol
	if len(s) >= 2 && s[1] == ':' {
		o := grid.Symbol(strings.ToUpper(string(s[0]))[0])
		origin = &o
		s = s[2:]
	}

	symStr := ""
	if idx := strings.IndexByte(s, ';'); idx >= 0 {
		symStr = s[:idx]
		s = s[idx+1:]
	}
	sym, err := parseSymmetry(symStr)
	if err != nil {
		return nil, err
	}

	gtIdx := strings.IndexByte(s, '>')
	if gtIdx < 0 {
		return nil, ErrMalformedRule
	}
	findRows, err := parseRows(s[:gtIdx])
	if err != nil {
		return nil, err
	}
	replaceRows, err := parseRows(s[gtIdx+1:])
	if err != nil {
		return nil, err
	}

	p, err := pattern.New(findRows, replaceRows)
	if err != nil {
		return nil, err
	}
	return rule.New(p, origin, sym), nil
}

// ParseBundle parses a comma-separated list of clauses into a single node:
// a bare list becomes a One, a list wrapped in "{...}" becomes an All.
func ParseBundle(s string) (ruletree.Node, error) {
	trimmed := strings.TrimSpace(s)
	all := false
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		all = true
		trimmed = trimmed[1 : len(trimmed)-1]
	}

	var rules []*rule.Rule
	for _, clause := range strings.Split(trimmed, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		r, err := ParseRule(clause)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	if len(rules) == 0 {
		return nil, ErrEmptyBundle
	}
	if all {
		return ruletree.NewAll(rules...), nil
	}
	return ruletree.NewOne(rules...), nil
}

// ParseFile reads path as a rule source: its first line is the grid
// alphabet, and the remainder is a rule bundle whose clauses may be
// separated by commas, newlines, or both. It returns the parsed node
// alongside the alphabet the caller should build the grid with.
func ParseFile(path string) (ruletree.Node, *grid.Alphabet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	lines := strings.SplitN(string(data), "\n", 2)
	if len(lines) < 2 {
		return nil, nil, ErrMalformedRule
	}
	alphabet, err := grid.NewAlphabet(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, nil, err
	}
	body := strings.ReplaceAll(strings.TrimSpace(lines[1]), "\n", ",")
	node, err := ParseBundle(body)
	if err != nil {
		return nil, nil, err
	}
	return node, alphabet, nil
}

func parseRows(s string) ([][]grid.Symbol, error) {
	if s == "" {
		return nil, ErrMalformedRule
	}
	rowStrs := strings.Split(s, "/")
	rows := make([][]grid.Symbol, len(rowStrs))
	for i, row := range rowStrs {
		if row == "" {
			return nil, ErrMalformedRule
		}
		upper := strings.ToUpper(row)
		cells := make([]grid.Symbol, len(upper))
		for j := 0; j < len(upper); j++ {
			cells[j] = grid.Symbol(upper[j])
		}
		rows[i] = cells
	}
	return rows, nil
}

func parseSymmetry(s string) (symmetry.Symmetry, error) {
	if s == "" {
		return symmetry.Default(), nil
	}
	var axes []symmetry.Axis
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'X':
			axes = append(axes, symmetry.AxisX)
		case 'Y':
			axes = append(axes, symmetry.AxisY)
		case 'Z':
			axes = append(axes, symmetry.AxisZ)
		default:
			return symmetry.Symmetry{}, ErrUnknownSymmetryLetter
		}
	}
	return symmetry.FromAxes(axes...)
}

func stripIgnored(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r', '\n', '\'', '"':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
