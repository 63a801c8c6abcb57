// Package placeholder decides whether a span of text is template markup that
// must never be tracked.
package placeholder

import (
	"fmt"
	"strings"
)

// Predicate reports whether span is a placeholder.
type Predicate interface {
	IsPlaceholder(span string) bool
}

type PredicateFunc func(span string) bool

func (f PredicateFunc) IsPlaceholder(span string) bool {
	return f(span)
}

const (
	ModeBracket  = "bracket"
	ModeBalanced = "balanced"
	ModeExpr     = "expr"
	// ModeAny matches bracket placeholders and anything the expression
	// matches.
	ModeAny = "any"
	// ModeNone disables filtering.
	ModeNone = "none"
)

// Bracket matches any span that starts with '<' and ends with '>'. Nested or
// partial brackets are not inspected: the whole span is accepted or rejected.
var Bracket Predicate = PredicateFunc(func(span string) bool {
	return strings.HasPrefix(span, "<") && strings.HasSuffix(span, ">")
})

// Balanced matches a span that is exactly one balanced <...> group. Nested
// groups are allowed; "<a><b>" is two groups and does not match.
var Balanced Predicate = PredicateFunc(func(span string) bool {
	if !Bracket.IsPlaceholder(span) {
		return false
	}

	depth := 0
	for i, r := range span {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return false
			}
			if depth == 0 && i != len(span)-1 {
				return false
			}
		}
	}

	return depth == 0
})

// Never matches nothing.
var Never Predicate = PredicateFunc(func(string) bool { return false })

// Any matches when at least one of preds matches.
func Any(preds ...Predicate) Predicate {
	return PredicateFunc(func(span string) bool {
		for _, pred := range preds {
			if pred != nil && pred.IsPlaceholder(span) {
				return true
			}
		}
		return false
	})
}

// New builds a predicate from its configured mode. source is only used by
// ModeExpr and ModeAny.
func New(mode, source string) (Predicate, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeBracket:
		return Bracket, nil
	case ModeBalanced:
		return Balanced, nil
	case ModeExpr:
		pred, err := Expr(source)
		if err != nil {
			return nil, err
		}
		return pred, nil
	case ModeAny:
		pred, err := Expr(source)
		if err != nil {
			return nil, err
		}
		return Any(Bracket, pred), nil
	case ModeNone:
		return Never, nil
	default:
		return nil, fmt.Errorf("unsupported placeholder mode %q", mode)
	}
}
