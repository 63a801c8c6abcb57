// Package diff computes character-level edit scripts between two text
// snapshots.
//
// Alignment follows the longest-matching-block family of algorithms
// (Ratcliff/Obershelp, as in difflib's SequenceMatcher): the longest common
// contiguous run is matched first, then the unmatched left and right
// remainders are aligned recursively. Among equally long runs the one starting
// earliest in the old text wins.
//
// The common prefix and suffix of the two snapshots are matched in place
// first and the matcher only aligns what remains, so an edit costs time
// proportional to the changed region rather than to the whole document.
//
// All offsets are rune indices; a byte that is not valid UTF-8 counts as one
// position of its own. Every function is pure and safe to call from multiple
// goroutines.
package diff

import (
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

// Tag is the kind of an opcode.
type Tag uint8

const (
	Equal Tag = iota
	Insert
	Delete
)

func (t Tag) String() string {
	switch t {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Opcode describes how old[OldStart:OldEnd] maps onto new[NewStart:NewEnd].
// Insert opcodes have an empty old range and Delete opcodes an empty new range.
type Opcode struct {
	Tag      Tag
	OldStart int
	OldEnd   int
	NewStart int
	NewEnd   int
}

// Options tunes the matcher.
type Options struct {
	// AutoJunk enables difflib's popularity heuristic, which ignores tokens
	// occurring in more than 1% of a text of 200 or more tokens. At character
	// granularity that discards most of the alphabet, so it is off by default.
	AutoJunk bool
}

// Compute returns the opcodes that turn previous into current.
func Compute(previous, current string) []Opcode {
	return ComputeWith(previous, current, Options{})
}

// ComputeWith is Compute with explicit matcher options.
func ComputeWith(previous, current string, opts Options) []Opcode {
	oldTokens, newTokens := split(previous), split(current)
	if previous == current {
		n := len(oldTokens)
		if n == 0 {
			return nil
		}
		return []Opcode{{Tag: Equal, OldEnd: n, NewEnd: n}}
	}

	prefix := commonPrefix(oldTokens, newTokens)
	suffix := commonSuffix(oldTokens[prefix:], newTokens[prefix:])
	oldMid := oldTokens[prefix : len(oldTokens)-suffix]
	newMid := newTokens[prefix : len(newTokens)-suffix]

	ops := make([]Opcode, 0, 8)
	if prefix > 0 {
		ops = append(ops, Opcode{Tag: Equal, OldEnd: prefix, NewEnd: prefix})
	}

	matcher := difflib.NewMatcherWithJunk(oldMid, newMid, opts.AutoJunk, nil)
	for _, op := range matcher.GetOpCodes() {
		i1, i2 := op.I1+prefix, op.I2+prefix
		j1, j2 := op.J1+prefix, op.J2+prefix
		switch op.Tag {
		case 'e':
			ops = append(ops, Opcode{Tag: Equal, OldStart: i1, OldEnd: i2, NewStart: j1, NewEnd: j2})
		case 'i':
			ops = append(ops, Opcode{Tag: Insert, OldStart: i1, OldEnd: i2, NewStart: j1, NewEnd: j2})
		case 'd':
			ops = append(ops, Opcode{Tag: Delete, OldStart: i1, OldEnd: i2, NewStart: j1, NewEnd: j2})
		case 'r':
			// A replace block is reported as its delete half followed by its
			// insert half.
			ops = append(ops,
				Opcode{Tag: Delete, OldStart: i1, OldEnd: i2, NewStart: j1, NewEnd: j1},
				Opcode{Tag: Insert, OldStart: i2, OldEnd: i2, NewStart: j1, NewEnd: j2},
			)
		}
	}

	if suffix > 0 {
		oldEnd, newEnd := len(oldTokens), len(newTokens)
		ops = append(ops, Opcode{
			Tag:      Equal,
			OldStart: oldEnd - suffix,
			OldEnd:   oldEnd,
			NewStart: newEnd - suffix,
			NewEnd:   newEnd,
		})
	}

	return ops
}

// Apply replays ops over previous, taking inserted text from current.
func Apply(previous, current string, ops []Opcode) string {
	oldTokens := split(previous)
	newTokens := split(current)

	var out strings.Builder
	out.Grow(len(current))
	for _, op := range ops {
		switch op.Tag {
		case Equal:
			writeTokens(&out, oldTokens[op.OldStart:op.OldEnd])
		case Insert:
			writeTokens(&out, newTokens[op.NewStart:op.NewEnd])
		}
	}

	return out.String()
}

// split breaks text into one token per rune. Invalid UTF-8 bytes become
// single-byte tokens so that joining the tokens restores text exactly.
func split(text string) []string {
	out := make([]string, 0, len(text))
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		out = append(out, text[i:i+size])
		i += size
	}
	return out
}

func join(tokens []string) string {
	var out strings.Builder
	writeTokens(&out, tokens)
	return out.String()
}

func writeTokens(out *strings.Builder, tokens []string) {
	for _, token := range tokens {
		out.WriteString(token)
	}
}

func commonPrefix(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func commonSuffix(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			return i
		}
	}
	return n
}
