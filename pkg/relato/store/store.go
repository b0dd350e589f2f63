package store

import (
	"context"
	"strings"
)

// Wildcard is the pattern token that matches any single argument value.
const Wildcard = "?"

// Store is the main interface for persisting and querying facts
type Store interface {
	Close() error

	// Insert appends a fact under the given predicate. The predicate is
	// case-folded to lowercase; arguments are stored as supplied.
	// Duplicates are allowed and arity is not validated.
	Insert(ctx context.Context, predicate string, args []string) error

	// Query returns the argument lists stored under predicate that match
	// the pattern, in insertion order. An argument list matches iff its
	// length equals the pattern's length and every position is either
	// Wildcard or case-insensitively equal. An absent predicate or an
	// empty result is a normal outcome, not an error.
	Query(ctx context.Context, predicate string, pattern Pattern) ([][]string, error)

	// Facts returns every stored fact, grouped by predicate, each
	// predicate's facts in insertion order.
	Facts(ctx context.Context) ([]Fact, error)
}

// Fact is an immutable predicate tuple, e.g. parent(john, mary).
type Fact struct {
	Predicate string
	Args      []string
}

// Pattern is an ordered sequence of literal tokens and Wildcard markers.
type Pattern []string

// Exact builds a wildcard-free pattern from literal arguments.
func Exact(args ...string) Pattern {
	return Pattern(args)
}

// Matches reports whether the stored argument list satisfies the pattern.
// Shared by all Store implementations so they agree on semantics.
func (p Pattern) Matches(args []string) bool {
	if len(args) != len(p) {
		return false
	}
	for i, tok := range p {
		if tok == Wildcard {
			continue
		}
		if !strings.EqualFold(tok, args[i]) {
			return false
		}
	}
	return true
}
