package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cognicore/relato/pkg/relato/store"
)

// Store is an in-memory implementation of store.Store. It is the
// authoritative reference for matching semantics; the sqlite store must
// agree with it observably.
type Store struct {
	mu    sync.RWMutex
	facts map[string][][]string // predicate → argument lists, insertion order
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		facts: make(map[string][][]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Insert appends an argument list under the lowercased predicate.
func (s *Store) Insert(ctx context.Context, predicate string, args []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pred := strings.ToLower(predicate)
	s.facts[pred] = append(s.facts[pred], copyArgs(args))
	return nil
}

// Query returns matching argument lists in insertion order.
func (s *Store) Query(ctx context.Context, predicate string, pattern store.Pattern) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pred := strings.ToLower(predicate)
	stored, ok := s.facts[pred]
	if !ok {
		return nil, nil
	}

	var results [][]string
	for _, args := range stored {
		if pattern.Matches(args) {
			results = append(results, copyArgs(args))
		}
	}
	return results, nil
}

// Facts returns every stored fact, predicates sorted, each predicate's
// facts in insertion order.
func (s *Store) Facts(ctx context.Context) ([]store.Fact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	preds := make([]string, 0, len(s.facts))
	for pred := range s.facts {
		preds = append(preds, pred)
	}
	sort.Strings(preds)

	var out []store.Fact
	for _, pred := range preds {
		for _, args := range s.facts[pred] {
			out = append(out, store.Fact{Predicate: pred, Args: copyArgs(args)})
		}
	}
	return out, nil
}

func copyArgs(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
