package translate

import (
	"context"
	"strings"

	"github.com/cognicore/relato/pkg/relato/store"
)

// Translator converts one natural-language sentence into at most one
// fact and writes it into the store.
type Translator struct {
	store store.Store
	rules []rule
}

// rule pairs a sentence-level predicate check with its handler. Rules
// are evaluated in fixed priority order and the first match wins; the
// order is a contract, since later rules act as fallbacks for earlier
// ones in edge cases.
type rule struct {
	match  func(lower string, tokens []string) bool
	handle func(ctx context.Context, tokens []string) (store.Fact, bool, error)
}

// New creates a translator writing into st.
func New(st store.Store) *Translator {
	t := &Translator{store: st}
	t.rules = []rule{
		{
			// Location: "X lives in Y" → lives_in(x, y)
			match: func(lower string, _ []string) bool {
				return strings.Contains(lower, "lives in")
			},
			handle: t.translateLivesIn,
		},
		{
			// Possessive relationship: "X is the R of Y" → r(x, y)
			match: func(lower string, _ []string) bool {
				return strings.Contains(lower, "is the") && strings.Contains(lower, " of ")
			},
			handle: t.translateRelationship,
		},
		{
			// Copula: "X is P" → p(x), longer forms fall back to a
			// generic relationship over the first three tokens.
			match: func(lower string, _ []string) bool {
				return strings.Contains(lower, " is ")
			},
			handle: t.translateCopula,
		},
		{
			// Default: "X R Y" → r(x, y)
			match: func(_ string, tokens []string) bool {
				return len(tokens) >= 3
			},
			handle: t.translateRelationship,
		},
	}
	return t
}

// Translate converts a sentence into a fact and stores it. The boolean
// is false when no fact was emitted; that is a normal outcome for
// unparseable input, not an error. Errors only surface store failures.
func (t *Translator) Translate(ctx context.Context, sentence string) (store.Fact, bool, error) {
	tokens := Tokenize(sentence)
	if len(tokens) == 0 {
		return store.Fact{}, false, nil
	}

	lower := strings.ToLower(sentence)
	for _, r := range t.rules {
		if r.match(lower, tokens) {
			return r.handle(ctx, tokens)
		}
	}
	return store.Fact{}, false, nil
}

// translateLivesIn scans for the "lives in" keyword pair and emits
// lives_in(subject, location). If the pair cannot be located with a
// subject before it and a location after it, no fact is emitted.
func (t *Translator) translateLivesIn(ctx context.Context, tokens []string) (store.Fact, bool, error) {
	for i := 1; i+2 < len(tokens); i++ {
		if strings.ToLower(tokens[i]) != "lives" || strings.ToLower(tokens[i+1]) != "in" {
			continue
		}
		subject := Clean(tokens[i-1])
		location := Clean(tokens[i+2])
		return t.insert(ctx, "lives_in", subject, location)
	}
	return store.Fact{}, false, nil
}

// translateRelationship handles both relationship shapes. It first
// scans for the aligned "is the R of" window; failing that it falls
// back to a generic subject-relation-object reading of the first three
// tokens. The fallback deliberately reuses the raw leading tokens even
// when the possessive substrings were present but misaligned.
func (t *Translator) translateRelationship(ctx context.Context, tokens []string) (store.Fact, bool, error) {
	// Pattern: "X is the RELATION of Y"
	for i := 1; i+4 < len(tokens); i++ {
		if strings.ToLower(tokens[i]) != "is" {
			continue
		}
		if strings.ToLower(tokens[i+1]) != "the" || strings.ToLower(tokens[i+3]) != "of" {
			continue
		}
		subject := Clean(tokens[i-1])
		relation := Clean(tokens[i+2])
		object := Clean(tokens[i+4])
		return t.insert(ctx, relation, subject, object)
	}

	// Pattern: "X RELATION Y"; tokens beyond the third are ignored.
	if len(tokens) >= 3 {
		subject := Clean(tokens[0])
		relation := Clean(tokens[1])
		object := Clean(tokens[2])
		return t.insert(ctx, relation, subject, object)
	}

	return store.Fact{}, false, nil
}

// translateCopula emits a one-argument property fact for exactly three
// tokens ("Alice is tall" → tall(alice)); anything longer is read as a
// generic relationship.
func (t *Translator) translateCopula(ctx context.Context, tokens []string) (store.Fact, bool, error) {
	if len(tokens) == 3 {
		if strings.ToLower(tokens[1]) != "is" {
			return store.Fact{}, false, nil
		}
		subject := Clean(tokens[0])
		property := Clean(tokens[2])
		return t.insert(ctx, property, subject)
	}
	return t.translateRelationship(ctx, tokens)
}

func (t *Translator) insert(ctx context.Context, predicate string, args ...string) (store.Fact, bool, error) {
	if err := t.store.Insert(ctx, predicate, args); err != nil {
		return store.Fact{}, false, err
	}
	return store.Fact{Predicate: predicate, Args: args}, true, nil
}
