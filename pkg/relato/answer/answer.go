package answer

import (
	"context"
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/relato/pkg/relato/store"
	"github.com/cognicore/relato/pkg/relato/translate"
)

// Kind classifies the outcome of a question.
type Kind int

const (
	// KindList answers report zero or more matching values.
	KindList Kind = iota
	// KindVerdict answers report a yes/no outcome.
	KindVerdict
	// KindNotUnderstood means the question matched no known shape.
	KindNotUnderstood
)

// Query records the fact-base lookup an answer executed.
type Query struct {
	Predicate string
	Pattern   store.Pattern
}

// Answer is a structured, explainable response to one question.
type Answer struct {
	ID      string
	Kind    Kind
	Label   string   // "Who", "Answer", "Location" for list answers
	Values  []string // matching values, insertion order
	Verdict bool     // set for KindVerdict
	Query   Query    // the executed lookup; zero for KindNotUnderstood
}

// Answerer classifies questions into fact-base lookups and renders
// answers.
type Answerer struct {
	store   store.Store
	entropy *ulid.MonotonicEntropy
	rules   []qrule
}

// qrule pairs a question-level check with its handler. Evaluated in
// fixed priority order; the first match wins.
type qrule struct {
	match  func(lower string) bool
	handle func(ctx context.Context, lower string) (Answer, error)
}

// New creates an answerer reading from st.
func New(st store.Store) *Answerer {
	a := &Answerer{
		store:   st,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	a.rules = []qrule{
		{
			// "Who is the RELATION of X?"
			match: func(lower string) bool {
				return strings.Contains(lower, "who is the")
			},
			handle: a.answerWhoIsThe,
		},
		{
			// "What does X RELATION?"
			match: func(lower string) bool {
				return strings.Contains(lower, "what does")
			},
			handle: a.answerWhatDoes,
		},
		{
			// "Where does X live?"
			match: func(lower string) bool {
				return strings.Contains(lower, "where does") && strings.Contains(lower, "live")
			},
			handle: a.answerWhereDoes,
		},
		{
			// "Is X PROPERTY?" / "Is X RELATION Y?"
			match: func(lower string) bool {
				return strings.HasPrefix(lower, "is ")
			},
			handle: a.answerIs,
		},
	}
	return a
}

// Answer classifies a question and executes the corresponding lookup.
// An unrecognized question yields KindNotUnderstood, not an error;
// errors only surface store failures.
func (a *Answerer) Answer(ctx context.Context, question string) (Answer, error) {
	lower := strings.ToLower(question)
	for _, r := range a.rules {
		if r.match(lower) {
			return r.handle(ctx, lower)
		}
	}
	return a.notUnderstood(), nil
}

// answerWhoIsThe extracts the relation between "is the " and the next
// " of", queries relation(?, object), and reports matching subjects.
func (a *Answerer) answerWhoIsThe(ctx context.Context, lower string) (Answer, error) {
	ofPos := strings.Index(lower, "of ")
	if ofPos == -1 {
		return a.notUnderstood(), nil
	}

	relation := extractRelation(lower)
	if relation == "" {
		return a.notUnderstood(), nil
	}
	object := firstToken(lower[ofPos+len("of "):])
	if object == "" {
		return a.notUnderstood(), nil
	}

	return a.list(ctx, "Who", relation, store.Pattern{store.Wildcard, object}, 0)
}

// answerWhatDoes takes the two tokens after "what does " as subject and
// relation, queries relation(subject, ?), and reports matching objects.
func (a *Answerer) answerWhatDoes(ctx context.Context, lower string) (Answer, error) {
	pos := strings.Index(lower, "what does ")
	if pos == -1 {
		return a.notUnderstood(), nil
	}
	rest := lower[pos+len("what does "):]

	tokens := translate.Tokenize(rest)
	if len(tokens) < 2 {
		return a.notUnderstood(), nil
	}
	subject := translate.Clean(tokens[0])
	relation := translate.Clean(tokens[1])

	return a.list(ctx, "Answer", relation, store.Pattern{subject, store.Wildcard}, 1)
}

// answerWhereDoes takes the token after "where does " as the subject,
// queries lives_in(subject, ?), and reports matching locations.
func (a *Answerer) answerWhereDoes(ctx context.Context, lower string) (Answer, error) {
	pos := strings.Index(lower, "where does ")
	if pos == -1 {
		return a.notUnderstood(), nil
	}
	subject := firstToken(lower[pos+len("where does "):])
	if subject == "" {
		return a.notUnderstood(), nil
	}

	return a.list(ctx, "Location", "lives_in", store.Pattern{subject, store.Wildcard}, 1)
}

// answerIs handles the verdict shapes: three tokens query a
// one-argument property fact, four or more query a binary relation.
func (a *Answerer) answerIs(ctx context.Context, lower string) (Answer, error) {
	tokens := translate.Tokenize(lower)
	for i, tok := range tokens {
		tokens[i] = translate.Clean(tok)
	}

	var q Query
	switch {
	case len(tokens) == 3:
		q = Query{Predicate: tokens[2], Pattern: store.Pattern{tokens[1]}}
	case len(tokens) >= 4:
		q = Query{Predicate: tokens[2], Pattern: store.Pattern{tokens[1], tokens[3]}}
	default:
		return a.notUnderstood(), nil
	}

	results, err := a.store.Query(ctx, q.Predicate, q.Pattern)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		ID:      a.nextID(),
		Kind:    KindVerdict,
		Verdict: len(results) > 0,
		Query:   q,
	}, nil
}

// list runs a wildcard query and collects the value at the given
// position of each match, preserving insertion order.
func (a *Answerer) list(ctx context.Context, label, predicate string, pattern store.Pattern, position int) (Answer, error) {
	results, err := a.store.Query(ctx, predicate, pattern)
	if err != nil {
		return Answer{}, err
	}

	values := make([]string, 0, len(results))
	for _, args := range results {
		if position < len(args) {
			values = append(values, args[position])
		}
	}

	return Answer{
		ID:     a.nextID(),
		Kind:   KindList,
		Label:  label,
		Values: values,
		Query:  Query{Predicate: predicate, Pattern: pattern},
	}, nil
}

func (a *Answerer) notUnderstood() Answer {
	return Answer{ID: a.nextID(), Kind: KindNotUnderstood}
}

func (a *Answerer) nextID() string {
	return ulid.MustNew(ulid.Now(), a.entropy).String()
}

// extractRelation pulls the relation name from between "is the " and
// the following " of". The relation may span multiple words.
func extractRelation(lower string) string {
	start := strings.Index(lower, "is the ")
	if start == -1 {
		return ""
	}
	start += len("is the ")
	end := strings.Index(lower[start:], " of")
	if end == -1 {
		return ""
	}
	return translate.Clean(lower[start : start+end])
}

// firstToken returns the cleaned first whitespace-delimited token.
func firstToken(s string) string {
	tokens := translate.Tokenize(s)
	if len(tokens) == 0 {
		return ""
	}
	return translate.Clean(tokens[0])
}
