package relato

import (
	"context"

	"github.com/cognicore/relato/pkg/relato/answer"
	"github.com/cognicore/relato/pkg/relato/store"
	"github.com/cognicore/relato/pkg/relato/store/memstore"
	"github.com/cognicore/relato/pkg/relato/translate"
)

// Engine is the main fact-base facade: it owns the store and hands it
// to the translator (writer) and answerer (reader).
type Engine struct {
	store      store.Store
	translator *translate.Translator
	answerer   *answer.Answerer
}

// Options configures an Engine
type Options struct {
	// Store holds the facts. Defaults to an in-memory store; pass the
	// sqlite store for a durable session.
	Store store.Store
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	st := opts.Store
	if st == nil {
		st = memstore.New()
	}
	return &Engine{
		store:      st,
		translator: translate.New(st),
		answerer:   answer.New(st),
	}
}

// Close cleanly shuts down the Engine
func (e *Engine) Close() error {
	return e.store.Close()
}

// Translate converts a sentence into a fact and stores it. The boolean
// is false when the sentence expressed no recognizable fact.
func (e *Engine) Translate(ctx context.Context, sentence string) (store.Fact, bool, error) {
	return e.translator.Translate(ctx, sentence)
}

// Answer converts a question into fact-base lookups and returns a
// structured answer.
func (e *Engine) Answer(ctx context.Context, question string) (answer.Answer, error) {
	return e.answerer.Answer(ctx, question)
}

// Query is the direct low-level pattern query, bypassing natural
// language translation.
func (e *Engine) Query(ctx context.Context, predicate string, pattern store.Pattern) ([][]string, error) {
	return e.store.Query(ctx, predicate, pattern)
}

// Facts dumps every stored fact, grouped by predicate in insertion
// order.
func (e *Engine) Facts(ctx context.Context) ([]store.Fact, error) {
	return e.store.Facts(ctx)
}
