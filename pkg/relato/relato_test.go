package relato

import (
	"context"
	"testing"

	"github.com/cognicore/relato/pkg/relato/answer"
	"github.com/cognicore/relato/pkg/relato/store"
)

// seedEngine replays the canonical family-tree session.
func seedEngine(t *testing.T) *Engine {
	t.Helper()
	engine := New(Options{})
	t.Cleanup(func() { engine.Close() })

	sentences := []string{
		"John is the parent of Mary",
		"Mary is the parent of Susan",
		"John is the parent of Tom",
		"Tom is the parent of Alice",
		"John likes pizza",
		"Mary likes chocolate",
		"Susan likes music",
		"John lives in Paris",
		"Mary lives in London",
		"Susan lives in Tokyo",
		"Alice is tall",
		"Tom is smart",
	}
	for _, sentence := range sentences {
		if _, ok, err := engine.Translate(context.Background(), sentence); err != nil || !ok {
			t.Fatalf("translate %q: ok=%v err=%v", sentence, ok, err)
		}
	}
	return engine
}

func TestEngineEndToEnd(t *testing.T) {
	ctx := context.Background()
	engine := seedEngine(t)

	who, err := engine.Answer(ctx, "Who is the parent of Mary?")
	if err != nil {
		t.Fatal(err)
	}
	if len(who.Values) != 1 || who.Values[0] != "john" {
		t.Errorf("parent of mary = %v, want [john]", who.Values)
	}

	where, err := engine.Answer(ctx, "Where does Mary live?")
	if err != nil {
		t.Fatal(err)
	}
	if len(where.Values) != 1 || where.Values[0] != "london" {
		t.Errorf("mary's location = %v, want [london]", where.Values)
	}

	tall, err := engine.Answer(ctx, "Is Alice tall?")
	if err != nil {
		t.Fatal(err)
	}
	if tall.Kind != answer.KindVerdict || !tall.Verdict {
		t.Errorf("alice should be tall: %+v", tall)
	}

	smart, err := engine.Answer(ctx, "Is Alice smart?")
	if err != nil {
		t.Fatal(err)
	}
	if smart.Kind != answer.KindVerdict || smart.Verdict {
		t.Errorf("alice's smartness is unknown: %+v", smart)
	}
}

func TestEngineDirectQueries(t *testing.T) {
	ctx := context.Background()
	engine := seedEngine(t)

	parents, err := engine.Query(ctx, "parent", store.Pattern{store.Wildcard, "mary"})
	if err != nil {
		t.Fatal(err)
	}
	if len(parents) != 1 || parents[0][0] != "john" {
		t.Errorf("parent(?, mary) = %v, want [[john mary]]", parents)
	}

	children, err := engine.Query(ctx, "parent", store.Pattern{"john", store.Wildcard})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"mary", "tom"}
	if len(children) != len(want) {
		t.Fatalf("parent(john, ?) = %v, want 2 results", children)
	}
	for i := range want {
		if children[i][1] != want[i] {
			t.Errorf("child %d = %q, want %q (insertion order)", i, children[i][1], want[i])
		}
	}

	homes, err := engine.Query(ctx, "lives_in", store.Pattern{store.Wildcard, store.Wildcard})
	if err != nil {
		t.Fatal(err)
	}
	if len(homes) != 3 {
		t.Errorf("lives_in(?, ?) returned %d results, want 3", len(homes))
	}
}

func TestEngineLikesFlow(t *testing.T) {
	ctx := context.Background()
	engine := seedEngine(t)

	likes, err := engine.Query(ctx, "likes", store.Pattern{"john", store.Wildcard})
	if err != nil {
		t.Fatal(err)
	}
	if len(likes) != 1 || likes[0][1] != "pizza" {
		t.Errorf("likes(john, ?) = %v, want [[john pizza]]", likes)
	}
}

func TestEngineFactsDump(t *testing.T) {
	ctx := context.Background()
	engine := seedEngine(t)

	facts, err := engine.Facts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// 4 parent + 3 likes + 3 lives_in + tall + smart
	if len(facts) != 12 {
		t.Errorf("expected 12 facts, got %d", len(facts))
	}
}

func TestEngineUnparseableSentence(t *testing.T) {
	engine := New(Options{})
	defer engine.Close()

	for _, sentence := range []string{"", "Hi", "Hello there"} {
		_, ok, err := engine.Translate(context.Background(), sentence)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("%q should not produce a fact", sentence)
		}
	}

	facts, err := engine.Facts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(facts) != 0 {
		t.Errorf("store should remain empty, got %v", facts)
	}
}

func TestEngineDefaultsToMemstore(t *testing.T) {
	engine := New(Options{})
	defer engine.Close()

	if _, _, err := engine.Translate(context.Background(), "John likes pizza"); err != nil {
		t.Fatal(err)
	}

	results, err := engine.Query(context.Background(), "likes", store.Exact("john", "pizza"))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("default store should hold the fact, got %v", results)
	}
}
