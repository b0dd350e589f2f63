package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/relato/pkg/relato"
	"github.com/cognicore/relato/pkg/relato/config"
	"github.com/cognicore/relato/pkg/relato/store"
	"github.com/cognicore/relato/pkg/relato/store/sqlite"
)

func main() {
	var (
		dbPath   = flag.String("db", "", "SQLite database path (empty = in-memory session)")
		seedPath = flag.String("seed", "", "YAML seed corpus (optional)")
		ask      = flag.String("ask", "", "One-shot question (non-interactive mode)")
	)
	flag.Parse()

	ctx := context.Background()

	engine, cleanup, err := buildEngine(ctx, *dbPath, *seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	// One-shot question mode
	if *ask != "" {
		if err := answerQuestion(ctx, engine, *ask); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Interactive mode
	fmt.Println("===========================================")
	fmt.Println("  Relato CLI")
	fmt.Println("  Sentences in, answers out")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Statements are stored as facts; questions are answered.")
	fmt.Println("Type :facts to dump the fact base, Ctrl+D to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == ":facts" || line == ":dump" {
			if err := dumpFacts(ctx, engine); err != nil {
				fmt.Println("Error:", err)
			}
			continue
		}

		if isQuestion(line) {
			if err := answerQuestion(ctx, engine, line); err != nil {
				fmt.Println("Error:", err)
			}
			continue
		}

		if err := translateSentence(ctx, engine, line); err != nil {
			fmt.Println("Error:", err)
		}
	}

	fmt.Println("\nGoodbye!")
}

// isQuestion decides whether a line is answered or stored. A trailing
// question mark or a question opener routes to the answerer.
func isQuestion(line string) bool {
	if strings.HasSuffix(line, "?") {
		return true
	}
	lower := strings.ToLower(line)
	for _, opener := range []string{"who ", "what ", "where ", "is "} {
		if strings.HasPrefix(lower, opener) {
			return true
		}
	}
	return false
}

func translateSentence(ctx context.Context, engine *relato.Engine, sentence string) error {
	fact, ok, err := engine.Translate(ctx, sentence)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	if !ok {
		fmt.Println("Could not parse sentence pattern.")
		return nil
	}

	fmt.Printf("Added fact: %s(%s)\n", fact.Predicate, strings.Join(fact.Args, ", "))
	return nil
}

func answerQuestion(ctx context.Context, engine *relato.Engine, question string) error {
	ans, err := engine.Answer(ctx, question)
	if err != nil {
		return fmt.Errorf("answer: %w", err)
	}
	fmt.Println(ans.Render())
	return nil
}

func dumpFacts(ctx context.Context, engine *relato.Engine) error {
	facts, err := engine.Facts(ctx)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	if len(facts) == 0 {
		fmt.Println("Fact base is empty.")
		return nil
	}

	prev := ""
	for _, fact := range facts {
		if fact.Predicate != prev {
			fmt.Printf("\nPredicate: %s\n", fact.Predicate)
			prev = fact.Predicate
		}
		fmt.Printf("  %s(%s)\n", fact.Predicate, strings.Join(fact.Args, ", "))
	}
	fmt.Println()
	return nil
}

func buildEngine(ctx context.Context, dbPath, seedPath string) (*relato.Engine, func(), error) {
	var st store.Store
	if dbPath != "" {
		var err error
		st, err = sqlite.OpenSQLite(ctx, dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
	}

	engine := relato.New(relato.Options{Store: st})

	if seedPath != "" {
		seed, err := config.LoadSeed(seedPath)
		if err != nil {
			engine.Close()
			return nil, nil, fmt.Errorf("load seed: %w", err)
		}
		for _, sentence := range seed.Sentences {
			if _, _, err := engine.Translate(ctx, sentence); err != nil {
				engine.Close()
				return nil, nil, fmt.Errorf("seed sentence %q: %w", sentence, err)
			}
		}
	}

	cleanup := func() {
		engine.Close()
	}

	return engine, cleanup, nil
}
