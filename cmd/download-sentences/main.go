package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// Seed matches the config.Seed YAML layout.
type Seed struct {
	Sentences []string `yaml:"sentences"`
	Questions []string `yaml:"questions"`
}

const (
	minWords = 3
	maxWords = 8
)

func main() {
	var (
		url     = flag.String("url", "", "Page to harvest sentences from (required)")
		outPath = flag.String("out", "testdata/seed.yaml", "Output seed file")
		limit   = flag.Int("limit", 200, "Maximum sentences to keep")
	)
	flag.Parse()

	if *url == "" {
		log.Fatal("--url required")
	}

	log.Printf("Downloading %s...\n", *url)

	body, err := fetch(*url)
	if err != nil {
		log.Fatal("Failed to fetch page:", err)
	}

	text := stripHTML(body)
	sentences := harvestSentences(text, *limit)
	if len(sentences) == 0 {
		log.Fatal("No usable sentences found")
	}

	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create output directory:", err)
		}
	}

	data, err := yaml.Marshal(Seed{Sentences: sentences})
	if err != nil {
		log.Fatal("Failed to encode seed:", err)
	}
	if err := os.WriteFile(*outPath, data, 0644); err != nil {
		log.Fatal("Failed to write seed file:", err)
	}

	log.Printf("Wrote %d sentences to %s\n", len(sentences), *outPath)
}

func fetch(url string) (string, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to raw text if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

// harvestSentences splits extracted page text on sentence terminators
// and keeps short declarative sentences the translator has a chance of
// turning into facts.
func harvestSentences(text string, limit int) []string {
	var sentences []string
	seen := make(map[string]struct{})

	for _, raw := range strings.FieldsFunc(text, isTerminator) {
		sentence := strings.Join(strings.Fields(raw), " ")
		if !usable(sentence) {
			continue
		}
		if _, dup := seen[sentence]; dup {
			continue
		}
		seen[sentence] = struct{}{}

		sentences = append(sentences, sentence)
		if len(sentences) >= limit {
			break
		}
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '\n'
}

// usable keeps short sentences of plain words: no digits, no stray
// symbols, starting with a letter.
func usable(sentence string) bool {
	words := strings.Fields(sentence)
	if len(words) < minWords || len(words) > maxWords {
		return false
	}

	for _, r := range sentence {
		if unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '\'' && r != '-' && r != ',' {
			return false
		}
	}

	first, _ := firstRune(sentence)
	return unicode.IsLetter(first)
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
