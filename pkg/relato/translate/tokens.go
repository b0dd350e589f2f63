package translate

import (
	"strings"
	"unicode"
)

// Tokenize splits a sentence on single spaces, trims whitespace from
// each token, and discards empties. Tokens keep their original case and
// punctuation; Clean normalizes them before use in a fact.
func Tokenize(sentence string) []string {
	var tokens []string
	for _, tok := range strings.Split(sentence, " ") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Clean strips trailing punctuation runes and lowercases a token,
// producing a fact argument or predicate name.
func Clean(token string) string {
	runes := []rune(token)
	for len(runes) > 0 && unicode.IsPunct(runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}
	return strings.ToLower(string(runes))
}
