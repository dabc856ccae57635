// Package analyzer computes word and character statistics for free text.
package analyzer

import (
	"strings"
	"unicode/utf8"
)

// Request is the payload for a text analysis.
type Request struct {
	Text *string `json:"text" validate:"required"`
}

// Result holds the statistics for a piece of text.
type Result struct {
	WordCount     int            `json:"word_count"`
	CharCount     int            `json:"char_count"`
	WordFrequency map[string]int `json:"word_frequency"`
}

// Analyze splits text on whitespace and counts words, characters and word occurrences.
// Words are compared case-sensitively and keep any surrounding punctuation.
func Analyze(text string) Result {
	words := strings.Fields(text)

	frequency := make(map[string]int, len(words))
	for _, word := range words {
		frequency[word]++
	}

	return Result{
		WordCount:     len(words),
		CharCount:     utf8.RuneCountInString(text),
		WordFrequency: frequency,
	}
}
