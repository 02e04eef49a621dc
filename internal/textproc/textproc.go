// Package textproc cleans raw Russian text and splits it into sentences
// and Cyrillic word tokens. All functions are pure and deterministic.
package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRe = regexp.MustCompile(`[ \t]+`)
	newlineRe    = regexp.MustCompile(`\n+`)
	punctRunRe   = regexp.MustCompile(`([.!?,;:-])[.!?,;:-]+`)
	wordRe       = regexp.MustCompile(`[а-яё]+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
)

// Clean normalizes raw text: collapses whitespace runs to single spaces,
// collapses repeated newlines, lowercases, and collapses punctuation runs
// ("!!!" becomes "!").
func Clean(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = newlineRe.ReplaceAllString(text, "\n")
	text = punctRunRe.ReplaceAllString(text, "$1")
	return strings.ToLower(strings.TrimSpace(text))
}

// TokenizeWords extracts maximal runs of Cyrillic letters as lowercase
// tokens, preserving order. Single-letter tokens are dropped.
func TokenizeWords(text string) []string {
	matches := wordRe.FindAllString(strings.ToLower(text), -1)
	words := make([]string, 0, len(matches))
	for _, w := range matches {
		if utf8.RuneCountInString(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// SplitSentences splits text on runs of terminal punctuation (.!?),
// trims each segment and drops empty ones. Text without terminal
// punctuation yields one sentence if non-empty.
func SplitSentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// WordLength returns the length of a token in runes, not bytes.
// Cyrillic letters are two bytes each in UTF-8, so len() would
// double-count every word.
func WordLength(word string) int {
	return utf8.RuneCountInString(word)
}
