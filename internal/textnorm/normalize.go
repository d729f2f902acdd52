// Package textnorm folds free text into a canonical comparable form.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes accented characters and strips the combining marks,
// so "híbrido" and "hibrido" normalize to the same string.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns text accent-stripped, lower-cased, with whitespace runs
// collapsed to a single space and ends trimmed. It is a total function: any
// input (including empty) yields a valid result, and it is idempotent.
func Normalize(text string) string {
	folded, _, err := transform.String(foldAccents, text)
	if err != nil {
		// Malformed UTF-8 only; fall back to the raw text.
		folded = text
	}
	folded = strings.ToLower(folded)
	return strings.Join(strings.Fields(folded), " ")
}

// StripPunctuation removes everything except letters, digits and spaces.
// Used when comparing company names against scraped link text, where
// punctuation differs between the job API and the review site.
func StripPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
