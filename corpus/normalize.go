package corpus

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ellipsisMark temporarily replaces "..." so multi-character ellipses
// survive the single-character punctuation handling.
const ellipsisMark = "…"

var (
	// A token is dropped from the input/expected streams when its word is
	// purely non-alphanumeric, except for quote and percent glyphs which
	// carry content.
	nonAlnumWord = regexp.MustCompile(`^[^\p{L}\p{N}_"%]+$`)

	inputPunct = regexp.MustCompile(`[,!?.:;-]`)

	// Punctuation glued to a following non-space character; a space is
	// inserted after the mark so it stays attached to the word it ends.
	gluedPunct = regexp.MustCompile(`([…,!?.:;-])([^ ])`)

	spaceRuns = regexp.MustCompile(` +`)
)

// BuildTexts renders a document's tokens into three parallel strings:
// intact (verbatim words with punctuation and separators), input (words
// only), and expected (words with their punctuation attached). The
// input and expected streams skip purely non-alphanumeric words but
// keep their spacing, so both split into the same number of tokens.
func BuildTexts(doc *Document) (intact, input, expected string) {
	var bIntact, bIn, bExp strings.Builder

	for _, tok := range doc.Tokens {
		bIntact.WriteString(tok.Word)
		bIntact.WriteString(tok.Punctuation)
		bIntact.WriteByte(' ')

		if !nonAlnumWord.MatchString(tok.Word) {
			bIn.WriteString(tok.Word)
			bExp.WriteString(tok.Word)
			bExp.WriteString(tok.Punctuation)
		}

		if tok.SpaceAfter || tok.Punctuation != "" {
			bIn.WriteByte(' ')
			bExp.WriteByte(' ')
		}
	}

	return bIntact.String(), bIn.String(), bExp.String()
}

// NormalizeInput lower-cases the input stream and strips punctuation:
// every mark in the label alphabet becomes a space, runs of spaces
// collapse, and the result is trimmed.
func NormalizeInput(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)
	text = inputPunct.ReplaceAllString(text, " ")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeExpected lower-cases the expected stream and makes every
// punctuation mark a separable trailing unit of the word it follows:
// "..." is protected while single marks glued to a following word get a
// space inserted after them, then spaces collapse and the ellipsis is
// restored. Trailing punctuation stays attached to its word; that is
// the signal the label aligner reads.
func NormalizeExpected(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "...", ellipsisMark)
	text = gluedPunct.ReplaceAllString(text, "$1 $2")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, ellipsisMark, "...")
	return strings.TrimSpace(text)
}

// ValidateParallel checks the alignment precondition: the normalized
// input and expected texts must split into equally many tokens.
func ValidateParallel(input, expected string) error {
	nIn := len(strings.Split(input, " "))
	nExp := len(strings.Split(expected, " "))
	if nIn != nExp {
		return fmt.Errorf("token count mismatch: input %d, expected %d", nIn, nExp)
	}
	return nil
}
