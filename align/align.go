// Package align derives per-token punctuation labels by pairing an
// unpunctuated input text with its punctuated expected text, and writes
// the result as CONLL.
package align

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	punct "github.com/azielinski/go-punct"
)

// DetermineLabel compares an input token with its expected counterpart
// (already case-folded) and reports the punctuation label. The second
// return is false when the tokens match none of the rules; callers fall
// back to LabelNone and keep going.
func DetermineLabel(in, expected string) (punct.Label, bool) {
	if in == expected {
		return punct.LabelNone, true
	}
	if len(expected) >= 1 && in == expected[:len(expected)-1] {
		if label, ok := punct.ParseLabel(expected[len(expected)-1:]); ok && label.IsPunctuation() {
			return label, true
		}
	}
	if len(expected) >= 3 && in == expected[:len(expected)-3] && expected[len(expected)-3:] == string(punct.LabelEllipsis) {
		return punct.LabelEllipsis, true
	}
	return punct.LabelNone, false
}

// Aligner converts an in.tsv/expected.tsv pair into CONLL token-label
// lines, optionally attaching pause features from forced-alignment
// transcripts.
type Aligner struct {
	pauses PauseSource
	logger *slog.Logger
}

// NewAligner builds an Aligner. A nil source means no pause features.
func NewAligner(pauses PauseSource, logger *slog.Logger) *Aligner {
	if pauses == nil {
		pauses = NoPauses{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aligner{pauses: pauses, logger: logger}
}

// RunFiles aligns the named TSV pair into savePath.
func (a *Aligner) RunFiles(inPath, expectedPath, savePath string) error {
	inFile, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open in file: %w", err)
	}
	defer inFile.Close()

	expFile, err := os.Open(expectedPath)
	if err != nil {
		return fmt.Errorf("open expected file: %w", err)
	}
	defer expFile.Close()

	out, err := os.Create(savePath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := a.Run(inFile, expFile, w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return out.Close()
}

// Run zips the input and expected streams line by line and emits one
// CONLL block per document line: word<TAB>label[<TAB>pause], blank line
// terminated. Lines whose token counts disagree are logged and skipped.
func (a *Aligner) Run(in, expected io.Reader, w io.Writer) error {
	inScan := bufio.NewScanner(in)
	inScan.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	expScan := bufio.NewScanner(expected)
	expScan.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for inScan.Scan() {
		if !expScan.Scan() {
			break
		}

		inLine := strings.TrimSpace(inScan.Text())
		expLine := strings.TrimSpace(expScan.Text())

		docID, inText, ok := strings.Cut(inLine, "\t")
		if !ok {
			return fmt.Errorf("in line %q has no tab separator", inLine)
		}

		inTokens := strings.Split(inText, " ")
		expTokens := strings.Split(expLine, " ")
		if len(inTokens) != len(expTokens) {
			a.logger.Warn("source text and expected text differ",
				"doc", docID, "in_tokens", len(inTokens), "expected_tokens", len(expTokens))
			continue
		}

		pauses, err := a.pauses.pausesFor(docID, expTokens)
		if err != nil {
			return err
		}

		for i, inTok := range inTokens {
			expTok := strings.ToLower(expTokens[i])
			label, ok := DetermineLabel(inTok, expTok)
			if !ok {
				a.logger.Error("label mismatch, words are not equal",
					"doc", docID, "in", inTok, "expected", expTok)
			}

			if pauses != nil {
				_, err = fmt.Fprintf(w, "%s\t%s\t%d\n", inTok, label, pauses[i])
			} else {
				_, err = fmt.Fprintf(w, "%s\t%s\n", inTok, label)
			}
			if err != nil {
				return fmt.Errorf("write conll: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("write conll: %w", err)
		}
	}

	if err := inScan.Err(); err != nil {
		return fmt.Errorf("scan in file: %w", err)
	}
	if err := expScan.Err(); err != nil {
		return fmt.Errorf("scan expected file: %w", err)
	}
	return nil
}
