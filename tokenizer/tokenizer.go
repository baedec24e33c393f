// Package tokenizer wraps a SentencePiece model for subword encoding.
//
// The pipeline consumes the tokenizer two ways: the chunker only needs
// the subword length of a single word (PieceCount), while inference
// needs the encoded IDs for a window of words (EncodeIDs).
package tokenizer

import (
	"errors"
	"fmt"

	gosp "github.com/vikesh-raj/go-sentencepiece-encoder/sentencepiece"
)

// ErrEmptyPath is returned when New is called with an empty path.
var ErrEmptyPath = errors.New("tokenizer model path must not be empty")

// Tokenizer encodes text with a pure-Go SentencePiece model.
type Tokenizer struct {
	proc gosp.Sentencepiece
}

// New loads a tokenizer from a SentencePiece .model file.
func New(modelPath string) (*Tokenizer, error) {
	if modelPath == "" {
		return nil, ErrEmptyPath
	}

	proc, err := gosp.NewSentencepieceFromFile(modelPath, false)
	if err != nil {
		return nil, fmt.Errorf("load sentencepiece model %q: %w", modelPath, err)
	}

	return &Tokenizer{proc: proc}, nil
}

// EncodeIDs tokenizes text and returns its SentencePiece token IDs.
func (t *Tokenizer) EncodeIDs(text string) []int64 {
	if text == "" {
		return nil
	}

	ids := t.proc.TokenizeToIDs(text)

	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

// PieceCount returns the number of subword pieces a single word
// tokenizes into. This is the opaque length function the sequence
// chunker budgets against.
func (t *Tokenizer) PieceCount(word string) int {
	if word == "" {
		return 0
	}
	return len(t.proc.TokenizeToIDs(word))
}

// Close releases tokenizer resources.
func (t *Tokenizer) Close() error {
	return nil
}
