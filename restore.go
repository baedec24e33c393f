package punct

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/azielinski/go-punct/inference"
	"github.com/azielinski/go-punct/tokenizer"
)

// Restorer applies a trained punctuation-restoration token-classification
// model (ONNX export) to plain, unpunctuated text. It is safe for
// concurrent use.
type Restorer struct {
	tokenizer *tokenizer.Tokenizer
	pool      *inference.Pool
	maxSeqLen int
	labels    []Label
	logger    *slog.Logger
}

// New creates a Restorer with the specified model files. The model's
// class order must match Labels().
func New(modelPath, tokenizerPath string, opts ...Option) (*Restorer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Check model file exists
	if _, err := os.Stat(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
		}
		return nil, fmt.Errorf("checking model file: %w", err)
	}

	tok, err := tokenizer.New(tokenizerPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTokenizerFailed, tokenizerPath)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenizerFailed, err)
	}

	pool, err := inference.NewPool(modelPath, cfg.poolSize)
	if err != nil {
		_ = tok.Close()
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return &Restorer{
		tokenizer: tok,
		pool:      pool,
		maxSeqLen: cfg.maxSeqLen,
		labels:    Labels(),
		logger:    cfg.logger,
	}, nil
}

// Restore re-punctuates whitespace-delimited text. Each word keeps its
// position; predicted punctuation is appended to the word it follows.
func (r *Restorer) Restore(ctx context.Context, text string) (string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", nil
	}

	predicted, err := r.Predict(ctx, words)
	if err != nil {
		return "", err
	}

	return joinLabeled(words, predicted), nil
}

// Predict returns one label per input word. Words are encoded to
// subwords individually; a word's label is read off the logits at its
// first subword position, the convention the training data is built
// around.
func (r *Restorer) Predict(ctx context.Context, words []string) ([]Label, error) {
	if len(words) == 0 {
		return nil, nil
	}

	pieces := make([][]int64, len(words))
	total := 0
	for i, w := range words {
		pieces[i] = r.tokenizer.EncodeIDs(w)
		total += len(pieces[i])
	}
	r.logger.Debug("predicting labels", "words", len(words), "subwords", total)

	session, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.pool.Release(session)

	out := make([]Label, len(words))
	for _, win := range packWindows(pieces, r.maxSeqLen) {
		if err := r.predictWindow(ctx, session, pieces, win, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// window is a half-open word range [start, end).
type window struct {
	start, end int
}

// packWindows groups consecutive words into windows whose cumulative
// subword length stays within budget. A single word longer than the
// budget still gets its own window.
func packWindows(pieces [][]int64, budget int) []window {
	var wins []window
	start := 0
	total := 0

	for i, p := range pieces {
		n := len(p)
		if i > start && total+n > budget {
			wins = append(wins, window{start: start, end: i})
			start = i
			total = 0
		}
		total += n
	}
	wins = append(wins, window{start: start, end: len(pieces)})

	return wins
}

func (r *Restorer) predictWindow(ctx context.Context, session *inference.Session, pieces [][]int64, win window, out []Label) error {
	var inputIDs []int64
	firstPiece := make([]int, 0, win.end-win.start)

	for i := win.start; i < win.end; i++ {
		firstPiece = append(firstPiece, len(inputIDs))
		inputIDs = append(inputIDs, pieces[i]...)
	}

	if len(inputIDs) == 0 {
		// Window of words the tokenizer maps to nothing; no punctuation.
		for i := win.start; i < win.end; i++ {
			out[i] = LabelNone
		}
		return nil
	}

	attentionMask := make([]int64, len(inputIDs))
	for i := range attentionMask {
		attentionMask[i] = 1
	}

	logits, err := session.Infer(ctx, inputIDs, attentionMask)
	if err != nil {
		return err
	}

	for w := win.start; w < win.end; w++ {
		if len(pieces[w]) == 0 {
			out[w] = LabelNone
			continue
		}
		pos := firstPiece[w-win.start]
		if pos >= len(logits) {
			return fmt.Errorf("%w: logits shorter than input", ErrInvalidModel)
		}
		cls := argmax(logits[pos])
		if cls >= len(r.labels) {
			return fmt.Errorf("%w: model emits %d classes, label alphabet has %d",
				ErrInvalidModel, len(logits[pos]), len(r.labels))
		}
		out[w] = r.labels[cls]
	}

	return nil
}

// joinLabeled renders words with their predicted punctuation attached.
func joinLabeled(words []string, labels []Label) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		if i < len(labels) {
			b.WriteString(labels[i].Surface())
		}
	}
	return b.String()
}

func argmax(xs []float32) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}

// Close releases all resources.
func (r *Restorer) Close() error {
	var errs []error

	if r.pool != nil {
		if err := r.pool.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if r.tokenizer != nil {
		if err := r.tokenizer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
