package punct

import (
	"errors"
	"os"
	"testing"
)

const (
	testModelPath     = "testdata/punct.onnx"
	testTokenizerPath = "testdata/tokenizer.model"
)

// skipIfNoModel skips the test if the ONNX model is not available.
func skipIfNoModel(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testModelPath); err != nil {
		t.Skipf("Skipping: ONNX model not available at %s", testModelPath)
	}
}

// skipIfNoTokenizer skips the test if the tokenizer model is not available.
func skipIfNoTokenizer(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testTokenizerPath); err != nil {
		t.Skipf("Skipping: Tokenizer model not available at %s", testTokenizerPath)
	}
}

func TestNew(t *testing.T) {
	skipIfNoModel(t)
	skipIfNoTokenizer(t)

	r, err := New(testModelPath, testTokenizerPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer func() { _ = r.Close() }()

	if r.tokenizer == nil {
		t.Error("expected non-nil tokenizer")
	}
	if r.pool == nil {
		t.Error("expected non-nil pool")
	}
	if len(r.labels) != len(Labels()) {
		t.Errorf("restorer carries %d labels, want %d", len(r.labels), len(Labels()))
	}
}

func TestNew_ModelNotFound(t *testing.T) {
	_, err := New("nonexistent/punct.onnx", testTokenizerPath)
	if err == nil {
		t.Fatal("expected error for nonexistent model")
	}
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got: %v", err)
	}
}

func TestNew_TokenizerNotFound(t *testing.T) {
	// Create a temp file to act as the model so we pass the model check
	tmpModel, err := os.CreateTemp("", "fake_model_*.onnx")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer func() { _ = os.Remove(tmpModel.Name()) }()
	_ = tmpModel.Close()

	_, err = New(tmpModel.Name(), "nonexistent/tokenizer.model")
	if err == nil {
		t.Fatal("expected error for nonexistent tokenizer")
	}
	if !errors.Is(err, ErrTokenizerFailed) {
		t.Errorf("expected ErrTokenizerFailed, got: %v", err)
	}
}

func TestPackWindows(t *testing.T) {
	pieces := func(lens ...int) [][]int64 {
		out := make([][]int64, len(lens))
		for i, n := range lens {
			out[i] = make([]int64, n)
		}
		return out
	}

	tests := []struct {
		name   string
		pieces [][]int64
		budget int
		want   []window
	}{
		{
			name:   "single window when everything fits",
			pieces: pieces(2, 3, 1),
			budget: 10,
			want:   []window{{0, 3}},
		},
		{
			name:   "split at budget",
			pieces: pieces(3, 3, 3),
			budget: 6,
			want:   []window{{0, 2}, {2, 3}},
		},
		{
			name:   "overlong word gets its own window",
			pieces: pieces(1, 12, 1),
			budget: 4,
			want:   []window{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:   "empty input still yields one window",
			pieces: nil,
			budget: 4,
			want:   []window{{0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := packWindows(tt.pieces, tt.budget)
			if len(got) != len(tt.want) {
				t.Fatalf("packWindows() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("window %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPackWindows_CoversAllWords(t *testing.T) {
	pieces := make([][]int64, 17)
	for i := range pieces {
		pieces[i] = make([]int64, 1+i%4)
	}

	wins := packWindows(pieces, 7)
	next := 0
	for _, w := range wins {
		if w.start != next {
			t.Fatalf("window starts at %d, want %d", w.start, next)
		}
		if w.end < w.start {
			t.Fatalf("window %v is inverted", w)
		}
		next = w.end
	}
	if next != len(pieces) {
		t.Errorf("windows cover %d words, want %d", next, len(pieces))
	}
}

func TestJoinLabeled(t *testing.T) {
	tests := []struct {
		name   string
		words  []string
		labels []Label
		want   string
	}{
		{
			name:   "punctuation attaches to preceding word",
			words:  []string{"ala", "ma", "kota"},
			labels: []Label{LabelNone, LabelComma, LabelPeriod},
			want:   "ala ma, kota.",
		},
		{
			name:   "ellipsis surfaces in full",
			words:  []string{"no", "tak"},
			labels: []Label{LabelEllipsis, LabelQuestion},
			want:   "no... tak?",
		},
		{
			name:   "all plain",
			words:  []string{"a", "b"},
			labels: []Label{LabelNone, LabelNone},
			want:   "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinLabeled(tt.words, tt.labels); got != tt.want {
				t.Errorf("joinLabeled() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgmax(t *testing.T) {
	tests := []struct {
		in   []float32
		want int
	}{
		{[]float32{0.1, 0.9, 0.3}, 1},
		{[]float32{5}, 0},
		{[]float32{-3, -1, -2}, 1},
		{[]float32{2, 2, 2}, 0},
	}

	for _, tt := range tests {
		if got := argmax(tt.in); got != tt.want {
			t.Errorf("argmax(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
