package align

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// endOfUtterance terminates a forced-alignment transcript.
const endOfUtterance = "</s>"

// TimedWord is one forced-alignment record: millisecond start/end
// timestamps and the aligned word.
type TimedWord struct {
	Start int
	End   int
	Word  string
}

// ParseTranscript reads "(start,end) word" lines, ignoring the </s>
// marker. Any other malformed line is a hard error.
func ParseTranscript(r io.Reader) ([]TimedWord, error) {
	var words []TimedWord

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == endOfUtterance {
			continue
		}

		stamp, word, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("transcript line %q: missing word", line)
		}
		if !strings.HasPrefix(stamp, "(") || !strings.HasSuffix(stamp, ")") {
			return nil, fmt.Errorf("transcript line %q: malformed timestamps", line)
		}

		startStr, endStr, ok := strings.Cut(stamp[1:len(stamp)-1], ",")
		if !ok {
			return nil, fmt.Errorf("transcript line %q: malformed timestamps", line)
		}
		start, err := strconv.Atoi(startStr)
		if err != nil {
			return nil, fmt.Errorf("transcript line %q: %w", line, err)
		}
		end, err := strconv.Atoi(endStr)
		if err != nil {
			return nil, fmt.Errorf("transcript line %q: %w", line, err)
		}

		words = append(words, TimedWord{Start: start, End: end, Word: word})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}

	return words, nil
}

// WordPause pairs a transcript word with the silence (in milliseconds)
// before the next word starts. The last word's pause is 0.
type WordPause struct {
	Word  string
	Pause int
}

// Pauses computes per-word gaps from consecutive timestamps.
func Pauses(words []TimedWord) []WordPause {
	if len(words) == 0 {
		return nil
	}

	out := make([]WordPause, len(words))
	for i, w := range words {
		pause := 0
		if i+1 < len(words) {
			pause = words[i+1].Start - w.End
		}
		out[i] = WordPause{Word: w.Word, Pause: pause}
	}

	return out
}

// MatchPauses attaches a pause to each expected token via a monotonic
// substring scan: transcript words are concatenated (lower-cased) into
// one index, and each token is searched for from the previous match
// offset. A hit only counts when it lands exactly on a recorded word
// start; everything else yields -1. The scan tolerates small
// tokenization drift between transcript and expected text but assumes
// word order is preserved. Deliberately not a real sequence alignment:
// existing label data was produced with exactly this heuristic.
func MatchPauses(pauses []WordPause, expected []string) []int {
	var b strings.Builder
	starts := make(map[int]int, len(pauses))
	for _, wp := range pauses {
		starts[b.Len()] = wp.Pause
		b.WriteString(strings.ToLower(wp.Word))
	}
	text := b.String()

	matched := make([]int, 0, len(expected))
	index := 0
	for _, token := range expected {
		found := strings.Index(text[index:], strings.ToLower(token))
		if found < 0 {
			matched = append(matched, -1)
			continue
		}
		found += index

		if pause, ok := starts[found]; ok {
			matched = append(matched, pause)
			index = found
		} else {
			matched = append(matched, -1)
		}
	}

	return matched
}

// PauseSource supplies optional pause features for a document. It is a
// closed choice made at construction: NoPauses or TranscriptDir.
type PauseSource interface {
	pausesFor(docID string, expected []string) ([]int, error)
}

// NoPauses disables the pause feature; CONLL output carries two columns.
type NoPauses struct{}

func (NoPauses) pausesFor(string, []string) ([]int, error) {
	return nil, nil
}

// TranscriptDir reads <dir>/<docID>.clntmstmp forced-alignment
// transcripts and derives pause features from them.
type TranscriptDir struct {
	Dir string
}

func (t TranscriptDir) pausesFor(docID string, expected []string) ([]int, error) {
	path := filepath.Join(t.Dir, docID+".clntmstmp")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer file.Close()

	words, err := ParseTranscript(file)
	if err != nil {
		return nil, fmt.Errorf("transcript %s: %w", path, err)
	}

	return MatchPauses(Pauses(words), expected), nil
}
