package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one CONLL token line: word, label, and the optional pause
// column. A missing pause is recorded as a single space so the value
// survives tabulation as-is.
type Entry struct {
	Word  string
	Label string
	Time  string
}

// missingTime marks an absent pause column.
const missingTime = " "

// ReadCONLL parses CONLL token lines into sentences. Blank lines
// terminate sentences, -DOCSTART- lines are skipped, and a trailing
// empty sentence (from a terminating blank line) is dropped.
func ReadCONLL(r io.Reader) ([][]Entry, error) {
	sentences := [][]Entry{nil}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "-DOCSTART-") {
			continue
		}

		stripped := strings.TrimSpace(line)
		if stripped == "" {
			sentences = append(sentences, nil)
			continue
		}

		parts := strings.Split(stripped, "\t")
		var entry Entry
		switch len(parts) {
		case 3:
			entry = Entry{Word: parts[0], Label: parts[1], Time: parts[2]}
		case 2:
			entry = Entry{Word: parts[0], Label: parts[1], Time: missingTime}
		default:
			return nil, fmt.Errorf("conll line %q: want 2 or 3 columns, got %d", stripped, len(parts))
		}
		sentences[len(sentences)-1] = append(sentences[len(sentences)-1], entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan conll: %w", err)
	}

	if n := len(sentences); n > 0 && len(sentences[n-1]) == 0 {
		sentences = sentences[:n-1]
	}

	return sentences, nil
}
