// Package dataset reads, tabulates, splits and chunks labeled
// token datasets.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one row of the tabular dataset.
type Record struct {
	Word       string
	Label      string
	Time       string
	SentenceID string
}

// Dataset is an ordered record collection grouped by sentence id.
type Dataset struct {
	Records []Record
}

// header is the tabular dataset's fixed column set.
const header = "words\tlabels\ttimes\tsentence_id"

// Tabulate assigns sequential numeric sentence ids to CONLL sentences
// and flattens them into a Dataset. Empty sentences consume an id but
// contribute no rows, preserving the id assignment of the source data.
func Tabulate(sentences [][]Entry) *Dataset {
	var ds Dataset
	for i, sentence := range sentences {
		id := strconv.Itoa(i)
		for _, e := range sentence {
			ds.Records = append(ds.Records, Record{
				Word:       e.Word,
				Label:      e.Label,
				Time:       e.Time,
				SentenceID: id,
			})
		}
	}
	return &ds
}

// SentenceIDs returns the distinct sentence ids in first-seen order.
func (d *Dataset) SentenceIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range d.Records {
		if !seen[r.SentenceID] {
			seen[r.SentenceID] = true
			ids = append(ids, r.SentenceID)
		}
	}
	return ids
}

// Sentence is a contiguous record group sharing a sentence id.
type Sentence struct {
	ID      string
	Records []Record
}

// Sentences groups records by sentence id in first-seen order.
func (d *Dataset) Sentences() []Sentence {
	index := make(map[string]int)
	var out []Sentence
	for _, r := range d.Records {
		i, ok := index[r.SentenceID]
		if !ok {
			i = len(out)
			index[r.SentenceID] = i
			out = append(out, Sentence{ID: r.SentenceID})
		}
		out[i].Records = append(out[i].Records, r)
	}
	return out
}

// Filter returns the records whose sentence id satisfies keep,
// preserving order.
func (d *Dataset) Filter(keep func(sentenceID string) bool) *Dataset {
	var out Dataset
	for _, r := range d.Records {
		if keep(r.SentenceID) {
			out.Records = append(out.Records, r)
		}
	}
	return &out
}

// WriteTSV writes the dataset with its header row.
func (d *Dataset) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range d.Records {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", r.Word, r.Label, r.Time, r.SentenceID); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return bw.Flush()
}

// ReadTSV reads a dataset written by WriteTSV. The header row is
// required; a wrong column set is a hard error.
func ReadTSV(r io.Reader) (*Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, fmt.Errorf("empty dataset: missing header")
	}
	if got := scanner.Text(); got != header {
		return nil, fmt.Errorf("unexpected header %q", got)
	}

	var ds Dataset
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 4 {
			return nil, fmt.Errorf("dataset line %q: want 4 columns, got %d", line, len(parts))
		}
		ds.Records = append(ds.Records, Record{
			Word:       parts[0],
			Label:      parts[1],
			Time:       parts[2],
			SentenceID: parts[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan dataset: %w", err)
	}

	return &ds, nil
}
