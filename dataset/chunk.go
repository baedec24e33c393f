package dataset

import "fmt"

// Counter measures a word's subword length. Implemented by
// tokenizer.Tokenizer; the chunker treats it as an opaque integer
// function of a word.
type Counter interface {
	PieceCount(word string) int
}

// Chunker splits sentences whose cumulative subword length would
// overflow a model's sequence budget into windows. Stride controls
// window overlap: 1.0 discards the whole window at each flush (disjoint
// chunks), smaller values retain a suffix (sliding window).
type Chunker struct {
	MaxSeqLen int
	Stride    float64
	Counter   Counter
}

// Split walks each sentence left to right and emits chunks with ids
// {sentence_id}_{k}. Before a token whose subword length would push the
// running total to MaxSeqLen-1 or beyond, the accumulated window is
// flushed and the retained suffix starts at floor(window_size*stride).
// The trailing flush is unconditional, so a sentence that never reaches
// the threshold still emits exactly one chunk.
func (c *Chunker) Split(d *Dataset) *Dataset {
	var out Dataset

	emit := func(window []Record, id string) {
		for _, r := range window {
			r.SentenceID = id
			out.Records = append(out.Records, r)
		}
	}

	for _, sentence := range d.Sentences() {
		var window []Record
		var pieceLens []int
		total := 0
		chunk := 0

		for _, rec := range sentence.Records {
			n := c.Counter.PieceCount(rec.Word)

			if total+n >= c.MaxSeqLen-1 {
				emit(window, fmt.Sprintf("%s_%d", sentence.ID, chunk))
				chunk++

				offset := int(float64(len(window)) * c.Stride)
				if offset > len(window) {
					offset = len(window)
				}
				for _, l := range pieceLens[:offset] {
					total -= l
				}
				window = window[offset:]
				pieceLens = pieceLens[offset:]
			}

			window = append(window, rec)
			pieceLens = append(pieceLens, n)
			total += n
		}

		emit(window, fmt.Sprintf("%s_%d", sentence.ID, chunk))
	}

	return &out
}
