// Package metrics scores predicted punctuation labels against gold
// labels. All metrics are computed over the punctuation subset of the
// alphabet; LabelNone never contributes to a score.
package metrics

import (
	punct "github.com/azielinski/go-punct"
)

// labelCounts holds per-label tallies for one evaluation.
type labelCounts struct {
	tp      int
	fp      int
	fn      int
	support int
}

// Flatten concatenates per-sentence label sequences.
func Flatten(seqs [][]string) []string {
	var out []string
	for _, seq := range seqs {
		out = append(out, seq...)
	}
	return out
}

// Averaged holds one metric under the three averaging schemes.
type Averaged struct {
	Micro    float64
	Macro    float64
	Weighted float64
}

// Report is a full evaluation over the punctuation labels.
type Report struct {
	Labels []string

	Precision Averaged
	Recall    Averaged
	F1        Averaged

	PrecisionPerLabel map[string]float64
	RecallPerLabel    map[string]float64
	F1PerLabel        map[string]float64

	// Confusion[i][j] counts tokens whose gold label is Labels[i] and
	// predicted label is Labels[j]. Pairs involving labels outside the
	// evaluation set are not counted.
	Confusion [][]int
}

// Evaluate scores per-sentence gold and predicted label sequences over
// the punctuation label alphabet.
func Evaluate(yTrue, yPred [][]string) Report {
	return EvaluateLabels(Flatten(yTrue), Flatten(yPred), punct.LabelStrings(punct.PunctuationLabels()))
}

// EvaluateLabels scores flat gold/predicted labels over an explicit
// label set. Division by zero yields 0, matching the training-time
// convention.
func EvaluateLabels(yTrue, yPred []string, labels []string) Report {
	n := len(yTrue)
	if len(yPred) < n {
		n = len(yPred)
	}

	inSet := make(map[string]int, len(labels))
	for i, l := range labels {
		inSet[l] = i
	}

	counts := make(map[string]*labelCounts, len(labels))
	for _, l := range labels {
		counts[l] = &labelCounts{}
	}

	confusion := make([][]int, len(labels))
	for i := range confusion {
		confusion[i] = make([]int, len(labels))
	}

	for i := 0; i < n; i++ {
		t, p := yTrue[i], yPred[i]
		ti, tOK := inSet[t]
		pi, pOK := inSet[p]

		if tOK {
			counts[t].support++
		}
		if t == p {
			if tOK {
				counts[t].tp++
			}
		} else {
			if tOK {
				counts[t].fn++
			}
			if pOK {
				counts[p].fp++
			}
		}
		if tOK && pOK {
			confusion[ti][pi]++
		}
	}

	r := Report{
		Labels:            labels,
		Confusion:         confusion,
		PrecisionPerLabel: make(map[string]float64, len(labels)),
		RecallPerLabel:    make(map[string]float64, len(labels)),
		F1PerLabel:        make(map[string]float64, len(labels)),
	}

	var sumTP, sumFP, sumFN, sumSupport int
	var macroP, macroR, macroF, weightedP, weightedR, weightedF float64

	for _, l := range labels {
		c := counts[l]
		p := ratio(c.tp, c.tp+c.fp)
		rec := ratio(c.tp, c.tp+c.fn)
		f := harmonic(p, rec)

		r.PrecisionPerLabel[l] = p
		r.RecallPerLabel[l] = rec
		r.F1PerLabel[l] = f

		sumTP += c.tp
		sumFP += c.fp
		sumFN += c.fn
		sumSupport += c.support

		macroP += p
		macroR += rec
		macroF += f
		weightedP += p * float64(c.support)
		weightedR += rec * float64(c.support)
		weightedF += f * float64(c.support)
	}

	r.Precision.Micro = ratio(sumTP, sumTP+sumFP)
	r.Recall.Micro = ratio(sumTP, sumTP+sumFN)
	r.F1.Micro = harmonic(r.Precision.Micro, r.Recall.Micro)

	if len(labels) > 0 {
		r.Precision.Macro = macroP / float64(len(labels))
		r.Recall.Macro = macroR / float64(len(labels))
		r.F1.Macro = macroF / float64(len(labels))
	}

	if sumSupport > 0 {
		r.Precision.Weighted = weightedP / float64(sumSupport)
		r.Recall.Weighted = weightedR / float64(sumSupport)
		r.F1.Weighted = weightedF / float64(sumSupport)
	}

	return r
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func harmonic(p, r float64) float64 {
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}
