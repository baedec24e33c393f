package metrics

// Func computes one scalar score from per-sentence gold and predicted
// label sequences.
type Func func(yTrue, yPred [][]string) float64

// scalarNames orders the scalar metrics for reports and manifests.
var scalarNames = []string{
	"f1_micro",
	"f1_macro",
	"f1_weighted",
	"precision_micro",
	"precision_macro",
	"precision_weighted",
	"recall_micro",
	"recall_macro",
	"recall_weighted",
}

// Names returns every metric name a full evaluation reports, scalar
// metrics first, then the per-class and matrix entries.
func Names() []string {
	names := make([]string, 0, len(scalarNames)+4)
	names = append(names, scalarNames...)
	names = append(names, "f1_class", "precision_class", "recall_class", "confusion_matrix")
	return names
}

// Funcs returns the scalar metrics by name. Per-class scores and the
// confusion matrix are only available through Evaluate since they are
// not scalars.
func Funcs() map[string]Func {
	return map[string]Func{
		"f1_micro":           func(t, p [][]string) float64 { return Evaluate(t, p).F1.Micro },
		"f1_macro":           func(t, p [][]string) float64 { return Evaluate(t, p).F1.Macro },
		"f1_weighted":        func(t, p [][]string) float64 { return Evaluate(t, p).F1.Weighted },
		"precision_micro":    func(t, p [][]string) float64 { return Evaluate(t, p).Precision.Micro },
		"precision_macro":    func(t, p [][]string) float64 { return Evaluate(t, p).Precision.Macro },
		"precision_weighted": func(t, p [][]string) float64 { return Evaluate(t, p).Precision.Weighted },
		"recall_micro":       func(t, p [][]string) float64 { return Evaluate(t, p).Recall.Micro },
		"recall_macro":       func(t, p [][]string) float64 { return Evaluate(t, p).Recall.Macro },
		"recall_weighted":    func(t, p [][]string) float64 { return Evaluate(t, p).Recall.Weighted },
	}
}
