package punct

// Label is a per-token punctuation label. The value of every label
// except LabelNone is its literal surface form, so labels round-trip
// through CONLL and TSV files unchanged.
type Label string

// The closed label alphabet.
const (
	LabelNone        Label = "B"
	LabelColon       Label = ":"
	LabelSemicolon   Label = ";"
	LabelComma       Label = ","
	LabelPeriod      Label = "."
	LabelHyphen      Label = "-"
	LabelEllipsis    Label = "..."
	LabelQuestion    Label = "?"
	LabelExclamation Label = "!"
)

var labels = []Label{
	LabelNone,
	LabelColon,
	LabelSemicolon,
	LabelComma,
	LabelPeriod,
	LabelHyphen,
	LabelEllipsis,
	LabelQuestion,
	LabelExclamation,
}

// Labels returns the full label alphabet in canonical order. The order
// is stable and doubles as the class order of trained models.
func Labels() []Label {
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}

// PunctuationLabels returns the alphabet without LabelNone. Evaluation
// metrics are computed over this subset only.
func PunctuationLabels() []Label {
	out := make([]Label, 0, len(labels)-1)
	for _, l := range labels {
		if l != LabelNone {
			out = append(out, l)
		}
	}
	return out
}

// LabelStrings converts a label slice to plain strings.
func LabelStrings(ls []Label) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = string(l)
	}
	return out
}

// ParseLabel reports whether s is a member of the label alphabet.
func ParseLabel(s string) (Label, bool) {
	for _, l := range labels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// IsPunctuation reports whether l carries a punctuation mark.
func (l Label) IsPunctuation() bool {
	return l != LabelNone
}

// Surface returns the text appended after a word carrying this label.
func (l Label) Surface() string {
	if l == LabelNone {
		return ""
	}
	return string(l)
}
