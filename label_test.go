package punct

import (
	"testing"
)

func TestLabels_Order(t *testing.T) {
	got := Labels()
	want := []Label{
		LabelNone, LabelColon, LabelSemicolon, LabelComma,
		LabelPeriod, LabelHyphen, LabelEllipsis, LabelQuestion, LabelExclamation,
	}

	if len(got) != len(want) {
		t.Fatalf("Labels() returned %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLabels_CopyIsIndependent(t *testing.T) {
	a := Labels()
	a[0] = Label("mutated")

	if Labels()[0] != LabelNone {
		t.Error("mutating the returned slice changed the alphabet")
	}
}

func TestPunctuationLabels(t *testing.T) {
	got := PunctuationLabels()

	if len(got) != len(Labels())-1 {
		t.Fatalf("PunctuationLabels() returned %d labels, want %d", len(got), len(Labels())-1)
	}
	for _, l := range got {
		if l == LabelNone {
			t.Error("PunctuationLabels() contains LabelNone")
		}
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in     string
		want   Label
		wantOK bool
	}{
		{"B", LabelNone, true},
		{".", LabelPeriod, true},
		{"...", LabelEllipsis, true},
		{"?", LabelQuestion, true},
		{"-", LabelHyphen, true},
		{"", "", false},
		{"x", "", false},
		{"..", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseLabel(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseLabel(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabel_Surface(t *testing.T) {
	if got := LabelNone.Surface(); got != "" {
		t.Errorf("LabelNone.Surface() = %q, want empty", got)
	}
	if got := LabelEllipsis.Surface(); got != "..." {
		t.Errorf("LabelEllipsis.Surface() = %q, want %q", got, "...")
	}
	if got := LabelComma.Surface(); got != "," {
		t.Errorf("LabelComma.Surface() = %q, want %q", got, ",")
	}
}

func TestLabel_IsPunctuation(t *testing.T) {
	if LabelNone.IsPunctuation() {
		t.Error("LabelNone.IsPunctuation() = true, want false")
	}
	for _, l := range PunctuationLabels() {
		if !l.IsPunctuation() {
			t.Errorf("%q.IsPunctuation() = false, want true", l)
		}
	}
}

func TestLabelStrings(t *testing.T) {
	got := LabelStrings([]Label{LabelNone, LabelPeriod})
	if len(got) != 2 || got[0] != "B" || got[1] != "." {
		t.Errorf("LabelStrings() = %v, want [B .]", got)
	}
}
