package corpus

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "train.tsv", "doc1\tdoc1.json\ndoc2\tdoc2.json\n\ndoc3\tx\n")

	ids, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest() failed: %v", err)
	}

	want := []string{"doc1", "doc2", "doc3"}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestReadManifest_NoTab(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.tsv", "doc1 doc1.json\n")

	if _, err := ReadManifest(path); err == nil {
		t.Error("expected error for line without tab separator")
	}
}

func TestRoute(t *testing.T) {
	docs := []*Document{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}

	s := Route(docs, []string{"c", "a"}, []string{"d"}, rand.New(rand.NewSource(0)))

	if len(s.Train) != 2 || s.Train[0].ID != "c" || s.Train[1].ID != "a" {
		t.Errorf("train split does not follow manifest order: %v", splitIDs(s.Train))
	}
	if len(s.Test) != 1 || s.Test[0].ID != "d" {
		t.Errorf("test split = %v, want [d]", splitIDs(s.Test))
	}
	if len(s.Rest) != 2 {
		t.Errorf("rest split = %v, want two documents", splitIDs(s.Rest))
	}

	seen := make(map[string]int)
	for _, doc := range append(append(append([]*Document{}, s.Train...), s.Test...), s.Rest...) {
		seen[doc.ID]++
	}
	for _, doc := range docs {
		if seen[doc.ID] != 1 {
			t.Errorf("document %q routed %d times, want exactly once", doc.ID, seen[doc.ID])
		}
	}
}

func TestRoute_TrainWinsOverTest(t *testing.T) {
	docs := []*Document{{ID: "a"}, {ID: "b"}}

	s := Route(docs, []string{"a"}, []string{"a", "b"}, rand.New(rand.NewSource(0)))

	if len(s.Train) != 1 || s.Train[0].ID != "a" {
		t.Errorf("train = %v, want [a]", splitIDs(s.Train))
	}
	if len(s.Test) != 1 || s.Test[0].ID != "b" {
		t.Errorf("test = %v, want [b]", splitIDs(s.Test))
	}
}

func TestRoute_RestShuffleIsDeterministic(t *testing.T) {
	mkDocs := func() []*Document {
		var docs []*Document
		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
			docs = append(docs, &Document{ID: id})
		}
		return docs
	}

	first := Route(mkDocs(), nil, nil, rand.New(rand.NewSource(0)))
	second := Route(mkDocs(), nil, nil, rand.New(rand.NewSource(0)))

	if len(first.Rest) != len(second.Rest) {
		t.Fatalf("rest sizes differ: %d vs %d", len(first.Rest), len(second.Rest))
	}
	for i := range first.Rest {
		if first.Rest[i].ID != second.Rest[i].ID {
			t.Fatalf("same seed produced different orders: %v vs %v",
				splitIDs(first.Rest), splitIDs(second.Rest))
		}
	}
}

func splitIDs(docs []*Document) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}
