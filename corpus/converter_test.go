package corpus

import (
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "talk42.json", `{
		"title": "Talk",
		"words": [
			{"word": "dog", "punctuation": "", "space_after": true},
			{"word": "runs", "punctuation": ".", "space_after": false}
		]
	}`)

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() failed: %v", err)
	}

	if doc.ID != "talk42" {
		t.Errorf("ID = %q, want %q", doc.ID, "talk42")
	}
	if doc.Title != "Talk" {
		t.Errorf("Title = %q, want %q", doc.Title, "Talk")
	}
	if len(doc.Tokens) != 2 || doc.Tokens[1].Punctuation != "." {
		t.Errorf("unexpected tokens: %+v", doc.Tokens)
	}
}

func TestLoadDocument_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"words": [`)

	if _, err := LoadDocument(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{"words": []}`)
	writeFile(t, dir, "a.json", `{"words": []}`)
	writeFile(t, dir, "notes.txt", "ignored")

	docs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].ID != "a" || docs[1].ID != "b" {
		t.Errorf("documents out of order: %q, %q", docs[0].ID, docs[1].ID)
	}
}

func TestConverter_Convert(t *testing.T) {
	dataDir := t.TempDir()
	saveDir := t.TempDir()

	writeFile(t, dataDir, "alpha.json", `{"words": [
		{"word": "dog", "punctuation": "", "space_after": true},
		{"word": "runs", "punctuation": ".", "space_after": false},
		{"word": "Home", "punctuation": "", "space_after": false}
	]}`)
	writeFile(t, dataDir, "beta.json", `{"words": [
		{"word": "Ala", "punctuation": "", "space_after": true},
		{"word": "ma", "punctuation": ",", "space_after": true},
		{"word": "kota", "punctuation": "?", "space_after": false}
	]}`)
	writeFile(t, dataDir, "gamma.json", `{"words": [
		{"word": "reszta", "punctuation": "", "space_after": false}
	]}`)

	manifestDir := t.TempDir()
	trainManifest := writeFile(t, manifestDir, "train.tsv", "alpha\talpha.json\n")
	testManifest := writeFile(t, manifestDir, "test.tsv", "beta\tbeta.json\n")

	conv := &Converter{
		TrainManifest: trainManifest,
		TestManifest:  testManifest,
		DataDirs:      []string{dataDir},
		SaveDir:       saveDir,
		Rand:          rand.New(rand.NewSource(0)),
		Logger:        slog.Default(),
	}
	if err := conv.Convert(); err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	readLines := func(name string) []string {
		t.Helper()
		data, err := os.ReadFile(filepath.Join(saveDir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	trainIn := readLines("train_in.tsv")
	if len(trainIn) != 1 || trainIn[0] != "alpha\tdog runs home" {
		t.Errorf("train_in.tsv = %v", trainIn)
	}
	trainExp := readLines("train_expected.tsv")
	if len(trainExp) != 1 || trainExp[0] != "dog runs. home" {
		t.Errorf("train_expected.tsv = %v", trainExp)
	}

	testIn := readLines("test_in.tsv")
	if len(testIn) != 1 || testIn[0] != "beta\tala ma kota" {
		t.Errorf("test_in.tsv = %v", testIn)
	}
	testExp := readLines("test_expected.tsv")
	if len(testExp) != 1 || testExp[0] != "ala ma, kota?" {
		t.Errorf("test_expected.tsv = %v", testExp)
	}

	restIn := readLines("rest_in.tsv")
	if len(restIn) != 1 || restIn[0] != "gamma\treszta" {
		t.Errorf("rest_in.tsv = %v", restIn)
	}
}

func TestConverter_SkipsMisalignedDocument(t *testing.T) {
	dataDir := t.TempDir()
	saveDir := t.TempDir()

	// The precomposed ellipsis glyph is split on the expected side only,
	// so the token counts diverge and validation rejects the document.
	writeFile(t, dataDir, "broken.json", `{"words": [
		{"word": "a…b", "punctuation": "", "space_after": false}
	]}`)

	manifestDir := t.TempDir()
	trainManifest := writeFile(t, manifestDir, "train.tsv", "broken\tbroken.json\n")
	testManifest := writeFile(t, manifestDir, "test.tsv", "none\tnone.json\n")

	conv := &Converter{
		TrainManifest: trainManifest,
		TestManifest:  testManifest,
		DataDirs:      []string{dataDir},
		SaveDir:       saveDir,
		Rand:          rand.New(rand.NewSource(0)),
		Logger:        slog.Default(),
	}
	if err := conv.Convert(); err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(saveDir, "train_in.tsv"))
	if err != nil {
		t.Fatalf("reading train_in.tsv: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("train_in.tsv = %q, want empty", data)
	}
}
