// Package corpus loads annotated JSON documents and converts them into
// parallel input/expected text streams routed into train/test/rest
// splits.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Token is one annotated word: the word itself, the punctuation glyph
// that follows it (possibly empty), and whether a space follows.
type Token struct {
	Word        string `json:"word"`
	Punctuation string `json:"punctuation"`
	SpaceAfter  bool   `json:"space_after"`
}

// Document is an ordered token sequence with an identity used for
// train/test/rest routing. The ID is the source filename stem.
type Document struct {
	ID     string  `json:"-"`
	Title  string  `json:"title"`
	Tokens []Token `json:"words"`
}

// LoadDocument parses one JSON document file. Malformed JSON is a hard
// error; it signals a data-integrity problem, not a skippable record.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}

	base := filepath.Base(path)
	doc.ID = strings.TrimSuffix(base, filepath.Ext(base))

	return &doc, nil
}

// LoadDir loads every *.json document in a directory, in directory
// order (lexicographic, so runs are reproducible).
func LoadDir(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		doc, err := LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
