package corpus

import (
	"bufio"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
)

// Converter drives the corpus-to-TSV conversion: load JSON documents,
// route them by the train/test manifests, and write one input/expected
// TSV pair per bucket.
type Converter struct {
	TrainManifest string
	TestManifest  string
	DataDirs      []string
	SaveDir       string

	// Rand orders the rest bucket; callers seed it explicitly so repeated
	// runs produce identical files.
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Convert runs the conversion end to end, producing
// {train,test,rest}_{in,expected}.tsv under SaveDir.
func (c *Converter) Convert() error {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	trainIDs, err := ReadManifest(c.TrainManifest)
	if err != nil {
		return fmt.Errorf("train manifest: %w", err)
	}
	testIDs, err := ReadManifest(c.TestManifest)
	if err != nil {
		return fmt.Errorf("test manifest: %w", err)
	}

	var docs []*Document
	for _, dir := range c.DataDirs {
		loaded, err := LoadDir(dir)
		if err != nil {
			return err
		}
		docs = append(docs, loaded...)
	}

	splits := Route(docs, trainIDs, testIDs, c.Rand)

	buckets := []struct {
		name string
		docs []*Document
	}{
		{"train", splits.Train},
		{"test", splits.Test},
		{"rest", splits.Rest},
	}
	for _, b := range buckets {
		if err := c.writeSplit(b.name, b.docs, logger); err != nil {
			return err
		}
		logger.Info("wrote split", "name", b.name, "documents", len(b.docs))
	}

	return nil
}

// writeSplit writes name_in.tsv (id<TAB>input) and name_expected.tsv
// (expected), line-aligned. Documents violating the parallel-token
// contract are logged and skipped; alignment cannot proceed on them.
func (c *Converter) writeSplit(name string, docs []*Document, logger *slog.Logger) error {
	inFile, err := os.Create(filepath.Join(c.SaveDir, name+"_in.tsv"))
	if err != nil {
		return fmt.Errorf("create in file: %w", err)
	}
	defer inFile.Close()

	expFile, err := os.Create(filepath.Join(c.SaveDir, name+"_expected.tsv"))
	if err != nil {
		return fmt.Errorf("create expected file: %w", err)
	}
	defer expFile.Close()

	inW := bufio.NewWriter(inFile)
	expW := bufio.NewWriter(expFile)

	for _, doc := range docs {
		_, input, expected := BuildTexts(doc)
		input = NormalizeInput(input)
		expected = NormalizeExpected(expected)

		if err := ValidateParallel(input, expected); err != nil {
			logger.Warn("skipping document", "id", doc.ID, "reason", err)
			continue
		}

		if _, err := fmt.Fprintf(inW, "%s\t%s\n", doc.ID, input); err != nil {
			return fmt.Errorf("write %s_in.tsv: %w", name, err)
		}
		if _, err := fmt.Fprintf(expW, "%s\n", expected); err != nil {
			return fmt.Errorf("write %s_expected.tsv: %w", name, err)
		}
	}

	if err := inW.Flush(); err != nil {
		return fmt.Errorf("flush %s_in.tsv: %w", name, err)
	}
	if err := expW.Flush(); err != nil {
		return fmt.Errorf("flush %s_expected.tsv: %w", name, err)
	}

	if err := inFile.Close(); err != nil {
		return err
	}
	return expFile.Close()
}
