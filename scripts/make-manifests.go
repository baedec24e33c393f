//go:build ignore

// Sample corpus documents into train and test manifests.
// Scans data/raw for *.json documents, shuffles their ids, and writes
// tab-separated manifest files the convert command consumes.
// Usage: go run ./scripts/make-manifests.go
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	dataDir := "data/raw"
	outDir := "data/manifests"
	trainProp := 0.8
	seed := int64(0)

	ids, err := documentIDs(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", dataDir, err)
		os.Exit(1)
	}
	if len(ids) == 0 {
		fmt.Fprintf(os.Stderr, "No documents found in %s\n", dataDir)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	cut := int(float64(len(ids)) * trainProp)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	if err := writeManifest(filepath.Join(outDir, "train.tsv"), ids[:cut]); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing train manifest: %v\n", err)
		os.Exit(1)
	}
	if err := writeManifest(filepath.Join(outDir, "test.tsv"), ids[cut:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing test manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d train and %d test ids to %s\n", cut, len(ids)-cut, outDir)
}

func documentIDs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		ids = append(ids, strings.TrimSuffix(base, filepath.Ext(base)))
	}
	return ids, nil
}

func writeManifest(path string, ids []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, id := range ids {
		// Second column mirrors the source listing format the converter skips.
		fmt.Fprintf(w, "%s\t%s.json\n", id, id)
	}
	return w.Flush()
}
