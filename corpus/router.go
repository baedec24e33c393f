package corpus

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// ReadManifest reads document IDs from a TSV manifest, one
// id<TAB>anything line per document. Only the first field is consumed.
// A line without a tab is a hard error.
func ReadManifest(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	var ids []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		id, _, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("manifest %s: line %q has no tab separator", path, line)
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}

	return ids, nil
}

// Splits holds the three routing buckets. Train and Test follow their
// manifest order; Rest is a deterministic permutation of the remainder.
type Splits struct {
	Train []*Document
	Test  []*Document
	Rest  []*Document
}

// Route partitions documents by manifest membership: train wins over
// test, everything else lands in rest. Train and test are re-ordered to
// match the manifest line order (first match per ID; manifests are
// assumed ID-unique). Rest is shuffled with the supplied source so
// downstream splits are reproducible.
func Route(docs []*Document, trainIDs, testIDs []string, rng *rand.Rand) Splits {
	inTrain := idSet(trainIDs)
	inTest := idSet(testIDs)

	byID := make(map[string]*Document, len(docs))
	var rest []*Document
	for _, doc := range docs {
		switch {
		case inTrain[doc.ID], inTest[doc.ID]:
			if _, dup := byID[doc.ID]; !dup {
				byID[doc.ID] = doc
			}
		default:
			rest = append(rest, doc)
		}
	}

	var s Splits
	for _, id := range trainIDs {
		if doc, ok := byID[id]; ok {
			s.Train = append(s.Train, doc)
		}
	}
	for _, id := range testIDs {
		if doc, ok := byID[id]; ok && !inTrain[id] {
			s.Test = append(s.Test, doc)
		}
	}

	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	s.Rest = rest

	return s
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
