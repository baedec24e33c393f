package dataset

import (
	"math"
	"math/rand"
)

// Split partitions a dataset by sentence id: round(n*trainProp)
// sentences are sampled uniformly with the supplied source and returned
// first, the complement second. Record order within each part follows
// the input. No content-aware stratification, purely random by id.
func Split(d *Dataset, trainProp float64, rng *rand.Rand) (selected, rest *Dataset) {
	ids := d.SentenceIDs()
	count := int(math.Round(float64(len(ids)) * trainProp))
	if count > len(ids) {
		count = len(ids)
	}

	perm := rng.Perm(len(ids))
	chosen := make(map[string]bool, count)
	for _, i := range perm[:count] {
		chosen[ids[i]] = true
	}

	selected = d.Filter(func(id string) bool { return chosen[id] })
	rest = d.Filter(func(id string) bool { return !chosen[id] })
	return selected, rest
}
