package phonetic

import (
	"math"
	"sync"

	"github.com/agext/levenshtein"

	"github.com/ducksify/gotwist/pkg/domain"
)

// Result is the outcome of scoring one permutation against its base
// domain: the permutation itself, the scoring operation's name, and the
// selected encodings/distance.
type Result struct {
	Permutation domain.Permutation `json:"permutation"`
	Op          string             `json:"op"`
	Data        Data               `json:"data"`
}

// Data carries the encodings chosen as the closest pairing, and the
// normalised Levenshtein distance between them.
type Data struct {
	Encodings Encodings `json:"encodings"`
	Distance  float64   `json:"distance"`
}

// Encodings is the pair of Metaphone-family codes selected as the
// closest match between a base label and a permutation's label.
type Encodings struct {
	Domain      string `json:"domain"`
	Permutation string `json:"permutation"`
}

const opName = "Metaphone3"

var encoder = NewEncoder()

// ComputeDistance scores perm against base: both labels are encoded
// with Encode, all four (primary/alternate) pairings are compared with
// normalised Levenshtein distance, and the closest pairing (ties
// resolved in favour of the first: primary/primary, then
// primary/alternate, then alternate/primary, then alternate/alternate)
// is returned. If every pairing has an empty side, the distance is 1.0.
func ComputeDistance(base domain.Domain, perm domain.Permutation) Result {
	basePrimary, baseAlternate := encoder.Encode(base.Domain)
	permPrimary, permAlternate := encoder.Encode(perm.Domain.Domain)

	type pairing struct {
		baseCode, permCode string
	}
	pairings := [4]pairing{
		{basePrimary, permPrimary},
		{basePrimary, permAlternate},
		{baseAlternate, permPrimary},
		{baseAlternate, permAlternate},
	}

	bestDistance := math.MaxFloat64
	bestPairing := pairings[0]
	found := false

	for _, pr := range pairings {
		if pr.baseCode == "" || pr.permCode == "" {
			continue
		}
		d := normalizedLevenshtein(pr.baseCode, pr.permCode)
		if d < bestDistance {
			bestDistance = d
			bestPairing = pr
			found = true
		}
	}

	if !found {
		bestDistance = 1.0
		bestPairing = pairing{}
	}

	return Result{
		Permutation: perm,
		Op:          opName,
		Data: Data{
			Encodings: Encodings{Domain: bestPairing.baseCode, Permutation: bestPairing.permCode},
			Distance:  bestDistance,
		},
	}
}

func normalizedLevenshtein(s1, s2 string) float64 {
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	if maxLen == 0 {
		return 1.0
	}
	return float64(levenshtein.Distance(s1, s2, nil)) / float64(maxLen)
}

// DistanceAll scores every permutation in perms against base,
// concurrently, bounding the number of in-flight goroutines to
// concurrency (at least 1). Results are returned in the same order as
// perms, regardless of completion order.
func DistanceAll(base domain.Domain, perms []domain.Permutation, concurrency int) []Result {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(perms))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, perm := range perms {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, perm domain.Permutation) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = ComputeDistance(base, perm)
		}(i, perm)
	}

	wg.Wait()
	return results
}
