package wireformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducksify/gotwist/pkg/domain"
	"github.com/ducksify/gotwist/pkg/phonetic"
)

func mustDomain(t *testing.T, fqdn string) domain.Domain {
	t.Helper()
	d, err := domain.New(fqdn)
	assert.NoError(t, err)
	return d
}

func samplePerms(t *testing.T) []domain.Permutation {
	return []domain.Permutation{
		{Domain: mustDomain(t, "examplea.com"), Kind: domain.Addition},
		{Domain: mustDomain(t, "trnn.com"), Kind: domain.Mapped},
	}
}

func TestPermutations_JSON(t *testing.T) {
	out := Permutations(samplePerms(t), "json")
	assert.Contains(t, out, "examplea.com")
	assert.Contains(t, out, "\"kind\"")
}

func TestPermutations_CSV(t *testing.T) {
	out := Permutations(samplePerms(t), "csv")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "kind,fqdn,domain,tld", lines[0])
	assert.Len(t, lines, 3)
}

func TestPermutations_List(t *testing.T) {
	out := Permutations(samplePerms(t), "list")
	assert.Equal(t, "examplea.com\ntrnn.com\n", out)
}

func TestPermutations_UnknownFormat(t *testing.T) {
	assert.Equal(t, "", Permutations(samplePerms(t), "cli"))
}

func TestPhoneticResults_JSON(t *testing.T) {
	base := mustDomain(t, "example.com")
	perm := domain.Permutation{Domain: mustDomain(t, "exampla.com"), Kind: domain.Mapped}
	results := []phonetic.Result{phonetic.ComputeDistance(base, perm)}

	out := PhoneticResults(results, "json")
	assert.Contains(t, out, "Metaphone3")
	assert.Contains(t, out, "distance")
}

func TestPhoneticResults_CSV(t *testing.T) {
	base := mustDomain(t, "example.com")
	perm := domain.Permutation{Domain: mustDomain(t, "exampla.com"), Kind: domain.Mapped}
	results := []phonetic.Result{phonetic.ComputeDistance(base, perm)}

	out := PhoneticResults(results, "csv")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "kind,fqdn,op,domain_encoding,permutation_encoding,distance", lines[0])
}
