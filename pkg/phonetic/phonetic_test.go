package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducksify/gotwist/pkg/domain"
)

func mustDomain(t *testing.T, fqdn string) domain.Domain {
	t.Helper()
	d, err := domain.New(fqdn)
	assert.NoError(t, err)
	return d
}

func TestComputeDistance_Identical(t *testing.T) {
	base := mustDomain(t, "example.com")
	perm := domain.Permutation{Domain: mustDomain(t, "example.com"), Kind: domain.Mapped}

	result := ComputeDistance(base, perm)
	assert.Equal(t, opName, result.Op)
	assert.Equal(t, 0.0, result.Data.Distance)
	assert.Equal(t, result.Data.Encodings.Domain, result.Data.Encodings.Permutation)
}

func TestComputeDistance_PhoneFone(t *testing.T) {
	base := mustDomain(t, "phone.com")
	perm := domain.Permutation{Domain: mustDomain(t, "fone.com"), Kind: domain.Mapped}

	result := ComputeDistance(base, perm)
	assert.Less(t, result.Data.Distance, 0.3)
}

func TestComputeDistance_Different(t *testing.T) {
	base := mustDomain(t, "google.com")
	perm := domain.Permutation{Domain: mustDomain(t, "amazon.com"), Kind: domain.Mapped}

	result := ComputeDistance(base, perm)
	assert.Greater(t, result.Data.Distance, 0.0)
	assert.LessOrEqual(t, result.Data.Distance, 1.0)
}

func TestNormalizedLevenshtein(t *testing.T) {
	assert.Equal(t, 0.0, normalizedLevenshtein("test", "test"))
	assert.Equal(t, 1.0, normalizedLevenshtein("abc", "xyz"))
	assert.Equal(t, 1.0, normalizedLevenshtein("", ""))
	assert.InDelta(t, 0.428, normalizedLevenshtein("kitten", "sitting"), 0.01)
}

func TestDistanceAll_PreservesOrder(t *testing.T) {
	base := mustDomain(t, "example.com")
	perms := []domain.Permutation{
		{Domain: mustDomain(t, "exampla.com"), Kind: domain.Mapped},
		{Domain: mustDomain(t, "examplz.com"), Kind: domain.Mapped},
		{Domain: mustDomain(t, "example.com"), Kind: domain.Mapped},
	}

	results := DistanceAll(base, perms, 2)
	assert.Len(t, results, 3)
	assert.Equal(t, 0.0, results[2].Data.Distance)
}

func TestEncode_PhoneFone(t *testing.T) {
	p1, _ := encoder.Encode("phone")
	p2, _ := encoder.Encode("fone")
	assert.Equal(t, p1, p2)
}
