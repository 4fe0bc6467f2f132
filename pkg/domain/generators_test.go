package domain

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func fqdns(perms []Permutation) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = p.Domain.FQDN
	}
	return out
}

func collect(seq func(func(Permutation) bool)) []Permutation {
	var out []Permutation
	for p := range seq {
		out = append(out, p)
	}
	return out
}

func TestAddition_Cardinality(t *testing.T) {
	d, err := New("www.example.com")
	assert.NoError(t, err)

	perms := collect(d.Addition(Permissive{}))
	assert.Len(t, perms, 26)
	for _, p := range perms {
		assert.Equal(t, Addition, p.Kind)
		assert.Equal(t, "com", p.Domain.TLD)
	}
}

func TestMapped_TrmToTrnn(t *testing.T) {
	d, err := New("trm.com")
	assert.NoError(t, err)

	perms := collect(d.Mapped(Permissive{}))
	assert.Contains(t, fqdns(perms), "trnn.com")
}

func TestDoubleVowelInsertion_ExampleiveusToExampleivesus(t *testing.T) {
	d, err := New("exampleiveus.com")
	assert.NoError(t, err)

	perms := collect(d.DoubleVowelInsertion(Permissive{}))
	assert.Contains(t, fqdns(perms), "exampleivesus.com")
}

func TestVowelShuffle_Xiaomi(t *testing.T) {
	d, err := New("xiaomi.com")
	assert.NoError(t, err)

	perms := collect(d.VowelShuffle(6, Permissive{}))
	got := fqdns(perms)
	assert.Contains(t, got, "xoaimi.com")
	assert.Contains(t, got, "xaoimi.com")
	assert.Contains(t, got, "xiaoma.com")
	assert.Contains(t, got, "xeeomi.com")
}

func TestVowelShuffle_NoVowels(t *testing.T) {
	d, err := New("xyz.com")
	_ = err
	if err != nil {
		t.Skip("xyz.com not parseable in this environment")
	}
	perms := collect(d.VowelShuffle(6, Permissive{}))
	assert.Empty(t, perms)
}

func TestVowelSwap_ExcludesSelf(t *testing.T) {
	d, err := New("cat.com")
	assert.NoError(t, err)

	for p := range d.VowelSwap(Permissive{}) {
		assert.NotEqual(t, d.FQDN, p.Domain.FQDN)
	}
}

func TestHyphenationTLDBoundary_MultiLabelSuffix(t *testing.T) {
	d, err := New("abcd.co.uk")
	assert.NoError(t, err)

	perms := collect(d.HyphenationTLDBoundary(Permissive{}))
	assert.Len(t, perms, 1)
	assert.Equal(t, "abcd-co.uk", perms[0].Domain.FQDN)
}

func TestHyphenationTLDBoundary_SingleLabelSuffix(t *testing.T) {
	d, err := New("example.com")
	assert.NoError(t, err)

	perms := collect(d.HyphenationTLDBoundary(Permissive{}))
	assert.Empty(t, perms)
}

func TestAll_ChainsEveryGenerator(t *testing.T) {
	d, err := New("google.co.uk")
	assert.NoError(t, err)

	seen := map[Kind]bool{}
	for p := range d.All(Permissive{}) {
		seen[p.Kind] = true
	}
	for _, k := range generatorOrder {
		assert.True(t, seen[k], "generator %s produced nothing for google.co.uk", k)
	}
}

func TestFilter_Substring(t *testing.T) {
	d, err := New("example.com")
	assert.NoError(t, err)

	perms := collect(d.Keyword(Substring("login")))
	assert.NotEmpty(t, perms)
	for _, p := range perms {
		assert.Contains(t, p.Domain.FQDN, "login")
	}
}

func TestUTF8Boundary_Homoglyph(t *testing.T) {
	d, err := New("example.com")
	assert.NoError(t, err)

	for p := range d.Homoglyph(Permissive{}) {
		assert.True(t, len([]rune(p.Domain.FQDN)) > 0)
		assert.True(t, utf8.ValidString(p.Domain.FQDN))
	}
}

func TestCursorMatchesAll(t *testing.T) {
	d, err := New("www.example.com")
	assert.NoError(t, err)

	var fromAll []string
	for p := range d.All(Permissive{}) {
		fromAll = append(fromAll, p.Domain.FQDN)
	}

	var fromCursor []string
	buf := make([]byte, 0, 256)
	c := NewCursor(d, Permissive{}, buf)
	for c.Advance() {
		r, ok := c.Current()
		assert.True(t, ok)
		fromCursor = append(fromCursor, r.Domain.FQDN())
	}

	assert.Equal(t, fromAll, fromCursor)
}

func TestVisitAllWithBuf_MatchesAll(t *testing.T) {
	d, err := New("www.example.com")
	assert.NoError(t, err)

	var fromAll []string
	for p := range d.All(Permissive{}) {
		fromAll = append(fromAll, p.Domain.FQDN)
	}

	var fromVisit []string
	d.VisitAllWithBuf(Permissive{}, nil, func(r PermutationRef) bool {
		fromVisit = append(fromVisit, r.Domain.FQDN())
		return true
	})

	assert.Equal(t, fromAll, fromVisit)
}
