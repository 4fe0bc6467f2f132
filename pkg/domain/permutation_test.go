package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Addition", Addition.String())
	assert.Equal(t, "Mapped", Mapped.String())
	assert.Equal(t, "Homoglyph", Homoglyph.String())
}

func TestKind_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Mapped)
	assert.NoError(t, err)
	assert.Equal(t, `"Mapped"`, string(b))

	var k Kind
	assert.NoError(t, json.Unmarshal(b, &k))
	assert.Equal(t, Mapped, k)
}

func TestPermutation_JSONShape(t *testing.T) {
	d, err := New("example.com")
	assert.NoError(t, err)

	p := Permutation{Domain: d, Kind: TLD}
	b, err := json.Marshal(p)
	assert.NoError(t, err)

	var m map[string]any
	assert.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "TLD", m["kind"])

	domainField, ok := m["domain"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "example.com", domainField["fqdn"])
	assert.Equal(t, "com", domainField["tld"])
	assert.Equal(t, "example", domainField["domain"])
}
