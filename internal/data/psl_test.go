package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePSL(t *testing.T) {
	tests := []struct {
		name      string
		fqdn      string
		wantOK    bool
		wantLabel string
		wantTLD   string
	}{
		{name: "simple", fqdn: "example.com", wantOK: true, wantLabel: "example", wantTLD: "com"},
		{name: "subdomain", fqdn: "www.example.com", wantOK: true, wantLabel: "example", wantTLD: "com"},
		{name: "multi-label tld", fqdn: "bbc.co.uk", wantOK: true, wantLabel: "bbc", wantTLD: "co.uk"},
		{name: "empty", fqdn: "", wantOK: false},
		{name: "leading dot", fqdn: ".com", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePSL(tt.fqdn)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantTLD, got.TLD)
		})
	}
}

func TestContainsTLD(t *testing.T) {
	assert.True(t, ContainsTLD("com"))
	assert.True(t, ContainsTLD("co.uk"))
	assert.False(t, ContainsTLD("nosuchtld"))
}

func TestTLDs_Sorted(t *testing.T) {
	for i := 1; i < len(TLDs); i++ {
		assert.LessOrEqual(t, TLDs[i-1], TLDs[i])
	}
}
