package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		fqdn    string
		wantErr bool
	}{
		{name: "simple domain", fqdn: "example.com", wantErr: false},
		{name: "subdomain", fqdn: "www.example.com", wantErr: false},
		{name: "multi-label tld", fqdn: "bbc.co.uk", wantErr: false},
		{name: "bare suffix", fqdn: "com", wantErr: true},
		{name: "empty", fqdn: "", wantErr: true},
		{name: "leading dot", fqdn: ".com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.fqdn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.fqdn, d.FQDN)
		})
	}
}

func TestNew_MultiLabelTLD(t *testing.T) {
	d, err := New("bbc.co.uk")
	assert.NoError(t, err)
	assert.Equal(t, "co.uk", d.TLD)
	assert.Equal(t, "bbc", d.Domain)
}

func TestReparse_Idempotent(t *testing.T) {
	d, err := New("www.example.com")
	assert.NoError(t, err)

	again, err := d.reparse(d.FQDN)
	assert.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestRaw_SkipsWhitelist(t *testing.T) {
	_, err := New("example.nosuchtld")
	assert.Error(t, err)

	d, err := Raw("example.nosuchtld")
	assert.NoError(t, err)
	assert.Equal(t, "nosuchtld", d.TLD)
}

func TestLocate(t *testing.T) {
	buf := []byte("www.example.com")
	tldStart, tldLen, labelStart, labelLen := locate(buf, "com")
	assert.Equal(t, "com", string(buf[tldStart:tldStart+tldLen]))
	assert.Equal(t, "example", string(buf[labelStart:labelStart+labelLen]))
}

func TestLocate_MultiLabelTLD(t *testing.T) {
	buf := []byte("www.bbc.co.uk")
	tldStart, tldLen, labelStart, labelLen := locate(buf, "co.uk")
	assert.Equal(t, "co.uk", string(buf[tldStart:tldStart+tldLen]))
	assert.Equal(t, "bbc", string(buf[labelStart:labelStart+labelLen]))
}
