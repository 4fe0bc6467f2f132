// Package domain implements the permutation engine: the parsed-domain
// data model and its public-suffix validation, the family of seventeen
// permutation generators, the dual materialising-iterator /
// allocation-free-cursor API, and the filter contract they share.
package domain

import (
	"bytes"

	"golang.org/x/text/unicode/norm"

	"github.com/ducksify/gotwist/internal/data"
)

// Domain is an owned, parsed fully-qualified domain name: the full FQDN
// string, its registered suffix (the TLD, possibly multi-label such as
// "co.uk"), and the label immediately to its left (the "domain label",
// e.g. "google" in "www.google.com"). A Domain is immutable once
// constructed.
type Domain struct {
	FQDN   string `json:"fqdn"`
	TLD    string `json:"tld"`
	Domain string `json:"domain"`

	// strict records which constructor produced this Domain, so that
	// generated candidates are re-validated the same way the base
	// Domain itself was validated (see reparse).
	strict bool
}

// New parses fqdn strictly: the public-suffix list must resolve a
// registrable name, and the resulting suffix must appear in the baked-in
// TLD whitelist.
func New(fqdn string) (Domain, error) {
	return parse(fqdn, true)
}

// Raw parses fqdn against the public-suffix list only; the suffix is not
// checked against the TLD whitelist.
func Raw(fqdn string) (Domain, error) {
	return parse(fqdn, false)
}

func parse(fqdn string, strict bool) (Domain, error) {
	fqdn = norm.NFC.String(fqdn)

	suffix, ok := data.ParsePSL(fqdn)
	if !ok {
		return Domain{}, &InvalidDomain{Expected: "a name parseable against the public suffix list", Found: fqdn}
	}

	if strict && !data.ContainsTLD(suffix.TLD) {
		return Domain{}, &InvalidDomain{Expected: "a suffix present in the TLD whitelist", Found: suffix.TLD}
	}

	return Domain{FQDN: fqdn, TLD: suffix.TLD, Domain: suffix.Label, strict: strict}, nil
}

// reparse validates a generator-produced candidate string the same way
// this Domain itself was constructed: strictly, if this Domain was built
// with New, or suffix-only, if it was built with Raw. This is what makes
// Domain::new(Domain::new(x).fqdn) == Domain::new(x) hold for every
// generator, regardless of which constructor the caller started from.
func (d Domain) reparse(candidate string) (Domain, error) {
	return parse(candidate, d.strict)
}

// Ref is a borrowed view over a parsed domain: all three fields are
// sub-slices of one backing buffer and must not outlive it. Cursor hands
// these out from its internal buffer; the next Advance call may
// invalidate them (see Cursor.Advance).
type Ref struct {
	buf []byte

	fqdnStart, fqdnLen   int
	tldStart, tldLen     int
	labelStart, labelLen int
}

// FQDNBytes returns the full FQDN as a slice of the cursor's buffer.
// Valid only until the next Cursor.Advance call.
func (r Ref) FQDNBytes() []byte { return r.buf[r.fqdnStart : r.fqdnStart+r.fqdnLen] }

// TLDBytes returns the suffix as a slice of the cursor's buffer. Valid
// only until the next Cursor.Advance call.
func (r Ref) TLDBytes() []byte { return r.buf[r.tldStart : r.tldStart+r.tldLen] }

// LabelBytes returns the domain label as a slice of the cursor's buffer.
// Valid only until the next Cursor.Advance call.
func (r Ref) LabelBytes() []byte { return r.buf[r.labelStart : r.labelStart+r.labelLen] }

// FQDN copies the FQDN out of the cursor's buffer into an owned string.
func (r Ref) FQDN() string { return string(r.FQDNBytes()) }

// TLD copies the suffix out of the cursor's buffer into an owned string.
func (r Ref) TLD() string { return string(r.TLDBytes()) }

// Label copies the domain label out of the cursor's buffer into an owned
// string.
func (r Ref) Label() string { return string(r.LabelBytes()) }

// ToOwned copies every field out of the cursor's buffer, producing a
// Domain independent of further Advance calls.
func (r Ref) ToOwned() Domain {
	return Domain{FQDN: r.FQDN(), TLD: r.TLD(), Domain: r.Label()}
}

// locate computes the byte offsets of the tld/label sub-slices within
// buf, given buf holds a full FQDN and tld is its already-validated
// suffix. It relies on the structural invariant "[subdomain.]label.tld":
// tld is always the last len(tld) bytes, and label is the run of bytes
// between the dot before that and the previous dot (or the start of
// buf).
func locate(buf []byte, tld string) (tldStart, tldLen, labelStart, labelLen int) {
	tldLen = len(tld)
	tldStart = len(buf) - tldLen

	labelEnd := tldStart - 1 // the dot separating label from tld
	if labelEnd < 0 {
		labelEnd = len(buf)
	}

	if i := bytes.LastIndexByte(buf[:labelEnd], '.'); i >= 0 {
		labelStart = i + 1
	}
	labelLen = labelEnd - labelStart

	return tldStart, tldLen, labelStart, labelLen
}

// registrable returns the registrable portion of fqdn: everything
// from the start of the domain label onward ("label.tld"), dropping any
// leading subdomain labels. Several generators (Addition,
// Hyphenation-TLD-Boundary, Keyword, TLD, Mapped, Vowel-Shuffle) build
// their candidates from the label and tld alone, per spec.
func (d Domain) registrable() string {
	return d.Domain + "." + d.TLD
}
