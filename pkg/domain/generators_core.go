package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/ducksify/gotwist/internal/data"
)

// split returns the subdomain prefix (including its trailing dot, or
// "" if there is none), the registrable label, and the suffix of d's
// FQDN. Label-based generators rebuild a candidate FQDN as
// prefix+newLabel+"."+tld, leaving any subdomain and the suffix intact.
func (d Domain) split() (prefix, label, tld string) {
	tld = d.TLD
	label = d.Domain
	suffixLen := len(label) + 1 + len(tld)
	cut := len(d.FQDN) - suffixLen
	if cut < 0 {
		cut = 0
	}
	return d.FQDN[:cut], label, tld
}

func assembleLabel(prefix, label, tld string) string {
	return prefix + label + "." + tld
}

// additionCandidates appends each lowercase ASCII letter to the
// registrable label.
func (d Domain) additionCandidates() []string {
	prefix, label, tld := d.split()
	out := make([]string, 0, len(data.ASCIILower))
	for _, c := range data.ASCIILower {
		out = append(out, assembleLabel(prefix, label+string(c), tld))
	}
	return out
}

// bitsquattingCandidates flips each of the eight bits of every byte of
// the FQDN, and for every flip that lands on a digit, lowercase letter
// or hyphen, inserts that byte at every boundary index in [1, len(fqdn)).
func (d Domain) bitsquattingCandidates() []string {
	fqdn := d.FQDN
	masks := [8]byte{1, 2, 4, 8, 16, 32, 64, 128}
	var out []string
	for i := 0; i < len(fqdn); i++ {
		for _, mask := range masks {
			flipped := fqdn[i] ^ mask
			if !isBitsquattingChar(flipped) {
				continue
			}
			for b := 1; b < len(fqdn); b++ {
				if !utf8.RuneStart(fqdn[b]) {
					continue
				}
				out = append(out, fqdn[:b]+string(flipped)+fqdn[b:])
			}
		}
	}
	return out
}

func isBitsquattingChar(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || b == '-'
}

// hyphenationCandidates inserts a hyphen before every interior character
// of the FQDN (skipping the very first character), except next to a dot
// or directly after a hyphen.
func (d Domain) hyphenationCandidates() []string {
	fqdn := d.FQDN
	out := make([]string, 0, len(fqdn))
	for i := 1; i < len(fqdn); i++ {
		if !utf8.RuneStart(fqdn[i]) || fqdn[i] == '.' || fqdn[i-1] == '.' || fqdn[i-1] == '-' {
			continue
		}
		out = append(out, fqdn[:i]+"-"+fqdn[i:])
	}
	return out
}

// hyphenationTLDBoundaryCandidates joins the registrable label and a
// multi-label suffix with a hyphen in place of the dot at their
// boundary, e.g. "abcd.co.uk" -> "abcd-co.uk". Single-label suffixes
// have no internal dot to replace, so they yield nothing.
func (d Domain) hyphenationTLDBoundaryCandidates() []string {
	prefix, label, tld := d.split()
	if !strings.Contains(tld, ".") {
		return nil
	}
	return []string{prefix + label + "-" + tld}
}

// insertionCandidates inserts, at every interior byte index of the FQDN
// (skipping the first and last), each of that byte's keyboard
// neighbours in every known layout.
func (d Domain) insertionCandidates() []string {
	fqdn := d.FQDN
	var out []string
	for i := 1; i < len(fqdn)-1; i++ {
		c := rune(fqdn[i])
		for _, layout := range data.KeyboardLayouts {
			neighbours, ok := layout[c]
			if !ok {
				continue
			}
			for _, n := range neighbours {
				out = append(out, fqdn[:i]+string(n)+fqdn[i:])
			}
		}
	}
	return out
}

// omissionCandidates removes each rune of the FQDN in turn.
func (d Domain) omissionCandidates() []string {
	fqdn := d.FQDN
	var out []string
	for i := 0; i < len(fqdn); {
		_, size := utf8.DecodeRuneInString(fqdn[i:])
		out = append(out, fqdn[:i]+fqdn[i+size:])
		i += size
	}
	return out
}

// repetitionCandidates duplicates each alphabetic byte of the FQDN.
func (d Domain) repetitionCandidates() []string {
	fqdn := d.FQDN
	var out []string
	for i := 0; i < len(fqdn); i++ {
		c := fqdn[i]
		if !isAlpha(c) {
			continue
		}
		out = append(out, fqdn[:i+1]+fqdn[i:])
	}
	return out
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// replacementCandidates replaces every interior byte of the FQDN
// (skipping the first and last) with each of its keyboard neighbours in
// every known layout.
func (d Domain) replacementCandidates() []string {
	fqdn := d.FQDN
	var out []string
	for i := 1; i < len(fqdn)-1; i++ {
		c := rune(fqdn[i])
		for _, layout := range data.KeyboardLayouts {
			neighbours, ok := layout[c]
			if !ok {
				continue
			}
			for _, n := range neighbours {
				out = append(out, fqdn[:i]+string(n)+fqdn[i+1:])
			}
		}
	}
	return out
}

// subdomainCandidates inserts a new label boundary (a dot) at every
// interior character boundary of the FQDN that isn't already adjacent to
// a dot or hyphen, and that leaves at least four bytes for the remaining
// suffix-ward portion.
func (d Domain) subdomainCandidates() []string {
	fqdn := d.FQDN
	var out []string
	for i := 1; i < len(fqdn)-3; i++ {
		if !utf8.RuneStart(fqdn[i]) || fqdn[i-1] == '-' || fqdn[i-1] == '.' || fqdn[i] == '.' || fqdn[i] == '-' {
			continue
		}
		out = append(out, fqdn[:i]+"."+fqdn[i:])
	}
	return out
}

// transpositionCandidates swaps every pair of adjacent, distinct
// single-byte characters of the FQDN; pairs involving a multi-byte
// character are skipped.
func (d Domain) transpositionCandidates() []string {
	fqdn := d.FQDN
	var out []string
	for i := 0; i < len(fqdn)-1; i++ {
		if fqdn[i] == fqdn[i+1] || fqdn[i] >= utf8.RuneSelf || fqdn[i+1] >= utf8.RuneSelf {
			continue
		}
		out = append(out, fqdn[:i]+string(fqdn[i+1])+string(fqdn[i])+fqdn[i+2:])
	}
	return out
}

// vowelSwapCandidates replaces every vowel of the FQDN with each other
// vowel, never with itself.
func (d Domain) vowelSwapCandidates() []string {
	fqdn := d.FQDN
	var out []string
	for i := 0; i < len(fqdn); i++ {
		c := rune(fqdn[i])
		if !isVowel(c) {
			continue
		}
		for _, v := range data.Vowels {
			if v == c {
				continue
			}
			out = append(out, fqdn[:i]+string(v)+fqdn[i+1:])
		}
	}
	return out
}

func isVowel(c rune) bool {
	for _, v := range data.Vowels {
		if v == c {
			return true
		}
	}
	return false
}

// vowelShuffleCandidates enumerates the full cartesian product of
// VOWELS across the first VowelShuffleCeiling vowel positions of the
// registrable label, including the identity assignment, via a
// little-endian base-5 counter over those positions. Labels with no
// vowels yield nothing.
func (d Domain) vowelShuffleCandidates() []string {
	return d.vowelShuffleCandidatesCeiling(data.VowelShuffleCeiling)
}

func (d Domain) vowelShuffleCandidatesCeiling(ceiling int) []string {
	prefix, label, tld := d.split()

	positions := vowelPositions(label)
	if len(positions) == 0 {
		return nil
	}
	if ceiling > 0 && len(positions) > ceiling {
		positions = positions[:ceiling]
	}

	n := len(positions)
	base := len(data.Vowels)
	total := 1
	for i := 0; i < n; i++ {
		total *= base
	}

	counter := make([]int, n)
	out := make([]string, 0, total)
	for combo := 0; combo < total; combo++ {
		rb := []byte(label)
		for i, pos := range positions {
			rb[pos] = byte(data.Vowels[counter[i]])
		}
		out = append(out, assembleLabel(prefix, string(rb), tld))

		for i := 0; i < n; i++ {
			counter[i]++
			if counter[i] < base {
				break
			}
			counter[i] = 0
		}
	}

	return out
}

func vowelPositions(label string) []int {
	var positions []int
	for i := 0; i < len(label); i++ {
		if isVowel(rune(label[i])) {
			positions = append(positions, i)
		}
	}
	return positions
}

// doubleVowelInsertionCandidates finds every adjacent vowel pair in the
// registrable label and inserts each lowercase ASCII letter between the
// two vowels of the pair.
func (d Domain) doubleVowelInsertionCandidates() []string {
	prefix, label, tld := d.split()
	var out []string
	for i := 0; i+1 < len(label); i++ {
		a, b := rune(label[i]), rune(label[i+1])
		if !isVowel(a) || !isVowel(b) {
			continue
		}
		for _, c := range data.ASCIILower {
			newLabel := label[:i+1] + string(c) + label[i+1:]
			out = append(out, assembleLabel(prefix, newLabel, tld))
		}
	}
	return out
}

// keywordCandidates pairs the registrable label with every baked-in
// brand-adjacent keyword, both concatenated directly and joined with a
// hyphen, in both orders, emitted as {domain}-{w}, {domain}{w},
// {w}-{domain}, {w}{domain}.
func (d Domain) keywordCandidates() []string {
	prefix, label, tld := d.split()
	out := make([]string, 0, len(data.Keywords)*4)
	for _, kw := range data.Keywords {
		out = append(out,
			assembleLabel(prefix, label+"-"+kw, tld),
			assembleLabel(prefix, label+kw, tld),
			assembleLabel(prefix, kw+"-"+label, tld),
			assembleLabel(prefix, kw+label, tld),
		)
	}
	return out
}

// tldCandidates replaces the suffix with every other whitelisted TLD.
func (d Domain) tldCandidates() []string {
	prefix, label, tld := d.split()
	out := make([]string, 0, len(data.TLDs))
	for _, t := range data.TLDs {
		if t == tld {
			continue
		}
		out = append(out, assembleLabel(prefix, label, t))
	}
	return out
}

// mappedCandidates replaces every occurrence of a look-alike substring
// in the registrable label with each of its mapped replacement values,
// consulting the substitution table in its fixed order.
func (d Domain) mappedCandidates() []string {
	prefix, label, tld := d.split()
	var out []string
	for _, entry := range data.MappedValues {
		if !strings.Contains(label, entry.Key) {
			continue
		}
		for _, v := range entry.Values {
			newLabel := strings.ReplaceAll(label, entry.Key, v)
			out = append(out, assembleLabel(prefix, newLabel, tld))
		}
	}
	return out
}

// homoglyphCandidates replaces every rune of the FQDN that has a known
// confusable with each of its visually similar glyphs.
func (d Domain) homoglyphCandidates() []string {
	fqdn := d.FQDN
	var out []string
	for i := 0; i < len(fqdn); {
		r, size := utf8.DecodeRuneInString(fqdn[i:])
		glyphs, ok := data.Homoglyphs[r]
		if ok {
			for _, g := range glyphs {
				out = append(out, fqdn[:i]+string(g)+fqdn[i+size:])
			}
		}
		i += size
	}
	return out
}
