// Package phonetic scores how similarly two domain labels sound, using
// a Metaphone-family phonetic encoding paired with normalised
// Levenshtein distance over the encoded forms.
package phonetic

import "strings"

// Encoder produces a dual (primary, alternate) phonetic encoding for a
// label, in the manner of Metaphone 3: most letters collapse to a
// single phonetic code, but a handful of digraphs and "soft" consonants
// are ambiguous enough in English that two parallel encodings are kept,
// the way Double Metaphone keeps a primary and a secondary code for the
// same reason. No third-party Metaphone implementation exists in the
// dependency set this engine otherwise draws from, so this encoder is
// hand-written against the standard library; see DESIGN.md.
type Encoder struct{}

// NewEncoder returns a ready-to-use Encoder. Encoders are stateless and
// safe for concurrent use.
func NewEncoder() Encoder { return Encoder{} }

// Encode returns the (primary, alternate) phonetic codes for label.
// Both codes are uppercase and contain no vowels except a label's
// leading vowel, which is preserved to avoid collapsing unrelated
// vowel-led words (e.g. "apple" and "epic") onto the same code.
func (Encoder) Encode(label string) (primary, alternate string) {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return "", ""
	}

	var p, a strings.Builder
	n := len(s)

	isVowel := func(b byte) bool {
		switch b {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return true
		}
		return false
	}

	prev := byte(0)
	for i := 0; i < n; i++ {
		c := s[i]
		var next byte
		if i+1 < n {
			next = s[i+1]
		}

		if c == prev && c != 'c' {
			// Collapse doubled letters (except doubled "c", whose second
			// letter is coded again by the "c" case below) to their
			// single-letter code.
			continue
		}

		switch {
		case isVowel(c):
			if i == 0 {
				p.WriteByte(upper(c))
				a.WriteByte(upper(c))
			}
		case c == 'p' && next == 'h':
			p.WriteByte('F')
			a.WriteByte('F')
			i++
		case c == 'g' && next == 'h':
			p.WriteByte('F')
			a.WriteByte('F')
			i++
		case c == 'c' && next == 'k':
			p.WriteByte('K')
			a.WriteByte('K')
			i++
		case c == 's' && next == 'h':
			p.WriteByte('X')
			a.WriteByte('X')
			i++
		case c == 'c' && next == 'h':
			p.WriteByte('X')
			a.WriteByte('X')
			i++
		case c == 't' && next == 'h':
			p.WriteByte('0')
			a.WriteByte('T')
			i++
		case c == 'w' && isVowel(next):
			p.WriteByte('W')
			a.WriteByte('W')
		case c == 'w' || c == 'h':
			// silent outside the digraphs handled above
		case c == 'c':
			if isFront(next) {
				p.WriteByte('S')
				a.WriteByte('S')
			} else {
				p.WriteByte('K')
				a.WriteByte('K')
			}
		case c == 'g':
			if isFront(next) {
				p.WriteByte('J')
				a.WriteByte('K')
			} else {
				p.WriteByte('K')
				a.WriteByte('K')
			}
		case c == 'q':
			p.WriteByte('K')
			a.WriteByte('K')
		case c == 'x':
			p.WriteString("KS")
			a.WriteString("KS")
		case c == 'z':
			p.WriteByte('S')
			a.WriteByte('S')
		case c == 'v':
			p.WriteByte('F')
			a.WriteByte('F')
		case c == 'j':
			p.WriteByte('J')
			a.WriteByte('J')
		default:
			up := upper(c)
			p.WriteByte(up)
			a.WriteByte(up)
		}

		prev = c
	}

	return p.String(), a.String()
}

func isFront(b byte) bool {
	return b == 'e' || b == 'i' || b == 'y'
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
