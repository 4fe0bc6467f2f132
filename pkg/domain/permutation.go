package domain

// Kind tags the generator family that produced a Permutation. The
// seventeen values are a closed set; String and MarshalJSON render them
// in the stable wire form documented in spec.md §6.
type Kind int

const (
	Addition Kind = iota
	Bitsquatting
	Hyphenation
	HyphenationTLDBoundary
	Insertion
	Omission
	Repetition
	Replacement
	Subdomain
	Transposition
	VowelSwap
	VowelShuffle
	DoubleVowelInsertion
	Keyword
	TLD
	Mapped
	Homoglyph
)

var kindNames = [...]string{
	"Addition",
	"Bitsquatting",
	"Hyphenation",
	"HyphenationTLDBoundary",
	"Insertion",
	"Omission",
	"Repetition",
	"Replacement",
	"Subdomain",
	"Transposition",
	"VowelSwap",
	"VowelShuffle",
	"DoubleVowelInsertion",
	"Keyword",
	"TLD",
	"Mapped",
	"Homoglyph",
}

// String renders the Kind's wire name ("Addition", "Mapped", ...).
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// MarshalJSON renders a Kind as its wire name, e.g. "Mapped".
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON parses a Kind from its wire name.
func (k *Kind) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	for i, name := range kindNames {
		if name == s {
			*k = Kind(i)
			return nil
		}
	}
	return &InvalidDomain{Expected: "a known permutation kind", Found: s}
}

// generatorOrder is the fixed order in which All/VisitAll/StreamAll chain
// the seventeen generators (spec.md §4.1).
var generatorOrder = [...]Kind{
	Addition,
	Bitsquatting,
	Hyphenation,
	HyphenationTLDBoundary,
	Insertion,
	Omission,
	Repetition,
	Replacement,
	Subdomain,
	Transposition,
	VowelSwap,
	VowelShuffle,
	DoubleVowelInsertion,
	Keyword,
	TLD,
	Mapped,
	Homoglyph,
}

// Permutation pairs a generated Domain with the Kind of generator that
// produced it. Equality and hashing (via comparison/map keys, since
// Permutation is comparable) use both fields.
type Permutation struct {
	Domain Domain `json:"domain"`
	Kind   Kind   `json:"kind"`
}

// PermutationRef is the allocation-free counterpart to Permutation,
// yielded by Cursor.Current: its Domain field borrows from the cursor's
// internal buffer and is valid only until the next Advance call.
type PermutationRef struct {
	Domain Ref
	Kind   Kind
}

// ToOwned copies the borrowed domain out of the cursor's buffer,
// producing a Permutation independent of further Advance calls.
func (r PermutationRef) ToOwned() Permutation {
	return Permutation{Domain: r.Domain.ToOwned(), Kind: r.Kind}
}
