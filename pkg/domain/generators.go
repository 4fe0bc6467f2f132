package domain

import "iter"

// candidates returns the raw, unvalidated FQDN strings a given Kind's
// generator produces for d. Every exported generator method and the
// aggregate All/VisitAll walk funnel through here, so the candidate
// logic itself lives in exactly one place (generators_core.go).
func (d Domain) candidates(k Kind) []string {
	switch k {
	case Addition:
		return d.additionCandidates()
	case Bitsquatting:
		return d.bitsquattingCandidates()
	case Hyphenation:
		return d.hyphenationCandidates()
	case HyphenationTLDBoundary:
		return d.hyphenationTLDBoundaryCandidates()
	case Insertion:
		return d.insertionCandidates()
	case Omission:
		return d.omissionCandidates()
	case Repetition:
		return d.repetitionCandidates()
	case Replacement:
		return d.replacementCandidates()
	case Subdomain:
		return d.subdomainCandidates()
	case Transposition:
		return d.transpositionCandidates()
	case VowelSwap:
		return d.vowelSwapCandidates()
	case VowelShuffle:
		return d.vowelShuffleCandidates()
	case DoubleVowelInsertion:
		return d.doubleVowelInsertionCandidates()
	case Keyword:
		return d.keywordCandidates()
	case TLD:
		return d.tldCandidates()
	case Mapped:
		return d.mappedCandidates()
	case Homoglyph:
		return d.homoglyphCandidates()
	default:
		return nil
	}
}

// generate validates every raw candidate for kind against filter,
// yielding a Permutation for each one that both reparses successfully
// and passes the filter. Invalid or filtered-out candidates are skipped
// silently, the same way a failed network probe would be skipped by a
// filter rather than surfaced as an error.
func (d Domain) generate(kind Kind, filter Filter) iter.Seq[Permutation] {
	return d.generateList(kind, filter, d.candidates(kind))
}

func (d Domain) generateList(kind Kind, filter Filter, raw []string) iter.Seq[Permutation] {
	return func(yield func(Permutation) bool) {
		for _, candidate := range raw {
			nd, err := d.reparse(candidate)
			if err != nil {
				continue
			}
			if !filter.Matches(nd) {
				continue
			}
			if !yield(Permutation{Domain: nd, Kind: kind}) {
				return
			}
		}
	}
}

// Addition appends each lowercase letter to the registrable label,
// e.g. "example.com" -> "examplea.com", ..., "examplez.com".
func (d Domain) Addition(filter Filter) iter.Seq[Permutation] { return d.generate(Addition, filter) }

// Bitsquatting flips single bits of the FQDN's bytes, simulating
// hardware memory errors, and inserts each flipped byte that is a digit,
// lowercase letter or hyphen at every interior character boundary.
func (d Domain) Bitsquatting(filter Filter) iter.Seq[Permutation] {
	return d.generate(Bitsquatting, filter)
}

// Hyphenation inserts a hyphen at every interior character boundary of
// the FQDN, except next to a dot or directly after a hyphen.
func (d Domain) Hyphenation(filter Filter) iter.Seq[Permutation] {
	return d.generate(Hyphenation, filter)
}

// HyphenationTLDBoundary replaces the dot between the registrable label
// and a multi-label suffix with a hyphen ("abcd.co.uk" -> "abcd-co.uk").
// A single-label suffix yields nothing.
func (d Domain) HyphenationTLDBoundary(filter Filter) iter.Seq[Permutation] {
	return d.generate(HyphenationTLDBoundary, filter)
}

// Insertion inserts a keyboard-adjacent character next to every
// interior character of the FQDN.
func (d Domain) Insertion(filter Filter) iter.Seq[Permutation] { return d.generate(Insertion, filter) }

// Omission removes each character of the FQDN in turn.
func (d Domain) Omission(filter Filter) iter.Seq[Permutation] { return d.generate(Omission, filter) }

// Repetition duplicates each alphabetic character of the FQDN.
func (d Domain) Repetition(filter Filter) iter.Seq[Permutation] {
	return d.generate(Repetition, filter)
}

// Replacement substitutes each interior character of the FQDN with a
// keyboard-adjacent character.
func (d Domain) Replacement(filter Filter) iter.Seq[Permutation] {
	return d.generate(Replacement, filter)
}

// Subdomain inserts a new label boundary into the FQDN.
func (d Domain) Subdomain(filter Filter) iter.Seq[Permutation] { return d.generate(Subdomain, filter) }

// Transposition swaps each pair of adjacent, distinct characters of the
// FQDN.
func (d Domain) Transposition(filter Filter) iter.Seq[Permutation] {
	return d.generate(Transposition, filter)
}

// VowelSwap replaces each vowel of the FQDN with every other vowel.
func (d Domain) VowelSwap(filter Filter) iter.Seq[Permutation] { return d.generate(VowelSwap, filter) }

// VowelShuffle rearranges and substitutes the vowels of the registrable
// label, capped to the first ceiling vowel positions (no cap when
// ceiling <= 0).
func (d Domain) VowelShuffle(ceiling int, filter Filter) iter.Seq[Permutation] {
	return d.generateList(VowelShuffle, filter, d.vowelShuffleCandidatesCeiling(ceiling))
}

// DoubleVowelInsertion inserts each lowercase ASCII letter between the
// two vowels of every adjacent vowel pair in the registrable label.
func (d Domain) DoubleVowelInsertion(filter Filter) iter.Seq[Permutation] {
	return d.generate(DoubleVowelInsertion, filter)
}

// Keyword pairs the registrable label with every brand-adjacent
// keyword, concatenated and hyphenated, in both orders.
func (d Domain) Keyword(filter Filter) iter.Seq[Permutation] { return d.generate(Keyword, filter) }

// TLD replaces the suffix with every other whitelisted TLD.
func (d Domain) TLD(filter Filter) iter.Seq[Permutation] { return d.generate(TLD, filter) }

// Mapped replaces look-alike substrings of the registrable label (rn/m,
// vv/w, o/0, ...) with their mapped equivalents.
func (d Domain) Mapped(filter Filter) iter.Seq[Permutation] { return d.generate(Mapped, filter) }

// Homoglyph replaces characters of the FQDN with visually confusable
// Unicode glyphs.
func (d Domain) Homoglyph(filter Filter) iter.Seq[Permutation] { return d.generate(Homoglyph, filter) }

// All chains every generator, in the fixed order documented in
// spec.md §4.1, keeping only candidates that pass filter.
func (d Domain) All(filter Filter) iter.Seq[Permutation] {
	return func(yield func(Permutation) bool) {
		for _, kind := range generatorOrder {
			for p := range d.generate(kind, filter) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// VisitAll calls visit once for every permutation of d across every
// generator, in the same order as All. It returns early if visit
// returns false.
func (d Domain) VisitAll(filter Filter, visit func(Permutation) bool) {
	for p := range d.All(filter) {
		if !visit(p) {
			return
		}
	}
}

// VisitAllWithBuf walks the same sequence as All, in the same order,
// but through a Cursor built on buf: every visited value is a borrowed
// Ref rather than an owned Permutation; the allocations that remain are
// those Cursor makes (see Cursor). It returns early if visit returns
// false.
func (d Domain) VisitAllWithBuf(filterRef FilterRef, buf []byte, visit func(PermutationRef) bool) {
	c := NewCursor(d, filterRef, buf)
	for c.Advance() {
		r, ok := c.Current()
		if !ok {
			return
		}
		if !visit(r) {
			return
		}
	}
}

// StreamAll returns a Cursor over the same sequence as All, in the same
// order. The PermutationRef returned by Cursor.Current is valid only
// until the next Advance call.
func (d Domain) StreamAll(filterRef FilterRef) *Cursor {
	return NewCursor(d, filterRef, nil)
}
