package domain

import "strings"

// Filter decides whether an owned, fully-materialised candidate Domain
// should be kept. All() and VisitAll() apply a Filter to every candidate
// before it is yielded. TryMatches mirrors Matches for filters whose
// decision can fail (e.g. a future network-backed filter); none of the
// filters in this package need it, but the contract is kept symmetric
// with FilterRef.
type Filter interface {
	Matches(d Domain) bool
	TryMatches(d Domain) (bool, error)
}

// FilterRef is the allocation-free counterpart to Filter: it decides
// whether a borrowed Ref should be kept, without forcing the cursor to
// copy the candidate out of its buffer first. Cursor.Advance applies a
// FilterRef internally, skipping non-matching candidates without
// surfacing them to the caller.
type FilterRef interface {
	MatchesRef(r Ref) bool
	TryMatchesRef(r Ref) (bool, error)
}

// Permissive keeps every candidate. It implements both Filter and
// FilterRef, so it is the default filter for both the materialising and
// the streaming API.
type Permissive struct{}

func (Permissive) Matches(Domain) bool { return true }
func (Permissive) TryMatches(Domain) (bool, error) { return true, nil }
func (Permissive) MatchesRef(Ref) bool { return true }
func (Permissive) TryMatchesRef(Ref) (bool, error) { return true, nil }

// substringFilter matches candidates whose FQDN contains one of a fixed
// set of substrings.
type substringFilter struct {
	needles []string
}

// Substring builds a Filter/FilterRef that keeps a candidate iff its
// FQDN contains at least one of needles.
func Substring(needles ...string) substringFilter {
	return substringFilter{needles: needles}
}

func (f substringFilter) Matches(d Domain) bool {
	return f.containsAny(d.FQDN)
}

func (f substringFilter) TryMatches(d Domain) (bool, error) {
	return f.Matches(d), nil
}

func (f substringFilter) MatchesRef(r Ref) bool {
	return f.containsAnyBytes(r.FQDNBytes())
}

func (f substringFilter) TryMatchesRef(r Ref) (bool, error) {
	return f.MatchesRef(r), nil
}

func (f substringFilter) containsAny(fqdn string) bool {
	for _, n := range f.needles {
		if strings.Contains(fqdn, n) {
			return true
		}
	}
	return false
}

func (f substringFilter) containsAnyBytes(fqdn []byte) bool {
	for _, n := range f.needles {
		if strings.Contains(string(fqdn), n) {
			return true
		}
	}
	return false
}
