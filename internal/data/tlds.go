package data

import "sort"

// TLDs is the baked-in, sorted TLD whitelist consulted by strict-mode
// domain parsing. rawTLDs (tlds_generated.go) is already sorted by the
// generator; TLDs re-asserts that invariant defensively so a hand-edited
// data file can never silently break the binary search below.
var TLDs = sortedCopy(rawTLDs)

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

// ContainsTLD reports whether suffix appears in the TLD whitelist. suffix
// is assumed already lowercase; comparisons are byte-exact.
func ContainsTLD(suffix string) bool {
	i := sort.SearchStrings(TLDs, suffix)
	return i < len(TLDs) && TLDs[i] == suffix
}
