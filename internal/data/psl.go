package data

import (
	"strings"

	"github.com/weppos/publicsuffix-go/publicsuffix"
)

// ParsedSuffix is the result of consulting the public-suffix list: the
// registrable label immediately to the left of the suffix, and the
// suffix itself (which may be multi-label, e.g. "co.uk").
type ParsedSuffix struct {
	Label string
	TLD   string
}

// ParsePSL consults the Mozilla public-suffix list (via
// weppos/publicsuffix-go) and splits fqdn into its registrable label and
// suffix. It reports ok=false when fqdn has no registrable name under the
// list (e.g. it names a bare suffix, or isn't parseable at all).
func ParsePSL(fqdn string) (ParsedSuffix, bool) {
	if fqdn == "" || strings.HasPrefix(fqdn, ".") {
		return ParsedSuffix{}, false
	}

	dn, err := publicsuffix.Parse(strings.ToLower(fqdn))
	if err != nil || dn.SLD == "" || dn.TLD == "" {
		return ParsedSuffix{}, false
	}

	return ParsedSuffix{Label: dn.SLD, TLD: dn.TLD}, true
}
