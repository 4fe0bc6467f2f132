// Package wireformat renders permutation and phonetic-scoring results
// into the engine's output formats (json, csv, list), the way
// internal/formatter renders scan results for the predecessor CLI.
package wireformat

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ducksify/gotwist/pkg/domain"
	"github.com/ducksify/gotwist/pkg/phonetic"
)

// Permutations formats a slice of permutations as format ("json", "csv"
// or "list"), returning "" for an unrecognised format.
func Permutations(perms []domain.Permutation, format string) string {
	switch format {
	case "json":
		return permutationsJSON(perms)
	case "csv":
		return permutationsCSV(perms)
	case "list":
		return permutationsList(perms)
	default:
		return ""
	}
}

func permutationsJSON(perms []domain.Permutation) string {
	data, err := json.MarshalIndent(perms, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

func permutationsCSV(perms []domain.Permutation) string {
	var buf strings.Builder
	writer := csv.NewWriter(&buf)

	writer.Write([]string{"kind", "fqdn", "domain", "tld"})
	for _, p := range perms {
		writer.Write([]string{p.Kind.String(), p.Domain.FQDN, p.Domain.Domain, p.Domain.TLD})
	}

	writer.Flush()
	return buf.String()
}

func permutationsList(perms []domain.Permutation) string {
	var buf strings.Builder
	for _, p := range perms {
		buf.WriteString(p.Domain.FQDN)
		buf.WriteString("\n")
	}
	return buf.String()
}

// PhoneticResults formats a slice of phonetic scoring results as format
// ("json", "csv" or "list"), returning "" for an unrecognised format.
func PhoneticResults(results []phonetic.Result, format string) string {
	switch format {
	case "json":
		return phoneticJSON(results)
	case "csv":
		return phoneticCSV(results)
	case "list":
		return phoneticList(results)
	default:
		return ""
	}
}

func phoneticJSON(results []phonetic.Result) string {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

func phoneticCSV(results []phonetic.Result) string {
	var buf strings.Builder
	writer := csv.NewWriter(&buf)

	writer.Write([]string{"kind", "fqdn", "op", "domain_encoding", "permutation_encoding", "distance"})
	for _, r := range results {
		writer.Write([]string{
			r.Permutation.Kind.String(),
			r.Permutation.Domain.FQDN,
			r.Op,
			r.Data.Encodings.Domain,
			r.Data.Encodings.Permutation,
			strconv.FormatFloat(r.Data.Distance, 'f', 4, 64),
		})
	}

	writer.Flush()
	return buf.String()
}

func phoneticList(results []phonetic.Result) string {
	var buf strings.Builder
	for _, r := range results {
		buf.WriteString(r.Permutation.Domain.FQDN)
		buf.WriteString(" ")
		buf.WriteString(strconv.FormatFloat(r.Data.Distance, 'f', 4, 64))
		buf.WriteString("\n")
	}
	return buf.String()
}
