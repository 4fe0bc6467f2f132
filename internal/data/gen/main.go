// Command gen reads the plain-text data files under data/ and emits the
// sorted, Punycode-normalised static tables compiled into the engine.
//
// Run from the repository root with `go run ./internal/data/gen` (the
// input and output paths below are relative to it); the checked-in
// tlds_generated.go / keywords_generated.go are its output, hand-verified
// rather than regenerated by the toolchain in this environment.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/net/idna"
)

const tmplText = `// Code generated by internal/data/gen; DO NOT EDIT.

package data

// {{.Name}} is a sorted, Punycode-normalised static table baked in at
// generation time from data/{{.Source}}.
var {{.Name}} = []string{
{{range .Values}}	{{printf "%q" .}},
{{end}}}
`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	tlds, err := readLines("data/tlds.txt")
	if err != nil {
		return fmt.Errorf("reading tlds: %w", err)
	}
	tlds, err = normalizeASCII(tlds)
	if err != nil {
		return fmt.Errorf("normalizing tlds: %w", err)
	}
	sort.Strings(tlds)
	if err := writeTable("internal/data/tlds_generated.go", "rawTLDs", "tlds.txt", tlds); err != nil {
		return err
	}

	keywords, err := readLines("data/keywords.txt")
	if err != nil {
		return fmt.Errorf("reading keywords: %w", err)
	}
	keywords, err = normalizeASCII(keywords)
	if err != nil {
		return fmt.Errorf("normalizing keywords: %w", err)
	}
	sort.Strings(keywords)
	if err := writeTable("internal/data/keywords_generated.go", "Keywords", "keywords.txt", keywords); err != nil {
		return err
	}

	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, strings.ToLower(line))
	}
	return lines, scanner.Err()
}

// normalizeASCII Punycode-encodes any non-ASCII entry so the emitted table
// only ever holds A-labels, matching spec.md's "converted to Punycode when
// non-ASCII" build step.
func normalizeASCII(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if isASCII(v) {
			out = append(out, v)
			continue
		}
		labels := strings.Split(v, ".")
		for i, label := range labels {
			a, err := idna.ToASCII(label)
			if err != nil {
				return nil, fmt.Errorf("punycode-encoding %q: %w", label, err)
			}
			labels[i] = a
		}
		out = append(out, strings.Join(labels, "."))
	}
	return out, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func writeTable(path, name, source string, values []string) error {
	tmpl := template.Must(template.New("table").Parse(tmplText))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, struct {
		Name   string
		Source string
		Values []string
	}{Name: name, Source: source, Values: values})
}
