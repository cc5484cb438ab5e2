// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength is the longest slug Generate returns.
const MaxLength = 100

var (
	// disallowed matches anything that isn't a letter, digit, whitespace,
	// underscore or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9\s_-]`)
	// separators collapses runs of whitespace, underscores and hyphens.
	separators = regexp.MustCompile(`[\s_-]+`)
)

// Generate creates a URL-friendly slug from the given string. Accents are
// folded to their base letter before other characters are dropped. Slugs
// longer than MaxLength are cut at the last word boundary.
// Example: "Café Menu, 2026!" → "cafe-menu-2026"
func Generate(s string) string {
	result := strings.ToLower(fold(s))
	result = disallowed.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	if len(result) > MaxLength {
		cut := result[:MaxLength]
		if result[MaxLength] != '-' {
			if i := strings.LastIndex(cut, "-"); i > 0 {
				cut = cut[:i]
			}
		}
		result = strings.TrimRight(cut, "-")
	}
	return result
}

// Unique returns base, or base-2, base-3 and so on, whichever is the first
// candidate taken reports as free. An empty base becomes "page".
func Unique(base string, taken func(candidate string) (bool, error)) (string, error) {
	if base == "" {
		base = "page"
	}
	candidate := base
	for n := 2; ; n++ {
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		suffix := "-" + strconv.Itoa(n)
		stem := base
		if len(stem)+len(suffix) > MaxLength {
			stem = strings.TrimRight(stem[:MaxLength-len(suffix)], "-")
		}
		candidate = stem + suffix
	}
}

// fold strips combining marks after canonical decomposition ("é" → "e").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
