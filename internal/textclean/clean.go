// Package textclean sanitizes raw translation strings and selects
// target-language (Chinese) candidates from mixed-language lists.
package textclean

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// invisibleRe matches control characters, zero-width spaces/joiners and the BOM.
	invisibleRe  = regexp.MustCompile(`[\x00-\x1f\x7f\x{200b}-\x{200d}\x{feff}]`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
	// noiseRe matches strings made only of digits and placeholder punctuation.
	noiseRe      = regexp.MustCompile(`^[-_=#0-9.]+$`)
)

// segmentSeparators are the enumeration marks a multi-sense string is split on.
const segmentSeparators = "、。，；：／,;/"

// Sanitize strips invisible characters, collapses whitespace and trims s.
// Strings that are only digits or placeholder punctuation once separators are
// removed are treated as noise and yield "".
func Sanitize(s string) string {
	s = invisibleRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = multiSpaceRe.ReplaceAllString(s, " ")
	if IsNoise(s) {
		return ""
	}
	return s
}

// IsNoise reports whether s carries no text once separators and whitespace
// are removed (e.g. "123", "---", "1、2").
func IsNoise(s string) bool {
	base := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(segmentSeparators, r) {
			return -1
		}
		return r
	}, s)
	return noiseRe.MatchString(base)
}

// SanitizeAll sanitizes every value and drops the ones that end up empty.
func SanitizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if c := Sanitize(v); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// SplitSegments splits s on CJK and ASCII enumeration punctuation and returns
// the trimmed non-empty parts.
func SplitSegments(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(segmentSeparators, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ContainsCJK reports whether s has at least one CJK Unified Ideograph (U+4E00..U+9FFF).
func ContainsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

// Dedupe trims values, drops empty ones and removes case-insensitive
// duplicates, keeping the first occurrence.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
