package textclean

import "strings"

// SelectChinese picks the Chinese candidates out of values.
//
// Every value is split into segments (falling back to the whole trimmed value
// when splitting yields nothing), segments are deduplicated case-insensitively
// and noise segments are dropped. Segments containing CJK are returned when
// any exist. Otherwise the fallback is tried the same way, then the fallback
// as a whole if it contains CJK, and finally the unfiltered segment list, so
// usable text is never silently discarded.
func SelectChinese(values []string, fallback string) []string {
	var collected []string
	for _, v := range values {
		text := strings.TrimSpace(v)
		if text == "" {
			continue
		}
		if segments := SplitSegments(text); len(segments) > 0 {
			collected = append(collected, segments...)
		} else {
			collected = append(collected, text)
		}
	}

	unique := dropNoise(Dedupe(collected))
	if chinese := filterCJK(unique); len(chinese) > 0 {
		return chinese
	}

	fallback = strings.TrimSpace(fallback)
	if fallback != "" {
		if chinese := filterCJK(dropNoise(Dedupe(SplitSegments(fallback)))); len(chinese) > 0 {
			return chinese
		}
		if ContainsCJK(fallback) {
			return []string{fallback}
		}
	}

	return unique
}

func filterCJK(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if ContainsCJK(v) {
			out = append(out, v)
		}
	}
	return out
}

func dropNoise(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if !IsNoise(v) {
			out = append(out, v)
		}
	}
	return out
}
