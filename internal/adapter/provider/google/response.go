package google

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/wordmate-backend/internal/provider"
	"github.com/heartmarshall/wordmate-backend/internal/textclean"
)

// parseResponse decodes the nested-array payload of translate_a/single.
//
//	[0] translated segments: [["译文", "source", ...], ...]
//	[1] dictionary groups:   [["noun", ["苹果", ...], [["苹果", ["apple"], ...], ...], ...], ...]
//
// Anything that does not match the expected shape is skipped.
func parseResponse(body []byte) (textResult, error) {
	var root []json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return textResult{}, fmt.Errorf("decode json: %w", err)
	}

	res := textResult{
		translations: []string{},
		dictionary:   []provider.POSTranslations{},
	}

	if len(root) > 0 {
		var segments []json.RawMessage
		if json.Unmarshal(root[0], &segments) == nil {
			for _, raw := range segments {
				var segment []json.RawMessage
				if json.Unmarshal(raw, &segment) != nil || len(segment) == 0 {
					continue
				}
				if v := textclean.Sanitize(asString(segment[0])); v != "" {
					res.translations = append(res.translations, v)
				}
			}
		}
	}
	if len(res.translations) > 0 {
		res.primary = res.translations[0]
	}

	if len(root) > 1 {
		res.dictionary = parseDictionary(root[1])
	}

	return res, nil
}

func parseDictionary(raw json.RawMessage) []provider.POSTranslations {
	out := []provider.POSTranslations{}

	var groups []json.RawMessage
	if json.Unmarshal(raw, &groups) != nil {
		return out
	}

	for _, g := range groups {
		var group []json.RawMessage
		if json.Unmarshal(g, &group) != nil || len(group) == 0 {
			continue
		}

		pos := asString(group[0])
		if pos == "" {
			continue
		}

		var collected []string
		if len(group) > 1 {
			var direct []json.RawMessage
			if json.Unmarshal(group[1], &direct) == nil {
				for _, d := range direct {
					collected = append(collected, textclean.Sanitize(asString(d)))
				}
			}
		}
		if len(group) > 2 {
			var detailed []json.RawMessage
			if json.Unmarshal(group[2], &detailed) == nil {
				for _, d := range detailed {
					var item []json.RawMessage
					if json.Unmarshal(d, &item) != nil || len(item) == 0 {
						continue
					}
					collected = append(collected, textclean.Sanitize(asString(item[0])))
				}
			}
		}

		translations := textclean.Dedupe(collected)
		if len(translations) == 0 {
			continue
		}
		out = append(out, provider.POSTranslations{PartOfSpeech: pos, Translations: translations})
	}

	return out
}

// asString returns the JSON string value of raw, or "" for any other type.
func asString(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
