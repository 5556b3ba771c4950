package lookup

import (
	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/provider"
	"github.com/heartmarshall/wordmate-backend/internal/textclean"
)

// defaultKey is the translation-map bucket for candidates without a part of speech.
const defaultKey = "default"

// translationMap is an insertion-ordered map of normalized POS label to
// deduplicated translations.
type translationMap struct {
	keys   []string
	values map[string][]string
}

func (m *translationMap) set(key string, values []string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = values
}

func (m *translationMap) get(key string) []string {
	return m.values[key]
}

func (m *translationMap) len() int {
	return len(m.keys)
}

// buildTranslationMap groups the provider's own POS senses by normalized label
// and keeps the flat alternatives available under "default".
func buildTranslationMap(entries []provider.POSTranslations, alternatives []string) *translationMap {
	m := &translationMap{values: make(map[string][]string)}

	for _, e := range entries {
		key := domain.NormalizePartOfSpeech(e.PartOfSpeech)
		if key == "" {
			continue
		}
		translations := textclean.Dedupe(textclean.SanitizeAll(e.Translations))
		if len(translations) == 0 {
			continue
		}
		m.set(key, translations)
	}

	if len(alternatives) == 0 {
		return m
	}
	if m.len() == 0 {
		m.set(defaultKey, textclean.Dedupe(alternatives))
		return m
	}

	merged := textclean.Dedupe(append(append([]string{}, m.get(defaultKey)...), alternatives...))
	if len(merged) > 0 {
		m.set(defaultKey, merged)
	}
	return m
}

// posGroups accumulates translations per display POS label, preserving the
// order in which labels and values were first seen.
type posGroups struct {
	labels []string
	seen   map[string]map[string]struct{}
	values map[string][]string
}

func newPOSGroups() *posGroups {
	return &posGroups{
		seen:   make(map[string]map[string]struct{}),
		values: make(map[string][]string),
	}
}

func (g *posGroups) add(label string, items []string) {
	set, ok := g.seen[label]
	if !ok {
		set = make(map[string]struct{})
		g.seen[label] = set
		g.labels = append(g.labels, label)
	}
	for _, item := range items {
		if _, dup := set[item]; dup {
			continue
		}
		set[item] = struct{}{}
		g.values[label] = append(g.values[label], item)
	}
}

func (g *posGroups) empty() bool {
	return len(g.labels) == 0
}

// BuildDefinitions merges dictionary meanings and translation candidates into
// part-of-speech groups carrying only target-language text. Either source may
// be nil. Every returned Definition has at least one translation, and the
// output is fully determined by the inputs.
func BuildDefinitions(dict *provider.DictionaryEntry, trans *provider.TranslationResult) []domain.Definition {
	var (
		translationText string
		alternatives    []string
		posEntries      []provider.POSTranslations
	)
	if trans != nil {
		translationText = textclean.Sanitize(trans.WordTranslation)
		alternatives = nonEmpty(trans.Translations)
		posEntries = trans.Dictionary
	}

	tmap := buildTranslationMap(posEntries, alternatives)
	groups := newPOSGroups()

	if dict != nil {
		for _, meaning := range dict.Meanings {
			key := domain.NormalizePartOfSpeech(meaning.PartOfSpeech)

			candidates := make([]string, 0, 16)
			candidates = append(candidates, tmap.get(key)...)
			candidates = append(candidates, tmap.get(defaultKey)...)
			candidates = append(candidates, alternatives...)
			candidates = append(candidates, translationText)

			selected := textclean.SelectChinese(candidates, translationText)
			if len(selected) == 0 {
				continue
			}
			groups.add(meaning.PartOfSpeech, selected)
		}
	}

	for _, key := range tmap.keys {
		if key == defaultKey {
			continue
		}
		selected := textclean.SelectChinese(tmap.get(key), translationText)
		if len(selected) == 0 {
			continue
		}
		groups.add(key, selected)
	}

	if groups.empty() {
		source := alternatives
		if len(source) == 0 && translationText != "" {
			source = []string{translationText}
		}
		fallback := textclean.SelectChinese(source, translationText)
		if len(fallback) == 0 {
			return []domain.Definition{}
		}
		return []domain.Definition{newDefinition("", fallback)}
	}

	defs := make([]domain.Definition, 0, len(groups.labels))
	for _, label := range groups.labels {
		values := groups.values[label]
		if len(values) == 0 {
			continue
		}
		defs = append(defs, newDefinition(label, values))
	}
	return defs
}

func newDefinition(pos string, translations []string) domain.Definition {
	return domain.Definition{
		PartOfSpeech: pos,
		Translation:  translations[0],
		Translations: translations,
		Synonyms:     []string{},
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
