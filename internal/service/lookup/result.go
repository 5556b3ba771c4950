package lookup

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/provider"
	"github.com/heartmarshall/wordmate-backend/internal/textclean"
)

const (
	maxExamples        = 5
	missingTranslation = "未找到释义"
)

func (s *Service) assemble(
	word, contextText string,
	req domain.LookupRequest,
	settings domain.Settings,
	dict *provider.DictionaryEntry,
	trans *provider.TranslationResult,
) *domain.LookupResult {
	definitions := BuildDefinitions(dict, trans)

	var wordTranslation, contextTranslation, providerPhonetic string
	translations := []string{}
	grammar := []domain.GrammarTip{}
	providerName := settings.TranslationProvider.String()
	if trans != nil {
		wordTranslation = textclean.Sanitize(trans.WordTranslation)
		contextTranslation = textclean.Sanitize(trans.ContextTranslation)
		translations = nonEmpty(trans.Translations)
		if len(trans.GrammarTips) > 0 {
			grammar = trans.GrammarTips
		}
		if trans.Provider != "" {
			providerName = trans.Provider.String()
		}
		providerPhonetic = textclean.Sanitize(trans.Phonetic)
	}

	primary := wordTranslation
	if primary == "" && len(definitions) > 0 {
		primary = definitions[0].Translation
	}
	if primary == "" {
		primary = missingTranslation
	}

	phonetics, phonetic := buildPhonetics(dict)
	if phonetic == "" {
		phonetic = providerPhonetic
	}

	fallbackAudio := fmt.Sprintf(s.cfg.FallbackAudioURL, url.PathEscape(word))
	preferred := firstAudio(dict)
	audioDefault := preferred
	if audioDefault == "" {
		audioDefault = fallbackAudio
	}

	ctxTranslation := contextTranslation
	if ctxTranslation == "" {
		ctxTranslation = wordTranslation
	}

	return &domain.LookupResult{
		Word:         word,
		Translation:  primary,
		Translations: translations,
		Definitions:  definitions,
		Phonetic:     phonetic,
		Phonetics:    phonetics,
		Examples:     buildExamples(dict, contextText, contextTranslation),
		Audio: domain.Audio{
			Default:   audioDefault,
			Fallback:  fallbackAudio,
			Preferred: preferred,
		},
		Context: domain.ContextInfo{
			Original:    contextText,
			Translation: ctxTranslation,
			Provider:    providerName,
		},
		Grammar:   grammar,
		SourceURL: req.SourceURL,
		PageTitle: req.PageTitle,
	}
}

// buildPhonetics keeps phonetics carrying text or audio and returns the first
// text as the primary phonetic.
func buildPhonetics(dict *provider.DictionaryEntry) ([]domain.PhoneticItem, string) {
	items := []domain.PhoneticItem{}
	if dict == nil {
		return items, ""
	}

	var primary string
	for _, ph := range dict.Phonetics {
		text := strings.TrimSpace(ph.Text)
		audio := strings.TrimSpace(ph.Audio)
		if text == "" && audio == "" {
			continue
		}
		if primary == "" && text != "" {
			primary = text
		}
		items = append(items, domain.PhoneticItem{Text: text, Audio: audio, Source: ph.Source})
	}
	return items, primary
}

func firstAudio(dict *provider.DictionaryEntry) string {
	if dict == nil {
		return ""
	}
	for _, ph := range dict.Phonetics {
		if ph.Audio != "" {
			return ph.Audio
		}
	}
	return ""
}

// buildExamples collects up to maxExamples unique dictionary examples. With
// none available, the context sentence and its translation are used instead.
func buildExamples(dict *provider.DictionaryEntry, contextText, contextTranslation string) []domain.Example {
	examples := []domain.Example{}

	if dict != nil {
		seen := make(map[string]struct{})
	collect:
		for _, m := range dict.Meanings {
			for _, d := range m.Definitions {
				example := strings.TrimSpace(d.Example)
				if example == "" {
					continue
				}
				key := strings.ToLower(example)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				examples = append(examples, domain.Example{En: example})
				if len(examples) == maxExamples {
					break collect
				}
			}
		}
	}

	if len(examples) == 0 && contextText != "" {
		examples = append(examples, domain.Example{En: contextText, Zh: contextTranslation})
	}
	return examples
}
