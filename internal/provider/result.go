// Package provider defines the shapes returned by external lookup sources.
package provider

import "github.com/heartmarshall/wordmate-backend/internal/domain"

// DictionaryEntry is the structured result from a dictionary API provider.
type DictionaryEntry struct {
	Word      string     `json:"word"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic is one pronunciation from the dictionary.
type Phonetic struct {
	Text   string `json:"text"`
	Audio  string `json:"audio"`
	Source string `json:"source"`
}

// Meaning groups dictionary definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []SenseEntry `json:"definitions"`
}

// SenseEntry is a single definition with an optional example.
type SenseEntry struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// TranslationResult is the structured result from a translation provider.
type TranslationResult struct {
	Provider            domain.TranslationProvider `json:"provider"`
	WordTranslation     string                     `json:"wordTranslation"`
	Translations        []string                   `json:"translations"`
	Dictionary          []POSTranslations          `json:"dictionary"`
	ContextTranslation  string                     `json:"contextTranslation"`
	ContextTranslations []string                   `json:"contextTranslations"`
	GrammarTips         []domain.GrammarTip        `json:"grammarTips,omitempty"`
	Phonetic            string                     `json:"phonetic,omitempty"`
}

// POSTranslations is a provider's own grouping of senses under a part of speech.
type POSTranslations struct {
	PartOfSpeech string   `json:"partOfSpeech"`
	Translations []string `json:"translations"`
}
