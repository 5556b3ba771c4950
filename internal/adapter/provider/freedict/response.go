package freedict

import "github.com/heartmarshall/wordmate-backend/internal/provider"

// apiEntry represents a single entry from the FreeDictionary API response.
// The API returns an array of entries (one per etymology); only the first is used.
type apiEntry struct {
	Word      string        `json:"word"`
	Phonetics []apiPhonetic `json:"phonetics"`
	Meanings  []apiMeaning  `json:"meanings"`
}

type apiPhonetic struct {
	Text      string `json:"text"`
	Audio     string `json:"audio"`
	SourceURL string `json:"sourceUrl"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// toEntry converts the raw API entry into a provider.DictionaryEntry.
// Phonetics with neither text nor audio are dropped.
func (e apiEntry) toEntry() *provider.DictionaryEntry {
	entry := &provider.DictionaryEntry{
		Word:      e.Word,
		Phonetics: make([]provider.Phonetic, 0, len(e.Phonetics)),
		Meanings:  make([]provider.Meaning, 0, len(e.Meanings)),
	}

	for _, ph := range e.Phonetics {
		if ph.Text == "" && ph.Audio == "" {
			continue
		}
		entry.Phonetics = append(entry.Phonetics, provider.Phonetic{
			Text:   ph.Text,
			Audio:  ph.Audio,
			Source: ph.SourceURL,
		})
	}

	for _, m := range e.Meanings {
		meaning := provider.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]provider.SenseEntry, 0, len(m.Definitions)),
		}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, provider.SenseEntry{
				Definition: d.Definition,
				Example:    d.Example,
			})
		}
		entry.Meanings = append(entry.Meanings, meaning)
	}

	return entry
}
