package domain

import "strings"

// TranslationProvider selects the translation backend.
type TranslationProvider string

const (
	TranslationProviderGoogle TranslationProvider = "google"
	TranslationProviderGPT    TranslationProvider = "gpt"
)

func (p TranslationProvider) String() string { return string(p) }

func (p TranslationProvider) IsValid() bool {
	switch p {
	case TranslationProviderGoogle, TranslationProviderGPT:
		return true
	}
	return false
}

// partOfSpeechLabels maps compacted English POS names to Chinese labels.
var partOfSpeechLabels = map[string]string{
	"noun":          "名词",
	"verb":          "动词",
	"adjective":     "形容词",
	"adverb":        "副词",
	"pronoun":       "代词",
	"preposition":   "介词",
	"conjunction":   "连词",
	"interjection":  "感叹词",
	"determiner":    "限定词",
	"article":       "冠词",
	"prefix":        "前缀",
	"suffix":        "后缀",
	"phrasalverb":   "动词短语",
	"auxiliaryverb": "助动词",
}

// PartOfSpeechLabel returns the Chinese label for pos, or pos itself when
// no label is known. Spaces and hyphens are ignored ("phrasal verb").
func PartOfSpeechLabel(pos string) string {
	key := strings.ToLower(pos)
	key = strings.NewReplacer(" ", "", "-", "", "\t", "").Replace(key)
	if label, ok := partOfSpeechLabels[key]; ok {
		return label
	}
	return pos
}
