package notion

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/textclean"
)

const (
	maxMeaningTranslations = 3
	maxSynonyms            = 6

	// Notion rejects text objects longer than this many characters.
	maxTextContent = 2000
)

// digitRunRe flags machine-looking values ("id_000123") that should not reach
// the page body.
var digitRunRe = regexp.MustCompile(`[0-9_]{3,}`)

// PagePayload is the body of POST /pages.
type PagePayload struct {
	Parent     Parent              `json:"parent"`
	Properties map[string]Property `json:"properties"`
}

// Parent points a page at its database.
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// Property is a page property value; exactly one field is set.
type Property struct {
	Title    []RichText   `json:"title,omitempty"`
	RichText []RichText   `json:"rich_text,omitempty"`
	URL      *string      `json:"url,omitempty"`
	Date     *DateValue   `json:"date,omitempty"`
	Status   *StatusValue `json:"status,omitempty"`
}

// RichText is a write-side text element.
type RichText struct {
	Text TextContent `json:"text"`
}

// TextContent holds the literal text.
type TextContent struct {
	Content string `json:"content"`
}

// DateValue is a date property.
type DateValue struct {
	Start string `json:"start"`
}

// StatusValue is a status property.
type StatusValue struct {
	Name string `json:"name"`
}

// PayloadOption customises BuildPagePayload.
type PayloadOption func(*PagePayload)

// WithStatus sets the Status property when name is non-empty.
func WithStatus(name string) PayloadOption {
	return func(p *PagePayload) {
		if name = strings.TrimSpace(name); name != "" {
			p.Properties["Status"] = Property{Status: &StatusValue{Name: name}}
		}
	}
}

// BuildPagePayload renders a history entry as a page in databaseID.
// Text properties with no content are omitted.
func BuildPagePayload(entry domain.HistoryEntry, databaseID string, now time.Time, opts ...PayloadOption) *PagePayload {
	props := map[string]Property{
		"Word":    {Title: textObjects(entry.Word)},
		"Created": {Date: &DateValue{Start: now.UTC().Format("2006-01-02T15:04:05.000Z07:00")}},
	}

	meaning := meaningText(entry)
	if meaning == "" {
		meaning = entry.Translation
	}
	setRichText(props, "Meaning", meaning)
	setRichText(props, "Phonetic", phoneticText(entry))
	setRichText(props, "Examples", examplesText(entry.Examples))
	setRichText(props, "Context", contextText(entry.Context))
	setRichText(props, "SourceTitle", entry.PageTitle)

	if entry.SourceURL != "" {
		u := entry.SourceURL
		props["Source"] = Property{URL: &u}
	}

	p := &PagePayload{
		Parent:     Parent{DatabaseID: databaseID},
		Properties: props,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func setRichText(props map[string]Property, name, value string) {
	if value = strings.TrimSpace(value); value != "" {
		props[name] = Property{RichText: textObjects(value)}
	}
}

// textObjects splits s into chunks Notion accepts.
func textObjects(s string) []RichText {
	runes := []rune(s)
	if len(runes) <= maxTextContent {
		return []RichText{{Text: TextContent{Content: s}}}
	}
	out := make([]RichText, 0, len(runes)/maxTextContent+1)
	for len(runes) > 0 {
		n := min(len(runes), maxTextContent)
		out = append(out, RichText{Text: TextContent{Content: string(runes[:n])}})
		runes = runes[n:]
	}
	return out
}

func meaningText(entry domain.HistoryEntry) string {
	if len(entry.Definitions) == 0 {
		if list := textclean.Dedupe(entry.Translations); len(list) > 0 {
			return strings.Join(list, "；")
		}
		return entry.Translation
	}

	blocks := make([]string, 0, len(entry.Definitions))
	for i, def := range entry.Definitions {
		label := posLabel(def.PartOfSpeech, i)
		translations := cleanValues(append(append([]string{}, def.Translations...), def.Translation))
		meaning := strings.TrimSpace(def.Meaning)

		var lines []string
		switch {
		case len(translations) > 0:
			if len(translations) > maxMeaningTranslations {
				translations = translations[:maxMeaningTranslations]
			}
			lines = append(lines, label+"："+strings.Join(translations, "；"))
			if meaning != "" {
				lines = append(lines, "英释："+meaning)
			}
		case meaning != "":
			lines = append(lines, label+"："+meaning)
		default:
			lines = append(lines, label)
		}

		if ex := strings.TrimSpace(def.Example); ex != "" {
			lines = append(lines, "例句："+ex)
		}
		if syn := cleanValues(def.Synonyms); len(syn) > 0 {
			if len(syn) > maxSynonyms {
				syn = syn[:maxSynonyms]
			}
			lines = append(lines, "同义词："+strings.Join(syn, "、"))
		}

		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func posLabel(pos string, index int) string {
	if strings.TrimSpace(pos) == "" {
		return fmt.Sprintf("释义%d", index+1)
	}
	return domain.PartOfSpeechLabel(pos)
}

// cleanValues dedupes values and drops the ones with digit/underscore runs.
func cleanValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range textclean.Dedupe(values) {
		if !digitRunRe.MatchString(v) {
			out = append(out, v)
		}
	}
	return out
}

func phoneticText(entry domain.HistoryEntry) string {
	texts := make([]string, 0, len(entry.Phonetics))
	for _, p := range entry.Phonetics {
		texts = append(texts, p.Text)
	}
	if unique := textclean.Dedupe(texts); len(unique) > 0 {
		return strings.Join(unique, "\n")
	}
	return entry.Phonetic
}

func examplesText(examples []domain.Example) string {
	parts := make([]string, 0, len(examples))
	for i, ex := range examples {
		parts = append(parts, fmt.Sprintf("%d. %s\n%s", i+1, ex.En, ex.Zh))
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

func contextText(c domain.ContextInfo) string {
	var parts []string
	if t := strings.TrimSpace(c.Translation); t != "" {
		parts = append(parts, "语境翻译："+t)
	}
	if o := strings.TrimSpace(c.Original); o != "" {
		parts = append(parts, "原文："+o)
	}
	return strings.Join(parts, "\n")
}
