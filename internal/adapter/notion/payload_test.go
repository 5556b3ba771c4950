package notion

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

var payloadNow = time.Date(2024, 5, 6, 7, 8, 9, 10_000_000, time.UTC)

func fullEntry() domain.HistoryEntry {
	return domain.HistoryEntry{
		LookupResult: domain.LookupResult{
			Word:         "run",
			Translation:  "跑",
			Translations: []string{"跑"},
			Definitions: []domain.Definition{
				{
					PartOfSpeech: "verb",
					Meaning:      "Move fast.",
					Translation:  "跑",
					Translations: []string{"跑", "奔跑", "运行", "经营"},
					Example:      "I run every day.",
					Synonyms:     []string{"sprint", "dash", "id_0001", "Sprint"},
				},
				{
					PartOfSpeech: "Phrasal Verb",
					Translations: []string{"逃跑"},
				},
				{
					Meaning:      "Something else.",
					Translations: []string{},
				},
			},
			Phonetic: "/rʌn/",
			Phonetics: []domain.PhoneticItem{
				{Text: "/rʌn/"},
				{Text: "/RʌN/"},
				{Audio: "https://a.example/run.mp3"},
				{Text: "/ɹʌn/"},
			},
			Examples: []domain.Example{
				{En: "I run every day.", Zh: ""},
				{En: "He runs a shop.", Zh: "他经营一家商店。"},
			},
			Context: domain.ContextInfo{
				Original:    "He runs a shop.",
				Translation: "他经营一家商店。",
			},
			SourceURL: "https://example.com/article",
			PageTitle: "An article",
		},
	}
}

func richText(t *testing.T, p *PagePayload, name string) string {
	t.Helper()
	prop, ok := p.Properties[name]
	require.True(t, ok, "property %s missing", name)
	var b strings.Builder
	for _, rt := range prop.RichText {
		b.WriteString(rt.Text.Content)
	}
	return b.String()
}

func TestBuildPagePayload_Full(t *testing.T) {
	t.Parallel()

	p := BuildPagePayload(fullEntry(), "db-1", payloadNow, WithStatus("To Review"))

	assert.Equal(t, "db-1", p.Parent.DatabaseID)
	assert.Equal(t, "run", p.Properties["Word"].Title[0].Text.Content)

	wantMeaning := "动词：跑；奔跑；运行\n" +
		"英释：Move fast.\n" +
		"例句：I run every day.\n" +
		"同义词：sprint、dash\n\n" +
		"动词短语：逃跑\n\n" +
		"释义3：Something else."
	assert.Equal(t, wantMeaning, richText(t, p, "Meaning"))

	assert.Equal(t, "/rʌn/\n/ɹʌn/", richText(t, p, "Phonetic"))
	assert.Equal(t, "1. I run every day.\n\n\n2. He runs a shop.\n他经营一家商店。", richText(t, p, "Examples"))
	assert.Equal(t, "语境翻译：他经营一家商店。\n原文：He runs a shop.", richText(t, p, "Context"))
	assert.Equal(t, "An article", richText(t, p, "SourceTitle"))

	require.NotNil(t, p.Properties["Source"].URL)
	assert.Equal(t, "https://example.com/article", *p.Properties["Source"].URL)
	require.NotNil(t, p.Properties["Created"].Date)
	assert.Equal(t, "2024-05-06T07:08:09.010Z", p.Properties["Created"].Date.Start)
	require.NotNil(t, p.Properties["Status"].Status)
	assert.Equal(t, "To Review", p.Properties["Status"].Status.Name)
}

func TestBuildPagePayload_OmitsEmpty(t *testing.T) {
	t.Parallel()

	entry := domain.HistoryEntry{LookupResult: domain.LookupResult{Word: "qwzx"}}
	p := BuildPagePayload(entry, "db-1", payloadNow, WithStatus("  "))

	for _, name := range []string{"Meaning", "Phonetic", "Examples", "Context", "Source", "SourceTitle", "Status"} {
		assert.NotContains(t, p.Properties, name)
	}
	assert.Contains(t, p.Properties, "Word")
	assert.Contains(t, p.Properties, "Created")

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"rich_text"`)
	assert.NotContains(t, string(raw), `"url"`)
}

func TestBuildPagePayload_MeaningFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry domain.LookupResult
		want  string
	}{
		{
			name:  "joined translations",
			entry: domain.LookupResult{Word: "a", Translation: "甲", Translations: []string{"甲", "乙", "甲"}},
			want:  "甲；乙",
		},
		{
			name:  "primary translation",
			entry: domain.LookupResult{Word: "a", Translation: "甲"},
			want:  "甲",
		},
		{
			name:  "part of speech without anything",
			entry: domain.LookupResult{Word: "a", Definitions: []domain.Definition{{PartOfSpeech: "noun"}}},
			want:  "名词",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := BuildPagePayload(domain.HistoryEntry{LookupResult: tt.entry}, "db", payloadNow)
			assert.Equal(t, tt.want, richText(t, p, "Meaning"))
		})
	}
}

func TestBuildPagePayload_PhoneticFallsBackToPrimary(t *testing.T) {
	t.Parallel()

	entry := domain.HistoryEntry{LookupResult: domain.LookupResult{
		Word:      "a",
		Phonetic:  "/eɪ/",
		Phonetics: []domain.PhoneticItem{{Audio: "https://a.example/a.mp3"}},
	}}
	p := BuildPagePayload(entry, "db", payloadNow)
	assert.Equal(t, "/eɪ/", richText(t, p, "Phonetic"))
}

func TestTextObjects_SplitsLongContent(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("词", maxTextContent*2+5)
	got := textObjects(long)

	require.Len(t, got, 3)
	assert.Equal(t, maxTextContent, len([]rune(got[0].Text.Content)))
	assert.Equal(t, 5, len([]rune(got[2].Text.Content)))
}
