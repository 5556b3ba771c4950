package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/provider"
	"github.com/heartmarshall/wordmate-backend/internal/textclean"
)

const systemPrompt = `You are a bilingual English-Chinese dictionary.
Translate the English word or phrase into Simplified Chinese and, if a context sentence is given, translate the sentence too.
Reply with a single JSON object and nothing else:
{"wordTranslation": string, "translations": [string], "dictionary": [{"partOfSpeech": string, "translations": [string]}], "contextTranslation": string, "grammarTips": [{"title": string, "detail": string}], "phonetic": string}
Use lowercase English part-of-speech labels such as "noun" or "verb". Keep grammarTips short and in Chinese.`

// Credentials select the OpenAI account and model for one call.
type Credentials struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds server-side defaults for the gpt provider.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// GPT is the gpt translation provider. Without an API key it returns the
// placeholder result; with one it calls the chat completions API.
type GPT struct {
	cfg OpenAIConfig
	log *slog.Logger
}

// NewGPT creates the gpt provider.
func NewGPT(cfg OpenAIConfig, logger *slog.Logger) *GPT {
	return &GPT{
		cfg: cfg,
		log: logger.With("adapter", "openai"),
	}
}

// Translate translates word and contextText. Per-call credentials take
// precedence over the configured defaults.
func (g *GPT) Translate(ctx context.Context, word, contextText string, creds Credentials) (*provider.TranslationResult, error) {
	apiKey := creds.APIKey
	if apiKey == "" {
		apiKey = g.cfg.APIKey
	}
	if apiKey == "" {
		return Placeholder(word, contextText), nil
	}

	model := creds.Model
	if model == "" {
		model = g.cfg.Model
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if g.cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(g.cfg.BaseURL))
	}
	if g.cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(g.cfg.Timeout))
	}
	client := openai.NewClient(opts...)

	user := "Word: " + word
	if contextText != "" {
		user += "\nContext: " + contextText
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		g.log.WarnContext(ctx, "openai request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai: %w: %w", domain.ErrSourceUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: %w: %w", domain.ErrSourceUnavailable, errors.New("empty choices"))
	}

	res, err := parseReply(resp.Choices[0].Message.Content, contextText)
	if err != nil {
		return nil, fmt.Errorf("openai: %w: %w", domain.ErrSourceUnavailable, err)
	}
	return res, nil
}

type gptReply struct {
	WordTranslation    string              `json:"wordTranslation"`
	Translations       []string            `json:"translations"`
	Dictionary         []gptPOS            `json:"dictionary"`
	ContextTranslation string              `json:"contextTranslation"`
	GrammarTips        []domain.GrammarTip `json:"grammarTips"`
	Phonetic           string              `json:"phonetic"`
}

type gptPOS struct {
	PartOfSpeech string   `json:"partOfSpeech"`
	Translations []string `json:"translations"`
}

// parseReply decodes the model's JSON object, tolerating a markdown code fence.
func parseReply(content, contextText string) (*provider.TranslationResult, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var reply gptReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &reply); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}

	res := &provider.TranslationResult{
		Provider:            domain.TranslationProviderGPT,
		WordTranslation:     textclean.Sanitize(reply.WordTranslation),
		Translations:        textclean.Dedupe(textclean.SanitizeAll(reply.Translations)),
		Dictionary:          []provider.POSTranslations{},
		ContextTranslations: []string{},
		GrammarTips:         []domain.GrammarTip{},
		Phonetic:            textclean.Sanitize(reply.Phonetic),
	}
	if res.WordTranslation == "" && len(res.Translations) > 0 {
		res.WordTranslation = res.Translations[0]
	}
	if res.WordTranslation != "" && len(res.Translations) == 0 {
		res.Translations = []string{res.WordTranslation}
	}

	for _, d := range reply.Dictionary {
		pos := strings.TrimSpace(d.PartOfSpeech)
		translations := textclean.Dedupe(textclean.SanitizeAll(d.Translations))
		if pos == "" || len(translations) == 0 {
			continue
		}
		res.Dictionary = append(res.Dictionary, provider.POSTranslations{PartOfSpeech: pos, Translations: translations})
	}

	if contextText != "" {
		res.ContextTranslation = textclean.Sanitize(reply.ContextTranslation)
		if res.ContextTranslation != "" {
			res.ContextTranslations = []string{res.ContextTranslation}
		}
	}

	for _, tip := range reply.GrammarTips {
		if strings.TrimSpace(tip.Title) == "" && strings.TrimSpace(tip.Detail) == "" {
			continue
		}
		res.GrammarTips = append(res.GrammarTips, tip)
	}

	return res, nil
}
