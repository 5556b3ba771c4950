package translate

import (
	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/provider"
)

const placeholderPrefix = "【GPT】"

// pendingTip tells the user the gpt provider has no backend configured yet.
var pendingTip = domain.GrammarTip{
	Title:  "暂未接入 GPT",
	Detail: "当前版本使用占位结果，请在设置中配置 OpenAI API 后启用。",
}

// Placeholder returns the deterministic gpt result used when no OpenAI key
// is configured.
func Placeholder(word, contextText string) *provider.TranslationResult {
	wordText := placeholderPrefix + word

	res := &provider.TranslationResult{
		Provider:            domain.TranslationProviderGPT,
		WordTranslation:     wordText,
		Translations:        []string{wordText},
		Dictionary:          []provider.POSTranslations{},
		ContextTranslations: []string{},
		GrammarTips:         []domain.GrammarTip{pendingTip},
	}
	if contextText != "" {
		res.ContextTranslation = placeholderPrefix + contextText
		res.ContextTranslations = []string{res.ContextTranslation}
	}
	return res
}
