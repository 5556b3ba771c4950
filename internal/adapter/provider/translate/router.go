// Package translate routes translation requests to the provider selected in
// the user's settings.
package translate

import (
	"context"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/provider"
)

// wordTranslator is the default provider contract (implemented by google.Client).
type wordTranslator interface {
	Translate(ctx context.Context, word, contextText string) (*provider.TranslationResult, error)
}

// gptTranslator is the alternate provider contract (implemented by *GPT).
type gptTranslator interface {
	Translate(ctx context.Context, word, contextText string, creds Credentials) (*provider.TranslationResult, error)
}

// Router dispatches to google or gpt based on settings.
type Router struct {
	google wordTranslator
	gpt    gptTranslator
}

// NewRouter creates a Router.
func NewRouter(google wordTranslator, gpt gptTranslator) *Router {
	return &Router{google: google, gpt: gpt}
}

// Translate uses the gpt provider only when settings select it; anything else
// goes to the default provider.
func (r *Router) Translate(ctx context.Context, settings domain.Settings, word, contextText string) (*provider.TranslationResult, error) {
	if settings.TranslationProvider == domain.TranslationProviderGPT {
		return r.gpt.Translate(ctx, word, contextText, Credentials{
			APIKey: settings.OpenAIAPIKey,
			Model:  settings.OpenAIModel,
		})
	}
	return r.google.Translate(ctx, word, contextText)
}
