package domain

// Settings is the user-facing configuration synced between the extension and
// the backend. Writes are last-write-wins.
type Settings struct {
	TranslationProvider TranslationProvider `json:"translationProvider"`
	AutoPlayAudio       bool                `json:"autoPlayAudio"`
	AutoSaveNotion      bool                `json:"autoSaveNotion"`
	NotionToken         string              `json:"notionToken"`
	NotionDatabaseID    string              `json:"notionDatabaseId"`
	AudioProvider       string              `json:"audioProvider"`
	DefaultTab          string              `json:"defaultTab"`
	Theme               string              `json:"theme"`
	AutoOpenPanel       bool                `json:"autoOpenPanel"`
	NotionConfigured    bool                `json:"notionConfigured"`
	OpenAIAPIKey        string              `json:"openAIApiKey"`
	OpenAIModel         string              `json:"openAIModel"`
}

// DefaultSettings returns the settings used before anything is stored.
func DefaultSettings() Settings {
	return Settings{
		TranslationProvider: TranslationProviderGoogle,
		AudioProvider:       "google",
		DefaultTab:          "definition",
		Theme:               "auto",
		AutoOpenPanel:       true,
		OpenAIModel:         "gpt-4o-mini",
	}
}

// HasNotionCredentials reports whether both the Notion token and database id are set.
func (s Settings) HasNotionCredentials() bool {
	return s.NotionToken != "" && s.NotionDatabaseID != ""
}

// SettingsPatch is a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	TranslationProvider *TranslationProvider `json:"translationProvider,omitempty"`
	AutoPlayAudio       *bool                `json:"autoPlayAudio,omitempty"`
	AutoSaveNotion      *bool                `json:"autoSaveNotion,omitempty"`
	NotionToken         *string              `json:"notionToken,omitempty"`
	NotionDatabaseID    *string              `json:"notionDatabaseId,omitempty"`
	AudioProvider       *string              `json:"audioProvider,omitempty"`
	DefaultTab          *string              `json:"defaultTab,omitempty"`
	Theme               *string              `json:"theme,omitempty"`
	AutoOpenPanel       *bool                `json:"autoOpenPanel,omitempty"`
	NotionConfigured    *bool                `json:"notionConfigured,omitempty"`
	OpenAIAPIKey        *string              `json:"openAIApiKey,omitempty"`
	OpenAIModel         *string              `json:"openAIModel,omitempty"`
}

// Apply returns s with every non-nil field of p written over it.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.TranslationProvider != nil {
		s.TranslationProvider = *p.TranslationProvider
	}
	if p.AutoPlayAudio != nil {
		s.AutoPlayAudio = *p.AutoPlayAudio
	}
	if p.AutoSaveNotion != nil {
		s.AutoSaveNotion = *p.AutoSaveNotion
	}
	if p.NotionToken != nil {
		s.NotionToken = *p.NotionToken
	}
	if p.NotionDatabaseID != nil {
		s.NotionDatabaseID = *p.NotionDatabaseID
	}
	if p.AudioProvider != nil {
		s.AudioProvider = *p.AudioProvider
	}
	if p.DefaultTab != nil {
		s.DefaultTab = *p.DefaultTab
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.AutoOpenPanel != nil {
		s.AutoOpenPanel = *p.AutoOpenPanel
	}
	if p.NotionConfigured != nil {
		s.NotionConfigured = *p.NotionConfigured
	}
	if p.OpenAIAPIKey != nil {
		s.OpenAIAPIKey = *p.OpenAIAPIKey
	}
	if p.OpenAIModel != nil {
		s.OpenAIModel = *p.OpenAIModel
	}
	return s
}

// Validate checks field values that have a closed set of options.
func (p SettingsPatch) Validate() error {
	var errs []FieldError
	if p.TranslationProvider != nil && !p.TranslationProvider.IsValid() {
		errs = append(errs, FieldError{Field: "translationProvider", Message: "must be google or gpt"})
	}
	if p.OpenAIModel != nil && *p.OpenAIModel == "" {
		errs = append(errs, FieldError{Field: "openAIModel", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
