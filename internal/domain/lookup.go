package domain

// LookupRequest is a single word or phrase lookup issued by a client.
type LookupRequest struct {
	Text      string `json:"text"`
	Context   string `json:"context"`
	SourceURL string `json:"sourceUrl"`
	PageTitle string `json:"pageTitle"`
}

// Definition is one part-of-speech group produced by the aggregator.
// Translations is never empty in a returned list.
type Definition struct {
	PartOfSpeech string   `json:"partOfSpeech"`
	Meaning      string   `json:"meaning"`
	Translation  string   `json:"translation"`
	Translations []string `json:"translations"`
	Example      string   `json:"example"`
	Synonyms     []string `json:"synonyms"`
}

// PhoneticItem is one pronunciation reported by the dictionary.
type PhoneticItem struct {
	Text   string `json:"text"`
	Audio  string `json:"audio"`
	Source string `json:"source"`
}

// Example is a usage sentence with an optional translation.
type Example struct {
	En    string `json:"en"`
	Zh    string `json:"zh"`
	Audio string `json:"audio"`
}

// Audio holds pronunciation URLs for a headword.
type Audio struct {
	Default   string `json:"default"`
	Fallback  string `json:"fallback"`
	Preferred string `json:"preferred"`
}

// ContextInfo is the surrounding sentence and its translation.
type ContextInfo struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
	Provider    string `json:"provider"`
}

// GrammarTip is a short note attached by a translation provider.
type GrammarTip struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// LookupResult is the assembled answer to a LookupRequest.
type LookupResult struct {
	Word         string         `json:"word"`
	Translation  string         `json:"translation"`
	Translations []string       `json:"translations"`
	Definitions  []Definition   `json:"definitions"`
	Phonetic     string         `json:"phonetic"`
	Phonetics    []PhoneticItem `json:"phonetics"`
	Examples     []Example      `json:"examples"`
	Audio        Audio          `json:"audio"`
	Context      ContextInfo    `json:"context"`
	Grammar      []GrammarTip   `json:"grammar"`
	SourceURL    string         `json:"sourceUrl"`
	PageTitle    string         `json:"pageTitle"`
}
