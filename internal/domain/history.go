package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is a saved LookupResult.
type HistoryEntry struct {
	LookupResult

	ID           uuid.UUID `json:"id"`
	SavedAt      time.Time `json:"savedAt"`
	NotionSynced bool      `json:"notionSynced"`
}

// PendingNotionItem is a Notion save waiting for background retry.
type PendingNotionItem struct {
	ID         int64
	Entry      HistoryEntry
	EnqueuedAt time.Time
}
