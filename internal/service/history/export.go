package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// savedAtLayout matches JavaScript's Date.toISOString.
const savedAtLayout = "2006-01-02T15:04:05.000Z07:00"

var csvHeader = []string{"Word", "Translation", "Phonetic", "Source URL", "Saved At", "Notion Synced"}

// ExportCSV writes every entry, newest first, as CSV to w.
// Returns the number of data rows written.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("history.ExportCSV: %w", err)
	}

	if err := writeCSV(w, entries); err != nil {
		return 0, fmt.Errorf("history.ExportCSV: %w", err)
	}

	s.log.InfoContext(ctx, "history exported", slog.Int("rows", len(entries)))
	return len(entries), nil
}

func writeCSV(w io.Writer, entries []domain.HistoryEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write(csvRow(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(e domain.HistoryEntry) []string {
	synced := "No"
	if e.NotionSynced {
		synced = "Yes"
	}
	return []string{
		e.Word,
		e.Translation,
		e.Phonetic,
		e.SourceURL,
		e.SavedAt.UTC().Format(savedAtLayout),
		synced,
	}
}
