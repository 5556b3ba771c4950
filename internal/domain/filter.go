package domain

// HistoryFilter contains filtering/pagination parameters for history listings.
type HistoryFilter struct {
	// Search matches word or primary translation, case-insensitively.
	Search *string
	// NotionSynced filters entries by sync state.
	NotionSynced *bool
	Limit        int
	Offset       int
}

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// Normalize applies defaults and clamps values.
func (f HistoryFilter) Normalize() HistoryFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultHistoryLimit
	}
	if f.Limit > MaxHistoryLimit {
		f.Limit = MaxHistoryLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Search != nil {
		s := NormalizeHeadword(*f.Search)
		if s == "" {
			f.Search = nil
		} else {
			f.Search = &s
		}
	}
	return f
}
