package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

var (
	wordStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffe66d"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	posStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
)

// renderLookup prints a human readable lookup result.
func renderLookup(w io.Writer, r *domain.LookupResult) {
	header := wordStyle.Render(r.Word)
	if r.Phonetic != "" {
		header += "  " + mutedStyle.Render(r.Phonetic)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, r.Translation)

	if len(r.Definitions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Definitions"))
		for _, d := range r.Definitions {
			label := d.PartOfSpeech
			if label == "" {
				label = "-"
			}
			fmt.Fprintf(w, "  %s %s\n", posStyle.Render(label), strings.Join(d.Translations, "；"))
			if d.Meaning != "" {
				fmt.Fprintf(w, "    %s\n", mutedStyle.Render(d.Meaning))
			}
		}
	}

	if len(r.Examples) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Examples"))
		for i, ex := range r.Examples {
			fmt.Fprintf(w, "  %d. %s\n", i+1, ex.En)
			if ex.Zh != "" {
				fmt.Fprintf(w, "     %s\n", mutedStyle.Render(ex.Zh))
			}
		}
	}

	if r.Context.Original != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Context"))
		fmt.Fprintf(w, "  %s\n  %s\n", r.Context.Original, mutedStyle.Render(r.Context.Translation))
	}

	for _, tip := range r.Grammar {
		fmt.Fprintf(w, "\n%s %s\n", headingStyle.Render(tip.Title), tip.Detail)
	}

	if r.Audio.Default != "" {
		fmt.Fprintf(w, "\n%s %s\n", mutedStyle.Render("audio:"), r.Audio.Default)
	}
}

// renderHistory prints entries as a table followed by the total count.
func renderHistory(w io.Writer, entries []domain.HistoryEntry, total int) {
	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no saved words"))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("WORD", "TRANSLATION", "SAVED", "NOTION")
	for _, e := range entries {
		synced := ""
		if e.NotionSynced {
			synced = "✓"
		}
		t.Row(e.Word, e.Translation, e.SavedAt.Local().Format("2006-01-02 15:04"), synced)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d of %d", len(entries), total)))
}

func renderNotice(w io.Writer, msg string) {
	fmt.Fprintln(w, noticeStyle.Render(msg))
}
