package cmd

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordmate-backend/internal/app"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

var lookupOpts struct {
	context string
	url     string
	title   string
	json    bool
	save    bool
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <word or phrase>",
	Short: "Look up a word or phrase",
	Long: `Look up an English word or phrase and print its translation,
definitions, phonetics and examples.

Example:
  wordmate lookup serendipity
  wordmate lookup run --context "He runs every morning."
  wordmate lookup "look up" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	f := lookupCmd.Flags()
	f.StringVarP(&lookupOpts.context, "context", "c", "", "sentence the word appeared in")
	f.StringVar(&lookupOpts.url, "url", "", "source page URL")
	f.StringVar(&lookupOpts.title, "title", "", "source page title")
	f.BoolVar(&lookupOpts.json, "json", false, "print the raw result as JSON")
	f.BoolVarP(&lookupOpts.save, "save", "s", false, "save the result to history")
}

func runLookup(cmd *cobra.Command, args []string) error {
	req := domain.LookupRequest{
		Text:      strings.Join(args, " "),
		Context:   lookupOpts.context,
		SourceURL: lookupOpts.url,
		PageTitle: lookupOpts.title,
	}

	return withComponents(cmd, func(ctx context.Context, comps *app.Components) error {
		result, err := comps.Lookup.Lookup(ctx, req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if lookupOpts.json {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			if err := enc.Encode(result); err != nil {
				return err
			}
		} else {
			renderLookup(out, result)
		}

		if lookupOpts.save {
			entry, err := comps.History.Save(ctx, *result)
			if err != nil {
				return err
			}
			renderNotice(out, "saved to history as "+entry.ID.String())
		}
		return nil
	})
}
