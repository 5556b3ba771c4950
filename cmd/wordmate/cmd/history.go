package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordmate-backend/internal/app"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, export or clear saved words",
}

var historyListOpts struct {
	search   string
	unsynced bool
	limit    int
	offset   int
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved words, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter := domain.HistoryFilter{Limit: historyListOpts.limit, Offset: historyListOpts.offset}
		if historyListOpts.search != "" {
			filter.Search = &historyListOpts.search
		}
		if historyListOpts.unsynced {
			synced := false
			filter.NotionSynced = &synced
		}

		return withComponents(cmd, func(ctx context.Context, comps *app.Components) error {
			res, err := comps.History.List(ctx, filter)
			if err != nil {
				return err
			}
			renderHistory(cmd.OutOrStdout(), res.Entries, res.TotalCount)
			return nil
		})
	},
}

var historyExportOut string

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) (err error) {
		var w io.Writer = cmd.OutOrStdout()
		if historyExportOut != "" && historyExportOut != "-" {
			f, createErr := os.Create(historyExportOut)
			if createErr != nil {
				return createErr
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			w = f
		}

		return withComponents(cmd, func(ctx context.Context, comps *app.Components) error {
			n, err := comps.History.ExportCSV(ctx, w)
			if err != nil {
				return err
			}
			if historyExportOut != "" && historyExportOut != "-" {
				renderNotice(cmd.ErrOrStderr(), fmt.Sprintf("exported %d entries to %s", n, historyExportOut))
			}
			return nil
		})
	},
}

var historyClearYes bool

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved word",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !historyClearYes {
			return errors.New("refusing to clear history without --yes")
		}
		return withComponents(cmd, func(ctx context.Context, comps *app.Components) error {
			if err := comps.History.Clear(ctx); err != nil {
				return err
			}
			renderNotice(cmd.OutOrStdout(), "history cleared")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyExportCmd, historyClearCmd)

	lf := historyListCmd.Flags()
	lf.StringVarP(&historyListOpts.search, "query", "q", "", "match word or translation")
	lf.BoolVar(&historyListOpts.unsynced, "unsynced", false, "only entries not yet in Notion")
	lf.IntVar(&historyListOpts.limit, "limit", domain.DefaultHistoryLimit, "page size")
	lf.IntVar(&historyListOpts.offset, "offset", 0, "entries to skip")

	historyExportCmd.Flags().StringVarP(&historyExportOut, "out", "o", "", "output file (default stdout)")
	historyClearCmd.Flags().BoolVar(&historyClearYes, "yes", false, "confirm deletion")
}
