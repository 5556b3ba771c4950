package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordmate-backend/internal/app"
)

var notionCmd = &cobra.Command{
	Use:   "notion",
	Short: "Manage Notion sync",
}

var notionFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Retry queued Notion saves now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withComponents(cmd, func(ctx context.Context, comps *app.Components) error {
			flushed, flushErr := comps.Notion.FlushPending(ctx)
			pending, err := comps.Notion.Pending(ctx)
			if err != nil {
				return err
			}
			renderNotice(cmd.OutOrStdout(), fmt.Sprintf("flushed %d, %d still pending", flushed, pending))
			return flushErr
		})
	},
}

var notionPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Show how many saves wait for retry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withComponents(cmd, func(ctx context.Context, comps *app.Components) error {
			n, err := comps.Notion.Pending(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		})
	},
}

var notionTestOpts struct {
	token    string
	database string
}

var notionTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Verify Notion credentials and store them in settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withComponents(cmd, func(ctx context.Context, comps *app.Components) error {
			db, err := comps.Notion.TestConnection(ctx, notionTestOpts.token, notionTestOpts.database)
			if err != nil {
				return err
			}
			renderNotice(cmd.OutOrStdout(), fmt.Sprintf("connected to %q (%s)", db.Name(), db.ID))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(notionCmd)
	notionCmd.AddCommand(notionFlushCmd, notionPendingCmd, notionTestCmd)

	f := notionTestCmd.Flags()
	f.StringVar(&notionTestOpts.token, "token", "", "Notion integration token")
	f.StringVar(&notionTestOpts.database, "database", "", "Notion database ID")
	_ = notionTestCmd.MarkFlagRequired("token")
	_ = notionTestCmd.MarkFlagRequired("database")
}
