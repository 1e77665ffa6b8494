package cmd

import (
	"context"
	"fmt"
	"time"

	"forum-moderator/internal/feed"
	"forum-moderator/internal/model"
	"forum-moderator/internal/render"

	"github.com/spf13/cobra"
)

var (
	feedSort   string
	feedFormat string
)

// feedCmd loads the question feed once and renders it.
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "List community questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := model.ParseSortKey(feedSort)
		if err != nil {
			return err
		}
		client, err := forumClient()
		if err != nil {
			return err
		}

		state := feed.NewState()
		state.SetSortKey(key)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		feed.Load(ctx, client, state, &printNotifier{out: cmd.ErrOrStderr()})

		out, err := render.Render(render.NewView(state.Snapshot()), feedFormat)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().StringVarP(&feedSort, "sort", "s", "newest", "sort key: newest, votes or activity")
	feedCmd.Flags().StringVarP(&feedFormat, "format", "f", "table", "output format: table, json or yaml")
}
