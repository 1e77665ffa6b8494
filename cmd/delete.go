package cmd

import (
	"context"
	"fmt"
	"time"

	"forum-moderator/internal/feed"
	"forum-moderator/internal/moderation"
	"forum-moderator/internal/redisclient"
	"forum-moderator/internal/session"

	"github.com/spf13/cobra"
)

var deleteYes bool

// deleteCmd deletes a question via the admin endpoint after an
// explicit confirmation.
var deleteCmd = &cobra.Command{
	Use:   "delete <question-id>",
	Short: "Delete a question (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questionID := args[0]
		cfg := GetConfig()

		client, err := forumClient()
		if err != nil {
			return err
		}
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := session.NewRedisStore(rdb, sessionTTL(cfg))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, _, ok := store.Current(ctx); !ok {
			return fmt.Errorf("no active session: run 'forum-moderator login' first")
		}

		// Load the feed so the confirmation can reference the title and
		// the removal reconciles a Ready state.
		state := feed.NewState()
		feed.Load(ctx, client, state, &printNotifier{out: cmd.ErrOrStderr()})
		title := questionID
		if q, ok := state.Find(questionID); ok {
			title = q.Title
		}

		var confirm moderation.Confirmer = &stdinConfirmer{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
		if deleteYes {
			confirm = autoConfirmer{}
		}
		ctl := moderation.NewController(client, state, store, confirm, &printNotifier{out: cmd.OutOrStdout()})
		ctl.RequestDelete(ctx, questionID, title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
