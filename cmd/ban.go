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

var banYes bool

// banCmd bans a user account. The feed is not touched: the user's
// existing questions remain listed.
var banCmd = &cobra.Command{
	Use:   "ban <user-id>",
	Short: "Ban a user account (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]
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

		// Best-effort username lookup from the current feed so the
		// confirmation names the person, not an opaque id.
		state := feed.NewState()
		feed.Load(ctx, client, state, &printNotifier{out: cmd.ErrOrStderr()})
		username := userID
		for _, q := range state.Snapshot().Questions {
			if q.Author.ID == userID {
				username = q.Author.Username
				break
			}
		}

		var confirm moderation.Confirmer = &stdinConfirmer{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
		if banYes {
			confirm = autoConfirmer{}
		}
		ctl := moderation.NewController(client, state, store, confirm, &printNotifier{out: cmd.OutOrStdout()})
		ctl.RequestBan(ctx, userID, username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(banCmd)
	banCmd.Flags().BoolVarP(&banYes, "yes", "y", false, "skip the confirmation prompt")
}
