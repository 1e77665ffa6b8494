package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"forum-moderator/internal/ai"
	"forum-moderator/internal/feed"

	"github.com/spf13/cobra"
)

var (
	reviewSummarize bool
	reviewLanguage  string
)

// reviewCmd shows a single question in full, optionally with an AI
// digest, so an admin can judge it before deleting or banning.
var reviewCmd = &cobra.Command{
	Use:   "review <question-id>",
	Short: "Show one question in detail before a moderation decision",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questionID := args[0]
		cfg := GetConfig()

		client, err := forumClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		state := feed.NewState()
		feed.Load(ctx, client, state, nil)
		snap := state.Snapshot()
		if snap.Status == feed.StatusErrored {
			return fmt.Errorf("%s", snap.ErrorMessage)
		}
		q, ok := state.Find(questionID)
		if !ok {
			return fmt.Errorf("question %s not found in the feed", questionID)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", q.Title)
		fmt.Fprintf(out, "id=%s by %s (%s) at %s\n", q.ID, q.Author.Username, q.Author.ID, q.CreatedAt.UTC().Format(time.RFC3339))
		fmt.Fprintf(out, "votes=%d answers=%d answered=%v\n", q.Votes, q.AnswerCount(), q.Answered())
		if len(q.Tags) > 0 {
			fmt.Fprintf(out, "tags: %s\n", strings.Join(q.Tags, ", "))
		}
		fmt.Fprintf(out, "\n%s\n", q.Description)

		if reviewSummarize {
			if cfg.OpenAI.APIKey == "" {
				return fmt.Errorf("openai config missing: set openai.api_key in config.yaml")
			}
			summarizer := ai.NewOpenAI(ai.Config{APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
			digest, err := summarizer.SummarizeQuestion(ctx, q.Title, q.Description, reviewLanguage)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nDigest: %s\n", digest)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().BoolVar(&reviewSummarize, "summarize", false, "include an AI digest of the question")
	reviewCmd.Flags().StringVar(&reviewLanguage, "language", "", "digest language (default English)")
}
