package cmd

import (
	"context"
	"fmt"
	"time"

	"forum-moderator/internal/model"
	"forum-moderator/internal/redisclient"
	"forum-moderator/internal/session"

	"github.com/spf13/cobra"
)

var (
	loginID    string
	loginName  string
	loginRole  string
	loginToken string
)

// loginCmd stores the viewer identity and auth token in the session
// store. The token itself is issued by the forum service; this console
// only persists it.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the viewer identity and auth token",
	RunE: func(cmd *cobra.Command, args []string) error {
		role := model.Role(loginRole)
		switch role {
		case model.RoleGuest, model.RoleMember, model.RoleAdmin:
		default:
			return fmt.Errorf("unknown role %q (want guest, member or admin)", loginRole)
		}
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := session.NewRedisStore(rdb, sessionTTL(cfg))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		viewer := model.Viewer{ID: loginID, Username: loginName, Role: role}
		if err := store.Save(ctx, viewer, loginToken); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", viewer.Username, viewer.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := session.NewRedisStore(rdb, sessionTTL(cfg))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := session.NewRedisStore(rdb, sessionTTL(cfg))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		viewer, _, ok := store.Current(ctx)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) role=%s\n", viewer.Username, viewer.ID, viewer.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	loginCmd.Flags().StringVar(&loginID, "id", "", "viewer user id")
	loginCmd.Flags().StringVar(&loginName, "name", "", "viewer username")
	loginCmd.Flags().StringVar(&loginRole, "role", "member", "viewer role: guest, member or admin")
	loginCmd.Flags().StringVar(&loginToken, "token", "", "bearer token issued by the forum service")
	_ = loginCmd.MarkFlagRequired("id")
	_ = loginCmd.MarkFlagRequired("token")
}
