package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"forum-moderator/internal/config"
	"forum-moderator/internal/forum"
	"forum-moderator/internal/model"
)

// forumClient builds the gateway from config.
func forumClient() (*forum.Client, error) {
	cfg := GetConfig()
	timeout, err := time.ParseDuration(cfg.Forum.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid forum.timeout: %w", err)
	}
	return forum.NewClient(cfg.Forum.BaseURL, timeout), nil
}

// sessionTTL parses the configured session TTL; empty or invalid means
// no expiry.
func sessionTTL(cfg config.Config) time.Duration {
	if cfg.Session.TTL == "" {
		return 0
	}
	d, err := time.ParseDuration(cfg.Session.TTL)
	if err != nil {
		return 0
	}
	return d
}

// stdinConfirmer asks a destructive-intent question on the terminal.
// Anything other than y/yes declines.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c *stdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// autoConfirmer answers yes without prompting (--yes flag).
type autoConfirmer struct{}

func (autoConfirmer) Confirm(string) bool { return true }

// printNotifier writes outcome notifications as toast-style lines.
type printNotifier struct {
	out io.Writer
}

func (n *printNotifier) Notify(notice model.Notification) {
	tag := "ok"
	if notice.Kind == model.NoticeError {
		tag = "error"
	}
	fmt.Fprintf(n.out, "[%s] %s: %s\n", tag, notice.Title, notice.Description)
}
