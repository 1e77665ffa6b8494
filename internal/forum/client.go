package forum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"forum-moderator/internal/model"
)

// Client is a minimal HTTP client for the forum question API. It holds
// no local state; every method is a single request/response cycle.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a forum client. baseURL should be like
// "https://forum.example.com" (no trailing slash).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// listResponse mirrors the paginated list payload. Only Questions is
// used; the pagination fields are accepted and ignored (first page
// only).
type listResponse struct {
	Questions   []model.Question `json:"questions"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// ListQuestions fetches the first page of the question feed.
func (c *Client) ListQuestions(ctx context.Context) ([]model.Question, error) {
	const op = "list questions"
	endpoint := c.baseURL + "/api/questions"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServiceError{Op: op, Status: resp.StatusCode, Body: snippet(resp.Body)}
	}
	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &ServiceError{Op: op, Body: "decode: " + err.Error()}
	}
	return out.Questions, nil
}

// DeleteQuestion removes a question via the admin endpoint. The token
// must be non-empty; the check happens before any request goes out.
func (c *Client) DeleteQuestion(ctx context.Context, questionID, authToken string) error {
	const op = "delete question"
	if strings.TrimSpace(authToken) == "" {
		return errors.New("forum: delete question: empty auth token")
	}
	endpoint := fmt.Sprintf("%s/api/questions/%s/admin-delete", c.baseURL, url.PathEscape(questionID))
	return c.doAuthed(ctx, http.MethodDelete, endpoint, authToken, op, questionID)
}

// BanUser disables a user account. Existing questions by the user are
// unaffected server-side; banning only blocks future logins.
func (c *Client) BanUser(ctx context.Context, userID, authToken string) error {
	const op = "ban user"
	if strings.TrimSpace(authToken) == "" {
		return errors.New("forum: ban user: empty auth token")
	}
	endpoint := fmt.Sprintf("%s/api/admin/ban-user/%s?banned=true", c.baseURL, url.PathEscape(userID))
	return c.doAuthed(ctx, http.MethodPut, endpoint, authToken, op, userID)
}

// doAuthed performs a privileged call and maps the response into the
// error taxonomy.
func (c *Client) doAuthed(ctx context.Context, method, endpoint, token, op, id string) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthorizationError{Op: op, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Op: op, ID: id}
	default:
		return &ServiceError{Op: op, Status: resp.StatusCode, Body: snippet(resp.Body)}
	}
}

// snippet reads at most 256 bytes of a response body for error context.
func snippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
