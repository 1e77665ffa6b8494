package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"forum-moderator/internal/feed"

	"gopkg.in/yaml.v3"
)

// Row is one question prepared for display or export.
type Row struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Author   string   `json:"author" yaml:"author"`
	AuthorID string   `json:"authorId" yaml:"author_id"`
	Votes    int      `json:"votes" yaml:"votes"`
	Answers  int      `json:"answers" yaml:"answers"`
	Answered bool     `json:"answered" yaml:"answered"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Created  string   `json:"created" yaml:"created"`
}

// View is the full render payload: status, error message and the
// sorted question rows.
type View struct {
	Status       string `json:"status" yaml:"status"`
	ErrorMessage string `json:"errorMessage,omitempty" yaml:"error_message,omitempty"`
	SortKey      string `json:"sortKey" yaml:"sort_key"`
	Rows         []Row  `json:"questions" yaml:"questions"`
}

//go:embed feed.tmpl
var feedTpl string

var compiled = template.Must(template.New("feed").Parse(feedTpl))

// NewView flattens a feed snapshot for rendering.
func NewView(s feed.Snapshot) View {
	v := View{
		Status:       string(s.Status),
		ErrorMessage: s.ErrorMessage,
		SortKey:      string(s.SortKey),
		Rows:         make([]Row, 0, len(s.Questions)),
	}
	for _, q := range s.Questions {
		v.Rows = append(v.Rows, Row{
			ID:       q.ID,
			Title:    q.Title,
			Author:   q.Author.Username,
			AuthorID: q.Author.ID,
			Votes:    q.Votes,
			Answers:  q.AnswerCount(),
			Answered: q.Answered(),
			Tags:     q.Tags,
			Created:  q.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return v
}

// Render encodes a view in the requested format: "table" (default),
// "json" or "yaml".
func Render(v View, format string) (string, error) {
	switch format {
	case "", "table":
		var buf bytes.Buffer
		if err := compiled.Execute(&buf, v); err != nil {
			return "", err
		}
		return buf.String(), nil
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}
