package model

import "time"

// Author identifies the user who posted a question.
type Author struct {
	ID       string `json:"userId"`
	Username string `json:"username"`
}

// Question represents a single community question as delivered by the
// forum service. Votes is the service-computed total; it is never
// recomputed client-side.
type Question struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Author           Author    `json:"author"`
	Tags             []string  `json:"tags"`
	Votes            int       `json:"votes"`
	AnswerIDs        []string  `json:"answers"`
	AcceptedAnswerID string    `json:"acceptedAnswerId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AnswerCount returns the number of answers attached to the question.
func (q Question) AnswerCount() int { return len(q.AnswerIDs) }

// Answered reports whether the question has an accepted answer.
func (q Question) Answered() bool { return q.AcceptedAnswerID != "" }
