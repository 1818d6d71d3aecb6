package models

import (
	"time"
)

// Vote is the caller's remembered vote on an entity. One slot per entity,
// not per (user, entity) pair: the store models a single session's view.
type Vote string

const (
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
	VoteNone Vote = ""
)

type Tag struct {
	ID   int    `json:"tag_id"` //nolint:tagliatelle
	Name string `json:"name"`
}

type Question struct {
	ID          int       `json:"question_id"` //nolint:tagliatelle
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int       `json:"user_id"` //nolint:tagliatelle
	User        *User     `json:"user,omitempty"`
	Tags        []Tag     `json:"tags"`
	AnswerCount int       `json:"answer_count"` //nolint:tagliatelle
	Votes       int       `json:"votes"`
	UserVote    Vote      `json:"user_vote,omitempty"` //nolint:tagliatelle
	CreatedAt   time.Time `json:"created_at"`          //nolint:tagliatelle
	UpdatedAt   time.Time `json:"updated_at"`          //nolint:tagliatelle
}

type Answer struct {
	ID         int       `json:"answer_id"`   //nolint:tagliatelle
	QuestionID int       `json:"question_id"` //nolint:tagliatelle
	UserID     int       `json:"user_id"`     //nolint:tagliatelle
	User       *User     `json:"user,omitempty"`
	Content    string    `json:"content"`
	Votes      int       `json:"votes"`
	UserVote   Vote      `json:"user_vote,omitempty"` //nolint:tagliatelle
	CreatedAt  time.Time `json:"created_at"`          //nolint:tagliatelle
}
