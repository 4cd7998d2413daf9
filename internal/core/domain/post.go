package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a piece of content authored by a user. Posts always belong to
// exactly one user and are removed together with their author.
type Post struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	UserID    string
	User      *User // populated on detail reads, nil otherwise
}
