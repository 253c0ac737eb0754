package domain

import "time"

// Post is a blog entry owned by exactly one user. All reads and writes are
// scoped to the owner; other users cannot observe that the post exists.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
