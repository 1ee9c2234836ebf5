package model

import "github.com/jackc/pgx/v5/pgtype"

// Post carries a single authorship reference: the author's username,
// which is also the identity token the feed service checks on mutation.
type Post struct {
	ID             int64            `json:"id"`
	AuthorUsername string           `json:"author_username"`
	Content        string           `json:"content"`
	CreatedAt      pgtype.Timestamp `json:"created_at"`
}
