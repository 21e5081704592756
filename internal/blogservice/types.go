package blogservice

import (
	"database/sql"
	"time"
)

const (
	// blogPageSize is the fixed page size for the published-blog listing.
	blogPageSize = 10
)

type BlogService struct {
	m *BlogModel
}

type BlogModel struct {
	db *sql.DB
}

type Blog struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tag       string    `json:"tag"`
	AuthorID  int       `json:"authorId"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Author struct {
	Username string `json:"username"`
}

// BlogSummary is the projection used by the drafts and search listings.
type BlogSummary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Tag     string `json:"tag"`
	Author  Author `json:"author"`
}

// BlogListing is a published blog in the paginated bulk listing. CreatedAt is
// pre-rendered in the fixed human-readable format.
type BlogListing struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tag       string `json:"tag"`
	CreatedAt string `json:"createdAt"`
	Author    Author `json:"author"`
}

type Comment struct {
	ID      int    `json:"id"`
	Comment string `json:"comment"`
}

// BlogDetail is the single-blog view with its author and comments.
type BlogDetail struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tag       string    `json:"tag"`
	CreatedAt string    `json:"createdAt"`
	Author    Author    `json:"author"`
	Comments  []Comment `json:"comments"`
}

// Like is a single like with the liking user and a pre-rendered timestamp.
type Like struct {
	CreatedAt string `json:"createdAt"`
	User      Author `json:"user"`
}
