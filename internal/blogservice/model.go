package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jadewing/inkstream/internal/common"
)

var (
	// ErrNotFound covers both a missing blog and a failed ownership check so
	// that callers cannot probe for the existence of other users' blogs.
	ErrNotFound = errors.New("blog not found")

	ErrUserForeignKey = errors.New("author does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

func (m *BlogModel) insert(ctx context.Context, title, content, tag string, authorID int, published bool) error {
	query := `
		INSERT INTO blogs (title, content, tag, author_id, published)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := m.db.ExecContext(ctx, query, title, content, tag, authorID, published)
	if err != nil {
		switch {
		case common.ForeignKeyViolation(err, "blogs_author_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

// update rewrites title and content. The author filter doubles as the
// ownership check: zero affected rows means missing or not owned.
func (m *BlogModel) update(ctx context.Context, blogID, authorID int, title, content string) error {
	query := `
		UPDATE blogs
		SET title = $1, content = $2, updated_at = now()
		WHERE id = $3 AND author_id = $4`

	res, err := m.db.ExecContext(ctx, query, title, content, blogID, authorID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// publishDraft flips an unpublished blog to published and restamps created_at
// so the blog surfaces as new. Publishing is one-way.
func (m *BlogModel) publishDraft(ctx context.Context, blogID, authorID int) error {
	query := `
		UPDATE blogs
		SET published = true, created_at = now(), updated_at = now()
		WHERE id = $1 AND author_id = $2 AND NOT published`

	res, err := m.db.ExecContext(ctx, query, blogID, authorID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (m *BlogModel) delete(ctx context.Context, blogID, authorID int) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1 AND author_id = $2`

	res, err := m.db.ExecContext(ctx, query, blogID, authorID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ownedExists reports whether the blog exists and is authored by authorID.
func (m *BlogModel) ownedExists(ctx context.Context, blogID, authorID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM blogs WHERE id = $1 AND author_id = $2)`

	err := m.db.QueryRowContext(ctx, query, blogID, authorID).Scan(&exists)
	return exists, err
}

// exists reports whether the blog exists at all, published or not.
func (m *BlogModel) exists(ctx context.Context, blogID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM blogs WHERE id = $1)`

	err := m.db.QueryRowContext(ctx, query, blogID).Scan(&exists)
	return exists, err
}

func (m *BlogModel) getDrafts(ctx context.Context, authorID int) ([]BlogSummary, error) {
	query := `
		SELECT b.id, b.title, b.content, b.tag, u.username
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE NOT b.published AND b.author_id = $1
		ORDER BY b.id`

	return m.querySummaries(ctx, query, authorID)
}

// search matches the query as a case-sensitive substring of the title or the
// content of published blogs.
func (m *BlogModel) search(ctx context.Context, query string) ([]BlogSummary, error) {
	stmt := `
		SELECT b.id, b.title, b.content, b.tag, u.username
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.published AND (position($1 in b.title) > 0 OR position($1 in b.content) > 0)
		ORDER BY b.id`

	return m.querySummaries(ctx, stmt, query)
}

func (m *BlogModel) querySummaries(ctx context.Context, query string, args ...any) ([]BlogSummary, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []BlogSummary
	for rows.Next() {
		var b BlogSummary
		err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.Tag, &b.Author.Username)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BlogModel) countPublished(ctx context.Context) (int, error) {
	var count int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs WHERE published`).Scan(&count)
	return count, err
}

// getPublished returns a window of published blogs, newest first.
func (m *BlogModel) getPublished(ctx context.Context, limit, offset int) ([]BlogListing, error) {
	query := `
		SELECT b.id, b.title, b.content, b.tag, b.created_at, u.username
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.published
		ORDER BY b.id DESC
		LIMIT $1 OFFSET $2`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []BlogListing
	for rows.Next() {
		var (
			b         BlogListing
			createdAt time.Time
		)
		err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.Tag, &createdAt, &b.Author.Username)
		if err != nil {
			return nil, err
		}
		b.CreatedAt = formatTime(createdAt)
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// getDetail fetches a published blog with its author and comments.
func (m *BlogModel) getDetail(ctx context.Context, blogID int) (*BlogDetail, error) {
	query := `
		SELECT b.id, b.title, b.content, b.tag, b.created_at, u.username
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.id = $1 AND b.published`

	var (
		detail    BlogDetail
		createdAt time.Time
	)

	err := m.db.QueryRowContext(ctx, query, blogID).Scan(&detail.ID, &detail.Title, &detail.Content, &detail.Tag, &createdAt, &detail.Author.Username)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	detail.CreatedAt = formatTime(createdAt)

	comments, err := m.getComments(ctx, blogID)
	if err != nil {
		return nil, err
	}
	detail.Comments = comments

	return &detail, nil
}
