package blogservice

import (
	"context"
	"errors"
)

// ErrCommentNotFound covers a missing comment and a failed authorship check
// alike, for the same reason as ErrNotFound.
var ErrCommentNotFound = errors.New("comment not found")

func (m *BlogModel) insertComment(ctx context.Context, blogID, commentedByID int, comment string) error {
	query := `
		INSERT INTO comments (comment, blog_id, commented_by_id)
		VALUES ($1, $2, $3)`

	_, err := m.db.ExecContext(ctx, query, comment, blogID, commentedByID)
	return err
}

func (m *BlogModel) getComments(ctx context.Context, blogID int) ([]Comment, error) {
	query := `
		SELECT id, comment
		FROM comments
		WHERE blog_id = $1
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		err := rows.Scan(&c.ID, &c.Comment)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// deleteComment removes a comment, requiring the acting user to have authored
// it on the given blog.
func (m *BlogModel) deleteComment(ctx context.Context, commentID, blogID, commentedByID int) error {
	query := `
		DELETE FROM comments
		WHERE id = $1 AND blog_id = $2 AND commented_by_id = $3`

	res, err := m.db.ExecContext(ctx, query, commentID, blogID, commentedByID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// authoredCommentExists reports whether the comment exists on the blog and
// was written by the acting user.
func (m *BlogModel) authoredCommentExists(ctx context.Context, commentID, blogID, commentedByID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND blog_id = $2 AND commented_by_id = $3)`

	err := m.db.QueryRowContext(ctx, query, commentID, blogID, commentedByID).Scan(&exists)
	return exists, err
}
