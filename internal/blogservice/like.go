package blogservice

import (
	"context"
	"errors"
	"time"

	"github.com/jadewing/inkstream/internal/common"
)

var (
	ErrAlreadyLiked = errors.New("already liked")
	ErrNotLiked     = errors.New("not liked")
)

func (m *BlogModel) insertBlogLike(ctx context.Context, likedByID, blogID int) error {
	query := `
		INSERT INTO blog_likes (liked_by_id, blog_id)
		VALUES ($1, $2)`

	_, err := m.db.ExecContext(ctx, query, likedByID, blogID)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "blog_likes_pkey"):
			return ErrAlreadyLiked
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) deleteBlogLike(ctx context.Context, likedByID, blogID int) error {
	query := `
		DELETE FROM blog_likes
		WHERE liked_by_id = $1 AND blog_id = $2`

	return m.deleteLike(ctx, query, likedByID, blogID)
}

func (m *BlogModel) getBlogLikes(ctx context.Context, blogID int) ([]Like, error) {
	query := `
		SELECT l.created_at, u.username
		FROM blog_likes l
		JOIN users u ON l.liked_by_id = u.id
		WHERE l.blog_id = $1
		ORDER BY l.created_at`

	return m.queryLikes(ctx, query, blogID)
}

func (m *BlogModel) insertCommentLike(ctx context.Context, likedByID, commentID int) error {
	query := `
		INSERT INTO comment_likes (liked_by_id, comment_id)
		VALUES ($1, $2)`

	_, err := m.db.ExecContext(ctx, query, likedByID, commentID)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "comment_likes_pkey"):
			return ErrAlreadyLiked
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) deleteCommentLike(ctx context.Context, likedByID, commentID int) error {
	query := `
		DELETE FROM comment_likes
		WHERE liked_by_id = $1 AND comment_id = $2`

	return m.deleteLike(ctx, query, likedByID, commentID)
}

func (m *BlogModel) getCommentLikes(ctx context.Context, commentID int) ([]Like, error) {
	query := `
		SELECT l.created_at, u.username
		FROM comment_likes l
		JOIN users u ON l.liked_by_id = u.id
		WHERE l.comment_id = $1
		ORDER BY l.created_at`

	return m.queryLikes(ctx, query, commentID)
}

func (m *BlogModel) deleteLike(ctx context.Context, query string, args ...any) error {
	res, err := m.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotLiked
	}

	return nil
}

func (m *BlogModel) queryLikes(ctx context.Context, query string, args ...any) ([]Like, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []Like
	for rows.Next() {
		var (
			l         Like
			createdAt time.Time
		)
		err := rows.Scan(&createdAt, &l.User.Username)
		if err != nil {
			return nil, err
		}
		l.CreatedAt = formatTime(createdAt)
		likes = append(likes, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return likes, nil
}
