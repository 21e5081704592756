package userservice

import (
	"context"
	"errors"

	"github.com/jadewing/inkstream/internal/common"
)

var (
	ErrSelfFollow       = errors.New("users cannot follow themselves")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
)

func (m *UserModel) insertFollow(ctx context.Context, followerID, followingID int) error {
	query := `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)`

	_, err := m.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "follows_pkey"):
			return ErrAlreadyFollowing
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) deleteFollow(ctx context.Context, followerID, followingID int) error {
	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND following_id = $2`

	res, err := m.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotFollowing
	}

	return nil
}

func (m *UserModel) countFollowers(ctx context.Context, userID int) (int, error) {
	var count int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM follows WHERE following_id = $1`, userID).Scan(&count)
	return count, err
}

func (m *UserModel) countFollowing(ctx context.Context, userID int) (int, error) {
	var count int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID).Scan(&count)
	return count, err
}

// getFollowers returns the users following userID, oldest follow first.
func (m *UserModel) getFollowers(ctx context.Context, userID, limit, offset int) ([]FollowUser, error) {
	query := `
		SELECT u.id, u.username
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY f.created_at
		LIMIT $2 OFFSET $3`

	return m.queryFollowUsers(ctx, query, userID, limit, offset)
}

// getFollowing returns the users that userID follows, oldest follow first.
func (m *UserModel) getFollowing(ctx context.Context, userID, limit, offset int) ([]FollowUser, error) {
	query := `
		SELECT u.id, u.username
		FROM follows f
		JOIN users u ON u.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at
		LIMIT $2 OFFSET $3`

	return m.queryFollowUsers(ctx, query, userID, limit, offset)
}

func (m *UserModel) queryFollowUsers(ctx context.Context, query string, args ...any) ([]FollowUser, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []FollowUser
	for rows.Next() {
		var u FollowUser
		err := rows.Scan(&u.ID, &u.Username)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (m *UserModel) getAllFollows(ctx context.Context) ([]Follow, error) {
	query := `
		SELECT follower_id, following_id, created_at
		FROM follows
		ORDER BY created_at`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var follows []Follow
	for rows.Next() {
		var f Follow
		err := rows.Scan(&f.FollowerID, &f.FollowingID, &f.CreatedAt)
		if err != nil {
			return nil, err
		}
		follows = append(follows, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return follows, nil
}
