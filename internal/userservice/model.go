package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/jadewing/inkstream/internal/common"
)

var (
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrNotFound       = errors.New("user not found")
)

func newUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

func (m *UserModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	args := []any{
		u.Username,
		u.Email,
		u.Password.hash,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "users_email_key"):
			return ErrDuplicateEmail
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) getByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, username, email, password, created_at
		FROM users
		WHERE email = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Username, &u.Email, &u.Password.hash, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) getAll(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, username, email, created_at
		FROM users
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
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

// exists reports whether both user ids are present.
func (m *UserModel) exists(ctx context.Context, ids ...int) (bool, error) {
	query := `
		SELECT COUNT(DISTINCT id)
		FROM users
		WHERE id = ANY($1)`

	set := make(map[int]struct{}, len(ids))
	args := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			set[id] = struct{}{}
			args = append(args, int64(id))
		}
	}

	var count int
	err := m.db.QueryRowContext(ctx, query, pq.Array(args)).Scan(&count)
	if err != nil {
		return false, err
	}

	return count == len(set), nil
}
