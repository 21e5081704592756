package userservice

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jadewing/inkstream/internal/common"
)

func setupTestEnvironment(t *testing.T) (*UserService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)
	s := NewUserService(db, "test-secret")

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM follows")
		if err != nil {
			return err
		}

		_, err = db.Exec("DELETE FROM users")
		return err
	}

	return s, db, cleanup
}

// createAccount signs up a fresh user and resolves its id through the issued
// token.
func createAccount(ctx context.Context, t *testing.T, s *UserService, username string) int {
	token, err := s.Signup(ctx, username, fmt.Sprintf("%s@example.com", username), "TestPassword123!")
	assert.NoError(t, err)
	assert.NotNil(t, token)

	id, err := s.VerifyToken(*token)
	assert.NoError(t, err)

	return id
}

func TestSignup(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	t.Run("valid signup", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		token, err := s.Signup(ctx, "testuser", "testuser@example.com", "TestPassword123!")
		assert.NoError(t, err)
		assert.NotNil(t, token)

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)

		// the password column must never hold the plain text
		var stored []byte
		err = db.QueryRow("SELECT password FROM users WHERE email = 'testuser@example.com'").Scan(&stored)
		assert.NoError(t, err)
		assert.NotEqual(t, []byte("TestPassword123!"), stored)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		token, err := s.Signup(ctx, "otheruser", "testuser@example.com", "TestPassword123!")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
		assert.Nil(t, token)
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		token, err := s.Signup(ctx, "", "", "")
		assert.ErrorAs(t, err, &common.ValidationError{})
		assert.Nil(t, token)
	})

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}

func TestSignin(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID := createAccount(ctx, t, s, "signinuser")

	testCases := []struct {
		name        string
		email       string
		password    string
		expectedErr error
	}{
		{
			name:     "valid credentials",
			email:    "signinuser@example.com",
			password: "TestPassword123!",
		},
		{
			name:        "wrong password",
			email:       "signinuser@example.com",
			password:    "WrongPassword123!",
			expectedErr: ErrAuthenticationFailure,
		},
		{
			name:        "unknown email",
			email:       "nobody@example.com",
			password:    "TestPassword123!",
			expectedErr: ErrAuthenticationFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := s.Signin(ctx, tc.email, tc.password)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, token)

			id, err := s.VerifyToken(*token)
			assert.NoError(t, err)
			assert.Equal(t, userID, id)
		})
	}

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}

func TestFollow(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	alice := createAccount(ctx, t, s, "alice")
	bob := createAccount(ctx, t, s, "bob")

	t.Run("self follow", func(t *testing.T) {
		err := s.Follow(ctx, alice, alice)
		assert.ErrorIs(t, err, ErrSelfFollow)
	})

	t.Run("missing user", func(t *testing.T) {
		err := s.Follow(ctx, alice, bob+1000)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("valid follow", func(t *testing.T) {
		err := s.Follow(ctx, alice, bob)
		assert.NoError(t, err)

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM follows WHERE follower_id = $1 AND following_id = $2", alice, bob).Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("duplicate follow", func(t *testing.T) {
		err := s.Follow(ctx, alice, bob)
		assert.ErrorIs(t, err, ErrAlreadyFollowing)
	})

	t.Run("unfollow", func(t *testing.T) {
		err := s.Unfollow(ctx, alice, bob)
		assert.NoError(t, err)

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM follows").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("unfollow when not following", func(t *testing.T) {
		err := s.Unfollow(ctx, alice, bob)
		assert.ErrorIs(t, err, ErrNotFollowing)
	})

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}

func TestFollowersPagination(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	target := createAccount(ctx, t, s, "target")

	for i := 0; i < 6; i++ {
		follower := createAccount(ctx, t, s, fmt.Sprintf("follower%d", i))
		err := s.Follow(ctx, follower, target)
		assert.NoError(t, err)
	}

	t.Run("first page is full", func(t *testing.T) {
		followers, window, err := s.Followers(ctx, target, 1)
		assert.NoError(t, err)
		assert.Len(t, followers, 5)
		assert.Equal(t, 1, window.CurrentPage)
		assert.Equal(t, 2, window.TotalPages)
		assert.True(t, window.HasNextPage)
		assert.False(t, window.HasPreviousPage)
	})

	t.Run("final page holds the remainder", func(t *testing.T) {
		followers, window, err := s.Followers(ctx, target, 2)
		assert.NoError(t, err)
		assert.Len(t, followers, 1)
		assert.False(t, window.HasNextPage)
		assert.True(t, window.HasPreviousPage)
	})

	t.Run("page beyond final", func(t *testing.T) {
		_, _, err := s.Followers(ctx, target, 3)

		var finalPage *common.FinalPageError
		assert.ErrorAs(t, err, &finalPage)
		assert.Equal(t, 2, finalPage.TotalPages)
	})

	t.Run("page zero", func(t *testing.T) {
		_, _, err := s.Followers(ctx, target, 0)
		assert.ErrorIs(t, err, common.ErrPageTooSmall)
	})

	t.Run("no followers", func(t *testing.T) {
		lonely := createAccount(ctx, t, s, "lonely")
		_, _, err := s.Followers(ctx, lonely, 1)
		assert.ErrorIs(t, err, common.ErrNoItems)
	})

	t.Run("target follows no one", func(t *testing.T) {
		following, window, err := s.Following(ctx, target, 1)
		assert.ErrorIs(t, err, common.ErrNoItems)
		assert.Nil(t, following)
		assert.Nil(t, window)
	})

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}
