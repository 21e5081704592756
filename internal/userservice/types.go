package userservice

import (
	"database/sql"
	"time"
)

const (
	// followPageSize is the fixed page size for follower/following listings.
	followPageSize = 5
)

type UserService struct {
	m      *UserModel
	tokens *TokenService
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// FollowUser is the projection of a user returned by the follower and
// following listings.
type FollowUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Follow is a directional edge of the social graph.
type Follow struct {
	FollowerID  int       `json:"followerId"`
	FollowingID int       `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}
