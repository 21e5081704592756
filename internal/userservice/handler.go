package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jadewing/inkstream/internal/common"
)

var ErrAuthenticationFailure = fmt.Errorf("invalid credentials")

func NewUserService(db *sql.DB, tokenSecret string) *UserService {
	return &UserService{
		m:      newUserModel(db),
		tokens: NewTokenService(tokenSecret),
	}
}

// Signup creates a new user account and returns a signed identity token for
// it. The password is stored as a bcrypt hash, never in plain text.
func (s *UserService) Signup(ctx context.Context, username, email, password string) (*string, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Email:    email,
	}

	err := u.Password.set(password)
	if err != nil {
		return nil, err
	}

	err = s.m.insert(ctx, &u)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// Signin checks the credentials and returns a signed identity token. A missing
// account and a wrong password both fail with ErrAuthenticationFailure.
func (s *UserService) Signin(ctx context.Context, email, password string) (*string, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrAuthenticationFailure
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// VerifyToken extracts the acting user id from a signed identity token.
func (s *UserService) VerifyToken(token string) (int, error) {
	return s.tokens.Verify(token)
}

// Users returns all user accounts.
func (s *UserService) Users(ctx context.Context) ([]User, error) {
	return s.m.getAll(ctx)
}

// Follow records that follower follows following. Both users must exist,
// self-follows are rejected and duplicate pairs fail with ErrAlreadyFollowing.
func (s *UserService) Follow(ctx context.Context, followerID, followingID int) error {
	v := common.NewValidator()
	validateID(v, followerID, "follower_id")
	validateID(v, followingID, "following_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	if followerID == followingID {
		return ErrSelfFollow
	}

	ok, err := s.m.exists(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	return s.m.insertFollow(ctx, followerID, followingID)
}

// Unfollow removes the follow edge. Removing a pair that does not exist fails
// with ErrNotFollowing.
func (s *UserService) Unfollow(ctx context.Context, followerID, followingID int) error {
	v := common.NewValidator()
	validateID(v, followerID, "follower_id")
	validateID(v, followingID, "following_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	if followerID == followingID {
		return ErrSelfFollow
	}

	ok, err := s.m.exists(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	return s.m.deleteFollow(ctx, followerID, followingID)
}

// Followers returns the requested page of users following userID.
func (s *UserService) Followers(ctx context.Context, userID, page int) ([]FollowUser, *common.PageWindow, error) {
	total, err := s.m.countFollowers(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	window, err := common.Paginate(page, total, followPageSize)
	if err != nil {
		return nil, nil, err
	}

	users, err := s.m.getFollowers(ctx, userID, window.Limit, window.Skip)
	if err != nil {
		return nil, nil, err
	}

	return users, window, nil
}

// Following returns the requested page of users that userID follows.
func (s *UserService) Following(ctx context.Context, userID, page int) ([]FollowUser, *common.PageWindow, error) {
	total, err := s.m.countFollowing(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	window, err := common.Paginate(page, total, followPageSize)
	if err != nil {
		return nil, nil, err
	}

	users, err := s.m.getFollowing(ctx, userID, window.Limit, window.Skip)
	if err != nil {
		return nil, nil, err
	}

	return users, window, nil
}

// AllFollows returns every follow edge in the graph.
func (s *UserService) AllFollows(ctx context.Context) ([]Follow, error) {
	return s.m.getAllFollows(ctx)
}
