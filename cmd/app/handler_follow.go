package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jadewing/inkstream/internal/common"
	"github.com/jadewing/inkstream/internal/userservice"
)

func (app *application) followUserHandler(w http.ResponseWriter, r *http.Request) {
	followingID, err := app.readIDParam(r, "followingId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.userService.Follow(r.Context(), app.actorID(r), followingID)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrSelfFollow):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "You cannot follow yourself")
		case errors.Is(err, userservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "User not found")
		case errors.Is(err, userservice.ErrAlreadyFollowing):
			app.conflictErrorResponse(w, r, "Already following this user")
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, nil, "Success")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) unfollowUserHandler(w http.ResponseWriter, r *http.Request) {
	followingID, err := app.readIDParam(r, "followingId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.userService.Unfollow(r.Context(), app.actorID(r), followingID)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrSelfFollow):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "You cannot unfollow yourself")
		case errors.Is(err, userservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "User not found")
		case errors.Is(err, userservice.ErrNotFollowing):
			app.conflictErrorResponse(w, r, "You are not following this user")
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, nil, "Successfully unfollowed user")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type followersPage struct {
	Followers []userservice.FollowUser `json:"followers"`
	*common.PageWindow
}

func (app *application) listFollowersHandler(w http.ResponseWriter, r *http.Request) {
	page, err := app.readIDParam(r, "page")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	followers, window, err := app.userService.Followers(r.Context(), app.actorID(r), page)
	if err != nil {
		app.paginationErrorResponse(w, r, err, "No followers found")
		return
	}

	err = app.writeJSON(w, http.StatusOK, followersPage{Followers: followers, PageWindow: window}, "Your Followers")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type followingPage struct {
	Following []userservice.FollowUser `json:"following"`
	*common.PageWindow
}

func (app *application) listFollowingHandler(w http.ResponseWriter, r *http.Request) {
	page, err := app.readIDParam(r, "page")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	following, window, err := app.userService.Following(r.Context(), app.actorID(r), page)
	if err != nil {
		app.paginationErrorResponse(w, r, err, "You are not following anyone")
		return
	}

	err = app.writeJSON(w, http.StatusOK, followingPage{Following: following, PageWindow: window}, "You're Following")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listFollowsHandler(w http.ResponseWriter, r *http.Request) {
	follows, err := app.userService.AllFollows(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, follows, "All Follows")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// paginationErrorResponse maps the pagination error taxonomy onto the wire.
// emptyMessage is the endpoint-specific wording for an empty collection.
func (app *application) paginationErrorResponse(w http.ResponseWriter, r *http.Request, err error, emptyMessage string) {
	var finalPage *common.FinalPageError

	switch {
	case errors.Is(err, common.ErrPageTooSmall):
		app.writeErrorResponse(w, r, http.StatusBadRequest, "Starting Page is 1")
	case errors.Is(err, common.ErrNoItems):
		app.writeErrorResponse(w, r, http.StatusBadRequest, emptyMessage)
	case errors.As(err, &finalPage):
		app.writeErrorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("Final Page is %d", finalPage.TotalPages))
	default:
		app.serverErrorResponse(w, r, err)
	}
}
