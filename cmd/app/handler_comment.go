package main

import (
	"errors"
	"net/http"

	"github.com/jadewing/inkstream/internal/blogservice"
	"github.com/jadewing/inkstream/internal/common"
)

type addCommentRequest struct {
	Comment string `json:"comment"`
}

func (app *application) addCommentHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input addCommentRequest

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.AddComment(r.Context(), blogID, app.actorID(r), input.Comment)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "Invalid Blog ID")
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, nil, "Comment added successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comments, err := app.blogService.Comments(r.Context(), blogID)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "Invalid Blog ID")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if len(comments) == 0 {
		err = app.writeJSON(w, http.StatusOK, nil, "No Comments")
	} else {
		err = app.writeJSON(w, http.StatusOK, map[string]any{"comments": comments}, "All Comments")
	}
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	commentID, err := app.readIDParam(r, "commentId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.DeleteComment(r.Context(), blogID, commentID, app.actorID(r))
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "Invalid Blog ID")
		case errors.Is(err, blogservice.ErrCommentNotFound):
			app.notFoundErrorResponse(w, r, "Comment Not Found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, nil, "Comment Deleted Successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
