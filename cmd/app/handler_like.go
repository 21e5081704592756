package main

import (
	"errors"
	"net/http"

	"github.com/jadewing/inkstream/internal/blogservice"
)

func (app *application) likeBlogHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.LikeBlog(r.Context(), blogID, app.actorID(r))
	if err != nil {
		app.likeErrorResponse(w, r, err, "You have already liked this blog", "You have not liked this blog")
		return
	}

	err = app.writeJSON(w, http.StatusCreated, nil, "You've Liked this Blog")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) unlikeBlogHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.UnlikeBlog(r.Context(), blogID, app.actorID(r))
	if err != nil {
		app.likeErrorResponse(w, r, err, "You have already liked this blog", "You have not liked this blog")
		return
	}

	err = app.writeJSON(w, http.StatusOK, nil, "Liked removed on blog")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type likesResponse struct {
	Likes      []blogservice.Like `json:"likes"`
	TotalLikes int                `json:"totalLikes"`
}

func (app *application) listBlogLikesHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	likes, err := app.blogService.BlogLikes(r.Context(), blogID, app.actorID(r))
	if err != nil {
		app.likeErrorResponse(w, r, err, "", "")
		return
	}

	err = app.writeJSON(w, http.StatusOK, likesResponse{Likes: likes, TotalLikes: len(likes)}, "Blog Likes")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) likeCommentHandler(w http.ResponseWriter, r *http.Request) {
	blogID, commentID, err := app.readCommentParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.LikeComment(r.Context(), blogID, commentID, app.actorID(r))
	if err != nil {
		app.likeErrorResponse(w, r, err, "You have already liked this comment", "You have not liked this comment")
		return
	}

	err = app.writeJSON(w, http.StatusCreated, nil, "You've Liked this Comment")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) unlikeCommentHandler(w http.ResponseWriter, r *http.Request) {
	blogID, commentID, err := app.readCommentParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.UnlikeComment(r.Context(), blogID, commentID, app.actorID(r))
	if err != nil {
		app.likeErrorResponse(w, r, err, "You have already liked this comment", "You have not liked this comment")
		return
	}

	err = app.writeJSON(w, http.StatusOK, nil, "Liked removed on comment")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listCommentLikesHandler(w http.ResponseWriter, r *http.Request) {
	blogID, commentID, err := app.readCommentParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	likes, err := app.blogService.CommentLikes(r.Context(), blogID, commentID, app.actorID(r))
	if err != nil {
		app.likeErrorResponse(w, r, err, "", "")
		return
	}

	err = app.writeJSON(w, http.StatusOK, likesResponse{Likes: likes, TotalLikes: len(likes)}, "Comment Likes")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) readCommentParams(r *http.Request) (int, int, error) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		return 0, 0, err
	}

	commentID, err := app.readIDParam(r, "commentId")
	if err != nil {
		return 0, 0, err
	}

	return blogID, commentID, nil
}

// likeErrorResponse maps like-operation failures onto the wire. The conflict
// messages vary by endpoint; guard failures always report not found.
func (app *application) likeErrorResponse(w http.ResponseWriter, r *http.Request, err error, alreadyMessage, notLikedMessage string) {
	switch {
	case errors.Is(err, blogservice.ErrNotFound):
		app.notFoundErrorResponse(w, r, "Blog Not Found")
	case errors.Is(err, blogservice.ErrCommentNotFound):
		app.notFoundErrorResponse(w, r, "Comment Not Found")
	case errors.Is(err, blogservice.ErrAlreadyLiked):
		app.conflictErrorResponse(w, r, alreadyMessage)
	case errors.Is(err, blogservice.ErrNotLiked):
		app.conflictErrorResponse(w, r, notLikedMessage)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
