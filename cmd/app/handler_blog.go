package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jadewing/inkstream/internal/blogservice"
	"github.com/jadewing/inkstream/internal/common"
)

func (app *application) saveDraftHandler(w http.ResponseWriter, r *http.Request) {
	app.createBlog(w, r, false)
}

func (app *application) submitBlogHandler(w http.ResponseWriter, r *http.Request) {
	app.createBlog(w, r, true)
}

func (app *application) createBlog(w http.ResponseWriter, r *http.Request, publish bool) {
	var input blogservice.CreateBlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	if publish {
		err = app.blogService.Submit(r.Context(), &input, app.actorID(r))
	} else {
		err = app.blogService.SaveDraft(r.Context(), &input, app.actorID(r))
	}
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err)
		case errors.Is(err, blogservice.ErrUserForeignKey):
			app.unauthorizedErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	message := "Blog Saved as Draft"
	if publish {
		message = "Blog Created Successfully"
	}

	err = app.writeJSON(w, http.StatusCreated, nil, message)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type updateBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input updateBlogRequest

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.Update(r.Context(), blogID, app.actorID(r), input.Title, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "Blog not found")
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, nil, "Blog Updated Successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) submitDraftHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.SubmitDraft(r.Context(), blogID, app.actorID(r))
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "Blog not found or already published")
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, nil, "Draft published successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listDraftsHandler(w http.ResponseWriter, r *http.Request) {
	drafts, err := app.blogService.Drafts(r.Context(), app.actorID(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	message := "Your Drafts"
	if len(drafts) == 0 {
		message = "No Drafts"
	}

	err = app.writeJSON(w, http.StatusOK, drafts, message)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) searchBlogsHandler(w http.ResponseWriter, r *http.Request) {
	query := app.readStringParam(r, "query")

	blogs, err := app.blogService.Search(r.Context(), query)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogs, "Filtered Blogs Successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type blogPage struct {
	Blogs []blogservice.BlogListing `json:"blogs"`
	*common.PageWindow
}

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := app.readIDParam(r, "page")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogs, window, err := app.blogService.ListPublished(r.Context(), page)
	if err != nil {
		var finalPage *common.FinalPageError

		switch {
		case errors.Is(err, common.ErrPageTooSmall):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Starting Page Number is 1")
		case errors.Is(err, common.ErrNoItems):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "No Blogs Found")
		case errors.As(err, &finalPage):
			app.writeErrorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("Final Page Number is %d", finalPage.TotalPages))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogPage{Blogs: blogs, PageWindow: window}, "Multiple Blogs")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.Get(r.Context(), blogID)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "Blog Not Found")
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog, "Found the Blog")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.Delete(r.Context(), blogID, app.actorID(r))
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "Blog not found")
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, nil, "Blog deleted successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
