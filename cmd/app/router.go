package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes builds the API surface. httprouter refuses a wildcard segment next
// to static siblings in the same method tree, so the two bare /blog/:blogId
// routes live on a second router reached through the primary's NotFound.
func (app *application) routes() http.Handler {
	router := httprouter.New()

	fallback := httprouter.New()
	fallback.NotFound = http.HandlerFunc(app.routeNotFoundHandler)
	fallback.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedHandler)
	fallback.HandlerFunc(http.MethodGet, "/api/v1/blog/:blogId", app.requireAuth(app.getBlogHandler))
	fallback.HandlerFunc(http.MethodDelete, "/api/v1/blog/:blogId", app.requireAuth(app.deleteBlogHandler))

	router.NotFound = fallback
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedHandler)

	// user service
	router.HandlerFunc(http.MethodPost, "/api/v1/user/signup", app.signupHandler)
	router.HandlerFunc(http.MethodPost, "/api/v1/user/signin", app.signinHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/user/all", app.listUsersHandler)

	// follow graph
	router.HandlerFunc(http.MethodPost, "/api/v1/user/follow/:followingId", app.requireAuth(app.followUserHandler))
	router.HandlerFunc(http.MethodDelete, "/api/v1/user/follow/:followingId", app.requireAuth(app.unfollowUserHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/user/follow/followers/:page", app.requireAuth(app.listFollowersHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/user/follow/following/:page", app.requireAuth(app.listFollowingHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/user/follow/all", app.requireAuth(app.listFollowsHandler))

	// blog service
	router.HandlerFunc(http.MethodPost, "/api/v1/blog/saveAsDraft", app.requireAuth(app.saveDraftHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/blog/submit", app.requireAuth(app.submitBlogHandler))
	router.HandlerFunc(http.MethodPut, "/api/v1/blog/update/:blogId", app.requireAuth(app.updateBlogHandler))
	router.HandlerFunc(http.MethodPut, "/api/v1/blog/submitDraft/:blogId", app.requireAuth(app.submitDraftHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/drafts", app.requireAuth(app.listDraftsHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/search/:query", app.requireAuth(app.searchBlogsHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/bulk/:page", app.requireAuth(app.listBlogsHandler))

	// comments
	router.HandlerFunc(http.MethodPost, "/api/v1/blog/comment/:blogId", app.requireAuth(app.addCommentHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/comment/:blogId", app.requireAuth(app.listCommentsHandler))
	router.HandlerFunc(http.MethodDelete, "/api/v1/blog/comment/:blogId/:commentId", app.requireAuth(app.deleteCommentHandler))

	// likes
	router.HandlerFunc(http.MethodPost, "/api/v1/blog/likes/blogLikes/:blogId", app.requireAuth(app.likeBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/api/v1/blog/likes/blogLikes/:blogId", app.requireAuth(app.unlikeBlogHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/likes/blogLikes/:blogId", app.requireAuth(app.listBlogLikesHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/blog/likes/commentLikes/:blogId/:commentId", app.requireAuth(app.likeCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/api/v1/blog/likes/commentLikes/:blogId/:commentId", app.requireAuth(app.unlikeCommentHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/likes/commentLikes/:blogId/:commentId", app.requireAuth(app.listCommentLikesHandler))

	return app.recoverPanic(app.logRequest(app.authenticate(router)))
}
