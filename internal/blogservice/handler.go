package blogservice

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jadewing/inkstream/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

type CreateBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tag     string `json:"tag"`
}

// SaveDraft creates an unpublished blog for the author. The tag is normalized
// to lowercase.
func (s *BlogService) SaveDraft(ctx context.Context, req *CreateBlogRequest, authorID int) error {
	return s.create(ctx, req, authorID, false)
}

// Submit creates a blog that is published immediately.
func (s *BlogService) Submit(ctx context.Context, req *CreateBlogRequest, authorID int) error {
	return s.create(ctx, req, authorID, true)
}

func (s *BlogService) create(ctx context.Context, req *CreateBlogRequest, authorID int, published bool) error {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	validateID(v, authorID, "author_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.insert(ctx, req.Title, req.Content, strings.ToLower(req.Tag), authorID, published)
}

// Update rewrites the title and content of the author's own blog. Blogs owned
// by other users report not found.
func (s *BlogService) Update(ctx context.Context, blogID, authorID int, title, content string) error {
	v := common.NewValidator()
	validateID(v, blogID, "blog_id")
	validateTitle(v, title)
	validateContent(v, content)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.update(ctx, blogID, authorID, title, content)
}

// SubmitDraft publishes the author's own unpublished blog. A blog that is
// already published, missing, or owned by another user reports not found and
// nothing is mutated.
func (s *BlogService) SubmitDraft(ctx context.Context, blogID, authorID int) error {
	v := common.NewValidator()
	validateID(v, blogID, "blog_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.publishDraft(ctx, blogID, authorID)
}

// Delete removes the author's own blog along with its comments and likes.
func (s *BlogService) Delete(ctx context.Context, blogID, authorID int) error {
	v := common.NewValidator()
	validateID(v, blogID, "blog_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.delete(ctx, blogID, authorID)
}

// Drafts lists the acting user's unpublished blogs.
func (s *BlogService) Drafts(ctx context.Context, authorID int) ([]BlogSummary, error) {
	return s.m.getDrafts(ctx, authorID)
}

// Search returns published blogs whose title or content contains the query as
// a case-sensitive substring, unpaginated.
func (s *BlogService) Search(ctx context.Context, query string) ([]BlogSummary, error) {
	return s.m.search(ctx, query)
}

// ListPublished returns the requested page of published blogs, newest first.
func (s *BlogService) ListPublished(ctx context.Context, page int) ([]BlogListing, *common.PageWindow, error) {
	total, err := s.m.countPublished(ctx)
	if err != nil {
		return nil, nil, err
	}

	window, err := common.Paginate(page, total, blogPageSize)
	if err != nil {
		return nil, nil, err
	}

	blogs, err := s.m.getPublished(ctx, window.Limit, window.Skip)
	if err != nil {
		return nil, nil, err
	}

	return blogs, window, nil
}

// Get returns a published blog with its author and comments. Drafts report
// not found for every caller.
func (s *BlogService) Get(ctx context.Context, blogID int) (*BlogDetail, error) {
	v := common.NewValidator()
	validateID(v, blogID, "blog_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getDetail(ctx, blogID)
}

// AddComment records a comment on the acting user's own blog.
func (s *BlogService) AddComment(ctx context.Context, blogID, actorID int, comment string) error {
	v := common.NewValidator()
	validateID(v, blogID, "blog_id")
	validateComment(v, comment)
	if !v.Valid() {
		return v.ValidationError()
	}

	ok, err := s.m.ownedExists(ctx, blogID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	return s.m.insertComment(ctx, blogID, actorID, comment)
}

// Comments lists a blog's comments. The blog must exist.
func (s *BlogService) Comments(ctx context.Context, blogID int) ([]Comment, error) {
	ok, err := s.m.exists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	return s.m.getComments(ctx, blogID)
}

// DeleteComment removes a comment the acting user wrote on the blog.
func (s *BlogService) DeleteComment(ctx context.Context, blogID, commentID, actorID int) error {
	ok, err := s.m.exists(ctx, blogID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	return s.m.deleteComment(ctx, commentID, blogID, actorID)
}

// LikeBlog likes the acting user's own blog at most once.
func (s *BlogService) LikeBlog(ctx context.Context, blogID, actorID int) error {
	if err := s.guardBlog(ctx, blogID, actorID); err != nil {
		return err
	}

	return s.m.insertBlogLike(ctx, actorID, blogID)
}

// UnlikeBlog removes the acting user's like from their own blog.
func (s *BlogService) UnlikeBlog(ctx context.Context, blogID, actorID int) error {
	if err := s.guardBlog(ctx, blogID, actorID); err != nil {
		return err
	}

	return s.m.deleteBlogLike(ctx, actorID, blogID)
}

// BlogLikes lists the likes on the acting user's own blog.
func (s *BlogService) BlogLikes(ctx context.Context, blogID, actorID int) ([]Like, error) {
	if err := s.guardBlog(ctx, blogID, actorID); err != nil {
		return nil, err
	}

	return s.m.getBlogLikes(ctx, blogID)
}

// LikeComment likes a comment at most once. The acting user must own the blog
// and have authored the comment.
func (s *BlogService) LikeComment(ctx context.Context, blogID, commentID, actorID int) error {
	if err := s.guardComment(ctx, blogID, commentID, actorID); err != nil {
		return err
	}

	return s.m.insertCommentLike(ctx, actorID, commentID)
}

// UnlikeComment removes the acting user's like from the comment.
func (s *BlogService) UnlikeComment(ctx context.Context, blogID, commentID, actorID int) error {
	if err := s.guardComment(ctx, blogID, commentID, actorID); err != nil {
		return err
	}

	return s.m.deleteCommentLike(ctx, actorID, commentID)
}

// CommentLikes lists the likes on the comment.
func (s *BlogService) CommentLikes(ctx context.Context, blogID, commentID, actorID int) ([]Like, error) {
	if err := s.guardComment(ctx, blogID, commentID, actorID); err != nil {
		return nil, err
	}

	return s.m.getCommentLikes(ctx, commentID)
}

// guardBlog enforces the like policy: every like operation requires the
// acting user to own the parent blog.
func (s *BlogService) guardBlog(ctx context.Context, blogID, actorID int) error {
	ok, err := s.m.ownedExists(ctx, blogID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	return nil
}

// guardComment additionally requires the acting user to have authored the
// comment on that blog.
func (s *BlogService) guardComment(ctx context.Context, blogID, commentID, actorID int) error {
	if err := s.guardBlog(ctx, blogID, actorID); err != nil {
		return err
	}

	ok, err := s.m.authoredCommentExists(ctx, commentID, blogID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCommentNotFound
	}

	return nil
}
