package blogservice

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jadewing/inkstream/internal/common"
)

func setupTestEnvironment(t *testing.T) (*BlogService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)
	s := NewBlogService(db)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM blogs")
		if err != nil {
			return err
		}

		_, err = db.Exec("DELETE FROM users")
		return err
	}

	return s, db, cleanup
}

func createUser(t *testing.T, db *sql.DB, username string) int {
	var id int

	err := db.QueryRow(
		"INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id",
		username, fmt.Sprintf("%s@example.com", username), []byte("not-a-real-hash"),
	).Scan(&id)
	assert.NoError(t, err)

	return id
}

func latestBlogID(t *testing.T, db *sql.DB) int {
	var id int

	err := db.QueryRow("SELECT id FROM blogs ORDER BY id DESC LIMIT 1").Scan(&id)
	assert.NoError(t, err)

	return id
}

func TestDraftLifecycle(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	author := createUser(t, db, "author")
	stranger := createUser(t, db, "stranger")

	err := s.SaveDraft(ctx, &CreateBlogRequest{Title: "My Draft", Content: "work in progress", Tag: "Go"}, author)
	assert.NoError(t, err)

	blogID := latestBlogID(t, db)

	t.Run("tag is lowercased", func(t *testing.T) {
		var tag string
		err := db.QueryRow("SELECT tag FROM blogs WHERE id = $1", blogID).Scan(&tag)
		assert.NoError(t, err)
		assert.Equal(t, "go", tag)
	})

	t.Run("draft is hidden from readers", func(t *testing.T) {
		detail, err := s.Get(ctx, blogID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, detail)

		_, _, err = s.ListPublished(ctx, 1)
		assert.ErrorIs(t, err, common.ErrNoItems)
	})

	t.Run("drafts are scoped to the author", func(t *testing.T) {
		drafts, err := s.Drafts(ctx, author)
		assert.NoError(t, err)
		assert.Len(t, drafts, 1)
		assert.Equal(t, "My Draft", drafts[0].Title)
		assert.Equal(t, "author", drafts[0].Author.Username)

		drafts, err = s.Drafts(ctx, stranger)
		assert.NoError(t, err)
		assert.Empty(t, drafts)
	})

	t.Run("only the author can publish", func(t *testing.T) {
		err := s.SubmitDraft(ctx, blogID, stranger)
		assert.ErrorIs(t, err, ErrNotFound)

		err = s.SubmitDraft(ctx, blogID, author)
		assert.NoError(t, err)
	})

	t.Run("published blog is visible", func(t *testing.T) {
		detail, err := s.Get(ctx, blogID)
		assert.NoError(t, err)
		assert.Equal(t, "My Draft", detail.Title)
		assert.Equal(t, "author", detail.Author.Username)
		assert.Empty(t, detail.Comments)
	})

	t.Run("publishing twice reports not found", func(t *testing.T) {
		err := s.SubmitDraft(ctx, blogID, author)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}

func TestUpdateAndDelete(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	author := createUser(t, db, "author")
	stranger := createUser(t, db, "stranger")

	err := s.Submit(ctx, &CreateBlogRequest{Title: "Original", Content: "original content"}, author)
	assert.NoError(t, err)

	blogID := latestBlogID(t, db)

	t.Run("only the author can update", func(t *testing.T) {
		err := s.Update(ctx, blogID, stranger, "Hijacked", "hijacked content")
		assert.ErrorIs(t, err, ErrNotFound)

		err = s.Update(ctx, blogID, author, "Revised", "revised content")
		assert.NoError(t, err)

		var title string
		err = db.QueryRow("SELECT title FROM blogs WHERE id = $1", blogID).Scan(&title)
		assert.NoError(t, err)
		assert.Equal(t, "Revised", title)
	})

	t.Run("only the author can delete", func(t *testing.T) {
		err := s.Delete(ctx, blogID, stranger)
		assert.ErrorIs(t, err, ErrNotFound)

		err = s.Delete(ctx, blogID, author)
		assert.NoError(t, err)

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("missing author fails on insert", func(t *testing.T) {
		err := s.Submit(ctx, &CreateBlogRequest{Title: "Ghost", Content: "ghost content"}, stranger+1000)
		assert.ErrorIs(t, err, ErrUserForeignKey)
	})

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}

func TestListPublishedPagination(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	author := createUser(t, db, "author")

	for i := 1; i <= 23; i++ {
		err := s.Submit(ctx, &CreateBlogRequest{Title: fmt.Sprintf("Blog %d", i), Content: "content"}, author)
		assert.NoError(t, err)
	}

	t.Run("newest first full page", func(t *testing.T) {
		blogs, window, err := s.ListPublished(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, blogs, 10)
		assert.Equal(t, "Blog 23", blogs[0].Title)
		assert.Equal(t, "author", blogs[0].Author.Username)
		assert.NotEmpty(t, blogs[0].CreatedAt)
		assert.Equal(t, 3, window.TotalPages)
		assert.True(t, window.HasNextPage)
	})

	t.Run("partial final page", func(t *testing.T) {
		blogs, window, err := s.ListPublished(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, blogs, 3)
		assert.Equal(t, "Blog 1", blogs[2].Title)
		assert.False(t, window.HasNextPage)
	})

	t.Run("page beyond final", func(t *testing.T) {
		_, _, err := s.ListPublished(ctx, 4)

		var finalPage *common.FinalPageError
		assert.ErrorAs(t, err, &finalPage)
		assert.Equal(t, 3, finalPage.TotalPages)
	})

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}

func TestSearch(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	author := createUser(t, db, "author")

	err := s.Submit(ctx, &CreateBlogRequest{Title: "Gopher tricks", Content: "channels and goroutines"}, author)
	assert.NoError(t, err)

	err = s.Submit(ctx, &CreateBlogRequest{Title: "Cooking", Content: "a gopher stew recipe"}, author)
	assert.NoError(t, err)

	err = s.SaveDraft(ctx, &CreateBlogRequest{Title: "gopher draft", Content: "hidden"}, author)
	assert.NoError(t, err)

	t.Run("matches title or content", func(t *testing.T) {
		blogs, err := s.Search(ctx, "gopher")
		assert.NoError(t, err)
		assert.Len(t, blogs, 1)
		assert.Equal(t, "Cooking", blogs[0].Title)
	})

	t.Run("search is case sensitive", func(t *testing.T) {
		blogs, err := s.Search(ctx, "Gopher")
		assert.NoError(t, err)
		assert.Len(t, blogs, 1)
		assert.Equal(t, "Gopher tricks", blogs[0].Title)
	})

	t.Run("no matches", func(t *testing.T) {
		blogs, err := s.Search(ctx, "rustacean")
		assert.NoError(t, err)
		assert.Empty(t, blogs)
	})

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}

func TestComments(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	author := createUser(t, db, "author")
	stranger := createUser(t, db, "stranger")

	err := s.Submit(ctx, &CreateBlogRequest{Title: "Commented", Content: "content"}, author)
	assert.NoError(t, err)

	blogID := latestBlogID(t, db)

	t.Run("commenting requires blog ownership", func(t *testing.T) {
		err := s.AddComment(ctx, blogID, stranger, "nice post")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("author comments on own blog", func(t *testing.T) {
		err := s.AddComment(ctx, blogID, author, "first!")
		assert.NoError(t, err)

		comments, err := s.Comments(ctx, blogID)
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, "first!", comments[0].Comment)
	})

	t.Run("listing requires an existing blog", func(t *testing.T) {
		comments, err := s.Comments(ctx, blogID+1000)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, comments)
	})

	t.Run("deleting someone else's comment reports not found", func(t *testing.T) {
		comments, err := s.Comments(ctx, blogID)
		assert.NoError(t, err)

		err = s.DeleteComment(ctx, blogID, comments[0].ID, stranger)
		assert.ErrorIs(t, err, ErrCommentNotFound)
	})

	t.Run("author deletes own comment", func(t *testing.T) {
		comments, err := s.Comments(ctx, blogID)
		assert.NoError(t, err)

		err = s.DeleteComment(ctx, blogID, comments[0].ID, author)
		assert.NoError(t, err)

		comments, err = s.Comments(ctx, blogID)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}

func TestLikes(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	author := createUser(t, db, "author")
	stranger := createUser(t, db, "stranger")

	err := s.Submit(ctx, &CreateBlogRequest{Title: "Liked", Content: "content"}, author)
	assert.NoError(t, err)

	blogID := latestBlogID(t, db)

	t.Run("liking requires blog ownership", func(t *testing.T) {
		err := s.LikeBlog(ctx, blogID, stranger)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("a blog can be liked once", func(t *testing.T) {
		err := s.LikeBlog(ctx, blogID, author)
		assert.NoError(t, err)

		err = s.LikeBlog(ctx, blogID, author)
		assert.ErrorIs(t, err, ErrAlreadyLiked)
	})

	t.Run("likes carry the liking user", func(t *testing.T) {
		likes, err := s.BlogLikes(ctx, blogID, author)
		assert.NoError(t, err)
		assert.Len(t, likes, 1)
		assert.Equal(t, "author", likes[0].User.Username)
		assert.NotEmpty(t, likes[0].CreatedAt)
	})

	t.Run("unlike removes the like", func(t *testing.T) {
		err := s.UnlikeBlog(ctx, blogID, author)
		assert.NoError(t, err)

		err = s.UnlikeBlog(ctx, blogID, author)
		assert.ErrorIs(t, err, ErrNotLiked)
	})

	t.Run("comment likes require the authored comment", func(t *testing.T) {
		err := s.AddComment(ctx, blogID, author, "self comment")
		assert.NoError(t, err)

		comments, err := s.Comments(ctx, blogID)
		assert.NoError(t, err)
		commentID := comments[0].ID

		err = s.LikeComment(ctx, blogID, commentID+1000, author)
		assert.ErrorIs(t, err, ErrCommentNotFound)

		err = s.LikeComment(ctx, blogID, commentID, author)
		assert.NoError(t, err)

		err = s.LikeComment(ctx, blogID, commentID, author)
		assert.ErrorIs(t, err, ErrAlreadyLiked)

		likes, err := s.CommentLikes(ctx, blogID, commentID, author)
		assert.NoError(t, err)
		assert.Len(t, likes, 1)

		err = s.UnlikeComment(ctx, blogID, commentID, author)
		assert.NoError(t, err)

		err = s.UnlikeComment(ctx, blogID, commentID, author)
		assert.ErrorIs(t, err, ErrNotLiked)
	})

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})
}
