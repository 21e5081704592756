package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	testCases := []struct {
		name       string
		page       int
		totalItems int
		pageSize   int
		expected   *PageWindow
	}{
		{
			name:       "first page of three",
			page:       1,
			totalItems: 23,
			pageSize:   10,
			expected: &PageWindow{
				Skip:            0,
				Limit:           10,
				CurrentPage:     1,
				TotalPages:      3,
				HasNextPage:     true,
				HasPreviousPage: false,
			},
		},
		{
			name:       "middle page",
			page:       2,
			totalItems: 23,
			pageSize:   10,
			expected: &PageWindow{
				Skip:            10,
				Limit:           10,
				CurrentPage:     2,
				TotalPages:      3,
				HasNextPage:     true,
				HasPreviousPage: true,
			},
		},
		{
			name:       "partial final page",
			page:       3,
			totalItems: 23,
			pageSize:   10,
			expected: &PageWindow{
				Skip:            20,
				Limit:           10,
				CurrentPage:     3,
				TotalPages:      3,
				HasNextPage:     false,
				HasPreviousPage: true,
			},
		},
		{
			name:       "exact multiple of page size",
			page:       2,
			totalItems: 20,
			pageSize:   10,
			expected: &PageWindow{
				Skip:            10,
				Limit:           10,
				CurrentPage:     2,
				TotalPages:      2,
				HasNextPage:     false,
				HasPreviousPage: true,
			},
		},
		{
			name:       "single item single page",
			page:       1,
			totalItems: 1,
			pageSize:   5,
			expected: &PageWindow{
				Skip:            0,
				Limit:           5,
				CurrentPage:     1,
				TotalPages:      1,
				HasNextPage:     false,
				HasPreviousPage: false,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			window, err := Paginate(tc.page, tc.totalItems, tc.pageSize)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, window)
		})
	}
}

func TestPaginateErrors(t *testing.T) {
	t.Run("page zero", func(t *testing.T) {
		window, err := Paginate(0, 23, 10)
		assert.Nil(t, window)
		assert.ErrorIs(t, err, ErrPageTooSmall)
	})

	t.Run("negative page", func(t *testing.T) {
		window, err := Paginate(-3, 23, 10)
		assert.Nil(t, window)
		assert.ErrorIs(t, err, ErrPageTooSmall)
	})

	t.Run("empty collection", func(t *testing.T) {
		window, err := Paginate(1, 0, 10)
		assert.Nil(t, window)
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("page beyond final", func(t *testing.T) {
		window, err := Paginate(4, 23, 10)
		assert.Nil(t, window)

		var finalPage *FinalPageError
		assert.ErrorAs(t, err, &finalPage)
		assert.Equal(t, 3, finalPage.TotalPages)
	})

	t.Run("invalid page size", func(t *testing.T) {
		window, err := Paginate(1, 23, 0)
		assert.Nil(t, window)
		assert.Error(t, err)
	})
}
