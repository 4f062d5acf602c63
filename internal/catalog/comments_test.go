// internal/catalog/comments_test.go
package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigrocery/catalog-backend/internal/models"
)

func TestAddComment_ThenList(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	comment, err := svc.AddComment("1", "player one", "really fun", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "1", comment.EntryID)

	comments := svc.ListComments("1")
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}

func TestListComments_EmptyForUnknownAndFreshIDs(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	assert.Empty(t, svc.ListComments("1"))
	assert.Empty(t, svc.ListComments("never-seen"))
}

func TestAddComment_NewestFirst(t *testing.T) {
	for _, style := range []models.FeedbackStyle{models.FeedbackStyleThread, models.FeedbackStyleReview} {
		t.Run(string(style), func(t *testing.T) {
			svc, _ := newTestService(t, Options{FeedbackStyle: style})

			first, err := svc.AddComment("1", "a", "first", 0)
			require.NoError(t, err)
			second, err := svc.AddComment("1", "b", "second", 0)
			require.NoError(t, err)

			comments := svc.ListComments("1")
			require.Len(t, comments, 2)
			assert.Equal(t, second.ID, comments[0].ID)
			assert.Equal(t, first.ID, comments[1].ID)

			// The in-memory entry is updated synchronously and agrees
			// with the persisted list.
			entry, err := svc.GetByID("1")
			require.NoError(t, err)
			assert.Equal(t, comments, entry.Comments)
		})
	}
}

func TestAddComment_Validation(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	cases := []struct {
		name    string
		author  string
		content string
	}{
		{"blank author", "   ", "hello"},
		{"blank content", "someone", "  "},
		{"empty author", "", "hello"},
		{"long content", "someone", strings.Repeat("x", 501)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddComment("1", tc.author, tc.content, 0)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAddComment_ThreadNicknameBounded(t *testing.T) {
	thread, _ := newTestService(t, Options{FeedbackStyle: models.FeedbackStyleThread})
	longName := strings.Repeat("n", 21)

	_, err := thread.AddComment("1", longName, "hello", 0)
	assert.ErrorIs(t, err, ErrValidation)

	// The review surface leaves author names unbounded.
	review, _ := newTestService(t, Options{FeedbackStyle: models.FeedbackStyleReview})
	_, err = review.AddComment("1", longName, "hello", 0)
	assert.NoError(t, err)
}

func TestAddComment_UnknownEntry(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	_, err := svc.AddComment("missing", "someone", "hello", 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddComment_WithRatingFeedsAggregator(t *testing.T) {
	svc, _ := newTestService(t, Options{FeedbackStyle: models.FeedbackStyleReview})

	comment, err := svc.AddComment("1", "reviewer", "solid tool", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, comment.Rating)

	entry, err := svc.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.TotalRatings)
	assert.Equal(t, 5.0, entry.Rating)
}

func TestAddComment_RatingOutOfRange(t *testing.T) {
	svc, _ := newTestService(t, Options{FeedbackStyle: models.FeedbackStyleReview})

	_, err := svc.AddComment("1", "reviewer", "bad stars", 7)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddComment_ThreadRejectsRating(t *testing.T) {
	// The plain thread carries no per-comment rating; stars only travel
	// through SubmitRating. An in-range value is rejected all the same.
	svc, _ := newTestService(t, Options{FeedbackStyle: models.FeedbackStyleThread})

	_, err := svc.AddComment("1", "player", "nice", 4)
	assert.ErrorIs(t, err, ErrValidation)

	entry, err := svc.GetByID("1")
	require.NoError(t, err)
	assert.Zero(t, entry.TotalRatings)
	assert.Empty(t, svc.ListComments("1"))
}
