package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MCPikon/cinemagoback/apperrors"
	"github.com/MCPikon/cinemagoback/models"
)

func intPtr(v int) *int { return &v }

func testReview(title string) models.Review {
	now := time.Now().UTC()
	return models.Review{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Rating:    4,
		Body:      "Worth a rewatch.",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestReviewServiceListByImdbID(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a malformed imdbId", func(t *testing.T) {
		svc := NewReviewService(&fakeReviewRepo{}, &fakeMovieRepo{}, &fakeSeriesRepo{})

		_, err := svc.ListByImdbID(ctx, "bogus")
		assert.ErrorIs(t, err, apperrors.ErrWrongImdbID)
	})

	t.Run("resolves the reviews of a movie", func(t *testing.T) {
		review := testReview("Great pacing")
		movie := testMovie("tt10")
		movie.ReviewIDs = []primitive.ObjectID{review.ID}

		movies := &fakeMovieRepo{
			findByImdbID: func(_ context.Context, imdbID string) (*models.Movie, error) {
				assert.Equal(t, "tt10", imdbID)
				return &movie, nil
			},
		}
		reviews := &fakeReviewRepo{
			findManyByIDs: func(_ context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
				assert.Equal(t, movie.ReviewIDs, ids)
				return []models.Review{review}, nil
			},
		}
		svc := NewReviewService(reviews, movies, &fakeSeriesRepo{})

		got, err := svc.ListByImdbID(ctx, "tt10")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Great pacing", got[0].Title)
	})

	t.Run("falls back to series when no movie matches", func(t *testing.T) {
		review := testReview("Binged it")
		series := testSeries("tt11")
		series.ReviewIDs = []primitive.ObjectID{review.ID}

		seriesRepo := &fakeSeriesRepo{
			findByImdbID: func(_ context.Context, _ string) (*models.Series, error) { return &series, nil },
		}
		reviews := &fakeReviewRepo{
			findManyByIDs: func(_ context.Context, _ []primitive.ObjectID) ([]models.Review, error) {
				return []models.Review{review}, nil
			},
		}
		svc := NewReviewService(reviews, &fakeMovieRepo{}, seriesRepo)

		got, err := svc.ListByImdbID(ctx, "tt11")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("entity without reviews yields ErrEmpty", func(t *testing.T) {
		movie := testMovie("tt12")
		movies := &fakeMovieRepo{
			findByImdbID: func(_ context.Context, _ string) (*models.Movie, error) { return &movie, nil },
		}
		svc := NewReviewService(&fakeReviewRepo{}, movies, &fakeSeriesRepo{})

		_, err := svc.ListByImdbID(ctx, "tt12")
		assert.ErrorIs(t, err, apperrors.ErrEmpty)
	})

	t.Run("unknown imdbId surfaces not found", func(t *testing.T) {
		svc := NewReviewService(&fakeReviewRepo{}, &fakeMovieRepo{}, &fakeSeriesRepo{})

		_, err := svc.ListByImdbID(ctx, "tt13")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestReviewServiceCreate(t *testing.T) {
	ctx := context.Background()
	req := &models.ReviewRequest{Title: "Solid", Rating: intPtr(5), Body: "Loved it.", ImdbID: "tt20"}

	t.Run("registers the review on the owning movie", func(t *testing.T) {
		movie := testMovie("tt20")
		newID := primitive.NewObjectID()

		var pushedOn, pushedID primitive.ObjectID
		movies := &fakeMovieRepo{
			findByImdbID: func(_ context.Context, _ string) (*models.Movie, error) { return &movie, nil },
			pushReviewID: func(_ context.Context, id, reviewID primitive.ObjectID) error {
				pushedOn, pushedID = id, reviewID
				return nil
			},
		}
		reviews := &fakeReviewRepo{
			insert: func(_ context.Context, r *models.Review) (primitive.ObjectID, error) {
				assert.Equal(t, 5, r.Rating)
				assert.False(t, r.CreatedAt.IsZero())
				assert.Equal(t, r.CreatedAt, r.UpdatedAt)
				return newID, nil
			},
		}
		svc := NewReviewService(reviews, movies, &fakeSeriesRepo{})

		msg, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, movie.ID, pushedOn)
		assert.Equal(t, newID, pushedID)
		assert.Equal(t, fmt.Sprintf("Review was successfully created. (id: '%s')", newID.Hex()), msg)
	})

	t.Run("falls back to the owning series", func(t *testing.T) {
		series := testSeries("tt20")

		var pushed bool
		seriesRepo := &fakeSeriesRepo{
			findByImdbID: func(_ context.Context, _ string) (*models.Series, error) { return &series, nil },
			pushReviewID: func(_ context.Context, _, _ primitive.ObjectID) error {
				pushed = true
				return nil
			},
		}
		svc := NewReviewService(&fakeReviewRepo{}, &fakeMovieRepo{}, seriesRepo)

		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.True(t, pushed)
	})

	t.Run("no owner surfaces not found", func(t *testing.T) {
		svc := NewReviewService(&fakeReviewRepo{}, &fakeMovieRepo{}, &fakeSeriesRepo{})

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestReviewServicePatch(t *testing.T) {
	ctx := context.Background()
	stored := testReview("First take")

	findStored := func(_ context.Context, _ primitive.ObjectID) (*models.Review, error) {
		return &stored, nil
	}

	t.Run("parses rating into an integer", func(t *testing.T) {
		reviews := &fakeReviewRepo{
			findByID: findStored,
			patch: func(_ context.Context, _ primitive.ObjectID, field string, value any) (int64, error) {
				assert.Equal(t, "rating", field)
				assert.Equal(t, 3, value)
				return 1, nil
			},
		}
		svc := NewReviewService(reviews, &fakeMovieRepo{}, &fakeSeriesRepo{})

		msg, err := svc.Patch(ctx, stored.ID.Hex(), "rating", "3")
		require.NoError(t, err)
		assert.Contains(t, msg, "successfully patched")
	})

	t.Run("rejects a rating out of range", func(t *testing.T) {
		reviews := &fakeReviewRepo{findByID: findStored}
		svc := NewReviewService(reviews, &fakeMovieRepo{}, &fakeSeriesRepo{})

		_, err := svc.Patch(ctx, stored.ID.Hex(), "rating", "9")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects a non-numeric rating", func(t *testing.T) {
		reviews := &fakeReviewRepo{findByID: findStored}
		svc := NewReviewService(reviews, &fakeMovieRepo{}, &fakeSeriesRepo{})

		_, err := svc.Patch(ctx, stored.ID.Hex(), "rating", "five")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects a field outside the allow-list", func(t *testing.T) {
		svc := NewReviewService(&fakeReviewRepo{}, &fakeMovieRepo{}, &fakeSeriesRepo{})

		_, err := svc.Patch(ctx, stored.ID.Hex(), "createdAt", "now")
		assert.ErrorIs(t, err, apperrors.ErrFieldNotAllowed)
	})
}

func TestReviewServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("detaches the review from its movie", func(t *testing.T) {
		reviewID := primitive.NewObjectID()
		movie := testMovie("tt30")

		var pulledFrom, pulledID primitive.ObjectID
		movies := &fakeMovieRepo{
			findByReviewID: func(_ context.Context, _ primitive.ObjectID) (*models.Movie, error) { return &movie, nil },
			pullReviewID: func(_ context.Context, id, rid primitive.ObjectID) error {
				pulledFrom, pulledID = id, rid
				return nil
			},
		}
		svc := NewReviewService(&fakeReviewRepo{}, movies, &fakeSeriesRepo{})

		msg, err := svc.Delete(ctx, reviewID.Hex())
		require.NoError(t, err)
		assert.Equal(t, movie.ID, pulledFrom)
		assert.Equal(t, reviewID, pulledID)
		assert.Equal(t, fmt.Sprintf("Review with id: '%s' was successfully deleted", reviewID.Hex()), msg)
	})

	t.Run("detaches the review from its series when no movie owns it", func(t *testing.T) {
		series := testSeries("tt31")

		var pulled bool
		seriesRepo := &fakeSeriesRepo{
			findByReviewID: func(_ context.Context, _ primitive.ObjectID) (*models.Series, error) { return &series, nil },
			pullReviewID: func(_ context.Context, _, _ primitive.ObjectID) error {
				pulled = true
				return nil
			},
		}
		svc := NewReviewService(&fakeReviewRepo{}, &fakeMovieRepo{}, seriesRepo)

		_, err := svc.Delete(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.True(t, pulled)
	})

	t.Run("orphaned review still deletes", func(t *testing.T) {
		svc := NewReviewService(&fakeReviewRepo{}, &fakeMovieRepo{}, &fakeSeriesRepo{})

		msg, err := svc.Delete(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Contains(t, msg, "successfully deleted")
	})

	t.Run("missing review surfaces not found", func(t *testing.T) {
		reviews := &fakeReviewRepo{
			delete: func(_ context.Context, _ primitive.ObjectID) (int64, error) { return 0, nil },
		}
		svc := NewReviewService(reviews, &fakeMovieRepo{}, &fakeSeriesRepo{})

		_, err := svc.Delete(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
