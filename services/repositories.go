package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MCPikon/cinemagoback/models"
)

// Repository interfaces consumed by the services. The data_access package
// provides the MongoDB implementations; tests substitute fakes.

type MovieRepository interface {
	FindAll(ctx context.Context, title string, skip, limit int64) ([]models.Movie, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	FindByImdbID(ctx context.Context, imdbID string) (*models.Movie, error)
	FindByReviewID(ctx context.Context, reviewID primitive.ObjectID) (*models.Movie, error)
	ExistsByImdbID(ctx context.Context, imdbID string) (bool, error)
	Insert(ctx context.Context, movie *models.Movie) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.MovieRequest) (int64, error)
	Patch(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	PushReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error
	PullReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error
}

type SeriesRepository interface {
	FindAll(ctx context.Context, title string, skip, limit int64) ([]models.Series, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Series, error)
	FindByImdbID(ctx context.Context, imdbID string) (*models.Series, error)
	FindByReviewID(ctx context.Context, reviewID primitive.ObjectID) (*models.Series, error)
	ExistsByImdbID(ctx context.Context, imdbID string) (bool, error)
	Insert(ctx context.Context, series *models.Series) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.SeriesRequest) (int64, error)
	Patch(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	PushReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error
	PullReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error
}

type ReviewRepository interface {
	FindAll(ctx context.Context, skip, limit int64) ([]models.Review, int64, error)
	FindManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, upd *models.ReviewUpdate) (int64, error)
	Patch(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteManyByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// normalizePaging applies the listing defaults: negative pages collapse to
// the first page, non-positive sizes to 10 items.
func normalizePaging(page, size int64) (int64, int64) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	return page, size
}

// totalPages rounds up the page count for a listing envelope.
func totalPages(totalItems, size int64) int64 {
	if totalItems == 0 {
		return 0
	}
	return (totalItems + size - 1) / size
}
