package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MCPikon/cinemagoback/apperrors"
	"github.com/MCPikon/cinemagoback/models"
)

// Function-field fakes for the repository interfaces. Unset lookups answer
// not-found and unset writes succeed, so each test only wires what it checks.

type fakeMovieRepo struct {
	findAll        func(ctx context.Context, title string, skip, limit int64) ([]models.Movie, int64, error)
	findByID       func(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	findByImdbID   func(ctx context.Context, imdbID string) (*models.Movie, error)
	findByReviewID func(ctx context.Context, reviewID primitive.ObjectID) (*models.Movie, error)
	existsByImdbID func(ctx context.Context, imdbID string) (bool, error)
	insert         func(ctx context.Context, movie *models.Movie) (primitive.ObjectID, error)
	update         func(ctx context.Context, id primitive.ObjectID, req *models.MovieRequest) (int64, error)
	patch          func(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error)
	delete         func(ctx context.Context, id primitive.ObjectID) (int64, error)
	pushReviewID   func(ctx context.Context, id, reviewID primitive.ObjectID) error
	pullReviewID   func(ctx context.Context, id, reviewID primitive.ObjectID) error
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, title string, skip, limit int64) ([]models.Movie, int64, error) {
	if f.findAll != nil {
		return f.findAll(ctx, title, skip, limit)
	}
	return nil, 0, nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	if f.findByID != nil {
		return f.findByID(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeMovieRepo) FindByImdbID(ctx context.Context, imdbID string) (*models.Movie, error) {
	if f.findByImdbID != nil {
		return f.findByImdbID(ctx, imdbID)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeMovieRepo) FindByReviewID(ctx context.Context, reviewID primitive.ObjectID) (*models.Movie, error) {
	if f.findByReviewID != nil {
		return f.findByReviewID(ctx, reviewID)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeMovieRepo) ExistsByImdbID(ctx context.Context, imdbID string) (bool, error) {
	if f.existsByImdbID != nil {
		return f.existsByImdbID(ctx, imdbID)
	}
	return false, nil
}

func (f *fakeMovieRepo) Insert(ctx context.Context, movie *models.Movie) (primitive.ObjectID, error) {
	if f.insert != nil {
		return f.insert(ctx, movie)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, id primitive.ObjectID, req *models.MovieRequest) (int64, error) {
	if f.update != nil {
		return f.update(ctx, id, req)
	}
	return 1, nil
}

func (f *fakeMovieRepo) Patch(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error) {
	if f.patch != nil {
		return f.patch(ctx, id, field, value)
	}
	return 1, nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if f.delete != nil {
		return f.delete(ctx, id)
	}
	return 1, nil
}

func (f *fakeMovieRepo) PushReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error {
	if f.pushReviewID != nil {
		return f.pushReviewID(ctx, id, reviewID)
	}
	return nil
}

func (f *fakeMovieRepo) PullReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error {
	if f.pullReviewID != nil {
		return f.pullReviewID(ctx, id, reviewID)
	}
	return nil
}

type fakeSeriesRepo struct {
	findAll        func(ctx context.Context, title string, skip, limit int64) ([]models.Series, int64, error)
	findByID       func(ctx context.Context, id primitive.ObjectID) (*models.Series, error)
	findByImdbID   func(ctx context.Context, imdbID string) (*models.Series, error)
	findByReviewID func(ctx context.Context, reviewID primitive.ObjectID) (*models.Series, error)
	existsByImdbID func(ctx context.Context, imdbID string) (bool, error)
	insert         func(ctx context.Context, series *models.Series) (primitive.ObjectID, error)
	update         func(ctx context.Context, id primitive.ObjectID, req *models.SeriesRequest) (int64, error)
	patch          func(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error)
	delete         func(ctx context.Context, id primitive.ObjectID) (int64, error)
	pushReviewID   func(ctx context.Context, id, reviewID primitive.ObjectID) error
	pullReviewID   func(ctx context.Context, id, reviewID primitive.ObjectID) error
}

func (f *fakeSeriesRepo) FindAll(ctx context.Context, title string, skip, limit int64) ([]models.Series, int64, error) {
	if f.findAll != nil {
		return f.findAll(ctx, title, skip, limit)
	}
	return nil, 0, nil
}

func (f *fakeSeriesRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Series, error) {
	if f.findByID != nil {
		return f.findByID(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeSeriesRepo) FindByImdbID(ctx context.Context, imdbID string) (*models.Series, error) {
	if f.findByImdbID != nil {
		return f.findByImdbID(ctx, imdbID)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeSeriesRepo) FindByReviewID(ctx context.Context, reviewID primitive.ObjectID) (*models.Series, error) {
	if f.findByReviewID != nil {
		return f.findByReviewID(ctx, reviewID)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeSeriesRepo) ExistsByImdbID(ctx context.Context, imdbID string) (bool, error) {
	if f.existsByImdbID != nil {
		return f.existsByImdbID(ctx, imdbID)
	}
	return false, nil
}

func (f *fakeSeriesRepo) Insert(ctx context.Context, series *models.Series) (primitive.ObjectID, error) {
	if f.insert != nil {
		return f.insert(ctx, series)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeSeriesRepo) Update(ctx context.Context, id primitive.ObjectID, req *models.SeriesRequest) (int64, error) {
	if f.update != nil {
		return f.update(ctx, id, req)
	}
	return 1, nil
}

func (f *fakeSeriesRepo) Patch(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error) {
	if f.patch != nil {
		return f.patch(ctx, id, field, value)
	}
	return 1, nil
}

func (f *fakeSeriesRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if f.delete != nil {
		return f.delete(ctx, id)
	}
	return 1, nil
}

func (f *fakeSeriesRepo) PushReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error {
	if f.pushReviewID != nil {
		return f.pushReviewID(ctx, id, reviewID)
	}
	return nil
}

func (f *fakeSeriesRepo) PullReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error {
	if f.pullReviewID != nil {
		return f.pullReviewID(ctx, id, reviewID)
	}
	return nil
}

type fakeReviewRepo struct {
	findAll         func(ctx context.Context, skip, limit int64) ([]models.Review, int64, error)
	findManyByIDs   func(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error)
	findByID        func(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	insert          func(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	update          func(ctx context.Context, id primitive.ObjectID, upd *models.ReviewUpdate) (int64, error)
	patch           func(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error)
	delete          func(ctx context.Context, id primitive.ObjectID) (int64, error)
	deleteManyByIDs func(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

func (f *fakeReviewRepo) FindAll(ctx context.Context, skip, limit int64) ([]models.Review, int64, error) {
	if f.findAll != nil {
		return f.findAll(ctx, skip, limit)
	}
	return nil, 0, nil
}

func (f *fakeReviewRepo) FindManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	if f.findManyByIDs != nil {
		return f.findManyByIDs(ctx, ids)
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	if f.findByID != nil {
		return f.findByID(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeReviewRepo) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	if f.insert != nil {
		return f.insert(ctx, review)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, id primitive.ObjectID, upd *models.ReviewUpdate) (int64, error) {
	if f.update != nil {
		return f.update(ctx, id, upd)
	}
	return 1, nil
}

func (f *fakeReviewRepo) Patch(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error) {
	if f.patch != nil {
		return f.patch(ctx, id, field, value)
	}
	return 1, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if f.delete != nil {
		return f.delete(ctx, id)
	}
	return 1, nil
}

func (f *fakeReviewRepo) DeleteManyByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if f.deleteManyByIDs != nil {
		return f.deleteManyByIDs(ctx, ids)
	}
	return int64(len(ids)), nil
}
