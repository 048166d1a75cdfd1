package services

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MCPikon/cinemagoback/apperrors"
	"github.com/MCPikon/cinemagoback/helper"
	"github.com/MCPikon/cinemagoback/models"
)

// reviewPatchFields is the allow-list for PATCH /reviews/patch/:id.
var reviewPatchFields = []string{"title", "rating", "body"}

type ReviewService struct {
	reviews ReviewRepository
	movies  MovieRepository
	series  SeriesRepository
}

func NewReviewService(reviews ReviewRepository, movies MovieRepository, series SeriesRepository) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		movies:  movies,
		series:  series,
	}
}

// List returns one page of reviews.
func (s *ReviewService) List(ctx context.Context, page, size int64) (*models.ReviewList, error) {
	page, size = normalizePaging(page, size)
	reviews, total, err := s.reviews.FindAll(ctx, page*size, size)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		log.Warn("reviews listing returned no results")
		return nil, apperrors.ErrEmpty
	}

	responses := make([]models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, reviews[i].ToResponse())
	}
	return &models.ReviewList{
		Reviews:     responses,
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  totalPages(total, size),
	}, nil
}

// ListByImdbID returns every review of the movie or series owning the imdbId.
func (s *ReviewService) ListByImdbID(ctx context.Context, imdbID string) ([]models.ReviewResponse, error) {
	if !helper.IsValidImdbID(imdbID) {
		return nil, apperrors.ErrWrongImdbID
	}

	var reviewIDs []primitive.ObjectID
	movie, err := s.movies.FindByImdbID(ctx, imdbID)
	switch {
	case err == nil:
		reviewIDs = movie.ReviewIDs
	case errIsNotFound(err):
		series, err := s.series.FindByImdbID(ctx, imdbID)
		if err != nil {
			return nil, err
		}
		reviewIDs = series.ReviewIDs
	default:
		return nil, err
	}

	if len(reviewIDs) == 0 {
		log.WithField("imdbId", imdbID).Warn("entity has no reviews")
		return nil, apperrors.ErrEmpty
	}
	reviews, err := s.reviews.FindManyByIDs(ctx, reviewIDs)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, apperrors.ErrEmpty
	}

	responses := make([]models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, reviews[i].ToResponse())
	}
	return responses, nil
}

func (s *ReviewService) GetByID(ctx context.Context, id string) (*models.ReviewResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	review, err := s.reviews.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	response := review.ToResponse()
	return &response, nil
}

// Create inserts a review and registers it on the movie or series owning the
// request's imdbId.
func (s *ReviewService) Create(ctx context.Context, req *models.ReviewRequest) (string, error) {
	movie, err := s.movies.FindByImdbID(ctx, req.ImdbID)
	if err == nil {
		id, err := s.reviews.Insert(ctx, req.ToReview())
		if err != nil {
			return "", err
		}
		if err := s.movies.PushReviewID(ctx, movie.ID, id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Review was successfully created. (id: '%s')", id.Hex()), nil
	}
	if !errIsNotFound(err) {
		return "", err
	}

	series, err := s.series.FindByImdbID(ctx, req.ImdbID)
	if err != nil {
		if errIsNotFound(err) {
			log.WithField("imdbId", req.ImdbID).Warn("review creation rejected, no movie or series with that imdbId")
		}
		return "", err
	}
	id, err := s.reviews.Insert(ctx, req.ToReview())
	if err != nil {
		return "", err
	}
	if err := s.series.PushReviewID(ctx, series.ID, id); err != nil {
		return "", err
	}
	return fmt.Sprintf("Review was successfully created. (id: '%s')", id.Hex()), nil
}

// Update replaces the mutable fields of a review and refreshes updatedAt.
func (s *ReviewService) Update(ctx context.Context, id string, upd *models.ReviewUpdate) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}
	if _, err := s.reviews.FindByID(ctx, oid); err != nil {
		return "", err
	}

	modified, err := s.reviews.Update(ctx, oid, upd)
	if err != nil {
		return "", err
	}
	if modified == 0 {
		return "Fields have the same value, no update was performed", nil
	}
	return fmt.Sprintf("Review with id: '%s' was successfully updated", id), nil
}

// Patch sets a single allow-listed field. The rating value is parsed and
// range-checked so the stored field keeps its integer type.
func (s *ReviewService) Patch(ctx context.Context, id, field, value string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}
	if !slices.Contains(reviewPatchFields, field) {
		log.WithFields(log.Fields{"id": id, "field": field}).Warn("review patch rejected, field not allowed")
		return "", apperrors.ErrFieldNotAllowed
	}
	if _, err := s.reviews.FindByID(ctx, oid); err != nil {
		return "", err
	}

	var bsonValue any = value
	if field == "rating" {
		rating, err := strconv.Atoi(value)
		if err != nil || rating < 0 || rating > 5 {
			return "", errors.Wrap(apperrors.ErrValidation, "the rating must be an integer between 0 and 5")
		}
		bsonValue = rating
	}

	modified, err := s.reviews.Patch(ctx, oid, field, bsonValue)
	if err != nil {
		return "", err
	}
	if modified == 0 {
		return "Field has the same value, no patch was performed", nil
	}
	return fmt.Sprintf("Review %s with id: '%s' was successfully patched", field, id), nil
}

// Delete removes a review and detaches it from the movie or series that
// references it.
func (s *ReviewService) Delete(ctx context.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}

	deleted, err := s.reviews.Delete(ctx, oid)
	if err != nil {
		return "", err
	}
	if deleted == 0 {
		return "", apperrors.ErrNotFound
	}

	movie, err := s.movies.FindByReviewID(ctx, oid)
	if err == nil {
		if err := s.movies.PullReviewID(ctx, movie.ID, oid); err != nil {
			return "", err
		}
		return fmt.Sprintf("Review with id: '%s' was successfully deleted", id), nil
	}
	if !errIsNotFound(err) {
		return "", err
	}

	series, err := s.series.FindByReviewID(ctx, oid)
	if err == nil {
		if err := s.series.PullReviewID(ctx, series.ID, oid); err != nil {
			return "", err
		}
		return fmt.Sprintf("Review with id: '%s' was successfully deleted", id), nil
	}
	if !errIsNotFound(err) {
		return "", err
	}

	// Orphaned review: the cascade on movie/series delete should make this
	// unreachable, but the deletion itself already succeeded.
	log.WithField("id", id).Warn("deleted review had no parent movie or series")
	return fmt.Sprintf("Review with id: '%s' was successfully deleted", id), nil
}
