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

// seriesPatchFields is the allow-list for PATCH /series/patch/:id. The
// seasonList is structured and cannot arrive as a flat string, so it is
// excluded.
var seriesPatchFields = []string{
	"imdbId", "title", "overview", "numberOfSeasons", "creator",
	"releaseDate", "trailerLink", "genres", "poster", "backdrop",
}

type SeriesService struct {
	series  SeriesRepository
	movies  MovieRepository
	reviews ReviewRepository
}

func NewSeriesService(series SeriesRepository, movies MovieRepository, reviews ReviewRepository) *SeriesService {
	return &SeriesService{
		series:  series,
		movies:  movies,
		reviews: reviews,
	}
}

// List returns one page of series, optionally filtered by title.
func (s *SeriesService) List(ctx context.Context, title string, page, size int64) (*models.SeriesList, error) {
	page, size = normalizePaging(page, size)
	series, total, err := s.series.FindAll(ctx, title, page*size, size)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		log.Warn("series listing returned no results")
		return nil, apperrors.ErrEmpty
	}

	responses := make([]models.SeriesResponse, 0, len(series))
	for i := range series {
		responses = append(responses, series[i].ToResponse())
	}
	return &models.SeriesList{
		Series:      responses,
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  totalPages(total, size),
	}, nil
}

func (s *SeriesService) GetByID(ctx context.Context, id string) (*models.Series, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	return s.series.FindByID(ctx, oid)
}

func (s *SeriesService) GetByImdbID(ctx context.Context, imdbID string) (*models.Series, error) {
	if !helper.IsValidImdbID(imdbID) {
		return nil, apperrors.ErrWrongImdbID
	}
	return s.series.FindByImdbID(ctx, imdbID)
}

// Create inserts a new series. The imdbId must be free across both the
// movies and series collections.
func (s *SeriesService) Create(ctx context.Context, req *models.SeriesRequest) (string, error) {
	taken, err := s.imdbIDTaken(ctx, req.ImdbID)
	if err != nil {
		return "", err
	}
	if taken {
		log.WithField("imdbId", req.ImdbID).Warn("series creation rejected, imdbId already exists")
		return "", apperrors.ErrAlreadyExists
	}

	id, err := s.series.Insert(ctx, req.ToSeries())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Series was successfully created. (id: '%s')", id.Hex()), nil
}

// Update replaces the mutable fields of a series, with the same imdbId
// ownership rule as movies.
func (s *SeriesService) Update(ctx context.Context, id string, req *models.SeriesRequest) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}
	found, err := s.series.FindByID(ctx, oid)
	if err != nil {
		return "", err
	}
	if found.ImdbID != req.ImdbID {
		taken, err := s.imdbIDTaken(ctx, req.ImdbID)
		if err != nil {
			return "", err
		}
		if taken {
			log.WithFields(log.Fields{"id": id, "imdbId": req.ImdbID}).Warn("series update rejected, imdbId in use")
			return "", apperrors.ErrImdbIDInUse
		}
	}

	modified, err := s.series.Update(ctx, oid, req)
	if err != nil {
		return "", err
	}
	if modified == 0 {
		return "Fields have the same value, no update was performed", nil
	}
	return fmt.Sprintf("Series with id: '%s' was successfully updated", id), nil
}

// Patch sets a single allow-listed field. numberOfSeasons is parsed into an
// integer and genres into a list before hitting the store.
func (s *SeriesService) Patch(ctx context.Context, id, field, value string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}
	if !slices.Contains(seriesPatchFields, field) {
		log.WithFields(log.Fields{"id": id, "field": field}).Warn("series patch rejected, field not allowed")
		return "", apperrors.ErrFieldNotAllowed
	}
	found, err := s.series.FindByID(ctx, oid)
	if err != nil {
		return "", err
	}

	var bsonValue any = value
	switch field {
	case "imdbId":
		if !helper.IsValidImdbID(value) {
			return "", apperrors.ErrWrongImdbID
		}
		if found.ImdbID != value {
			taken, err := s.imdbIDTaken(ctx, value)
			if err != nil {
				return "", err
			}
			if taken {
				return "", apperrors.ErrImdbIDInUse
			}
		}
	case "numberOfSeasons":
		seasons, err := strconv.Atoi(value)
		if err != nil || seasons < 1 {
			return "", errors.Wrap(apperrors.ErrValidation, "numberOfSeasons must be a positive integer")
		}
		bsonValue = seasons
	case "genres":
		bsonValue = splitCSV(value)
	}

	modified, err := s.series.Patch(ctx, oid, field, bsonValue)
	if err != nil {
		return "", err
	}
	if modified == 0 {
		return "Field has the same value, no patch was performed", nil
	}
	return fmt.Sprintf("Series %s with id: '%s' was successfully patched", field, id), nil
}

// Delete removes a series and cascades to the reviews it references.
func (s *SeriesService) Delete(ctx context.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}
	found, err := s.series.FindByID(ctx, oid)
	if err != nil {
		return "", err
	}

	deleted, err := s.series.Delete(ctx, oid)
	if err != nil {
		return "", err
	}
	if deleted == 0 {
		return "", apperrors.ErrNotFound
	}
	if _, err := s.reviews.DeleteManyByIDs(ctx, found.ReviewIDs); err != nil {
		return "", err
	}
	return fmt.Sprintf("Series with id: '%s' was successfully deleted", id), nil
}

func (s *SeriesService) imdbIDTaken(ctx context.Context, imdbID string) (bool, error) {
	if exists, err := s.movies.ExistsByImdbID(ctx, imdbID); err != nil || exists {
		return exists, err
	}
	return s.series.ExistsByImdbID(ctx, imdbID)
}
