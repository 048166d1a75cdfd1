package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MCPikon/cinemagoback/apperrors"
	"github.com/MCPikon/cinemagoback/helper"
	"github.com/MCPikon/cinemagoback/models"
)

// moviePatchFields is the allow-list for PATCH /movies/patch/:id.
var moviePatchFields = []string{
	"imdbId", "title", "overview", "duration", "director",
	"releaseDate", "trailerLink", "genres", "poster", "backdrop",
}

type MovieService struct {
	movies  MovieRepository
	series  SeriesRepository
	reviews ReviewRepository
}

func NewMovieService(movies MovieRepository, series SeriesRepository, reviews ReviewRepository) *MovieService {
	return &MovieService{
		movies:  movies,
		series:  series,
		reviews: reviews,
	}
}

// List returns one page of movies, optionally filtered by title.
func (s *MovieService) List(ctx context.Context, title string, page, size int64) (*models.MovieList, error) {
	page, size = normalizePaging(page, size)
	movies, total, err := s.movies.FindAll(ctx, title, page*size, size)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		log.Warn("movies listing returned no results")
		return nil, apperrors.ErrEmpty
	}

	responses := make([]models.MovieResponse, 0, len(movies))
	for i := range movies {
		responses = append(responses, movies[i].ToResponse())
	}
	return &models.MovieList{
		Movies:      responses,
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  totalPages(total, size),
	}, nil
}

func (s *MovieService) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	return s.movies.FindByID(ctx, oid)
}

func (s *MovieService) GetByImdbID(ctx context.Context, imdbID string) (*models.Movie, error) {
	if !helper.IsValidImdbID(imdbID) {
		return nil, apperrors.ErrWrongImdbID
	}
	return s.movies.FindByImdbID(ctx, imdbID)
}

// Create inserts a new movie. The imdbId must be free across both the movies
// and series collections.
func (s *MovieService) Create(ctx context.Context, req *models.MovieRequest) (string, error) {
	taken, err := s.imdbIDTaken(ctx, req.ImdbID)
	if err != nil {
		return "", err
	}
	if taken {
		log.WithField("imdbId", req.ImdbID).Warn("movie creation rejected, imdbId already exists")
		return "", apperrors.ErrAlreadyExists
	}

	id, err := s.movies.Insert(ctx, req.ToMovie())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Movie was successfully created. (id: '%s')", id.Hex()), nil
}

// Update replaces the mutable fields of a movie. Changing the imdbId to one
// owned by another movie or series is rejected.
func (s *MovieService) Update(ctx context.Context, id string, req *models.MovieRequest) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}
	found, err := s.movies.FindByID(ctx, oid)
	if err != nil {
		return "", err
	}
	if found.ImdbID != req.ImdbID {
		taken, err := s.imdbIDTaken(ctx, req.ImdbID)
		if err != nil {
			return "", err
		}
		if taken {
			log.WithFields(log.Fields{"id": id, "imdbId": req.ImdbID}).Warn("movie update rejected, imdbId in use")
			return "", apperrors.ErrImdbIDInUse
		}
	}

	modified, err := s.movies.Update(ctx, oid, req)
	if err != nil {
		return "", err
	}
	if modified == 0 {
		return "Fields have the same value, no update was performed", nil
	}
	return fmt.Sprintf("Movie with id: '%s' was successfully updated", id), nil
}

// Patch sets a single allow-listed field. The genres value arrives as a
// comma-separated string and is stored as a list.
func (s *MovieService) Patch(ctx context.Context, id, field, value string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}
	if !slices.Contains(moviePatchFields, field) {
		log.WithFields(log.Fields{"id": id, "field": field}).Warn("movie patch rejected, field not allowed")
		return "", apperrors.ErrFieldNotAllowed
	}
	found, err := s.movies.FindByID(ctx, oid)
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
	case "genres":
		bsonValue = splitCSV(value)
	}

	modified, err := s.movies.Patch(ctx, oid, field, bsonValue)
	if err != nil {
		return "", err
	}
	if modified == 0 {
		return "Field has the same value, no patch was performed", nil
	}
	return fmt.Sprintf("Movie %s with id: '%s' was successfully patched", field, id), nil
}

// Delete removes a movie and cascades to the reviews it references.
func (s *MovieService) Delete(ctx context.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}
	found, err := s.movies.FindByID(ctx, oid)
	if err != nil {
		return "", err
	}

	deleted, err := s.movies.Delete(ctx, oid)
	if err != nil {
		return "", err
	}
	if deleted == 0 {
		return "", apperrors.ErrNotFound
	}
	if _, err := s.reviews.DeleteManyByIDs(ctx, found.ReviewIDs); err != nil {
		return "", err
	}
	return fmt.Sprintf("Movie with id: '%s' was successfully deleted", id), nil
}

// imdbIDTaken reports whether any movie or series already owns the imdbId.
func (s *MovieService) imdbIDTaken(ctx context.Context, imdbID string) (bool, error) {
	if exists, err := s.movies.ExistsByImdbID(ctx, imdbID); err != nil || exists {
		return exists, err
	}
	return s.series.ExistsByImdbID(ctx, imdbID)
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// errIsNotFound is a readability shim for the cross-collection fallbacks.
func errIsNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
