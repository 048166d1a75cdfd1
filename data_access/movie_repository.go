package data_access

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MCPikon/cinemagoback/apperrors"
	"github.com/MCPikon/cinemagoback/models"
)

type MovieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *MongoDB) *MovieRepository {
	return &MovieRepository{
		collection: db.Collection(MoviesCollection),
	}
}

// FindAll returns one page of movies plus the total count of documents
// matching the filter. An empty title means no filter; otherwise the title is
// matched as a case-insensitive regex. Results are ordered by _id, which for
// ObjectIDs is creation order.
func (r *MovieRepository) FindAll(ctx context.Context, title string, skip, limit int64) ([]models.Movie, int64, error) {
	filter := bson.M{}
	if title != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: title, Options: "i"}}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		log.WithError(err).Error("counting movies")
		return nil, 0, errors.Wrap(apperrors.ErrInternal, "counting movies")
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		log.WithError(err).Error("finding movies")
		return nil, 0, errors.Wrap(apperrors.ErrInternal, "finding movies")
	}

	var movies []models.Movie
	if err = cursor.All(ctx, &movies); err != nil {
		log.WithError(err).Error("decoding movies")
		return nil, 0, errors.Wrap(apperrors.ErrInternal, "decoding movies")
	}
	return movies, total, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("finding movie by id")
		return nil, errors.Wrap(apperrors.ErrInternal, "finding movie by id")
	}
	return &movie, nil
}

func (r *MovieRepository) FindByImdbID(ctx context.Context, imdbID string) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"imdbId": imdbID}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		log.WithError(err).WithField("imdbId", imdbID).Error("finding movie by imdbId")
		return nil, errors.Wrap(apperrors.ErrInternal, "finding movie by imdbId")
	}
	return &movie, nil
}

// FindByReviewID returns the movie whose reviewIds contains the given review.
func (r *MovieRepository) FindByReviewID(ctx context.Context, reviewID primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"reviewIds": reviewID}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		log.WithError(err).WithField("reviewId", reviewID.Hex()).Error("finding movie by review id")
		return nil, errors.Wrap(apperrors.ErrInternal, "finding movie by review id")
	}
	return &movie, nil
}

func (r *MovieRepository) ExistsByImdbID(ctx context.Context, imdbID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"imdbId": imdbID}, options.Count().SetLimit(1))
	if err != nil {
		log.WithError(err).WithField("imdbId", imdbID).Error("checking movie existence by imdbId")
		return false, errors.Wrap(apperrors.ErrInternal, "checking movie existence by imdbId")
	}
	return count > 0, nil
}

func (r *MovieRepository) Insert(ctx context.Context, movie *models.Movie) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		log.WithError(err).WithField("imdbId", movie.ImdbID).Error("inserting movie")
		return primitive.NilObjectID, errors.Wrap(apperrors.ErrInternal, "inserting movie")
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// Update replaces every mutable field of the movie. The reviewIds list is
// deliberately left untouched.
func (r *MovieRepository) Update(ctx context.Context, id primitive.ObjectID, req *models.MovieRequest) (int64, error) {
	update := bson.M{"$set": bson.M{
		"imdbId":      req.ImdbID,
		"title":       req.Title,
		"overview":    req.Overview,
		"duration":    req.Duration,
		"director":    req.Director,
		"releaseDate": req.ReleaseDate,
		"trailerLink": req.TrailerLink,
		"genres":      req.Genres,
		"poster":      req.Poster,
		"backdrop":    req.Backdrop,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("updating movie")
		return 0, errors.Wrap(apperrors.ErrInternal, "updating movie")
	}
	return result.ModifiedCount, nil
}

func (r *MovieRepository) Patch(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"id": id.Hex(), "field": field}).Error("patching movie")
		return 0, errors.Wrap(apperrors.ErrInternal, "patching movie")
	}
	return result.ModifiedCount, nil
}

func (r *MovieRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("deleting movie")
		return 0, errors.Wrap(apperrors.ErrInternal, "deleting movie")
	}
	return result.DeletedCount, nil
}

func (r *MovieRepository) PushReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"reviewIds": reviewID}})
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("pushing review id to movie")
		return errors.Wrap(apperrors.ErrInternal, "pushing review id to movie")
	}
	return nil
}

func (r *MovieRepository) PullReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"reviewIds": reviewID}})
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("pulling review id from movie")
		return errors.Wrap(apperrors.ErrInternal, "pulling review id from movie")
	}
	return nil
}
