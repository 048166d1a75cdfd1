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

type SeriesRepository struct {
	collection *mongo.Collection
}

func NewSeriesRepository(db *MongoDB) *SeriesRepository {
	return &SeriesRepository{
		collection: db.Collection(SeriesCollection),
	}
}

// FindAll returns one page of series plus the total count. Same filtering and
// ordering rules as the movie repository.
func (r *SeriesRepository) FindAll(ctx context.Context, title string, skip, limit int64) ([]models.Series, int64, error) {
	filter := bson.M{}
	if title != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: title, Options: "i"}}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		log.WithError(err).Error("counting series")
		return nil, 0, errors.Wrap(apperrors.ErrInternal, "counting series")
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		log.WithError(err).Error("finding series")
		return nil, 0, errors.Wrap(apperrors.ErrInternal, "finding series")
	}

	var series []models.Series
	if err = cursor.All(ctx, &series); err != nil {
		log.WithError(err).Error("decoding series")
		return nil, 0, errors.Wrap(apperrors.ErrInternal, "decoding series")
	}
	return series, total, nil
}

func (r *SeriesRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Series, error) {
	var series models.Series
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&series)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("finding series by id")
		return nil, errors.Wrap(apperrors.ErrInternal, "finding series by id")
	}
	return &series, nil
}

func (r *SeriesRepository) FindByImdbID(ctx context.Context, imdbID string) (*models.Series, error) {
	var series models.Series
	err := r.collection.FindOne(ctx, bson.M{"imdbId": imdbID}).Decode(&series)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		log.WithError(err).WithField("imdbId", imdbID).Error("finding series by imdbId")
		return nil, errors.Wrap(apperrors.ErrInternal, "finding series by imdbId")
	}
	return &series, nil
}

// FindByReviewID returns the series whose reviewIds contains the given review.
func (r *SeriesRepository) FindByReviewID(ctx context.Context, reviewID primitive.ObjectID) (*models.Series, error) {
	var series models.Series
	err := r.collection.FindOne(ctx, bson.M{"reviewIds": reviewID}).Decode(&series)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		log.WithError(err).WithField("reviewId", reviewID.Hex()).Error("finding series by review id")
		return nil, errors.Wrap(apperrors.ErrInternal, "finding series by review id")
	}
	return &series, nil
}

func (r *SeriesRepository) ExistsByImdbID(ctx context.Context, imdbID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"imdbId": imdbID}, options.Count().SetLimit(1))
	if err != nil {
		log.WithError(err).WithField("imdbId", imdbID).Error("checking series existence by imdbId")
		return false, errors.Wrap(apperrors.ErrInternal, "checking series existence by imdbId")
	}
	return count > 0, nil
}

func (r *SeriesRepository) Insert(ctx context.Context, series *models.Series) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, series)
	if err != nil {
		log.WithError(err).WithField("imdbId", series.ImdbID).Error("inserting series")
		return primitive.NilObjectID, errors.Wrap(apperrors.ErrInternal, "inserting series")
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// Update replaces every mutable field of the series, reviewIds excluded.
func (r *SeriesRepository) Update(ctx context.Context, id primitive.ObjectID, req *models.SeriesRequest) (int64, error) {
	update := bson.M{"$set": bson.M{
		"imdbId":          req.ImdbID,
		"title":           req.Title,
		"overview":        req.Overview,
		"numberOfSeasons": req.NumberOfSeasons,
		"creator":         req.Creator,
		"releaseDate":     req.ReleaseDate,
		"trailerLink":     req.TrailerLink,
		"genres":          req.Genres,
		"seasonList":      req.SeasonList,
		"poster":          req.Poster,
		"backdrop":        req.Backdrop,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("updating series")
		return 0, errors.Wrap(apperrors.ErrInternal, "updating series")
	}
	return result.ModifiedCount, nil
}

func (r *SeriesRepository) Patch(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"id": id.Hex(), "field": field}).Error("patching series")
		return 0, errors.Wrap(apperrors.ErrInternal, "patching series")
	}
	return result.ModifiedCount, nil
}

func (r *SeriesRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("deleting series")
		return 0, errors.Wrap(apperrors.ErrInternal, "deleting series")
	}
	return result.DeletedCount, nil
}

func (r *SeriesRepository) PushReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"reviewIds": reviewID}})
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("pushing review id to series")
		return errors.Wrap(apperrors.ErrInternal, "pushing review id to series")
	}
	return nil
}

func (r *SeriesRepository) PullReviewID(ctx context.Context, id, reviewID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"reviewIds": reviewID}})
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("pulling review id from series")
		return errors.Wrap(apperrors.ErrInternal, "pulling review id from series")
	}
	return nil
}
