package data_access

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MCPikon/cinemagoback/apperrors"
	"github.com/MCPikon/cinemagoback/models"
)

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *MongoDB) *ReviewRepository {
	return &ReviewRepository{
		collection: db.Collection(ReviewsCollection),
	}
}

// FindAll returns one page of reviews plus the total count, ordered by _id.
func (r *ReviewRepository) FindAll(ctx context.Context, skip, limit int64) ([]models.Review, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.WithError(err).Error("counting reviews")
		return nil, 0, errors.Wrap(apperrors.ErrInternal, "counting reviews")
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.WithError(err).Error("finding reviews")
		return nil, 0, errors.Wrap(apperrors.ErrInternal, "finding reviews")
	}

	var reviews []models.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		log.WithError(err).Error("decoding reviews")
		return nil, 0, errors.Wrap(apperrors.ErrInternal, "decoding reviews")
	}
	return reviews, total, nil
}

// FindManyByIDs returns the reviews whose _id is in ids, ordered by _id.
func (r *ReviewRepository) FindManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		log.WithError(err).Error("finding reviews by ids")
		return nil, errors.Wrap(apperrors.ErrInternal, "finding reviews by ids")
	}

	var reviews []models.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		log.WithError(err).Error("decoding reviews")
		return nil, errors.Wrap(apperrors.ErrInternal, "decoding reviews")
	}
	return reviews, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("finding review by id")
		return nil, errors.Wrap(apperrors.ErrInternal, "finding review by id")
	}
	return &review, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		log.WithError(err).Error("inserting review")
		return primitive.NilObjectID, errors.Wrap(apperrors.ErrInternal, "inserting review")
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// Update replaces the mutable fields and refreshes updatedAt.
func (r *ReviewRepository) Update(ctx context.Context, id primitive.ObjectID, upd *models.ReviewUpdate) (int64, error) {
	update := bson.M{"$set": bson.M{
		"title":     upd.Title,
		"rating":    *upd.Rating,
		"body":      upd.Body,
		"updatedAt": time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("updating review")
		return 0, errors.Wrap(apperrors.ErrInternal, "updating review")
	}
	return result.ModifiedCount, nil
}

// Patch sets a single field and refreshes updatedAt.
func (r *ReviewRepository) Patch(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, error) {
	update := bson.M{"$set": bson.M{
		field:       value,
		"updatedAt": time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"id": id.Hex(), "field": field}).Error("patching review")
		return 0, errors.Wrap(apperrors.ErrInternal, "patching review")
	}
	return result.ModifiedCount, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.WithError(err).WithField("id", id.Hex()).Error("deleting review")
		return 0, errors.Wrap(apperrors.ErrInternal, "deleting review")
	}
	return result.DeletedCount, nil
}

// DeleteManyByIDs removes every review whose _id is in ids. Used by the
// movie/series cascade on delete.
func (r *ReviewRepository) DeleteManyByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.WithError(err).Error("deleting reviews by ids")
		return 0, errors.Wrap(apperrors.ErrInternal, "deleting reviews by ids")
	}
	return result.DeletedCount, nil
}
