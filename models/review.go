package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is the document stored in the "reviews" collection. The parent
// movie/series holds the back-reference in its reviewIds field.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Rating    int                `bson:"rating" json:"rating"`
	Body      string             `bson:"body" json:"body"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReviewRequest is the creation payload for a review. The imdbId selects the
// movie or series the review belongs to. Rating is a pointer so that a
// legitimate 0 survives the required check.
type ReviewRequest struct {
	Title  string `json:"title" binding:"required" example:"A sequel that lives up to the first one."`
	Rating *int   `json:"rating" binding:"required,gte=0,lte=5" example:"4"`
	Body   string `json:"body" binding:"required" example:"Honestly it left us wanting more."`
	ImdbID string `json:"imdbId" binding:"required,imdbid" example:"tt12345"`
}

// ReviewUpdate is the update payload for a review. The parent reference is
// immutable, so no imdbId here.
type ReviewUpdate struct {
	Title  string `json:"title" binding:"required" example:"A sequel that lives up to the first one."`
	Rating *int   `json:"rating" binding:"required,gte=0,lte=5" example:"4"`
	Body   string `json:"body" binding:"required" example:"Honestly it left us wanting more."`
}

// ReviewResponse is the wire representation of a review, with RFC 3339
// timestamps instead of BSON datetimes.
type ReviewResponse struct {
	ID        primitive.ObjectID `json:"_id"`
	Title     string             `json:"title" example:"A sequel that lives up to the first one."`
	Rating    int                `json:"rating" example:"4"`
	Body      string             `json:"body" example:"Honestly it left us wanting more."`
	CreatedAt string             `json:"createdAt" example:"2024-05-07T11:56:05.792Z"`
	UpdatedAt string             `json:"updatedAt" example:"2024-05-07T11:56:05.792Z"`
}

// ReviewList is the paginated envelope returned by the reviews listing endpoint.
type ReviewList struct {
	Reviews     []ReviewResponse `json:"reviews"`
	CurrentPage int64            `json:"currentPage" example:"0"`
	TotalItems  int64            `json:"totalItems" example:"40"`
	TotalPages  int64            `json:"totalPages" example:"4"`
}

// ToReview builds the stored document for a creation request, stamping both
// timestamps with the same instant.
func (r *ReviewRequest) ToReview() *Review {
	now := time.Now().UTC()
	return &Review{
		Title:     r.Title,
		Rating:    *r.Rating,
		Body:      r.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ToResponse formats the timestamps for the API boundary.
func (r *Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Title:     r.Title,
		Rating:    r.Rating,
		Body:      r.Body,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// PatchParams is the body of PATCH requests: one allow-listed field and its
// new value as a string.
type PatchParams struct {
	Field string `json:"field" binding:"required" example:"title"`
	Value string `json:"value" binding:"required" example:"Casino"`
}
