package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MCPikon/cinemagoback/models"
)

// ReviewService is the service surface the review endpoints need.
type ReviewService interface {
	List(ctx context.Context, page, size int64) (*models.ReviewList, error)
	ListByImdbID(ctx context.Context, imdbID string) ([]models.ReviewResponse, error)
	GetByID(ctx context.Context, id string) (*models.ReviewResponse, error)
	Create(ctx context.Context, req *models.ReviewRequest) (string, error)
	Update(ctx context.Context, id string, upd *models.ReviewUpdate) (string, error)
	Patch(ctx context.Context, id, field, value string) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

type ReviewController struct {
	service ReviewService
}

func NewReviewController(service ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// GetReviews godoc
//
//	@Summary		List reviews
//	@Description	Returns one page of reviews.
//	@Tags			Reviews
//	@Produce		json
//	@Param			page	query		int	false	"page number (0-based)"
//	@Param			size	query		int	false	"page size"
//	@Success		200		{object}	models.ReviewList
//	@Success		204		"empty list"
//	@Failure		500		{object}	map[string]string
//	@Router			/reviews/findAll [get]
func (c *ReviewController) GetReviews(ctx *gin.Context) {
	page, size := pagingQuery(ctx)
	list, err := c.service.List(ctx.Request.Context(), page, size)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetReviewsByImdbID godoc
//
//	@Summary		List the reviews of a movie or series
//	@Tags			Reviews
//	@Produce		json
//	@Param			imdbId	path		string	true	"IMDb id (tt0000)"
//	@Success		200		{array}		models.ReviewResponse
//	@Success		204		"entity has no reviews"
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/reviews/findAllByImdbId/{imdbId} [get]
func (c *ReviewController) GetReviewsByImdbID(ctx *gin.Context) {
	reviews, err := c.service.ListByImdbID(ctx.Request.Context(), ctx.Param("imdbId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// GetReviewByID godoc
//
//	@Summary		Get a review by id
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path		string	true	"review ObjectID hex"
//	@Success		200	{object}	models.ReviewResponse
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/reviews/findById/{id} [get]
func (c *ReviewController) GetReviewByID(ctx *gin.Context) {
	review, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// CreateReview godoc
//
//	@Summary		Create a review
//	@Description	Creates a review for the movie or series owning the given imdbId.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		models.ReviewRequest	true	"review payload"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/reviews/new [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req models.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	message, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": message})
}

// UpdateReviewByID godoc
//
//	@Summary		Update a review
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"review ObjectID hex"
//	@Param			review	body		models.ReviewUpdate	true	"review payload"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/reviews/update/{id} [put]
func (c *ReviewController) UpdateReviewByID(ctx *gin.Context) {
	var upd models.ReviewUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	message, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), &upd)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

// PatchReviewByID godoc
//
//	@Summary		Patch one field of a review
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"review ObjectID hex"
//	@Param			patch	body		models.PatchParams	true	"field and new value"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/reviews/patch/{id} [patch]
func (c *ReviewController) PatchReviewByID(ctx *gin.Context) {
	var params models.PatchParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	message, err := c.service.Patch(ctx.Request.Context(), ctx.Param("id"), params.Field, params.Value)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteReviewByID godoc
//
//	@Summary		Delete a review
//	@Description	Removes the review and detaches it from its movie or series.
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path		string	true	"review ObjectID hex"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/reviews/delete/{id} [delete]
func (c *ReviewController) DeleteReviewByID(ctx *gin.Context) {
	message, err := c.service.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
