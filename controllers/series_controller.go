package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MCPikon/cinemagoback/models"
)

// SeriesService is the service surface the series endpoints need.
type SeriesService interface {
	List(ctx context.Context, title string, page, size int64) (*models.SeriesList, error)
	GetByID(ctx context.Context, id string) (*models.Series, error)
	GetByImdbID(ctx context.Context, imdbID string) (*models.Series, error)
	Create(ctx context.Context, req *models.SeriesRequest) (string, error)
	Update(ctx context.Context, id string, req *models.SeriesRequest) (string, error)
	Patch(ctx context.Context, id, field, value string) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

type SeriesController struct {
	service SeriesService
}

func NewSeriesController(service SeriesService) *SeriesController {
	return &SeriesController{service: service}
}

// GetSeries godoc
//
//	@Summary		List series
//	@Description	Returns one page of series, optionally filtered by title.
//	@Tags			Series
//	@Produce		json
//	@Param			title	query		string	false	"case-insensitive title filter"
//	@Param			page	query		int		false	"page number (0-based)"
//	@Param			size	query		int		false	"page size"
//	@Success		200		{object}	models.SeriesList
//	@Success		204		"empty list"
//	@Failure		500		{object}	map[string]string
//	@Router			/series/findAll [get]
func (c *SeriesController) GetSeries(ctx *gin.Context) {
	page, size := pagingQuery(ctx)
	list, err := c.service.List(ctx.Request.Context(), ctx.Query("title"), page, size)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetSeriesByID godoc
//
//	@Summary		Get a series by id
//	@Tags			Series
//	@Produce		json
//	@Param			id	path		string	true	"series ObjectID hex"
//	@Success		200	{object}	models.Series
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/series/findById/{id} [get]
func (c *SeriesController) GetSeriesByID(ctx *gin.Context) {
	series, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, series)
}

// GetSeriesByImdbID godoc
//
//	@Summary		Get a series by IMDb id
//	@Tags			Series
//	@Produce		json
//	@Param			imdbId	path		string	true	"IMDb id (tt0000)"
//	@Success		200		{object}	models.Series
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/series/findByImdbId/{imdbId} [get]
func (c *SeriesController) GetSeriesByImdbID(ctx *gin.Context) {
	series, err := c.service.GetByImdbID(ctx.Request.Context(), ctx.Param("imdbId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, series)
}

// CreateSeries godoc
//
//	@Summary		Create a series
//	@Tags			Series
//	@Accept			json
//	@Produce		json
//	@Param			series	body		models.SeriesRequest	true	"series payload"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/series/new [post]
func (c *SeriesController) CreateSeries(ctx *gin.Context) {
	var req models.SeriesRequest
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

// UpdateSeriesByID godoc
//
//	@Summary		Update a series
//	@Tags			Series
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"series ObjectID hex"
//	@Param			series	body		models.SeriesRequest	true	"series payload"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/series/update/{id} [put]
func (c *SeriesController) UpdateSeriesByID(ctx *gin.Context) {
	var req models.SeriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	message, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

// PatchSeriesByID godoc
//
//	@Summary		Patch one field of a series
//	@Tags			Series
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"series ObjectID hex"
//	@Param			patch	body		models.PatchParams	true	"field and new value"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/series/patch/{id} [patch]
func (c *SeriesController) PatchSeriesByID(ctx *gin.Context) {
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

// DeleteSeriesByID godoc
//
//	@Summary		Delete a series
//	@Description	Removes the series and the reviews it references.
//	@Tags			Series
//	@Produce		json
//	@Param			id	path		string	true	"series ObjectID hex"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/series/delete/{id} [delete]
func (c *SeriesController) DeleteSeriesByID(ctx *gin.Context) {
	message, err := c.service.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
