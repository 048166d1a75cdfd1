package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MCPikon/cinemagoback/models"
)

// MovieService is the service surface the movie endpoints need.
type MovieService interface {
	List(ctx context.Context, title string, page, size int64) (*models.MovieList, error)
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	GetByImdbID(ctx context.Context, imdbID string) (*models.Movie, error)
	Create(ctx context.Context, req *models.MovieRequest) (string, error)
	Update(ctx context.Context, id string, req *models.MovieRequest) (string, error)
	Patch(ctx context.Context, id, field, value string) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

type MovieController struct {
	service MovieService
}

func NewMovieController(service MovieService) *MovieController {
	return &MovieController{service: service}
}

// GetMovies godoc
//
//	@Summary		List movies
//	@Description	Returns one page of movies, optionally filtered by title.
//	@Tags			Movies
//	@Produce		json
//	@Param			title	query		string	false	"case-insensitive title filter"
//	@Param			page	query		int		false	"page number (0-based)"
//	@Param			size	query		int		false	"page size"
//	@Success		200		{object}	models.MovieList
//	@Success		204		"empty list"
//	@Failure		500		{object}	map[string]string
//	@Router			/movies/findAll [get]
func (c *MovieController) GetMovies(ctx *gin.Context) {
	page, size := pagingQuery(ctx)
	list, err := c.service.List(ctx.Request.Context(), ctx.Query("title"), page, size)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetMovieByID godoc
//
//	@Summary		Get a movie by id
//	@Tags			Movies
//	@Produce		json
//	@Param			id	path		string	true	"movie ObjectID hex"
//	@Success		200	{object}	models.Movie
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/movies/findById/{id} [get]
func (c *MovieController) GetMovieByID(ctx *gin.Context) {
	movie, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

// GetMovieByImdbID godoc
//
//	@Summary		Get a movie by IMDb id
//	@Tags			Movies
//	@Produce		json
//	@Param			imdbId	path		string	true	"IMDb id (tt0000)"
//	@Success		200		{object}	models.Movie
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/movies/findByImdbId/{imdbId} [get]
func (c *MovieController) GetMovieByImdbID(ctx *gin.Context) {
	movie, err := c.service.GetByImdbID(ctx.Request.Context(), ctx.Param("imdbId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

// CreateMovie godoc
//
//	@Summary		Create a movie
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			movie	body		models.MovieRequest	true	"movie payload"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/movies/new [post]
func (c *MovieController) CreateMovie(ctx *gin.Context) {
	var req models.MovieRequest
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

// UpdateMovieByID godoc
//
//	@Summary		Update a movie
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"movie ObjectID hex"
//	@Param			movie	body		models.MovieRequest	true	"movie payload"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/movies/update/{id} [put]
func (c *MovieController) UpdateMovieByID(ctx *gin.Context) {
	var req models.MovieRequest
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

// PatchMovieByID godoc
//
//	@Summary		Patch one field of a movie
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"movie ObjectID hex"
//	@Param			patch	body		models.PatchParams	true	"field and new value"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/movies/patch/{id} [patch]
func (c *MovieController) PatchMovieByID(ctx *gin.Context) {
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

// DeleteMovieByID godoc
//
//	@Summary		Delete a movie
//	@Description	Removes the movie and the reviews it references.
//	@Tags			Movies
//	@Produce		json
//	@Param			id	path		string	true	"movie ObjectID hex"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/movies/delete/{id} [delete]
func (c *MovieController) DeleteMovieByID(ctx *gin.Context) {
	message, err := c.service.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
