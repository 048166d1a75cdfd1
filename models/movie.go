package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is the document stored in the "movies" collection.
type Movie struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	ImdbID      string               `bson:"imdbId" json:"imdbId"`
	Title       string               `bson:"title" json:"title"`
	Overview    string               `bson:"overview" json:"overview"`
	Duration    string               `bson:"duration" json:"duration"`
	Director    string               `bson:"director" json:"director"`
	ReleaseDate string               `bson:"releaseDate" json:"releaseDate"`
	TrailerLink string               `bson:"trailerLink" json:"trailerLink"`
	Genres      []string             `bson:"genres" json:"genres"`
	Poster      string               `bson:"poster" json:"poster"`
	Backdrop    string               `bson:"backdrop" json:"backdrop"`
	ReviewIDs   []primitive.ObjectID `bson:"reviewIds" json:"reviewIds"`
}

// MovieRequest is the creation/update payload for a movie.
type MovieRequest struct {
	ImdbID      string   `json:"imdbId" binding:"required,imdbid" example:"tt12345"`
	Title       string   `json:"title" binding:"required" example:"The Wolf of Wall Street"`
	Overview    string   `json:"overview" binding:"required" example:"Martin Scorsese's biography of Jordan Belfort."`
	Duration    string   `json:"duration" binding:"required,movieduration" example:"2h 59m"`
	Director    string   `json:"director" binding:"required,personname" example:"Martin Scorsese"`
	ReleaseDate string   `json:"releaseDate" binding:"required,releasedate" example:"2014-01-17"`
	TrailerLink string   `json:"trailerLink" binding:"required,youtubeurl" example:"https://youtu.be/DEMZSa0esCU"`
	Genres      []string `json:"genres" binding:"required,min=1" example:"Crime,Drama"`
	Poster      string   `json:"poster" binding:"required,imageurl" example:"https://image.tmdb.org/t/p/original/jTlIYjvS16XOpsfvYCTmtEHV10K.jpg"`
	Backdrop    string   `json:"backdrop" binding:"required,imageurl" example:"https://image.tmdb.org/t/p/original/7Nwnmyzrtd0FkcRyPqmdzTPppQa.jpg"`
}

// MovieResponse is the condensed representation used by listing endpoints.
type MovieResponse struct {
	ImdbID      string `json:"imdbId" example:"tt12345"`
	Title       string `json:"title" example:"The Wolf of Wall Street"`
	Duration    string `json:"duration" example:"2h 59m"`
	ReleaseDate string `json:"releaseDate" example:"2014-01-17"`
	Poster      string `json:"poster" example:"https://image.tmdb.org/t/p/original/jTlIYjvS16XOpsfvYCTmtEHV10K.jpg"`
}

// MovieList is the paginated envelope returned by the movies listing endpoint.
type MovieList struct {
	Movies      []MovieResponse `json:"movies"`
	CurrentPage int64           `json:"currentPage" example:"0"`
	TotalItems  int64           `json:"totalItems" example:"23"`
	TotalPages  int64           `json:"totalPages" example:"3"`
}

// ToMovie builds the stored document for a creation request. The id is left
// empty so the driver generates it on insert, and the review list starts out
// empty.
func (r *MovieRequest) ToMovie() *Movie {
	return &Movie{
		ImdbID:      r.ImdbID,
		Title:       r.Title,
		Overview:    r.Overview,
		Duration:    r.Duration,
		Director:    r.Director,
		ReleaseDate: r.ReleaseDate,
		TrailerLink: r.TrailerLink,
		Genres:      r.Genres,
		Poster:      r.Poster,
		Backdrop:    r.Backdrop,
		ReviewIDs:   []primitive.ObjectID{},
	}
}

// ToResponse condenses the document for listings.
func (m *Movie) ToResponse() MovieResponse {
	return MovieResponse{
		ImdbID:      m.ImdbID,
		Title:       m.Title,
		Duration:    m.Duration,
		ReleaseDate: m.ReleaseDate,
		Poster:      m.Poster,
	}
}
