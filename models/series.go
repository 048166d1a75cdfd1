package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Episode belongs to a Season. It is embedded, never stored on its own.
type Episode struct {
	Title       string `bson:"title" json:"title" binding:"required" example:"Winter Is Coming"`
	ReleaseDate string `bson:"releaseDate" json:"releaseDate" binding:"required,releasedate" example:"2011-04-17"`
	Duration    string `bson:"duration" json:"duration" binding:"required,episodeduration" example:"1h 2m"`
	Description string `bson:"description" json:"description" binding:"required" example:"Ned Stark is torn between his family and an old friend."`
}

// Season groups the episodes of one season of a series.
type Season struct {
	Overview    string    `bson:"overview" json:"overview" binding:"required" example:"Two great houses come into conflict."`
	EpisodeList []Episode `bson:"episodeList" json:"episodeList" binding:"required,min=1,dive"`
	Poster      string    `bson:"poster" json:"poster" binding:"required,imageurl" example:"https://image.tmdb.org/t/p/original/fAos5hPi7TB49KpuIAjvQNZkvwM.jpg"`
}

// Series is the document stored in the "series" collection.
type Series struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	ImdbID          string               `bson:"imdbId" json:"imdbId"`
	Title           string               `bson:"title" json:"title"`
	Overview        string               `bson:"overview" json:"overview"`
	NumberOfSeasons int                  `bson:"numberOfSeasons" json:"numberOfSeasons"`
	Creator         string               `bson:"creator" json:"creator"`
	ReleaseDate     string               `bson:"releaseDate" json:"releaseDate"`
	TrailerLink     string               `bson:"trailerLink" json:"trailerLink"`
	Genres          []string             `bson:"genres" json:"genres"`
	SeasonList      []Season             `bson:"seasonList" json:"seasonList"`
	Poster          string               `bson:"poster" json:"poster"`
	Backdrop        string               `bson:"backdrop" json:"backdrop"`
	ReviewIDs       []primitive.ObjectID `bson:"reviewIds" json:"reviewIds"`
}

// SeriesRequest is the creation/update payload for a series.
type SeriesRequest struct {
	ImdbID          string   `json:"imdbId" binding:"required,imdbid" example:"tt12345"`
	Title           string   `json:"title" binding:"required" example:"House of the Dragon"`
	Overview        string   `json:"overview" binding:"required" example:"Based on George R.R. Martin's 'Fire and Blood'."`
	NumberOfSeasons int      `json:"numberOfSeasons" binding:"required,min=1" example:"2"`
	Creator         string   `json:"creator" binding:"required,personname" example:"George R.R. Martin"`
	ReleaseDate     string   `json:"releaseDate" binding:"required,releasedate" example:"2021-06-21"`
	TrailerLink     string   `json:"trailerLink" binding:"required,youtubeurl" example:"https://youtu.be/oBFtJUWuGFI"`
	Genres          []string `json:"genres" binding:"required,min=1" example:"Sci-Fi & Fantasy,Drama"`
	SeasonList      []Season `json:"seasonList" binding:"required,min=1,dive"`
	Poster          string   `json:"poster" binding:"required,imageurl" example:"https://image.tmdb.org/t/p/original/fAos5hPi7TB49KpuIAjvQNZkvwM.jpg"`
	Backdrop        string   `json:"backdrop" binding:"required,imageurl" example:"https://image.tmdb.org/t/p/original/xtAQ7j9Yd0j4Rjbvx1hW0ENpXjf.jpg"`
}

// SeriesResponse is the condensed representation used by listing endpoints.
type SeriesResponse struct {
	ImdbID          string `json:"imdbId" example:"tt12345"`
	Title           string `json:"title" example:"House of the Dragon"`
	NumberOfSeasons int    `json:"numberOfSeasons" example:"2"`
	ReleaseDate     string `json:"releaseDate" example:"2021-06-21"`
	Poster          string `json:"poster" example:"https://image.tmdb.org/t/p/original/fAos5hPi7TB49KpuIAjvQNZkvwM.jpg"`
}

// SeriesList is the paginated envelope returned by the series listing endpoint.
type SeriesList struct {
	Series      []SeriesResponse `json:"series"`
	CurrentPage int64            `json:"currentPage" example:"0"`
	TotalItems  int64            `json:"totalItems" example:"12"`
	TotalPages  int64            `json:"totalPages" example:"2"`
}

// ToSeries builds the stored document for a creation request.
func (r *SeriesRequest) ToSeries() *Series {
	return &Series{
		ImdbID:          r.ImdbID,
		Title:           r.Title,
		Overview:        r.Overview,
		NumberOfSeasons: r.NumberOfSeasons,
		Creator:         r.Creator,
		ReleaseDate:     r.ReleaseDate,
		TrailerLink:     r.TrailerLink,
		Genres:          r.Genres,
		SeasonList:      r.SeasonList,
		Poster:          r.Poster,
		Backdrop:        r.Backdrop,
		ReviewIDs:       []primitive.ObjectID{},
	}
}

// ToResponse condenses the document for listings.
func (s *Series) ToResponse() SeriesResponse {
	return SeriesResponse{
		ImdbID:          s.ImdbID,
		Title:           s.Title,
		NumberOfSeasons: s.NumberOfSeasons,
		ReleaseDate:     s.ReleaseDate,
		Poster:          s.Poster,
	}
}
