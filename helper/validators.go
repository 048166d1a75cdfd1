// Package helper holds the custom payload validators shared by the request
// DTOs and the services.
package helper

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	reImdbID          = regexp.MustCompile(`^tt\d+$`)
	reMovieDuration   = regexp.MustCompile(`^\d{1,2}h \d{1,2}m$`)
	reEpisodeDuration = regexp.MustCompile(`^(\d{1,2}h \d{1,2}m|\d{1,2}h|\d{1,2}m)$`)
	rePersonName      = regexp.MustCompile(`^([a-zA-Z]+\.?) ([a-zA-Z]+\.?)( [a-zA-Z]+)?$`)
	reReleaseDate     = regexp.MustCompile(`^\d{4}-(0?[1-9]|1[0-2])-(0?[1-9]|[12]\d|3[01])$`)
	reTrailerLink     = regexp.MustCompile(`^((https?:)?//)?((www|m)\.)?(youtube(-nocookie)?\.com|youtu\.be)/\S*$`)
	reRemoteImage     = regexp.MustCompile(`^https?://\S+\.(png|jpe?g|webp)\S*$`)
)

// IsValidImdbID reports whether s matches the 'tt0000' IMDb id format.
func IsValidImdbID(s string) bool {
	return reImdbID.MatchString(s)
}

// RegisterCustomValidators installs the domain validation tags on gin's
// binding validator. Must run once before the router starts serving.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	regexTag := func(tag string, re *regexp.Regexp) {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}
	regexTag("imdbid", reImdbID)
	regexTag("movieduration", reMovieDuration)
	regexTag("episodeduration", reEpisodeDuration)
	regexTag("personname", rePersonName)
	regexTag("releasedate", reReleaseDate)
	regexTag("youtubeurl", reTrailerLink)
	regexTag("imageurl", reRemoteImage)
}
