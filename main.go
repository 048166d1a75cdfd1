package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MCPikon/cinemagoback/config"
	"github.com/MCPikon/cinemagoback/controllers"
	"github.com/MCPikon/cinemagoback/data_access"
	_ "github.com/MCPikon/cinemagoback/docs"
	"github.com/MCPikon/cinemagoback/helper"
	"github.com/MCPikon/cinemagoback/middleware"
	"github.com/MCPikon/cinemagoback/services"
)

//	@title			CinemaGoBack API
//	@version		1.0
//	@description	REST API for movies, series and their reviews, backed by MongoDB.
//	@BasePath		/api/v1

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	setupLogging(cfg.Env)
	log.WithField("env", cfg.Env).Info("configuration loaded")

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer mongodb.Close(context.Background())

	// Initialize repositories
	movieRepo := data_access.NewMovieRepository(mongodb)
	seriesRepo := data_access.NewSeriesRepository(mongodb)
	reviewRepo := data_access.NewReviewRepository(mongodb)

	// Initialize services
	movieService := services.NewMovieService(movieRepo, seriesRepo, reviewRepo)
	seriesService := services.NewSeriesService(seriesRepo, movieRepo, reviewRepo)
	reviewService := services.NewReviewService(reviewRepo, movieRepo, seriesRepo)

	// Initialize controllers
	appController := controllers.NewAppController()
	movieController := controllers.NewMovieController(movieService)
	seriesController := controllers.NewSeriesController(seriesService)
	reviewController := controllers.NewReviewController(reviewService)
	docsController := controllers.NewDocsController()

	helper.RegisterCustomValidators()

	r := setupRouter(cfg.Env, appController, movieController, seriesController, reviewController, docsController)

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func setupLogging(env string) {
	if env == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.DebugLevel)
}

func setupRouter(env string, app *controllers.AppController, movies *controllers.MovieController, series *controllers.SeriesController, reviews *controllers.ReviewController, docs *controllers.DocsController) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/", app.Hello)
		api.GET("/ping", app.Ping)
		api.GET("/health", app.Health)

		moviesGroup := api.Group("/movies")
		{
			moviesGroup.GET("/findAll", movies.GetMovies)
			moviesGroup.GET("/findById/:id", movies.GetMovieByID)
			moviesGroup.GET("/findByImdbId/:imdbId", movies.GetMovieByImdbID)
			moviesGroup.POST("/new", movies.CreateMovie)
			moviesGroup.PUT("/update/:id", movies.UpdateMovieByID)
			moviesGroup.PATCH("/patch/:id", movies.PatchMovieByID)
			moviesGroup.DELETE("/delete/:id", movies.DeleteMovieByID)
		}

		seriesGroup := api.Group("/series")
		{
			seriesGroup.GET("/findAll", series.GetSeries)
			seriesGroup.GET("/findById/:id", series.GetSeriesByID)
			seriesGroup.GET("/findByImdbId/:imdbId", series.GetSeriesByImdbID)
			seriesGroup.POST("/new", series.CreateSeries)
			seriesGroup.PUT("/update/:id", series.UpdateSeriesByID)
			seriesGroup.PATCH("/patch/:id", series.PatchSeriesByID)
			seriesGroup.DELETE("/delete/:id", series.DeleteSeriesByID)
		}

		reviewsGroup := api.Group("/reviews")
		{
			reviewsGroup.GET("/findAll", reviews.GetReviews)
			reviewsGroup.GET("/findAllByImdbId/:imdbId", reviews.GetReviewsByImdbID)
			reviewsGroup.GET("/findById/:id", reviews.GetReviewByID)
			reviewsGroup.POST("/new", reviews.CreateReview)
			reviewsGroup.PUT("/update/:id", reviews.UpdateReviewByID)
			reviewsGroup.PATCH("/patch/:id", reviews.PatchReviewByID)
			reviewsGroup.DELETE("/delete/:id", reviews.DeleteReviewByID)
		}
	}

	// API documentation: raw document plus the three UIs that render it.
	r.GET("/api-docs/openapi.json", docs.OpenAPIJSON)
	r.GET("/api/swagger-ui/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/api-docs/openapi.json")))
	r.GET("/api/redoc", docs.Redoc)
	r.GET("/api/scalar", docs.Scalar)

	return r
}
