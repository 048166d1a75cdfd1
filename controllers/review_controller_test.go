package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MCPikon/cinemagoback/apperrors"
	"github.com/MCPikon/cinemagoback/models"
)

type fakeReviewService struct {
	list         func(ctx context.Context, page, size int64) (*models.ReviewList, error)
	listByImdbID func(ctx context.Context, imdbID string) ([]models.ReviewResponse, error)
	getByID      func(ctx context.Context, id string) (*models.ReviewResponse, error)
	create       func(ctx context.Context, req *models.ReviewRequest) (string, error)
	update       func(ctx context.Context, id string, upd *models.ReviewUpdate) (string, error)
	patch        func(ctx context.Context, id, field, value string) (string, error)
	delete       func(ctx context.Context, id string) (string, error)
}

func (f *fakeReviewService) List(ctx context.Context, page, size int64) (*models.ReviewList, error) {
	return f.list(ctx, page, size)
}

func (f *fakeReviewService) ListByImdbID(ctx context.Context, imdbID string) ([]models.ReviewResponse, error) {
	return f.listByImdbID(ctx, imdbID)
}

func (f *fakeReviewService) GetByID(ctx context.Context, id string) (*models.ReviewResponse, error) {
	return f.getByID(ctx, id)
}

func (f *fakeReviewService) Create(ctx context.Context, req *models.ReviewRequest) (string, error) {
	return f.create(ctx, req)
}

func (f *fakeReviewService) Update(ctx context.Context, id string, upd *models.ReviewUpdate) (string, error) {
	return f.update(ctx, id, upd)
}

func (f *fakeReviewService) Patch(ctx context.Context, id, field, value string) (string, error) {
	return f.patch(ctx, id, field, value)
}

func (f *fakeReviewService) Delete(ctx context.Context, id string) (string, error) {
	return f.delete(ctx, id)
}

func reviewRouter(svc ReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewReviewController(svc)
	r := gin.New()
	g := r.Group("/api/v1/reviews")
	g.GET("/findAll", ctrl.GetReviews)
	g.GET("/findAllByImdbId/:imdbId", ctrl.GetReviewsByImdbID)
	g.GET("/findById/:id", ctrl.GetReviewByID)
	g.POST("/new", ctrl.CreateReview)
	g.PUT("/update/:id", ctrl.UpdateReviewByID)
	g.PATCH("/patch/:id", ctrl.PatchReviewByID)
	g.DELETE("/delete/:id", ctrl.DeleteReviewByID)
	return r
}

func TestGetReviewsByImdbID(t *testing.T) {
	t.Run("serves a bare array", func(t *testing.T) {
		svc := &fakeReviewService{
			listByImdbID: func(_ context.Context, imdbID string) ([]models.ReviewResponse, error) {
				assert.Equal(t, "tt12345", imdbID)
				return []models.ReviewResponse{
					{ID: primitive.NewObjectID(), Title: "Great", Rating: 5},
					{ID: primitive.NewObjectID(), Title: "Fine", Rating: 3},
				}, nil
			},
		}
		w := httptest.NewRecorder()
		reviewRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reviews/findAllByImdbId/tt12345", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var reviews []models.ReviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
		assert.Len(t, reviews, 2)
	})

	t.Run("entity without reviews answers 204", func(t *testing.T) {
		svc := &fakeReviewService{
			listByImdbID: func(_ context.Context, _ string) ([]models.ReviewResponse, error) {
				return nil, apperrors.ErrEmpty
			},
		}
		w := httptest.NewRecorder()
		reviewRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reviews/findAllByImdbId/tt12345", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("malformed imdbId answers 400", func(t *testing.T) {
		svc := &fakeReviewService{
			listByImdbID: func(_ context.Context, _ string) ([]models.ReviewResponse, error) {
				return nil, apperrors.ErrWrongImdbID
			},
		}
		w := httptest.NewRecorder()
		reviewRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reviews/findAllByImdbId/bogus", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateReview(t *testing.T) {
	validBody := `{"title":"Solid","rating":4,"body":"Loved it.","imdbId":"tt12345"}`

	t.Run("created review answers 201", func(t *testing.T) {
		svc := &fakeReviewService{
			create: func(_ context.Context, req *models.ReviewRequest) (string, error) {
				require.NotNil(t, req.Rating)
				assert.Equal(t, 4, *req.Rating)
				return "Review was successfully created. (id: 'abc')", nil
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews/new", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		reviewRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown imdbId answers 404", func(t *testing.T) {
		svc := &fakeReviewService{
			create: func(_ context.Context, _ *models.ReviewRequest) (string, error) {
				return "", apperrors.ErrNotFound
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews/new", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		reviewRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing body field answers 400 without hitting the service", func(t *testing.T) {
		svc := &fakeReviewService{
			create: func(_ context.Context, _ *models.ReviewRequest) (string, error) {
				t.Fatal("service should not be called")
				return "", nil
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews/new", strings.NewReader(`{"title":"Solid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		reviewRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPatchReviewByID(t *testing.T) {
	t.Run("invalid rating answers 400 with the reason", func(t *testing.T) {
		svc := &fakeReviewService{
			patch: func(_ context.Context, _, _, _ string) (string, error) {
				return "", apperrors.ErrValidation
			},
		}
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/reviews/patch/663e2f8b1f1a2b3c4d5e6f70", strings.NewReader(`{"field":"rating","value":"9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		reviewRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing patch params answer 400", func(t *testing.T) {
		svc := &fakeReviewService{
			patch: func(_ context.Context, _, _, _ string) (string, error) {
				t.Fatal("service should not be called")
				return "", nil
			},
		}
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/reviews/patch/663e2f8b1f1a2b3c4d5e6f70", strings.NewReader(`{"field":"rating"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		reviewRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
