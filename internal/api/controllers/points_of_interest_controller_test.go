package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cityinfo/internal/infra/infratest"
	"cityinfo/internal/models/request_models"
	"cityinfo/internal/models/response_models"
	"cityinfo/pkg/utils"
)

// MockPointsOfInterestService is a mock implementation of the PointsOfInterestServiceInterface
type MockPointsOfInterestService struct {
	mock.Mock
}

func (m *MockPointsOfInterestService) ListPointsOfInterest(ctx context.Context, cityID int) ([]response_models.PointOfInterest, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response_models.PointOfInterest), args.Error(1)
}

func (m *MockPointsOfInterestService) GetPointOfInterest(ctx context.Context, cityID, id int) (*response_models.PointOfInterest, error) {
	args := m.Called(ctx, cityID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.PointOfInterest), args.Error(1)
}

func (m *MockPointsOfInterestService) CreatePointOfInterest(ctx context.Context, cityID int, req request_models.PointOfInterestForCreation) (*response_models.PointOfInterest, error) {
	args := m.Called(ctx, cityID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.PointOfInterest), args.Error(1)
}

func (m *MockPointsOfInterestService) UpdatePointOfInterest(ctx context.Context, cityID, id int, req request_models.PointOfInterestForUpdate) error {
	return m.Called(ctx, cityID, id, req).Error(0)
}

func (m *MockPointsOfInterestService) PatchPointOfInterest(ctx context.Context, cityID, id int, patch request_models.PatchDocument) error {
	return m.Called(ctx, cityID, id, patch).Error(0)
}

func (m *MockPointsOfInterestService) DeletePointOfInterest(ctx context.Context, cityID, id int) error {
	return m.Called(ctx, cityID, id).Error(0)
}

func newPointsOfInterestRouter(svc *MockPointsOfInterestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewPointsOfInterestController(svc, infratest.Logger())

	r := gin.New()
	g := r.Group("/api/cities/:cityId/pointsofinterest")
	g.GET("", ctrl.GetPointsOfInterest)
	g.POST("", ctrl.CreatePointOfInterest)
	g.GET("/:id", ctrl.GetPointOfInterest)
	g.PUT("/:id", ctrl.UpdatePointOfInterest)
	g.DELETE("/:id", ctrl.DeletePointOfInterest)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetPointsOfInterestFaults(t *testing.T) {
	t.Run("database error is opaque", func(t *testing.T) {
		svc := new(MockPointsOfInterestService)
		svc.On("ListPointsOfInterest", mock.Anything, 1).
			Return(nil, fmt.Errorf("%w: connection refused on 10.0.0.5", utils.ErrDatabaseError)).Once()

		w := serve(newPointsOfInterestRouter(svc), http.MethodGet, "/api/cities/1/pointsofinterest", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp utils.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, utils.ProblemMessage, resp.Message)
		assert.NotContains(t, w.Body.String(), "10.0.0.5")
		svc.AssertExpectations(t)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		svc := new(MockPointsOfInterestService)
		svc.On("ListPointsOfInterest", mock.Anything, 1).
			Run(func(mock.Arguments) { panic("boom") }).Once()

		w := serve(newPointsOfInterestRouter(svc), http.MethodGet, "/api/cities/1/pointsofinterest", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), utils.ProblemMessage)
		assert.NotContains(t, w.Body.String(), "boom")
	})

	t.Run("missing city", func(t *testing.T) {
		svc := new(MockPointsOfInterestService)
		svc.On("ListPointsOfInterest", mock.Anything, 7).Return(nil, utils.ErrCityNotFound).Once()

		w := serve(newPointsOfInterestRouter(svc), http.MethodGet, "/api/cities/7/pointsofinterest", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSaveFailureIsServerError(t *testing.T) {
	svc := new(MockPointsOfInterestService)
	req := request_models.PointOfInterestForCreation{Name: "Central Park", Description: "A large park"}
	svc.On("CreatePointOfInterest", mock.Anything, 1, req).Return(nil, utils.ErrSaveFailed).Once()
	svc.On("DeletePointOfInterest", mock.Anything, 1, 2).Return(utils.ErrSaveFailed).Once()
	r := newPointsOfInterestRouter(svc)

	w := serve(r, http.MethodPost, "/api/cities/1/pointsofinterest", `{"name":"Central Park","description":"A large park"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), utils.ProblemMessage)

	w = serve(r, http.MethodDelete, "/api/cities/1/pointsofinterest/2", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertExpectations(t)
}

func TestInvalidInputNeverReachesService(t *testing.T) {
	svc := new(MockPointsOfInterestService)
	r := newPointsOfInterestRouter(svc)

	w := serve(r, http.MethodPost, "/api/cities/1/pointsofinterest", `{"name":"Same","description":"Same"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodPut, "/api/cities/1/pointsofinterest/2", `{"name":"X","description":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodGet, "/api/cities/1/pointsofinterest/two", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	svc.AssertNotCalled(t, "CreatePointOfInterest", mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "UpdatePointOfInterest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "GetPointOfInterest", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnexpectedServiceError(t *testing.T) {
	svc := new(MockPointsOfInterestService)
	svc.On("GetPointOfInterest", mock.Anything, 1, 2).Return(nil, errors.New("disk on fire")).Once()

	w := serve(newPointsOfInterestRouter(svc), http.MethodGet, "/api/cities/1/pointsofinterest/2", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk on fire")
}
