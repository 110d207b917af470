package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adesai47/aaditya-social-media-site/domain"
	"github.com/adesai47/aaditya-social-media-site/domain/mocks"
	"github.com/adesai47/aaditya-social-media-site/internal/rest"
)

func newRouter(h *rest.ArtifactHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/artifacts", h.Store)
	r.GET("/artifacts", h.Fetch)
	r.GET("/artifacts/:id", h.GetByID)
	r.PUT("/artifacts/:id", h.ReplacePayload)
	r.DELETE("/artifacts/:id", h.Delete)
	r.POST("/artifacts/:id/like", h.ToggleLike)
	return r
}

func TestStoreArtifact(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)
	payload := `{"blobSize":100,"blobColor":"#61dafb"}`

	mockUsecase.On("Create", mock.Anything, "user-1", domain.KindArt, mock.AnythingOfType("json.RawMessage")).
		Return(domain.Artifact{
			ID:        1,
			OwnerID:   "user-1",
			Kind:      domain.KindArt,
			Payload:   json.RawMessage(payload),
			CreatedAt: time.Now(),
		}, nil).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	body := `{"ownerId":"user-1","kind":"art","payload":` + payload + `}`
	req := httptest.NewRequest(http.MethodPost, "/artifacts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var res struct {
		ID        int64           `json:"id"`
		Payload   json.RawMessage `json:"payload"`
		LikeCount int64           `json:"likeCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, int64(1), res.ID)
	assert.Zero(t, res.LikeCount)
	// the configuration blob comes back exactly as sent
	assert.JSONEq(t, payload, string(res.Payload))
	mockUsecase.AssertExpectations(t)
}

func TestStoreArtifactUnknownKind(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	body := `{"ownerId":"user-1","kind":"sculpture","payload":{}}`
	req := httptest.NewRequest(http.MethodPost, "/artifacts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreArtifactMissingPayload(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)

	mockUsecase.On("Create", mock.Anything, "user-1", domain.KindArt, mock.AnythingOfType("json.RawMessage")).
		Return(domain.Artifact{}, domain.ErrBadParamInput).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	body := `{"ownerId":"user-1","kind":"art"}`
	req := httptest.NewRequest(http.MethodPost, "/artifacts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchFeed(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)
	now := time.Now()

	mockUsecase.On("Fetch", mock.Anything, domain.KindArt).
		Return([]domain.Artifact{
			{ID: 2, Kind: domain.KindArt, Payload: json.RawMessage(`{}`), CreatedAt: now},
			{ID: 1, Kind: domain.KindArt, Payload: json.RawMessage(`{}`), CreatedAt: now.Add(-time.Hour)},
		}, nil).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	req := httptest.NewRequest(http.MethodGet, "/artifacts?kind=art", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res []struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 2)
	assert.Equal(t, int64(2), res[0].ID)
	mockUsecase.AssertExpectations(t)
}

func TestFetchFeedBadKind(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)

	mockUsecase.On("Fetch", mock.Anything, domain.Kind("sculpture")).
		Return(nil, domain.ErrBadParamInput).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	req := httptest.NewRequest(http.MethodGet, "/artifacts?kind=sculpture", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetByIDNotFound(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)

	mockUsecase.On("GetByID", mock.Anything, int64(99)).
		Return(domain.Artifact{}, domain.ErrNotFound).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	req := httptest.NewRequest(http.MethodGet, "/artifacts/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReplacePayload(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)
	newPayload := `{"blobColor":"#ff0000"}`

	mockUsecase.On("ReplacePayload", mock.Anything, int64(1), mock.AnythingOfType("json.RawMessage")).
		Return(domain.Artifact{
			ID:      1,
			Kind:    domain.KindArt,
			Payload: json.RawMessage(newPayload),
		}, nil).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	req := httptest.NewRequest(http.MethodPut, "/artifacts/1", strings.NewReader(`{"payload":`+newPayload+`}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertExpectations(t)
}

func TestDeleteArtifact(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)

	mockUsecase.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	req := httptest.NewRequest(http.MethodDelete, "/artifacts/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestToggleLike(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)

	mockLike.On("Toggle", mock.Anything, int64(1), "u1").
		Return(domain.ToggleResult{Liked: true, LikeCount: 1}, nil).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	req := httptest.NewRequest(http.MethodPost, "/artifacts/1/like", strings.NewReader(`{"userId":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res domain.ToggleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Liked)
	assert.Equal(t, int64(1), res.LikeCount)
	mockLike.AssertExpectations(t)
}

func TestToggleLikeMissingUser(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)

	mockLike.On("Toggle", mock.Anything, int64(1), "").
		Return(domain.ToggleResult{}, domain.ErrBadParamInput).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	req := httptest.NewRequest(http.MethodPost, "/artifacts/1/like", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleLikeInvalidID(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	req := httptest.NewRequest(http.MethodPost, "/artifacts/abc/like", strings.NewReader(`{"userId":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockLike.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLikeArtifactMissing(t *testing.T) {
	mockUsecase := new(mocks.ArtifactUsecase)
	mockLike := new(mocks.LikeUsecase)

	mockLike.On("Toggle", mock.Anything, int64(99), "u2").
		Return(domain.ToggleResult{}, domain.ErrNotFound).Once()

	router := newRouter(rest.NewArtifactHandler(mockUsecase, mockLike))
	req := httptest.NewRequest(http.MethodPost, "/artifacts/99/like", strings.NewReader(`{"userId":"u2"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
