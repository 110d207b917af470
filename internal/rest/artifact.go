package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adesai47/aaditya-social-media-site/domain"
	"github.com/adesai47/aaditya-social-media-site/internal/rest/middleware"
	"github.com/adesai47/aaditya-social-media-site/internal/rest/request"
	"github.com/adesai47/aaditya-social-media-site/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ArtifactHandler represent the http handler for artifacts
type ArtifactHandler struct {
	Service     domain.ArtifactUsecase
	LikeService domain.LikeUsecase
}

func NewArtifactHandler(svc domain.ArtifactUsecase, likeSvc domain.LikeUsecase) *ArtifactHandler {
	return &ArtifactHandler{
		Service:     svc,
		LikeService: likeSvc,
	}
}

// Store will store the artifact by given request body
func (h *ArtifactHandler) Store(c *gin.Context) {
	var req request.StoreArtifact
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	ownerID := identityOrFallback(c, req.OwnerID)

	ctx := c.Request.Context()
	artifact, err := h.Service.Create(ctx, ownerID, domain.Kind(req.Kind), req.Payload)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewArtifactFromDomain(&artifact))
}

// Fetch will fetch the feed for the requested kind, newest first
func (h *ArtifactHandler) Fetch(c *gin.Context) {
	kind := domain.Kind(c.Query("kind"))
	ctx := c.Request.Context()

	artifacts, err := h.Service.Fetch(ctx, kind)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Artifact, len(artifacts))
	for i := range artifacts {
		res[i] = response.NewArtifactFromDomain(&artifacts[i])
	}
	c.JSON(http.StatusOK, res)
}

// GetByID will get artifact by given id
func (h *ArtifactHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	artifact, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArtifactFromDomain(&artifact))
}

// ReplacePayload will replace the artifact's payload wholesale
func (h *ArtifactHandler) ReplacePayload(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.ReplacePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	artifact, err := h.Service.ReplacePayload(c.Request.Context(), id, req.Payload)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArtifactFromDomain(&artifact))
}

// Delete will delete the artifact and every like row referencing it
func (h *ArtifactHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleLike flips the caller's like state and returns the authoritative
// counter for the client to reconcile its optimistic update against
func (h *ArtifactHandler) ToggleLike(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	// an empty body is fine when identity comes from the session token
	var req request.ToggleLike
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	userID := identityOrFallback(c, req.UserID)

	res, err := h.LikeService.Toggle(c.Request.Context(), id, userID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// identityOrFallback prefers the subject of a verified bearer token over a
// client-supplied id from the request body.
func identityOrFallback(c *gin.Context, fallback string) string {
	if v, ok := c.Get(middleware.ContextUserKey); ok {
		if sub, ok := v.(string); ok && sub != "" {
			return sub
		}
	}
	return fallback
}

// getStatusCode will get the code of the error returned by the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
