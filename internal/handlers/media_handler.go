package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/anvers19/devfolio/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MediaHandler handles file uploads. Files land on local disk; their
// metadata is recorded in MongoDB.
type MediaHandler struct {
	mediaRepository repositories.MediaRepository
	uploadDir       string
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaRepo repositories.MediaRepository, uploadDir string) *MediaHandler {
	return &MediaHandler{
		mediaRepository: mediaRepo,
		uploadDir:       uploadDir,
	}
}

// RegisterMediaRoutes registers media routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/media", h.Upload)
	g.GET("/media/mine", h.GetMyMedia)
}

// Upload stores a multipart file and records its metadata
func (h *MediaHandler) Upload(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	storedName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, storedName))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	media := &models.Media{
		UserID:      user.UserID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        size,
		URL:         "/uploads/" + storedName,
	}
	if err := h.mediaRepository.CreateMedia(c.Request().Context(), media); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, media)
}

// GetMyMedia lists the caller's uploads, newest first
func (h *MediaHandler) GetMyMedia(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	page, limit := pagination(c)
	skip := int64((page - 1) * limit)

	media, err := h.mediaRepository.GetMediaByUserID(c.Request().Context(), user.UserID, skip, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, media)
}
