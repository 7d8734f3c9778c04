package handlers

import (
	"net/http"

	"github.com/anvers19/devfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// HistoryHandler handles reading-history HTTP requests
type HistoryHandler struct {
	postViewRepository repositories.PostViewRepository
	postRepository     repositories.PostRepository
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(postViewRepo repositories.PostViewRepository, postRepo repositories.PostRepository) *HistoryHandler {
	return &HistoryHandler{
		postViewRepository: postViewRepo,
		postRepository:     postRepo,
	}
}

// RegisterHistoryRoutes registers history routes
func (h *HistoryHandler) RegisterHistoryRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/view", h.RecordView)
	g.GET("/history", h.GetMyHistory)
}

// RecordView upserts a view of a post by the caller
func (h *HistoryHandler) RecordView(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	if err := h.postViewRepository.RecordView(user.UserID, postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMyHistory lists the caller's recently viewed posts
func (h *HistoryHandler) GetMyHistory(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	page, limit := pagination(c)

	history, err := h.postViewRepository.GetHistory(user.UserID, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, history)
}
