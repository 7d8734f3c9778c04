package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/anvers19/devfolio/backend/internal/repositories"
	"github.com/anvers19/devfolio/backend/pkg/events"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to blog posts
type PostHandler struct {
	postRepository repositories.PostRepository
	bus            *events.Bus
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, bus *events.Bus) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		bus:            bus,
	}
}

// RegisterPostRoutes registers authenticated post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// RegisterPublicPostRoutes registers unauthenticated read routes
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPostByID)
}

// CreatePost publishes a new blog post. PostPublished goes out only after
// the post row was committed, so followers are never notified about a post
// that failed to save.
func (h *PostHandler) CreatePost(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	storedTags, tagList := encodeTags(req.Tags)
	post := &models.Post{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Tags:       storedTags,
		CoverImage: req.CoverImage,
		ReadTime:   estimateReadTime(req.Content),
		CreatedBy:  user.UserID,
		UpdatedBy:  user.UserID,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.bus.Publish(events.PostPublished{PostID: post.ID, AuthorID: post.CreatedBy})

	return c.JSON(http.StatusCreated, models.PostWithAuthor{
		Post:       *post,
		AuthorName: user.Username,
		TagList:    tagList,
	})
}

// GetPosts lists posts newest first, optionally filtered by tag
func (h *PostHandler) GetPosts(c echo.Context) error {
	page, limit := pagination(c)
	tag := c.QueryParam("tag")

	posts, total, err := h.postRepository.GetPosts(page, limit, tag)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	for i := range posts {
		posts[i].TagList = decodeTags(posts[i].Tags)
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return c.JSON(http.StatusOK, echo.Map{
		"data":       posts,
		"total":      total,
		"page":       page,
		"totalPages": totalPages,
	})
}

// GetPostByID returns a single post
func (h *PostHandler) GetPostByID(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post owned by the caller
func (h *PostHandler) DeletePost(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.CreatedBy != user.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	if err := h.postRepository.DeletePost(postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// estimateReadTime approximates reading time at ~200 words per minute.
func estimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / 200))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
