package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/anvers19/devfolio/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ProjectHandler handles HTTP requests related to portfolio projects
type ProjectHandler struct {
	projectRepository repositories.ProjectRepository
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectRepo repositories.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projectRepository: projectRepo}
}

// RegisterPublicProjectRoutes registers unauthenticated read routes
func (h *ProjectHandler) RegisterPublicProjectRoutes(g *echo.Group) {
	g.GET("/projects", h.GetProjects)
}

// RegisterProjectRoutes registers authenticated project routes
func (h *ProjectHandler) RegisterProjectRoutes(g *echo.Group) {
	g.POST("/projects", h.CreateProject)
	g.DELETE("/projects/:id", h.DeleteProject)
}

// GetProjects lists projects newest first
func (h *ProjectHandler) GetProjects(c echo.Context) error {
	page, limit := pagination(c)

	projects, total, err := h.projectRepository.GetProjects(page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	responses := make([]models.ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = models.ProjectResponse{Project: p, TagList: decodeTags(p.Tags)}
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return c.JSON(http.StatusOK, echo.Map{
		"data":       responses,
		"total":      total,
		"page":       page,
		"totalPages": totalPages,
	})
}

// CreateProject adds a portfolio project
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	storedTags, tagList := encodeTags(req.Tags)
	project := &models.Project{
		ID:          uuid.NewString(),
		AuthorID:    user.UserID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        storedTags,
		Image:       req.Image,
		Link:        req.Link,
		Date:        time.Now().UnixMilli(),
		CreatedBy:   user.UserID,
		UpdatedBy:   user.UserID,
	}
	if err := h.projectRepository.CreateProject(project); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, models.ProjectResponse{Project: *project, TagList: tagList})
}

// DeleteProject deletes a project owned by the caller
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	projectID := c.Param("id")

	project, err := h.projectRepository.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if project.AuthorID != user.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this project")
	}

	if err := h.projectRepository.DeleteProject(projectID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
