package handlers

import (
	"net/http"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/anvers19/devfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles the site owner's profile
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepository: profileRepo}
}

// RegisterPublicProfileRoutes registers the public profile read route
func (h *ProfileHandler) RegisterPublicProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
}

// RegisterProfileRoutes registers authenticated profile routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.PUT("/profile", h.UpdateProfile)
}

// GetProfile returns the landing-page profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileRepository.GetProfile()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile replaces the landing-page profile content
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile := &models.Profile{
		Role:           req.Role,
		TitlePrefix:    req.TitlePrefix,
		TitleHighlight: req.TitleHighlight,
		TitleSuffix:    req.TitleSuffix,
		Intro:          req.Intro,
	}
	if err := h.profileRepository.UpdateProfile(profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}
