package handlers

import (
	"errors"
	"net/http"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/anvers19/devfolio/backend/internal/repositories"
	"github.com/anvers19/devfolio/backend/pkg/events"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	bus              *events.Bus
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, bus *events.Bus) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		bus:              bus,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/follow/status", h.GetFollowStatus)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// FollowUser follows a user. A duplicate follow is a silent no-op and does
// not publish; UserFollowed goes out only when a new edge was committed.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID := c.Param("id")

	if user.UserID == targetID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	if _, err := h.userRepository.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	follow := &models.Follow{
		FollowerID:  user.UserID,
		FollowingID: targetID,
	}
	created, err := h.followRepository.CreateFollow(follow)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if created {
		h.bus.Publish(events.UserFollowed{FollowerID: user.UserID, TargetID: targetID})
	}

	return c.JSON(http.StatusOK, echo.Map{"following": true})
}

// UnfollowUser removes a follow edge
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID := c.Param("id")

	if err := h.followRepository.DeleteFollow(user.UserID, targetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"following": false})
}

// GetFollowStatus reports whether the caller follows the given user
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID := c.Param("id")

	following, err := h.followRepository.IsFollowing(user.UserID, targetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"following": following})
}

// GetFollowers lists a user's followers
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	userID := c.Param("id")

	users, err := h.followRepository.GetFollowers(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	count, _ := h.followRepository.GetFollowersCount(userID)
	return c.JSON(http.StatusOK, echo.Map{"followers": users, "count": count})
}

// GetFollowing lists the users a user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	userID := c.Param("id")

	users, err := h.followRepository.GetFollowing(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	count, _ := h.followRepository.GetFollowingCount(userID)
	return c.JSON(http.StatusOK, echo.Map{"following": users, "count": count})
}
