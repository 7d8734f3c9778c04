package handlers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// currentUser returns the JWT claims the auth middleware stored on the
// context, or nil when the request is unauthenticated.
func currentUser(c echo.Context) *models.JwtCustomClaims {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// pagination reads page/limit query params with sane bounds.
func pagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return page, limit
}

// encodeTags turns a comma-separated tag string into its stored JSON form.
func encodeTags(csv string) (stored string, list []string) {
	list = []string{}
	for _, t := range strings.Split(csv, ",") {
		if t = strings.TrimSpace(t); t != "" {
			list = append(list, t)
		}
	}
	raw, _ := json.Marshal(list)
	return string(raw), list
}

// decodeTags parses the stored JSON tag array.
func decodeTags(stored string) []string {
	var list []string
	if err := json.Unmarshal([]byte(stored), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}
