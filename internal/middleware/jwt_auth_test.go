package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, secret, userID string) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:   userID,
		Username: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func runMiddleware(authHeader, secret string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := JWTAuthMiddleware(secret)(next)(c)
	return c, err
}

func TestJWTAuthAcceptsConfiguredSecret(t *testing.T) {
	token := signToken(t, "configured-secret", "u1")

	c, err := runMiddleware("Bearer "+token, "configured-secret")
	if err != nil {
		t.Fatalf("middleware returned %v", err)
	}

	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		t.Fatal("claims were not stored on the context")
	}
	if claims.UserID != "u1" {
		t.Errorf("claims.UserID = %s, want u1", claims.UserID)
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "some-other-secret", "u1")

	_, err := runMiddleware("Bearer "+token, "configured-secret")

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	_, err := runMiddleware("", "configured-secret")

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestJWTAuthRejectsMalformedHeader(t *testing.T) {
	_, err := runMiddleware("Token abc", "configured-secret")

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}
