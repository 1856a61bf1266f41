package auth

import (
	"net/http"
	"time"

	"jobboard/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// DefaultTTL matches the 7-day login session.
const DefaultTTL = 7 * 24 * time.Hour

// Sign issues an HS256 token carrying the user id and role.
func Sign(secret []byte, userID int64, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   userID,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// Parse verifies signature and expiry and returns the subject id and role.
func Parse(secret []byte, tokenString string) (int64, string, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, "", domain.UnauthorizedError{Msg: "invalid or expired token", Err: err}
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", domain.UnauthorizedError{Msg: "invalid token claims"}
	}

	// numeric claims decode as float64
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, "", domain.UnauthorizedError{Msg: "invalid token subject"}
	}

	role, _ := claims["role"].(string)
	return int64(id), role, nil
}

// SetCookie attaches the token as an http-only, same-site-strict cookie.
func SetCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(DefaultTTL.Seconds()), "/", "", secure, true)
}

// ClearCookie removes the session cookie on logout.
func ClearCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
