package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const sessionTokenTtl = 30 * 24 * time.Hour

const sessionContextKey = "sessionID"

// issueSessionToken signs a long-lived HS256 token carrying the session
// id. Sessions are anonymous; the token only ties a browser to its
// conversation history.
func issueSessionToken(secret, sessionID string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"iat":        now.Unix(),
		"exp":        now.Add(sessionTokenTtl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func parseSessionToken(secret, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("session token missing session_id claim")
	}
	return sessionID, nil
}

// sessionMiddleware resolves an optional bearer token into a session id.
// Requests without a token still proceed; they just run statelessly.
func (m ApiHandler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		sessionID, err := parseSessionToken(m.JwtSecret, tokenStr)
		if err != nil {
			returnErrorJsonCode(err, c, 401)
			return
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

func sessionIdFromContext(c *gin.Context) string {
	if v, ok := c.Get(sessionContextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
