package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	cartTokenKey = contextKey("cartToken")
	sessionIDKey = contextKey("sessionID")
)

// GetCartTokenFromContext retrieves the Store API cart token of the request.
func GetCartTokenFromContext(c *gin.Context) (string, bool) {
	token, ok := c.Request.Context().Value(cartTokenKey).(string)
	return token, ok && token != ""
}

// GetSessionIDFromContext retrieves the cart session id carried by a verified
// cart token. It is empty when tokens are forwarded unverified.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, ok := c.Request.Context().Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}

func withCartToken(ctx context.Context, token, sessionID string) context.Context {
	ctx = context.WithValue(ctx, cartTokenKey, token)
	if sessionID != "" {
		ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	}
	return ctx
}
