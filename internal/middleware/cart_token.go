package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CartTokenHeader is the Store API header identifying a shopper's cart.
const CartTokenHeader = "Cart-Token"

// CartTokenMiddleware requires a Cart-Token header on the request. When secret is
// set the token is verified as an HS256 JWT and its subject becomes the session id;
// otherwise the token is forwarded as is.
func CartTokenMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := strings.TrimSpace(c.GetHeader(CartTokenHeader))
		if tokenString == "" {
			logger.Warn("Cart-Token header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Cart-Token header required"})
			return
		}

		if secret == "" {
			c.Request = c.Request.WithContext(withCartToken(c.Request.Context(), tokenString, ""))
			c.Next()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			// Check the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil {
			logger.Warn("Invalid cart token", "error", err)
			msg := "Invalid cart token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Cart token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Cart token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Warn("Cart token claims invalid or subject missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid cart token claims"})
			return
		}

		ctx := withCartToken(c.Request.Context(), tokenString, claims.Subject)
		ctx = WithLogger(ctx, logger.With(slog.String("session_id", claims.Subject)))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
