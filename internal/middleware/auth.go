package middleware

import (
	"errors"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthMiddleware creates a Gin middleware for JWT authentication. Besides
// signature and expiry it checks the denylist, so a logged-out token stops
// working before its natural expiry.
func AuthMiddleware(jwtSecret []byte, denylist repository.DenylistRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"erro":   "Token de acesso necessário.",
				"codigo": "TOKEN_NECESSARIO",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"erro":   "Token de acesso necessário.",
				"codigo": "TOKEN_NECESSARIO",
			})
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			// Ensure the token's signing method is what we expect
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret, nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"erro":   "Token expirado. Faça login novamente.",
					"codigo": "TOKEN_EXPIRADO",
				})
				c.Abort()
				return
			}
			logger.Error("Invalid JWT token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{
				"erro":   "Token inválido.",
				"codigo": "TOKEN_INVALIDO",
			})
			c.Abort()
			return
		}

		if !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"erro":   "Token inválido.",
				"codigo": "TOKEN_INVALIDO",
			})
			c.Abort()
			return
		}

		revoked, err := denylist.IsRevoked(claims.ID)
		if err != nil {
			// Fail open: a database outage must not lock every authenticated
			// request out. The miss is logged so the trade-off stays visible.
			logger.Warn("Denylist check failed, letting request through", zap.Error(err))
			revoked = false
		}
		if revoked {
			c.JSON(http.StatusUnauthorized, gin.H{
				"erro":   "Token foi invalidado. Faça login novamente.",
				"codigo": "TOKEN_REVOGADO",
			})
			c.Abort()
			return
		}

		// Set token identity in context
		c.Set("jti", claims.ID)
		c.Set("fotografo_id", claims.PhotographerID)

		c.Next()
	}
}
