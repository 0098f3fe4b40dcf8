package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobs-api/internal/service"
)

const (
	authClaimsKey   = "auth_claims"
	refreshTokenKey = "refresh_token"
)

// AccessGuard valida el bearer token contra el secreto de access y guarda los
// claims en el contexto.
func AccessGuard(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "missing token")
			return
		}
		claims, err := tokens.ParseAccess(token)
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}
		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// RefreshGuard valida el bearer token contra el secreto de refresh. Además de
// los claims guarda el token crudo: el session manager necesita el texto plano
// para compararlo contra el hash almacenado.
func RefreshGuard(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "missing token")
			return
		}
		claims, err := tokens.ParseRefresh(token)
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}
		c.Set(authClaimsKey, claims)
		c.Set(refreshTokenKey, token)
		c.Next()
	}
}

// GetAuthClaims obtiene los claims validados desde el contexto.
func GetAuthClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}

// GetRefreshToken obtiene el refresh token crudo que validó el RefreshGuard.
func GetRefreshToken(c *gin.Context) (string, bool) {
	val, ok := c.Get(refreshTokenKey)
	if !ok {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
	c.Abort()
}
