package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobs-api/internal/service"
)

// AuthHandler mantiene dependencias para los endpoints de sesión.
type AuthHandler struct {
	logger *zap.Logger
	auth   *service.AuthService
}

func NewAuthHandler(logger *zap.Logger, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		auth:   auth,
	}
}

// SignIn maneja POST /v1/auth/sign-in.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email,max=254"`
		Password string `json:"password" binding:"required,max=254,strongpw"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid sign in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// SignOut maneja GET /v1/auth/sign-out. Requiere access token.
func (h *AuthHandler) SignOut(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		abortUnauthorized(c, "missing token")
		return
	}

	if err := h.auth.SignOut(c.Request.Context(), claims.UserID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}

// Refresh maneja GET /v1/auth/refresh. Requiere refresh token; el guard deja
// el token crudo en el contexto para compararlo contra el hash almacenado.
func (h *AuthHandler) Refresh(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		abortUnauthorized(c, "missing token")
		return
	}
	refreshToken, ok := GetRefreshToken(c)
	if !ok {
		abortUnauthorized(c, "missing token")
		return
	}

	pair, err := h.auth.RefreshTokens(c.Request.Context(), claims.UserID, refreshToken)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}
