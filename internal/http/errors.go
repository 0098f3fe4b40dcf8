package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobs-api/internal/domain"
)

// writeError traduce el error etiquetado de un service a un status HTTP. Es
// el único punto donde esa traducción ocurre; los clientes reciben un status
// y un mensaje corto, nunca detalles internos.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		logger.Error("unclassified error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	switch de.Kind {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": de.Message})
	case domain.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": de.Message})
	case domain.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": de.Message})
	case domain.KindUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": de.Message})
	default:
		logger.Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
