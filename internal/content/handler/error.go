package handler

import (
	"errors"
	"net/http"

	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// writeError maps the content error taxonomy onto status codes. Storage causes
// are logged by the service layer and never reach the client.
func writeError(c *gin.Context, err error) {
	var (
		verr *content.ValidationError
		nf   *content.NotFoundError
		perr *content.PersistenceError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "validation failed", "errors": verr.Fields})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"detail": nf.Detail})
	case errors.As(err, &perr):
		c.JSON(http.StatusInternalServerError, gin.H{"detail": perr.Error()})
	default:
		logger.With("path", c.FullPath()).Errorf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
