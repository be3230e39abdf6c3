package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

const (
	detailInvalidBody = "Invalid request body"
	detailUnavailable = "Service temporarily unavailable"
	detailInternal    = "Internal server error"
)

// fail maps a service error onto a status code and a {"detail": ...} body.
// entity names the record kind in 404 and 409 messages.
func (h *Handler) fail(c *gin.Context, entity string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": verr.Error(),
			"field":  verr.Field,
			"rule":   verr.Rule,
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": entity + " not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"detail": entity + " already exists"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, h.detail(detailUnavailable, err))
	default:
		h.log.Error("unhandled request error",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, h.detail(detailInternal, err))
	}
}

func (h *Handler) badBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, h.detail(detailInvalidBody, err))
}

func (h *Handler) detail(msg string, err error) gin.H {
	body := gin.H{"detail": msg}
	if h.debug {
		body["error"] = err.Error()
	}
	return body
}
