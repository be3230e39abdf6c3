package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

func (h *Handler) listExperience(c *gin.Context) {
	items, err := h.svc.ListExperience(c.Request.Context())
	if err != nil {
		h.fail(c, "Experience", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createExperience(c *gin.Context) {
	var req domain.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	item, err := h.svc.CreateExperience(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Experience", err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// terminalCommands serves the static command list used by the terminal UI.
func (h *Handler) terminalCommands(c *gin.Context) {
	c.JSON(http.StatusOK, domain.TerminalCommands())
}
