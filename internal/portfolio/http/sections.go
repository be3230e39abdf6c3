package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

func (h *Handler) listSections(c *gin.Context) {
	sections, err := h.svc.ListSections(c.Request.Context())
	if err != nil {
		h.fail(c, "Section", err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *Handler) getSection(c *gin.Context) {
	section, err := h.svc.GetSection(c.Request.Context(), c.Param("section_type"))
	if err != nil {
		h.fail(c, "Section", err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *Handler) updateSection(c *gin.Context) {
	var req domain.SectionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	section, err := h.svc.UpdateSection(c.Request.Context(), c.Param("section_type"), req)
	if err != nil {
		h.fail(c, "Section", err)
		return
	}
	c.JSON(http.StatusOK, section)
}
