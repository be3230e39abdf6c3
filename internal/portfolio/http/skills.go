package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

func (h *Handler) listSkills(c *gin.Context) {
	skills, err := h.svc.ListSkills(c.Request.Context())
	if err != nil {
		h.fail(c, "Skill", err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *Handler) createSkill(c *gin.Context) {
	var req domain.Skill
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	skill, err := h.svc.CreateSkill(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Skill", err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *Handler) replaceSkill(c *gin.Context) {
	var req domain.Skill
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	skill, err := h.svc.ReplaceSkill(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, "Skill", err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *Handler) deleteSkill(c *gin.Context) {
	if err := h.svc.DeleteSkill(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Skill", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
