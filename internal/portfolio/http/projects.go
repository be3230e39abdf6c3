package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects(c.Request.Context())
	if err != nil {
		h.fail(c, "Project", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) createProject(c *gin.Context) {
	var req domain.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	project, err := h.svc.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Project", err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// replaceProject keeps the stored id and created_at whatever the body says.
func (h *Handler) replaceProject(c *gin.Context) {
	var req domain.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	project, err := h.svc.ReplaceProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, "Project", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.svc.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
