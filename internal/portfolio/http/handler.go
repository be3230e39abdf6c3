package http

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/service"
)

type Handler struct {
	svc   *service.ContentService
	gate  *auth.Gate
	log   *logger.Logger
	debug bool
}

// New creates the portfolio handler. With debug set, 5xx responses carry
// the underlying error message.
func New(svc *service.ContentService, gate *auth.Gate, log *logger.Logger, debug bool) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		svc:   svc,
		gate:  gate,
		log:   log.With("component", "portfolio_http"),
		debug: debug,
	}
}

// Register mounts the content routes. Every mutating route sits behind the
// admin gate.
func (h *Handler) Register(rg *gin.RouterGroup) {
	admin := h.gate.Middleware()

	rg.GET("/portfolio", h.listSections)
	rg.GET("/portfolio/:section_type", h.getSection)
	rg.PUT("/portfolio/:section_type", admin, h.updateSection)

	rg.GET("/skills", h.listSkills)
	rg.POST("/skills", admin, h.createSkill)
	rg.PUT("/skills/:id", admin, h.replaceSkill)
	rg.DELETE("/skills/:id", admin, h.deleteSkill)

	rg.GET("/projects", h.listProjects)
	rg.POST("/projects", admin, h.createProject)
	rg.PUT("/projects/:id", admin, h.replaceProject)
	rg.DELETE("/projects/:id", admin, h.deleteProject)

	rg.GET("/experience", h.listExperience)
	rg.POST("/experience", admin, h.createExperience)

	rg.GET("/terminal/commands", h.terminalCommands)
}
