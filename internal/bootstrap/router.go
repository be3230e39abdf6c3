package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/logger"
	portfoliohttp "github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/http"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/service"
)

type RouterDeps struct {
	Version     string
	Production  bool
	AdminToken  string
	CORSOrigins []string
	RateRPS     float64
	RateBurst   int
	Service     *service.ContentService
	Log         *logger.Logger
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(middleware.CORS(dep.CORSOrigins))
	if dep.RateRPS > 0 && dep.RateBurst > 0 {
		r.Use(middleware.NewRateLimiter(dep.RateRPS, dep.RateBurst).Middleware())
	}

	api := r.Group("/api")
	api.GET("/", httpapi.Root(dep.Version))

	healthHandler := httpapi.NewHealthHandler(dep.Service, dep.Log)
	healthHandler.RegisterRoutes(api)

	gate := auth.NewGate(dep.AdminToken)
	portfolioHandler := portfoliohttp.New(dep.Service, gate, dep.Log, !dep.Production)
	portfolioHandler.Register(api)

	if !dep.Production {
		docs, err := httpapi.NewDocsHandler(dep.Version)
		if err != nil {
			return nil, fmt.Errorf("docs: %w", err)
		}
		docs.RegisterRoutes(r)
	}

	return r, nil
}
