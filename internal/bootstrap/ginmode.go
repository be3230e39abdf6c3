package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/config"
)

func SetGinMode(env string) {
	if env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
}
