package server

import (
	"github.com/gin-gonic/gin"

	"prism-backend/internal/portfolio"
	"prism-backend/internal/services/health"
	"prism-backend/internal/shared/config"
	"prism-backend/internal/shared/metrics"
	"prism-backend/internal/shared/server/middleware"
	"prism-backend/internal/shared/server/respond"
	"prism-backend/internal/ui"
)

// APIBase is the prefix of every JSON route.
const APIBase = "/api/v1"

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config           config.Config
	Health           *health.Service
	PortfolioHandler *portfolio.Handler
	UIHandler        *ui.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Session(deps.Config.Env == "production"),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	if deps.UIHandler != nil {
		deps.UIHandler.RegisterRoutes(r)
	}
	r.GET("/metrics", metrics.Handler())

	api := r.Group(APIBase)
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		respond.OK(c, deps.Health.Status())
	})
	if deps.PortfolioHandler != nil {
		deps.PortfolioHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
