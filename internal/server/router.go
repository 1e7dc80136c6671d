package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/arylegal/ary-backend/internal/handlers"
	"github.com/arylegal/ary-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName     string
	CORSOrigins     string
	ActorMiddleware *middleware.ActorMiddleware
	CaseHandler     *handlers.CaseHandler
	SessionHandler  *handlers.SessionHandler
	EntryHandler    *handlers.EntryHandler
	ProposalHandler *handlers.ProposalHandler
	DecisionHandler *handlers.DecisionHandler
	ArtifactHandler *handlers.ArtifactHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))

	corsCfg := cors.DefaultConfig()
	if cfg.CORSOrigins != "" {
		var origins []string
		for _, o := range strings.Split(cfg.CORSOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Authorization", "Content-Type", "X-Requested-With", "X-Actor-Id"}
	router.Use(cors.New(corsCfg))

	router.Use(cfg.ActorMiddleware.Attach())

	router.GET("/healthcheck", handlers.HealthCheck)

	// Cases
	router.POST("/cases", cfg.CaseHandler.Create)
	router.GET("/cases", cfg.CaseHandler.List)
	router.GET("/cases/:case_id", cfg.CaseHandler.Get)
	router.GET("/cases/:case_id/sessions", cfg.CaseHandler.ListSessions)

	// Sessions
	router.POST("/sessions", cfg.SessionHandler.Create)
	router.GET("/sessions/:session_id", cfg.SessionHandler.Get)

	// Entries
	router.POST("/sessions/:session_id/entries", cfg.EntryHandler.Add)
	router.GET("/sessions/:session_id/entries", cfg.EntryHandler.List)
	router.DELETE("/sessions/:session_id/entries/:entry_id", cfg.EntryHandler.Delete)

	// Proposals + decisions
	router.POST("/entries/:entry_id/proposals", cfg.ProposalHandler.Propose)
	router.GET("/entries/:entry_id/proposals", cfg.ProposalHandler.List)
	router.POST("/proposals/:proposal_id/decision", cfg.DecisionHandler.Decide)

	// Artifacts
	router.POST("/artifacts", cfg.ArtifactHandler.Finalize)
	router.GET("/artifacts/:artifact_id", cfg.ArtifactHandler.Get)
	router.GET("/sessions/:session_id/artifact", cfg.ArtifactHandler.GetForSession)

	return router
}
