// internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zone-platform/internal/chat/gateway"
	chatsession "zone-platform/internal/chat/session"
	"zone-platform/internal/common/config"
	apperrors "zone-platform/internal/common/errors"
	"zone-platform/internal/common/logger"
	"zone-platform/internal/common/observability"
	"zone-platform/internal/interview/catalog"
	interviewsession "zone-platform/internal/interview/session"
)

// Server wires the chat and interview services behind one HTTP surface.
type Server struct {
	http       *http.Server
	engine     *gin.Engine
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler

	chat       *chatsession.Manager
	interviews *interviewsession.Controller
	catalog    *catalog.Catalog
	gateway    *gateway.Gateway
	obs        *observability.Observability
}

// Deps carries the constructed services the server exposes.
type Deps struct {
	Chat          *chatsession.Manager
	Interviews    *interviewsession.Controller
	Catalog       *catalog.Catalog
	Gateway       *gateway.Gateway
	Observability *observability.Observability
}

func New(cfg *config.Config, deps Deps, log logger.Logger) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	s := &Server{
		engine:     engine,
		logger:     log.With(map[string]interface{}{"component": "http-server"}),
		errHandler: apperrors.NewErrorHandler(log),
		chat:       deps.Chat,
		interviews: deps.Interviews,
		catalog:    deps.Catalog,
		gateway:    deps.Gateway,
		obs:        deps.Observability,
	}

	engine.Use(gin.Recovery())
	engine.Use(s.requestLogger())
	if cfg.Server.EnableCORS {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	s.registerRoutes()

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	{
		api.POST("/chat", s.handleChatProxy)
		api.GET("/catalog", s.handleCatalog)

		sessions := api.Group("/sessions/:id")
		{
			sessions.GET("", s.handleChatSnapshot)
			sessions.POST("/messages", s.handleChatSend)
			sessions.GET("/messages", s.handleChatMessages)
			sessions.DELETE("/messages", s.handleChatClear)
			sessions.PUT("/zone", s.handleChatZone)
			sessions.PUT("/position", s.handleChatPosition)
			sessions.PUT("/open", s.handleChatOpen)
		}

		interviews := api.Group("/interviews")
		{
			interviews.POST("", s.handleInterviewStart)
			interviews.GET("/:id", s.handleInterviewGet)
			interviews.POST("/:id/answers", s.handleInterviewAnswer)
			interviews.POST("/:id/back", s.handleInterviewBack)
			interviews.POST("/:id/restart", s.handleInterviewRestart)
			interviews.GET("/:id/result", s.handleInterviewResult)
		}
	}
}

// requestLogger logs one line per request and feeds the request metrics.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if s.obs != nil {
			s.obs.RecordRequest(c.Request.Context(), route, strconv.Itoa(c.Writer.Status()))
		}
		s.logger.Info("request completed", map[string]interface{}{
			"method":   c.Request.Method,
			"route":    route,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{"address": s.http.Addr})
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// respondError maps an application error onto the HTTP response.
func (s *Server) respondError(c *gin.Context, err error) {
	status, body := s.errHandler.HandleRequestError(err)
	c.JSON(status, body)
}
