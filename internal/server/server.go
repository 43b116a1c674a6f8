package server

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/firehall/personnel-agent/internal/config"
)

// RegisterHandlersFn mounts API routes on the /api/v1 group.
type RegisterHandlersFn func(router *gin.RouterGroup)

type Server struct {
	cfg        *config.Configuration
	httpServer *http.Server
	log        *zap.SugaredLogger
}

// NewServer builds the Gin engine, applies the middleware stack and
// mounts the API under /api/v1 via the given callback.
func NewServer(cfg *config.Configuration, registerHandlers RegisterHandlersFn) (*Server, error) {
	if cfg.Server.ServerMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger(), ginzap.RecoveryWithZap(zap.L().Named("http"), true))

	apiGroup := router.Group("/api/v1")
	registerHandlers(apiGroup)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Server.ServerMode == "prod" && cfg.Server.StaticsFolder != "" {
		registerStatics(router, cfg.Server.StaticsFolder)
	}

	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log: zap.S().Named("server"),
	}, nil
}

// Start blocks serving HTTP until the listener fails or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.log.Infow("starting http server", "addr", s.httpServer.Addr, "mode", s.cfg.Server.ServerMode)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("stopping http server")
	return s.httpServer.Shutdown(ctx)
}

// registerStatics serves the dashboard assets with an SPA fallback:
// unknown non-API routes get index.html, unknown API routes get a JSON
// 404.
func registerStatics(router *gin.Engine, folder string) {
	router.Static("/static", folder)
	router.StaticFile("/", filepath.Join(folder, "index.html"))
	router.StaticFile("/favicon.ico", filepath.Join(folder, "favicon.ico"))

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(filepath.Join(folder, "index.html"))
	})
}
