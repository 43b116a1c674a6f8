// Package server provides the HTTP server for the personnel agent.
//
// The server uses the Gin web framework and supports two modes of
// operation: development (API only) and production (API plus dashboard
// static file serving).
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                                                               │
//	│  Production Mode                Development Mode              │
//	│  ┌─────────────────────┐        ┌─────────────────────┐       │
//	│  │ HTTP :8000          │        │ HTTP :8000          │       │
//	│  │ Static file serving │        │ API only            │       │
//	│  │ SPA fallback        │        │ Gin debug mode      │       │
//	│  └─────────────────────┘        └─────────────────────┘       │
//	│                                                               │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (request/response logging)                      │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Lifecycle
//
// Creation:
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    handler.RegisterRoutes(router, authSrv)
//	})
//
// The registerHandlers callback receives a RouterGroup prefixed with
// /api/v1.
//
// Starting:
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
// Stopping:
//
//	srv.Stop(ctx)
//
// Performs graceful shutdown, waiting for in-flight requests to
// complete.
//
// # Middleware
//
// The server applies two middleware to all routes:
//
// Logger Middleware (middlewares.go):
//   - Debug entry on request start with method, path, query and client IP
//   - Completion entry adds status code and latency; requests that
//     accumulated handler errors log at error level
//   - Structured zap logging under the "http" logger name
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Turns a handler panic into a 500 response and logs the stack
//
// # Static File Serving (Production Only)
//
// In production mode with a configured statics folder, the server
// serves:
//
//	/static/*     → StaticsFolder/
//	/             → StaticsFolder/index.html
//	/favicon.ico  → StaticsFolder/favicon.ico
//	/any/path     → StaticsFolder/index.html (SPA fallback)
//	/api/*        → 404 JSON error (if route not found)
//
// # Health Check
//
// GET /health returns {"status":"ok"} without authentication, for
// probes and smoke tests.
package server
