package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"groq-scribe/internal/api/handlers"
	"groq-scribe/internal/api/middleware"
	"groq-scribe/internal/config"
	"groq-scribe/internal/metrics"
	"groq-scribe/internal/transcriber"
	"groq-scribe/web"
)

// Server hosts the browser UI and the transcription relay endpoint.
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer wires the HTTP server. The transcriber is the process-wide
// collaborator for the external speech-to-text service; it is shared
// read-only across all requests.
func NewServer(cfg *config.Config, t transcriber.Transcriber, logger *slog.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	recorder := metrics.NewRecorder(registry)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	transcribeHandler := handlers.NewTranscribeHandler(t, cfg.Language, recorder, logger)
	api := router.Group("/api")
	{
		api.POST("/transcribe", middleware.BodyLimit(cfg.MaxUploadBytes()), transcribeHandler.Transcribe)
	}

	registerStatic(router)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// registerStatic serves the embedded browser client.
func registerStatic(router *gin.Engine) {
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	index, err := fs.ReadFile(staticFS, "index.html")
	if err != nil {
		panic(err)
	}

	router.StaticFS("/static", http.FS(staticFS))
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}

// Start begins serving in a background goroutine. Listen errors other than a
// clean shutdown are reported on the returned channel.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	s.logger.Info("starting server",
		"addr", s.httpServer.Addr,
		"environment", s.config.Environment,
		"max_upload_mb", s.config.MaxUploadMB,
		"model", s.config.Model,
		"language", s.config.Language,
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return errCh
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("forced shutdown", "error", err)
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
