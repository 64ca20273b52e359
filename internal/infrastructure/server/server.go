package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/termweb/internal/api/http"
	"github.com/GriffinCanCode/termweb/internal/api/middleware"
	"github.com/GriffinCanCode/termweb/internal/api/ws"
	"github.com/GriffinCanCode/termweb/internal/domain/session"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/config"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/logging"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/termweb/internal/shared/utils"
)

// gzipMinSize is the smallest response worth compressing.
const gzipMinSize = 1024

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	handler  http.Handler
	http     *http.Server
	terminal *session.Terminal
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// NewServer creates a new server instance with a logger built from cfg.
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.FromAppConfig(cfg.Logging))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return New(cfg, logger)
}

// New creates a server that logs to logger.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	logger.Info("Initializing termweb server",
		zap.String("addr", cfg.Addr()),
		zap.String("seed", cfg.Seed.Path),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("termweb", logger.Logger)

	terminal := session.NewTerminal(logger).WithMetrics(metrics)
	if cfg.Seed.Path != "" {
		span, _ := tracer.StartSpan(context.Background(), "seed")
		err := terminal.LoadSeed(cfg.Seed.Path)
		if err != nil {
			span.SetError(err)
		}
		span.Finish()
		tracer.Submit(span)
		if err != nil {
			tracer.Close()
			return nil, fmt.Errorf("failed to seed tree: %w", err)
		}
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.CORSFromOrigins(cfg.CORS.Origins)))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	router.Use(middleware.BodyLimit(utils.MaxJSONSize))

	handlers := apihttp.NewHandlers(terminal, metrics, logger)
	wsHandler := ws.NewHandler(terminal, metrics, logger)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	api.POST("/command", handlers.RunCommand)
	api.GET("/stats", handlers.Stats)
	api.GET("/stream", wsHandler.HandleConnection)

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	var handler http.Handler = router
	if cfg.Compress.Enabled {
		compressed, err := compress(router)
		if err != nil {
			tracer.Close()
			return nil, fmt.Errorf("failed to configure compression: %w", err)
		}
		handler = compressed
	}

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		handler:  handler,
		terminal: terminal,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		tracer:   tracer,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// compress gzips responses except WebSocket upgrades, which need the raw
// connection.
func compress(next http.Handler) (http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize))
	if err != nil {
		return nil, err
	}
	gz := wrap(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Upgrade") != "" {
			next.ServeHTTP(w, r)
			return
		}
		gz.ServeHTTP(w, r)
	}), nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Terminal returns the shared session.
func (s *Server) Terminal() *session.Terminal {
	return s.terminal
}

// Run starts the HTTP server and blocks until it stops. A clean Shutdown
// returns nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires, then releases the
// tracer and flushes the logger.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Failed to drain connections", zap.Error(err))
	}

	s.tracer.Close()
	// stdout sync fails on some platforms
	_ = s.logger.Sync()

	if err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
