package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/interfaces/http/handler"
	"github.com/crm/backend/internal/interfaces/http/middleware"
)

// EngineConfig configures the middleware stack installed by NewEngine
type EngineConfig struct {
	ServiceName    string
	TrustedProxies []string
	MaxBodySize    int64
	CORS           middleware.CORSConfig
	Security       middleware.SecurityConfig
	Swagger        middleware.SwaggerConfig

	TracingEnabled bool
	TracerProvider trace.TracerProvider // nil uses the global provider
	Meter          metric.Meter         // nil disables HTTP metrics
}

// Handlers groups the HTTP handlers mounted by RegisterRoutes
type Handlers struct {
	Customer *handler.CustomerHandler
	System   *handler.SystemHandler
}

// NewEngine creates a gin engine with the standard middleware stack:
//
//  1. RequestID - generate/propagate X-Request-ID
//  2. Recovery - log panics and answer with the error envelope
//  3. Tracing - otelgin server span, then error status marking
//  4. Metrics - request count, duration, in-flight
//  5. Logger - one "HTTP Request" entry per request
//  6. CORS
//  7. Security headers
//  8. BodyLimit
func NewEngine(cfg EngineConfig, log *zap.Logger) (*gin.Engine, error) {
	engine := gin.New()

	if len(cfg.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	httpMetrics, err := middleware.HTTPMetrics(cfg.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP metrics: %w", err)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.RecoveryWithResponder(log, handler.RespondPanic))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName:    cfg.ServiceName,
		Enabled:        cfg.TracingEnabled,
		TracerProvider: cfg.TracerProvider,
	}))
	if cfg.TracingEnabled {
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(httpMetrics)
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(cfg.CORS))
	engine.Use(middleware.SecureWithConfig(cfg.Security))
	if cfg.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}

	return engine, nil
}

// RegisterRoutes mounts the health check, the API documentation and the
// versioned API on engine.
func RegisterRoutes(engine *gin.Engine, h Handlers, swagger middleware.SwaggerConfig) {
	// Health check endpoint (outside API versioning)
	engine.GET("/health", h.System.Health)

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(swagger),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	NewAPI("v1").Add(customerResource(h.Customer), systemResource(h.System)).Mount(engine)
}

func customerResource(h *handler.CustomerHandler) Resource {
	return Resource{
		Prefix: "/customers",
		Routes: []Route{
			get("", h.List),
			post("", h.Create),
			get("/:id", h.GetByID),
			put("/:id", h.Update),
			patch("/:id", h.Patch),
			remove("/:id", h.Delete),
			patch("/:id/address", h.UpdateAddress),
			patch("/:id/phonenumber", h.UpdatePhoneNumber),
			patch("/:id/status", h.UpdateStatus),
		},
	}
}

func systemResource(h *handler.SystemHandler) Resource {
	return Resource{
		Prefix: "/system",
		Routes: []Route{
			get("/info", h.GetSystemInfo),
			get("/ping", h.Ping),
		},
	}
}
