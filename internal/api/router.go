package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/car-rental-api/docs"
	"github.com/99minutos/car-rental-api/internal/api/handler"
	"github.com/99minutos/car-rental-api/internal/core/ports"
)

// Services are the use cases the router exposes.
type Services struct {
	Accounts ports.AccountService
	Bookings ports.BookingService
	Profiles ports.ProfileService
	// HealthChecks are probed by /health/ready, keyed by dependency name.
	HealthChecks map[string]handler.Checker
}

type Options struct {
	// CORSOrigins defaults to any origin when empty.
	CORSOrigins []string
	// Metrics registers the request metrics middleware and /metrics on the
	// default Prometheus registry. Enable it once per process.
	Metrics bool
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// @title        Car Rental API
// @version      1.0
// @BasePath     /
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
	}))

	if opts.Metrics {
		e.Use(echoprometheus.NewMiddleware("car_rental"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Dependencies ---
	accountHandler := handler.NewAccountHandler(svc.Accounts)
	bookingHandler := handler.NewBookingHandler(svc.Bookings)
	profileHandler := handler.NewProfileHandler(svc.Profiles)
	healthHandler := handler.NewHealthHandler(svc.HealthChecks)

	// --- Auth routes ---
	e.POST("/signup", accountHandler.Signup)
	e.POST("/login", accountHandler.Login)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.GET("/bookings", bookingHandler.List)
	apiGroup.POST("/bookings", bookingHandler.Create)
	apiGroup.GET("/profile", profileHandler.Get)

	// --- Health probes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
