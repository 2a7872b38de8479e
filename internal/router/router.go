package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/handler"
	bookinghandler "github.com/abdullah-masud/Doctors-Portal-Server/internal/handler/booking"
	cataloghandler "github.com/abdullah-masud/Doctors-Portal-Server/internal/handler/catalog"
	doctorhandler "github.com/abdullah-masud/Doctors-Portal-Server/internal/handler/doctor"
	userhandler "github.com/abdullah-masud/Doctors-Portal-Server/internal/handler/user"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/middleware"
)

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	Timeout       time.Duration
	CORSConfig    middleware.CORSConfig
	MetricsPrefix string
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	catalogH *cataloghandler.Handler
	bookingH *bookinghandler.Handler
	userH    *userhandler.Handler
	doctorH  *doctorhandler.Handler
	h        *handler.Handler
	metrics  *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	catalogH *cataloghandler.Handler,
	bookingH *bookinghandler.Handler,
	userH *userhandler.Handler,
	doctorH *doctorhandler.Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     auth,
		catalogH: catalogH,
		bookingH: bookingH,
		userH:    userH,
		doctorH:  doctorH,
		h:        h,
		metrics:  initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.Timeout(config.Timeout),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	r.setupHealthCheck(api)

	// Public surface: catalog, availability, booking creation, the
	// upsert/login path, and the admin-status probe.
	r.catalogH.RegisterRoutes(api)
	api.POST("/bookings", r.bookingH.CreateBooking)
	api.PUT("/users/:email", r.userH.UpsertUser)
	api.GET("/users/admin/:email", r.userH.CheckAdmin)

	// Token-gated surface.
	authed := api.Group("", r.auth.Authenticate())
	authed.GET("/bookings", r.auth.RequireSelf("patientEmail"), r.bookingH.ListBookings)
	authed.GET("/users", r.userH.ListUsers)

	// Admin-gated surface.
	admin := authed.Group("", r.auth.RequireAdmin())
	admin.PUT("/users/admin/:email", r.userH.PromoteToAdmin)
	r.doctorH.RegisterRoutes(admin)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", r.h.MetricsHandler)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}

	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
