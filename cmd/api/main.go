package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/config"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/email"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/handler"
	bookinghandler "github.com/abdullah-masud/Doctors-Portal-Server/internal/handler/booking"
	cataloghandler "github.com/abdullah-masud/Doctors-Portal-Server/internal/handler/catalog"
	doctorhandler "github.com/abdullah-masud/Doctors-Portal-Server/internal/handler/doctor"
	userhandler "github.com/abdullah-masud/Doctors-Portal-Server/internal/handler/user"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/middleware"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository/postgres"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/router"
	availabilityService "github.com/abdullah-masud/Doctors-Portal-Server/internal/service/availability"
	bookingService "github.com/abdullah-masud/Doctors-Portal-Server/internal/service/booking"
	catalogService "github.com/abdullah-masud/Doctors-Portal-Server/internal/service/catalog"
	doctorService "github.com/abdullah-masud/Doctors-Portal-Server/internal/service/doctor"
	notificationService "github.com/abdullah-masud/Doctors-Portal-Server/internal/service/notification"
	userService "github.com/abdullah-masud/Doctors-Portal-Server/internal/service/user"
	"github.com/abdullah-masud/Doctors-Portal-Server/pkg/auth"
	"github.com/abdullah-masud/Doctors-Portal-Server/pkg/messaging"
	redisbroker "github.com/abdullah-masud/Doctors-Portal-Server/pkg/messaging/redis"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := model.RegisterValidations(v); err != nil {
			log.Fatal().Err(err).Msg("failed to register validations")
		}
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	serviceRepo := postgres.NewServiceRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	userRepo := postgres.NewUserRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())

	var sender email.Sender
	if cfg.SMTP.Enabled {
		sender = email.NewSMTPSender(cfg.SMTP)
	}

	var broker messaging.Broker
	if cfg.Redis.Enabled {
		broker, err = redisbroker.NewRedisBroker(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer broker.Close()
	}

	catalogSvc := catalogService.NewService(serviceRepo)
	availabilitySvc := availabilityService.NewService(serviceRepo, bookingRepo)
	notificationSvc := notificationService.NewService(sender, broker)
	bookingSvc := bookingService.NewService(bookingRepo, notificationSvc)
	userSvc := userService.NewService(userRepo, jwtSvc)
	doctorSvc := doctorService.NewService(doctorRepo)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, userSvc)

	h := handler.NewHandler(db)
	catalogHandler := cataloghandler.NewHandler(catalogSvc, availabilitySvc)
	bookingHandler := bookinghandler.NewHandler(bookingSvc)
	usrHandler := userhandler.NewHandler(userSvc)
	docHandler := doctorhandler.NewHandler(doctorSvc)

	r := router.NewRouter(
		authMiddleware,
		catalogHandler,
		bookingHandler,
		usrHandler,
		docHandler,
		h,
		router.Config{
			RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:     cfg.RateLimit.Burst,
			Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			CORSConfig:    corsConfig(cfg),
			MetricsPrefix: "doctors_portal",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	c := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	return c
}
