// File: doctorsportal/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	paymentRepoPkg "doctorsportal/database/repository/payment"
	treatmentRepoPkg "doctorsportal/database/repository/treatment"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	db := database.Database()

	if err := utils.InitCache(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	stripe.Key = config.AppConfig.StripeKey

	tokens, err := utils.NewTokenManager(config.AppConfig.JWTSecret, config.TokenTTL())
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// repositories.
	treatmentRepo := treatmentRepoPkg.NewMongoTreatmentRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	for _, ensure := range []func(context.Context) error{
		treatmentRepo.EnsureIndexes,
		bookingRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
	} {
		err := ensure(indexCtx)
		if errors.Is(err, bookingRepoPkg.ErrExistingDuplicates) {
			// Admission still checks before inserting; only concurrent duplicates slip through.
			logger.Warn("main: running without the unique booking index", zap.Error(err))
			continue
		}
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
	}
	cancelIndexes()

	// availability.
	var inProcess availability.Calculator = availability.NewInProcessCalculator(treatmentRepo, bookingRepo)
	var aggregation availability.Calculator = availability.NewAggregationCalculator(treatmentRepo)
	var invalidator availability.Invalidator
	if ttl := config.AvailabilityCacheTTL(); ttl > 0 {
		cache := availability.RedisCache{Client: utils.GetCacheClient()}
		inProcess = availability.NewCachedCalculator(inProcess, availability.StrategyInProcess, cache, ttl, logger)
		aggregation = availability.NewCachedCalculator(aggregation, availability.StrategyAggregation, cache, ttl, logger)
		invalidator = availability.CacheInvalidator{Cache: cache}
	}

	// background tasks.
	taskRedis := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}
	enqueuer := tasks.NewAsynqEnqueuer(taskRedis)
	defer enqueuer.Close()
	stopWorker := cron.InitConfirmationWorker(taskRedis, notification.LogNotifier{Logger: logger}, logger)

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Payments:     paymentRepo,
		Gateway:      booking.StripeGateway{},
		Availability: invalidator,
		Tasks:        enqueuer,
		Logger:       logger,
	}
	userService := &user.DefaultUserService{Repo: userRepo, Tokens: tokens}
	doctorService := &doctor.DefaultDoctorService{Repo: doctorRepo}

	handlerBundle := &handlers.HandlerBundle{
		Tokens: tokens,
		Admins: userService,

		Appointments: &handlers.AppointmentHandler{
			InProcess:   inProcess,
			Aggregation: aggregation,
			Specialties: treatmentRepo,
		},
		Bookings: &handlers.BookingHandler{BookingService: bookingService},
		Payments: &handlers.PaymentHandler{BookingService: bookingService},
		Users:    &handlers.UserHandler{UserService: userService},
		Doctors:  &handlers.DoctorHandler{DoctorService: doctorService},
		Health:   &handlers.HealthHandler{},
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.GetCacheClient(), database.MongoClient, 30*time.Second)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.TrustedProxyList()); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestIDMiddleware(logger))
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stopWorker()
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
