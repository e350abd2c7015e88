// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agencysite/config"
	"agencysite/cron"
	"agencysite/database"
	"agencysite/database/repository"
	"agencysite/handlers"
	"agencysite/routes"
	"agencysite/services/admin"
	"agencysite/services/analytics"
	"agencysite/services/booking"
	"agencysite/services/notification"
	"agencysite/services/pricing"
	"agencysite/services/tasks"
	"agencysite/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitRedis()

	// repositories.
	repos := repository.NewMongoRepositories(database.DB())
	idxCtx, idxCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := repos.EnsureIndexes(idxCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to create indexes: %v", err)
	}
	idxCancel()

	// background notification queue.
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()

	mailer := notification.NewMailgunMailer(
		config.AppConfig.MailgunDomain,
		config.AppConfig.MailgunAPIKey,
		config.AppConfig.MailFrom,
	)
	if mailer == nil {
		logger.Warn("main: Mailgun not configured, booking e-mails are disabled")
	}
	notificationService := notification.NewDefaultNotificationService(mailer, config.AppConfig.AdminNotifyEmail)
	worker := cron.NewNotificationWorker(notificationService)
	worker.Start()

	healthCron, err := cron.StartHealthMonitor()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to schedule health checks: %v", err)
	}

	// services.
	catalogService := pricing.NewCatalogService(repos.Pricing, pricing.NewRedisCatalogCache(utils.GetCacheClient()))
	bookingService := booking.NewBookingService(
		repos.Bookings,
		repos.Settings,
		tasks.NewBookingQueue(queueClient),
		config.Location(),
		config.HorizonDays(),
	)
	settingsService := booking.NewSettingsService(repos.Settings, config.Location().String())
	adminService := admin.NewAdminService(
		repos.Admins,
		admin.NewRedisSessionStore(utils.GetAuthCacheClient()),
		config.JWTTTL(),
	)
	tracker := analytics.NewCalculatorTracker(analytics.NewRedisCounter(utils.GetCacheClient()))

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:                   adminService,
		AdminHandler:           handlers.NewAdminHandler(adminService),
		PricingHandler:         handlers.NewPricingHandler(catalogService, tracker),
		BookingHandler:         handlers.NewBookingHandler(bookingService),
		BookingSettingsHandler: handlers.NewBookingSettingsHandler(settingsService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
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
	<-healthCron.Stop().Done()
	worker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect failed: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
