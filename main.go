// File: medisched/main.go
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medisched/config"
	"medisched/cron"
	"medisched/handlers"
	"medisched/middleware"
	"medisched/models"
	"medisched/routes"
	"medisched/services/reminder"
	"medisched/services/schedule"
	"medisched/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Schedule stores. The reference "today" is fixed here, at startup.
	now := time.Now()
	officeCfg := models.OfficeConfig{
		StartHour:   config.AppConfig.OfficeStartHour,
		EndHour:     config.AppConfig.OfficeEndHour,
		SlotMinutes: config.AppConfig.SlotMinutes,
		DaysAhead:   config.AppConfig.ScheduleDaysAhead,
		Bookable:    true,
	}
	officeStore := schedule.NewScheduleStore(officeCfg, now)

	rng := rand.New(rand.NewSource(now.UnixNano()))
	specialistStores := make(map[string]schedule.ScheduleStore, len(config.AppConfig.Specialists))
	for _, name := range config.AppConfig.Specialists {
		specialistStores[name] = schedule.NewGeneratedScheduleStore(
			officeCfg, now, config.AppConfig.SpecialistSlotsPerDay, rng, logger)
	}

	// Reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	reminderService := reminder.NewReminderService(
		asynqClient,
		time.Duration(config.AppConfig.ReminderLeadMinutes)*time.Minute,
		logger,
	)
	cron.InitReminderWorker(logger)

	// Handlers.
	scheduleHandler := handlers.NewScheduleHandler(officeStore, reminderService, logger)
	specialistHandler := handlers.NewSpecialistHandler(
		specialistStores, utils.GetCacheClient(), 10*time.Minute, logger)

	handlerBundle := &handlers.HandlerBundle{
		ListAvailabilityHandler: scheduleHandler.ListAvailabilityHandler,
		BookAppointmentHandler:  scheduleHandler.BookAppointmentHandler,

		ListSpecialistsHandler:        specialistHandler.ListSpecialistsHandler,
		CheckAvailabilityRangeHandler: specialistHandler.CheckAvailabilityRangeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
