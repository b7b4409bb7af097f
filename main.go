package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yalasafari/config"
	"yalasafari/database"
	adminRepoPkg "yalasafari/database/repository/admin"
	blogsRepoPkg "yalasafari/database/repository/blogs"
	bookingRepoPkg "yalasafari/database/repository/booking"
	contactsRepoPkg "yalasafari/database/repository/contacts"
	galleryRepoPkg "yalasafari/database/repository/gallery"
	pricingRepoPkg "yalasafari/database/repository/pricing"
	reviewsRepoPkg "yalasafari/database/repository/reviews"
	roomsRepoPkg "yalasafari/database/repository/rooms"
	statsRepoPkg "yalasafari/database/repository/stats"
	taxisRepoPkg "yalasafari/database/repository/taxis"
	"yalasafari/handlers"
	"yalasafari/routes"
	adminSvc "yalasafari/services/admin"
	"yalasafari/services/booking"
	"yalasafari/services/dashboard"
	"yalasafari/services/notification"
	"yalasafari/services/pricing"
	"yalasafari/services/rooms"
	"yalasafari/services/storage"
	"yalasafari/services/taxis"
	"yalasafari/utils"
	"yalasafari/workers"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	pricingRepo := pricingRepoPkg.NewMongoPricingRepo()
	roomRepo := roomsRepoPkg.NewMongoRoomRepo()
	roomBookingRepo := roomsRepoPkg.NewMongoRoomBookingRepo()
	taxiRepo := taxisRepoPkg.NewMongoTaxiRepo()
	taxiBookingRepo := taxisRepoPkg.NewMongoTaxiBookingRepo()
	reviewRepo := reviewsRepoPkg.NewMongoReviewRepo()
	galleryRepo := galleryRepoPkg.NewMongoGalleryRepo()
	blogRepo := blogsRepoPkg.NewMongoBlogRepo()
	contactRepo := contactsRepoPkg.NewMongoContactRepo()
	statsRepo := statsRepoPkg.NewMongoStatsRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// Notification queue. Mail delivery runs in a background asynq
	// worker; handlers only enqueue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueue,
	})
	defer asynqClient.Close()
	notifier := notification.NewQueueNotifier(asynqClient)

	if mailer, err := notification.NewMailer(); err != nil {
		logger.Sugar().Warnf("main: mail delivery disabled: %v", err)
	} else {
		workers.InitMailWorker(mailer)
	}

	// Services.
	pricingService := pricing.NewPricingService(pricingRepo)
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Packages: pricingService,
		Notifier: notifier,
	}
	roomService := rooms.NewRoomService(roomRepo, roomBookingRepo, notifier)
	taxiService := taxis.NewTaxiService(taxiRepo, taxiBookingRepo, notifier)
	adminService := adminSvc.NewAdminService(adminRepo)
	dashboardService := dashboard.NewDashboardService(bookingRepo, statsRepo)

	// Seed the default pricing package and bootstrap admin account.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := pricingService.EnsureDefault(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed default package: %v", err)
	}
	if err := adminService.EnsureDefault(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed admin account: %v", err)
	}
	cancelSeed()

	var storageService storage.StorageService
	if svc, err := storage.NewCloudinaryStorage(); err != nil {
		logger.Sugar().Warnf("main: image uploads disabled: %v", err)
	} else {
		storageService = svc
	}

	// Router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService),
		Package:   handlers.NewPackageHandler(pricingService),
		Room:      handlers.NewRoomHandler(roomService),
		Taxi:      handlers.NewTaxiHandler(taxiService),
		Review:    handlers.NewReviewHandler(reviewRepo),
		Gallery:   handlers.NewGalleryHandler(galleryRepo, storageService),
		Blog:      handlers.NewBlogHandler(blogRepo),
		Contact:   handlers.NewContactHandler(contactRepo, notifier),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Admin:     handlers.NewAdminHandler(adminService),
	}
	routes.RegisterRoutes(router, handlerBundle)

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
