package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"letsheal/config"
	"letsheal/cron"
	"letsheal/database"
	sessionRepo "letsheal/database/repository/session"
	"letsheal/handlers"
	"letsheal/routes"
	"letsheal/services/blog"
	"letsheal/services/booking"
	"letsheal/services/remote"
	"letsheal/services/tasks"
	"letsheal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const bookingGuardTTL = 2 * time.Minute

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Session store and submission guard.
	var (
		store        sessionRepo.Store
		guard        booking.Guard
		redisClients []*redis.Client
		mongoClient  *mongo.Client
	)
	switch cfg.SessionBackend {
	case "mongo":
		db, err := database.InitDB(ctx)
		if err != nil {
			logger.Fatal("main: mongo session store unavailable", zap.Error(err))
		}
		mongoStore := sessionRepo.NewMongoStore(db.Collection(database.SessionsCollection), cfg.SessionTTL())
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			logger.Warn("main: could not ensure session indexes", zap.Error(err))
		}
		store = mongoStore
		mongoClient = database.MongoClient
		guard = booking.NewRedisGuard(utils.GetLockCacheClient(), bookingGuardTTL)
		redisClients = []*redis.Client{utils.GetLockCacheClient()}
	case "memory":
		logger.Warn("main: using in-memory sessions; they are lost on restart")
		store = sessionRepo.NewMemoryStore(cfg.SessionTTL())
		guard = booking.NewLocalGuard()
	default:
		store = sessionRepo.NewRedisStore(utils.GetSessionCacheClient(), cfg.SessionTTL())
		guard = booking.NewRedisGuard(utils.GetLockCacheClient(), bookingGuardTTL)
		redisClients = []*redis.Client{utils.GetSessionCacheClient(), utils.GetLockCacheClient()}
	}
	utils.StartHealthMonitor(ctx, redisClients, mongoClient)

	issuer, err := utils.NewSessionHandleIssuer(cfg.SessionSecret, cfg.SessionTTL())
	if err != nil {
		logger.Fatal("main: SESSION_SECRET must be set", zap.Error(err))
	}

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Fatal("main: failed to initialize cloudinary", zap.Error(err))
	}
	profileImages := utils.NewImageResolver(cfg.APIBaseURL, utils.DefaultProfileImage, cld)
	blogImages := utils.NewImageResolver(cfg.APIBaseURL, "", cld)

	// Remote API and services.
	api := remote.NewClient(cfg.APIBaseURL, cfg.RequestTimeout(), logger.Named("remote"))
	submitter := booking.NewSubmitter(api, logger.Named("booking"))
	blogService := blog.NewService(api, blogImages)

	// Booking verification queue.
	queue := asynq.NewClient(cron.QueueRedisOpt())
	defer queue.Close()
	verifyDelay := time.Duration(cfg.QuirkVerifyDelaySeconds) * time.Second
	scheduler := tasks.NewVerificationScheduler(queue, verifyDelay)
	worker := cron.InitVerificationWorker(ctx, tasks.NewVerifier(store, api, logger.Named("verify")))

	cookie := handlers.CookieConfig{Name: cfg.SessionCookie, Secure: config.IsProduction()}
	handlerBundle := &handlers.HandlerBundle{
		Sessions:          store,
		Handles:           issuer,
		Cookie:            cookie,
		Auth:              handlers.NewAuthHandler(api, store, issuer, profileImages, cookie),
		Booking:           handlers.NewBookingHandler(api, submitter, guard, scheduler, store),
		Appointments:      handlers.NewAppointmentHandler(api, store),
		Admin:             handlers.NewAdminHandler(api, profileImages, store),
		Blog:              handlers.NewBlogHandler(blogService, store),
		Therapists:        handlers.NewTherapistHandler(api, profileImages, store),
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	// Start the HTTP server.
	port := cfg.AppPort
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect failed: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
	_ = logger.Sync()
}
