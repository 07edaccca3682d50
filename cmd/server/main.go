package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/craftkart/backend/internal/application/cart"
	catalogapp "github.com/craftkart/backend/internal/application/catalog"
	contentapp "github.com/craftkart/backend/internal/application/content"
	identityapp "github.com/craftkart/backend/internal/application/identity"
	inquiryapp "github.com/craftkart/backend/internal/application/inquiry"
	notificationapp "github.com/craftkart/backend/internal/application/notification"
	orderapp "github.com/craftkart/backend/internal/application/order"
	"github.com/craftkart/backend/internal/infrastructure/async"
	"github.com/craftkart/backend/internal/infrastructure/auth"
	"github.com/craftkart/backend/internal/infrastructure/cache"
	"github.com/craftkart/backend/internal/infrastructure/config"
	"github.com/craftkart/backend/internal/infrastructure/event"
	"github.com/craftkart/backend/internal/infrastructure/logger"
	"github.com/craftkart/backend/internal/infrastructure/persistence"
	"github.com/craftkart/backend/internal/interfaces/http/handler"
	"github.com/craftkart/backend/internal/interfaces/http/middleware"
	"github.com/craftkart/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting craftkart backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Redis backs the product cache and the token blacklist. When it is
	// not configured both fall back to in-process implementations.
	var redisClient *redis.Client
	var productCache cache.ProductCache
	var tokenBlacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unreachable, using in-memory cache and blacklist", zap.Error(err))
			redisClient = nil
		}
	}
	if redisClient != nil {
		productCache = cache.NewRedisProductCache(redisClient)
		tokenBlacklist = auth.NewRedisTokenBlacklist(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		productCache = cache.NewInMemoryProductCache()
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	returnRepo := persistence.NewGormReturnRepository(db.DB)
	inquiryRepo := persistence.NewGormInquiryRepository(db.DB)
	blogRepo := persistence.NewGormBlogRepository(db.DB)
	teamRepo := persistence.NewGormTeamRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	heroRepo := persistence.NewGormHeroRepository(db.DB)

	// The catalog sits behind a read-through cache; every other
	// aggregate goes straight to the database.
	productRepo := cache.NewCachedProductRepository(
		persistence.NewGormProductRepository(db.DB),
		productCache,
		cfg.Redis.CacheTTL,
		log,
	)

	// Async write pool for fire-and-forget cart mutations
	writer := async.NewWriter(log, cfg.Writer.Workers, cfg.Writer.QueueDepth,
		async.WithTimeout(cfg.Writer.Timeout))

	// Application services
	jwtService := auth.NewJWTService(&cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, cartRepo)
	addressService := identityapp.NewAddressService(addressRepo)
	productService := catalogapp.NewProductService(productRepo)
	cartService := cartapp.NewService(cartRepo, productRepo, writer)
	orderService := orderapp.NewOrderService(orderRepo)
	checkoutService := orderapp.NewCheckoutService(orderRepo, cartRepo, productRepo, addressRepo,
		checkoutConfig(cfg.Checkout, log))
	returnService := orderapp.NewReturnService(returnRepo, orderRepo, cfg.Returns.EligibilityWindow)
	requestService := inquiryapp.NewRequestService(inquiryRepo)
	contentService := contentapp.NewService(blogRepo, teamRepo, storeRepo, heroRepo)

	// Event bus and the notification fan-out
	eventBus := event.NewInMemoryEventBus(log)
	notificationService := notificationapp.NewService(log)
	eventBus.Subscribe(notificationService, notificationService.EventTypes()...)

	authService.SetEventPublisher(eventBus)
	productService.SetEventPublisher(eventBus)
	orderService.SetEventPublisher(eventBus)
	checkoutService.SetEventPublisher(eventBus)
	returnService.SetEventPublisher(eventBus)
	requestService.SetEventPublisher(eventBus)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(logger.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins, cfg.HTTP.CORSAllowMethods, cfg.HTTP.CORSAllowHeaders))
	engine.Use(middleware.BodyLimit(1 << 20))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = tokenBlacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuth(jwtConfig))

	// Liveness outside the versioned API for load balancers
	systemHandler := handler.NewSystemHandler(db, redisClient)
	engine.GET("/health", systemHandler.Health)

	router.NewRouter(engine).
		Register(systemHandler).
		Register(handler.NewAuthHandler(authService, jwtService, tokenBlacklist)).
		Register(handler.NewAddressHandler(addressService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewOrderHandler(checkoutService, orderService)).
		Register(handler.NewReturnHandler(returnService)).
		Register(handler.NewOrderRequestHandler(requestService)).
		Register(handler.NewContentHandler(contentService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Drain queued cart writes before stopping the event bus so their
	// events still find a running bus.
	if err := writer.Shutdown(ctx); err != nil {
		log.Error("Error draining write pool", zap.Error(err))
	}
	if err := eventBus.Stop(ctx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// checkoutConfig parses the configured pricing knobs, falling back to
// the defaults on malformed values rather than refusing to boot.
func checkoutConfig(cfg config.CheckoutConfig, log *zap.Logger) orderapp.CheckoutConfig {
	parsed := orderapp.DefaultCheckoutConfig()

	if cfg.ShippingFee != "" {
		if fee, err := decimal.NewFromString(cfg.ShippingFee); err == nil {
			parsed.ShippingFee = fee
		} else {
			log.Warn("Invalid checkout.shipping_fee, using default", zap.String("value", cfg.ShippingFee))
		}
	}
	if cfg.TaxRate != "" {
		if rate, err := decimal.NewFromString(cfg.TaxRate); err == nil {
			parsed.TaxRate = rate
		} else {
			log.Warn("Invalid checkout.tax_rate, using default", zap.String("value", cfg.TaxRate))
		}
	}
	if cfg.AdvancePercent != "" {
		if pct, err := decimal.NewFromString(cfg.AdvancePercent); err == nil {
			parsed.AdvancePercent = pct
		} else {
			log.Warn("Invalid checkout.advance_percent, using default", zap.String("value", cfg.AdvancePercent))
		}
	}
	return parsed
}
