package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kfaist/baroque-print-api/config"
	"github.com/kfaist/baroque-print-api/controllers"
	"github.com/kfaist/baroque-print-api/logger"
	"github.com/kfaist/baroque-print-api/middleware"
	"github.com/kfaist/baroque-print-api/providers"
	"github.com/kfaist/baroque-print-api/repository"
	"github.com/kfaist/baroque-print-api/routes"
	"github.com/kfaist/baroque-print-api/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[PrintAPI] Failed to load config: ", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("[PrintAPI] Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	catalog := repository.NewStaticCatalog()
	prodigi := providers.NewProdigiProvider(cfg.ProdigiAPIKey, cfg.ProdigiBaseURL)
	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.ProductImageURL)

	var stager services.ImageStager
	switch cfg.ImageStaging {
	case config.StagingLocal:
		var store repository.ImageStore
		if cfg.RedisURL != "" {
			client, err := repository.NewRedisClient(cfg.RedisURL)
			if err != nil {
				log.Fatal("[PrintAPI] Failed to connect to Redis: ", err)
			}
			store = repository.NewRedisImageStore(client, cfg.ImageTTL)
			zlog.Info("Using Redis image store", zap.Duration("ttl", cfg.ImageTTL))
		} else {
			store = repository.NewMemoryImageStore(cfg.ImageTTL)
			zlog.Info("Using in-memory image store", zap.Duration("ttl", cfg.ImageTTL))
		}
		stager = services.NewLocalStager(store)
	default:
		stager = services.NewProdigiStager(prodigi)
		zlog.Info("Using Prodigi pre-upload image staging")
	}

	checkoutSvc := services.NewCheckoutService(catalog, stager, stripeSvc, zlog)
	fulfillmentSvc := services.NewFulfillmentService(catalog, stager, prodigi, zlog)

	creds := controllers.CredentialStatus{
		Stripe:  cfg.StripeSecretKey != "",
		Webhook: cfg.StripeWebhookSecret != "",
		Prodigi: cfg.ProdigiAPIKey != "",
	}
	cc := controllers.NewCheckoutController(checkoutSvc, catalog, creds)
	wc := controllers.NewWebhookController(stripeSvc, fulfillmentSvc, zlog)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	routes.RegisterRoutes(r, cc, wc)

	zlog.Info("Print API running",
		zap.String("port", cfg.Port),
		zap.String("image_staging", cfg.ImageStaging),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[PrintAPI] Server failed: ", err)
	}
}
