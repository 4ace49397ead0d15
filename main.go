package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"haulsaver-app/config"
	"haulsaver-app/database"
	adminapi "haulsaver-app/internal/api/admin"
	loadsapi "haulsaver-app/internal/api/loads"
	registrationapi "haulsaver-app/internal/api/registration"
	stripewebhooks "haulsaver-app/internal/api/stripewebhook"
	routes "haulsaver-app/internal/app/http"
	"haulsaver-app/internal/infra/cloudinary"
	stripeinfra "haulsaver-app/internal/infra/stripe"
	"haulsaver-app/internal/profile"
	"haulsaver-app/internal/registration"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("❌ Failed to initialize logger:", err)
	}
	defer logger.Sync()

	fees, err := registration.NewFees(
		registration.Fee{
			Amount:      config.REGISTRATION_FEE_AMOUNT,
			Currency:    config.REGISTRATION_FEE_CURRENCY,
			Description: "HaulSaver registration fee",
		},
		registration.Fee{
			Amount:      config.PROFILE_UNLOCK_AMOUNT,
			Currency:    config.PROFILE_UNLOCK_CURRENCY,
			Description: "HaulSaver profile unlock",
		},
	)
	if err != nil {
		log.Fatal("❌ Invalid fee configuration:", err)
	}

	processor := stripeinfra.NewProcessor(config.STRIPE_SECRET_KEY)
	store := profile.NewStore(database.DB)

	service := &registration.Service{
		Profiles:  store,
		Payments:  store,
		Processor: processor,
		Logger:    logger,
	}

	handlers := &routes.Handlers{
		Registration: &registrationapi.Handler{
			Issuer: &registration.Issuer{
				Fees:      fees,
				Processor: processor,
				Env:       config.APP_ENV,
				Logger:    logger,
			},
			Service: service,
			Logger:  logger,
		},
		Webhook: &stripewebhooks.Handler{
			SigningSecret: config.STRIPE_WEBHOOK_SECRET,
			Events:        store,
			Service:       service,
			Logger:        logger,
		},
		Uploads: &loadsapi.UploadHandler{},
		Admin:   &adminapi.Handler{Service: service},
	}

	if cloud, err := cloudinary.NewClient(
		config.CLOUDINARY_CLOUD_NAME,
		config.CLOUDINARY_API_KEY,
		config.CLOUDINARY_API_SECRET,
	); err == nil {
		handlers.Uploads.Cloud = cloud
	} else {
		log.Println("Cloudinary not configured, load photo uploads disabled:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, handlers)

	r.Run(":" + config.PORT)
}
