package router

import (
	"fmt"
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/cache"
	"github.com/tikprofil/tikprofil-api/internal/config"
	adminhandlers "github.com/tikprofil/tikprofil-api/internal/http/handlers/admin"
	publichandlers "github.com/tikprofil/tikprofil-api/internal/http/handlers/public"
	"github.com/tikprofil/tikprofil-api/internal/logger"
	"github.com/tikprofil/tikprofil-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middlewares and routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "tp"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.CheckoutRateLimit.BlockSeconds,
		MessageKey:    "error.checkout_too_many",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// Storefront, no authentication.
		apiV1.GET("/businesses/:slug", publicHandler.GetBusiness)
		apiV1.GET("/businesses/:slug/menu", publicHandler.GetMenu)
		apiV1.POST("/businesses/:slug/coupons/validate", publicHandler.ValidateCoupon)
		apiV1.POST("/businesses/:slug/checkout",
			RateLimitMiddleware(redisClient, checkoutRule, KeyByIP),
			publicHandler.Checkout)
		apiV1.GET("/orders/:order_no", publicHandler.TrackOrder)
		apiV1.POST("/orders/:order_no/cancel", publicHandler.CancelOrder)

		admin := apiV1.Group("/admin")
		{
			admin.GET("/captcha", adminHandler.GetCaptcha)
			admin.POST("/login",
				RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")),
				adminHandler.Login)

			authorized := admin.Use(
				StaffJWTAuthMiddleware(c.AuthService),
				StaffRBACMiddleware(c.AuthzService),
			)
			{
				// Order desk
				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

				// Coupons
				authorized.GET("/coupons", adminHandler.ListCoupons)
				authorized.POST("/coupons", adminHandler.CreateCoupon)
				authorized.GET("/coupons/:id", adminHandler.GetCoupon)
				authorized.PUT("/coupons/:id", adminHandler.UpdateCoupon)
				authorized.DELETE("/coupons/:id", adminHandler.DeleteCoupon)
				authorized.GET("/coupons/:id/usages", adminHandler.ListCouponUsages)

				// Catalog
				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)
				authorized.GET("/products", adminHandler.ListProducts)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				// Dining tables
				authorized.GET("/tables", adminHandler.ListTables)
				authorized.POST("/tables", adminHandler.CreateTable)
				authorized.PUT("/tables/:id", adminHandler.UpdateTable)
				authorized.DELETE("/tables/:id", adminHandler.DeleteTable)

				// Business settings and profile
				authorized.GET("/settings", adminHandler.GetSettings)
				authorized.PUT("/settings", adminHandler.UpdateSettings)
				authorized.GET("/profile", adminHandler.GetProfile)
				authorized.PUT("/profile", adminHandler.UpdateProfile)
				authorized.PUT("/password", adminHandler.UpdatePassword)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
