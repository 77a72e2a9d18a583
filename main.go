package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront-backend/internal/catalog"
	"storefront-backend/internal/checkout"
	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/mailer"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/orders"
	"storefront-backend/internal/receipts"
	"storefront-backend/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureCartIndexes(db); err != nil {
		log.Printf("cart index warning: %v", err)
	}
	if err := database.EnsureFeedbackIndexes(db); err != nil {
		log.Printf("feedback index warning: %v", err)
	}

	catalogService := catalog.NewService(store.NewMongoCatalogSource(db))
	orderService := orders.NewService(store.NewMongoOrderStore(db))
	userStore := store.NewMongoUserStore(db)
	feedbackStore := store.NewMongoFeedbackStore(db)

	mail := mailer.New(
		config.AppEnv.SMTPHost,
		config.AppEnv.SMTPPort,
		config.AppEnv.SMTPUser,
		config.AppEnv.SMTPPass,
		config.AppEnv.EmailFrom,
		config.AppEnv.StoreName,
		config.AppEnv.AdminEmails,
	)

	blobStore := receipts.NewDiskStore(config.AppEnv.UploadDir, config.AppEnv.PublicBaseURL)
	workflow := checkout.NewWorkflow(orderService, blobStore, mail)

	cartDeps := handlers.CartDeps{
		Carts:     store.NewMongoCartStore(db),
		Users:     userStore,
		JWTSecret: config.AppEnv.JWTSecret,
	}

	r := gin.Default()
	r.Static("/public", "./public")
	r.StaticFS("/uploads", gin.Dir(config.AppEnv.UploadDir, false))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/products", handlers.GetProducts(catalogService))
	r.GET("/products/:id", handlers.GetProduct(catalogService))

	r.GET("/cart", handlers.GetCart(cartDeps))
	r.POST("/cart/items", handlers.AddCartItem(cartDeps))
	r.PUT("/cart/items/:productId", handlers.UpdateCartItem(cartDeps))
	r.DELETE("/cart/items/:productId", handlers.RemoveCartItem(cartDeps))
	r.DELETE("/cart", handlers.ClearCart(cartDeps))

	r.GET("/checkout/channels", handlers.GetPaymentChannels())
	r.POST("/checkout", handlers.SubmitCheckout(workflow, cartDeps))
	r.POST("/checkout/:orderId/receipt", handlers.ResumeCheckout(workflow))

	r.GET("/orders/status", handlers.GetOrderStatus(orderService))

	r.POST("/feedback", handlers.SubmitFeedback(feedbackStore))

	user := r.Group("/user")
	user.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		user.GET("/profile", handlers.GetProfile(userStore))
		user.PUT("/profile", handlers.UpdateProfile(userStore))
		user.GET("/orders", handlers.GetUserOrders(orderService))
		user.GET("/orders/:id", handlers.GetUserOrder(orderService))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret, config.AppEnv.AdminEmails))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/orders", handlers.AdminListOrders(orderService))
		admin.GET("/orders/:id", handlers.AdminGetOrder(orderService))
		admin.PUT("/orders/:id/status", handlers.AdminUpdateStatus(orderService))
		admin.POST("/orders/:id/send-invoice", handlers.AdminSendInvoice(orderService, mail))
		admin.POST("/orders/:id/send-thank-you", handlers.AdminSendThankYou(orderService, mail))
	}

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
