package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-storefront-ws/internal/bus"
	"go-storefront-ws/internal/handler"
	"go-storefront-ws/internal/middleware"
	"go-storefront-ws/internal/repository"
	"go-storefront-ws/internal/service"
	"go-storefront-ws/internal/store"
	"go-storefront-ws/internal/ws"
	"go-storefront-ws/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Pick the storage backend. Decided once here; never swapped
	// mid-session.
	backend := selectBackend()

	// 3. Change bus + WebSocket Hub
	changes := bus.New()
	wsHub := ws.NewHub()
	go wsHub.Run()
	changes.Subscribe(wsHub.AnnounceChange)

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(backend)
	trxRepo := repository.NewTransactionRepo(backend)
	settingsRepo := repository.NewSettingsRepo(backend)
	reviewRepo := repository.NewReviewRepo(backend)

	catalogService := service.NewCatalogService(productRepo, changes)
	paymentService := service.NewPaymentService(trxRepo, productRepo, changes)
	reviewService := service.NewReviewService(reviewRepo, productRepo, changes)
	settingsService := service.NewSettingsService(settingsRepo, changes)
	dashService := service.NewDashboardService(trxRepo, productRepo)
	authService := service.NewAuthService()

	catalogHandler := handler.NewCatalogHandler(catalogService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Storefront API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)

	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Get("/products/:id/reviews", reviewHandler.GetProductReviews)
	api.Post("/reviews", reviewHandler.AddReview)

	api.Get("/settings", settingsHandler.GetSettings)

	api.Post("/checkout", paymentHandler.Checkout)
	api.Get("/transactions/:id", paymentHandler.GetTransaction)
	api.Post("/transactions/:id/proof", paymentHandler.UploadProof)
	api.Get("/download/:token", paymentHandler.VerifyDownload)

	// ============ ADMIN ROUTES ============
	admin := api.Group("/admin", middleware.RequireAdmin())

	admin.Get("/stats", dashHandler.GetDashboardStats)

	admin.Post("/products", catalogHandler.CreateProduct)
	admin.Put("/products/:id", catalogHandler.UpdateProduct)
	admin.Delete("/products/:id", catalogHandler.DeleteProduct)

	admin.Get("/transactions", paymentHandler.GetTransactions)
	admin.Put("/transactions/:id/status", paymentHandler.UpdateStatus)
	admin.Put("/transactions/:id/resi", paymentHandler.UpdateResi)

	admin.Put("/settings", settingsHandler.SaveSettings)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// selectBackend builds the configured store.Backend. Misconfiguration
// is fatal: a storefront that cannot reach its configured store must
// not start against a different one.
func selectBackend() store.Backend {
	switch os.Getenv("STORAGE_BACKEND") {
	case "", "local":
		local, err := store.NewLocalStore(database.ConnectLocal())
		if err != nil {
			log.Fatal("Failed to prepare local store. \n", err)
		}
		return local
	case "firestore":
		return store.NewFirestoreStore(database.ConnectFirestore(context.Background()))
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (want local or firestore)", os.Getenv("STORAGE_BACKEND"))
		return nil
	}
}
