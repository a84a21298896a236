package main

import (
	"log"
	"os"
	"time"

	"github.com/arzan03/BistroAPI/internal/db"
	"github.com/arzan03/BistroAPI/internal/handlers"
	"github.com/arzan03/BistroAPI/internal/middleware"
	"github.com/arzan03/BistroAPI/internal/services"
	"github.com/arzan03/BistroAPI/internal/storage"
	"github.com/arzan03/BistroAPI/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	// Initialize Fiber
	app := fiber.New()
	// Initialize MinIO
	storage.InitMinio()
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Get MongoDB URI from environment
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017/bistro" // Default fallback
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "bistroDB"
	}

	// Connect to MongoDB and build the collection store
	database := db.ConnectMongoDB(mongoURI, dbName)
	st := store.NewMongoStore(database)

	// Wire services
	tokens := services.NewTokenService(os.Getenv("ACCESS_TOKEN_SECRET"), time.Hour)
	gateway := services.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))

	handlers.InitAuthHandler(tokens)
	handlers.InitUserHandler(services.NewUserService(st.Users))
	handlers.InitMenuHandler(services.NewMenuService(st.Menu))
	handlers.InitCartHandler(services.NewCartService(st.Cart))
	handlers.InitPaymentHandler(services.NewPaymentService(st.Payments, st.Cart, gateway))
	handlers.InitAdminHandler(services.NewStatsService(st))

	auth := middleware.Auth(tokens)

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running")
	})

	// Token issuance
	app.Post("/jwt", handlers.CreateTokenHandler)

	// User routes
	app.Get("/users", handlers.ListUsersHandler)
	app.Post("/users", handlers.CreateUserHandler)
	app.Get("/users/admin/:email", auth, handlers.CheckAdminHandler)
	app.Patch("/users/admin/:id", auth, middleware.RequireAdmin, handlers.PromoteAdminHandler)

	// Menu routes
	app.Get("/menu", handlers.ListMenuHandler)
	app.Post("/menu", auth, handlers.AddMenuItemHandler)
	app.Post("/menu/image", auth, middleware.RequireAdmin, handlers.UploadMenuImageHandler)
	app.Delete("/menu/:id", auth, handlers.DeleteMenuItemHandler)

	// Cart routes
	app.Post("/cart", handlers.AddCartItemHandler)
	app.Delete("/cart/:id", handlers.DeleteCartItemHandler)
	app.Get("/cart/:email", auth, handlers.ListCartHandler)

	// Payment routes
	app.Post("/create-payment-intent", auth, handlers.CreatePaymentIntentHandler)
	app.Post("/payments", handlers.CheckoutHandler)

	// Admin dashboard
	app.Get("/admin-stats", auth, middleware.RequireAdmin, handlers.AdminStatsHandler)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000" // Default port
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
