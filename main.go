package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"github.com/HimeshRasaily/FlowArt/internal/auth"
	"github.com/HimeshRasaily/FlowArt/internal/handlers"
	"github.com/HimeshRasaily/FlowArt/internal/models"
	"github.com/HimeshRasaily/FlowArt/internal/repositories"
	"github.com/HimeshRasaily/FlowArt/internal/services"
	"github.com/HimeshRasaily/FlowArt/pkg/rabbitmq"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "flowart.db")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SEED_DEMO_DATA", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	// Postgres when DATABASE_URL is set, local SQLite otherwise.
	var dialector gorm.Dialector
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(viper.GetString("SQLITE_PATH"))
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		// Consume registration events. The handler is a stub; a real
		// deployment would hook welcome mail or search indexing here.
		go func() {
			log.Println("Starting RabbitMQ consumer for user events...")
			consumerErr := mqClient.ConsumeUserEvents(func(msg amqp.Delivery) error {
				log.Printf("Received user event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			})
			if consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Repositories and Services ---
	userRepo := repositories.NewGORMUserRepository(db)

	tokenTTL := time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour
	tokenService := auth.NewTokenService(viper.GetString("JWT_SECRET"), tokenTTL)

	authService := services.NewAuthService(userRepo, tokenService, mqClient)
	directoryService := services.NewDirectoryService(userRepo)

	if viper.GetBool("SEED_DEMO_DATA") {
		seedUsers(userRepo)
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(directoryService, authService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	userHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// seedUsers populates the repository with the demo artist profiles. Profiles
// whose email already exists are left alone, so seeding is idempotent.
func seedUsers(repo repositories.UserRepository) {
	demoPassword, err := auth.HashPassword("demo123")
	if err != nil {
		log.Printf("Error hashing demo password: %v", err)
		return
	}

	users := []models.User{
		{
			Name:       "Elena Rodriguez",
			Username:   "elena_creates",
			Email:      "elena@flowart.demo",
			Bio:        "Digital artist exploring the intersection of nature and technology. Creating immersive experiences through generative art.",
			Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1557672172-298e090bd0f1?w=1200&h=400&fit=crop",
			Location:   "Barcelona, Spain", Medium: "Digital", Experience: "Professional",
			Social:   models.SocialLinks{Instagram: "@elena_creates", Twitter: "@elena_art", Website: "elenarodriguez.art"},
			Verified: true, Followers: 12400,
		},
		{
			Name:       "Marcus Chen",
			Username:   "marcus_sculptor",
			Email:      "marcus@flowart.demo",
			Bio:        "Contemporary sculptor working with sustainable materials. Pushing boundaries of form and space.",
			Avatar:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1578301978693-85fa9c0320b9?w=1200&h=400&fit=crop",
			Location:   "Berlin, Germany", Medium: "Sculpture", Experience: "Professional",
			Social:   models.SocialLinks{Instagram: "@marcussculpts", Website: "marcuschen.studio"},
			Verified: true, Followers: 8900,
		},
		{
			Name:       "Aisha Patel",
			Username:   "aisha_canvas",
			Email:      "aisha@flowart.demo",
			Bio:        "Abstract expressionist painter. Colors are my language, canvas is my voice.",
			Avatar:     "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1547826039-bfc35e0f1ea8?w=1200&h=400&fit=crop",
			Location:   "Mumbai, India", Medium: "Canvas", Experience: "Emerging",
			Followers: 3200,
		},
	}

	ctx := context.Background()
	for i := range users {
		existing, err := repo.FindByEmail(ctx, users[i].Email)
		if err != nil {
			log.Printf("Error checking seed user %s: %v", users[i].Email, err)
			continue
		}
		if existing != nil {
			continue
		}

		users[i].Password = demoPassword
		if err := repo.Insert(ctx, &users[i]); err != nil {
			log.Printf("Error seeding user %s: %v", users[i].Email, err)
		} else {
			log.Printf("Seeded user: %s (ID: %s)", users[i].Username, users[i].ID)
		}
	}
}
