package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"careerpilot/career-assistant/internal/config"
	"careerpilot/career-assistant/internal/handlers"
	"careerpilot/career-assistant/internal/middleware"
	"careerpilot/career-assistant/internal/repositories"
	"careerpilot/career-assistant/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Qdrant job index
	jobIndex, err := services.NewJobIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := jobIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize services
	assistantService := services.NewAssistantService(geminiService)
	interviewService := services.NewInterviewService(assistantService)
	jobMatchService := services.NewJobMatchService(geminiService, jobIndex, jobRepo)
	pdfParser := services.NewPDFParserService()
	tokenService := middleware.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, tokenService)
	itemHandler := handlers.NewItemHandler(itemRepo)
	assistantHandler := handlers.NewAssistantHandler(assistantService, pdfParser)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	jobHandler := handlers.NewJobHandler(jobRepo, jobMatchService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Career Assistant API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.HandleRegister)
	auth.Post("/login", authHandler.HandleLogin)

	// Items (protected)
	items := api.Group("/items", middleware.RequireAuth(tokenService))
	items.Post("/", itemHandler.HandleCreate)
	items.Get("/", itemHandler.HandleList)
	items.Get("/:id", itemHandler.HandleGet)
	items.Put("/:id", itemHandler.HandleUpdate)
	items.Delete("/:id", itemHandler.HandleDelete)

	// Assistant (generation contract)
	assistant := api.Group("/assistant")
	assistant.Post("/resume", assistantHandler.HandleGenerateResume)
	assistant.Post("/resume/parse", assistantHandler.HandleParseResume)
	assistant.Post("/resume/extract", assistantHandler.HandleExtractText)
	assistant.Post("/ats", assistantHandler.HandleAnalyzeATS)
	assistant.Post("/skill-gap", assistantHandler.HandleSkillGap)

	// Interview
	interview := api.Group("/interview")
	interview.Post("/start", interviewHandler.HandleStart)
	interview.Post("/message", interviewHandler.HandleMessage)
	interview.Get("/:id", interviewHandler.HandleHistory)
	interview.Delete("/:id", interviewHandler.HandleEnd)

	// Jobs
	jobs := api.Group("/jobs")
	jobs.Get("/", jobHandler.HandleList)
	jobs.Post("/match", jobHandler.HandleMatch)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Career Assistant API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/register",
				"POST /api/v1/auth/login",
				"POST /api/v1/assistant/resume",
				"POST /api/v1/assistant/resume/parse",
				"POST /api/v1/assistant/resume/extract",
				"POST /api/v1/assistant/ats",
				"POST /api/v1/assistant/skill-gap",
				"POST /api/v1/interview/start",
				"POST /api/v1/interview/message",
				"GET /api/v1/jobs",
				"POST /api/v1/jobs/match",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
