package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/listing-evaluator/backend/evaluator"
	"github.com/listing-evaluator/backend/generator"
	"github.com/listing-evaluator/backend/llm"
	"github.com/listing-evaluator/backend/logging"
	"github.com/listing-evaluator/backend/middleware"
	"github.com/listing-evaluator/backend/stats"
)

func setupGinMode() {
	// Set Gin mode based on environment variable
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		// Default to release mode if not specified
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func newServeCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the evaluation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory for persisted usage counters")

	return cmd
}

func runServer(dataDir string) error {
	setupGinMode()

	// Initialize services
	engine, err := evaluator.New(evaluator.DefaultConfig())
	if err != nil {
		return err
	}

	storage, err := stats.NewStorage(dataDir)
	if err != nil {
		return err
	}

	cached := evaluator.NewCached(engine, storage)
	rateLimiter := middleware.NewRateLimiter(2, 5) // 2 requests per second, bucket size of 5

	// Initialize statistics
	usage := logging.Initialize()

	// Initialize Gin router
	r := gin.Default()

	// Add middlewares
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestID())
	r.Use(rateLimiter.RateLimit())
	r.Use(middleware.Stats(usage))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// API routes
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			log.Printf("Health check request received from: %s\n", c.ClientIP())
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// Content evaluation endpoint
		api.POST("/evaluate", evaluateContent(cached))

		// Content generation endpoint
		api.POST("/generate", generateContent(cached, storage))

		// Statistics endpoint
		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, usage.GetStatistics())
		})
	}

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8082" // Default port
	}

	log.Printf("Server starting on http://localhost:%s\n", port)
	return r.Run(":" + port)
}

func evaluateContent(cached *evaluator.Cached) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("Evaluate request received from: %s\n", c.ClientIP())
		var request struct {
			Content  string `json:"content" binding:"required"`
			Language string `json:"language"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body",
			})
			return
		}

		language := evaluator.Language(request.Language)
		if language == "" {
			language = evaluator.LanguageEnglish
		}

		report := cached.Evaluate(request.Content, language)

		// Expose outcome to the stats middleware
		c.Set("evaluationLanguage", string(language))
		c.Set("evaluationScore", report.OverallScore)

		c.JSON(http.StatusOK, report)
	}
}

func generateContent(cached *evaluator.Cached, storage *stats.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("Generate request received from: %s\n", c.ClientIP())

		client, err := llm.NewOpenRouterClient("")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Generation backend is not configured: " + err.Error(),
			})
			return
		}

		gen, err := generator.New(client)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to initialize generator: " + err.Error(),
			})
			return
		}

		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body",
			})
			return
		}

		listing, err := gen.ParseListing(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}

		document, err := gen.Generate(c.Request.Context(), listing)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to generate content: " + err.Error(),
			})
			return
		}

		storage.IncrementStats(0, 0, 0, 1)

		report := cached.Evaluate(document, evaluator.Language(listing.Language))

		c.JSON(http.StatusOK, gin.H{
			"document": document,
			"report":   report,
		})
	}
}
