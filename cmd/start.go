/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf-insight-be/config"
	"github.com/tieubaoca/pdf-insight-be/database"
	"github.com/tieubaoca/pdf-insight-be/handler"
	"github.com/tieubaoca/pdf-insight-be/repository"
	"github.com/tieubaoca/pdf-insight-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the PDF insight server",
	Long:  `Starts the HTTP server that handles PDF uploads, retrieval, summarization and queries`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()

		mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		collection := mongoClient.Database(cfg.MongoDatabase).Collection("pdfdata")

		// Initialize services
		documentRepo := repository.NewDocumentRepo(collection)
		extractService := service.NewPDFExtractor()
		aiService, err := newAIService(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}
		documentService, err := service.NewDocumentService(documentRepo, extractService, aiService, cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize document service: %v", err)
		}

		// Initialize handlers
		uploadHandler := handler.NewUploadHandler(documentService)
		documentHandler := handler.NewDocumentHandler(documentService)
		insightHandler := handler.NewInsightHandler(documentService)

		// Setup Gin router
		router := gin.Default()

		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.AllowOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}))

		router.POST("/upload", uploadHandler.HandleUpload)
		router.GET("/documents", documentHandler.HandlePaginateDocuments)
		router.GET("/documents/:doc_id", documentHandler.HandleGetDocument)
		router.POST("/summarize/:doc_id", insightHandler.HandleSummarize)
		router.POST("/Query/:doc_id/:question", insightHandler.HandleQuery)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// newAIService selects the completion backend once at startup. Without a
// credential for the configured provider the server answers from canned
// responses instead of calling out.
func newAIService(ctx context.Context, cfg *config.Config) (service.AIService, error) {
	if cfg.MockMode() {
		log.Println("No model API key configured, using mock responses")
		return service.NewMockAIService(), nil
	}
	switch cfg.AIProvider {
	case config.ProviderGemini:
		return service.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.Model)
	default:
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
