/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf-insight-be/config"
	"github.com/tieubaoca/pdf-insight-be/database"
	"github.com/tieubaoca/pdf-insight-be/repository"
	"github.com/tieubaoca/pdf-insight-be/service"
	"github.com/tieubaoca/pdf-insight-be/types"
)

// uploadDocumentCmd ingests a single PDF from disk without going through the
// HTTP surface: same extraction and same record shape as POST /upload.
var uploadDocumentCmd = &cobra.Command{
	Use:   "upload-document",
	Short: "Extract a PDF from disk and insert it into the document store",
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		if filePath == "" {
			log.Fatal("--file is required")
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		documentService, err := newCLIDocumentService(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize services: %v", err)
		}

		view, err := ingestFile(ctx, documentService, filePath)
		if err != nil {
			log.Fatalf("Failed to upload %s: %v", filePath, err)
		}
		log.Printf("Uploaded %s as document %s", view.PdfName, view.DocID)
	},
}

// newCLIDocumentService wires the same singletons the server uses, minus the
// AI backend: CLI ingestion never generates, so the mock variant suffices.
func newCLIDocumentService(ctx context.Context, cfg *config.Config) (service.DocumentService, error) {
	mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	collection := mongoClient.Database(cfg.MongoDatabase).Collection("pdfdata")
	documentRepo := repository.NewDocumentRepo(collection)
	extractService := service.NewPDFExtractor()
	return service.NewDocumentService(documentRepo, extractService, service.NewMockAIService(), cfg.UploadDir)
}

func ingestFile(ctx context.Context, documentService service.DocumentService, filePath string) (*types.PdfUploadView, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return documentService.Upload(ctx, filepath.Base(filePath), f)
}

func init() {
	rootCmd.AddCommand(uploadDocumentCmd)
	uploadDocumentCmd.Flags().StringP("file", "f", "", "path to the PDF file")
}
