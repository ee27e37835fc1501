/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf-insight-be/config"
)

// batchUploadDocumentCmd ingests every PDF in a directory, continuing past
// per-file failures.
var batchUploadDocumentCmd = &cobra.Command{
	Use:   "batch-upload-document",
	Short: "Extract and insert every PDF in a directory",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			log.Fatal("--dir is required")
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		files, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
		if err != nil {
			log.Fatalf("Failed to list directory: %v", err)
		}
		if len(files) == 0 {
			log.Fatalf("No PDF files found in %s", dir)
		}

		ctx := context.Background()
		documentService, err := newCLIDocumentService(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize services: %v", err)
		}

		uploaded := 0
		for _, filePath := range files {
			view, err := ingestFile(ctx, documentService, filePath)
			if err != nil {
				log.Printf("Skipping %s: %v", filePath, err)
				continue
			}
			log.Printf("Uploaded %s as document %s", view.PdfName, view.DocID)
			uploaded++
		}
		log.Printf("Uploaded %d/%d files", uploaded, len(files))
	},
}

func init() {
	rootCmd.AddCommand(batchUploadDocumentCmd)
	batchUploadDocumentCmd.Flags().StringP("dir", "d", "", "directory containing PDF files")
}
