/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdf-insight-be",
	Short: "Backend for PDF summarization and question answering",
	Long: `pdf-insight-be accepts PDF uploads, extracts their text, stores the
records in MongoDB and serves summaries and answers over the stored text
through a chat-completion API.

Run "pdf-insight-be start" to serve HTTP, or "pdf-insight-be upload-document"
to ingest a PDF from the command line.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.yaml", "config file")
}
