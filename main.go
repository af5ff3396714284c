package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "listing-evaluator",
		Short: "Generate and score SEO-optimized real estate listing content",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadEnv()
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newGenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
