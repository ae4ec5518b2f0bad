package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/BartekS5/itemexport/internal/cli"
	"github.com/BartekS5/itemexport/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file found, using system environment variables")
	}

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
