package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "yamdb-backend/docs"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @title YaMDb API
// @version 1.0
// @description Reviews of films, books and music: catalog, scores, comments and user management

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

var rootCmd = &cobra.Command{
	Use:   "yamdb",
	Short: "YaMDb review API",
	Long: `YaMDb collects user reviews of titles (films, books, music).

Environment is read from envs/.env.<GO_ENV> with envs/.env as the fallback.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadEnvFile()
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, createSuperuserCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Debugf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Debugf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
