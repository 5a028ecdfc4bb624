package main

import (
	"flag"

	"go-hrms/internal/app"
	"go-hrms/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "insert roles, permissions, leave types and the admin account")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunMigrate(cfg, *seed); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
}
