package main

import (
	"log"

	"github.com/nevilhulspas/caltrack/config"
	"github.com/nevilhulspas/caltrack/controllers"
	"github.com/nevilhulspas/caltrack/routes"
	"github.com/nevilhulspas/caltrack/services"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	db := config.InitDB(cfg)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	store := services.NewFoodLogService(db)
	claude := services.NewClaudeService(cfg.AnthropicAPIKey)

	pf := controllers.NewParseFoodController(store, claude, logger)
	dash := controllers.NewDashboardController(store, logger)

	r := routes.SetupRouter(pf, dash)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
