package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/outflo/campaign-manager/internal/ai"
	"github.com/outflo/campaign-manager/internal/config"
	"github.com/outflo/campaign-manager/internal/database"
	"github.com/outflo/campaign-manager/internal/handler"
	middlewarepkg "github.com/outflo/campaign-manager/internal/middleware"
	"github.com/outflo/campaign-manager/internal/repository"
	"github.com/outflo/campaign-manager/internal/router"
	"github.com/outflo/campaign-manager/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	// A missing or trivially short credential disables the AI tier; the
	// message endpoint still answers from the template tier.
	var generator service.TextGenerator
	if cfg.AIEnabled() {
		gemini, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Gemini client unavailable, AI tier disabled: %v", err)
		} else {
			generator = gemini
		}
	} else {
		log.Printf("GEMINI_API_KEY missing or invalid, AI tier disabled")
	}

	campaignsRepo := repository.NewPGXCampaignsRepository(pool)
	campaignService := service.NewCampaignService(campaignsRepo)
	messageService := service.NewMessageService(generator)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	router.Register(e, router.Handlers{
		Campaigns: handler.NewCampaignsHandler(campaignService),
		Messages:  handler.NewMessageHandler(messageService),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
