package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"telegram-info-bot/config"
	_ "telegram-info-bot/docs" // Swagger docs
	"telegram-info-bot/internal/httpserver"
	"telegram-info-bot/internal/responder"
	tgDelivery "telegram-info-bot/internal/responder/delivery/telegram"
	"telegram-info-bot/internal/webhook"
	"telegram-info-bot/pkg/log"
	"telegram-info-bot/pkg/telegram"
)

// @title       Telegram Info Bot API
// @description Webhook-driven Telegram bot that replies with sender, chat, and forward provenance info.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Telegram Info Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Telegram Bot client
	bot := telegram.NewBot(cfg.Telegram.BotToken)
	if cfg.Telegram.APIURL != "" {
		bot.SetAPIURL(cfg.Telegram.APIURL)
	}

	var botUsername string
	if me, meErr := bot.GetMe(ctx); meErr != nil {
		logger.Warnf(ctx, "Could not verify bot identity (Telegram unreachable?): %v", meErr)
	} else {
		botUsername = me.Username
		logger.Infof(ctx, "Authorized as @%s (id %d)", me.Username, me.ID)
	}

	// 4. Responder pipeline
	uc := responder.New(logger, bot, cfg.Delivery.Timeout)
	telegramHandler := tgDelivery.New(logger, uc)

	// 5. Webhook registration: configured URL or ngrok auto-detect (dev)
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL != "" {
		if whErr := bot.SetWebhook(ctx, webhookURL, cfg.Webhook.Secret); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	// 6. Webhook security
	security := webhook.NewSecurityValidator(webhook.SecurityConfig{
		Enabled:         cfg.Webhook.Enabled,
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		BotUsername:     botUsername,
		TelegramHandler: telegramHandler,
		Security:        security,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
