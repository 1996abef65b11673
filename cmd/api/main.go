package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"assistente-gestao/config"
	_ "assistente-gestao/docs" // Swagger docs
	"assistente-gestao/internal/command"
	"assistente-gestao/internal/httpserver"
	"assistente-gestao/internal/middleware"
	"assistente-gestao/internal/storage"
	tgDelivery "assistente-gestao/internal/task/delivery/telegram"
	"assistente-gestao/internal/task/usecase"
	"assistente-gestao/pkg/datemath"
	"assistente-gestao/pkg/gcalendar"
	"assistente-gestao/pkg/log"
	"assistente-gestao/pkg/metrics"
	"assistente-gestao/pkg/telegram"
)

// @title       Assistente de Gestão API
// @description Contract and work-order deadline tracker driven by Portuguese commands.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey ApiKeyAuth
// @in          header
// @name        X-API-Key
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

	logger.Info(ctx, "Starting Assistente de Gestão...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	store, err := storage.Open(ctx, logger, cfg.Storage, cfg.Memos)
	if err != nil {
		logger.Error(ctx, "Failed to open task storage: ", err)
		return
	}
	defer store.Close()

	// 4. Command interpreter, anchored to the configured timezone
	parser, err := datemath.NewParser(cfg.Interpreter.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid interpreter timezone: ", err)
		return
	}
	interp := command.New(command.WithLocation(parser.Location()))
	logger.Infof(ctx, "Interpreter timezone: %s (today is %s)", parser.Location(), datemath.Format(interp.Today()))

	// 5. Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			calendar = calClient
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. Task UseCase
	m := metrics.New()
	taskUC := usecase.New(logger, store.Repo, interp, calendar, cfg.GoogleCalendar.CalendarID, m)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMin)
	mw := middleware.New(logger, cfg.HTTPServer.APIKey, limiter)
	if cfg.HTTPServer.APIKey == "" {
		logger.Warn(ctx, "http_server.api_key is empty: /api/v1 is open")
	}

	// 7. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, bot, cfg.Telegram.WebhookSecret, limiter)

		// Register webhook: auto-detect ngrok or fallback to manual config
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
			if whErr := bot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TaskUseCase:     taskUC,
		Middleware:      mw,
		TelegramHandler: telegramHandler,
		MetricsHandler:  m.Handler(),
		Readiness: func() error {
			return store.Ping(context.Background())
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
