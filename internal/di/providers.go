package di

import (
	"log/slog"
	"net/http"
	"os"

	"proxmox-discord-relay/internal/adapter/discord"
	"proxmox-discord-relay/internal/adapter/httpapi"
	"proxmox-discord-relay/internal/adapter/logging"
	"proxmox-discord-relay/internal/app"
	"proxmox-discord-relay/internal/config"
	"proxmox-discord-relay/internal/domain/ports"
)

func provideSlogLogger(cfg config.Config) *slog.Logger {
	logger := logging.NewSlog(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}

func provideNotifier(cfg config.Config, logger ports.Logger) ports.Notifier {
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.UserAgent, cfg.RequestTimeout, logger)
}

func provideHandler(cfg config.Config, relay httpapi.Processor, logger ports.Logger) http.Handler {
	return httpapi.New(relay, logger, cfg.MaxBodyBytes).Routes()
}

func provideApp(cfg config.Config, handler http.Handler, logger ports.Logger) *app.App {
	return app.New(handler, logger, cfg.Addr(), cfg.MaxConnections)
}
