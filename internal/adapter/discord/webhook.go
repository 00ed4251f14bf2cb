package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"proxmox-discord-relay/internal/domain/model"
	"proxmox-discord-relay/internal/domain/ports"
)

// DefaultUserAgent identifies the relay to Discord.
const DefaultUserAgent = "ProxmoxDiscordBot/1.0"

// maxLoggedResponse bounds how much of Discord's reply ends up in the log.
const maxLoggedResponse = 4096

// Webhook is a Discord webhook notifier.
type Webhook struct {
	webhookURL string
	userAgent  string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL, userAgent string, timeout time.Duration, logger ports.Logger) *Webhook {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Webhook{
		webhookURL: webhookURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts the message to Discord. Any response whose body can be read
// counts as delivered; a non-2xx status is only logged.
func (w *Webhook) Send(ctx context.Context, message model.Message) error {
	if w.webhookURL == "" {
		return errors.New("webhook URL is empty")
	}

	body, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", w.userAgent)
	w.logger.Debug(ctx, "discord payload", "body", string(body))

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "perform request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read response (status %d)", resp.StatusCode)
	}

	logged := data
	if len(logged) > maxLoggedResponse {
		logged = logged[:maxLoggedResponse]
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		w.logger.Warn(ctx, "discord webhook returned non-success status",
			"status", resp.StatusCode,
			"response", string(logged),
		)
		return nil
	}

	w.logger.Info(ctx, "discord response", "status", resp.StatusCode, "response", string(logged))
	return nil
}
