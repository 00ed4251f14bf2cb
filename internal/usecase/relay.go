package usecase

import (
	"context"
	"time"

	"proxmox-discord-relay/internal/domain/model"
	"proxmox-discord-relay/internal/domain/ports"
)

// Relay turns a decoded notification body into a Discord message and delivers it.
type Relay struct {
	notifier ports.Notifier
	logger   ports.Logger
	rules    []Rule
}

// NewRelay constructs a Relay using DefaultRules.
func NewRelay(notifier ports.Notifier, logger ports.Logger) *Relay {
	return &Relay{
		notifier: notifier,
		logger:   logger,
		rules:    DefaultRules(),
	}
}

// WithRules returns a copy of r that classifies with rules instead.
func (r *Relay) WithRules(rules []Rule) *Relay {
	cp := *r
	cp.rules = rules
	return &cp
}

// Process runs parse, classify, build and deliver for one request body.
// Failures come back as *StageError.
func (r *Relay) Process(ctx context.Context, body []byte) error {
	start := time.Now()

	notification, err := ParseNotification(body)
	if err != nil {
		return Fail(StageParse, err)
	}
	r.logger.Info(ctx, "parsed notification",
		"title", notification.Title,
		"message", notification.Message,
		"priority", notification.Priority,
	)

	message := r.Build(notification)
	r.logger.Info(ctx, "sending to discord", "embed_title", message.Embeds[0].Title)

	if err := r.notifier.Send(ctx, message); err != nil {
		return Fail(StageDeliver, err)
	}

	r.logger.Info(ctx, "successfully forwarded",
		"title", notification.Title,
		"duration", time.Since(start),
	)
	return nil
}

// Build classifies n and renders the outbound message.
func (r *Relay) Build(n model.Notification) model.Message {
	class := Classify(r.rules, n)
	return BuildMessage(n, class)
}
