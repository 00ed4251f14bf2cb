package ports

import (
	"context"

	"proxmox-discord-relay/internal/domain/model"
)

// Notifier delivers a built message to the downstream chat channel.
type Notifier interface {
	Send(ctx context.Context, message model.Message) error
}
