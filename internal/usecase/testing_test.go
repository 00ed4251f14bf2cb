package usecase

import (
	"context"
	"sync"

	"proxmox-discord-relay/internal/domain/model"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []model.Message
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, message model.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, message)
	return n.err
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
