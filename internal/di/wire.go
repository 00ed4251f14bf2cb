//go:build wireinject

package di

import (
	"github.com/google/wire"

	"proxmox-discord-relay/internal/adapter/httpapi"
	"proxmox-discord-relay/internal/adapter/logging"
	"proxmox-discord-relay/internal/app"
	"proxmox-discord-relay/internal/config"
	"proxmox-discord-relay/internal/domain/ports"
	"proxmox-discord-relay/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideNotifier,
		usecase.NewRelay,
		wire.Bind(new(httpapi.Processor), new(*usecase.Relay)),
		provideHandler,
		provideApp,
	)
	return nil, nil
}
