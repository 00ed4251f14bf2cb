// Command relay receives Proxmox webhook notifications and forwards them to
// a Discord channel webhook.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"proxmox-discord-relay/internal/config"
	"proxmox-discord-relay/internal/di"
)

func main() {
	log.SetPrefix("proxmox-discord-relay: ")
	log.SetFlags(0)

	relay, err := di.InitializeApp()
	if err != nil {
		log.Fatalf("startup aborted, check DISCORD_WEBHOOK_URL and %s: %v", config.FileEnv, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := relay.Run(ctx); err != nil {
		log.Fatalf("listener stopped: %v", err)
	}
}
