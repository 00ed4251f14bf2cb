package usecase

import (
	"proxmox-discord-relay/internal/domain/model"
)

const (
	// MaxDescriptionRunes caps the embed description length in characters.
	MaxDescriptionRunes = 2000
	EmptyDescription    = "No details provided"
	FooterText          = "Proxmox Backup Notification"
)

// BuildMessage renders n as a single-embed Discord message.
func BuildMessage(n model.Notification, class model.Classification) model.Message {
	description := truncateRunes(n.Message, MaxDescriptionRunes)
	if description == "" {
		description = EmptyDescription
	}

	return model.Message{
		Embeds: []model.Embed{
			{
				Title:       class.Emoji + " " + n.Title,
				Description: description,
				Color:       class.Color,
				Footer:      model.EmbedFooter{Text: FooterText},
			},
		},
	}
}

func truncateRunes(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	count := 0
	for i := range value {
		if count == limit {
			return value[:i]
		}
		count++
	}
	return value
}
