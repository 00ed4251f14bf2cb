package model

// Classification is the severity bucket a notification falls into.
type Classification struct {
	Name  string
	Color int
	Emoji string
}

// EmbedFooter is the footer block of a Discord embed.
type EmbedFooter struct {
	Text string `json:"text"`
}

// Embed is a single Discord rich-content block.
type Embed struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Color       int         `json:"color"`
	Footer      EmbedFooter `json:"footer"`
}

// Message is the body posted to a Discord webhook.
type Message struct {
	Embeds []Embed `json:"embeds"`
}
