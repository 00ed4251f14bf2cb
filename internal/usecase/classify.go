package usecase

import (
	"strings"

	"proxmox-discord-relay/internal/domain/model"
)

// HighPriority is the priority at or above which a notification is always a failure.
const HighPriority = 8

// The three buckets a notification can land in.
var (
	// Failure is red with a cross mark.
	Failure = model.Classification{Name: "failure", Color: 15158332, Emoji: "❌"}
	// Success is green with a check mark.
	Success = model.Classification{Name: "success", Color: 3066993, Emoji: "✅"}
	// Info is yellow with an information sign; it is also the fallback.
	Info = model.Classification{Name: "info", Color: 16776960, Emoji: "ℹ️"}
)

// Rule maps notifications satisfying Match to Class.
type Rule struct {
	Name  string
	Match func(model.Notification) bool
	Class model.Classification
}

// DefaultRules returns a fresh copy of the ordered rule set applied to every
// notification.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "failure",
			Match: func(n model.Notification) bool {
				return n.Priority >= HighPriority || titleContains(n, "error", "fail")
			},
			Class: Failure,
		},
		{
			Name: "success",
			Match: func(n model.Notification) bool {
				return titleContains(n, "success", "completed", "finish")
			},
			Class: Success,
		},
		{
			Name:  "info",
			Match: func(model.Notification) bool { return true },
			Class: Info,
		},
	}
}

// Classify returns the class of the first rule matching n, or Info when none does.
func Classify(rules []Rule, n model.Notification) model.Classification {
	for _, rule := range rules {
		if rule.Match != nil && rule.Match(n) {
			return rule.Class
		}
	}
	return Info
}

func titleContains(n model.Notification, keywords ...string) bool {
	title := strings.ToLower(n.Title)
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}
