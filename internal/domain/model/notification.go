package model

const (
	// DefaultTitle is used when the inbound payload carries no title.
	DefaultTitle = "Proxmox Notification"
	// DefaultPriority is used when the inbound payload carries no priority.
	DefaultPriority = 5
)

// Notification is an inbound alert as posted by a Proxmox webhook target.
type Notification struct {
	Title    string
	Message  string
	Priority float64
}

// NewNotification returns a Notification populated with the defaults for
// every field.
func NewNotification() Notification {
	return Notification{
		Title:    DefaultTitle,
		Priority: DefaultPriority,
	}
}
