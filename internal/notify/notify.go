// Package notify sends desktop notifications for the playing track.
package notify

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string  // icon name or image path
	Timeout    int32   // ms; -1 lets the server decide, 0 never expires
	ReplacesID uint32  // id of a notification to replace in place
	Urgency    Urgency
}

// Notifier shows and dismisses notifications. A Notifier without a
// notification service returns id 0 and no error.
type Notifier interface {
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// Discard is a Notifier that shows nothing.
type Discard struct{}

func (Discard) Notify(Notification) (uint32, error) { return 0, nil }
func (Discard) Close(uint32) error                  { return nil }
