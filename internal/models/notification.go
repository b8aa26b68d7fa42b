package models

// NotificationStream delivers a signal each time the subscribed account's
// pending requests may have changed.
type NotificationStream interface {
	Notifications() <-chan struct{} // Closed when the stream ends
	Close() error                   // Releases the underlying subscription
}
