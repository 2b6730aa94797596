package interfaces

import "context"

// INotifier is the fire-and-forget notification and audit sink.
// Callers log failures and carry on.
type INotifier interface {
	Notify(ctx context.Context, recipientID, eventType string, payload map[string]string) error
	NotifyAdmins(ctx context.Context, eventType string, payload map[string]string) error
}
