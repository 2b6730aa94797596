package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/infrastructure/metrics"
	"marketplace_trust/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Clock returns the current time. Use cases default to UTC wall time.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// notifier wraps the sink so delivery failures only ever produce a warning.
type notifier struct {
	sink    interfaces.INotifier
	log     *zap.Logger
	metrics *metrics.Metrics
}

func (n notifier) send(ctx context.Context, recipientID, eventType string, payload map[string]string) {
	if n.sink == nil || recipientID == "" {
		return
	}
	if err := n.sink.Notify(ctx, recipientID, eventType, payload); err != nil {
		n.metrics.IncNotification("error")
		n.log.Warn("notification failed", zap.String("recipient_id", recipientID), zap.String("event", eventType), zap.Error(err))
		return
	}
	n.metrics.IncNotification("ok")
}

func (n notifier) admins(ctx context.Context, eventType string, payload map[string]string) {
	if n.sink == nil {
		return
	}
	if err := n.sink.NotifyAdmins(ctx, eventType, payload); err != nil {
		n.metrics.IncNotification("error")
		n.log.Warn("admin notification failed", zap.String("event", eventType), zap.Error(err))
		return
	}
	n.metrics.IncNotification("ok")
}

type systemCallKey struct{}

// AsSystem marks ctx as an in-process system call, such as a scheduled job.
// The reserved actor id is only honoured on a context marked this way.
func AsSystem(ctx context.Context) context.Context {
	return context.WithValue(ctx, systemCallKey{}, true)
}

func isSystem(ctx context.Context, actorID string) bool {
	marked, _ := ctx.Value(systemCallKey{}).(bool)
	return marked && actorID == entities.SystemActorID
}

// roleOf looks up the actor's platform role. Unknown actors have no role.
func roleOf(ctx context.Context, directory interfaces.IPlatformDirectory, actorID string) (entities.Role, error) {
	if directory == nil || actorID == "" || actorID == entities.SystemActorID {
		return "", nil
	}
	p, err := directory.GetProfile(ctx, actorID)
	if err != nil {
		return "", err
	}
	return p.Role, nil
}

func requireID(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", failure.Validation(field + " is required")
	}
	return value, nil
}

// conditional translates repository condition failures into typed errors.
func conditional(err error, notFound error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, failure.ErrConditionFailed):
		return failure.Wrap(err, failure.CodeConcurrencyConflict, entity+" was modified concurrently")
	case errors.Is(err, failure.ErrNotFound):
		return notFound
	default:
		return err
	}
}
