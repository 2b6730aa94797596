package notify

import (
	"context"
	"time"

	"marketplace_trust/internal/infrastructure/metrics"
	"marketplace_trust/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogNotifier writes notifications to the log. It is used when no broker is
// configured.
type LogNotifier struct {
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(log *zap.Logger, m *metrics.Metrics) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log.Named("notify"), metrics: m, now: time.Now}
}

func (n *LogNotifier) Notify(_ context.Context, recipientID, eventType string, payload map[string]string) error {
	n.write(newNotification(AudienceUser, recipientID, eventType, payload, n.now()))
	return nil
}

func (n *LogNotifier) NotifyAdmins(_ context.Context, eventType string, payload map[string]string) error {
	n.write(newNotification(AudienceAdmins, "", eventType, payload, n.now()))
	return nil
}

func (n *LogNotifier) write(msg Notification) {
	n.metrics.IncNotification("logged")
	n.log.Info("notification",
		zap.String("id", msg.ID),
		zap.String("audience", msg.Audience),
		zap.String("recipient_id", msg.RecipientID),
		zap.String("event_type", msg.EventType),
		zap.Any("payload", msg.Payload))
}
