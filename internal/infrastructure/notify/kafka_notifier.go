package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace_trust/internal/infrastructure/metrics"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

// KafkaNotifier publishes user notifications keyed by recipient so a user's
// events stay ordered, and admin notifications to a separate topic.
type KafkaNotifier struct {
	client     *kgo.Client
	topic      string
	adminTopic string
	log        *zap.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

var _ interfaces.INotifier = (*KafkaNotifier)(nil)

type KafkaOptions struct {
	Brokers    []string
	Topic      string
	AdminTopic string
	ClientID   string
}

func NewKafkaNotifier(opts KafkaOptions, log *zap.Logger, m *metrics.Metrics) (*KafkaNotifier, error) {
	if len(opts.Brokers) == 0 {
		return nil, fmt.Errorf("notify: no kafka brokers configured")
	}
	if opts.ClientID == "" {
		opts.ClientID = "marketplace-trust"
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(opts.Brokers...),
		kgo.ClientID(opts.ClientID),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchMaxBytes(1<<20),
		kgo.RecordDeliveryTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("notify: kafka client: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &KafkaNotifier{
		client:     client,
		topic:      opts.Topic,
		adminTopic: opts.AdminTopic,
		log:        log.Named("notify"),
		metrics:    m,
		now:        time.Now,
	}, nil
}

func (n *KafkaNotifier) Notify(ctx context.Context, recipientID, eventType string, payload map[string]string) error {
	return n.publish(ctx, n.topic, recipientID, newNotification(AudienceUser, recipientID, eventType, payload, n.now()))
}

func (n *KafkaNotifier) NotifyAdmins(ctx context.Context, eventType string, payload map[string]string) error {
	return n.publish(ctx, n.adminTopic, eventType, newNotification(AudienceAdmins, "", eventType, payload, n.now()))
}

// publish hands the record to the client's producer and returns without
// waiting for the broker. Delivery failures are logged and counted from the
// produce callback; enqueue outcomes are counted by the caller.
func (n *KafkaNotifier) publish(ctx context.Context, topic, key string, msg Notification) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte(msg.EventType)},
		},
	}
	n.client.Produce(context.WithoutCancel(ctx), record, func(r *kgo.Record, err error) {
		if err == nil {
			return
		}
		n.metrics.IncNotification("undelivered")
		n.log.Warn("notification publish failed",
			zap.String("topic", r.Topic),
			zap.String("event_type", msg.EventType),
			zap.Error(err))
	})
	return nil
}

// Flush waits for every buffered notification to be acknowledged.
func (n *KafkaNotifier) Flush(ctx context.Context) error {
	return n.client.Flush(ctx)
}

// Ping checks broker connectivity.
func (n *KafkaNotifier) Ping(ctx context.Context) error {
	return n.client.Ping(ctx)
}

// Close flushes pending notifications for up to five seconds, then closes the client.
func (n *KafkaNotifier) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.client.Flush(ctx); err != nil {
		n.log.Warn("notification flush failed", zap.Error(err))
	}
	n.client.Close()
}
