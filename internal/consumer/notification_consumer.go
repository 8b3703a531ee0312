package consumer

import (
	"context"
	"encoding/json"

	"github.com/Eursukkul/humorshub/internal/events"
	"github.com/Eursukkul/humorshub/internal/notifier"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Bindings are the routing key patterns the notification queue listens on.
var Bindings = []string{events.SubjectBooking + ".*", events.SubjectComedian + ".*"}

const QueueName = "humorshub.notifications"

type NotificationConsumer struct {
	notifier notifier.Notifier
	log      *logrus.Entry
}

func NewNotificationConsumer(n notifier.Notifier) *NotificationConsumer {
	return &NotificationConsumer{
		notifier: n,
		log:      logrus.WithField("component", "notification-consumer"),
	}
}

// Start handles deliveries until msgs is closed. The returned channel is
// closed once the loop exits.
func (nc *NotificationConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			nc.handleMessage(ctx, msg)
		}
		nc.log.Info("delivery channel closed, stopping consumer")
	}()
	return done
}

func (nc *NotificationConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	var evt events.StatusChanged
	if err := json.Unmarshal(msg.Body, &evt); err != nil || evt.Subject == "" || evt.Action == "" {
		nc.log.WithError(err).WithField("message_id", msg.MessageId).Warn("dropping malformed message")
		msg.Nack(false, false)
		return
	}

	if err := nc.notifier.Notify(ctx, evt); err != nil {
		nc.log.WithError(err).WithField("routing_key", evt.RoutingKey()).Error("notify failed")
		msg.Nack(false, !msg.Redelivered)
		return
	}

	msg.Ack(false)
}
