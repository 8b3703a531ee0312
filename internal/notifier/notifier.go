// Package notifier turns status events into messages for the person they
// concern.
package notifier

import (
	"context"
	"fmt"

	"github.com/Eursukkul/humorshub/internal/events"
	"github.com/sirupsen/logrus"
)

type Notifier interface {
	Notify(ctx context.Context, evt events.StatusChanged) error
}

// LogNotifier writes each notification as a structured log line. It stands in
// for an email or SMS gateway.
type LogNotifier struct {
	log *logrus.Entry
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogNotifier{log: log.WithField("component", "notifier")}
}

func (n *LogNotifier) Notify(_ context.Context, evt events.StatusChanged) error {
	if evt.Email == "" {
		return fmt.Errorf("notify %s: missing recipient", evt.RoutingKey())
	}
	n.log.WithFields(logrus.Fields{
		"to":          evt.Email,
		"routing_key": evt.RoutingKey(),
		"record_id":   evt.RecordID,
	}).Info(Message(evt))
	return nil
}

// Message renders the text sent to the recipient.
func Message(evt events.StatusChanged) string {
	name := evt.Name
	if name == "" {
		name = evt.Email
	}

	switch evt.Subject {
	case events.SubjectBooking:
		switch evt.Action {
		case events.ActionApproved:
			return fmt.Sprintf("Hi %s, your booking #%d for %d ticket(s) has been approved. See you at the show!", name, evt.RecordID, evt.Tickets)
		case events.ActionDeclined:
			return fmt.Sprintf("Hi %s, unfortunately your booking #%d has been declined.", name, evt.RecordID)
		case events.ActionCancelled:
			return fmt.Sprintf("Hi %s, your booking #%d has been cancelled.", name, evt.RecordID)
		}
	case events.SubjectComedian:
		switch evt.Action {
		case events.ActionApproved:
			return fmt.Sprintf("Hi %s, your comedian application has been approved. Welcome to the lineup!", name)
		case events.ActionDeclined:
			return fmt.Sprintf("Hi %s, your comedian application has been declined.", name)
		}
	}
	return fmt.Sprintf("Hi %s, %s %s.", name, evt.Subject, evt.Action)
}
