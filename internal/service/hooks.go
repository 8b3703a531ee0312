package service

import (
	"context"
	"time"

	"github.com/Eursukkul/humorshub/internal/events"
	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type VenueStatusCache interface {
	Get(ctx context.Context) (*models.VenueStatus, error)
	Set(ctx context.Context, status models.VenueStatus) error
	Invalidate(ctx context.Context) error
}

// Option wires an optional collaborator into a service.
type Option func(*hooks)

func WithPublisher(p Publisher) Option {
	return func(h *hooks) { h.publisher = p }
}

func WithVenueCache(c VenueStatusCache) Option {
	return func(h *hooks) { h.cache = c }
}

func WithClock(now func() time.Time) Option {
	return func(h *hooks) { h.now = now }
}

type hooks struct {
	publisher Publisher
	cache     VenueStatusCache
	now       func() time.Time
	log       *logrus.Entry
}

func newHooks(component string, opts []Option) hooks {
	h := hooks{
		now: time.Now,
		log: logrus.WithField("component", component),
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// notify is best effort: a broker failure never fails the request.
func (h *hooks) notify(ctx context.Context, evt events.StatusChanged) {
	if h.publisher == nil {
		return
	}
	evt.OccurredAt = h.now()
	if err := h.publisher.Publish(ctx, evt.RoutingKey(), evt); err != nil {
		h.log.WithError(err).WithField("routing_key", evt.RoutingKey()).Warn("publish status event")
	}
}

func (h *hooks) invalidateVenueStatus(ctx context.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(ctx); err != nil {
		h.log.WithError(err).Warn("invalidate venue status cache")
	}
}
