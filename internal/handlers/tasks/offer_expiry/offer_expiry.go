package offer_expiry

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ExpireOverdueOffers(ctx context.Context) (int, error)
}

// OfferExpiry добирает просроченные офферы, чей таймер не сработал
// в этом процессе.
type OfferExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOfferExpiry(log logger.Logger, service Service, interval time.Duration) *OfferExpiry {
	return &OfferExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OfferExpiry) TTL() time.Duration {
	return o.interval
}

func (o *OfferExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	expired, err := o.service.ExpireOverdueOffers(ctxWithTimeout)

	if expired > 0 {
		o.log.With(
			logger.NewField("expired_offers", expired),
		).Info("offer expiry")
	}

	return err
}

func (o *OfferExpiry) Info() string {
	return "offer expiry"
}
