package offer_deadline

import "time"

const DefaultOfferTimeout = 30 * time.Second

type OfferDeadlineFactory struct {
	timeout time.Duration
}

func New(timeout time.Duration) *OfferDeadlineFactory {
	if timeout <= 0 {
		timeout = DefaultOfferTimeout
	}
	return &OfferDeadlineFactory{timeout: timeout}
}

func (f *OfferDeadlineFactory) CalculateOfferDeadline(baseTime time.Time) time.Time {
	return baseTime.Add(f.timeout)
}
