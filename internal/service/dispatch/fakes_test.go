package dispatch_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/rider"
)

// memStore хранилище в памяти. DoLocked держит один мьютекс на время
// транзакции, это строже построчной блокировки, но порядок переходов
// одного заказа тот же. При ошибке состояние откатывается.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	orders     map[string]*entities.Order
	riders     map[int64]*entities.Rider
	exclusions map[exclusionKey]string
	tracking   []entities.TrackingEvent
	trackingID int64
	clock      *fakeClock
}

type exclusionKey struct {
	orderID string
	epoch   int
	riderID int64
}

func newMemStore(clock *fakeClock) *memStore {
	return &memStore{
		orders:     make(map[string]*entities.Order),
		riders:     make(map[int64]*entities.Rider),
		exclusions: make(map[exclusionKey]string),
		clock:      clock,
	}
}

func (s *memStore) addOrder(order entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.DispatchEpoch == 0 {
		order.DispatchEpoch = 1
	}
	s.orders[order.ID] = &order
}

func (s *memStore) addRider(r entities.Rider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.riders[r.ID] = &r
}

func (s *memStore) order(id string) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrder(*s.orders[id])
}

func (s *memStore) rider(id int64) entities.Rider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.riders[id]
}

func cloneOrder(o entities.Order) entities.Order {
	clone := func(t *time.Time) *time.Time {
		if t == nil {
			return nil
		}
		v := *t
		return &v
	}
	o.Milestones = entities.Milestones{
		ConfirmedAt: clone(o.Milestones.ConfirmedAt),
		AssignedAt:  clone(o.Milestones.AssignedAt),
		PickedUpAt:  clone(o.Milestones.PickedUpAt),
		InTransitAt: clone(o.Milestones.InTransitAt),
		DeliveredAt: clone(o.Milestones.DeliveredAt),
		CancelledAt: clone(o.Milestones.CancelledAt),
	}
	if o.PickupZoneID != nil {
		o.PickupZoneID = pointerTo(*o.PickupZoneID)
	}
	return o
}

func pointerTo[T any](v T) *T {
	return &v
}

type snapshot struct {
	orders     map[string]entities.Order
	riders     map[int64]entities.Rider
	exclusions map[exclusionKey]string
	tracking   int
}

func (s *memStore) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		orders:     make(map[string]entities.Order, len(s.orders)),
		riders:     make(map[int64]entities.Rider, len(s.riders)),
		exclusions: make(map[exclusionKey]string, len(s.exclusions)),
		tracking:   len(s.tracking),
	}
	for id, o := range s.orders {
		snap.orders[id] = cloneOrder(*o)
	}
	for id, r := range s.riders {
		snap.riders[id] = *r
	}
	for k, v := range s.exclusions {
		snap.exclusions[k] = v
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, o := range snap.orders {
		s.orders[id] = &o
	}
	for id, r := range snap.riders {
		s.riders[id] = &r
	}
	s.exclusions = snap.exclusions
	s.tracking = s.tracking[:snap.tracking]
}

// TxManager

func (s *memStore) DoLocked(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// Repository

func (s *memStore) GetByID(_ context.Context, orderID string) (*entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, dispatch.ErrOrderNotFound
	}
	clone := cloneOrder(*o)
	return &clone, nil
}

func (s *memStore) GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error) {
	return s.GetByID(ctx, orderID)
}

func (s *memStore) SaveAssignment(_ context.Context, orderID string, assignment entities.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[orderID].Assignment = assignment
	return nil
}

func (s *memStore) SetStatus(_ context.Context, orderID string, status entities.OrderStatusType, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.orders[orderID]
	o.Status = status
	o.Milestones.Set(status, at)
	return nil
}

func (s *memStore) SetPickupZone(_ context.Context, orderID string, zoneID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[orderID].PickupZoneID = &zoneID
	return nil
}

func (s *memStore) AdvanceEpoch(_ context.Context, orderID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[orderID].DispatchEpoch++
	return s.orders[orderID].DispatchEpoch, nil
}

func (s *memStore) AddExclusion(_ context.Context, exclusion entities.OfferExclusion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exclusions[exclusionKey{exclusion.OrderID, exclusion.Epoch, exclusion.RiderID}] = exclusion.Reason
	return nil
}

func (s *memStore) GetExcludedRiders(_ context.Context, orderID string, epoch int) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int64
	for k := range s.exclusions {
		if k.orderID == orderID && k.epoch == epoch {
			ids = append(ids, k.riderID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *memStore) GetBulkSiblingIDs(_ context.Context, bulkOrderID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, o := range s.orders {
		if o.BulkOrderID != nil && *o.BulkOrderID == bulkOrderID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *memStore) ListExpiredOffers(_ context.Context, now time.Time, limit uint64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, o := range s.orders {
		if o.Assignment.OfferExpired(now) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if uint64(len(ids)) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// RiderService

func (s *memStore) FindCandidate(_ context.Context, zoneID int64, exclude []int64) (*entities.Rider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	excluded := make(map[int64]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	var best *entities.Rider
	for _, r := range s.riders {
		if r.Status != entities.RiderOnline || !r.IsActive || r.ZoneID == nil || *r.ZoneID != zoneID ||
			r.ActiveOrders >= rider.DefaultLoadCeiling || excluded[r.ID] {
			continue
		}
		if best == nil || r.ActiveOrders < best.ActiveOrders ||
			(r.ActiveOrders == best.ActiveOrders && r.ID < best.ID) {
			best = r
		}
	}
	if best == nil {
		return nil, rider.ErrNoCandidateRider
	}
	found := *best
	return &found, nil
}

func (s *memStore) changeLoad(id int64, active, completed int) (*entities.RiderLoad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.riders[id]
	if !ok {
		return nil, rider.ErrRiderNotFound
	}
	r.ActiveOrders = max(r.ActiveOrders+active, 0)
	r.CompletedDeliveries += completed
	return &entities.RiderLoad{RiderID: id, ActiveOrders: r.ActiveOrders, CompletedDeliveries: r.CompletedDeliveries}, nil
}

func (s *memStore) IncrementActiveOrders(_ context.Context, id int64) (*entities.RiderLoad, error) {
	return s.changeLoad(id, 1, 0)
}

func (s *memStore) CompleteDelivery(_ context.Context, id int64) (*entities.RiderLoad, error) {
	return s.changeLoad(id, -1, 1)
}

func (s *memStore) ReleaseOrder(_ context.Context, id int64) (*entities.RiderLoad, error) {
	return s.changeLoad(id, -1, 0)
}

// TrackingLog

func (s *memStore) Append(_ context.Context, orderID string, status entities.OrderStatusType, note *string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackingID++
	s.tracking = append(s.tracking, entities.TrackingEvent{
		ID:        s.trackingID,
		OrderID:   orderID,
		Status:    status,
		Note:      note,
		CreatedAt: s.clock.Now(),
	})
	return s.trackingID, nil
}

func (s *memStore) ListFor(_ context.Context, orderID string) ([]entities.TrackingEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var events []entities.TrackingEvent
	for i := len(s.tracking) - 1; i >= 0; i-- {
		if s.tracking[i].OrderID == orderID {
			events = append(events, s.tracking[i])
		}
	}
	return events, nil
}

// ZoneResolver без зон: все заказы в сценариях уже с зоной.
type noZones struct{}

func (noZones) Resolve(context.Context, string) (*int64, error) {
	return nil, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// manualScheduler запоминает таймеры, срабатывают они только через fire.
type manualScheduler struct {
	mu      sync.Mutex
	pending map[string]scheduled
}

type scheduled struct {
	at     time.Time
	action func(ctx context.Context)
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[string]scheduled)}
}

func (s *manualScheduler) Schedule(key string, at time.Time, action func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = scheduled{at: at, action: action}
	return true
}

func (s *manualScheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	delete(s.pending, key)
	return ok
}

func (s *manualScheduler) armed(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[key]
	return p.at, ok
}

func (s *manualScheduler) fire(ctx context.Context, key string) bool {
	s.mu.Lock()
	p, ok := s.pending[key]
	delete(s.pending, key)
	s.mu.Unlock()
	if ok {
		p.action(ctx)
	}
	return ok
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.DispatchEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event entities.DispatchEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []entities.DispatchEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]entities.DispatchEventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}
