package memory

import (
	"context"
	"sort"
	"sync"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/usecase/interfaces"
)

type DisputeMemoryRepository struct {
	mu       sync.RWMutex
	disputes map[string]entities.Dispute
	// openByBooking maps a booking to its single non-terminal dispute.
	openByBooking map[string]string
	messages      map[string][]entities.DisputeMessage
	timeline      map[string][]entities.DisputeTimelineEvent
}

var _ interfaces.IDisputeRepository = (*DisputeMemoryRepository)(nil)

func NewDisputeMemoryRepository() *DisputeMemoryRepository {
	return &DisputeMemoryRepository{
		disputes:      map[string]entities.Dispute{},
		openByBooking: map[string]string{},
		messages:      map[string][]entities.DisputeMessage{},
		timeline:      map[string][]entities.DisputeTimelineEvent{},
	}
}

func (r *DisputeMemoryRepository) Create(_ context.Context, d entities.Dispute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.openByBooking[d.BookingID]; ok {
		return failure.ErrAlreadyExists
	}
	if _, ok := r.disputes[d.ID]; ok {
		return failure.ErrAlreadyExists
	}
	r.disputes[d.ID] = d
	if !d.Status.Terminal() {
		r.openByBooking[d.BookingID] = d.ID
	}
	return nil
}

func (r *DisputeMemoryRepository) GetByID(_ context.Context, id string) (entities.Dispute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.disputes[id], nil
}

func (r *DisputeMemoryRepository) FindOpenByBooking(_ context.Context, bookingID string) (entities.Dispute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.openByBooking[bookingID]
	if !ok {
		return entities.Dispute{}, nil
	}
	return r.disputes[id], nil
}

func (r *DisputeMemoryRepository) ListByClient(_ context.Context, clientID string) ([]entities.Dispute, error) {
	return r.list(func(d entities.Dispute) bool { return d.ClientID == clientID }), nil
}

func (r *DisputeMemoryRepository) ListByProvider(_ context.Context, providerID string) ([]entities.Dispute, error) {
	return r.list(func(d entities.Dispute) bool { return d.ProviderID == providerID }), nil
}

func (r *DisputeMemoryRepository) ListAll(_ context.Context) ([]entities.Dispute, error) {
	return r.list(func(entities.Dispute) bool { return true }), nil
}

func (r *DisputeMemoryRepository) list(match func(entities.Dispute) bool) []entities.Dispute {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Dispute, 0)
	for _, d := range r.disputes {
		if match(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *DisputeMemoryRepository) CountActiveByMediator(_ context.Context, mediatorID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, d := range r.disputes {
		if d.MediatorID == mediatorID && !d.Status.Terminal() {
			n++
		}
	}
	return n, nil
}

func (r *DisputeMemoryRepository) Update(_ context.Context, d entities.Dispute, expected entities.DisputeStatus) (entities.Dispute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.disputes[d.ID]
	if !ok {
		return entities.Dispute{}, failure.ErrNotFound
	}
	if current.Status != expected {
		return entities.Dispute{}, failure.ErrConditionFailed
	}
	r.disputes[d.ID] = d
	if d.Status.Terminal() && r.openByBooking[d.BookingID] == d.ID {
		delete(r.openByBooking, d.BookingID)
	}
	return d, nil
}

func (r *DisputeMemoryRepository) AppendMessage(_ context.Context, m entities.DisputeMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[m.DisputeID] = append(r.messages[m.DisputeID], m)
	return nil
}

func (r *DisputeMemoryRepository) ListMessages(_ context.Context, disputeID string) ([]entities.DisputeMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.DisputeMessage(nil), r.messages[disputeID]...), nil
}

func (r *DisputeMemoryRepository) AppendTimeline(_ context.Context, ev entities.DisputeTimelineEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeline[ev.DisputeID] = append(r.timeline[ev.DisputeID], ev)
	return nil
}

func (r *DisputeMemoryRepository) ListTimeline(_ context.Context, disputeID string) ([]entities.DisputeTimelineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.DisputeTimelineEvent(nil), r.timeline[disputeID]...), nil
}
