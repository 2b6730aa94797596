// Package memory holds in-process implementations of the persistence ports.
// They honour the same conditional-update contract as the DynamoDB and
// Postgres adapters and back the `memory` storage driver.
package memory

import (
	"context"
	"sort"
	"sync"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/usecase/interfaces"
)

type EscrowMemoryRepository struct {
	mu         sync.RWMutex
	escrows    map[string]entities.EscrowTransaction
	milestones map[string]entities.EscrowMilestone
	releases   map[string][]entities.EscrowRelease
	events     map[string][]entities.EscrowEvent
}

var _ interfaces.IEscrowRepository = (*EscrowMemoryRepository)(nil)

func NewEscrowMemoryRepository() *EscrowMemoryRepository {
	return &EscrowMemoryRepository{
		escrows:    map[string]entities.EscrowTransaction{},
		milestones: map[string]entities.EscrowMilestone{},
		releases:   map[string][]entities.EscrowRelease{},
		events:     map[string][]entities.EscrowEvent{},
	}
}

func (r *EscrowMemoryRepository) Create(_ context.Context, escrow entities.EscrowTransaction, milestones []entities.EscrowMilestone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.escrows[escrow.ID]; ok {
		return failure.ErrAlreadyExists
	}
	for _, e := range r.escrows {
		if e.BookingID == escrow.BookingID && holdsBooking(e.Status) {
			return failure.ErrAlreadyExists
		}
	}
	escrow.Version = 0
	r.escrows[escrow.ID] = escrow
	for _, m := range milestones {
		r.milestones[m.ID] = m
	}
	return nil
}

func (r *EscrowMemoryRepository) GetByID(_ context.Context, id string) (entities.EscrowTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.escrows[id], nil
}

func (r *EscrowMemoryRepository) GetByBookingID(_ context.Context, bookingID string) (entities.EscrowTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest entities.EscrowTransaction
	for _, e := range r.escrows {
		if e.BookingID == bookingID && e.CreatedAt.After(latest.CreatedAt) {
			latest = e
		}
	}
	return latest, nil
}

func (r *EscrowMemoryRepository) ListByClient(_ context.Context, clientID string) ([]entities.EscrowTransaction, error) {
	return r.list(func(e entities.EscrowTransaction) bool { return e.ClientID == clientID }), nil
}

func (r *EscrowMemoryRepository) ListByProvider(_ context.Context, providerID string) ([]entities.EscrowTransaction, error) {
	return r.list(func(e entities.EscrowTransaction) bool { return e.ProviderID == providerID }), nil
}

func (r *EscrowMemoryRepository) list(match func(entities.EscrowTransaction) bool) []entities.EscrowTransaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.EscrowTransaction, 0)
	for _, e := range r.escrows {
		if match(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *EscrowMemoryRepository) UpdateStatus(_ context.Context, escrow entities.EscrowTransaction, expected entities.EscrowStatus) (entities.EscrowTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.escrows[escrow.ID]
	if !ok {
		return entities.EscrowTransaction{}, failure.ErrNotFound
	}
	if current.Status != expected || current.Version != escrow.Version {
		return entities.EscrowTransaction{}, failure.ErrConditionFailed
	}
	escrow.Version++
	r.escrows[escrow.ID] = escrow
	return escrow, nil
}

// holdsBooking reports whether an escrow in this status still blocks a new
// escrow for its booking.
func holdsBooking(s entities.EscrowStatus) bool {
	return s != entities.EscrowStatusCancelled && s != entities.EscrowStatusRefunded
}

func (r *EscrowMemoryRepository) GetMilestone(_ context.Context, id string) (entities.EscrowMilestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.milestones[id], nil
}

func (r *EscrowMemoryRepository) ListMilestones(_ context.Context, escrowID string) ([]entities.EscrowMilestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.EscrowMilestone, 0)
	for _, m := range r.milestones {
		if m.EscrowID == escrowID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

func (r *EscrowMemoryRepository) UpdateMilestoneStatus(_ context.Context, milestone entities.EscrowMilestone, expected entities.MilestoneStatus) (entities.EscrowMilestone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.milestones[milestone.ID]
	if !ok {
		return entities.EscrowMilestone{}, failure.ErrNotFound
	}
	if current.Status != expected {
		return entities.EscrowMilestone{}, failure.ErrConditionFailed
	}
	r.milestones[milestone.ID] = milestone
	return milestone, nil
}

func (r *EscrowMemoryRepository) AppendRelease(_ context.Context, release entities.EscrowRelease) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releases[release.EscrowID] = append(r.releases[release.EscrowID], release)
	return nil
}

func (r *EscrowMemoryRepository) ListReleases(_ context.Context, escrowID string) ([]entities.EscrowRelease, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.EscrowRelease(nil), r.releases[escrowID]...), nil
}

func (r *EscrowMemoryRepository) AppendEvent(_ context.Context, event entities.EscrowEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.EscrowID] = append(r.events[event.EscrowID], event)
	return nil
}

func (r *EscrowMemoryRepository) ListEvents(_ context.Context, escrowID string) ([]entities.EscrowEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.EscrowEvent(nil), r.events[escrowID]...), nil
}
