package memory

import (
	"context"
	"sort"
	"sync"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/usecase/interfaces"
)

// PlatformMemoryDirectory stands in for the marketplace bookings and profiles tables.
type PlatformMemoryDirectory struct {
	mu       sync.RWMutex
	bookings map[string]entities.Booking
	profiles map[string]entities.Profile
}

var _ interfaces.IPlatformDirectory = (*PlatformMemoryDirectory)(nil)

func NewPlatformMemoryDirectory() *PlatformMemoryDirectory {
	return &PlatformMemoryDirectory{
		bookings: map[string]entities.Booking{},
		profiles: map[string]entities.Profile{},
	}
}

func (d *PlatformMemoryDirectory) PutBooking(b entities.Booking) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bookings[b.ID] = b
}

func (d *PlatformMemoryDirectory) PutProfile(p entities.Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profiles[p.ID] = p
}

func (d *PlatformMemoryDirectory) GetBooking(_ context.Context, id string) (entities.Booking, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.bookings[id], nil
}

func (d *PlatformMemoryDirectory) GetProfile(_ context.Context, id string) (entities.Profile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.profiles[id], nil
}

func (d *PlatformMemoryDirectory) ListProfilesByRole(_ context.Context, role entities.Role) ([]entities.Profile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]entities.Profile, 0)
	for _, p := range d.profiles {
		if p.Role == role {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (d *PlatformMemoryDirectory) SetPaymentCustomerID(_ context.Context, userID, customerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	p := d.profiles[userID]
	p.ID = userID
	p.PaymentCustomerID = customerID
	d.profiles[userID] = p
	return nil
}

func (d *PlatformMemoryDirectory) AdjustTrustScore(_ context.Context, userID string, delta int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p := d.profiles[userID]
	p.ID = userID
	p.TrustScore = clampTrust(p.TrustScore + delta)
	d.profiles[userID] = p
	return p.TrustScore, nil
}

func clampTrust(score int) int {
	if score < entities.MinTrustScore {
		return entities.MinTrustScore
	}
	if score > entities.MaxTrustScore {
		return entities.MaxTrustScore
	}
	return score
}
