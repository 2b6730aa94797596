package memory

import (
	"context"
	"sync"
	"time"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type ReviewRecord struct {
	ClientID   string
	ProviderID string
	Rating     int
	IPAddress  string
	CreatedAt  time.Time
}

type PaymentRecord struct {
	UserID    string
	Amount    decimal.Decimal
	Completed bool
	CreatedAt time.Time
}

type SessionRecord struct {
	ID        string
	UserID    string
	IPAddress string
	CreatedAt time.Time
}

type LoginRecord struct {
	UserID    string
	Success   bool
	CreatedAt time.Time
}

type ProfileChangeRecord struct {
	UserID    string
	CreatedAt time.Time
}

type DeviceRecord struct {
	UserID      string
	Fingerprint string
}

// FraudMemoryHistory keeps the history tables the risk engine reads.
type FraudMemoryHistory struct {
	mu             sync.RWMutex
	reviews        []ReviewRecord
	payments       []PaymentRecord
	sessions       []SessionRecord
	logins         []LoginRecord
	profileChanges []ProfileChangeRecord
	devices        []DeviceRecord
	blacklist      map[string]struct{}
}

var _ interfaces.IFraudHistory = (*FraudMemoryHistory)(nil)

func NewFraudMemoryHistory() *FraudMemoryHistory {
	return &FraudMemoryHistory{blacklist: map[string]struct{}{}}
}

func (h *FraudMemoryHistory) AddReview(r ReviewRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reviews = append(h.reviews, r)
}

func (h *FraudMemoryHistory) AddPayment(p PaymentRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.payments = append(h.payments, p)
}

func (h *FraudMemoryHistory) AddSession(s SessionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions = append(h.sessions, s)
}

func (h *FraudMemoryHistory) AddLogin(l LoginRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logins = append(h.logins, l)
}

func (h *FraudMemoryHistory) AddProfileChange(c ProfileChangeRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.profileChanges = append(h.profileChanges, c)
}

func (h *FraudMemoryHistory) AddDevice(d DeviceRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.devices = append(h.devices, d)
}

func (h *FraudMemoryHistory) Blacklist(ip string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.blacklist[ip] = struct{}{}
}

func (h *FraudMemoryHistory) CountReviewsByClientSince(_ context.Context, clientID string, since time.Time) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, r := range h.reviews {
		if r.ClientID == clientID && !r.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (h *FraudMemoryHistory) CountReviewsByClientForProvider(_ context.Context, clientID, providerID string) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, r := range h.reviews {
		if r.ClientID == clientID && r.ProviderID == providerID {
			n++
		}
	}
	return n, nil
}

func (h *FraudMemoryHistory) CountNegativeReviewsFromIPSince(_ context.Context, ip string, maxRating int, since time.Time) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, r := range h.reviews {
		if r.IPAddress == ip && r.Rating <= maxRating && !r.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (h *FraudMemoryHistory) RecentSessionIPs(_ context.Context, userID string, limit int) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, limit)
	for i := len(h.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		if h.sessions[i].UserID == userID {
			out = append(out, h.sessions[i].IPAddress)
		}
	}
	return out, nil
}

func (h *FraudMemoryHistory) CountSessionsFromIPs(_ context.Context, userID string, ips []string) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	wanted := make(map[string]struct{}, len(ips))
	for _, ip := range ips {
		wanted[ip] = struct{}{}
	}
	n := 0
	for _, s := range h.sessions {
		if _, ok := wanted[s.IPAddress]; ok && s.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (h *FraudMemoryHistory) SessionIP(_ context.Context, sessionID string) (string, bool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.sessions {
		if s.ID == sessionID {
			return s.IPAddress, true, nil
		}
	}
	return "", false, nil
}

func (h *FraudMemoryHistory) CountPaymentsSince(_ context.Context, userID string, since time.Time) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, p := range h.payments {
		if p.UserID == userID && !p.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (h *FraudMemoryHistory) SumCompletedPaymentsSince(_ context.Context, userID string, since time.Time) (decimal.Decimal, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := decimal.Zero
	for _, p := range h.payments {
		if p.UserID == userID && p.Completed && !p.CreatedAt.Before(since) {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (h *FraudMemoryHistory) CountCompletedPayments(_ context.Context, userID string) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, p := range h.payments {
		if p.UserID == userID && p.Completed {
			n++
		}
	}
	return n, nil
}

func (h *FraudMemoryHistory) CountOtherDeviceUsers(_ context.Context, fingerprint, userID string) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	users := map[string]struct{}{}
	for _, d := range h.devices {
		if d.Fingerprint == fingerprint && d.UserID != userID {
			users[d.UserID] = struct{}{}
		}
	}
	return len(users), nil
}

func (h *FraudMemoryHistory) CountFailedLoginsSince(_ context.Context, userID string, since time.Time) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, l := range h.logins {
		if l.UserID == userID && !l.Success && !l.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (h *FraudMemoryHistory) CountProfileChangesSince(_ context.Context, userID string, since time.Time) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, c := range h.profileChanges {
		if c.UserID == userID && !c.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (h *FraudMemoryHistory) IsBlacklisted(_ context.Context, ip string) (bool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.blacklist[ip]
	return ok, nil
}

// FraudCheckMemoryLog is an append-only slice of assessments.
type FraudCheckMemoryLog struct {
	mu      sync.RWMutex
	records []entities.FraudCheckRecord
}

var _ interfaces.IFraudCheckLog = (*FraudCheckMemoryLog)(nil)

func NewFraudCheckMemoryLog() *FraudCheckMemoryLog {
	return &FraudCheckMemoryLog{}
}

func (l *FraudCheckMemoryLog) Append(_ context.Context, record entities.FraudCheckRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
	return nil
}

func (l *FraudCheckMemoryLog) ListSince(_ context.Context, since time.Time) ([]entities.FraudCheckRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entities.FraudCheckRecord, 0)
	for _, r := range l.records {
		if !r.CreatedAt.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}
