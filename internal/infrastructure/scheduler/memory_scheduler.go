package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/usecase/interfaces"
)

// MemoryScheduler is a single-process Queue for development and tests.
type MemoryScheduler struct {
	mu    sync.Mutex
	lease time.Duration
	due   map[string]int64
}

var (
	_ interfaces.IScheduler = (*MemoryScheduler)(nil)
	_ Queue                 = (*MemoryScheduler)(nil)
)

func NewMemoryScheduler(lease time.Duration) *MemoryScheduler {
	if lease <= 0 {
		lease = 30 * time.Second
	}
	return &MemoryScheduler{lease: lease, due: make(map[string]int64)}
}

func (s *MemoryScheduler) ScheduleAt(_ context.Context, at time.Time, job entities.ScheduledJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.due[encodeJob(job)] = at.UnixMilli()
	return nil
}

func (s *MemoryScheduler) Claim(_ context.Context, now time.Time, limit int) ([]Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowMs := now.UnixMilli()
	type entry struct {
		member string
		at     int64
	}
	var ready []entry
	for m, at := range s.due {
		if at <= nowMs {
			ready = append(ready, entry{m, at})
		}
	}
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].at == ready[j].at {
			return ready[i].member < ready[j].member
		}
		return ready[i].at < ready[j].at
	})
	if limit > 0 && len(ready) > limit {
		ready = ready[:limit]
	}

	token := now.Add(s.lease).UnixMilli()
	leases := make([]Lease, 0, len(ready))
	for _, e := range ready {
		job, err := decodeJob(e.member)
		if err != nil {
			delete(s.due, e.member)
			continue
		}
		s.due[e.member] = token
		leases = append(leases, Lease{Job: job, Token: token})
	}
	return leases, nil
}

func (s *MemoryScheduler) Ack(_ context.Context, lease Lease) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := encodeJob(lease.Job)
	if s.due[m] == lease.Token {
		delete(s.due, m)
	}
	return nil
}

func (s *MemoryScheduler) Retry(_ context.Context, lease Lease, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := encodeJob(lease.Job)
	if cur, ok := s.due[m]; ok && cur == lease.Token {
		s.due[m] = at.UnixMilli()
	}
	return nil
}

func (s *MemoryScheduler) Pending(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.due)), nil
}
