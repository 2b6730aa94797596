package scheduler

import (
	"context"
	"time"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// claimScript moves due members forward by the lease so that a crashed worker's
// jobs reappear once the lease runs out.
var claimScript = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, tonumber(ARGV[3]))
for _, member in ipairs(due) do
  redis.call('ZADD', KEYS[1], ARGV[2], member)
end
return due
`)

// releaseScript removes or moves a member only while the caller still holds its lease.
var releaseScript = redis.NewScript(`
local score = redis.call('ZSCORE', KEYS[1], ARGV[1])
if not score or tonumber(score) ~= tonumber(ARGV[2]) then
  return 0
end
if ARGV[3] == '' then
  return redis.call('ZREM', KEYS[1], ARGV[1])
end
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[1])
return 1
`)

// RedisScheduler keeps pending jobs in a sorted set scored by due time in
// unix milliseconds.
type RedisScheduler struct {
	client *redis.Client
	key    string
	lease  time.Duration
	log    *zap.Logger
}

var (
	_ interfaces.IScheduler = (*RedisScheduler)(nil)
	_ Queue                 = (*RedisScheduler)(nil)
)

func NewRedisScheduler(client *redis.Client, key string, lease time.Duration, log *zap.Logger) *RedisScheduler {
	if log == nil {
		log = zap.NewNop()
	}
	if lease <= 0 {
		lease = 30 * time.Second
	}
	return &RedisScheduler{client: client, key: key, lease: lease, log: log.Named("scheduler")}
}

// ScheduleAt upserts the job; scheduling an existing key moves its due time.
func (s *RedisScheduler) ScheduleAt(ctx context.Context, at time.Time, job entities.ScheduledJob) error {
	return s.client.ZAdd(ctx, s.key, redis.Z{Score: float64(at.UnixMilli()), Member: encodeJob(job)}).Err()
}

func (s *RedisScheduler) Claim(ctx context.Context, now time.Time, limit int) ([]Lease, error) {
	token := now.Add(s.lease).UnixMilli()
	members, err := claimScript.Run(ctx, s.client, []string{s.key}, now.UnixMilli(), token, limit).StringSlice()
	if err != nil {
		return nil, err
	}
	leases := make([]Lease, 0, len(members))
	for _, m := range members {
		job, err := decodeJob(m)
		if err != nil {
			s.log.Error("dropping malformed job", zap.String("member", m))
			s.client.ZRem(ctx, s.key, m)
			continue
		}
		leases = append(leases, Lease{Job: job, Token: token})
	}
	return leases, nil
}

func (s *RedisScheduler) Ack(ctx context.Context, lease Lease) error {
	return releaseScript.Run(ctx, s.client, []string{s.key}, encodeJob(lease.Job), lease.Token, "").Err()
}

func (s *RedisScheduler) Retry(ctx context.Context, lease Lease, at time.Time) error {
	return releaseScript.Run(ctx, s.client, []string{s.key}, encodeJob(lease.Job), lease.Token, at.UnixMilli()).Err()
}

// Pending reports how many jobs are waiting, due or not.
func (s *RedisScheduler) Pending(ctx context.Context) (int64, error) {
	return s.client.ZCard(ctx, s.key).Result()
}
