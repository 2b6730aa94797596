package repository

import (
	"errors"
	"os"
	"time"

	"marketplace_trust/internal/domain/failure"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// sortableTime keeps a fixed width so sort keys order lexicographically.
const sortableTime = "2006-01-02T15:04:05.000000000Z"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(sortableTime)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func formatDecimal(d decimal.Decimal) string {
	return d.String()
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// conditionalFailure maps a failed DynamoDB condition to the failure
// sentinels. The old item tells a stale status apart from a missing record.
func conditionalFailure(err error) (error, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		if len(cfe.Item) == 0 {
			return failure.ErrNotFound, true
		}
		return failure.ErrConditionFailed, true
	}
	return err, false
}

// cancelledTransaction reports the first conditional failure of a cancelled
// transaction along with the index of the offending write.
func cancelledTransaction(err error) (int, types.CancellationReason, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return -1, types.CancellationReason{}, false
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return i, reason, true
		}
	}
	return -1, types.CancellationReason{}, false
}
