package payments

import (
	"context"
	"time"

	"marketplace_trust/internal/infrastructure/metrics"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("marketplace_trust/payments")

// call wraps one provider call with a span and the gateway metrics.
type call struct {
	span     trace.Span
	m        *metrics.Metrics
	provider string
	op       string
	start    time.Time
}

func startCall(ctx context.Context, m *metrics.Metrics, provider, op string, attrs ...attribute.KeyValue) (context.Context, *call) {
	ctx, span := tracer.Start(ctx, provider+"."+op, trace.WithAttributes(attrs...))
	return ctx, &call{span: span, m: m, provider: provider, op: op, start: time.Now()}
}

func (c *call) end(err error) {
	if err != nil {
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, err.Error())
	}
	c.span.End()
	c.m.ObserveGatewayCall(c.provider, c.op, err, time.Since(c.start))
}

// toMinorUnits converts a currency amount to cents.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func fromMinorUnits(v int64) decimal.Decimal {
	return decimal.New(v, -2)
}
