package payments

import (
	"fmt"
	"strings"

	"marketplace_trust/internal/infrastructure/metrics"
	"marketplace_trust/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
	ProviderSandbox     = "sandbox"
)

// Settings selects and configures the payment provider.
type Settings struct {
	Provider         string
	StripeSecretKey  string
	MercadoPagoToken string
	Sandbox          bool
}

// NewGateway builds the configured provider. Sandbox wins when enabled.
func NewGateway(s Settings, log *zap.Logger, m *metrics.Metrics) (interfaces.IPaymentGateway, error) {
	log = log.Named("payment.gateway")
	if s.Sandbox {
		return NewSandboxGateway(log), nil
	}
	switch strings.ToLower(strings.TrimSpace(s.Provider)) {
	case ProviderStripe, "":
		return NewStripeGateway(s.StripeSecretKey, log, m)
	case ProviderMercadoPago:
		return NewMercadoPagoGateway(s.MercadoPagoToken, log, m)
	case ProviderSandbox:
		return NewSandboxGateway(log), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", s.Provider)
	}
}
