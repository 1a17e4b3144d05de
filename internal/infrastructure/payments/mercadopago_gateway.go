package payments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"

	"oficina_prime/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway captures the charge for a completed service order.
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) approves everything
// locally so the shop can run without an account.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Info().Msg("payment gateway mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Warn().Msg("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed creating mercado pago sdk config")
		return nil, err
	}
	log.Info().Msg("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, reference, description string, amount float64) (providerPaymentID string, providerStatus string, err error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Info().
			Str("reference", reference).
			Str("provider_payment_id", id).
			Float64("amount", amount).
			Msg("mock payment approved")
		return id, "approved", nil
	}

	if g == nil || g.client == nil {
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: amount,
		Description:       description,
		ExternalReference: reference,
		PaymentMethodID:   getenvDefault("MERCADOPAGO_PAYMENT_METHOD", "pix"),
		Payer: &payment.PayerRequest{
			Email: getenvDefault("MERCADOPAGO_PAYER_EMAIL", "oficina@example.com"),
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("reference", reference).Msg("mercado pago create failed")
		return "", "", err
	}

	log.Info().
		Str("reference", reference).
		Int("provider_payment_id", resp.ID).
		Str("provider_status", resp.Status).
		Msg("payment created")

	return fmt.Sprintf("%d", resp.ID), resp.Status, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
