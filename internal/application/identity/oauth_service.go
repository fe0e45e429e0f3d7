package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/recoffee/backend/internal/domain/identity"
	"github.com/recoffee/backend/internal/domain/shared"
	"github.com/recoffee/backend/internal/infrastructure/logger"
	"github.com/recoffee/backend/internal/infrastructure/telemetry"
)

// ErrMissingCode is returned when no authorization code was supplied
var ErrMissingCode = shared.NewDomainError("INVALID_INPUT", "Authorization code is required")

// OAuthService relays authorization codes to the identity provider
type OAuthService struct {
	exchanger identity.TokenExchanger
	metrics   *telemetry.CollectionMetrics
}

// NewOAuthService creates a new OAuth service
func NewOAuthService(exchanger identity.TokenExchanger) *OAuthService {
	return &OAuthService{exchanger: exchanger}
}

// SetCollectionMetrics sets the metrics collector
func (s *OAuthService) SetCollectionMetrics(m *telemetry.CollectionMetrics) {
	s.metrics = m
}

// ExchangeCode trades code for a token set. Exactly one provider call is
// made; failures are not retried.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (*identity.OAuthToken, error) {
	if code == "" {
		return nil, ErrMissingCode
	}

	token, err := s.exchanger.ExchangeCode(ctx, code)
	if err != nil {
		outcome := telemetry.OutcomeFailed
		var gwErr *shared.GatewayError
		if errors.As(err, &gwErr) && gwErr.Err == nil {
			outcome = telemetry.OutcomeRejected
		}
		s.record(ctx, outcome)
		logger.L(ctx).Warn("Authorization code exchange failed",
			zap.String("outcome", outcome),
			zap.Error(err),
		)
		return nil, err
	}

	s.record(ctx, telemetry.OutcomeSuccess)
	return token, nil
}

func (s *OAuthService) record(ctx context.Context, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordTokenExchange(ctx, outcome)
	}
}
