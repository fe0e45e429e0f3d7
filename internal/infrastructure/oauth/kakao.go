// Package oauth exchanges Kakao authorization codes for access tokens.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/recoffee/backend/internal/domain/identity"
	"github.com/recoffee/backend/internal/domain/shared"
)

const (
	grantTypeAuthorizationCode = "authorization_code"

	// MsgTokenExchangeFailed is relayed to clients whenever the exchange fails
	MsgTokenExchangeFailed = "Failed to obtain access token"
)

// Configuration errors
var (
	ErrMissingTokenURL = errors.New("oauth: token url is required")
	ErrMissingClientID = errors.New("oauth: client id is required")
	ErrInvalidTimeout  = errors.New("oauth: timeout must be positive")
)

// KakaoConfig configures the token endpoint call.
type KakaoConfig struct {
	TokenURL    string
	ClientID    string
	RedirectURI string
	Timeout     time.Duration
}

// Validate checks the configuration.
func (c *KakaoConfig) Validate() error {
	if c.TokenURL == "" {
		return ErrMissingTokenURL
	}
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// KakaoClient implements identity.TokenExchanger against the Kakao token endpoint.
type KakaoClient struct {
	config     KakaoConfig
	httpClient *http.Client
	logger     *zap.Logger
}

var _ identity.TokenExchanger = (*KakaoClient)(nil)

// NewKakaoClient creates a client whose outbound calls are traced and
// bounded by cfg.Timeout.
func NewKakaoClient(cfg KakaoConfig, logger *zap.Logger) (*KakaoClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &KakaoClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}, nil
}

// ExchangeCode posts the authorization code to the token endpoint. A non-200
// reply is returned as a *shared.GatewayError carrying the provider status;
// transport failures and timeouts carry 502.
func (c *KakaoClient) ExchangeCode(ctx context.Context, code string) (*identity.OAuthToken, error) {
	form := url.Values{}
	form.Set("grant_type", grantTypeAuthorizationCode)
	form.Set("client_id", c.config.ClientID)
	form.Set("redirect_uri", c.config.RedirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("oauth: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Token endpoint unreachable", zap.Error(err))
		return nil, &shared.GatewayError{StatusCode: http.StatusBadGateway, Message: MsgTokenExchangeFailed, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &shared.GatewayError{StatusCode: http.StatusBadGateway, Message: MsgTokenExchangeFailed, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Token endpoint rejected authorization code",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", truncate(body, 512)),
		)
		return nil, &shared.GatewayError{StatusCode: resp.StatusCode, Message: MsgTokenExchangeFailed}
	}

	var token identity.OAuthToken
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, &shared.GatewayError{
			StatusCode: http.StatusBadGateway,
			Message:    MsgTokenExchangeFailed,
			Err:        fmt.Errorf("decode token response: %w", err),
		}
	}
	return &token, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
