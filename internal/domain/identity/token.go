package identity

import "context"

// OAuthToken is the token set issued by the identity provider in exchange
// for an authorization code. Values are relayed as received.
type OAuthToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
}

// TokenExchanger trades an authorization code for an OAuthToken.
// Provider rejections are reported as *shared.GatewayError.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, code string) (*OAuthToken, error)
}
