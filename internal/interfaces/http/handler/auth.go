package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/recoffee/backend/internal/application/identity"
)

// AuthHandler handles the Kakao login callback
type AuthHandler struct {
	BaseHandler
	oauthService *appidentity.OAuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(oauthService *appidentity.OAuthService) *AuthHandler {
	return &AuthHandler{oauthService: oauthService}
}

// KakaoCallback exchanges the authorization code for a token set and
// returns it unchanged. Provider failures keep the provider's status.
// GET /api/login/kakao/oauth?code=
func (h *AuthHandler) KakaoCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		h.BadRequest(c, "Query parameter 'code' is required")
		return
	}

	token, err := h.oauthService.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, token)
}
