package handler

import (
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // token expiry formatting

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/restaurant-table-reservation/internal/config" // app configuration
	"github.com/iliyamo/restaurant-table-reservation/internal/utils"  // helper functions (hashing, token issuing)
)

// AuthHandler issues access tokens to API clients.  There are no user
// accounts in this service; callers such as the dialogue orchestrator
// authenticate with a client id and secret configured in the environment,
// and reservation ownership is tracked by guest contact instead.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type tokenReq struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResp struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Expires     time.Time `json:"expires"`
}

// Token verifies the client credentials and returns a signed access token.
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.ClientID = strings.TrimSpace(req.ClientID)
	if req.ClientID == "" || req.ClientSecret == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "client_id/client_secret required"})
	}
	if req.ClientID != h.Cfg.APIClientID ||
		!utils.VerifyClientSecret(h.Cfg.APIClientSecret, req.ClientSecret) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid client credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.ClientID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{
		AccessToken: access.Token,
		TokenType:   "Bearer",
		Expires:     access.Exp,
	})
}
