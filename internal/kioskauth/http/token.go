package http

import (
	"net/http"

	"github.com/posturekit/kioskauth/pkg/httpx"
	"github.com/posturekit/kioskauth/pkg/jwtx"
)

// TokenHandler refreshes expired access tokens.
type TokenHandler struct {
	Signer *jwtx.Signer
}

type tokenRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenRefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// HandleRefresh mints a new access token from a refresh token.
//
//	@Summary		Refresh an access token
//	@Description	Validates the refresh token and returns a fresh access token for the same user.
//	@Tags			Token
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tokenRefreshRequest		true	"Refresh token"
//	@Success		200		{object}	tokenRefreshResponse	"access_token"
//	@Failure		400		{object}	APIError				"refresh_token_required"
//	@Failure		401		{object}	APIError				"invalid_refresh_token"
//	@Router			/v1/token/refresh [post].
func (h *TokenHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req tokenRefreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.RefreshToken == "" {
		ErrRefreshTokenRequired.WriteError(w)
		return
	}

	accessToken, err := h.Signer.Refresh(req.RefreshToken)
	if err != nil {
		ErrInvalidRefreshToken.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenRefreshResponse{AccessToken: accessToken})
}
