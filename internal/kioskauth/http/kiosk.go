package http

import (
	"net/http"

	"github.com/posturekit/kioskauth/internal/kioskauth/service"
	"github.com/posturekit/kioskauth/pkg/httpx"
	"github.com/posturekit/kioskauth/pkg/slogx"
)

// KioskHandler serves the kiosk-facing half of the pairing flow.
type KioskHandler struct {
	SessionService *service.SessionService
}

type kioskLoginRequest struct {
	KioskID string `json:"kiosk_id"`
}

type kioskLoginResponse struct {
	SessionKey string `json:"session_key"`
}

// HandleLogin creates a pairing session for a kiosk terminal.
//
//	@Summary		Create a kiosk session
//	@Description	Mints a new pairing session for the kiosk and returns its session key, which the kiosk renders as a QR code.
//	@Tags			Kiosk
//	@Accept			json
//	@Produce		json
//	@Param			request	body		kioskLoginRequest	true	"Kiosk identifier"
//	@Success		200		{object}	kioskLoginResponse	"session_key"
//	@Failure		400		{object}	APIError			"kiosk_id_required"
//	@Failure		500		{object}	APIError			"server_error"
//	@Router			/v1/kiosk/login [post].
func (h *KioskHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req kioskLoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.KioskID == "" {
		ErrKioskIDRequired.WriteError(w)
		return
	}

	sessionKey, err := h.SessionService.Create(ctx, req.KioskID)
	if err != nil {
		log.Error("session create failed", "kiosk_id", req.KioskID, "err", err)
		ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, kioskLoginResponse{SessionKey: sessionKey})
}

type kioskLoginIDRequest struct {
	SessionKey  string `json:"session_key"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// HandleLoginID pairs a user into the session with phone number and password,
// for users without the mobile app.
//
//	@Summary		Pair by phone number and password
//	@Description	Verifies the credentials and binds the user into the kiosk session. The session stays unbound when verification fails.
//	@Tags			Kiosk
//	@Accept			json
//	@Produce		json
//	@Param			request	body		kioskLoginIDRequest	true	"Session key and credentials"
//	@Success		200		{object}	MessageResponse		"login_success"
//	@Failure		400		{object}	APIError			"session_key_required / credentials_required"
//	@Failure		401		{object}	APIError			"user_not_found / incorrect_password"
//	@Failure		404		{object}	APIError			"session_key_not_found"
//	@Router			/v1/kiosk/login-id [post].
func (h *KioskHandler) HandleLoginID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req kioskLoginIDRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		ErrSessionKeyRequired.WriteError(w)
		return
	}
	if req.SessionKey == "" {
		ErrSessionKeyRequired.WriteError(w)
		return
	}
	if req.PhoneNumber == "" || req.Password == "" {
		ErrCredentialsRequired.WriteError(w)
		return
	}

	if err := h.SessionService.BindPassword(ctx, req.SessionKey, req.PhoneNumber, req.Password); err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("password bind failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "login_success"})
}

// HandleUserInfo resolves the identity bound into a session. Kiosks poll this
// until the pairing completes.
//
//	@Summary		Resolve the paired user
//	@Description	Returns the identity bound into the session, or user_not_bound while pairing is still in progress.
//	@Tags			Kiosk
//	@Produce		json
//	@Param			session_key	query		string		true	"Session key"
//	@Success		200			{object}	UserInfo	"Paired user information"
//	@Failure		400			{object}	APIError	"session_key_required"
//	@Failure		404			{object}	APIError	"session_key_not_found / user_not_bound"
//	@Router			/v1/kiosk/userinfo [get].
func (h *KioskHandler) HandleUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sessionKey := r.URL.Query().Get("session_key")
	if sessionKey == "" {
		ErrSessionKeyRequired.WriteError(w)
		return
	}

	user, err := h.SessionService.Resolve(ctx, sessionKey)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("session resolve failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newUserInfo(user))
}

type kioskEndRequest struct {
	SessionKey string `json:"session_key"`
}

// HandleEnd closes a kiosk session.
//
//	@Summary		End a kiosk session
//	@Description	Deletes the session immediately. Any later resolve for the same key fails.
//	@Tags			Kiosk
//	@Accept			json
//	@Produce		json
//	@Param			request	body		kioskEndRequest	true	"Session key"
//	@Success		200		{object}	MessageResponse	"session_closed"
//	@Failure		400		{object}	APIError		"session_key_required"
//	@Failure		404		{object}	APIError		"session_key_not_found"
//	@Router			/v1/kiosk/end [post].
func (h *KioskHandler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req kioskEndRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.SessionKey == "" {
		ErrSessionKeyRequired.WriteError(w)
		return
	}

	if err := h.SessionService.End(ctx, req.SessionKey); err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("session end failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "session_closed"})
}

type kioskRedeemRequest struct {
	SessionKey string `json:"session_key"`
}

// HandleRedeem is the one-shot token issue for a bound session.
//
//	@Summary		Redeem a bound session for tokens
//	@Description	Issues an access/refresh token pair for the user bound into the session. Each session can be redeemed at most once; a second call returns no_data.
//	@Tags			Kiosk
//	@Accept			json
//	@Produce		json
//	@Param			request	body		kioskRedeemRequest	true	"Session key"
//	@Success		200		{object}	TokenResponse		"user_info, jwt_tokens"
//	@Failure		400		{object}	APIError			"session_key_required"
//	@Failure		404		{object}	APIError			"no_data"
//	@Router			/v1/kiosk/redeem [post].
func (h *KioskHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req kioskRedeemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.SessionKey == "" {
		ErrSessionKeyRequired.WriteError(w)
		return
	}

	user, pair, err := h.SessionService.Redeem(ctx, req.SessionKey)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("session redeem failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		UserInfo:  newUserInfo(user),
		JWTTokens: pair,
	})
}
