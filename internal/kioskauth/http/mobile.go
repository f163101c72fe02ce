package http

import (
	"net/http"

	"github.com/posturekit/kioskauth/internal/kioskauth/service"
	"github.com/posturekit/kioskauth/pkg/httpx"
	"github.com/posturekit/kioskauth/pkg/slogx"
)

// MobileHandler serves the phone-facing half of the pairing flow.
type MobileHandler struct {
	ExchangeService *service.ExchangeService
	VerifyService   *service.VerifyService
	SessionService  *service.SessionService
}

type mobileLoginRequest struct {
	MobileUID string `json:"mobile_uid"`
}

// HandleLogin exchanges a verified mobile uid for tokens.
//
//	@Summary		Mobile token exchange
//	@Description	Consumes the pending verification for the given mobile uid and returns the user plus a token pair. Guest accounts are provisioned on first contact. Each verification can be exchanged at most once.
//	@Tags			Mobile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mobileLoginRequest	true	"Mobile device uid"
//	@Success		200		{object}	TokenResponse		"user_info, jwt_tokens"
//	@Failure		400		{object}	APIError			"mobile_uid_required"
//	@Failure		401		{object}	APIError			"unauthorized"
//	@Router			/v1/mobile/login [post].
func (h *MobileHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req mobileLoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.MobileUID == "" {
		ErrMobileUIDRequired.WriteError(w)
		return
	}

	user, pair, err := h.ExchangeService.ExchangeMobileUID(ctx, req.MobileUID)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("mobile exchange failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		UserInfo:  newUserInfo(user),
		JWTTokens: pair,
	})
}

type mobileLoginQRRequest struct {
	SessionKey string `json:"session_key"`
}

type mobileLoginQRResponse struct {
	SessionKey string `json:"session_key"`
}

// HandleLoginQR binds the authenticated user into a kiosk session after the
// phone scanned its QR code.
//
//	@Summary		Pair by QR scan
//	@Description	Binds the caller (identified by the Bearer token) into the scanned kiosk session. Rebinding overwrites any previously bound user.
//	@Tags			Mobile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mobileLoginQRRequest	true	"Scanned session key"
//	@Success		200		{object}	mobileLoginQRResponse	"session_key"
//	@Failure		400		{object}	APIError				"session_key_required"
//	@Failure		401		{object}	APIError				"Invalid or missing access token"
//	@Failure		404		{object}	APIError				"session_key_not_found"
//	@Router			/v1/mobile/login-qr [post].
func (h *MobileHandler) HandleLoginQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromCtx(ctx)
	if !ok {
		ErrUnauthorized.WriteError(w)
		return
	}

	var req mobileLoginQRRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.SessionKey == "" {
		ErrSessionKeyRequired.WriteError(w)
		return
	}

	if err := h.SessionService.BindQR(ctx, req.SessionKey, userID); err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("qr bind failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mobileLoginQRResponse{SessionKey: req.SessionKey})
}

type requestVerifyRequest struct {
	Code string `json:"code"`
}

type requestVerifyResponse struct {
	PhoneNumber string `json:"phone_number"`
}

// HandleRequestVerify blocks until the SMS-gateway mail carrying the given
// code arrives, then returns the sender's phone number.
//
//	@Summary		Wait for phone verification
//	@Description	The app sends an SMS with the code to the gateway number, then calls this endpoint. It blocks until the forwarded mail arrives and answers with the verified phone number, or times out.
//	@Tags			Mobile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		requestVerifyRequest	true	"Verification code the app texted"
//	@Success		200		{object}	requestVerifyResponse	"phone_number"
//	@Failure		400		{object}	APIError				"code_required"
//	@Failure		408		{object}	APIError				"verify_timeout"
//	@Router			/v1/mobile/request-verify [post].
func (h *MobileHandler) HandleRequestVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req requestVerifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Code == "" {
		ErrCodeRequired.WriteError(w)
		return
	}

	phoneNumber, err := h.VerifyService.WaitForCode(ctx, req.Code)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("verification wait failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, requestVerifyResponse{PhoneNumber: phoneNumber})
}
