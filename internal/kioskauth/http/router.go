package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/service"
	"github.com/posturekit/kioskauth/internal/kioskauth/store"
	"github.com/posturekit/kioskauth/pkg/httpx"
	"github.com/posturekit/kioskauth/pkg/jwtx"
	"github.com/posturekit/kioskauth/pkg/slogx"

	_ "github.com/posturekit/kioskauth/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	SessionService  *service.SessionService
	ExchangeService *service.ExchangeService
	VerifyService   *service.VerifyService
	Signer          *jwtx.Signer
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerKiosk()
	r.registerMobile()
	r.registerToken()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Kiosk Pairing & Authentication API
//	@version		0.1.0
//	@description	Session pairing between kiosk terminals and the mobile app: kiosks mint QR sessions,
//	@description	phones bind into them by scan or by phone-number login, and bound sessions can be
//	@description	redeemed once for a JWT token pair.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerKiosk() {
	h := &KioskHandler{SessionService: r.SessionService}

	// POST /login - moderate rate limit (one per walk-up customer)
	r.Mux.Handle("POST /v1/kiosk/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /login-id - strict rate limit (password attempts)
	r.Mux.Handle("POST /v1/kiosk/login-id",
		httpx.Chain(http.HandlerFunc(h.HandleLoginID),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /userinfo - lenient rate limit (kiosks poll this while pairing)
	r.Mux.Handle("GET /v1/kiosk/userinfo",
		httpx.Chain(http.HandlerFunc(h.HandleUserInfo),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /end - moderate rate limit
	r.Mux.Handle("POST /v1/kiosk/end",
		httpx.Chain(http.HandlerFunc(h.HandleEnd),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /redeem - strict rate limit (token issue)
	r.Mux.Handle("POST /v1/kiosk/redeem",
		httpx.Chain(http.HandlerFunc(h.HandleRedeem),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerMobile() {
	h := &MobileHandler{
		ExchangeService: r.ExchangeService,
		VerifyService:   r.VerifyService,
		SessionService:  r.SessionService,
	}

	// POST /login - strict rate limit (token issue, uid guessing)
	r.Mux.Handle("POST /v1/mobile/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login-qr - requires a valid access token, moderate rate limit
	r.Mux.Handle("POST /v1/mobile/login-qr",
		httpx.Chain(http.HandlerFunc(h.HandleLoginQR),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /request-verify - strict rate limit (each call holds a mailbox
	// connection open until match or timeout)
	r.Mux.Handle("POST /v1/mobile/request-verify",
		httpx.Chain(http.HandlerFunc(h.HandleRequestVerify),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerToken() {
	h := &TokenHandler{Signer: r.Signer}

	// POST /refresh - moderate rate limit
	r.Mux.Handle("POST /v1/token/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
