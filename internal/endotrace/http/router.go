package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
	"github.com/clinsuite/endotrace/pkg/httpx"
	"github.com/clinsuite/endotrace/pkg/slogx"

	_ "github.com/clinsuite/endotrace/api/endotrace" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	UserService      *service.UserService
	EndoscopeService *service.EndoscopeService
	ReportService    *service.ReportService
	ReportingService *service.ReportingService
	Notifier         *service.Notifier
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Session resolution sits inside the chain so every handler sees the
	// identity; the per-route Authorize guards do the actual gating.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.middlewares = append(r.middlewares, SessionMiddleware(r.AuthService))

	r.registerAuth()
	r.registerUsers()
	r.registerEndoscopes()
	r.registerReports()
	r.registerDashboard()
	r.registerArchives()
	r.registerAlerts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			EndoTrace API
//	@version		0.1.0
//	@description	Role-gated traceability service for endoscope inventory and sterilization reports.
//	@description
//	@description				Authentication uses an opaque session cookie issued by POST /v1/login.
//	@description				Roles: admin (user management), biomedical (inventory), sterilisation (reports).
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /login - strict rate limit by IP + username to slow brute force
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndBodyField(httpx.StrictLimit, "username"),
		),
	)

	logoutHandler := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	sessionHandler := &SessionHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /v1/session",
		httpx.Chain(sessionHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("PATCH /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("DELETE /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), httpx.RateLimitByIP(httpx.ModerateLimit)))
}

func (r *Router) registerEndoscopes() {
	h := &EndoscopesHandler{EndoscopeService: r.EndoscopeService}

	r.Mux.Handle("GET /v1/endoscopes",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("POST /v1/endoscopes",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("GET /v1/endoscopes/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("PUT /v1/endoscopes/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("DELETE /v1/endoscopes/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), httpx.RateLimitByIP(httpx.ModerateLimit)))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ReportService: r.ReportService}

	r.Mux.Handle("GET /v1/reports",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("POST /v1/reports",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("GET /v1/reports/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("PUT /v1/reports/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("DELETE /v1/reports/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), httpx.RateLimitByIP(httpx.ModerateLimit)))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{ReportingService: r.ReportingService}
	r.Mux.Handle("GET /v1/dashboard",
		httpx.Chain(h, httpx.RateLimitByIP(httpx.LenientLimit)))
}

func (r *Router) registerArchives() {
	h := &ArchivesHandler{
		EndoscopeService: r.EndoscopeService,
		ReportService:    r.ReportService,
	}

	r.Mux.Handle("GET /v1/archives/reports",
		httpx.Chain(http.HandlerFunc(h.HandleReports), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /v1/archives/endoscopes",
		httpx.Chain(http.HandlerFunc(h.HandleEndoscopes), httpx.RateLimitByIP(httpx.LenientLimit)))
}

func (r *Router) registerAlerts() {
	// Strict limit: each request may send an email.
	h := &AlertsHandler{ReportingService: r.ReportingService, Notifier: r.Notifier}
	r.Mux.Handle("POST /v1/alerts/malfunction",
		httpx.Chain(h, httpx.RateLimitByIP(httpx.StrictLimit)))
}

func (r *Router) registerSystem() {
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
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
