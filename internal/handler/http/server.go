package http

import (
	"context"
	"net/http"

	"Shortlink-Web/internal/domain"
	"Shortlink-Web/internal/identity"
	"Shortlink-Web/internal/view"

	"go.uber.org/zap"
)

// Backend собирает три операции внешнего API сокращения ссылок
type Backend interface {
	CreateShortLink(ctx context.Context, id domain.Identity, rawURL, customAlias string) (*domain.ShortLink, error)
	ListLinks(ctx context.Context, id domain.Identity) []domain.Link
	FetchAnalytics(ctx context.Context, id domain.Identity, shortCode string) (*domain.AnalyticsSnapshot, error)
	Ping(ctx context.Context) error
	BaseURL() string
}

// Server HTTP сервер с обработчиками
type Server struct {
	pagesHandler  *PagesHandler
	apiHandler    *APIHandler
	authHandler   *AuthHandler
	healthHandler *HealthHandler
	middleware    *identity.Middleware
	log           *zap.Logger
}

// NewServer создает новый HTTP сервер
func NewServer(
	backend Backend,
	renderer *view.Renderer,
	middleware *identity.Middleware,
	googleClientID string,
	credentialCookie string,
	log *zap.Logger,
) *Server {
	// Создаем handlers
	pagesHandler := NewPagesHandler(backend, renderer, googleClientID, log)
	apiHandler := NewAPIHandler(backend, log)
	authHandler := NewAuthHandler(credentialCookie, log)
	healthHandler := NewHealthHandler(backend, log)

	return &Server{
		pagesHandler:  pagesHandler,
		apiHandler:    apiHandler,
		authHandler:   authHandler,
		healthHandler: healthHandler,
		middleware:    middleware,
		log:           log,
	}
}

// SetupRoutes настраивает маршруты
func (s *Server) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Health checks (без identity)
	mux.HandleFunc("/health", s.healthHandler.Health)
	mux.HandleFunc("/ready", s.healthHandler.Ready)
	mux.HandleFunc("/metrics", s.healthHandler.Metrics)

	// Static assets
	mux.Handle("/static/", view.StaticHandler())

	// JSON endpoints, используемые скриптами страниц
	mux.HandleFunc("/api/shorten", s.withCORS(s.withIdentity(s.apiHandler.Shorten)))
	mux.HandleFunc("/api/urls", s.withCORS(s.withIdentity(s.apiHandler.ListURLs)))
	mux.HandleFunc("/api/analytics/", s.withCORS(s.withIdentity(s.apiHandler.Analytics)))

	// Auth endpoints (sign-in callback и sign-out)
	mux.HandleFunc("/auth/session", s.authHandler.CreateSession)
	mux.HandleFunc("/auth/signout", s.authHandler.SignOut)

	// Pages
	mux.HandleFunc("/shorten", s.withIdentity(s.pagesHandler.Shorten))
	mux.HandleFunc("/analytics", s.withIdentity(s.pagesHandler.Analytics))
	mux.HandleFunc("/", s.withIdentity(s.pagesHandler.Home))

	return mux
}

// withIdentity разрешает identity запроса и кладет ее в контекст
func (s *Server) withIdentity(handler http.HandlerFunc) http.HandlerFunc {
	return s.middleware.Attach(handler)
}

// withCORS добавляет CORS headers к обработчику
func (s *Server) withCORS(handler http.HandlerFunc) http.HandlerFunc {
	return s.middleware.CORS(handler)
}
