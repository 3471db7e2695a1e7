package identity

import (
	"context"
	"net/http"

	"Shortlink-Web/internal/domain"

	"go.uber.org/zap"
)

// ContextKey тип для ключей контекста
type ContextKey string

const (
	// identityKey ключ для получения identity из контекста
	identityKey ContextKey = "identity"
)

// Middleware разрешает identity для каждого HTTP запроса
type Middleware struct {
	resolver *Resolver
	log      *zap.Logger
}

// NewMiddleware создает новый identity middleware
func NewMiddleware(resolver *Resolver, log *zap.Logger) *Middleware {
	return &Middleware{
		resolver: resolver,
		log:      log,
	}
}

// Attach разрешает identity запроса, кладет ее в контекст и устанавливает
// cookie с новым анонимным id, если он был только что сгенерирован
func (m *Middleware) Attach(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, setCookie := m.resolver.Resolve(r)
		if setCookie != nil {
			http.SetCookie(w, setCookie)
		}

		m.log.Debug("resolved identity",
			zap.String("kind", string(id.Kind)),
			zap.String("id", id.ID))

		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// FromContext извлекает identity из контекста
func FromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}

// CORS middleware для обработки CORS запросов
func (m *Middleware) CORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Список разрешенных origins для разработки
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:8080",
			"http://127.0.0.1:8080",
		}

		// Проверяем origin
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-User-ID, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Обработка preflight OPTIONS запросов
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
}
