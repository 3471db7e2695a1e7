package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"Shortlink-Web/internal/analytics"
	"Shortlink-Web/internal/apiclient"
	"Shortlink-Web/internal/identity"

	"go.uber.org/zap"
)

// APIHandler exposes the backend operations as JSON endpoints for the pages'
// scripts. The wire shapes mirror the upstream contract.
type APIHandler struct {
	backend Backend
	log     *zap.Logger
}

// NewAPIHandler создает новый API обработчик
func NewAPIHandler(backend Backend, log *zap.Logger) *APIHandler {
	return &APIHandler{
		backend: backend,
		log:     log,
	}
}

// ShortenRequest структура запроса создания ссылки
type ShortenRequest struct {
	URL         string `json:"url"`
	CustomAlias string `json:"custom_alias,omitempty"`
}

// LinkInfo информация о ссылке
type LinkInfo struct {
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
	Clicks      int64  `json:"clicks"`
	CreatedAt   string `json:"created_at"`
}

// Shorten создает новую короткую ссылку через внешний backend
func (h *APIHandler) Shorten(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := identity.FromContext(r.Context())
	if !ok {
		h.writeError(w, "Identity not found in context", http.StatusInternalServerError)
		return
	}

	var req ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid shorten request", zap.Error(err))
		h.writeError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	link, err := h.backend.CreateShortLink(r.Context(), id, req.URL, req.CustomAlias)
	if err != nil {
		h.writeError(w, userMessage(err), statusFor(err))
		return
	}

	h.writeJSON(w, link, http.StatusCreated)
}

// ListURLs возвращает список ссылок пользователя. Ошибки backend не
// пробрасываются: клиент получает пустой список
func (h *APIHandler) ListURLs(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		h.writeError(w, "Identity not found in context", http.StatusInternalServerError)
		return
	}

	links := h.backend.ListLinks(r.Context(), id)

	// Преобразуем в ответ
	linkInfos := make([]LinkInfo, len(links))
	for i, link := range links {
		linkInfos[i] = LinkInfo{
			ShortCode:   link.ShortCode,
			OriginalURL: link.OriginalURL,
			Clicks:      link.Clicks,
			CreatedAt:   link.CreatedAt.Format(time.RFC3339),
		}
	}

	h.writeJSON(w, linkInfos, http.StatusOK)
}

// Analytics возвращает статистику по короткой ссылке с нормализованным
// timeline (ровно 30 дней без пропусков)
func (h *APIHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	// Извлекаем short code из URL path
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 3 || pathParts[2] == "" {
		h.writeError(w, "Short code is required", http.StatusBadRequest)
		return
	}
	code := pathParts[2]

	id, ok := identity.FromContext(r.Context())
	if !ok {
		h.writeError(w, "Identity not found in context", http.StatusInternalServerError)
		return
	}

	snapshot, err := h.backend.FetchAnalytics(r.Context(), id, code)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			h.writeError(w, apiErr.Message, apiErr.StatusCode)
			return
		}
		h.log.Error("failed to fetch analytics", zap.String("short_code", code), zap.Error(err))
		h.writeError(w, "Failed to load analytics data", http.StatusBadGateway)
		return
	}

	snapshot.Timeline = analytics.NormalizeTimeline(time.Now(), snapshot.Timeline)

	h.writeJSON(w, snapshot, http.StatusOK)
}

// Helper methods

func (h *APIHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		h.log.Error("failed to encode error response", zap.Error(err))
	}
}
