package http

import (
	"errors"
	"net/http"
	"time"

	"Shortlink-Web/internal/analytics"
	"Shortlink-Web/internal/apiclient"
	"Shortlink-Web/internal/domain"
	"Shortlink-Web/internal/identity"
	"Shortlink-Web/internal/view"

	"go.uber.org/zap"
)

// PagesHandler renders the server-side pages: home (shorten form plus
// dashboard) and analytics.
type PagesHandler struct {
	backend        Backend
	renderer       *view.Renderer
	googleClientID string
	log            *zap.Logger
}

// NewPagesHandler создает новый обработчик страниц
func NewPagesHandler(backend Backend, renderer *view.Renderer, googleClientID string, log *zap.Logger) *PagesHandler {
	return &PagesHandler{
		backend:        backend,
		renderer:       renderer,
		googleClientID: googleClientID,
		log:            log,
	}
}

// Home renders the home page with the visitor's dashboard.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	id, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.renderHome(w, r, id, view.HomePage{}, http.StatusOK)
}

// Shorten handles the shorten form submission and re-renders home with
// either the created short link or a blocking error notice.
func (h *PagesHandler) Shorten(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	id, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderHome(w, r, id, view.HomePage{ErrorMessage: "Invalid form submission"}, http.StatusBadRequest)
		return
	}

	rawURL := r.PostFormValue("url")
	customAlias := r.PostFormValue("custom_alias")

	link, err := h.backend.CreateShortLink(r.Context(), id, rawURL, customAlias)
	if err != nil {
		page := view.HomePage{
			ErrorMessage: userMessage(err),
			FormURL:      rawURL,
			FormAlias:    customAlias,
		}
		h.renderHome(w, r, id, page, statusFor(err))
		return
	}

	h.renderHome(w, r, id, view.HomePage{Result: &view.ShortenResult{ShortURL: link.ShortURL}}, http.StatusOK)
}

// Analytics renders the analytics page for the short code named by the
// required "code" query parameter; without it the visitor is sent home.
func (h *PagesHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	id, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	snapshot, err := h.backend.FetchAnalytics(r.Context(), id, code)
	if err != nil {
		// The page has no other content without the snapshot, so the error
		// is surfaced as a blocking notice.
		h.log.Error("failed to fetch analytics", zap.String("short_code", code), zap.Error(err))
		page := view.AnalyticsPage{
			ShortCode:    code,
			ShortURL:     h.backend.BaseURL() + "/" + code,
			ErrorMessage: "Failed to load analytics data",
		}
		h.renderAnalytics(w, page, http.StatusBadGateway)
		return
	}

	timeline := analytics.NormalizeTimeline(time.Now(), snapshot.Timeline)
	page := view.BuildAnalyticsPage(code, h.backend.BaseURL(), snapshot, timeline)
	h.renderAnalytics(w, page, http.StatusOK)
}

// renderHome fills in the dashboard and shared page state and writes the
// home page.
func (h *PagesHandler) renderHome(w http.ResponseWriter, r *http.Request, id domain.Identity, page view.HomePage, status int) {
	links := h.backend.ListLinks(r.Context(), id)
	page.Dashboard = view.BuildDashboard(links, h.backend.BaseURL())
	page.GoogleClientID = h.googleClientID
	if id.IsAuthenticated() {
		page.User = &view.UserBadge{
			Name:       id.DisplayName,
			PictureURL: id.PictureURL,
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Home(w, page); err != nil {
		h.log.Error("failed to render home page", zap.Error(err))
	}
}

func (h *PagesHandler) renderAnalytics(w http.ResponseWriter, page view.AnalyticsPage, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Analytics(w, page); err != nil {
		h.log.Error("failed to render analytics page", zap.Error(err))
	}
}

// userMessage maps client errors to the text shown in the blocking notice.
func userMessage(err error) string {
	var validationErr *apiclient.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong"
}

func statusFor(err error) int {
	var validationErr *apiclient.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
