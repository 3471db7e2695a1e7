package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"Shortlink-Web/internal/domain"

	"go.uber.org/zap"
)

const genericErrorMessage = "Something went wrong"

// Custom aliases: 3-20 characters, letters, digits, hyphen, underscore.
var aliasPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

// Client wraps the three HTTP operations of the external shortening backend.
// Exactly one identity header is attached to every request: X-User-ID for an
// anonymous visitor, Authorization: Bearer for a signed-in one, never both.
// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// New creates a backend API client.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// BaseURL returns the backend base URL, used to build fully qualified short
// links for display.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// shortenRequest структура запроса создания ссылки
type shortenRequest struct {
	URL         string `json:"url"`
	CustomAlias string `json:"custom_alias,omitempty"`
}

// CreateShortLink asks the backend to shorten rawURL, optionally under
// customAlias. Syntactically invalid input fails with *ValidationError
// before any request is issued; a non-success response fails with *APIError.
func (c *Client) CreateShortLink(ctx context.Context, id domain.Identity, rawURL, customAlias string) (*domain.ShortLink, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}
	if customAlias != "" && !aliasPattern.MatchString(customAlias) {
		return nil, &ValidationError{
			Field:   "custom_alias",
			Message: "must be 3-20 characters: letters, digits, hyphens, underscores",
		}
	}

	body, err := json.Marshal(shortenRequest{URL: rawURL, CustomAlias: customAlias})
	if err != nil {
		return nil, fmt.Errorf("failed to encode shorten request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/shorten", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build shorten request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setIdentityHeader(req, id)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{StatusCode: http.StatusBadGateway, Message: genericErrorMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.responseError(resp)
	}

	var link domain.ShortLink
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		c.log.Error("failed to decode shorten response", zap.Error(err))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: genericErrorMessage}
	}

	c.log.Info("created short link",
		zap.String("short_code", link.ShortCode),
		zap.String("identity_kind", string(id.Kind)))

	return &link, nil
}

// ListLinks returns the links previously created under the given identity.
// Every failure degrades silently to an empty list: the dashboard falls back
// to its empty state rather than surfacing an error.
func (c *Client) ListLinks(ctx context.Context, id domain.Identity) []domain.Link {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/urls", nil)
	if err != nil {
		c.log.Error("failed to build list request", zap.Error(err))
		return nil
	}
	setIdentityHeader(req, id)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("failed to fetch links", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("backend rejected links request", zap.Int("status", resp.StatusCode))
		return nil
	}

	var links []domain.Link
	if err := json.NewDecoder(resp.Body).Decode(&links); err != nil {
		c.log.Warn("failed to decode links response", zap.Error(err))
		return nil
	}

	return links
}

// FetchAnalytics returns the click statistics for one short code. Unlike
// ListLinks the error is returned: the analytics page has nothing else to
// show, so the caller surfaces it as a blocking notice.
func (c *Client) FetchAnalytics(ctx context.Context, id domain.Identity, shortCode string) (*domain.AnalyticsSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/analytics/"+url.PathEscape(shortCode), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build analytics request: %w", err)
	}
	setIdentityHeader(req, id)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{StatusCode: http.StatusBadGateway, Message: "Failed to load analytics data"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.responseError(resp)
	}

	var snapshot domain.AnalyticsSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		c.log.Error("failed to decode analytics response", zap.Error(err))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "Failed to load analytics data"}
	}

	return &snapshot, nil
}

// Ping checks whether the backend is reachable, for health probes.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/urls", nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}
	req.Header.Set("X-User-ID", "health-check")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("backend unhealthy: status %d", resp.StatusCode)
	}

	return nil
}

// responseError extracts the server-provided error message when the body has
// one, falling back to a generic message.
func (c *Client) responseError(resp *http.Response) *APIError {
	var body struct {
		Error string `json:"error"`
	}
	message := genericErrorMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	c.log.Debug("backend returned error",
		zap.Int("status", resp.StatusCode),
		zap.String("message", message))

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

// setIdentityHeader attaches the single identity header: the Bearer
// credential for a signed-in session, the anonymous id otherwise.
func setIdentityHeader(req *http.Request, id domain.Identity) {
	if id.IsAuthenticated() && id.Token != "" {
		req.Header.Set("Authorization", "Bearer "+id.Token)
		return
	}
	req.Header.Set("X-User-ID", id.ID)
}

// validateURL checks that rawURL is a syntactically valid http/https URL.
func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return &ValidationError{
			Field:   "url",
			Message: "must be a valid http:// or https:// URL",
		}
	}
	return nil
}
