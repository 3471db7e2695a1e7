// Package view shapes already-fetched data into renderable page models and
// renders them with embedded HTML templates. All data shaping happens here,
// in plain functions; the templates only consume precomputed fields.
package view

import (
	"net/url"

	"Shortlink-Web/internal/analytics"
	"Shortlink-Web/internal/domain"
)

// maxDisplayURLLen bounds the original-URL column in the dashboard table.
const maxDisplayURLLen = 60

// UserBadge is the signed-in header state: name and avatar.
type UserBadge struct {
	Name       string
	PictureURL string
}

// LinkRow is one dashboard table row.
type LinkRow struct {
	ShortCode     string
	ShortURL      string // fully qualified, used by the copy action
	OriginalURL   string // full URL, used as the row's title attribute
	DisplayURL    string // truncated for display
	Clicks        int64
	CreatedAt     string // localized date
	AnalyticsPath string
}

// Dashboard is the per-user link list. Empty is a distinct state from
// loading or error: it means the fetch succeeded and returned nothing.
type Dashboard struct {
	Rows  []LinkRow
	Empty bool
}

// BuildDashboard turns the fetched link records into table rows, preserving
// server order.
func BuildDashboard(links []domain.Link, shortBaseURL string) Dashboard {
	if len(links) == 0 {
		return Dashboard{Empty: true}
	}

	rows := make([]LinkRow, 0, len(links))
	for _, link := range links {
		rows = append(rows, LinkRow{
			ShortCode:     link.ShortCode,
			ShortURL:      shortBaseURL + "/" + link.ShortCode,
			OriginalURL:   link.OriginalURL,
			DisplayURL:    truncate(link.OriginalURL, maxDisplayURLLen),
			Clicks:        link.Clicks,
			CreatedAt:     link.CreatedAt.Format("02.01.2006"),
			AnalyticsPath: "/analytics?code=" + url.QueryEscape(link.ShortCode),
		})
	}

	return Dashboard{Rows: rows}
}

// ChartBar is one bar of a server-rendered chart: label, raw count and the
// bar width as a percentage of the series maximum.
type ChartBar struct {
	Label   string
	Count   int64
	Percent float64
}

// ChartSeries is one chart's data. Each series falls back to its empty state
// independently of the others.
type ChartSeries struct {
	Bars  []ChartBar
	Empty bool
}

func buildSeries(bars []ChartBar) ChartSeries {
	if len(bars) == 0 {
		return ChartSeries{Empty: true}
	}

	var max int64
	for _, b := range bars {
		if b.Count > max {
			max = b.Count
		}
	}
	for i := range bars {
		if max > 0 {
			bars[i].Percent = float64(bars[i].Count) / float64(max) * 100
		}
	}

	return ChartSeries{Bars: bars}
}

// AnalyticsPage is the full analytics view for one short code.
type AnalyticsPage struct {
	ShortCode string
	ShortURL  string
	Summary   analytics.Summary
	Timeline  ChartSeries
	Devices   ChartSeries
	Browsers  ChartSeries
	Countries ChartSeries
	Referrers ChartSeries
	// ErrorMessage replaces the whole dashboard with a blocking notice:
	// without the snapshot the page has nothing else to show.
	ErrorMessage string
}

// BuildAnalyticsPage shapes the snapshot and the normalized timeline into
// the analytics view.
func BuildAnalyticsPage(shortCode, shortBaseURL string, snapshot *domain.AnalyticsSnapshot, timeline []domain.DateCount) AnalyticsPage {
	page := AnalyticsPage{
		ShortCode: shortCode,
		ShortURL:  shortBaseURL + "/" + shortCode,
		Summary:   analytics.Summarize(snapshot),
	}
	if snapshot == nil {
		return page
	}

	timelineBars := make([]ChartBar, 0, len(timeline))
	for _, t := range timeline {
		timelineBars = append(timelineBars, ChartBar{Label: t.Date, Count: t.Count})
	}
	// The timeline is rendered even when all counts are zero: a flat line is
	// informative, unlike an empty device or browser breakdown.
	page.Timeline = buildSeries(timelineBars)

	deviceBars := make([]ChartBar, 0, len(snapshot.Devices))
	for _, d := range snapshot.Devices {
		deviceBars = append(deviceBars, ChartBar{Label: d.DeviceType, Count: d.Count})
	}
	page.Devices = buildSeries(deviceBars)

	browserBars := make([]ChartBar, 0, len(snapshot.Browsers))
	for _, b := range snapshot.Browsers {
		browserBars = append(browserBars, ChartBar{Label: b.Browser, Count: b.Count})
	}
	page.Browsers = buildSeries(browserBars)

	countryBars := make([]ChartBar, 0, len(snapshot.Countries))
	for _, c := range snapshot.Countries {
		countryBars = append(countryBars, ChartBar{Label: c.Country, Count: c.Count})
	}
	page.Countries = buildSeries(countryBars)

	referrerBars := make([]ChartBar, 0, len(snapshot.Referrers))
	for _, r := range snapshot.Referrers {
		referrerBars = append(referrerBars, ChartBar{Label: r.Referrer, Count: r.Count})
	}
	page.Referrers = buildSeries(referrerBars)

	return page
}

// ShortenResult is the success block shown after creating a link.
type ShortenResult struct {
	ShortURL string
}

// HomePage is the home view: shorten form state, sign-in state and the
// dashboard.
type HomePage struct {
	GoogleClientID string
	User           *UserBadge // nil when anonymous
	Dashboard      Dashboard
	Result         *ShortenResult // nil unless a link was just created
	ErrorMessage   string         // blocking notice for validation/creation failures
	FormURL        string         // submitted values, echoed back on error
	FormAlias      string
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
