package domain

// CountryCount is a per-country click total. The backend returns countries
// pre-sorted descending by count.
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// DeviceCount is a per-device-type click total.
type DeviceCount struct {
	DeviceType string `json:"device_type"`
	Count      int64  `json:"count"`
}

// BrowserCount is a per-browser click total, pre-sorted like countries.
type BrowserCount struct {
	Browser string `json:"browser"`
	Count   int64  `json:"count"`
}

// DateCount is a per-calendar-date click total. Date is an ISO-8601 date
// string (YYYY-MM-DD).
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ReferrerCount is a per-referrer click total.
type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

// AnalyticsSnapshot is the full click-statistics payload for one short code.
// It is transient: re-fetched on every analytics page load, never cached.
type AnalyticsSnapshot struct {
	TotalClicks int64           `json:"total_clicks"`
	Countries   []CountryCount  `json:"countries"`
	Devices     []DeviceCount   `json:"devices"`
	Browsers    []BrowserCount  `json:"browsers"`
	Timeline    []DateCount     `json:"timeline"`
	Referrers   []ReferrerCount `json:"referrers"`
}
