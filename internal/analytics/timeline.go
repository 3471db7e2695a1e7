package analytics

import (
	"time"

	"Shortlink-Web/internal/domain"
)

// TimelineWindowDays is the fixed trailing window the timeline chart covers.
const TimelineWindowDays = 30

const dateLayout = "2006-01-02"

// NormalizeTimeline reconciles the sparse per-date counts reported by the
// backend with the full 30-day calendar window ending at now (inclusive).
// The result always has exactly TimelineWindowDays entries in ascending date
// order: dates the backend did not report get count 0, dates outside the
// window are ignored, and on duplicate input dates the last value wins.
// Dates are formatted in now's location, matching what the visitor sees.
func NormalizeTimeline(now time.Time, raw []domain.DateCount) []domain.DateCount {
	counts := make(map[string]int64, len(raw))
	for _, entry := range raw {
		counts[entry.Date] = entry.Count
	}

	start := now.AddDate(0, 0, -(TimelineWindowDays - 1))
	timeline := make([]domain.DateCount, 0, TimelineWindowDays)
	for i := 0; i < TimelineWindowDays; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		timeline = append(timeline, domain.DateCount{
			Date:  date,
			Count: counts[date],
		})
	}

	return timeline
}
