package analytics

import "Shortlink-Web/internal/domain"

// NoData is the placeholder shown when a stat has no backing data.
const NoData = "-"

// Summary holds the headline stats of an analytics snapshot, shaped for
// direct display.
type Summary struct {
	TotalClicks int64
	TopCountry  string
	TopDevice   string
	TopBrowser  string
}

// Summarize derives the headline stats from a snapshot. Countries and
// browsers arrive pre-sorted descending by count, so their top entry is the
// first element; devices are not, so the top device is a max-reduction with
// ties resolved by first occurrence.
func Summarize(snapshot *domain.AnalyticsSnapshot) Summary {
	s := Summary{
		TopCountry: NoData,
		TopDevice:  NoData,
		TopBrowser: NoData,
	}
	if snapshot == nil {
		return s
	}

	s.TotalClicks = snapshot.TotalClicks

	if len(snapshot.Countries) > 0 {
		s.TopCountry = snapshot.Countries[0].Country
	}
	if len(snapshot.Browsers) > 0 {
		s.TopBrowser = snapshot.Browsers[0].Browser
	}
	if device, ok := TopDevice(snapshot.Devices); ok {
		s.TopDevice = device
	}

	return s
}

// TopDevice returns the device type with the highest count. On ties the
// first-encountered entry wins.
func TopDevice(devices []domain.DeviceCount) (string, bool) {
	if len(devices) == 0 {
		return "", false
	}

	top := devices[0]
	for _, d := range devices[1:] {
		if d.Count > top.Count {
			top = d
		}
	}

	return top.DeviceType, true
}
