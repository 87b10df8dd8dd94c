package model

// DashboardMetrics bundles the summary values and the per-code time series
// returned by the consolidated dashboard endpoint.
type DashboardMetrics struct {
	Summary MetricSummary            `json:"summary"`
	Series  map[string][]MetricPoint `json:"series"`
}

// Dashboard is the consolidated payload for one artist: profile, photo
// gallery, recent activities, social links, and metrics in a single fetch.
type Dashboard struct {
	Profile    Artist           `json:"profile"`
	Photos     []Photo          `json:"photos"`
	Activities []Activity       `json:"activities"`
	Sources    []SocialLink     `json:"sources"`
	Metrics    DashboardMetrics `json:"metrics"`
}
