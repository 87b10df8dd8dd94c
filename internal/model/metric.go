package model

// MetricRow is a single dated observation of a named metric for an artist
// on a given platform. PlatformID and Value are pointers because the
// backend serializes absent platforms and NULL values as JSON null.
type MetricRow struct {
	ArtistMetricID int      `json:"artistMetricId"`
	MetricTypeID   int      `json:"metricTypeId"`
	MetricTypeName string   `json:"metricTypeName,omitempty"`
	MetricCode     string   `json:"metricCode,omitempty"`
	GroupName      string   `json:"groupName,omitempty"`
	PlatformID     *int     `json:"platformId"`
	PlatformName   string   `json:"platformName,omitempty"`
	PlatformCode   string   `json:"platformCode,omitempty"`
	MetricDate     string   `json:"metricDate,omitempty"`
	Value          *float64 `json:"value"`
}

// Amount returns the observation value, treating NULL as zero.
func (r MetricRow) Amount() float64 {
	if r.Value == nil {
		return 0
	}
	return *r.Value
}

// Platform returns the platform identifier, with 0 standing in for rows
// not attributed to any platform.
func (r MetricRow) Platform() int {
	if r.PlatformID == nil {
		return 0
	}
	return *r.PlatformID
}

// MetricTypeFollowers is the well-known metric type id for follower counts,
// used by the followers view to filter rows.
const MetricTypeFollowers = 1

// MetricType is reference data for the metric form's type selector.
type MetricType struct {
	MetricTypeID int    `json:"MetricTypeId"`
	Name         string `json:"Name"`
	Code         string `json:"Code"`
	GroupName    string `json:"GroupName"`
	Unit         string `json:"Unit,omitempty"`
}

// Platform is reference data naming where metrics are gathered from.
type Platform struct {
	PlatformID int    `json:"PlatformId"`
	Name       string `json:"Name"`
	Code       string `json:"Code"`
}

// MetricSummary maps metric codes (followers, views, streams, ...) to their
// aggregated value. NULLs from the backend have already been dropped.
type MetricSummary map[string]float64

// TotalReach is the headline summary-card number: followers + views + streams.
// Missing codes contribute zero.
func (s MetricSummary) TotalReach() float64 {
	return s["followers"] + s["views"] + s["streams"]
}

// MetricPoint is one point of a metric time series.
type MetricPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Amount returns the point's value, treating NULL as zero.
func (p MetricPoint) Amount() float64 {
	if p.Value == nil {
		return 0
	}
	return *p.Value
}

// ScrapeDetail is one platform's result from a scrape run.
type ScrapeDetail struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

// ScrapeResult is the response of the follower-scrape trigger.
type ScrapeResult struct {
	Message string         `json:"message"`
	Details []ScrapeDetail `json:"details,omitempty"`
}
