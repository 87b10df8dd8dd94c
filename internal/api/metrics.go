package api

import (
	"context"
	"fmt"
	"net/url"

	"artistdesk/internal/model"
)

// MetricSummary returns the latest value per metric code for one
// artist, keyed by code (followers, views, streams, ...).
func (c *Client) MetricSummary(ctx context.Context, artistID int) (model.MetricSummary, error) {
	var summary model.MetricSummary
	path := fmt.Sprintf("/api/metrics/summary/%d", artistID)
	if err := c.Get(ctx, path, &summary); err != nil {
		return nil, fmt.Errorf("loading metric summary for artist %d: %w", artistID, err)
	}
	return summary, nil
}

// MetricSeries returns the dated points for one metric code, ascending
// by date, for charting.
func (c *Client) MetricSeries(ctx context.Context, artistID int, code string) ([]model.MetricPoint, error) {
	var points []model.MetricPoint
	path := fmt.Sprintf(
		"/api/metrics/timeseries/%d?metric=%s", artistID, url.QueryEscape(code),
	)
	if err := c.Get(ctx, path, &points); err != nil {
		return nil, fmt.Errorf("loading %s series for artist %d: %w", code, artistID, err)
	}
	return points, nil
}

// MetricTypes returns the metric type reference list.
func (c *Client) MetricTypes(ctx context.Context) ([]model.MetricType, error) {
	var types []model.MetricType
	if err := c.Get(ctx, "/api/metrics/metrictypes", &types); err != nil {
		return nil, fmt.Errorf("listing metric types: %w", err)
	}
	return types, nil
}

// Platforms returns the platform reference list.
func (c *Client) Platforms(ctx context.Context) ([]model.Platform, error) {
	var platforms []model.Platform
	if err := c.Get(ctx, "/api/metrics/platforms", &platforms); err != nil {
		return nil, fmt.Errorf("listing platforms: %w", err)
	}
	return platforms, nil
}

// MetricRows returns every raw observation recorded for one artist.
func (c *Client) MetricRows(ctx context.Context, artistID int) ([]model.MetricRow, error) {
	var rows []model.MetricRow
	path := fmt.Sprintf("/api/metrics/rows/%d", artistID)
	if err := c.Get(ctx, path, &rows); err != nil {
		return nil, fmt.Errorf("listing metric rows for artist %d: %w", artistID, err)
	}
	return rows, nil
}

// CreateMetricRow records a new observation.
func (c *Client) CreateMetricRow(ctx context.Context, p MetricPayload) (model.MetricRow, error) {
	if err := p.Validate(); err != nil {
		return model.MetricRow{}, err
	}
	var row model.MetricRow
	path := fmt.Sprintf("/api/metrics/rows/%d", p.ArtistID)
	if err := c.Post(ctx, path, p, &row); err != nil {
		return model.MetricRow{}, fmt.Errorf("creating metric row: %w", err)
	}
	return row, nil
}

// UpdateMetricRow overwrites an existing observation.
func (c *Client) UpdateMetricRow(ctx context.Context, metricID int, p MetricPayload) (model.MetricRow, error) {
	if err := p.Validate(); err != nil {
		return model.MetricRow{}, err
	}
	var row model.MetricRow
	path := fmt.Sprintf("/api/metrics/rows/%d/%d", p.ArtistID, metricID)
	if err := c.Put(ctx, path, p, &row); err != nil {
		return model.MetricRow{}, fmt.Errorf("updating metric row %d: %w", metricID, err)
	}
	return row, nil
}

// DeleteMetricRow removes an observation.
func (c *Client) DeleteMetricRow(ctx context.Context, artistID, metricID int) error {
	path := fmt.Sprintf("/api/metrics/rows/%d/%d", artistID, metricID)
	if err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("deleting metric row %d: %w", metricID, err)
	}
	return nil
}

// Scrape asks the server to fetch fresh follower counts from the
// artist's linked platforms. The call can take a while, so callers
// should pass a generous context deadline.
func (c *Client) Scrape(ctx context.Context, artistID int) (model.ScrapeResult, error) {
	var result model.ScrapeResult
	path := fmt.Sprintf("/api/metrics/scrape/%d", artistID)
	if err := c.Post(ctx, path, nil, &result); err != nil {
		return model.ScrapeResult{}, fmt.Errorf("scraping metrics for artist %d: %w", artistID, err)
	}
	return result, nil
}
