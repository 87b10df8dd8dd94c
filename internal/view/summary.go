package view

import (
	"sort"

	"artistdesk/internal/model"
)

// FilterByMetricType keeps only the rows for one metric type, preserving
// source order.
func FilterByMetricType(rows []model.MetricRow, metricTypeID int) []model.MetricRow {
	var out []model.MetricRow
	for _, r := range rows {
		if r.MetricTypeID == metricTypeID {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCodes keeps only the rows whose metric code is in codes,
// preserving source order. Used for the engagement series, where the
// relevant rows span several metric types.
func FilterByCodes(rows []model.MetricRow, codes ...string) []model.MetricRow {
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = true
	}

	var out []model.MetricRow
	for _, r := range rows {
		if want[r.MetricCode] {
			out = append(out, r)
		}
	}
	return out
}

// LatestPerPlatform reduces dated observations to the newest row per
// platform. Rows on the same date are resolved last-seen-wins, so later
// entries in the input shadow earlier ones. Rows without a platform are
// keyed under 0.
func LatestPerPlatform(rows []model.MetricRow) map[int]model.MetricRow {
	latest := make(map[int]model.MetricRow)
	for _, r := range rows {
		p := r.Platform()
		cur, ok := latest[p]
		if !ok {
			latest[p] = r
			continue
		}
		td, _ := ParseDate(r.MetricDate)
		cd, _ := ParseDate(cur.MetricDate)
		if !td.Before(cd) {
			latest[p] = r
		}
	}
	return latest
}

// Total sums the values of the latest observations across all platforms.
// An empty map yields 0, never an error.
func Total(latest map[int]model.MetricRow) float64 {
	var sum float64
	for _, r := range latest {
		sum += r.Amount()
	}
	return sum
}

// TotalExcept sums the latest values across every platform not listed in
// exclude. Used by the "other platforms" summary card.
func TotalExcept(latest map[int]model.MetricRow, exclude ...int) float64 {
	skip := make(map[int]bool, len(exclude))
	for _, p := range exclude {
		skip[p] = true
	}

	var sum float64
	for p, r := range latest {
		if !skip[p] {
			sum += r.Amount()
		}
	}
	return sum
}

// TotalPoint is one day's summed value in a growth series.
type TotalPoint struct {
	Date  string
	Value float64
}

// DailyTotals groups rows by their raw date key, sums the values per day,
// and returns the points in ascending date order, ready for charting.
// Rows without a usable date are dropped from the series.
func DailyTotals(rows []model.MetricRow) []TotalPoint {
	totals := make(map[string]float64)
	for _, r := range rows {
		if _, ok := ParseDate(r.MetricDate); !ok {
			continue
		}
		totals[r.MetricDate] += r.Amount()
	}

	dates := make([]string, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	points := make([]TotalPoint, len(dates))
	for i, d := range dates {
		points[i] = TotalPoint{Date: d, Value: totals[d]}
	}
	return points
}

// MergeSeries sums the named series of a metrics payload into one dated
// sequence, ascending by date. NULL values contribute zero; codes absent
// from the map and points without a parseable date are skipped.
func MergeSeries(series map[string][]model.MetricPoint, codes ...string) []TotalPoint {
	totals := make(map[string]float64)
	for _, code := range codes {
		for _, p := range series[code] {
			if _, ok := ParseDate(p.Date); !ok {
				continue
			}
			totals[p.Date] += p.Amount()
		}
	}
	if len(totals) == 0 {
		return nil
	}

	dates := make([]string, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	points := make([]TotalPoint, len(dates))
	for i, d := range dates {
		points[i] = TotalPoint{Date: d, Value: totals[d]}
	}
	return points
}

// SortHistory orders metric rows newest first, breaking date ties by row
// id descending so the most recently inserted observation leads.
func SortHistory(rows []model.MetricRow) []model.MetricRow {
	out := SortByDateDesc(rows, func(r model.MetricRow) string { return r.MetricDate })
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := ParseDate(out[i].MetricDate)
		tj, _ := ParseDate(out[j].MetricDate)
		if ti.Equal(tj) {
			return out[i].ArtistMetricID > out[j].ArtistMetricID
		}
		return false
	})
	return out
}
