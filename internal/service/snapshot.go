package service

import (
	"sort"
	"time"

	"market-mood/internal/domain"
	"market-mood/internal/provider"
)

// BuildSnapshot shapes the raw graph data into a fully-typed snapshot. It is
// pure: missing sub-parts degrade (zero delta, empty history, skipped
// indicator) instead of erroring, and upstream rating labels are only trusted
// when they match a canonical band.
func BuildSnapshot(raw *provider.GraphData) *domain.Snapshot {
	if raw == nil {
		raw = &provider.GraphData{}
	}

	snap := &domain.Snapshot{
		Current: buildCurrent(raw.FearAndGreed),
		History: buildHistory(raw.Historical),
	}

	for _, spec := range domain.Indicators {
		entry := raw.Indicator(spec.Key)
		if entry == nil || entry.Score == nil {
			continue
		}
		var rating string
		if entry.Rating != nil {
			rating = *entry.Rating
		}
		snap.Indicators = append(snap.Indicators, domain.IndicatorReading{
			Key:         spec.Key,
			Label:       spec.Label,
			Score:       *entry.Score,
			Band:        domain.ResolveBand(rating, *entry.Score),
			Description: spec.Description,
		})
	}

	return snap
}

func buildCurrent(raw *provider.RawReading) domain.IndexReading {
	var reading domain.IndexReading
	if raw == nil {
		reading.Band = domain.Classify(reading.Score)
		return reading
	}

	if raw.Score != nil {
		reading.Score = *raw.Score
	}
	reading.PreviousClose = reading.Score
	if raw.PreviousClose != nil {
		reading.PreviousClose = *raw.PreviousClose
	}
	if raw.Timestamp != nil {
		reading.ObservedAt = time.UnixMilli(*raw.Timestamp).UTC()
	}

	var rating string
	if raw.Rating != nil {
		rating = *raw.Rating
	}
	reading.Band = domain.ResolveBand(rating, reading.Score)

	return reading
}

func buildHistory(raw *provider.RawSeries) []domain.HistoricalPoint {
	if raw == nil || len(raw.Data) == 0 {
		return nil
	}

	points := make([]domain.HistoricalPoint, 0, len(raw.Data))
	for _, p := range raw.Data {
		points = append(points, domain.HistoricalPoint{
			ObservedAt: time.UnixMilli(int64(p.X)).UTC(),
			Score:      p.Y,
		})
	}

	// Upstream order is not guaranteed.
	sort.Slice(points, func(i, j int) bool {
		return points[i].ObservedAt.Before(points[j].ObservedAt)
	})

	return points
}
