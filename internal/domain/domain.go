package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Band is one of the five ordered sentiment categories of the Fear & Greed
// index, from Extreme Fear (lowest scores) to Extreme Greed (highest).
type Band int

const (
	ExtremeFear Band = iota
	Fear
	Neutral
	Greed
	ExtremeGreed
)

var bandLabels = [...]string{
	ExtremeFear:  "Extreme Fear",
	Fear:         "Fear",
	Neutral:      "Neutral",
	Greed:        "Greed",
	ExtremeGreed: "Extreme Greed",
}

// bandUpperBounds pairs each band with its inclusive upper score bound,
// checked in order. First match wins, so exact boundary scores land in the
// lower band (25 is Extreme Fear, not Fear).
var bandUpperBounds = []struct {
	upper float64
	band  Band
}{
	{25, ExtremeFear},
	{45, Fear},
	{55, Neutral},
	{75, Greed},
}

func (b Band) String() string {
	if b < ExtremeFear || b > ExtremeGreed {
		return "Unknown"
	}
	return bandLabels[b]
}

// Color returns the display color (hex) conventionally used for the band.
func (b Band) Color() string {
	switch b {
	case ExtremeFear:
		return "#d32f2f"
	case Fear:
		return "#f57c00"
	case Neutral:
		return "#fdd835"
	case Greed:
		return "#7cb342"
	case ExtremeGreed:
		return "#2e7d32"
	}
	return "#666666"
}

func (b Band) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Band) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	if parsed, ok := ParseBand(label); ok {
		*b = parsed
	}
	return nil
}

// Classify maps a score to its sentiment band. Total over all floats: scores
// below 0 or above 100 still classify via the outermost bands.
func Classify(score float64) Band {
	for _, bound := range bandUpperBounds {
		if score <= bound.upper {
			return bound.band
		}
	}
	return ExtremeGreed
}

// ParseBand matches an externally supplied rating label against the five
// canonical band names. Underscores are treated as spaces and casing is
// ignored, so "extreme_fear" parses as Extreme Fear.
func ParseBand(label string) (Band, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(label), "_", " "))
	for band, canonical := range bandLabels {
		if normalized == strings.ToLower(canonical) {
			return Band(band), true
		}
	}
	return ExtremeFear, false
}

// ResolveBand derives the band for a reading. A recognizable external label
// wins; anything else is recomputed from the score, making Classify
// authoritative over labels the upstream made up.
func ResolveBand(label string, score float64) Band {
	if band, ok := ParseBand(label); ok {
		return band
	}
	return Classify(score)
}

// IndexReading is the current headline index value.
type IndexReading struct {
	Score         float64   `json:"score"`
	Band          Band      `json:"band"`
	PreviousClose float64   `json:"previous_close"`
	ObservedAt    time.Time `json:"observed_at,omitzero"`
}

// Delta is the signed change versus the previous close.
func (r IndexReading) Delta() float64 {
	return r.Score - r.PreviousClose
}

// HistoricalPoint is one daily index observation.
type HistoricalPoint struct {
	ObservedAt time.Time `json:"observed_at"`
	Score      float64   `json:"score"`
}

// IndicatorReading is one of the component indicators that make up the index.
type IndicatorReading struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Score       float64 `json:"score"`
	Band        Band    `json:"band"`
	Description string  `json:"description"`
}

// Snapshot holds everything needed to render one dashboard view. It is built
// atomically from a single upstream fetch and never mutated afterwards.
type Snapshot struct {
	Current    IndexReading       `json:"current"`
	History    []HistoricalPoint  `json:"history"`
	Indicators []IndicatorReading `json:"indicators"`
}

// IndicatorSpec describes one of the seven component indicators published
// alongside the index.
type IndicatorSpec struct {
	Key         string
	Label       string
	Description string
}

// Indicators lists the component indicators in display order. Readings absent
// from a fetch are simply skipped; the order of the remainder is preserved.
var Indicators = []IndicatorSpec{
	{"market_momentum_sp500", "Market Momentum", "S&P 500 vs its 125-day moving average."},
	{"stock_price_strength", "Stock Price Strength", "Net new 52-week highs vs lows on the NYSE."},
	{"stock_price_breadth", "Stock Price Breadth", "Volume of advancing vs declining shares."},
	{"put_call_options", "Put and Call Options", "Put/call ratio, where high put volume signals fear."},
	{"market_volatility_vix", "Market Volatility", "VIX level relative to its 50-day moving average."},
	{"safe_haven_demand", "Safe Haven Demand", "Bond returns vs stock returns over 20 days."},
	{"junk_bond_demand", "Junk Bond Demand", "Yield spread between junk bonds and investment-grade bonds."},
}
