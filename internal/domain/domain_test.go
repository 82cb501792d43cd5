package domain

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{0, ExtremeFear},
		{25, ExtremeFear},
		{25.01, Fear},
		{45, Fear},
		{45.01, Neutral},
		{55, Neutral},
		{55.01, Greed},
		{72.3, Greed},
		{75, Greed},
		{75.01, ExtremeGreed},
		{100, ExtremeGreed},
		{-5, ExtremeFear},
		{120, ExtremeGreed},
	}
	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestParseBand(t *testing.T) {
	if band, ok := ParseBand("Extreme Fear"); !ok || band != ExtremeFear {
		t.Fatalf("canonical label should parse unchanged, got %s ok=%v", band, ok)
	}
	if band, ok := ParseBand("extreme_fear"); !ok || band != ExtremeFear {
		t.Fatalf("underscored label should parse, got %s ok=%v", band, ok)
	}
	if band, ok := ParseBand(" greed "); !ok || band != Greed {
		t.Fatalf("padded label should parse, got %s ok=%v", band, ok)
	}
	if _, ok := ParseBand("mildly spooked"); ok {
		t.Fatal("unknown label should not parse")
	}
}

func TestResolveBandFallsBackToScore(t *testing.T) {
	if band := ResolveBand("mildly spooked", 72.3); band != Greed {
		t.Fatalf("expected fallback to Classify, got %s", band)
	}
	if band := ResolveBand("extreme_greed", 10); band != ExtremeGreed {
		t.Fatalf("valid label should win over score, got %s", band)
	}
}

func TestBandString(t *testing.T) {
	if ExtremeGreed.String() != "Extreme Greed" {
		t.Fatalf("unexpected label: %s", ExtremeGreed)
	}
	if Band(42).String() != "Unknown" {
		t.Fatalf("out-of-range band should be Unknown, got %s", Band(42))
	}
}

func TestBandJSONRoundTrip(t *testing.T) {
	data, err := Greed.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"Greed"` {
		t.Fatalf("unexpected JSON: %s", data)
	}
	var band Band
	if err := band.UnmarshalJSON(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if band != Greed {
		t.Fatalf("round trip mismatch: %s", band)
	}
}

func TestIndexReadingDelta(t *testing.T) {
	r := IndexReading{Score: 72.3, PreviousClose: 70.0}
	if got := r.Delta(); got != 72.3-70.0 {
		t.Fatalf("unexpected delta: %v", got)
	}
}

func TestIndicatorRegistry(t *testing.T) {
	if len(Indicators) != 7 {
		t.Fatalf("expected 7 indicators, got %d", len(Indicators))
	}
	if Indicators[0].Key != "market_momentum_sp500" || Indicators[6].Key != "junk_bond_demand" {
		t.Fatalf("unexpected indicator order: %+v", Indicators)
	}
}
