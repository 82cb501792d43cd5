package provider

// GraphData is the raw CNN graphdata payload. The upstream JSON is loosely
// typed, so every field is optional here; validation and defaulting happen
// once, in the snapshot builder.
type GraphData struct {
	FearAndGreed *RawReading `json:"fear_and_greed"`
	Historical   *RawSeries  `json:"fear_and_greed_historical"`

	MarketMomentum     *RawIndicator `json:"market_momentum_sp500"`
	StockPriceStrength *RawIndicator `json:"stock_price_strength"`
	StockPriceBreadth  *RawIndicator `json:"stock_price_breadth"`
	PutCallOptions     *RawIndicator `json:"put_call_options"`
	MarketVolatility   *RawIndicator `json:"market_volatility_vix"`
	SafeHavenDemand    *RawIndicator `json:"safe_haven_demand"`
	JunkBondDemand     *RawIndicator `json:"junk_bond_demand"`
}

// RawReading is the current headline reading. Timestamp is epoch milliseconds.
type RawReading struct {
	Score         *float64 `json:"score"`
	Rating        *string  `json:"rating"`
	PreviousClose *float64 `json:"previous_close"`
	Timestamp     *int64   `json:"timestamp"`
}

// RawSeries wraps the historical points array.
type RawSeries struct {
	Data []RawPoint `json:"data"`
}

// RawPoint is one historical observation: X epoch milliseconds, Y score.
type RawPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RawIndicator is one component indicator entry.
type RawIndicator struct {
	Score  *float64 `json:"score"`
	Rating *string  `json:"rating"`
}

// Indicator returns the raw entry for a component indicator key, or nil when
// the key is not part of the payload.
func (g *GraphData) Indicator(key string) *RawIndicator {
	switch key {
	case "market_momentum_sp500":
		return g.MarketMomentum
	case "stock_price_strength":
		return g.StockPriceStrength
	case "stock_price_breadth":
		return g.StockPriceBreadth
	case "put_call_options":
		return g.PutCallOptions
	case "market_volatility_vix":
		return g.MarketVolatility
	case "safe_haven_demand":
		return g.SafeHavenDemand
	case "junk_bond_demand":
		return g.JunkBondDemand
	}
	return nil
}
