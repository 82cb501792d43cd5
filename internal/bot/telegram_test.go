package bot

import (
	"strings"
	"testing"
	"time"

	"market-mood/internal/domain"
)

func TestStartTelegramBotSkipsWithoutToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	StartTelegramBot(nil)
}

func TestFormatCurrent(t *testing.T) {
	current := domain.IndexReading{
		Score:         72.3,
		Band:          domain.Greed,
		PreviousClose: 70.1,
		ObservedAt:    time.Date(2026, 8, 26, 12, 30, 0, 0, time.UTC),
	}

	msg := formatCurrent(current)
	if !strings.Contains(msg, "72.3 (Greed)") {
		t.Fatalf("missing score/band: %s", msg)
	}
	if !strings.Contains(msg, "+2.2 vs previous close") {
		t.Fatalf("missing delta: %s", msg)
	}
	if !strings.Contains(msg, "Aug 26, 2026 12:30 UTC") {
		t.Fatalf("missing timestamp: %s", msg)
	}
}

func TestFormatCurrentWithoutTimestamp(t *testing.T) {
	msg := formatCurrent(domain.IndexReading{Score: 20, Band: domain.ExtremeFear, PreviousClose: 20})
	if strings.Contains(msg, "Updated:") {
		t.Fatalf("zero timestamp should hide the updated line: %s", msg)
	}
}

func TestFormatIndicators(t *testing.T) {
	msg := formatIndicators([]domain.IndicatorReading{
		{Label: "Market Momentum", Score: 80, Band: domain.ExtremeGreed},
		{Label: "Safe Haven Demand", Score: 45, Band: domain.Fear},
	})
	if !strings.Contains(msg, "Market Momentum: 80.0 (Extreme Greed)") {
		t.Fatalf("missing indicator line: %s", msg)
	}

	if msg := formatIndicators(nil); !strings.Contains(msg, "not available") {
		t.Fatalf("expected empty-state message, got: %s", msg)
	}
}
