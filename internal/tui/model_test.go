package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"market-mood/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

type stubSentiment struct {
	snap  *domain.Snapshot
	err   error
	calls int
}

func (s *stubSentiment) GetSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.calls++
	return s.snap, s.err
}

func testSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Current: domain.IndexReading{
			Score:         72.3,
			Band:          domain.Greed,
			PreviousClose: 70.1,
			ObservedAt:    time.Date(2026, 8, 26, 12, 30, 0, 0, time.UTC),
		},
		History: []domain.HistoricalPoint{
			{ObservedAt: time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC), Score: 41.5},
			{ObservedAt: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), Score: 72.3},
		},
		Indicators: []domain.IndicatorReading{
			{Key: "market_momentum_sp500", Label: "Market Momentum", Score: 80, Band: domain.ExtremeGreed, Description: "momentum"},
			{Key: "safe_haven_demand", Label: "Safe Haven Demand", Score: 45, Band: domain.Fear, Description: "safe haven"},
			{Key: "junk_bond_demand", Label: "Junk Bond Demand", Score: 90, Band: domain.ExtremeGreed, Description: "junk bonds"},
		},
	}
}

func loadedModel(snap *domain.Snapshot, err error) Model {
	m := NewModel(&stubSentiment{})
	updated, _ := m.Update(snapshotMsg{snap: snap, err: err})
	return updated.(Model)
}

func TestModelLoadingView(t *testing.T) {
	m := NewModel(&stubSentiment{snap: testSnapshot()})
	if !strings.Contains(m.View(), "Fetching market sentiment") {
		t.Fatal("expected loading message before first snapshot")
	}
}

func TestModelDashboardView(t *testing.T) {
	view := loadedModel(testSnapshot(), nil).View()

	for _, want := range []string{
		"CNN Fear & Greed Index",
		"Greed",
		"72.3",
		"+2.2 vs prev close",
		"Last updated: Aug 26, 2026 12:30 UTC",
		"Market Momentum",
		"Junk Bond Demand",
		"Past Year",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelErrorViewHasNoDashboard(t *testing.T) {
	view := loadedModel(nil, errors.New("upstream down")).View()

	if !strings.Contains(view, "Unable to load Fear & Greed data") {
		t.Fatal("expected warning message")
	}
	if strings.Contains(view, "Component Indicators") {
		t.Fatal("error view should not render a partial dashboard")
	}
}

func TestModelEmptyHistoryView(t *testing.T) {
	snap := testSnapshot()
	snap.History = nil

	view := loadedModel(snap, nil).View()
	if !strings.Contains(view, "Historical data is not available right now.") {
		t.Fatal("expected history empty-state message")
	}
}

func TestModelMissingTimestampHidesUpdatedLine(t *testing.T) {
	snap := testSnapshot()
	snap.Current.ObservedAt = time.Time{}

	if view := loadedModel(snap, nil).View(); strings.Contains(view, "Last updated:") {
		t.Fatal("zero timestamp should hide the last-updated line")
	}
}

func TestModelQuitKeys(t *testing.T) {
	m := loadedModel(testSnapshot(), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("expected tea.Quit, got %T", msg)
	}
}

func TestModelRefreshTriggersFetch(t *testing.T) {
	stub := &stubSentiment{snap: testSnapshot()}
	m := NewModel(stub)

	updated, _ := m.Update(snapshotMsg{snap: stub.snap})
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	if !m.loading {
		t.Fatal("refresh should re-enter loading state")
	}
	if cmd == nil {
		t.Fatal("refresh should schedule a fetch")
	}
}

func TestModelWindowResize(t *testing.T) {
	m := loadedModel(testSnapshot(), nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = updated.(Model)
	if m.width != 120 || m.height != 50 {
		t.Fatalf("unexpected size: %dx%d", m.width, m.height)
	}
}
