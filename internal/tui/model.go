package tui

import (
	"context"
	"time"

	"market-mood/internal/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const fetchTimeout = 15 * time.Second

type SnapshotGetter interface {
	GetSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

type snapshotMsg struct {
	snap *domain.Snapshot
	err  error
}

// Model is the dashboard: one fetch per view, no partial state. A refresh
// re-runs the fetch; within the snapshot TTL it is answered from cache.
type Model struct {
	sentiment SnapshotGetter
	spinner   spinner.Model

	snapshot *domain.Snapshot
	err      error
	loading  bool

	width  int
	height int
}

func NewModel(sentiment SnapshotGetter) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		sentiment: sentiment,
		spinner:   sp,
		loading:   true,
		width:     100,
		height:    40,
	}
}

// SetSize is used by the SSH server to match the client PTY before the first
// WindowSizeMsg arrives.
func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchSnapshot(m.sentiment))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, fetchSnapshot(m.sentiment))
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case snapshotMsg:
		m.loading = false
		m.snapshot, m.err = msg.snap, msg.err

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func fetchSnapshot(sentiment SnapshotGetter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		snap, err := sentiment.GetSnapshot(ctx)
		return snapshotMsg{snap: snap, err: err}
	}
}
