package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
)

const barWidth = 30

// DashboardModel shows corpus statistics, yearly trends and the amount
// distribution.
type DashboardModel struct {
	CommonModel
	analytics *analytics.Service

	loading bool
	spinner spinner.Model
	err     error

	stats        *analytics.Stats
	trends       []analytics.YearTrend
	distribution []analytics.BucketCount
}

func NewDashboardModel(svc *analytics.Service) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return DashboardModel{analytics: svc, loading: true, spinner: s}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.stats = msg.stats
		m.trends = msg.trends
		m.distribution = msg.distribution

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.err = nil

			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}
	}

	if !m.loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " Loading analytics...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.viewStats(),
			"",
			m.viewTrends(),
			"",
			m.viewDistribution(),
		),
	)
}

func (m DashboardModel) viewStats() string {
	s := m.stats

	years := "none"
	if len(s.YearsCovered) > 0 {
		years = fmt.Sprintf("%d-%d", s.YearsCovered[0], s.YearsCovered[len(s.YearsCovered)-1])
	}

	return strings.Join([]string{
		headerStyle.Render("Overview"),
		fmt.Sprintf("  LGUs:               %s", FormatCount(s.TotalLGUs)),
		fmt.Sprintf("  Provinces:          %s", FormatCount(s.ProvincesCount)),
		fmt.Sprintf("  Audit reports:      %s", FormatCount(s.TotalReports)),
		fmt.Sprintf("  Unliquidated total: %s", FormatAmount(s.TotalUnliquidated)),
		fmt.Sprintf("  Years covered:      %s", years),
	}, "\n")
}

func (m DashboardModel) viewTrends() string {
	lines := []string{headerStyle.Render("Yearly trends")}

	if len(m.trends) == 0 {
		return strings.Join(append(lines, mutedStyle.Render("  no transactions")), "\n")
	}

	var peak int64
	for _, t := range m.trends {
		peak = max(peak, t.Total.IntPart())
	}

	for _, t := range m.trends {
		lines = append(lines, fmt.Sprintf("  %d  %18s  avg %16s  %6s txs  %s",
			t.Year,
			FormatAmount(t.Total),
			FormatAmount(t.Average),
			FormatCount(t.TransactionCount),
			Bar(t.Total.IntPart(), peak, barWidth),
		))
	}

	return strings.Join(lines, "\n")
}

func (m DashboardModel) viewDistribution() string {
	lines := []string{headerStyle.Render("Amount distribution")}

	var peak int64
	for _, c := range m.distribution {
		peak = max(peak, c.Count)
	}

	for _, c := range m.distribution {
		lines = append(lines, fmt.Sprintf("  %-10s %8s  %s", c.Label, FormatCount(c.Count), Bar(c.Count, peak, barWidth)))
	}

	return strings.Join(lines, "\n")
}

type dashboardLoadedMsg struct {
	stats        *analytics.Stats
	trends       []analytics.YearTrend
	distribution []analytics.BucketCount
	err          error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	svc := m.analytics

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var msg dashboardLoadedMsg

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() (err error) {
			msg.stats, err = svc.Stats(gctx)
			return err
		})

		g.Go(func() (err error) {
			msg.trends, err = svc.YearlyTrends(gctx)
			return err
		})

		g.Go(func() (err error) {
			msg.distribution, err = svc.AmountDistribution(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return msg
	}
}
