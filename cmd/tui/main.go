package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/openaudit/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	analyticsStore "github.com/MrJamesThe3rd/openaudit/internal/analytics/store"
	"github.com/MrJamesThe3rd/openaudit/internal/config"
	"github.com/MrJamesThe3rd/openaudit/internal/database"
	"github.com/MrJamesThe3rd/openaudit/internal/export"
	"github.com/MrJamesThe3rd/openaudit/internal/ingest"
	ingestStore "github.com/MrJamesThe3rd/openaudit/internal/ingest/store"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
	txStore "github.com/MrJamesThe3rd/openaudit/internal/transaction/store"
)

type model struct {
	analyticsService *analytics.Service
	txService        *transaction.Service
	ingestService    *ingest.Service
	exportService    *export.Service

	currentView View

	dashboardView view.DashboardModel
	topView       view.TopLGUsModel
	ingestView    view.IngestModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewTop       View = 2
	ViewIngest    View = 3
	ViewExport    View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(cfg.ConnectionString()); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	analyticsSvc := analytics.NewService(analyticsStore.New(db))
	txSvc := transaction.NewService(txStore.New(db))
	ingestSvc := ingest.NewService(ingestStore.New(db), cfg.Ingest.BatchSize)
	exportSvc := export.NewService(analyticsSvc)

	return model{
		analyticsService: analyticsSvc,
		txService:        txSvc,
		ingestService:    ingestSvc,
		exportService:    exportSvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(analyticsSvc),
		topView:          view.NewTopLGUsModel(analyticsSvc, txSvc),
		ingestView:       view.NewIngestModel(ingestSvc),
		exportView:       view.NewExportModel(exportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.analyticsService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTop
				m.topView = view.NewTopLGUsModel(m.analyticsService, m.txService)

				return m, m.topView.Init()
			case "3":
				m.currentView = ViewIngest
				m.ingestView = view.NewIngestModel(m.ingestService)

				return m, m.ingestView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTop:
		var newModel tea.Model
		newModel, cmd = m.topView.Update(msg)
		m.topView = newModel.(view.TopLGUsModel)
	case ViewIngest:
		var newModel tea.Model
		newModel, cmd = m.ingestView.Update(msg)
		m.ingestView = newModel.(view.IngestModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	var current view.View

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"OpenAudit\n\n" +
				"1. Dashboard\n" +
				"2. Top LGUs\n" +
				"3. Ingest Extract\n" +
				"4. Export Workbook\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		current = m.dashboardView
	case ViewTop:
		current = m.topView
	case ViewIngest:
		current = m.ingestView
	case ViewExport:
		current = m.exportView
	default:
		return "Unknown View"
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 2, 0).Render(current.Title())
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 2).Render(current.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, title, current.View(), help)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
