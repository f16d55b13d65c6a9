package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

const allYears = 0

type topState int

const (
	topStateFilter topState = iota
	topStateLoading
	topStateBrowse
)

// TopLGUsModel ranks LGUs by unliquidated total, optionally for one year.
type TopLGUsModel struct {
	CommonModel
	analytics *analytics.Service
	txService *transaction.Service

	state topState
	form  *huh.Form
	table table.Model
	years []int
	rows  []analytics.LGUTotal
	err   error

	// Form bindings
	year  int
	limit string
}

func NewTopLGUsModel(svc *analytics.Service, txSvc *transaction.Service) TopLGUsModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "LGU", Width: 30},
		{Title: "Province", Width: 20},
		{Title: "Total", Width: 20},
		{Title: "Txs", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TopLGUsModel{
		analytics: svc,
		txService: txSvc,
		state:     topStateLoading,
		table:     t,
		limit:     strconv.Itoa(analytics.DefaultTopLimit),
	}
}

func (m TopLGUsModel) Title() string { return "Top LGUs" }

func (m TopLGUsModel) ShortHelp() string {
	if m.state == topStateFilter {
		return "Enter: apply | Esc: back"
	}

	return "Esc: back | f: filter | r: refresh"
}

func (m TopLGUsModel) Init() tea.Cmd {
	return m.loadYearsCmd()
}

func (m TopLGUsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case yearsLoadedMsg:
		if msg.err != nil {
			m.state = topStateBrowse
			m.err = msg.err

			return m, nil
		}

		m.years = msg.years

		return m.openFilter()

	case topLoadedMsg:
		m.state = topStateBrowse
		m.err = msg.err
		m.rows = msg.rows
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case topStateFilter:
		return m.updateFilter(msg)
	case topStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m TopLGUsModel) openFilter() (tea.Model, tea.Cmd) {
	options := make([]huh.Option[int], 0, len(m.years)+1)
	options = append(options, huh.NewOption("All years", allYears))

	for _, y := range m.years {
		options = append(options, huh.NewOption(strconv.Itoa(y), y))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Key("year").
				Title("Year").
				Options(options...).
				Value(&m.year),

			huh.NewInput().
				Key("limit").
				Title("How many LGUs").
				Description(fmt.Sprintf("At most %d", analytics.MaxTopLimit)).
				Value(&m.limit).
				Validate(validateLimit),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = topStateFilter
	m.table.Blur()

	return m, m.form.Init()
}

func validateLimit(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}

	return nil
}

func (m TopLGUsModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	// The bound values live in the copy the form was built from.
	m.year = m.form.GetInt("year")
	m.limit = m.form.GetString("limit")
	m.state = topStateLoading
	m.table.Focus()

	return m, m.loadTopCmd()
}

func (m TopLGUsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "f":
			return m.openFilter()
		case "r":
			m.state = topStateLoading
			return m, m.loadTopCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *TopLGUsModel) refreshTable() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		province := "-"
		if r.Province != nil {
			province = *r.Province
		}

		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			r.Name,
			province,
			FormatAmount(r.Total),
			FormatCount(r.TransactionCount),
		}
	}

	m.table.SetRows(rows)
}

func (m TopLGUsModel) filter() analytics.TopFilter {
	f := analytics.TopFilter{}

	if n, err := strconv.Atoi(strings.TrimSpace(m.limit)); err == nil {
		f.Limit = n
	}

	if m.year != allYears {
		f.Year = new(m.year)
	}

	return f
}

func (m TopLGUsModel) View() string {
	switch m.state {
	case topStateFilter:
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().
				Padding(1, 2).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Render("Top LGUs\n\n" + m.form.View()),
		)
	case topStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	year := "All years"
	if m.year != allYears {
		year = strconv.Itoa(m.year)
	}

	header := fmt.Sprintf("Year: %s | Showing: %s", activeStyle(year), activeStyle(strconv.Itoa(len(m.rows))))

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				Render(m.table.View()),
		),
	)
}

type yearsLoadedMsg struct {
	years []int
	err   error
}

type topLoadedMsg struct {
	rows []analytics.LGUTotal
	err  error
}

func (m TopLGUsModel) loadYearsCmd() tea.Cmd {
	svc := m.txService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		years, err := svc.Years(ctx)

		return yearsLoadedMsg{years: years, err: err}
	}
}

func (m TopLGUsModel) loadTopCmd() tea.Cmd {
	svc := m.analytics
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rows, err := svc.TopLGUs(ctx, filter)

		return topLoadedMsg{rows: rows, err: err}
	}
}
