package view

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/openaudit/internal/ingest"
	"github.com/MrJamesThe3rd/openaudit/internal/ingest/extract"
)

const ingestTimeout = 30 * time.Minute

type ingestState int

const (
	ingestStateFilePick ingestState = iota
	ingestStateSheet
	ingestStateRunning
	ingestStateResult
)

// IngestModel picks an extract file and loads it into the store.
type IngestModel struct {
	CommonModel
	ingestService *ingest.Service

	state      ingestState
	filePicker filepicker.Model
	form       *huh.Form
	spinner    spinner.Model

	path    string
	sheet   string
	summary *ingest.Summary
	err     error
}

func NewIngestModel(svc *ingest.Service) IngestModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".tsv", ".txt", ".xlsx", ".xlsm"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return IngestModel{
		ingestService: svc,
		filePicker:    fp,
		spinner:       s,
	}
}

func (m IngestModel) Title() string { return "Ingest Extract" }

func (m IngestModel) ShortHelp() string {
	switch m.state {
	case ingestStateRunning:
		return "Ingesting..."
	case ingestStateResult:
		return "Esc: back"
	}

	return "Esc: back | Enter: select"
}

func (m IngestModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m IngestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(ingestResultMsg); ok {
		m.state = ingestStateResult
		m.summary = result.summary
		m.err = result.err

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.handleEsc()
	}

	switch m.state {
	case ingestStateFilePick:
		return m.updateFilePick(msg)
	case ingestStateSheet:
		return m.updateSheet(msg)
	case ingestStateRunning:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m IngestModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case ingestStateSheet, ingestStateResult:
		m.state = ingestStateFilePick
		m.summary = nil
		m.err = nil

		return m, m.filePicker.Init()
	case ingestStateRunning:
		return m, nil
	}

	return m, Back
}

func (m IngestModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	didSelect, path := m.filePicker.DidSelectFile(msg)
	if !didSelect {
		return m, cmd
	}

	m.path = path

	if !extract.IsWorkbook(path) {
		return m.start()
	}

	m.sheet = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("sheet").
				Title("Worksheet").
				Description("Leave empty for the first sheet").
				Value(&m.sheet),
		),
	).WithWidth(50).WithShowHelp(false)
	m.state = ingestStateSheet

	return m, m.form.Init()
}

func (m IngestModel) updateSheet(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.sheet = strings.TrimSpace(m.form.GetString("sheet"))

	return m.start()
}

func (m IngestModel) start() (tea.Model, tea.Cmd) {
	m.state = ingestStateRunning
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.ingestCmd(m.path, m.sheet))
}

func (m IngestModel) View() string {
	switch m.state {
	case ingestStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select an extract (.csv, .tsv, .xlsx):\n\n" + m.filePicker.View(),
		)
	case ingestStateSheet:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case ingestStateRunning:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("%s Ingesting %s...", m.spinner.View(), m.path),
		)
	case ingestStateResult:
		return m.viewResult()
	}

	return ""
}

func (m IngestModel) viewResult() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else {
		b.WriteString(successStyle.Render("Ingestion complete."))
	}

	if s := m.summary; s != nil {
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "Run:          %s\n", s.RunID)
		fmt.Fprintf(&b, "Rows read:    %s\n", FormatCount(int64(s.Rows)))
		fmt.Fprintf(&b, "Rows skipped: %s\n", FormatCount(int64(s.Skipped)))
		fmt.Fprintf(&b, "LGUs:         %s (%s new)\n", FormatCount(int64(s.LGUs)), FormatCount(int64(s.LGUsCreated)))
		fmt.Fprintf(&b, "Transactions: %s in %d batches", FormatCount(int64(s.Transactions)), s.Batches)
	}

	b.WriteString("\n\n(Esc to go back)")

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

type ingestResultMsg struct {
	summary *ingest.Summary
	err     error
}

func (m IngestModel) ingestCmd(path, sheet string) tea.Cmd {
	svc := m.ingestService

	return func() tea.Msg {
		f, err := extract.Open(path, sheet)
		if err != nil {
			return ingestResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
		defer cancel()

		summary, err := svc.Run(ctx, f)
		if errors.Is(err, ingest.ErrRunInProgress) {
			err = errors.New("another ingestion run is in progress")
		}

		return ingestResultMsg{summary: summary, err: err}
	}
}
