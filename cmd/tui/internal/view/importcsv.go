package view

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/balance"
	"github.com/MrJamesThe3rd/networth/internal/extract"
	"github.com/MrJamesThe3rd/networth/internal/reconcile"
)

type importState int

const (
	importStateAccountSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

// ImportModel walks a CSV export through extraction and records the
// balance against a chosen account. The institution is inferred from the
// filename.
type ImportModel struct {
	CommonModel
	accountService *account.Service
	extractor      *extract.Service
	reconciler     *reconcile.Service

	state      importState
	filePicker filepicker.Model

	accounts      []*account.Account
	accountCursor int

	status string
	err    error
}

func NewImportModel(accountSvc *account.Service, extractor *extract.Service, reconciler *reconcile.Service, importFolder string) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory = importFolder
	if _, err := os.Stat(importFolder); err != nil {
		fp.CurrentDirectory, _ = os.Getwd()
	}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = []string{".csv"}
	fp.SetHeight(15)

	return ImportModel{
		accountService: accountSvc,
		extractor:      extractor,
		reconciler:     reconciler,
		filePicker:     fp,
	}
}

func (m ImportModel) Title() string { return "Import CSV" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.loadAccountsCmd()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importAccountsMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		if len(msg.accounts) == 0 {
			m.state = importStateResult
			m.status = "No active accounts. Create one via the API first."

			return m, nil
		}

		m.accounts = msg.accounts
		m.state = importStateAccountSelect

		return m, nil

	case importDoneMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Recorded %s from %s statement (%s).",
			FormatAmount(msg.reading.Amount), msg.institution, msg.reading.AccountID)

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateAccountSelect {
			return m.updateAccountSelect(msg)
		}
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateAccountSelect
		return m, nil
	case importStateResult:
		m.state = importStateAccountSelect
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateAccountSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.accountCursor > 0 {
			m.accountCursor--
		}
	case tea.KeyDown:
		if m.accountCursor < len(m.accounts)-1 {
			m.accountCursor++
		}
	case tea.KeyEnter:
		m.state = importStateFilePick
		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateAccountSelect:
		return m.viewAccountSelect()
	case importStateFilePick:
		acct := m.accounts[m.accountCursor]
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select CSV for %s:\n\n%s", acct.ID, m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewAccountSelect() string {
	s := "Select Account:\n\n"

	for i, a := range m.accounts {
		cursor := " "
		if i == m.accountCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s (%s)\n", cursor, a.ID, a.Institution)
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status) +
			"\n\n(Esc to go back)",
	)
}

// Messages

type importAccountsMsg struct {
	accounts []*account.Account
	err      error
}

func (m ImportModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.accountService.List(ctx, account.ListFilter{ActiveOnly: true})
		return importAccountsMsg{accounts: accounts, err: err}
	}
}

type importDoneMsg struct {
	reading     *balance.Reading
	institution extract.Institution
	err         error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	acct := m.accounts[m.accountCursor]

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		inst := extract.DetectInstitution(filepath.Base(path))

		result := m.extractor.Extract(inst, f)
		if !result.Success {
			return importDoneMsg{err: fmt.Errorf("extraction failed: %s", result.Error)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		reading, err := m.reconciler.Apply(ctx, acct, reconcile.Reading{
			Source: balance.SourceCSV,
			Amount: result.Balance,
			Date:   result.Date,
			Note:   result.Note,
		})
		if err != nil {
			return importDoneMsg{err: err}
		}

		return importDoneMsg{reading: reading, institution: result.Institution}
	}
}
