package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/balance"
)

// AccountsModel browses the registry with each account's latest recorded
// balance. Accounts past the staleness threshold are flagged.
type AccountsModel struct {
	CommonModel
	accountService *account.Service
	balanceService *balance.Service

	staleThreshold time.Duration

	table    table.Model
	accounts []*account.Account
	latest   map[string]*balance.Reading

	loading bool
	err     error
	status  string
}

func NewAccountsModel(accountSvc *account.Service, balanceSvc *balance.Service, staleThresholdDays int) AccountsModel {
	columns := []table.Column{
		{Title: "ID", Width: 18},
		{Title: "Institution", Width: 16},
		{Title: "Type", Width: 12},
		{Title: "Balance", Width: 12},
		{Title: "Updated", Width: 12},
		{Title: "Status", Width: 10},
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

	return AccountsModel{
		accountService: accountSvc,
		balanceService: balanceSvc,
		staleThreshold: time.Duration(staleThresholdDays) * 24 * time.Hour,
		table:          t,
	}
}

func (m AccountsModel) Title() string { return "Accounts" }
func (m AccountsModel) ShortHelp() string {
	return "Esc: back | x: toggle active | r: refresh"
}

func (m AccountsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAccountsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.accounts = msg.accounts
		m.latest = msg.latest
		m.refreshTable()
		return m, nil

	case toggleActiveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.status = ""
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "x":
			return m, m.toggleActiveCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m AccountsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *AccountsModel) refreshTable() {
	now := time.Now().UTC()
	cutoff := now.Add(-m.staleThreshold)

	rows := make([]table.Row, 0, len(m.accounts))

	for _, a := range m.accounts {
		bal := "-"
		if r, ok := m.latest[a.ID]; ok {
			bal = FormatAmount(r.Amount)
		}

		updated := "never"
		if a.LastUpdated != nil {
			updated = FormatDate(*a.LastUpdated)
		}

		status := "active"
		if !a.IsActive {
			status = "inactive"
		} else if a.LastUpdated == nil || a.LastUpdated.Before(cutoff) {
			status = "stale !"
		}

		rows = append(rows, table.Row{
			a.ID,
			a.Institution,
			string(a.Type),
			bal,
			updated,
			status,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadAccountsMsg struct {
	accounts []*account.Account
	latest   map[string]*balance.Reading
	err      error
}

func (m AccountsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.accountService.List(ctx, account.ListFilter{})
		if err != nil {
			return loadAccountsMsg{err: err}
		}

		latest, err := m.balanceService.LatestPerAccount(ctx)
		if err != nil {
			return loadAccountsMsg{err: err}
		}

		return loadAccountsMsg{accounts: accounts, latest: latest}
	}
}

type toggleActiveMsg struct {
	err error
}

func (m AccountsModel) toggleActiveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.accounts) {
		return nil
	}

	acct := m.accounts[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error
		if acct.IsActive {
			err = m.accountService.Deactivate(ctx, acct.ID)
		} else {
			err = m.accountService.Activate(ctx, acct.ID)
		}

		return toggleActiveMsg{err: err}
	}
}
