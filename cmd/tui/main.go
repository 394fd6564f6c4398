package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/networth/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/networth/internal/account"
	accountStore "github.com/MrJamesThe3rd/networth/internal/account/store"
	"github.com/MrJamesThe3rd/networth/internal/balance"
	balanceStore "github.com/MrJamesThe3rd/networth/internal/balance/store"
	"github.com/MrJamesThe3rd/networth/internal/config"
	"github.com/MrJamesThe3rd/networth/internal/database"
	"github.com/MrJamesThe3rd/networth/internal/extract"
	"github.com/MrJamesThe3rd/networth/internal/networth"
	"github.com/MrJamesThe3rd/networth/internal/reconcile"
)

type model struct {
	accountService *account.Service
	balanceService *balance.Service
	reconciler     *reconcile.Service

	staleThresholdDays int

	currentView View

	accountsView view.AccountsModel
	networthView view.NetWorthModel
	recordView   view.RecordModel
	importView   view.ImportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewAccounts View = 1
	ViewNetWorth View = 2
	ViewRecord   View = 3
	ViewImport   View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	accounts := accountStore.New(db)
	balances := balanceStore.New(db)

	accountSvc := account.NewService(accounts)
	balanceSvc := balance.NewService(balances)
	extractSvc := extract.NewService()
	reconciler := reconcile.NewService(accounts, balances)
	networthSvc := networth.NewService(accounts, balances)

	staleDays := cfg.Refresh.StaleThresholdDays

	return model{
		accountService:     accountSvc,
		balanceService:     balanceSvc,
		reconciler:         reconciler,
		staleThresholdDays: staleDays,
		currentView:        ViewMenu,
		accountsView:   view.NewAccountsModel(accountSvc, balanceSvc, staleDays),
		networthView:   view.NewNetWorthModel(networthSvc, staleDays),
		recordView:     view.NewRecordModel(accountSvc, reconciler),
		importView:     view.NewImportModel(accountSvc, extractSvc, reconciler, cfg.Refresh.ImportFolder),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAccounts
				m.accountsView = view.NewAccountsModel(m.accountService, m.balanceService, m.staleThresholdDays)

				return m, m.accountsView.Init()
			case "2":
				m.currentView = ViewNetWorth
				return m, m.networthView.Init()
			case "3":
				m.currentView = ViewRecord
				m.recordView = view.NewRecordModel(m.accountService, m.reconciler)

				return m, m.recordView.Init()
			case "4":
				m.currentView = ViewImport
				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAccounts:
		var newModel tea.Model
		newModel, cmd = m.accountsView.Update(msg)
		m.accountsView = newModel.(view.AccountsModel)
	case ViewNetWorth:
		var newModel tea.Model
		newModel, cmd = m.networthView.Update(msg)
		m.networthView = newModel.(view.NetWorthModel)
	case ViewRecord:
		var newModel tea.Model
		newModel, cmd = m.recordView.Update(msg)
		m.recordView = newModel.(view.RecordModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Networth TUI\n\n" +
				"1. Accounts\n" +
				"2. Net Worth Summary\n" +
				"3. Record Balance\n" +
				"4. Import CSV Statement\n\n" +
				"q. Quit",
		)
	case ViewAccounts:
		return m.accountsView.View()
	case ViewNetWorth:
		return m.networthView.View()
	case ViewRecord:
		return m.recordView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
