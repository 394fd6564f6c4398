package view

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/networth"
)

// NetWorthModel shows the aggregate summary with a per-type breakdown
// and the list of stale accounts.
type NetWorthModel struct {
	CommonModel
	svc                *networth.Service
	staleThresholdDays int

	summary networth.Summary
	stale   []*account.Account

	loading bool
	err     error
}

func NewNetWorthModel(svc *networth.Service, staleThresholdDays int) NetWorthModel {
	return NetWorthModel{
		svc:                svc,
		staleThresholdDays: staleThresholdDays,
		loading:            true,
	}
}

func (m NetWorthModel) Title() string     { return "Net Worth" }
func (m NetWorthModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m NetWorthModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m NetWorthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSummaryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.summary = msg.summary
		m.stale = msg.stale
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m NetWorthModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Calculating...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle := lipgloss.NewStyle().Faint(true)

	header := fmt.Sprintf("%s  %s\n\n%s %s\n%s %s",
		titleStyle.Render("Net Worth:"),
		lipgloss.NewStyle().Bold(true).Render(FormatSigned(m.summary.NetWorth)),
		labelStyle.Render("Assets:     "),
		FormatAmount(m.summary.TotalAssets),
		labelStyle.Render("Liabilities:"),
		FormatAmount(m.summary.TotalLiabilities),
	)

	breakdown := "By Type:\n"
	for _, typ := range sortedTypes(m.summary.ByType) {
		tt := m.summary.ByType[typ]
		breakdown += fmt.Sprintf("  %-12s assets %12s  liabilities %12s\n",
			typ, FormatAmount(tt.Assets), FormatAmount(tt.Liabilities))
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(header + "\n\n" + breakdown)

	if len(m.stale) > 0 {
		warn := fmt.Sprintf("%d account(s) not updated in %d days:\n", len(m.stale), m.staleThresholdDays)
		for _, a := range m.stale {
			updated := "never"
			if a.LastUpdated != nil {
				updated = FormatDate(*a.LastUpdated)
			}

			warn += fmt.Sprintf("  %s (last: %s)\n", a.ID, updated)
		}

		panel += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(warn)
	}

	return lipgloss.NewStyle().Padding(1).Render(panel)
}

func sortedTypes(byType map[account.Type]networth.TypeTotal) []account.Type {
	types := make([]account.Type, 0, len(byType))
	for typ := range byType {
		types = append(types, typ)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}

// Messages

type loadSummaryMsg struct {
	summary networth.Summary
	stale   []*account.Account
	err     error
}

func (m NetWorthModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.svc.Summary(ctx)
		if err != nil {
			return loadSummaryMsg{err: err}
		}

		stale, err := m.svc.StaleAccounts(ctx, m.staleThresholdDays)
		if err != nil {
			return loadSummaryMsg{err: err}
		}

		return loadSummaryMsg{summary: summary, stale: stale}
	}
}
