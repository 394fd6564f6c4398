package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/balance"
	"github.com/MrJamesThe3rd/networth/internal/reconcile"
)

type recordState int

const (
	recordStateLoading recordState = iota
	recordStateForm
	recordStateResult
)

// RecordModel is the manual balance entry form.
type RecordModel struct {
	CommonModel
	accountService *account.Service
	reconciler     *reconcile.Service

	state    recordState
	accounts []*account.Account
	form     *huh.Form

	// Form bindings
	formAccountID string
	formAmount    string
	formNotes     string

	status string
	err    error
}

func NewRecordModel(accountSvc *account.Service, reconciler *reconcile.Service) RecordModel {
	return RecordModel{
		accountService: accountSvc,
		reconciler:     reconciler,
		state:          recordStateLoading,
	}
}

func (m RecordModel) Title() string { return "Record Balance" }
func (m RecordModel) ShortHelp() string {
	if m.state == recordStateForm {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back"
}

func (m RecordModel) Init() tea.Cmd {
	return m.loadAccountsCmd()
}

func (m RecordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordAccountsMsg:
		if msg.err != nil {
			m.state = recordStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		if len(msg.accounts) == 0 {
			m.state = recordStateResult
			m.status = "No active accounts. Create one via the API first."

			return m, nil
		}

		m.accounts = msg.accounts
		m.buildForm()
		m.state = recordStateForm

		return m, m.form.Init()

	case recordSavedMsg:
		m.state = recordStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Recorded %s for %s.", FormatAmount(msg.reading.Amount), msg.reading.AccountID)

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.state != recordStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m *RecordModel) buildForm() {
	options := make([]huh.Option[string], 0, len(m.accounts))
	for _, a := range m.accounts {
		label := fmt.Sprintf("%s (%s)", a.ID, a.Institution)
		options = append(options, huh.NewOption(label, a.ID))
	}

	m.formAccountID = m.accounts[0].ID
	m.formAmount = ""
	m.formNotes = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("account").
				Title("Account").
				Options(options...).
				Value(&m.formAccountID),

			huh.NewInput().
				Key("amount").
				Title("Balance").
				Placeholder("1234.56").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("amount cannot be empty")
					}

					if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("not a valid amount")
					}

					return nil
				}),

			huh.NewInput().
				Key("notes").
				Title("Notes").
				Value(&m.formNotes),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m RecordModel) View() string {
	switch m.state {
	case recordStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	case recordStateForm:
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Record Balance\n\n" + m.form.View())

		return lipgloss.NewStyle().Padding(1).Render(panel)
	case recordStateResult:
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

	return ""
}

// Messages

type recordAccountsMsg struct {
	accounts []*account.Account
	err      error
}

func (m RecordModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.accountService.List(ctx, account.ListFilter{ActiveOnly: true})
		return recordAccountsMsg{accounts: accounts, err: err}
	}
}

type recordSavedMsg struct {
	reading *balance.Reading
	err     error
}

func (m RecordModel) saveCmd() tea.Cmd {
	accountID := m.formAccountID
	amountStr := strings.TrimSpace(m.formAmount)
	notes := m.formNotes

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		acct, err := m.accountService.Get(ctx, accountID)
		if err != nil {
			return recordSavedMsg{err: err}
		}

		d, err := decimal.NewFromString(amountStr)
		if err != nil {
			return recordSavedMsg{err: err}
		}

		cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

		reading, err := m.reconciler.Apply(ctx, acct, reconcile.Reading{
			Source: balance.SourceManual,
			Amount: cents,
			Note:   notes,
		})
		if err != nil {
			return recordSavedMsg{err: err}
		}

		return recordSavedMsg{reading: reading}
	}
}
