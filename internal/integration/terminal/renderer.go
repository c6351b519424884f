package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/formatter"
	"github.com/finance-tracker/dashboard/internal/application/usecase/account"
	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// Renderer writes dashboard views to a terminal. It applies the light or dark
// theme it is told about and is safe for concurrent use.
type Renderer struct {
	out      io.Writer
	lg       *lipgloss.Renderer
	format   *formatter.Formatter
	currency string

	mu     sync.RWMutex
	theme  Theme
	styles styles
}

// NewRenderer creates a renderer writing to out. Totals are shown in currency.
func NewRenderer(out io.Writer, format *formatter.Formatter, currency string) *Renderer {
	lg := lipgloss.NewRenderer(out)
	return &Renderer{
		out:      out,
		lg:       lg,
		format:   format,
		currency: currency,
		theme:    Light,
		styles:   newStyles(lg, Light),
	}
}

// ApplyTheme switches between the light and dark themes.
func (r *Renderer) ApplyTheme(dark bool) {
	theme := Light
	if dark {
		theme = Dark
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lg.SetHasDarkBackground(dark)
	r.theme = theme
	r.styles = newStyles(r.lg, theme)
}

// Theme returns the theme currently applied.
func (r *Renderer) Theme() Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

// Summary writes the dashboard summary.
func (r *Renderer) Summary(summary *dashboard.GetSummaryOutput) error {
	st := r.currentStyles()
	var b strings.Builder

	b.WriteString(st.title.Render("Dashboard " + r.format.Date(summary.ReferenceDate)))
	b.WriteString("\n")

	overview := []string{
		r.row(st, st.value, "Patrimônio líquido", summary.NetWorth),
		r.row(st, st.value, "Saldo em contas", summary.TotalBalance),
		r.row(st, st.expense, "Fatura dos cartões", summary.TotalCreditCardDebt),
		r.row(st, st.value, "Crédito disponível", summary.TotalAvailableCredit),
		r.row(st, st.value, "Investimentos", summary.TotalInvestments),
	}
	b.WriteString(st.box.Render(strings.Join(overview, "\n")))
	b.WriteString("\n")

	b.WriteString(st.section.Render("Mês atual"))
	b.WriteString("\n")
	b.WriteString(r.row(st, st.income, "Receitas", summary.CurrentMonth.Income))
	b.WriteString(" " + st.muted.Render(r.format.Percentage(summary.IncomeChange)) + "\n")
	b.WriteString(r.row(st, st.expense, "Despesas", summary.CurrentMonth.Expenses))
	b.WriteString(" " + st.muted.Render(r.format.Percentage(summary.ExpenseChange)) + "\n")
	b.WriteString(r.row(st, st.value, "Economia", summary.CurrentMonth.NetSavings))
	b.WriteString("\n")

	b.WriteString(st.section.Render("Transações recentes"))
	b.WriteString("\n")
	if len(summary.RecentTransactions) == 0 {
		b.WriteString(st.muted.Render("Nenhuma transação") + "\n")
	}
	for _, tx := range summary.RecentTransactions {
		amountStyle := st.expense
		if tx.Type == entity.TransactionTypeIncome {
			amountStyle = st.income
		}
		label := formatter.TruncateText(tx.Description, formatter.DefaultTruncateLength)
		b.WriteString(r.row(st, amountStyle, label, tx.Amount))
		b.WriteString(" " + st.muted.Render(r.format.Date(tx.Date)+" · "+tx.AccountName) + "\n")
	}

	if len(summary.CreditCards) > 0 {
		b.WriteString(st.section.Render("Cartões"))
		b.WriteString("\n")
		for _, card := range summary.CreditCards {
			b.WriteString(r.row(st, st.expense, formatter.TruncateText(card.Name, formatter.DefaultTruncateLength), card.CurrentBalance))
			b.WriteString(" " + st.muted.Render(r.format.Percentage(card.Utilization)+" do limite") + "\n")
		}
	}

	if len(summary.Investments) > 0 {
		b.WriteString(st.section.Render("Investimentos"))
		b.WriteString("\n")
		for _, inv := range summary.Investments {
			b.WriteString(r.rowIn(st, st.value, formatter.TruncateText(inv.Name, formatter.DefaultTruncateLength), inv.CurrentAmount, inv.Currency))
			b.WriteString(" " + st.muted.Render(r.format.Percentage(inv.Return)) + "\n")
		}
	}

	_, err := fmt.Fprint(r.out, b.String())
	return err
}

// Accounts writes the account list with its total balance.
func (r *Renderer) Accounts(output *account.ListAccountsOutput) error {
	st := r.currentStyles()
	var b strings.Builder

	b.WriteString(st.title.Render("Contas"))
	b.WriteString("\n")
	if len(output.Accounts) == 0 {
		b.WriteString(st.muted.Render("Nenhuma conta cadastrada") + "\n")
	}
	for _, a := range output.Accounts {
		b.WriteString(r.rowIn(st, st.value, formatter.TruncateText(a.Name, formatter.DefaultTruncateLength), a.Balance, a.Currency))
		b.WriteString(" " + st.muted.Render(a.Institution) + "\n")
	}
	b.WriteString(st.section.Render(r.row(st, st.value, "Total", output.TotalBalance)))
	b.WriteString("\n")

	_, err := fmt.Fprint(r.out, b.String())
	return err
}

// DarkMode writes the state of the dark-mode flag.
func (r *Renderer) DarkMode(enabled bool) error {
	st := r.currentStyles()
	state := "desativado"
	if enabled {
		state = "ativado"
	}
	_, err := fmt.Fprintln(r.out, st.label.Render("Modo escuro")+st.value.Render(state))
	return err
}

func (r *Renderer) currentStyles() styles {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.styles
}

func (r *Renderer) row(st styles, valueStyle lipgloss.Style, label string, amount decimal.Decimal) string {
	return r.rowIn(st, valueStyle, label, amount, r.currency)
}

func (r *Renderer) rowIn(st styles, valueStyle lipgloss.Style, label string, amount decimal.Decimal, currency string) string {
	return st.label.Render(label) + valueStyle.Render(r.format.Currency(amount, currency))
}
