package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Tanishkag23/xpense/internal/screen"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formLogin
	formSignup
	formExpense
	formBudget
	formIncome
	formDelete
)

// formValues backs every action form. It lives on the heap so that the
// pointers huh keeps stay valid while App is copied through Update.
type formValues struct {
	username    string
	password    string
	amount      string
	date        string
	category    string
	description string
	budCategory string
	budAmount   string
	income      string
	confirm     bool
}

// openForm starts an action form, seeding it from the screen inputs so a
// rejected submission can be corrected instead of retyped.
func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	scr := a.ctrl.Screen()
	v := &formValues{
		username:    scr.Input(screen.LoginUser),
		amount:      scr.Input(screen.ExpAmount),
		date:        scr.Input(screen.ExpDate),
		category:    scr.Input(screen.ExpCategory),
		description: scr.Input(screen.ExpDesc),
		budCategory: scr.Input(screen.BudCategory),
		budAmount:   scr.Input(screen.BudAmount),
		income:      scr.Input(screen.IncomeAmount),
	}
	if v.date == "" {
		v.date = time.Now().Format("2006-01-02")
	}

	var form *huh.Form
	switch kind {
	case formLogin:
		form = credentialsForm("Log in", v)
	case formSignup:
		form = credentialsForm("Create account", v)
	case formExpense:
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Amount").Placeholder("12.50").Value(&v.amount),
			huh.NewInput().Title("Date").Placeholder("2006-01-02").Value(&v.date),
			huh.NewInput().Title("Category").Placeholder("Food").Value(&v.category),
			huh.NewInput().Title("Description").Placeholder("optional").Value(&v.description),
		).Title("Add expense"))
	case formBudget:
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Category").Value(&v.budCategory),
			huh.NewInput().Title("Monthly amount").Value(&v.budAmount),
		).Title("Set budget"))
	case formIncome:
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Income").Placeholder("50000").Value(&v.income),
		).Title("Set income"))
	case formDelete:
		row, ok := a.selectedExpense()
		if !ok {
			return a, nil
		}
		a.deleteID = row.ID
		form = huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete expense #%d?", row.ID)).
				Description(describeRow(row.Cells)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&v.confirm),
		))
	default:
		return a, nil
	}

	form = form.WithShowHelp(true)
	if a.width > 0 {
		form = form.WithWidth(min(a.width-4, 60))
	}
	a.form, a.formKind, a.formVals = form, kind, v
	return a, form.Init()
}

func credentialsForm(title string, v *formValues) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Username").Value(&v.username),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&v.password),
	).Title(title))
}

func describeRow(cells []string) string {
	if len(cells) < 5 {
		return ""
	}
	return fmt.Sprintf("%s on %s, %s %s", cells[1], cells[2], cells[3], cells[4])
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind, v := a.formKind, a.formVals
		a.form, a.formKind, a.formVals = nil, formNone, nil
		return a.submitForm(kind, v)
	case huh.StateAborted:
		a.form, a.formKind, a.formVals = nil, formNone, nil
		return a, nil
	}
	return a, cmd
}

// submitForm copies the answers into the screen inputs and runs the
// matching controller action.
func (a App) submitForm(kind formKind, v *formValues) (tea.Model, tea.Cmd) {
	scr := a.ctrl.Screen()
	var (
		op string
		fn func(context.Context) error
	)

	switch kind {
	case formLogin, formSignup:
		scr.SetInput(screen.LoginUser, v.username)
		scr.SetInput(screen.LoginPass, v.password)
		op, fn = "login", a.ctrl.Login
		if kind == formSignup {
			op, fn = "signup", a.ctrl.Signup
		}
	case formExpense:
		scr.SetInput(screen.ExpAmount, v.amount)
		scr.SetInput(screen.ExpDate, v.date)
		scr.SetInput(screen.ExpCategory, v.category)
		scr.SetInput(screen.ExpDesc, v.description)
		op, fn = "add expense", a.ctrl.AddExpense
	case formBudget:
		scr.SetInput(screen.BudCategory, v.budCategory)
		scr.SetInput(screen.BudAmount, v.budAmount)
		op, fn = "set budget", a.ctrl.SetBudget
	case formIncome:
		scr.SetInput(screen.IncomeAmount, v.income)
		op, fn = "set income", a.ctrl.SetIncome
	case formDelete:
		if !v.confirm {
			return a, nil
		}
		id := a.deleteID
		op = "delete"
		fn = func(ctx context.Context) error { return a.ctrl.DeleteTransaction(ctx, id) }
	default:
		return a, nil
	}
	return a.run(op, fn)
}
