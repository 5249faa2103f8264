// Package screen is the boundary between the controller and whatever draws
// it. It holds named input fields, text cells, table bodies, the login panel
// flag and pending alerts, all addressed by stable element identifiers.
package screen

// ElementID names one region of the screen.
type ElementID string

// Inputs.
const (
	LoginUser      ElementID = "loginUser"
	LoginPass      ElementID = "loginPass"
	IncomeAmount   ElementID = "incomeAmount"
	ExpAmount      ElementID = "expAmount"
	ExpDate        ElementID = "expDate"
	ExpCategory    ElementID = "expCategory"
	ExpDesc        ElementID = "expDesc"
	BudCategory    ElementID = "budCategory"
	BudAmount      ElementID = "budAmount"
	FilterCategory ElementID = "filterCategory"
	FilterDesc     ElementID = "filterDesc"
)

// Text cells.
const (
	HelloUser  ElementID = "helloUser"
	IncomeBox  ElementID = "incomeBox"
	ExpenseBox ElementID = "expenseBox"
	BalanceBox ElementID = "balanceBox"
	RIncome    ElementID = "rIncome"
	RExpense   ElementID = "rExpense"
	RBalance   ElementID = "rBalance"
)

// Table bodies.
const (
	ByCategoryBody ElementID = "byCategoryBody"
	ExpensesBody   ElementID = "expensesBody"
	BudgetsBody    ElementID = "budgetsBody"
	ReportBody     ElementID = "reportBody"
)

// LoginPanel is the container toggled by the session projection.
const LoginPanel ElementID = "loginPanel"

// ExpenseFormInputs are cleared together after a successful add.
var ExpenseFormInputs = []ElementID{ExpAmount, ExpDate, ExpCategory, ExpDesc}

// BudgetFormInputs are cleared together after a successful budget update.
var BudgetFormInputs = []ElementID{BudCategory, BudAmount}
