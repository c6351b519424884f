package entity

// State is the whole application state: the five collections and the dark-mode flag.
type State struct {
	Accounts     []Account
	CreditCards  []CreditCard
	Investments  []Investment
	Transactions []Transaction
	Categories   []Category
	DarkMode     bool
}
