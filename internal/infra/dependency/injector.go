// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/finance-tracker/dashboard/config"
	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/application/store"
	"github.com/finance-tracker/dashboard/internal/application/usecase/account"
	"github.com/finance-tracker/dashboard/internal/application/usecase/category"
	creditcard "github.com/finance-tracker/dashboard/internal/application/usecase/credit_card"
	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	"github.com/finance-tracker/dashboard/internal/application/usecase/investment"
	"github.com/finance-tracker/dashboard/internal/application/usecase/preference"
	"github.com/finance-tracker/dashboard/internal/application/usecase/transaction"
	"github.com/finance-tracker/dashboard/internal/infra/server/router"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/dashboard/internal/integration/persistence"
)

// UseCases groups the application use cases shared by the HTTP and terminal entrypoints.
type UseCases struct {
	ListAccounts  *account.ListAccountsUseCase
	CreateAccount *account.CreateAccountUseCase
	UpdateAccount *account.UpdateAccountUseCase
	DeleteAccount *account.DeleteAccountUseCase

	ListCreditCards  *creditcard.ListCreditCardsUseCase
	CreateCreditCard *creditcard.CreateCreditCardUseCase
	UpdateCreditCard *creditcard.UpdateCreditCardUseCase
	DeleteCreditCard *creditcard.DeleteCreditCardUseCase

	ListInvestments  *investment.ListInvestmentsUseCase
	CreateInvestment *investment.CreateInvestmentUseCase
	UpdateInvestment *investment.UpdateInvestmentUseCase
	DeleteInvestment *investment.DeleteInvestmentUseCase

	ListTransactions  *transaction.ListTransactionsUseCase
	CreateTransaction *transaction.CreateTransactionUseCase
	UpdateTransaction *transaction.UpdateTransactionUseCase
	DeleteTransaction *transaction.DeleteTransactionUseCase

	ListCategories *category.ListCategoriesUseCase
	CreateCategory *category.CreateCategoryUseCase
	UpdateCategory *category.UpdateCategoryUseCase
	DeleteCategory *category.DeleteCategoryUseCase

	GetSummary *dashboard.GetSummaryUseCase

	GetPreferences *preference.GetPreferencesUseCase
	SetDarkMode    *preference.SetDarkModeUseCase
	ToggleDarkMode *preference.ToggleDarkModeUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	Store    *store.Store
	UseCases *UseCases
	Router   *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The store loads its state from kv, so kv must already be open. Closing the
// injector closes kv.
func NewInjector(ctx context.Context, cfg *config.Config, kv adapter.KeyValueStore, clock dashboard.Clock, opts ...store.Option) *Injector {
	// Create state repository and store
	repo := persistence.NewStateRepository(kv, cfg.Storage.KeyPrefix)
	st := store.New(ctx, repo, opts...)

	useCases := &UseCases{
		ListAccounts:  account.NewListAccountsUseCase(st),
		CreateAccount: account.NewCreateAccountUseCase(st),
		UpdateAccount: account.NewUpdateAccountUseCase(st),
		DeleteAccount: account.NewDeleteAccountUseCase(st),

		ListCreditCards:  creditcard.NewListCreditCardsUseCase(st),
		CreateCreditCard: creditcard.NewCreateCreditCardUseCase(st),
		UpdateCreditCard: creditcard.NewUpdateCreditCardUseCase(st),
		DeleteCreditCard: creditcard.NewDeleteCreditCardUseCase(st),

		ListInvestments:  investment.NewListInvestmentsUseCase(st),
		CreateInvestment: investment.NewCreateInvestmentUseCase(st),
		UpdateInvestment: investment.NewUpdateInvestmentUseCase(st),
		DeleteInvestment: investment.NewDeleteInvestmentUseCase(st),

		ListTransactions:  transaction.NewListTransactionsUseCase(st, st),
		CreateTransaction: transaction.NewCreateTransactionUseCase(st),
		UpdateTransaction: transaction.NewUpdateTransactionUseCase(st),
		DeleteTransaction: transaction.NewDeleteTransactionUseCase(st),

		ListCategories: category.NewListCategoriesUseCase(st),
		CreateCategory: category.NewCreateCategoryUseCase(st),
		UpdateCategory: category.NewUpdateCategoryUseCase(st),
		DeleteCategory: category.NewDeleteCategoryUseCase(st),

		GetSummary: dashboard.NewGetSummaryUseCase(st, clock, cfg.Display.RecentTransactionsLimit),

		GetPreferences: preference.NewGetPreferencesUseCase(st),
		SetDarkMode:    preference.NewSetDarkModeUseCase(st),
		ToggleDarkMode: preference.NewToggleDarkModeUseCase(st),
	}

	// Create controllers
	healthController := controller.NewHealthController(kv.Ping)

	accountController := controller.NewAccountController(
		useCases.ListAccounts,
		useCases.CreateAccount,
		useCases.UpdateAccount,
		useCases.DeleteAccount,
		cfg.Display.DefaultCurrency,
	)

	creditCardController := controller.NewCreditCardController(
		useCases.ListCreditCards,
		useCases.CreateCreditCard,
		useCases.UpdateCreditCard,
		useCases.DeleteCreditCard,
	)

	investmentController := controller.NewInvestmentController(
		useCases.ListInvestments,
		useCases.CreateInvestment,
		useCases.UpdateInvestment,
		useCases.DeleteInvestment,
		cfg.Display.DefaultCurrency,
	)

	transactionController := controller.NewTransactionController(
		useCases.ListTransactions,
		useCases.CreateTransaction,
		useCases.UpdateTransaction,
		useCases.DeleteTransaction,
	)

	categoryController := controller.NewCategoryController(
		useCases.ListCategories,
		useCases.CreateCategory,
		useCases.UpdateCategory,
		useCases.DeleteCategory,
	)

	dashboardController := controller.NewDashboardController(useCases.GetSummary)

	preferenceController := controller.NewPreferenceController(
		useCases.GetPreferences,
		useCases.SetDarkMode,
		useCases.ToggleDarkMode,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		accountController,
		creditCardController,
		investmentController,
		transactionController,
		categoryController,
		dashboardController,
		preferenceController,
	)

	return &Injector{
		Config:   cfg,
		Store:    st,
		UseCases: useCases,
		Router:   r,
	}
}

// Close releases the store and its storage backend.
func (i *Injector) Close() error {
	return i.Store.Close()
}
