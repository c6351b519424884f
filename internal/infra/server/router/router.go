// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	creditCardController  *controller.CreditCardController
	investmentController  *controller.InvestmentController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	dashboardController   *controller.DashboardController
	preferenceController  *controller.PreferenceController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	creditCardController *controller.CreditCardController,
	investmentController *controller.InvestmentController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	dashboardController *controller.DashboardController,
	preferenceController *controller.PreferenceController,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		creditCardController:  creditCardController,
		investmentController:  investmentController,
		transactionController: transactionController,
		categoryController:    categoryController,
		dashboardController:   dashboardController,
		preferenceController:  preferenceController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.PUT("/:id", r.accountController.Update)
			accounts.DELETE("/:id", r.accountController.Delete)
		}

		creditCards := v1.Group("/credit-cards")
		{
			creditCards.GET("", r.creditCardController.List)
			creditCards.POST("", r.creditCardController.Create)
			creditCards.PUT("/:id", r.creditCardController.Update)
			creditCards.DELETE("/:id", r.creditCardController.Delete)
		}

		investments := v1.Group("/investments")
		{
			investments.GET("", r.investmentController.List)
			investments.POST("", r.investmentController.Create)
			investments.PUT("/:id", r.investmentController.Update)
			investments.DELETE("/:id", r.investmentController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		v1.GET("/dashboard", r.dashboardController.Summary)

		preferences := v1.Group("/preferences")
		{
			preferences.GET("", r.preferenceController.Get)
			preferences.PUT("/dark-mode", r.preferenceController.SetDarkMode)
			preferences.POST("/dark-mode/toggle", r.preferenceController.ToggleDarkMode)
		}
	}
}
