package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/dashboard/internal/application/usecase/account"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase     *account.ListAccountsUseCase
	createUseCase   *account.CreateAccountUseCase
	updateUseCase   *account.UpdateAccountUseCase
	deleteUseCase   *account.DeleteAccountUseCase
	defaultCurrency string
}

// NewAccountController creates a new account controller instance.
// defaultCurrency fills requests that omit the currency code.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	createUseCase *account.CreateAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	defaultCurrency string,
) *AccountController {
	return &AccountController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		defaultCurrency: defaultCurrency,
	}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output))
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToCreateAccountInput(c.defaultCurrency))
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// Update handles PUT /accounts/:id requests.
// The body replaces the stored account as a whole.
func (c *AccountController) Update(ctx *gin.Context) {
	var req dto.AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), req.ToUpdateAccountInput(ctx.Param("id"), c.defaultCurrency))
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /accounts/:id requests.
// Deleting an unknown account succeeds. Transactions of the account are kept.
func (c *AccountController) Delete(ctx *gin.Context) {
	input := account.DeleteAccountInput{AccountID: ctx.Param("id")}
	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
