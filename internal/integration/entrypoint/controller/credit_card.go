package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	creditcard "github.com/finance-tracker/dashboard/internal/application/usecase/credit_card"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	listUseCase   *creditcard.ListCreditCardsUseCase
	createUseCase *creditcard.CreateCreditCardUseCase
	updateUseCase *creditcard.UpdateCreditCardUseCase
	deleteUseCase *creditcard.DeleteCreditCardUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	listUseCase *creditcard.ListCreditCardsUseCase,
	createUseCase *creditcard.CreateCreditCardUseCase,
	updateUseCase *creditcard.UpdateCreditCardUseCase,
	deleteUseCase *creditcard.DeleteCreditCardUseCase,
) *CreditCardController {
	return &CreditCardController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardListResponse(output))
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	var req dto.CreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToCreateCreditCardInput())
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.CreditCard))
}

// Update handles PUT /credit-cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	var req dto.CreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), req.ToUpdateCreditCardInput(ctx.Param("id")))
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.CreditCard))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	input := creditcard.DeleteCreditCardInput{CreditCardID: ctx.Param("id")}
	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
