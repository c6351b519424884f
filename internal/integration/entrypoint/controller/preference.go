package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/dashboard/internal/application/usecase/preference"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// PreferenceController handles display preference endpoints.
type PreferenceController struct {
	getUseCase    *preference.GetPreferencesUseCase
	setUseCase    *preference.SetDarkModeUseCase
	toggleUseCase *preference.ToggleDarkModeUseCase
}

// NewPreferenceController creates a new preference controller instance.
func NewPreferenceController(
	getUseCase *preference.GetPreferencesUseCase,
	setUseCase *preference.SetDarkModeUseCase,
	toggleUseCase *preference.ToggleDarkModeUseCase,
) *PreferenceController {
	return &PreferenceController{
		getUseCase:    getUseCase,
		setUseCase:    setUseCase,
		toggleUseCase: toggleUseCase,
	}
}

// Get handles GET /preferences requests.
func (c *PreferenceController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PreferencesResponse{DarkMode: output.DarkMode})
}

// SetDarkMode handles PUT /preferences/dark-mode requests.
func (c *PreferenceController) SetDarkMode(ctx *gin.Context) {
	var req dto.SetDarkModeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), preference.SetDarkModeInput{Enabled: *req.Enabled})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PreferencesResponse{DarkMode: output.DarkMode})
}

// ToggleDarkMode handles POST /preferences/dark-mode/toggle requests.
func (c *PreferenceController) ToggleDarkMode(ctx *gin.Context) {
	output, err := c.toggleUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PreferencesResponse{DarkMode: output.DarkMode})
}
