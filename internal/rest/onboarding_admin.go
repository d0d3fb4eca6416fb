package rest

import (
	"context"
	"net/http"
	"strconv"

	"hustlexp/business/onboarding"
	"hustlexp/domain"

	"github.com/labstack/echo/v4"
)

type (
	OnboardingAdminHandler struct {
		historyService OnboardingHistoryService
		engine         *onboarding.Engine
	}

	OnboardingHistoryService interface {
		History(ctx context.Context, userID uint) ([]domain.OnboardingResult, error)
	}
)

func NewOnboardingAdminHandler(historyService OnboardingHistoryService, engine *onboarding.Engine) *OnboardingAdminHandler {
	return &OnboardingAdminHandler{
		historyService: historyService,
		engine:         engine,
	}
}

// GET /api/v1/admin/onboarding/results/:user_id
func (h *OnboardingAdminHandler) GetUserResults(c echo.Context) error {
	userID64, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid user_id",
		})
	}

	results, err := h.historyService.History(c.Request().Context(), uint(userID64))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if len(results) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "no onboarding results for user",
		})
	}

	return c.JSON(http.StatusOK, results)
}

// GET /api/v1/admin/onboarding/engine
//
// Read-only dump of the engine version and its static configuration. There
// is intentionally no write counterpart: the config is locked to the build,
// and changing it at runtime would let stored records drift from the config
// that produced them.
func (h *OnboardingAdminHandler) GetEngine(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"version": onboarding.EngineVersion,
		"config":  h.engine.Config(),
	})
}
