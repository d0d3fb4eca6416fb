package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hustlexp/business/onboarding"
	"hustlexp/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OnboardingHandler struct {
		validate          *validator.Validate
		onboardingService OnboardingService
		timeout           time.Duration
	}

	OnboardingService interface {
		Questions() []domain.CalibrationQuestion
		Complete(ctx context.Context, userID uint, octx domain.OnboardingContext, responses domain.Responses, override *domain.UserRole) (domain.OnboardingResult, error)
		Preview(ctx context.Context, userID uint, octx domain.OnboardingContext, responses domain.Responses, override *domain.UserRole) (domain.OnboardingResult, error)
		Result(ctx context.Context, userID uint) (domain.OnboardingResult, error)
		ReOnboardEligibility(ctx context.Context, userID uint) (bool, error)
	}

	// ContextPayload is the client-captured environment snapshot. The server
	// validates shape only; it never re-derives any of these values.
	ContextPayload struct {
		CapturedAt     time.Time `json:"captured_at" validate:"required"`
		DeviceClass    string    `json:"device_class" validate:"omitempty,oneof=mobile tablet desktop"`
		Platform       string    `json:"platform" validate:"omitempty,oneof=ios android web"`
		Locale         string    `json:"locale"`
		Timezone       string    `json:"timezone"`
		HourOfDay      int       `json:"hour_of_day" validate:"min=0,max=23"`
		DayOfWeek      int       `json:"day_of_week" validate:"min=0,max=6"`
		Referral       string    `json:"referral"`
		CampaignID     string    `json:"campaign_id"`
		SignupVelocity float64   `json:"signup_velocity" validate:"min=0"`
		FieldRevisions int       `json:"field_revisions" validate:"min=0"`
	}

	// CompleteRequest carries one onboarding attempt. An invalid role
	// override is rejected here, at the boundary; the engine assumes any
	// override it sees is a real UserRole.
	CompleteRequest struct {
		Context      ContextPayload    `json:"context" validate:"required"`
		Responses    map[string]string `json:"responses"`
		RoleOverride string            `json:"role_override" validate:"omitempty,oneof=WORKER POSTER"`
	}
)

func NewOnboardingHandler(svc OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		validate:          validator.New(),
		onboardingService: svc,
		timeout:           10 * time.Second,
	}
}

// GET /api/v1/onboarding/questions
func (h *OnboardingHandler) GetQuestions(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.onboardingService.Questions()))
}

// POST /api/v1/onboarding/complete
func (h *OnboardingHandler) Complete(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	req, err := h.bindAttempt(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.onboardingService.Complete(ctx, userID, toContext(req.Context), req.Responses, toOverride(req.RoleOverride))
	if err != nil {
		switch {
		case errors.Is(err, onboarding.ErrReOnboardNotAllowed):
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		case errors.Is(err, onboarding.ErrAttemptInFlight):
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(result))
}

// POST /api/v1/onboarding/preview
func (h *OnboardingHandler) Preview(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	req, err := h.bindAttempt(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.onboardingService.Preview(ctx, userID, toContext(req.Context), req.Responses, toOverride(req.RoleOverride))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// GET /api/v1/onboarding/result
func (h *OnboardingHandler) GetResult(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.onboardingService.Result(ctx, userID)
	if err != nil {
		if errors.Is(err, onboarding.ErrNotOnboarded) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// GET /api/v1/onboarding/re-onboarding
func (h *OnboardingHandler) ReOnboardEligibility(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	eligible, err := h.onboardingService.ReOnboardEligibility(ctx, userID)
	if err != nil {
		if errors.Is(err, onboarding.ErrNotOnboarded) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{"eligible": eligible}))
}

func (h *OnboardingHandler) bindAttempt(c echo.Context) (CompleteRequest, error) {
	var req CompleteRequest
	if err := c.Bind(&req); err != nil {
		return CompleteRequest{}, err
	}
	if err := h.validate.Struct(&req); err != nil {
		return CompleteRequest{}, err
	}
	return req, nil
}

func toContext(p ContextPayload) domain.OnboardingContext {
	return domain.OnboardingContext{
		CapturedAt:     p.CapturedAt,
		DeviceClass:    p.DeviceClass,
		Platform:       p.Platform,
		Locale:         p.Locale,
		Timezone:       p.Timezone,
		HourOfDay:      p.HourOfDay,
		DayOfWeek:      p.DayOfWeek,
		Referral:       p.Referral,
		CampaignID:     p.CampaignID,
		SignupVelocity: p.SignupVelocity,
		FieldRevisions: p.FieldRevisions,
	}
}

func toOverride(raw string) *domain.UserRole {
	if raw == "" {
		return nil
	}
	role := domain.UserRole(raw)
	return &role
}
