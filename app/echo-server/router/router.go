package router

import (
	"hustlexp/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/refresh", handler.Refresh, authRequired)
	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/:id", handler.GetUserByID, authRequired, adminOnly)
}

func SetOnboardingRoutes(api *echo.Group, handler *rest.OnboardingHandler, authRequired echo.MiddlewareFunc) {
	onboarding := api.Group("/onboarding")

	onboarding.GET("/questions", handler.GetQuestions)

	onboarding.POST("/complete", handler.Complete, authRequired)
	onboarding.POST("/preview", handler.Preview, authRequired)
	onboarding.GET("/result", handler.GetResult, authRequired)
	onboarding.GET("/re-onboarding", handler.ReOnboardEligibility, authRequired)
}

func SetOnboardingAdminRoutes(api *echo.Group, handler *rest.OnboardingAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/onboarding", authRequired, adminOnly)

	admin.GET("/results/:user_id", handler.GetUserResults)
	admin.GET("/engine", handler.GetEngine)
}
