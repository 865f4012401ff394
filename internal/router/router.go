package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/clipdeals/backend/api/handler"
)

type Handlers struct {
	Auth       *apiHandler.AuthHandler
	Dashboard  *apiHandler.DashboardHandler
	Onboarding *apiHandler.OnboardingHandler
	Campaign   *apiHandler.CampaignHandler
	Submission *apiHandler.SubmissionHandler
	Payout     *apiHandler.PayoutHandler
	Health     *apiHandler.HealthHandler
}

// New registers all routes. Access control is not applied here: the caller
// wraps the returned handler with the access middleware so protected-path
// classification happens before routing.
func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth pages and session endpoints
	r.GET("/signin", handlers.Auth.SignInPage)
	r.GET("/signup", handlers.Auth.SignUpPage)
	r.POST("/api/v1/auth/signup", handlers.Auth.SignUp)
	r.POST("/api/v1/auth/signin", handlers.Auth.SignIn)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)
	r.POST("/api/v1/auth/signout", handlers.Auth.SignOut)

	r.GET("/dashboard", handlers.Dashboard.Overview)

	// Onboarding steps the access gate redirects to
	r.GET("/onboarding/creator/tiktok", handlers.Onboarding.Step("creator/tiktok"))
	r.POST("/onboarding/creator/tiktok", handlers.Onboarding.ConnectTikTok)
	r.GET("/onboarding/creator/profile", handlers.Onboarding.Step("creator/profile"))
	r.POST("/onboarding/creator/profile", handlers.Onboarding.SaveCreatorProfile)
	r.GET("/onboarding/brand/profile", handlers.Onboarding.Step("brand/profile"))
	r.POST("/onboarding/brand/profile", handlers.Onboarding.SaveBrandProfile)
	r.GET("/onboarding/brand/payments", handlers.Onboarding.Step("brand/payments"))
	r.POST("/onboarding/brand/payments", handlers.Onboarding.VerifyPayment)

	// Campaigns: list and detail are public; creation is payment-gated
	r.GET("/campaigns", handlers.Campaign.List)
	r.GET("/campaigns/{id}", handlers.Campaign.PublicView)
	r.POST("/campaigns/new", handlers.Campaign.Create)
	r.PUT("/api/v1/campaigns/{id}", handlers.Campaign.Update)
	r.DELETE("/api/v1/campaigns/{id}", handlers.Campaign.Delete)

	// Submission intake and review
	r.POST("/api/v1/submissions", handlers.Submission.Submit)
	r.GET("/api/v1/submissions", handlers.Submission.List)
	r.POST("/api/v1/submissions/{id}/review", handlers.Submission.Review)
	r.POST("/api/v1/submissions/{id}/views", handlers.Submission.UpdateViews)

	// Payouts (payment-gated for brands by the access middleware)
	r.GET("/payouts", handlers.Payout.Summary)
	r.GET("/api/payouts", handlers.Payout.Summary)

	return r
}
