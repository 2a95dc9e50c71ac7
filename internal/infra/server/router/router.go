// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-advisor/backend/internal/integration/entrypoint/controller"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	incomeController     *controller.IncomeController
	expenseController    *controller.ExpenseController
	investmentController *controller.InvestmentController
	loanController       *controller.LoanController
	insuranceController  *controller.InsuranceController
	budgetController     *controller.BudgetController
	goalController       *controller.GoalController
	dashboardController  *controller.DashboardController
	analyticsController  *controller.AnalyticsController
	chatController       *controller.ChatController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	investmentController *controller.InvestmentController,
	loanController *controller.LoanController,
	insuranceController *controller.InsuranceController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	dashboardController *controller.DashboardController,
	analyticsController *controller.AnalyticsController,
	chatController *controller.ChatController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		incomeController:     incomeController,
		expenseController:    expenseController,
		investmentController: investmentController,
		loanController:       loanController,
		insuranceController:  insuranceController,
		budgetController:     budgetController,
		goalController:       goalController,
		dashboardController:  dashboardController,
		analyticsController:  analyticsController,
		chatController:       chatController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
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
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.authMiddleware == nil {
			return
		}
		authenticated := v1.Group("")
		authenticated.Use(r.authMiddleware.Authenticate())

		if r.incomeController != nil {
			incomes := authenticated.Group("/incomes")
			{
				incomes.POST("", r.incomeController.Create)
				incomes.GET("", r.incomeController.List)
				incomes.DELETE("/:id", r.incomeController.Delete)
			}
		}

		if r.expenseController != nil {
			expenses := authenticated.Group("/expenses")
			{
				expenses.POST("", r.expenseController.Create)
				expenses.GET("", r.expenseController.List)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		if r.investmentController != nil {
			investments := authenticated.Group("/investments")
			{
				investments.POST("", r.investmentController.Create)
				investments.GET("", r.investmentController.List)
				investments.PATCH("/:id/value", r.investmentController.UpdateValue)
				investments.DELETE("/:id", r.investmentController.Delete)
			}
		}

		if r.loanController != nil {
			loans := authenticated.Group("/loans")
			{
				loans.POST("", r.loanController.Create)
				loans.GET("", r.loanController.List)
				loans.PATCH("/:id/balance", r.loanController.UpdateBalance)
				loans.DELETE("/:id", r.loanController.Delete)
				if r.analyticsController != nil {
					loans.GET("/:id/analytics", r.analyticsController.LoanAnalytics)
				}
			}
		}

		if r.insuranceController != nil {
			insurance := authenticated.Group("/insurance")
			{
				insurance.POST("", r.insuranceController.Create)
				insurance.GET("", r.insuranceController.List)
				insurance.DELETE("/:id", r.insuranceController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := authenticated.Group("/budgets")
			{
				budgets.POST("", r.budgetController.Create)
				budgets.GET("", r.budgetController.List)
				budgets.PUT("/:category", r.budgetController.Update)
				budgets.DELETE("/:category", r.budgetController.Delete)
			}
		}

		if r.goalController != nil {
			goals := authenticated.Group("/goals")
			{
				goals.POST("", r.goalController.Create)
				goals.GET("", r.goalController.List)
				goals.PATCH("/:id/progress", r.goalController.UpdateProgress)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		if r.dashboardController != nil {
			authenticated.GET("/dashboard", r.dashboardController.Get)
		}

		if r.analyticsController != nil {
			analytics := authenticated.Group("/analytics")
			{
				analytics.GET("/investments", r.analyticsController.InvestmentAnalytics)
				analytics.GET("/income", r.analyticsController.IncomeAnalytics)
				analytics.GET("/goals", r.analyticsController.GoalFeasibility)
			}
			projections := authenticated.Group("/projections")
			{
				projections.POST("/sip", r.analyticsController.ProjectSIP)
				projections.POST("/compound-interest", r.analyticsController.CompoundInterest)
			}
		}

		if r.chatController != nil {
			authenticated.POST("/chat/ask", r.chatController.Ask)
		}
	}
}
