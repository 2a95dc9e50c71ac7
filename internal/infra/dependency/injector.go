// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-advisor/backend/config"
	"github.com/finance-advisor/backend/internal/application/usecase/analytics"
	"github.com/finance-advisor/backend/internal/application/usecase/auth"
	"github.com/finance-advisor/backend/internal/application/usecase/chat"
	"github.com/finance-advisor/backend/internal/application/usecase/dashboard"
	"github.com/finance-advisor/backend/internal/application/usecase/finance"
	"github.com/finance-advisor/backend/internal/application/usecase/goal"
	"github.com/finance-advisor/backend/internal/infra/server/router"
	"github.com/finance-advisor/backend/internal/integration/adapters"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/controller"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-advisor/backend/internal/integration/persistence"
	"github.com/finance-advisor/backend/internal/integration/scheduler"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	Refresher *scheduler.DashboardRefresher
	Redis     *redis.Client
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	loanRepo := persistence.NewLoanRepository(db)
	insuranceRepo := persistence.NewInsuranceRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	advisorService := adapters.NewGeminiService(cfg.Gemini.APIKey)

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)
	metricsCache := adapters.NewRedisMetricsCache(redisClient, cfg.Redis.CacheTTL)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create income use cases
	createIncomeUseCase := finance.NewCreateIncomeUseCase(incomeRepo, metricsCache)
	listIncomesUseCase := finance.NewListIncomesUseCase(incomeRepo)
	deleteIncomeUseCase := finance.NewDeleteIncomeUseCase(incomeRepo, metricsCache)

	// Create expense use cases
	createExpenseUseCase := finance.NewCreateExpenseUseCase(expenseRepo, metricsCache)
	listExpensesUseCase := finance.NewListExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := finance.NewDeleteExpenseUseCase(expenseRepo, metricsCache)

	// Create investment use cases
	createInvestmentUseCase := finance.NewCreateInvestmentUseCase(investmentRepo, metricsCache)
	listInvestmentsUseCase := finance.NewListInvestmentsUseCase(investmentRepo)
	updateInvestmentValueUseCase := finance.NewUpdateInvestmentValueUseCase(investmentRepo, metricsCache)
	deleteInvestmentUseCase := finance.NewDeleteInvestmentUseCase(investmentRepo, metricsCache)

	// Create loan use cases
	createLoanUseCase := finance.NewCreateLoanUseCase(loanRepo, metricsCache)
	listLoansUseCase := finance.NewListLoansUseCase(loanRepo)
	updateLoanBalanceUseCase := finance.NewUpdateLoanBalanceUseCase(loanRepo, metricsCache)
	deleteLoanUseCase := finance.NewDeleteLoanUseCase(loanRepo, metricsCache)

	// Create insurance use cases
	createInsuranceUseCase := finance.NewCreateInsuranceUseCase(insuranceRepo, metricsCache)
	listInsuranceUseCase := finance.NewListInsuranceUseCase(insuranceRepo)
	deleteInsuranceUseCase := finance.NewDeleteInsuranceUseCase(insuranceRepo, metricsCache)

	// Create budget use cases
	createBudgetUseCase := finance.NewCreateBudgetUseCase(budgetRepo, metricsCache)
	listBudgetsUseCase := finance.NewListBudgetsUseCase(budgetRepo)
	updateBudgetUseCase := finance.NewUpdateBudgetUseCase(budgetRepo, metricsCache)
	deleteBudgetUseCase := finance.NewDeleteBudgetUseCase(budgetRepo, metricsCache)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	updateGoalProgressUseCase := goal.NewUpdateGoalProgressUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create dashboard use cases
	snapshotAssembler := dashboard.NewSnapshotAssembler(
		incomeRepo,
		expenseRepo,
		investmentRepo,
		loanRepo,
		insuranceRepo,
		goalRepo,
		budgetRepo,
	)
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(snapshotAssembler, metricsCache)

	// Create analytics use cases
	loanAnalyticsUseCase := analytics.NewGetLoanAnalyticsUseCase(loanRepo, incomeRepo)
	investmentAnalyticsUseCase := analytics.NewGetInvestmentAnalyticsUseCase(investmentRepo)
	incomeAnalyticsUseCase := analytics.NewGetIncomeAnalyticsUseCase(incomeRepo, expenseRepo, budgetRepo)
	goalFeasibilityUseCase := analytics.NewGetGoalFeasibilityUseCase(goalRepo, incomeRepo, expenseRepo)
	projectSIPUseCase := analytics.NewProjectSIPUseCase()
	compoundInterestUseCase := analytics.NewCompoundInterestUseCase()

	// Create chat use case
	askAdvisorUseCase := chat.NewAskAdvisorUseCase(snapshotAssembler, advisorService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	incomeController := controller.NewIncomeController(
		createIncomeUseCase,
		listIncomesUseCase,
		deleteIncomeUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		deleteExpenseUseCase,
	)

	investmentController := controller.NewInvestmentController(
		createInvestmentUseCase,
		listInvestmentsUseCase,
		updateInvestmentValueUseCase,
		deleteInvestmentUseCase,
	)

	loanController := controller.NewLoanController(
		createLoanUseCase,
		listLoansUseCase,
		updateLoanBalanceUseCase,
		deleteLoanUseCase,
	)

	insuranceController := controller.NewInsuranceController(
		createInsuranceUseCase,
		listInsuranceUseCase,
		deleteInsuranceUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		updateGoalProgressUseCase,
		deleteGoalUseCase,
	)

	dashboardController := controller.NewDashboardController(getDashboardUseCase)

	analyticsController := controller.NewAnalyticsController(
		loanAnalyticsUseCase,
		investmentAnalyticsUseCase,
		incomeAnalyticsUseCase,
		goalFeasibilityUseCase,
		projectSIPUseCase,
		compoundInterestUseCase,
	)

	chatController := controller.NewChatController(askAdvisorUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create scheduler
	refresher := scheduler.NewDashboardRefresher(userRepo, snapshotAssembler, metricsCache)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		incomeController,
		expenseController,
		investmentController,
		loanController,
		insuranceController,
		budgetController,
		goalController,
		dashboardController,
		analyticsController,
		chatController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:    cfg,
		DB:        db,
		Router:    r,
		Refresher: refresher,
		Redis:     redisClient,
	}, nil
}
