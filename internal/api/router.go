package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/aitax/tax-system/docs"
	"github.com/aitax/tax-system/internal/api/handler"
	"github.com/aitax/tax-system/internal/api/middleware"
	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

// Dependencies carries everything the router needs. Services are built in
// main so the dispatcher and session bootstrap share the same instances.
type Dependencies struct {
	JWTSecret string
	Logger    zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client

	Auth       ports.AuthService
	Sessions   ports.SessionService
	Bank       ports.BankService
	GST        ports.GSTService
	Invoices   ports.InvoiceService
	Payroll    ports.PayrollService
	Timesheets ports.TimesheetService
	Contracts  ports.ContractService
	Reports    ports.ReportService
	Assistant  ports.AssistantService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taxsystem"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	sessionHandler := handler.NewSessionHandler(deps.Sessions)
	transactionHandler := handler.NewTransactionHandler(deps.Bank)
	gstHandler := handler.NewGSTHandler(deps.GST)
	invoiceHandler := handler.NewInvoiceHandler(deps.Invoices)
	payrollHandler := handler.NewPayrollHandler(deps.Payroll)
	timesheetHandler := handler.NewTimesheetHandler(deps.Timesheets)
	contractHandler := handler.NewContractHandler(deps.Contracts)
	reportHandler := handler.NewReportHandler(deps.Reports)
	assistantHandler := handler.NewAssistantHandler(deps.Assistant)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/demo-login", authHandler.DemoLogin)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))

	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/session", sessionHandler.Current)
	v1.GET("/session/features/:feature", sessionHandler.CheckFeature)

	// Bank feed. Classification endpoints need the AI tier.
	bank := v1.Group("/transactions", middleware.RequireFeature(domain.FeatureBankImport))
	bank.GET("", transactionHandler.List)
	bank.POST("/import", transactionHandler.Import)
	bank.PUT("/:id/category", transactionHandler.SetCategory)
	bank.POST("/classify", transactionHandler.ClassifyAll, middleware.RequireFeature(domain.FeatureAIClassification))
	bank.POST("/:id/classify", transactionHandler.Classify, middleware.RequireFeature(domain.FeatureAIClassification))

	gst := v1.Group("/gst-returns", middleware.RequireFeature(domain.FeatureGSTCalculation))
	gst.GET("", gstHandler.List)
	gst.GET("/:id", gstHandler.Get)
	gst.POST("", gstHandler.Create)
	gst.POST("/:id/submit", gstHandler.Submit)
	gst.POST("/:id/pay", gstHandler.MarkPaid)

	invoices := v1.Group("/invoices", middleware.RequireFeature(domain.FeatureInvoices))
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.POST("", invoiceHandler.Create)
	invoices.POST("/:id/send", invoiceHandler.Send)
	invoices.POST("/:id/pay", invoiceHandler.MarkPaid)

	payroll := v1.Group("/payroll", middleware.RequireFeature(domain.FeaturePayroll))
	payroll.GET("", payrollHandler.List)
	payroll.POST("/run", payrollHandler.Run)
	payroll.POST("/:id/pay", payrollHandler.MarkPaid)

	timesheets := v1.Group("/timesheets", middleware.RequireFeature(domain.FeatureTimesheets))
	timesheets.GET("", timesheetHandler.List)
	timesheets.POST("", timesheetHandler.Create)

	contracts := v1.Group("/contracts", middleware.RequireFeature(domain.FeatureContracts))
	contracts.GET("", contractHandler.List)
	contracts.GET("/:id", contractHandler.Get)
	contracts.POST("", contractHandler.Create)

	reports := v1.Group("/reports", middleware.RequireFeature(domain.FeatureTaxReports))
	reports.GET("/profit-loss", reportHandler.ProfitLoss)
	reports.GET("/tax-summary", reportHandler.TaxSummary)

	v1.GET("/dashboard/summary", reportHandler.DashboardSummary)

	v1.POST("/assistant/ask", assistantHandler.Ask, middleware.RequireFeature(domain.FeatureChatbot))

	return e
}
