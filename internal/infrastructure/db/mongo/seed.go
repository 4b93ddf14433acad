package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/pkg/logger"
)

// demoPassword is the shared password for the seeded demo accounts.
const demoPassword = "demo2025"

// Seeder loads the demo dataset into Mongo on first boot. Each collection
// is only populated when it is empty, so restarts never duplicate or reset
// data the user has changed.
type Seeder struct {
	db *mongo.Database
}

func NewSeeder(db *mongo.Database) *Seeder {
	return &Seeder{db: db}
}

// Run seeds every collection that is still empty.
func (s *Seeder) Run(ctx context.Context) error {
	log := logger.Get()

	steps := []struct {
		collection string
		docs       func() ([]interface{}, error)
	}{
		{collectionUsers, seedUsers},
		{collectionTransactions, seedTransactions},
		{collectionGSTReturns, seedGSTReturns},
		{collectionInvoices, seedInvoices},
		{collectionPayroll, seedPayroll},
		{collectionTimesheets, seedTimesheets},
		{collectionContracts, seedContracts},
		{collectionReports, seedReports},
	}

	for _, step := range steps {
		col := s.db.Collection(step.collection)

		count, err := col.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("seed %s: %w", step.collection, err)
		}
		if count > 0 {
			continue
		}

		docs, err := step.docs()
		if err != nil {
			return fmt.Errorf("seed %s: %w", step.collection, err)
		}
		if _, err := col.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed %s: %w", step.collection, err)
		}
		log.Info().Str("collection", step.collection).Int("documents", len(docs)).Msg("seeded demo data")
	}
	return nil
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("seed: bad date " + value)
	}
	return t
}

func seedUsers() ([]interface{}, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	subscribed := day("2025-01-01")

	users := []*domain.User{
		{
			ID:               "user1",
			Name:             "Demo User (Free)",
			Email:            "free@example.co.nz",
			Company:          "Startup NZ",
			Tier:             domain.TierFree,
			SubscriptionDate: subscribed,
		},
		{
			ID:               "user2",
			Name:             "Demo User (Lite)",
			Email:            "lite@example.co.nz",
			Company:          "Growing Business Ltd",
			Tier:             domain.TierLite,
			SubscriptionDate: subscribed,
		},
		{
			ID:               "user3",
			Name:             "Demo User (Enterprise)",
			Email:            "enterprise@example.co.nz",
			Company:          "TechCorp NZ Ltd",
			Tier:             domain.TierEnterprise,
			SubscriptionDate: subscribed,
		},
	}

	docs := make([]interface{}, 0, len(users))
	for _, u := range users {
		u.PasswordHash = string(hash)
		u.CreatedAt = now
		u.UpdatedAt = now
		docs = append(docs, u)
	}
	return docs, nil
}

func seedTransactions() ([]interface{}, error) {
	txs := []*domain.Transaction{
		{
			ID: "1", Date: day("2025-12-15"), Description: "Client Payment - ABC Ltd",
			Amount: 5750.00, Type: domain.TransactionIncome, Category: "Sales Revenue",
			CategoryAI: "Sales Revenue", Confidence: 0.95, GSTApplicable: true,
			Notes: "Invoice #1234",
		},
		{
			ID: "2", Date: day("2025-12-14"), Description: "Office Supplies - Warehouse Stationery",
			Amount: -345.60, Type: domain.TransactionExpense, Category: "Office Supplies",
			CategoryAI: "Office Supplies", Confidence: 0.92, GSTApplicable: true,
		},
		{
			ID: "3", Date: day("2025-12-13"), Description: "Professional Services - Consulting",
			Amount: 8625.00, Type: domain.TransactionIncome, Category: "Service Revenue",
			CategoryAI: "Service Revenue", Confidence: 0.98, GSTApplicable: true,
		},
		{
			ID: "4", Date: day("2025-12-12"), Description: "Rent Payment - Commercial Property",
			Amount: -3500.00, Type: domain.TransactionExpense, Category: "Rent",
			CategoryAI: "Rent", Confidence: 0.99, GSTApplicable: true,
		},
		{
			ID: "5", Date: day("2025-12-10"), Description: "Internet - Spark NZ",
			Amount: -89.99, Type: domain.TransactionExpense, Category: "Utilities",
			CategoryAI: "Utilities", Confidence: 0.96, GSTApplicable: true,
		},
		{
			ID: "6", Date: day("2025-12-08"), Description: "Software Subscription - Adobe",
			Amount: -125.00, Type: domain.TransactionExpense, Category: "Software",
			CategoryAI: "Software", Confidence: 0.94, GSTApplicable: true,
		},
		{
			ID: "7", Date: day("2025-12-05"), Description: "Client Payment - XYZ Corp",
			Amount: 12650.00, Type: domain.TransactionIncome, Category: "Sales Revenue",
			CategoryAI: "Sales Revenue", Confidence: 0.97, GSTApplicable: true,
		},
		{
			ID: "8", Date: day("2025-12-03"), Description: "Marketing - Google Ads",
			Amount: -850.00, Type: domain.TransactionExpense, Category: "Marketing",
			CategoryAI: "Marketing", Confidence: 0.93, GSTApplicable: true,
		},
		{
			ID: "9", Date: day("2025-11-28"), Description: "Equipment Purchase - PB Tech",
			Amount: -2400.00, Type: domain.TransactionExpense, Category: "Equipment",
			CategoryAI: "Equipment", Confidence: 0.91, GSTApplicable: true,
		},
		{
			ID: "10", Date: day("2025-11-25"), Description: "Consulting Services Income",
			Amount: 6500.00, Type: domain.TransactionIncome, Category: "Service Revenue",
			CategoryAI: "Service Revenue", Confidence: 0.96, GSTApplicable: true,
		},
	}

	docs := make([]interface{}, 0, len(txs))
	for _, tx := range txs {
		tx.Imported = true
		tx.ImportedAt = tx.Date
		docs = append(docs, tx)
	}
	return docs, nil
}

func seedGSTReturns() ([]interface{}, error) {
	returns := []*domain.GSTReturn{
		{
			ID: "1", Period: "Nov 2025 - Dec 2025",
			StartDate: day("2025-11-01"), EndDate: day("2025-12-31"),
			TotalIncome: 33525.00, TotalExpense: 7310.59,
			GSTCollected: 5028.75, GSTPaid: 1096.59, NetGST: 3932.16,
			Status: domain.GSTReturnDraft, CreatedAt: day("2025-12-31"),
		},
		{
			ID: "2", Period: "Sep 2025 - Oct 2025",
			StartDate: day("2025-09-01"), EndDate: day("2025-10-31"),
			TotalIncome: 28450.00, TotalExpense: 6890.00,
			GSTCollected: 4267.50, GSTPaid: 1033.50, NetGST: 3234.00,
			Status: domain.GSTReturnSubmitted, CreatedAt: day("2025-10-31"),
		},
		{
			ID: "3", Period: "Jul 2025 - Aug 2025",
			StartDate: day("2025-07-01"), EndDate: day("2025-08-31"),
			TotalIncome: 31800.00, TotalExpense: 7200.00,
			GSTCollected: 4770.00, GSTPaid: 1080.00, NetGST: 3690.00,
			Status: domain.GSTReturnPaid, CreatedAt: day("2025-08-31"),
		},
	}

	docs := make([]interface{}, 0, len(returns))
	for _, r := range returns {
		docs = append(docs, r)
	}
	return docs, nil
}

func seedInvoices() ([]interface{}, error) {
	invoices := []*domain.Invoice{
		{
			ID: "1", InvoiceNumber: "INV-2025-001",
			ClientName: "ABC Limited", ClientEmail: "accounts@abc.co.nz",
			IssueDate: day("2025-12-01"), DueDate: day("2025-12-31"),
			Items: []domain.LineItem{
				{Description: "Consulting Services - December", Quantity: 40, UnitPrice: 125.00, Amount: 5000.00},
			},
			Subtotal: 5000.00, GST: 750.00, Total: 5750.00,
			Status: domain.InvoicePaid, CreatedAt: day("2025-12-01"),
		},
		{
			ID: "2", InvoiceNumber: "INV-2025-002",
			ClientName: "XYZ Corporation", ClientEmail: "billing@xyz.co.nz",
			IssueDate: day("2025-12-05"), DueDate: day("2026-01-05"),
			Items: []domain.LineItem{
				{Description: "Software Development", Quantity: 80, UnitPrice: 135.00, Amount: 10800.00},
				{Description: "Project Management", Quantity: 20, UnitPrice: 110.00, Amount: 2200.00},
			},
			Subtotal: 13000.00, GST: 1950.00, Total: 14950.00,
			Status: domain.InvoiceSent, CreatedAt: day("2025-12-05"),
		},
		{
			ID: "3", InvoiceNumber: "INV-2025-003",
			ClientName: "Tech Innovations Ltd", ClientEmail: "finance@techinno.co.nz",
			IssueDate: day("2025-11-20"), DueDate: day("2025-12-20"),
			Items: []domain.LineItem{
				{Description: "AI Implementation Services", Quantity: 60, UnitPrice: 150.00, Amount: 9000.00},
			},
			Subtotal: 9000.00, GST: 1350.00, Total: 10350.00,
			// Stored as sent: overdue is derived from the due date at read time.
			Status: domain.InvoiceSent, CreatedAt: day("2025-11-20"),
		},
	}

	docs := make([]interface{}, 0, len(invoices))
	for _, inv := range invoices {
		docs = append(docs, inv)
	}
	return docs, nil
}

func seedPayroll() ([]interface{}, error) {
	entries := []*domain.PayrollEntry{
		{
			ID: "1", EmployeeID: "emp1", EmployeeName: "John Smith", Period: "December 2025",
			GrossPay: 6250.00, PAYE: 1187.50,
			KiwiSaverEmployee: 187.50, KiwiSaverEmployer: 187.50, NetPay: 4875.00,
			Status: domain.PayrollProcessed, CreatedAt: day("2025-12-20"),
		},
		{
			ID: "2", EmployeeID: "emp2", EmployeeName: "Sarah Johnson", Period: "December 2025",
			GrossPay: 3750.00, PAYE: 562.50,
			KiwiSaverEmployee: 112.50, KiwiSaverEmployer: 112.50, NetPay: 3075.00,
			Status: domain.PayrollProcessed, CreatedAt: day("2025-12-20"),
		},
	}

	docs := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, e)
	}
	return docs, nil
}

func seedTimesheets() ([]interface{}, error) {
	sheets := []*domain.Timesheet{
		{
			ID: "1", EmployeeID: "emp1", EmployeeName: "John Smith",
			WeekStarting: day("2025-12-09"), WeekEnding: day("2025-12-15"),
			Hours:      domain.DailyHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8},
			TotalHours: 40, HourlyRate: 36.06, TotalPay: 1442.40,
			CreatedAt: day("2025-12-15"),
		},
		{
			ID: "2", EmployeeID: "emp2", EmployeeName: "Sarah Johnson",
			WeekStarting: day("2025-12-09"), WeekEnding: day("2025-12-15"),
			Hours:      domain.DailyHours{Monday: 6, Tuesday: 6, Wednesday: 6, Thursday: 6},
			TotalHours: 24, HourlyRate: 35.90, TotalPay: 861.60,
			CreatedAt: day("2025-12-15"),
		},
	}

	docs := make([]interface{}, 0, len(sheets))
	for _, ts := range sheets {
		docs = append(docs, ts)
	}
	return docs, nil
}

func seedContracts() ([]interface{}, error) {
	contracts := []*domain.Contract{
		{
			ID: "1", Type: domain.ContractEmployment, Title: "Full-time Employment Agreement",
			PartyA: "TechCorp NZ Ltd", PartyB: "John Smith",
			StartDate: day("2025-01-15"), Amount: 75000,
			Terms:  "Full-time position, 40 hours per week, 4 weeks annual leave, 3% Kiwisaver",
			Status: domain.ContractActive, CreatedDate: day("2025-01-10"),
		},
		{
			ID: "2", Type: domain.ContractEmployment, Title: "Part-time Employment Agreement",
			PartyA: "TechCorp NZ Ltd", PartyB: "Sarah Johnson",
			StartDate: day("2025-03-01"), Amount: 45000,
			Terms:  "Part-time position, 24 hours per week, 4 weeks annual leave, 3% Kiwisaver",
			Status: domain.ContractActive, CreatedDate: day("2025-02-25"),
		},
		{
			ID: "3", Type: domain.ContractRental, Title: "Commercial Lease Agreement",
			PartyA: "Smith Properties Ltd", PartyB: "TechCorp NZ Ltd",
			StartDate: day("2024-06-01"), EndDate: day("2027-05-31"), Amount: 3500,
			Terms:  "Monthly rent $3,500, 3-year lease, annual CPI increases",
			Status: domain.ContractActive, CreatedDate: day("2024-05-15"),
		},
	}

	docs := make([]interface{}, 0, len(contracts))
	for _, c := range contracts {
		docs = append(docs, c)
	}
	return docs, nil
}

func seedReports() ([]interface{}, error) {
	reports := []*domain.ProfitLossReport{
		{
			Year: 2025,
			Revenue: domain.RevenueBreakdown{
				Sales: 185000, Services: 245000, Other: 15000, Total: 445000,
			},
			Expenses: domain.ExpenseBreakdown{
				Salaries: 180000, Rent: 42000, Utilities: 12000,
				Supplies: 8500, Marketing: 15000, Other: 22000, Total: 279500,
			},
			GrossProfit: 445000, OperatingExpenses: 279500, NetProfit: 165500,
		},
		{
			Year: 2024,
			Revenue: domain.RevenueBreakdown{
				Sales: 165000, Services: 210000, Other: 12000, Total: 387000,
			},
			Expenses: domain.ExpenseBreakdown{
				Salaries: 155000, Rent: 40000, Utilities: 11000,
				Supplies: 7500, Marketing: 12000, Other: 18000, Total: 243500,
			},
			GrossProfit: 387000, OperatingExpenses: 243500, NetProfit: 143500,
		},
	}

	docs := make([]interface{}, 0, len(reports))
	for _, r := range reports {
		docs = append(docs, r)
	}
	return docs, nil
}
