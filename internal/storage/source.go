package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"vefa/internal/core"
	"vefa/internal/seed"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads the seed snapshot from a SQLite database whose schema
// and fixture rows are created by the embedded migrations. It never writes
// session mutations back.
type SQLiteSource struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteSource(dbPath string) (*SQLiteSource, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteSource{db: db, queries: New(db)}, nil
}

func (s *SQLiteSource) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *SQLiteSource) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Load implements seed.Source.
func (s *SQLiteSource) Load(ctx context.Context) (seed.Snapshot, error) {
	var snap seed.Snapshot

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return snap, fmt.Errorf("begin read: %w", err)
	}
	defer tx.Rollback()
	q := s.queries.WithTx(tx)

	project, err := q.GetProject(ctx)
	if err != nil {
		return snap, fmt.Errorf("get project: %w", err)
	}
	snap.Project = core.Project{
		Name:              project.Name,
		Address:           project.Address,
		Developer:         project.Developer,
		Price:             core.Money{Cents: project.PriceCents},
		AreaSquareMeters:  int(project.AreaM2),
		Rooms:             int(project.Rooms),
		DeliveryDate:      core.ParseDate(project.DeliveryDate),
		NotaryAppointment: core.ParseDate(project.NotaryAppointment),
	}

	plan, err := q.GetFinancialPlan(ctx)
	if err != nil {
		return snap, fmt.Errorf("get financial plan: %w", err)
	}
	rate, err := decimal.NewFromString(plan.LoanRate)
	if err != nil {
		return snap, fmt.Errorf("parse loan rate %q: %w", plan.LoanRate, err)
	}
	snap.Finance = core.FinancialPlan{
		PropertyPrice:     core.Money{Cents: plan.PropertyPriceCents},
		AdditionalCosts:   core.Money{Cents: plan.AdditionalCostsCents},
		LoanAmount:        core.Money{Cents: plan.LoanAmountCents},
		LoanRate:          rate,
		LoanDurationYears: int(plan.LoanDurationYears),
		DownPayment:       core.Money{Cents: plan.DownPaymentCents},
		MonthlyPayment:    core.Money{Cents: plan.MonthlyPaymentCents},
		PaidAmount:        core.Money{Cents: plan.PaidAmountCents},
		TotalInterest:     core.Money{Cents: plan.TotalInterestCents},
	}

	payments, err := q.ListPayments(ctx)
	if err != nil {
		return snap, fmt.Errorf("list payments: %w", err)
	}
	for _, p := range payments {
		category, err := core.ParsePaymentCategory(p.Category)
		if err != nil {
			return snap, fmt.Errorf("payment %d: %w", p.ID, err)
		}
		snap.Payments = append(snap.Payments, core.Payment{
			ID:          p.ID,
			Title:       p.Title,
			Amount:      core.Money{Cents: p.AmountCents},
			DueDate:     core.ParseDate(p.DueDate),
			Description: p.Description,
			Paid:        p.Paid,
			Category:    category,
		})
	}

	expenses, err := q.ListExpenses(ctx)
	if err != nil {
		return snap, fmt.Errorf("list expenses: %w", err)
	}
	for _, e := range expenses {
		category, err := core.ParseExpenseCategory(e.Category)
		if err != nil {
			return snap, fmt.Errorf("expense %d: %w", e.ID, err)
		}
		snap.Expenses = append(snap.Expenses, core.Expense{
			ID:       e.ID,
			Name:     e.Name,
			Amount:   core.Money{Cents: e.AmountCents},
			Category: category,
			Paid:     e.Paid,
		})
	}

	documents, err := q.ListDocuments(ctx)
	if err != nil {
		return snap, fmt.Errorf("list documents: %w", err)
	}
	for _, d := range documents {
		category, err := core.ParseDocumentCategory(d.Category)
		if err != nil {
			return snap, fmt.Errorf("document %d: %w", d.ID, err)
		}
		snap.Documents = append(snap.Documents, core.Document{
			ID:        d.ID,
			Name:      d.Name,
			Category:  category,
			Date:      core.ParseDate(d.Date),
			SizeBytes: d.SizeBytes,
			FileType:  d.FileType,
		})
	}

	contacts, err := q.ListContacts(ctx)
	if err != nil {
		return snap, fmt.Errorf("list contacts: %w", err)
	}
	for _, c := range contacts {
		category, err := core.ParseContactCategory(c.Category)
		if err != nil {
			return snap, fmt.Errorf("contact %d: %w", c.ID, err)
		}
		snap.Contacts = append(snap.Contacts, core.Contact{
			ID:       c.ID,
			Name:     c.Name,
			Role:     c.Role,
			Company:  c.Company,
			Category: category,
			Email:    c.Email,
			Phone:    c.Phone,
			Notes:    c.Notes,
		})
	}

	steps, err := q.ListSteps(ctx)
	if err != nil {
		return snap, fmt.Errorf("list steps: %w", err)
	}
	stepDocs, err := q.ListStepDocuments(ctx)
	if err != nil {
		return snap, fmt.Errorf("list step documents: %w", err)
	}
	byStep := make(map[int64][]core.StepDocument)
	for _, d := range stepDocs {
		byStep[d.StepID] = append(byStep[d.StepID], core.StepDocument{ID: d.ID, Name: d.Name, Uploaded: d.Uploaded})
	}
	for _, st := range steps {
		snap.Steps = append(snap.Steps, core.PurchaseStep{
			ID:          st.ID,
			Name:        st.Name,
			Description: st.Description,
			Date:        core.ParseDate(st.Date),
			Completed:   st.Completed,
			Documents:   byStep[st.ID],
		})
	}

	if err := snap.Validate(); err != nil {
		return snap, fmt.Errorf("invalid seed data: %w", err)
	}

	slog.DebugContext(ctx, "Seed snapshot loaded from SQLite",
		"payments", len(snap.Payments),
		"documents", len(snap.Documents),
		"contacts", len(snap.Contacts),
		"steps", len(snap.Steps))

	return snap, nil
}
