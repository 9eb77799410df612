package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ProjectRow struct {
	Name              string
	Address           string
	Developer         string
	PriceCents        int64
	AreaM2            int64
	Rooms             int64
	DeliveryDate      string
	NotaryAppointment string
}

const getProject = `SELECT name, address, developer, price_cents, area_m2, rooms, delivery_date, notary_appointment
FROM project WHERE id = 1`

func (q *Queries) GetProject(ctx context.Context) (ProjectRow, error) {
	var r ProjectRow
	err := q.db.QueryRowContext(ctx, getProject).Scan(
		&r.Name, &r.Address, &r.Developer, &r.PriceCents, &r.AreaM2, &r.Rooms, &r.DeliveryDate, &r.NotaryAppointment)
	return r, err
}

type FinancialPlanRow struct {
	PropertyPriceCents   int64
	AdditionalCostsCents int64
	LoanAmountCents      int64
	LoanRate             string
	LoanDurationYears    int64
	DownPaymentCents     int64
	MonthlyPaymentCents  int64
	PaidAmountCents      int64
	TotalInterestCents   int64
}

const getFinancialPlan = `SELECT property_price_cents, additional_costs_cents, loan_amount_cents, loan_rate, loan_duration_years,
       down_payment_cents, monthly_payment_cents, paid_amount_cents, total_interest_cents
FROM financial_plan WHERE id = 1`

func (q *Queries) GetFinancialPlan(ctx context.Context) (FinancialPlanRow, error) {
	var r FinancialPlanRow
	err := q.db.QueryRowContext(ctx, getFinancialPlan).Scan(
		&r.PropertyPriceCents, &r.AdditionalCostsCents, &r.LoanAmountCents, &r.LoanRate, &r.LoanDurationYears,
		&r.DownPaymentCents, &r.MonthlyPaymentCents, &r.PaidAmountCents, &r.TotalInterestCents)
	return r, err
}

type PaymentRow struct {
	ID          int64
	Title       string
	AmountCents int64
	DueDate     string
	Description string
	Paid        bool
	Category    string
}

const listPayments = `SELECT id, title, amount_cents, due_date, description, paid, category
FROM payments ORDER BY position, id`

func (q *Queries) ListPayments(ctx context.Context) ([]PaymentRow, error) {
	return queryRows(ctx, q.db, listPayments, func(rows *sql.Rows) (PaymentRow, error) {
		var r PaymentRow
		err := rows.Scan(&r.ID, &r.Title, &r.AmountCents, &r.DueDate, &r.Description, &r.Paid, &r.Category)
		return r, err
	})
}

type ExpenseRow struct {
	ID          int64
	Name        string
	AmountCents int64
	Category    string
	Paid        bool
}

const listExpenses = `SELECT id, name, amount_cents, category, paid
FROM expenses ORDER BY position, id`

func (q *Queries) ListExpenses(ctx context.Context) ([]ExpenseRow, error) {
	return queryRows(ctx, q.db, listExpenses, func(rows *sql.Rows) (ExpenseRow, error) {
		var r ExpenseRow
		err := rows.Scan(&r.ID, &r.Name, &r.AmountCents, &r.Category, &r.Paid)
		return r, err
	})
}

type DocumentRow struct {
	ID        int64
	Name      string
	Category  string
	Date      string
	SizeBytes int64
	FileType  string
}

const listDocuments = `SELECT id, name, category, date, size_bytes, file_type
FROM documents ORDER BY position, id`

func (q *Queries) ListDocuments(ctx context.Context) ([]DocumentRow, error) {
	return queryRows(ctx, q.db, listDocuments, func(rows *sql.Rows) (DocumentRow, error) {
		var r DocumentRow
		err := rows.Scan(&r.ID, &r.Name, &r.Category, &r.Date, &r.SizeBytes, &r.FileType)
		return r, err
	})
}

type ContactRow struct {
	ID       int64
	Name     string
	Role     string
	Company  string
	Category string
	Email    string
	Phone    string
	Notes    string
}

const listContacts = `SELECT id, name, role, company, category, email, phone, notes
FROM contacts ORDER BY position, id`

func (q *Queries) ListContacts(ctx context.Context) ([]ContactRow, error) {
	return queryRows(ctx, q.db, listContacts, func(rows *sql.Rows) (ContactRow, error) {
		var r ContactRow
		err := rows.Scan(&r.ID, &r.Name, &r.Role, &r.Company, &r.Category, &r.Email, &r.Phone, &r.Notes)
		return r, err
	})
}

type StepRow struct {
	ID          int64
	Name        string
	Description string
	Date        string
	Completed   bool
}

const listSteps = `SELECT id, name, description, date, completed
FROM steps ORDER BY position, id`

func (q *Queries) ListSteps(ctx context.Context) ([]StepRow, error) {
	return queryRows(ctx, q.db, listSteps, func(rows *sql.Rows) (StepRow, error) {
		var r StepRow
		err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Date, &r.Completed)
		return r, err
	})
}

type StepDocumentRow struct {
	ID       int64
	StepID   int64
	Name     string
	Uploaded bool
}

const listStepDocuments = `SELECT id, step_id, name, uploaded
FROM step_documents ORDER BY step_id, position, id`

func (q *Queries) ListStepDocuments(ctx context.Context) ([]StepDocumentRow, error) {
	return queryRows(ctx, q.db, listStepDocuments, func(rows *sql.Rows) (StepDocumentRow, error) {
		var r StepDocumentRow
		err := rows.Scan(&r.ID, &r.StepID, &r.Name, &r.Uploaded)
		return r, err
	})
}

func queryRows[T any](ctx context.Context, db DBTX, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []T
	for rows.Next() {
		it, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
