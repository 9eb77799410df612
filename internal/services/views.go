package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"vefa/internal/collection"
	"vefa/internal/core"
	"vefa/internal/session"
)

// CategoryChip is one entry of a category selector.
type CategoryChip struct {
	Label  string
	Value  string
	Count  int
	Active bool
}

// ScheduleSummary aggregates the payment schedule.
type ScheduleSummary struct {
	Payments          []core.Payment
	Total             core.Money
	Paid              core.Money
	Remaining         core.Money
	PaidCount         int
	PaidPercentage    decimal.Decimal
	PendingPercentage decimal.Decimal
}

// FinanceSummary aggregates the financing plan and the additional expenses.
// Remaining and PaidPercentage follow the plan's recorded paid amount, not
// the payment schedule: toggling a payment leaves them unchanged.
type FinanceSummary struct {
	Plan               core.FinancialPlan
	TotalPrice         core.Money
	Remaining          core.Money
	PaidPercentage     decimal.Decimal
	DownPaymentRatio   decimal.Decimal
	TotalLoanCost      core.Money
	Expenses           []core.Expense
	ExpensesTotal      core.Money
	ExpensesPaid       core.Money
	ExpensesRemaining  core.Money
	ExpensesPercentage decimal.Decimal
}

// DocumentsView is the filtered document list.
type DocumentsView struct {
	Documents []core.Document
	Category  string
	Query     string
	Chips     []CategoryChip
	TotalSize int64
	Total     int
}

// ContactsView is the filtered contact list.
type ContactsView struct {
	Contacts []core.Contact
	Category string
	Chips    []CategoryChip
	Total    int
}

// StepProgress is a step with its document counts.
type StepProgress struct {
	Step     core.PurchaseStep
	Uploaded int
	Expected int
}

// StepsView lists the purchase steps with overall completion.
type StepsView struct {
	Steps      []StepProgress
	Completed  int
	Total      int
	Completion decimal.Decimal
}

// Overview is the dashboard summary.
type Overview struct {
	Project        core.Project
	Completion     decimal.Decimal
	CompletedSteps int
	TotalSteps     int
	NextPayment    *core.Payment
	Schedule       ScheduleSummary
	DocumentsCount int
	ContactsCount  int
}

// BuildSchedule aggregates the payments of st.
func BuildSchedule(st session.State) ScheduleSummary {
	items := st.Payments.Items()
	total := collection.Sum(items, core.PaymentCents)
	paid := collection.SumWhere(items, core.PaymentCents, core.IsPaid)
	pct := collection.Percentage(paid, total)
	return ScheduleSummary{
		Payments:          items,
		Total:             core.Money{Cents: total},
		Paid:              core.Money{Cents: paid},
		Remaining:         core.Money{Cents: total - paid},
		PaidCount:         collection.CountWhere(items, core.IsPaid),
		PaidPercentage:    pct,
		PendingPercentage: decimal.NewFromInt(100).Sub(pct),
	}
}

// BuildFinance aggregates the financing plan and expenses of st.
func BuildFinance(st session.State) FinanceSummary {
	plan := st.Finance
	totalPrice := plan.TotalPrice()
	items := st.Expenses.Items()
	expTotal := collection.Sum(items, core.ExpenseCents)
	expPaid := collection.SumWhere(items, core.ExpenseCents, core.IsExpensePaid)

	return FinanceSummary{
		Plan:               plan,
		TotalPrice:         totalPrice,
		Remaining:          totalPrice.Sub(plan.PaidAmount),
		PaidPercentage:     collection.Percentage(plan.PaidAmount.Cents, totalPrice.Cents),
		DownPaymentRatio:   collection.Percentage(plan.DownPayment.Cents, plan.PropertyPrice.Cents),
		TotalLoanCost:      plan.TotalLoanCost(),
		Expenses:           items,
		ExpensesTotal:      core.Money{Cents: expTotal},
		ExpensesPaid:       core.Money{Cents: expPaid},
		ExpensesRemaining:  core.Money{Cents: expTotal - expPaid},
		ExpensesPercentage: collection.Percentage(expPaid, expTotal),
	}
}

// BuildDocuments filters the documents of st. A category that is neither the
// "all" sentinel nor a known category matches nothing.
func BuildDocuments(st session.State, category, query string) DocumentsView {
	all := st.Documents.Items()
	items := collection.Filter(all,
		collection.InCategory[core.Document](category, core.DocumentCategoryOf),
		collection.MatchesQuery[core.Document](query, core.DocumentName))

	return DocumentsView{
		Documents: items,
		Category:  selectedLabel(category),
		Query:     query,
		Chips:     chips(all, core.DocumentCategories(), core.DocumentCategoryOf, category),
		TotalSize: collection.Sum(items, core.DocumentSize),
		Total:     len(all),
	}
}

// BuildContacts filters the contacts of st by category.
func BuildContacts(st session.State, category string) ContactsView {
	all := st.Contacts.Items()
	return ContactsView{
		Contacts: collection.Filter(all, collection.InCategory[core.Contact](category, core.ContactCategoryOf)),
		Category: selectedLabel(category),
		Chips:    chips(all, core.ContactCategories(), core.ContactCategoryOf, category),
		Total:    len(all),
	}
}

// BuildSteps reports per-step document progress and overall completion.
func BuildSteps(st session.State) StepsView {
	items := st.Steps.Items()
	out := make([]StepProgress, len(items))
	for i, s := range items {
		out[i] = StepProgress{Step: s, Uploaded: s.UploadedCount(), Expected: len(s.Documents)}
	}
	done := collection.CountWhere(items, core.IsCompleted)
	return StepsView{
		Steps:      out,
		Completed:  done,
		Total:      len(items),
		Completion: collection.Percentage(int64(done), int64(len(items))),
	}
}

// BuildOverview assembles the dashboard. The next payment is the unpaid
// payment with the earliest due date; ties keep schedule order.
func BuildOverview(st session.State) Overview {
	steps := BuildSteps(st)
	ov := Overview{
		Project:        st.Project,
		Completion:     steps.Completion,
		CompletedSteps: steps.Completed,
		TotalSteps:     steps.Total,
		Schedule:       BuildSchedule(st),
		DocumentsCount: st.Documents.Len(),
		ContactsCount:  st.Contacts.Len(),
	}

	unpaid := st.Payments.Filter(func(p core.Payment) bool { return !p.Paid })
	sort.SliceStable(unpaid, func(i, j int) bool {
		return dueBefore(unpaid[i].DueDate, unpaid[j].DueDate)
	})
	if len(unpaid) > 0 {
		next := unpaid[0]
		ov.NextPayment = &next
	}
	return ov
}

// dueBefore orders valid dates chronologically, before malformed ones.
func dueBefore(a, b core.Date) bool {
	switch {
	case a.IsZero() && b.IsZero():
		return false
	case a.IsZero():
		return false
	case b.IsZero():
		return true
	}
	return a.Before(b.Time)
}

func selectedLabel(category string) string {
	if collection.IsAll(category) {
		return collection.AllLabel
	}
	return category
}

func chips[T any, C ~string](items []T, categories []C, categoryOf func(T) C, selected string) []CategoryChip {
	out := make([]CategoryChip, 0, len(categories)+1)
	out = append(out, CategoryChip{
		Label:  collection.AllLabel,
		Value:  collection.AllLabel,
		Count:  len(items),
		Active: collection.IsAll(selected),
	})
	for _, c := range categories {
		out = append(out, CategoryChip{
			Label:  string(c),
			Value:  string(c),
			Count:  collection.CountWhere(items, func(it T) bool { return categoryOf(it) == c }),
			Active: string(c) == selected,
		})
	}
	return out
}
