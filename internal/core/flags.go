package core

import "vefa/internal/collection"

// Toggleable field names.
const (
	FlagPaid      = "paid"
	FlagCompleted = "completed"
	FlagUploaded  = "uploaded"
)

var (
	PaymentFlags = collection.FlagSet[Payment]{{
		Name: FlagPaid,
		Get:  func(p Payment) bool { return p.Paid },
		Set:  func(p Payment, v bool) Payment { p.Paid = v; return p },
	}}

	ExpenseFlags = collection.FlagSet[Expense]{{
		Name: FlagPaid,
		Get:  func(e Expense) bool { return e.Paid },
		Set:  func(e Expense, v bool) Expense { e.Paid = v; return e },
	}}

	StepFlags = collection.FlagSet[PurchaseStep]{{
		Name: FlagCompleted,
		Get:  func(s PurchaseStep) bool { return s.Completed },
		Set:  func(s PurchaseStep, v bool) PurchaseStep { s.Completed = v; return s },
	}}

	StepDocumentFlags = collection.FlagSet[StepDocument]{{
		Name: FlagUploaded,
		Get:  func(d StepDocument) bool { return d.Uploaded },
		Set:  func(d StepDocument, v bool) StepDocument { d.Uploaded = v; return d },
	}}
)

// IsPaid and friends are predicates for aggregations.
func IsPaid(p Payment) bool           { return p.Paid }
func IsExpensePaid(e Expense) bool    { return e.Paid }
func IsCompleted(s PurchaseStep) bool { return s.Completed }

// ToggleDocument flips the uploaded flag of one of the step's documents.
// The step is returned unchanged, with false, when docID is not one of them.
func (s PurchaseStep) ToggleDocument(docID int64) (PurchaseStep, bool) {
	docs := collection.New(s.Documents...)
	next := docs.ToggleField(docID, FlagUploaded, StepDocumentFlags)
	if next.Revision() == docs.Revision() {
		return s, false
	}
	s.Documents = next.Items()
	return s, true
}

// ToggleStepDocument flips one nested document inside one step, leaving
// sibling steps and sibling documents untouched. Unknown step or document
// ids return steps unchanged.
func ToggleStepDocument(steps collection.Collection[PurchaseStep], stepID, docID int64) collection.Collection[PurchaseStep] {
	step, ok := steps.Get(stepID)
	if !ok {
		return steps
	}
	updated, changed := step.ToggleDocument(docID)
	if !changed {
		return steps
	}
	return steps.Update(stepID, func(PurchaseStep) PurchaseStep { return updated })
}
