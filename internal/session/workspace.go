// Package session keeps one set of record collections per browser session.
package session

import (
	"sync"

	"vefa/internal/collection"
	"vefa/internal/core"
	"vefa/internal/seed"
)

// State is an immutable view of a workspace at one point in time.
type State struct {
	Project   core.Project
	Finance   core.FinancialPlan
	Payments  collection.Collection[core.Payment]
	Expenses  collection.Collection[core.Expense]
	Documents collection.Collection[core.Document]
	Contacts  collection.Collection[core.Contact]
	Steps     collection.Collection[core.PurchaseStep]
}

// Revision returns the revision of the given domain's collection.
func (s State) Revision(d core.Domain) uint64 {
	switch d {
	case core.DomainPayments:
		return s.Payments.Revision()
	case core.DomainExpenses:
		return s.Expenses.Revision()
	case core.DomainDocuments:
		return s.Documents.Revision()
	case core.DomainContacts:
		return s.Contacts.Revision()
	case core.DomainSteps:
		return s.Steps.Revision()
	}
	return 0
}

// Result describes one mutation.
type Result struct {
	Domain   core.Domain
	Action   core.Action
	RecordID int64
	Changed  bool
	Revision uint64
}

// Workspace owns the collections of one session. Mutations are serialised;
// the collections themselves are values, so a State can be read without
// holding the lock.
type Workspace struct {
	mu    sync.Mutex
	seed  seed.Snapshot
	state State
	// generation counts reseeds so ETags change even when a reseed resets
	// a collection revision back to zero.
	generation uint64
}

// NewWorkspace starts a workspace from snap. snap must not be modified
// afterwards.
func NewWorkspace(snap seed.Snapshot) *Workspace {
	w := &Workspace{seed: snap}
	for _, d := range core.Domains() {
		w.reseed(d)
	}
	w.state.Project = snap.Project
	w.state.Finance = snap.Finance
	return w
}

// State returns the current state.
func (w *Workspace) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Generation returns the number of reseeds applied so far.
func (w *Workspace) Generation() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generation
}

// Reseed resets one domain to the seed records.
func (w *Workspace) Reseed(d core.Domain) Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reseed(d)
	w.generation++
	return Result{Domain: d, Action: core.ActionReseed, Changed: true, Revision: w.state.Revision(d)}
}

func (w *Workspace) reseed(d core.Domain) {
	s := w.seed.Clone()
	switch d {
	case core.DomainPayments:
		w.state.Payments = collection.New(s.Payments...)
	case core.DomainExpenses:
		w.state.Expenses = collection.New(s.Expenses...)
	case core.DomainDocuments:
		w.state.Documents = collection.New(s.Documents...)
	case core.DomainContacts:
		w.state.Contacts = collection.New(s.Contacts...)
	case core.DomainSteps:
		w.state.Steps = collection.New(s.Steps...)
	}
}

// TogglePayment flips the paid flag of a payment.
func (w *Workspace) TogglePayment(id int64) Result {
	return mutate(w, core.DomainPayments, core.ActionToggle, id, &w.state.Payments,
		func(c collection.Collection[core.Payment]) collection.Collection[core.Payment] {
			return c.ToggleField(id, core.FlagPaid, core.PaymentFlags)
		})
}

// ToggleExpense flips the paid flag of an expense.
func (w *Workspace) ToggleExpense(id int64) Result {
	return mutate(w, core.DomainExpenses, core.ActionToggle, id, &w.state.Expenses,
		func(c collection.Collection[core.Expense]) collection.Collection[core.Expense] {
			return c.ToggleField(id, core.FlagPaid, core.ExpenseFlags)
		})
}

// ToggleStep flips the completed flag of a step.
func (w *Workspace) ToggleStep(id int64) Result {
	return mutate(w, core.DomainSteps, core.ActionToggle, id, &w.state.Steps,
		func(c collection.Collection[core.PurchaseStep]) collection.Collection[core.PurchaseStep] {
			return c.ToggleField(id, core.FlagCompleted, core.StepFlags)
		})
}

// ToggleStepDocument flips the uploaded flag of one document of a step.
// The result's RecordID is the document id.
func (w *Workspace) ToggleStepDocument(stepID, docID int64) Result {
	return mutate(w, core.DomainSteps, core.ActionToggleDocument, docID, &w.state.Steps,
		func(c collection.Collection[core.PurchaseStep]) collection.Collection[core.PurchaseStep] {
			return core.ToggleStepDocument(c, stepID, docID)
		})
}

// RemoveDocument deletes a document.
func (w *Workspace) RemoveDocument(id int64) Result {
	return mutate(w, core.DomainDocuments, core.ActionRemove, id, &w.state.Documents,
		func(c collection.Collection[core.Document]) collection.Collection[core.Document] {
			return c.Remove(id)
		})
}

// RemoveContact deletes a contact.
func (w *Workspace) RemoveContact(id int64) Result {
	return mutate(w, core.DomainContacts, core.ActionRemove, id, &w.state.Contacts,
		func(c collection.Collection[core.Contact]) collection.Collection[core.Contact] {
			return c.Remove(id)
		})
}

func mutate[T collection.Record](w *Workspace, d core.Domain, a core.Action, id int64,
	target *collection.Collection[T], fn func(collection.Collection[T]) collection.Collection[T]) Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	before := target.Revision()
	*target = fn(*target)
	after := target.Revision()
	return Result{Domain: d, Action: a, RecordID: id, Changed: after != before, Revision: after}
}
