// Package seed holds the initial records of a purchase: the state every
// session starts from and is reset to when a page is reloaded.
package seed

import (
	"context"
	"errors"
	"fmt"

	"vefa/internal/collection"
	"vefa/internal/core"
)

// Snapshot is a complete set of seed records.
type Snapshot struct {
	Project   core.Project
	Finance   core.FinancialPlan
	Payments  []core.Payment
	Expenses  []core.Expense
	Documents []core.Document
	Contacts  []core.Contact
	Steps     []core.PurchaseStep
}

// Source loads a seed snapshot.
type Source interface {
	Load(ctx context.Context) (Snapshot, error)
}

// Clone returns a deep copy so callers never share backing arrays.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Payments = append([]core.Payment(nil), s.Payments...)
	out.Expenses = append([]core.Expense(nil), s.Expenses...)
	out.Documents = append([]core.Document(nil), s.Documents...)
	out.Contacts = append([]core.Contact(nil), s.Contacts...)
	out.Steps = make([]core.PurchaseStep, len(s.Steps))
	for i, st := range s.Steps {
		st.Documents = append([]core.StepDocument(nil), st.Documents...)
		out.Steps[i] = st
	}
	return out
}

// Validate checks every record and identifier uniqueness per domain.
func (s Snapshot) Validate() error {
	var errs []error
	check := func(domain string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain, err))
		}
	}

	check("payments", collection.New(s.Payments...).Validate())
	check("expenses", collection.New(s.Expenses...).Validate())
	check("documents", collection.New(s.Documents...).Validate())
	check("contacts", collection.New(s.Contacts...).Validate())
	check("steps", collection.New(s.Steps...).Validate())

	for _, p := range s.Payments {
		check(fmt.Sprintf("payment %d", p.ID), p.Validate())
	}
	for _, e := range s.Expenses {
		check(fmt.Sprintf("expense %d", e.ID), e.Validate())
	}
	for _, d := range s.Documents {
		check(fmt.Sprintf("document %d", d.ID), d.Validate())
	}
	for _, c := range s.Contacts {
		check(fmt.Sprintf("contact %d", c.ID), c.Validate())
	}
	for _, st := range s.Steps {
		check(fmt.Sprintf("step %d", st.ID), st.Validate())
		check(fmt.Sprintf("step %d documents", st.ID), collection.New(st.Documents...).Validate())
	}
	check("project price", s.Project.Price.Validate())
	check("property price", s.Finance.PropertyPrice.Validate())

	return errors.Join(errs...)
}

// MemorySource serves a snapshot compiled into the binary.
type MemorySource struct {
	snap Snapshot
}

// NewMemorySource returns a source serving snap, or Default() when snap is nil.
func NewMemorySource(snap *Snapshot) *MemorySource {
	if snap == nil {
		d := Default()
		snap = &d
	}
	return &MemorySource{snap: snap.Clone()}
}

// Load implements Source.
func (m *MemorySource) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	return m.snap.Clone(), nil
}
