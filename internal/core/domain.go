package core

import (
	"errors"
	"strings"
)

type (
	Payment struct {
		ID          int64
		Title       string
		Amount      Money
		DueDate     Date
		Description string
		Paid        bool
		Category    PaymentCategory
	}

	Expense struct {
		ID       int64
		Name     string
		Amount   Money
		Category ExpenseCategory
		Paid     bool
	}

	Document struct {
		ID        int64
		Name      string
		Category  DocumentCategory
		Date      Date
		SizeBytes int64
		FileType  string // lower-case extension, e.g. "pdf"
	}

	Contact struct {
		ID       int64
		Name     string
		Role     string
		Company  string
		Category ContactCategory
		Email    string
		Phone    string
		Notes    string
	}

	// StepDocument is a document expected for a purchase step.
	StepDocument struct {
		ID       int64
		Name     string
		Uploaded bool
	}

	// PurchaseStep is a milestone of the purchase. Documents keep their order.
	PurchaseStep struct {
		ID          int64
		Name        string
		Description string
		Date        Date
		Completed   bool
		Documents   []StepDocument
	}
)

var (
	ErrInvalidID  = errors.New("invalid id")
	ErrEmptyName  = errors.New("empty name")
	ErrEmptyTitle = errors.New("empty title")
)

func (p Payment) RecordID() int64      { return p.ID }
func (e Expense) RecordID() int64      { return e.ID }
func (d Document) RecordID() int64     { return d.ID }
func (c Contact) RecordID() int64      { return c.ID }
func (d StepDocument) RecordID() int64 { return d.ID }
func (s PurchaseStep) RecordID() int64 { return s.ID }

func (p Payment) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if err := p.Amount.Validate(); err != nil {
		return err
	}
	if err := p.DueDate.Validate(); err != nil {
		return err
	}
	if !p.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

func (e Expense) Validate() error {
	if e.ID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

func (d Document) Validate() error {
	if d.ID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if !d.Category.Valid() {
		return ErrInvalidCategory
	}
	if d.SizeBytes < 0 {
		return errors.New("negative document size")
	}
	return nil
}

func (c Contact) Validate() error {
	if c.ID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !c.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

func (s PurchaseStep) Validate() error {
	if s.ID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	for _, d := range s.Documents {
		if d.ID <= 0 {
			return ErrInvalidID
		}
		if strings.TrimSpace(d.Name) == "" {
			return ErrEmptyName
		}
	}
	return nil
}

// UploadedCount returns how many of the step's documents are uploaded.
func (s PurchaseStep) UploadedCount() int {
	n := 0
	for _, d := range s.Documents {
		if d.Uploaded {
			n++
		}
	}
	return n
}

// DocumentName is the search key of documents.
func DocumentName(d Document) string { return d.Name }

// Category accessors used by filters.
func DocumentCategoryOf(d Document) DocumentCategory { return d.Category }
func ContactCategoryOf(c Contact) ContactCategory    { return c.Category }

// Amount selectors used by aggregations.
func PaymentCents(p Payment) int64  { return p.Amount.Cents }
func ExpenseCents(e Expense) int64  { return e.Amount.Cents }
func DocumentSize(d Document) int64 { return d.SizeBytes }
