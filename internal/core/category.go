package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCategory is returned when a value is not part of a domain's enumeration.
var ErrInvalidCategory = errors.New("invalid category")

// Closed category enumerations, one per domain. The string values are the
// labels shown to the user.
type (
	PaymentCategory  string
	ExpenseCategory  string
	DocumentCategory string
	ContactCategory  string
)

const (
	PaymentDeposit    PaymentCategory = "Dépôt"
	PaymentFundsCall  PaymentCategory = "Appel de fonds"
	PaymentNotaryFees PaymentCategory = "Frais notaire"
	PaymentOther      PaymentCategory = "Autre"
)

const (
	ExpenseNotaryFees ExpenseCategory = "Frais de notaire"
	ExpenseFileFees   ExpenseCategory = "Frais de dossier"
	ExpenseInsurance  ExpenseCategory = "Assurance"
	ExpenseGuarantees ExpenseCategory = "Garanties"
	ExpenseOther      ExpenseCategory = "Autre"
)

const (
	DocumentAdministrative DocumentCategory = "Administratif"
	DocumentBanking        DocumentCategory = "Bancaire"
	DocumentNotary         DocumentCategory = "Notaire"
	DocumentDeveloper      DocumentCategory = "Promoteur"
	DocumentTechnical      DocumentCategory = "Technique"
)

const (
	ContactDeveloper  ContactCategory = "Promoteur"
	ContactBank       ContactCategory = "Banque"
	ContactNotary     ContactCategory = "Notaire"
	ContactRealEstate ContactCategory = "Agent immobilier"
	ContactArchitect  ContactCategory = "Architecte"
	ContactOther      ContactCategory = "Autre"
)

// PaymentCategories lists payment categories in display order.
func PaymentCategories() []PaymentCategory {
	return []PaymentCategory{PaymentDeposit, PaymentFundsCall, PaymentNotaryFees, PaymentOther}
}

// ExpenseCategories lists expense categories in display order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{ExpenseNotaryFees, ExpenseFileFees, ExpenseInsurance, ExpenseGuarantees, ExpenseOther}
}

// DocumentCategories lists document categories in display order.
func DocumentCategories() []DocumentCategory {
	return []DocumentCategory{DocumentAdministrative, DocumentBanking, DocumentNotary, DocumentDeveloper, DocumentTechnical}
}

// ContactCategories lists contact categories in display order.
func ContactCategories() []ContactCategory {
	return []ContactCategory{ContactDeveloper, ContactBank, ContactNotary, ContactRealEstate, ContactArchitect, ContactOther}
}

func (c PaymentCategory) Valid() bool  { return member(c, PaymentCategories()) }
func (c ExpenseCategory) Valid() bool  { return member(c, ExpenseCategories()) }
func (c DocumentCategory) Valid() bool { return member(c, DocumentCategories()) }
func (c ContactCategory) Valid() bool  { return member(c, ContactCategories()) }

// ParsePaymentCategory converts a label into a PaymentCategory.
func ParsePaymentCategory(s string) (PaymentCategory, error) {
	return parseCategory(s, PaymentCategories())
}

// ParseExpenseCategory converts a label into an ExpenseCategory.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	return parseCategory(s, ExpenseCategories())
}

// ParseDocumentCategory converts a label into a DocumentCategory.
func ParseDocumentCategory(s string) (DocumentCategory, error) {
	return parseCategory(s, DocumentCategories())
}

// ParseContactCategory converts a label into a ContactCategory.
func ParseContactCategory(s string) (ContactCategory, error) {
	return parseCategory(s, ContactCategories())
}

func member[C ~string](c C, all []C) bool {
	for _, v := range all {
		if v == c {
			return true
		}
	}
	return false
}

// parseCategory matches exactly after trimming surrounding spaces.
func parseCategory[C ~string](s string, all []C) (C, error) {
	c := C(strings.TrimSpace(s))
	if !member(c, all) {
		var zero C
		return zero, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}
