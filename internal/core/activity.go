package core

// Domain names one record collection of a purchase.
type Domain string

const (
	DomainPayments  Domain = "payments"
	DomainExpenses  Domain = "expenses"
	DomainDocuments Domain = "documents"
	DomainContacts  Domain = "contacts"
	DomainSteps     Domain = "steps"
)

// Domains lists every domain.
func Domains() []Domain {
	return []Domain{DomainPayments, DomainExpenses, DomainDocuments, DomainContacts, DomainSteps}
}

func (d Domain) Valid() bool { return member(d, Domains()) }

// Action names a mutation of a collection.
type Action string

const (
	ActionToggle         Action = "toggle"
	ActionToggleDocument Action = "toggle_document"
	ActionRemove         Action = "remove"
	ActionReseed         Action = "reseed"
)
