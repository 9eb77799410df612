package core

import "github.com/shopspring/decimal"

// Project describes the apartment being bought.
type Project struct {
	Name              string
	Address           string
	Developer         string
	Price             Money
	AreaSquareMeters  int
	Rooms             int
	DeliveryDate      Date
	NotaryAppointment Date
}

// FinancialPlan is the financing of the purchase.
type FinancialPlan struct {
	PropertyPrice     Money
	AdditionalCosts   Money
	LoanAmount        Money
	LoanRate          decimal.Decimal // yearly, in percent
	LoanDurationYears int
	DownPayment       Money
	MonthlyPayment    Money
	PaidAmount        Money
	TotalInterest     Money
}

// TotalPrice is the property price plus additional costs.
func (f FinancialPlan) TotalPrice() Money {
	return f.PropertyPrice.Add(f.AdditionalCosts)
}

// TotalLoanCost is the borrowed amount plus interest.
func (f FinancialPlan) TotalLoanCost() Money {
	return f.LoanAmount.Add(f.TotalInterest)
}
