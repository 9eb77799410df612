package core

import "errors"

// ErrInvalidAmount is returned for negative amounts.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is an amount in euro cents.
type Money struct {
	Cents int64
}

// Euros builds a Money from a whole number of euros.
func Euros(euros int64) Money {
	return Money{Cents: euros * 100}
}

// Validate rejects negative amounts. Zero is allowed.
func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Cents == 0
}
