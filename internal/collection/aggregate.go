package collection

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Sum adds selector(r) over every record. An empty slice sums to 0.
func Sum[T any](items []T, selector func(T) int64) int64 {
	var total int64
	for _, it := range items {
		total += selector(it)
	}
	return total
}

// SumWhere adds selector(r) over the records satisfying pred.
func SumWhere[T any](items []T, selector func(T) int64, pred Predicate[T]) int64 {
	var total int64
	for _, it := range items {
		if pred(it) {
			total += selector(it)
		}
	}
	return total
}

// CountWhere counts the records satisfying pred.
func CountWhere[T any](items []T, pred Predicate[T]) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// Percentage returns 100*part/whole rounded to one decimal place.
// A zero whole yields 0.
func Percentage(part, whole int64) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(whole)).Round(1)
}
