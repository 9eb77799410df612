package collection

import (
	"errors"
	"reflect"
	"testing"
)

type payment struct {
	ID       int64
	Title    string
	Cents    int64
	Paid     bool
	Category string
}

func (p payment) RecordID() int64 { return p.ID }

var paidFlag = Flag[payment]{
	Name: "paid",
	Get:  func(p payment) bool { return p.Paid },
	Set:  func(p payment, v bool) payment { p.Paid = v; return p },
}

var flags = FlagSet[payment]{paidFlag}

func fixture() Collection[payment] {
	return New(
		payment{ID: 1, Title: "Dépôt de garantie", Cents: 1_000_000, Paid: true, Category: "Dépôt"},
		payment{ID: 2, Title: "Frais de notaire", Cents: 1_250_000, Category: "Frais notaire"},
		payment{ID: 3, Title: "Appel de fonds", Cents: 3_500_000, Category: "Appel de fonds"},
	)
}

func TestUnknownIDIsNoop(t *testing.T) {
	c := fixture()
	for _, got := range []Collection[payment]{
		c.Toggle(99, paidFlag),
		c.ToggleField(99, "paid", flags),
		c.Remove(99),
		c.Update(99, func(p payment) payment { p.Title = "x"; return p }),
	} {
		if got.Revision() != c.Revision() {
			t.Fatalf("revision changed on no-op: %d != %d", got.Revision(), c.Revision())
		}
		if !reflect.DeepEqual(got.Items(), c.Items()) {
			t.Fatalf("items changed on no-op: %v", got.Items())
		}
	}
}

func TestUnknownFlagIsNoop(t *testing.T) {
	c := fixture()
	got := c.ToggleField(1, "uploaded", flags)
	if got.Revision() != c.Revision() || !reflect.DeepEqual(got.Items(), c.Items()) {
		t.Fatalf("unknown flag should leave collection unchanged")
	}
}

func TestRemovePresent(t *testing.T) {
	c := fixture()
	got := c.Remove(2)
	if got.Len() != c.Len()-1 {
		t.Fatalf("len=%d, want %d", got.Len(), c.Len()-1)
	}
	if _, ok := got.Get(2); ok {
		t.Fatalf("record 2 still present")
	}
	if got.Revision() == c.Revision() {
		t.Fatalf("revision not bumped")
	}
	// original untouched
	if _, ok := c.Get(2); !ok || c.Len() != 3 {
		t.Fatalf("original collection mutated")
	}
	ids := []int64{}
	for _, p := range got.Items() {
		ids = append(ids, p.ID)
	}
	if !reflect.DeepEqual(ids, []int64{1, 3}) {
		t.Fatalf("order not preserved: %v", ids)
	}
}

func TestToggleInvolution(t *testing.T) {
	c := fixture()
	once := c.ToggleField(2, "paid", flags)
	p, _ := once.Get(2)
	if !p.Paid {
		t.Fatalf("expected paid after one toggle")
	}
	orig, _ := c.Get(2)
	if orig.Paid {
		t.Fatalf("toggle mutated the original collection")
	}
	twice := once.ToggleField(2, "paid", flags)
	if !reflect.DeepEqual(twice.Items(), c.Items()) {
		t.Fatalf("double toggle did not restore: %v", twice.Items())
	}
	if twice.Revision() != c.Revision()+2 {
		t.Fatalf("revision=%d, want %d", twice.Revision(), c.Revision()+2)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c := fixture()
	items := c.Items()
	items[0].Title = "changed"
	if p, _ := c.Get(1); p.Title == "changed" {
		t.Fatalf("Items leaked the backing slice")
	}
}

func TestValidate(t *testing.T) {
	if err := fixture().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dup := New(payment{ID: 1}, payment{ID: 1})
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}
