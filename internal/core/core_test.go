package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"vefa/internal/collection"
)

func TestParseCategories(t *testing.T) {
	if c, err := ParseDocumentCategory("Bancaire"); err != nil || c != DocumentBanking {
		t.Fatalf("got %q err=%v", c, err)
	}
	if c, err := ParseContactCategory(" Agent immobilier "); err != nil || c != ContactRealEstate {
		t.Fatalf("got %q err=%v", c, err)
	}
	for _, bad := range []string{"", "bancaire", "Tous", "Banking"} {
		if _, err := ParseDocumentCategory(bad); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("%q: expected ErrInvalidCategory, got %v", bad, err)
		}
	}
	if !PaymentCategory("Autre").Valid() || PaymentCategory("Other").Valid() {
		t.Fatalf("payment category validity wrong")
	}
	if len(ExpenseCategories()) != 5 || len(ContactCategories()) != 6 {
		t.Fatalf("unexpected enumeration sizes")
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 0}).Validate(); err != nil {
		t.Fatalf("zero should be valid, got %v", err)
	}
	if err := (Money{Cents: -1}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if got := Euros(350).Add(Euros(25)).Sub(Euros(75)); got != Euros(300) {
		t.Fatalf("arithmetic: %v", got)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in, long, iso string
		ok            bool
	}{
		{"2024-02-15", "15 février 2024", "2024-02-15", true},
		{"24/04/2024", "24 avril 2024", "2024-04-24", true},
		{"01/08/2025", "1 août 2025", "2025-08-01", true},
		{"bientôt", "bientôt", "bientôt", false},
		{"2024-13-01", "2024-13-01", "2024-13-01", false},
	}
	for _, tc := range cases {
		d := ParseDate(tc.in)
		if got := d.Long(); got != tc.long {
			t.Fatalf("%q Long()=%q want %q", tc.in, got, tc.long)
		}
		if got := d.ISO(); got != tc.iso {
			t.Fatalf("%q ISO()=%q want %q", tc.in, got, tc.iso)
		}
		if err := d.Validate(); (err == nil) != tc.ok {
			t.Fatalf("%q Validate()=%v", tc.in, err)
		}
	}
	if got := NewDate(2025, 6, 15).Short(); got != "15/06/2025" {
		t.Fatalf("Short()=%q", got)
	}
}

func TestFormatEuros(t *testing.T) {
	cases := []struct {
		m    Money
		want string
	}{
		{Euros(350000), "350\u00a0000\u00a0€"},
		{Euros(1580), "1\u00a0580\u00a0€"},
		{Euros(0), "0\u00a0€"},
		{Money{Cents: 1249}, "12\u00a0€"},
		{Money{Cents: 1250}, "13\u00a0€"},
	}
	for _, tc := range cases {
		if got := FormatEuros(tc.m); got != tc.want {
			t.Fatalf("FormatEuros(%d)=%q want %q", tc.m.Cents, got, tc.want)
		}
	}
}

func TestFormatHelpersDoNotMutate(t *testing.T) {
	m := Euros(1580)
	_ = FormatEuros(m)
	if m.Cents != 158000 {
		t.Fatalf("formatting altered value")
	}
	if got := FormatPercent(decimal.NewFromFloat(44.444)); got != "44.4" {
		t.Fatalf("FormatPercent=%q", got)
	}
	if got := FormatSize(2_500_000); got != "2.5 MB" {
		t.Fatalf("FormatSize=%q", got)
	}
	if got := FormatSize(-3); got != "0 B" {
		t.Fatalf("FormatSize negative=%q", got)
	}
}

func TestNotImplemented(t *testing.T) {
	err := NotImplemented(FeatureEditContact, 3)
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented")
	}
	var nie *NotImplementedError
	if !errors.As(err, &nie) || nie.Feature != FeatureEditContact || nie.RecordID != 3 {
		t.Fatalf("unexpected error value: %#v", err)
	}
	if FeatureAddDocument.Label() != "Ajout de document" {
		t.Fatalf("label=%q", FeatureAddDocument.Label())
	}
}

func TestValidateRecords(t *testing.T) {
	good := Payment{ID: 1, Title: "Dépôt", Amount: Euros(10000), DueDate: NewDate(2024, 2, 15), Category: PaymentDeposit}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bads := []Payment{
		{ID: 0, Title: "x", Amount: Euros(1), DueDate: NewDate(2024, 1, 1), Category: PaymentOther},
		{ID: 1, Title: " ", Amount: Euros(1), DueDate: NewDate(2024, 1, 1), Category: PaymentOther},
		{ID: 1, Title: "x", Amount: Money{Cents: -1}, DueDate: NewDate(2024, 1, 1), Category: PaymentOther},
		{ID: 1, Title: "x", Amount: Euros(1), DueDate: ParseDate("??"), Category: PaymentOther},
		{ID: 1, Title: "x", Amount: Euros(1), DueDate: NewDate(2024, 1, 1), Category: "Deposit"},
	}
	for i, p := range bads {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
	if err := (Contact{ID: 1, Name: "Jean", Category: "Plombier"}).Validate(); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if err := (PurchaseStep{ID: 1, Name: "s", Documents: []StepDocument{{ID: 0, Name: "d"}}}).Validate(); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func stepsFixture() collection.Collection[PurchaseStep] {
	return collection.New(
		PurchaseStep{ID: 2, Name: "Demande de prêt", Completed: true, Documents: []StepDocument{
			{ID: 3, Name: "Offre de prêt", Uploaded: true},
			{ID: 4, Name: "Plan de financement", Uploaded: true},
		}},
		PurchaseStep{ID: 3, Name: "Signature chez le notaire", Documents: []StepDocument{
			{ID: 5, Name: "Acte de vente"},
			{ID: 6, Name: "Attestation notariée"},
		}},
	)
}

func TestToggleStepDocumentOnlyTouchesOneDocument(t *testing.T) {
	steps := stepsFixture()
	next := ToggleStepDocument(steps, 3, 5)

	s3, _ := next.Get(3)
	if !s3.Documents[0].Uploaded || s3.Documents[1].Uploaded {
		t.Fatalf("unexpected documents: %+v", s3.Documents)
	}
	if s3.Completed {
		t.Fatalf("completion changed with document upload")
	}
	s2, _ := next.Get(2)
	orig2, _ := steps.Get(2)
	if s2.Completed != orig2.Completed || len(s2.Documents) != 2 || !s2.Documents[0].Uploaded {
		t.Fatalf("sibling step changed: %+v", s2)
	}
	// the original snapshot keeps its value
	o3, _ := steps.Get(3)
	if o3.Documents[0].Uploaded {
		t.Fatalf("original step mutated in place")
	}
	if s3.UploadedCount() != 1 {
		t.Fatalf("uploaded count=%d", s3.UploadedCount())
	}
}

func TestToggleStepDocumentUnknownIDs(t *testing.T) {
	steps := stepsFixture()
	for _, ids := range [][2]int64{{9, 5}, {3, 3}, {3, 99}} {
		if got := ToggleStepDocument(steps, ids[0], ids[1]); got.Revision() != steps.Revision() {
			t.Fatalf("step=%d doc=%d should be a no-op", ids[0], ids[1])
		}
	}
}

func TestStepCompletionIndependentOfDocuments(t *testing.T) {
	steps := stepsFixture()
	next := steps.ToggleField(3, FlagCompleted, StepFlags)
	s3, _ := next.Get(3)
	if !s3.Completed || s3.UploadedCount() != 0 {
		t.Fatalf("unexpected step: %+v", s3)
	}
}
