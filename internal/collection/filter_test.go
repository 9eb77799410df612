package collection

import (
	"reflect"
	"testing"
)

type doc struct {
	ID       int64
	Name     string
	Category string
}

func (d doc) RecordID() int64 { return d.ID }

func docCategory(d doc) string { return d.Category }
func docName(d doc) string     { return d.Name }

func TestFilterAllReturnsEverythingInOrder(t *testing.T) {
	c := fixture()
	for _, sel := range []string{"All", "Tous", "", "tous", " ALL "} {
		got := c.Filter(InCategory(sel, func(p payment) string { return p.Category }), MatchesQuery("", func(p payment) string { return p.Title }))
		if !reflect.DeepEqual(got, c.Items()) {
			t.Fatalf("selection %q: got %v", sel, got)
		}
	}
}

func TestFilterQueryCaseInsensitive(t *testing.T) {
	c := New(
		doc{ID: 1, Name: "Contrat de réservation", Category: "Administratif"},
		doc{ID: 2, Name: "Offre de prêt", Category: "Bancaire"},
	)
	got := c.Filter(InCategory("All", docCategory), MatchesQuery("offre", docName))
	if len(got) != 1 || got[0].Name != "Offre de prêt" {
		t.Fatalf("got %v", got)
	}
	got = c.Filter(MatchesQuery("OFFRE DE", docName))
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("upper-case query: got %v", got)
	}
}

func TestFilterCategoryAndQueryAreAnded(t *testing.T) {
	c := New(
		doc{ID: 1, Name: "Offre de prêt", Category: "Bancaire"},
		doc{ID: 2, Name: "Offre promoteur", Category: "Promoteur"},
		doc{ID: 3, Name: "Plan de financement", Category: "Bancaire"},
	)
	cases := []struct {
		cat, q string
		want   []int64
	}{
		{"Bancaire", "", []int64{1, 3}},
		{"Bancaire", "offre", []int64{1}},
		{"Promoteur", "plan", []int64{}},
		{"bancaire", "", []int64{}}, // category match is case-sensitive
		{"Inconnu", "", []int64{}},
	}
	for _, tc := range cases {
		got := c.Filter(InCategory(tc.cat, docCategory), MatchesQuery(tc.q, docName))
		ids := []int64{}
		for _, d := range got {
			ids = append(ids, d.ID)
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Fatalf("cat=%q q=%q: got %v want %v", tc.cat, tc.q, ids, tc.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	var c Collection[doc]
	got := c.Filter(InCategory("Bancaire", docCategory))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
