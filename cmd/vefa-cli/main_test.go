package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"vefa/internal/core"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("DATA_BACKEND", "memory")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
		deny []string
	}{
		{
			name: "summary",
			args: []string{"summary"},
			want: []string{"Résidence Les Jardins", "2 / 6 étapes terminées · 33.3 %", "Frais de notaire", "24 avril 2024"},
		},
		{
			name: "payments",
			args: []string{"payments"},
			want: []string{"Dépôt de garantie", "[x]", "15/02/2024", "1 / 7 payés", "2.9 % payé"},
		},
		{
			name: "documents by category",
			args: []string{"documents", "--category", "Bancaire"},
			want: []string{"Offre de prêt", "Simulation de prêt", "4 document(s) sur 12 · Bancaire"},
			deny: []string{"Contrat de réservation"},
		},
		{
			name: "documents by query",
			args: []string{"documents", "-q", "PLAN"},
			want: []string{"Plan de financement", "Plans de l'appartement", "2 document(s) sur 12 · Tous"},
		},
		{
			name: "unknown category matches nothing",
			args: []string{"documents", "--category", "Inconnu"},
			want: []string{"0 document(s) sur 12"},
		},
		{
			name: "contacts by category",
			args: []string{"contacts", "--category", "Banque"},
			want: []string{"Marie Martin", "1 contact(s) sur 5 · Banque"},
			deny: []string{"Jean Dupont"},
		},
		{
			name: "steps",
			args: []string{"steps"},
			want: []string{"Réservation", "2/2", "Livraison", "0/2", "2 / 6 étapes terminées · 33.3 %"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("execute %v: %v", tt.args, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, d := range tt.deny {
				if strings.Contains(out, d) {
					t.Errorf("output should not contain %q:\n%s", d, out)
				}
			}
		})
	}
}

func TestSummaryAmounts(t *testing.T) {
	out, err := runCLI(t, "summary")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(out, core.FormatEuros(core.Euros(375000))) {
		t.Errorf("total cost missing:\n%s", out)
	}
}

func TestSQLiteBackend(t *testing.T) {
	db := filepath.Join(t.TempDir(), "seed.db")
	out, err := runCLI(t, "--backend", "sqlite", "--db", db, "documents")
	if err != nil {
		t.Fatalf("documents: %v", err)
	}
	if !strings.Contains(out, "12 document(s) sur 12") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestInvalidBackend(t *testing.T) {
	if _, err := runCLI(t, "--backend", "postgres", "summary"); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestUnexpectedArgs(t *testing.T) {
	if _, err := runCLI(t, "payments", "extra"); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestPlainOutputWhenNotATerminal(t *testing.T) {
	out, err := runCLI(t, "steps")
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("escape sequences written to a buffer: %q", out)
	}
	if !strings.HasPrefix(out, "Étapes\n") {
		t.Errorf("missing title: %q", out)
	}
}
