package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestJSONHandlerCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Component: "app", Handler: NewHandler(&buf, slog.LevelInfo, "json")}).
		WithComponent(ComponentTracker)

	logger.Info("hello", FieldDomain, "payments")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("not JSON: %v (%s)", err, buf.String())
	}
	if entry[FieldComponent] != ComponentTracker || entry[FieldDomain] != "payments" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestLogMutationLevels(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStructuredLogger(New(Config{Handler: NewHandler(&buf, slog.LevelInfo, "text")}))

	sl.LogMutation(context.Background(), "s1", "payments", OpToggle, 99, false, 0)
	if buf.Len() != 0 {
		t.Fatalf("no-op mutation should log at debug, got %q", buf.String())
	}
	sl.LogMutation(context.Background(), "s1", "payments", OpToggle, 1, true, 1)
	if !strings.Contains(buf.String(), "record_id=1") || !strings.Contains(buf.String(), "changed=true") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStructuredLogger(New(Config{Handler: NewHandler(&buf, slog.LevelInfo, "text")}))
	sl.LogError(context.Background(), "boom", errors.New("bad"), ComponentAMQP, OpPublish, NewFields())
	out := buf.String()
	if !strings.Contains(out, "error=bad") || !strings.Contains(out, "operation=publish") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestMiddlewareInjectsLogger(t *testing.T) {
	base := New(Config{Component: ComponentHTTP, Handler: NewHandler(&bytes.Buffer{}, slog.LevelInfo, "text")})

	var got *Logger
	h := Middleware(base)(RequestIDMiddleware(func(*http.Request) string { return "req-1" })(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = FromContext(r.Context())
		})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got == nil || got.Component() != ComponentHTTP {
		t.Fatalf("logger not propagated: %+v", got)
	}
	if FromContext(context.Background()).Component() != "unknown" {
		t.Fatalf("expected fallback logger")
	}
}

func TestWithComponentReplacesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := FromSlog(slog.New(NewHandler(&buf, slog.LevelInfo, "text")), ComponentHTTP).
		With(FieldRequestID, "req-9").
		WithComponent(ComponentTrace)

	logger.Info("hi")
	out := buf.String()
	if strings.Count(out, "component=") != 1 || !strings.Contains(out, "component=trace") {
		t.Fatalf("component not replaced: %q", out)
	}
	if !strings.Contains(out, "request_id=req-9") {
		t.Fatalf("With attributes lost: %q", out)
	}
}

func TestToSliceIsSorted(t *testing.T) {
	got := NewFields().WithOperation("render").WithClientIP("10.0.0.1").WithSession("s").ToSlice()
	want := []any{FieldClientIP, "10.0.0.1", FieldOperation, "render", FieldSessionID, "s"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
