// Package http serves the dashboard pages, the htmx partials and the
// mutation endpoints.
package http

import (
	"encoding/json"
	"html/template"
	"net/http"

	"vefa/internal/core"
)

// Trigger names understood by web/static/app.js.
const (
	triggerNotification   = "show-notification"
	triggerPendingFeature = "feature:pending"
)

// Display durations of the toast notifications, in milliseconds.
const (
	toastShort = 3000
	toastLong  = 4000
)

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

type notification struct {
	Type     NotificationType `json:"type"`
	Message  string           `json:"message"`
	Duration int              `json:"duration"`
}

// HTMXResponse accumulates the status, headers, HX-Trigger events and body
// of one response; nothing reaches the client before Write.
type HTMXResponse struct {
	status   int
	header   http.Header
	triggers map[string]any
	body     []byte
}

func NewHTMXResponse() *HTMXResponse {
	return &HTMXResponse{
		status:   http.StatusOK,
		header:   make(http.Header),
		triggers: make(map[string]any),
	}
}

func (b *HTMXResponse) Status(code int) *HTMXResponse {
	b.status = code
	return b
}

// Trigger adds an HX-Trigger event. A later event with the same name wins.
func (b *HTMXResponse) Trigger(name string, detail any) *HTMXResponse {
	b.triggers[name] = detail
	return b
}

// TriggerCollectionChanged fires "<domain>:changed" with the new revision.
func (b *HTMXResponse) TriggerCollectionChanged(domain core.Domain, revision uint64) *HTMXResponse {
	return b.Trigger(string(domain)+":changed", map[string]uint64{"revision": revision})
}

func (b *HTMXResponse) TriggerPendingFeature(f core.Feature) *HTMXResponse {
	b.Trigger(triggerPendingFeature, map[string]string{"feature": string(f)})
	return b.TriggerNotification(NotificationWarning, pendingMessage(f), toastLong)
}

func (b *HTMXResponse) TriggerNotification(kind NotificationType, message string, durationMs int) *HTMXResponse {
	return b.Trigger(triggerNotification, notification{Type: kind, Message: message, Duration: durationMs})
}

func (b *HTMXResponse) TriggerSuccessNotification(message string) *HTMXResponse {
	return b.TriggerNotification(NotificationSuccess, message, toastShort)
}

func (b *HTMXResponse) Header(name, value string) *HTMXResponse {
	b.header.Set(name, value)
	return b
}

func (b *HTMXResponse) ETag(tag string) *HTMXResponse {
	return b.Header("ETag", tag)
}

// BodyHTML sets an HTML body and its content type.
func (b *HTMXResponse) BodyHTML(html []byte) *HTMXResponse {
	b.header.Set("Content-Type", "text/html; charset=utf-8")
	b.body = html
	return b
}

func (b *HTMXResponse) Write(w http.ResponseWriter) {
	dst := w.Header()
	for name, values := range b.header {
		dst[name] = values
	}
	if len(b.triggers) > 0 {
		if encoded, err := json.Marshal(b.triggers); err == nil {
			dst.Set("HX-Trigger", string(encoded))
		}
	}
	w.WriteHeader(b.status)
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}

// ErrorResponse renders message, escaped, in an error box.
func ErrorResponse(status int, message string) *HTMXResponse {
	return NewHTMXResponse().
		Status(status).
		BodyHTML([]byte(`<div class="error">` + template.HTMLEscapeString(message) + `</div>`))
}

func BadRequestError(message string) *HTMXResponse {
	return ErrorResponse(http.StatusBadRequest, message)
}

func InternalServerError(message string) *HTMXResponse {
	return ErrorResponse(http.StatusInternalServerError, message)
}

// NotImplementedError answers 501 for an add or edit workflow that does not
// exist yet.
func NotImplementedError(f core.Feature) *HTMXResponse {
	return ErrorResponse(http.StatusNotImplemented, pendingMessage(f)).TriggerPendingFeature(f)
}

func pendingMessage(f core.Feature) string {
	return f.Label() + " : fonctionnalité à venir"
}
