package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// maxBodyBytes bounds the bodies of mutation requests, which carry at most
// the current filter selection.
const maxBodyBytes = 64 << 10

var errInvalidID = errors.New("invalid identifier")

// FilterParams is the category/query selection of a list view.
type FilterParams struct {
	Category string
	Query    string
}

// ParseFilterParams reads "category" and "q" from values.
func ParseFilterParams(values url.Values) FilterParams {
	return newFilterParams(values.Get("category"), values.Get("q"))
}

// PathID parses a positive record identifier from a path wildcard.
func PathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidID, name, raw)
	}
	return id, nil
}

// RequestBodyParser handles different content types for request body parsing.
// It supports both JSON and form-encoded data, commonly used with HTMX.
type RequestBodyParser struct {
	body        []byte
	contentType string
	query       url.Values
	jsonData    map[string]any
	formData    url.Values
	parsed      bool
	err         error
}

// NewRequestBodyParser creates a parser for the given request.
// It reads the body once and stores it for subsequent parsing.
func NewRequestBodyParser(r *http.Request) *RequestBodyParser {
	p := &RequestBodyParser{
		contentType: r.Header.Get("Content-Type"),
		query:       r.URL.Query(),
	}
	if r.Body != nil {
		p.body, p.err = io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	}
	return p
}

// Parse attempts to parse the body as JSON or form data.
func (p *RequestBodyParser) Parse() error {
	if p.parsed {
		return p.err
	}
	p.parsed = true

	if p.err != nil {
		return p.err
	}

	if len(p.body) == 0 {
		p.formData = url.Values{}
		return nil
	}

	if p.body[0] == '{' {
		p.jsonData = make(map[string]any)
		if err := json.Unmarshal(p.body, &p.jsonData); err != nil {
			p.err = err
			return err
		}
		return nil
	}

	p.formData, p.err = url.ParseQuery(string(p.body))
	return p.err
}

// Get returns a value from the body (JSON or form), falling back to the
// query string. htmx sends DELETE parameters in the query string.
func (p *RequestBodyParser) Get(key string) string {
	if p.jsonData != nil {
		if val, ok := p.jsonData[key]; ok {
			return sanitizeInput(stringValue(val))
		}
	}
	if p.formData != nil && p.formData.Has(key) {
		return sanitizeInput(p.formData.Get(key))
	}
	return sanitizeInput(p.query.Get(key))
}

// Filter returns the filter selection carried by the request.
func (p *RequestBodyParser) Filter() FilterParams {
	return newFilterParams(p.Get("category"), p.Get("q"))
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
