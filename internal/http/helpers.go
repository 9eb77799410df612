package http

import (
	"fmt"
	"strings"
	"unicode"

	"vefa/internal/core"
	"vefa/internal/session"
)

// sanitizeInput removes control characters. Spaces are kept: a search
// query like " de " matches on word boundaries.
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// newFilterParams trims the category, which must match a label exactly,
// and keeps the query as typed.
func newFilterParams(category, query string) FilterParams {
	return FilterParams{
		Category: strings.TrimSpace(sanitizeInput(category)),
		Query:    sanitizeInput(query),
	}
}

// etag identifies the state of one domain of a workspace. The generation
// changes on every reseed, the revision on every effective mutation.
func etag(generation, revision uint64) string {
	return fmt.Sprintf(`W/"%d-%d"`, generation, revision)
}

func domainETag(ws *session.Workspace, st session.State, d core.Domain) string {
	return etag(ws.Generation(), st.Revision(d))
}

// etagMatches reports whether an If-None-Match header lists tag.
func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	if strings.TrimSpace(header) == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		if strings.TrimSpace(candidate) == tag {
			return true
		}
	}
	return false
}
