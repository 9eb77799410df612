package http

import (
	"net/http"

	"vefa/internal/services"
)

// SessionCookie names the cookie carrying the workspace id.
const SessionCookie = "vefa_session"

// session resolves the caller's workspace and (re)issues the cookie when the
// id changed.
func (s *Server) session(w http.ResponseWriter, r *http.Request) services.Session {
	var current string
	if c, err := r.Cookie(SessionCookie); err == nil {
		current = c.Value
	}
	sess := s.tracker.Session(current)
	if sess.ID != current {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

// sessionKey keys rate limiting on a live session. Requests whose cookie is
// missing, malformed or unknown share the client IP bucket, so rotating
// cookies does not reset the limit.
func (s *Server) sessionKey(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && s.tracker.HasSession(c.Value) {
		return "session:" + c.Value
	}
	return "ip:" + s.clientIP.Extract(r)
}
