package http

import (
	"net/http"

	"vefa/internal/core"
	applog "vefa/internal/log"
	"vefa/internal/services"
)

// Full pages start their domain from the seed records again; partials and
// mutations work on the session's current state.

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	st := sess.Workspace.State()
	s.writePage(w, r, "overview.html", page{
		Title:  "Aperçu",
		Active: "overview",
		View:   services.BuildOverview(st),
	}, "")
}

func (s *Server) handleSteps(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.tracker.Reseed(r.Context(), sess, core.DomainSteps)
	st := sess.Workspace.State()
	s.writePage(w, r, "etapes.html", page{
		Title:  "Étapes de l'achat",
		Active: "steps",
		View:   services.BuildSteps(st),
	}, domainETag(sess.Workspace, st, core.DomainSteps))
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.tracker.Reseed(r.Context(), sess, core.DomainDocuments)
	st := sess.Workspace.State()
	f := ParseFilterParams(r.URL.Query())
	s.writePage(w, r, "documents.html", page{
		Title:  "Documents",
		Active: "documents",
		View:   services.BuildDocuments(st, f.Category, f.Query),
	}, domainETag(sess.Workspace, st, core.DomainDocuments))
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.tracker.Reseed(r.Context(), sess, core.DomainPayments)
	st := sess.Workspace.State()
	s.writePage(w, r, "echeancier.html", page{
		Title:  "Échéancier des paiements",
		Active: "payments",
		View:   services.BuildSchedule(st),
	}, domainETag(sess.Workspace, st, core.DomainPayments))
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.tracker.Reseed(r.Context(), sess, core.DomainContacts)
	st := sess.Workspace.State()
	f := ParseFilterParams(r.URL.Query())
	s.writePage(w, r, "contacts.html", page{
		Title:  "Contacts",
		Active: "contacts",
		View:   services.BuildContacts(st, f.Category),
	}, domainETag(sess.Workspace, st, core.DomainContacts))
}

func (s *Server) handleFinances(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.tracker.Reseed(r.Context(), sess, core.DomainExpenses)
	st := sess.Workspace.State()
	s.writePage(w, r, "finances.html", page{
		Title:  "Finances",
		Active: "finances",
		View:   services.BuildFinance(st),
	}, domainETag(sess.Workspace, st, core.DomainExpenses))
}

func (s *Server) handleDocumentsPartial(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	st := sess.Workspace.State()
	f := ParseFilterParams(r.URL.Query())
	s.writePartial(w, r, "documents-panel", services.BuildDocuments(st, f.Category, f.Query),
		domainETag(sess.Workspace, st, core.DomainDocuments))
}

func (s *Server) handleContactsPartial(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	st := sess.Workspace.State()
	f := ParseFilterParams(r.URL.Query())
	s.writePartial(w, r, "contacts-panel", services.BuildContacts(st, f.Category),
		domainETag(sess.Workspace, st, core.DomainContacts))
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, name string, p page, tag string) {
	body, err := s.renderTemplate(name, p)
	if err != nil {
		s.renderFailed(w, r, name, err)
		return
	}
	b := NewHTMXResponse().Header("Cache-Control", "no-cache").BodyHTML(body)
	if tag != "" {
		b.ETag(tag)
	}
	b.Write(w)
}

// writePartial renders a fragment; GETs answer 304 when the client already
// holds the current revision.
func (s *Server) writePartial(w http.ResponseWriter, r *http.Request, name string, view any, tag string) {
	if r.Method == http.MethodGet && etagMatches(r.Header.Get("If-None-Match"), tag) {
		NewHTMXResponse().ETag(tag).Status(http.StatusNotModified).Write(w)
		return
	}
	body, err := s.renderTemplate(name, view)
	if err != nil {
		s.renderFailed(w, r, name, err)
		return
	}
	NewHTMXResponse().
		Header("Cache-Control", "no-cache").
		Header("Vary", "Cookie").
		ETag(tag).
		BodyHTML(body).
		Write(w)
}

func (s *Server) renderFailed(w http.ResponseWriter, r *http.Request, name string, err error) {
	applog.FromContext(r.Context()).ErrorContext(r.Context(), "Template execution failed",
		applog.FieldError, err,
		applog.FieldOperation, applog.OpRender,
		"template", name)
	InternalServerError("Erreur lors de l'affichage").Write(w)
}
