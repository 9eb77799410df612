package http

import (
	"errors"
	"net/http"

	"vefa/internal/core"
	applog "vefa/internal/log"
	"vefa/internal/services"
	"vefa/internal/session"
)

var mutationMessages = map[core.Domain]map[core.Action]string{
	core.DomainSteps: {
		core.ActionToggle:         "Étape mise à jour",
		core.ActionToggleDocument: "Document de l'étape mis à jour",
	},
	core.DomainPayments:  {core.ActionToggle: "Paiement mis à jour"},
	core.DomainExpenses:  {core.ActionToggle: "Frais mis à jour"},
	core.DomainDocuments: {core.ActionRemove: "Document supprimé"},
	core.DomainContacts:  {core.ActionRemove: "Contact supprimé"},
}

func (s *Server) handleToggleStep(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	sess := s.session(w, r)
	res := s.tracker.ToggleStep(r.Context(), sess, id)
	s.writeMutation(w, r, sess, res, "steps-list", services.BuildSteps(sess.Workspace.State()))
}

func (s *Server) handleToggleStepDocument(w http.ResponseWriter, r *http.Request) {
	stepID, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	docID, ok := s.pathID(w, r, "docID")
	if !ok {
		return
	}
	sess := s.session(w, r)
	res := s.tracker.ToggleStepDocument(r.Context(), sess, stepID, docID)
	s.writeMutation(w, r, sess, res, "steps-list", services.BuildSteps(sess.Workspace.State()))
}

func (s *Server) handleTogglePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	sess := s.session(w, r)
	res := s.tracker.TogglePayment(r.Context(), sess, id)
	s.writeMutation(w, r, sess, res, "schedule", services.BuildSchedule(sess.Workspace.State()))
}

func (s *Server) handleToggleExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	sess := s.session(w, r)
	res := s.tracker.ToggleExpense(r.Context(), sess, id)
	s.writeMutation(w, r, sess, res, "finance-expenses", services.BuildFinance(sess.Workspace.State()))
}

func (s *Server) handleRemoveDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	f, ok := s.bodyFilter(w, r)
	if !ok {
		return
	}
	sess := s.session(w, r)
	res := s.tracker.RemoveDocument(r.Context(), sess, id)
	view := services.BuildDocuments(sess.Workspace.State(), f.Category, f.Query)
	s.writeMutation(w, r, sess, res, "documents-panel", view)
}

func (s *Server) handleRemoveContact(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	f, ok := s.bodyFilter(w, r)
	if !ok {
		return
	}
	sess := s.session(w, r)
	res := s.tracker.RemoveContact(r.Context(), sess, id)
	s.writeMutation(w, r, sess, res, "contacts-panel", services.BuildContacts(sess.Workspace.State(), f.Category))
}

func (s *Server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	s.writePending(w, r, s.tracker.AddDocument(r.Context()))
}

func (s *Server) handleAddContact(w http.ResponseWriter, r *http.Request) {
	s.writePending(w, r, s.tracker.AddContact(r.Context()))
}

func (s *Server) handleEditContact(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	s.writePending(w, r, s.tracker.EditContact(r.Context(), id))
}

// writeMutation answers with the refreshed fragment. Mutations that changed
// nothing (unknown ids) still get the fragment, without notifications.
func (s *Server) writeMutation(w http.ResponseWriter, r *http.Request, sess services.Session, res session.Result, partial string, view any) {
	body, err := s.renderTemplate(partial, view)
	if err != nil {
		s.renderFailed(w, r, partial, err)
		return
	}
	b := NewHTMXResponse().
		Header("Cache-Control", "no-store").
		ETag(domainETag(sess.Workspace, sess.Workspace.State(), res.Domain)).
		BodyHTML(body)
	if res.Changed {
		b.TriggerCollectionChanged(res.Domain, res.Revision)
		if msg := mutationMessages[res.Domain][res.Action]; msg != "" {
			b.TriggerSuccessNotification(msg)
		}
	}
	b.Write(w)
}

func (s *Server) writePending(w http.ResponseWriter, r *http.Request, err error) {
	var pending *core.NotImplementedError
	if errors.As(err, &pending) {
		NotImplementedError(pending.Feature).Write(w)
		return
	}
	applog.FromContext(r.Context()).ErrorContext(r.Context(), "Unexpected pending feature result", applog.FieldError, err)
	InternalServerError("Erreur inattendue").Write(w)
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := PathID(r, name)
	if err != nil {
		applog.FromContext(r.Context()).DebugContext(r.Context(), "Invalid path identifier",
			applog.FieldError, err,
			applog.FieldPath, r.URL.Path)
		BadRequestError("Identifiant invalide").Write(w)
		return 0, false
	}
	return id, true
}

func (s *Server) bodyFilter(w http.ResponseWriter, r *http.Request) (FilterParams, bool) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		BadRequestError("Format de requête invalide").Write(w)
		return FilterParams{}, false
	}
	return p.Filter(), true
}
