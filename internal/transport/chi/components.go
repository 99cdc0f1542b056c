package chi

import (
	"net/http"

	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
)

// ListComponents handles GET /api/v1/components.
func (s *Server) ListComponents(w http.ResponseWriter, r *http.Request) {
	q, err := bindListQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	page, err := s.components.List(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	d := s.display(r)
	writeJSON(w, http.StatusOK, toListResponse(page, func(c domcomp.Component) componentResponse {
		return componentToResponse(c, d)
	}))
}

// CreateComponent handles POST /api/v1/components.
func (s *Server) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var req componentCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := s.components.Create(r.Context(), req.draft())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/components/"+c.ID())
	setETag(w, c.Revision())
	writeJSON(w, http.StatusCreated, componentToResponse(c, s.display(r)))
}

// GetComponent handles GET /api/v1/components/{id}.
func (s *Server) GetComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	c, err := s.components.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	setETag(w, c.Revision())
	writeJSON(w, http.StatusOK, componentToResponse(c, s.display(r)))
}

// PatchComponent handles PATCH /api/v1/components/{id}.
func (s *Server) PatchComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}
	rev, ok := bindRevision(w, r)
	if !ok {
		return
	}

	var req componentPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := req.patch()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	c, err := s.components.Update(r.Context(), id, p, rev)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	setETag(w, c.Revision())
	writeJSON(w, http.StatusOK, componentToResponse(c, s.display(r)))
}

// DeleteComponent handles DELETE /api/v1/components/{id}.
func (s *Server) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	if err := s.components.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
