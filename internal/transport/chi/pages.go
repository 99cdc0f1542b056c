package chi

import (
	"net/http"

	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
)

// ListPages handles GET /api/v1/pages.
func (s *Server) ListPages(w http.ResponseWriter, r *http.Request) {
	q, err := bindListQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	page, err := s.pages.List(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	d := s.display(r)
	writeJSON(w, http.StatusOK, toListResponse(page, func(p dompage.Page) pageResponse {
		return pageToResponse(p, d)
	}))
}

// CreatePage handles POST /api/v1/pages.
func (s *Server) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req pageCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := s.pages.Create(r.Context(), req.draft())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.writeCreatedPage(w, r, p)
}

// GetPage handles GET /api/v1/pages/{id}.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	p, err := s.pages.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.writePage(w, r, http.StatusOK, p)
}

// GetPageBySlug handles GET /api/v1/pages/by-slug/{slug}.
func (s *Server) GetPageBySlug(w http.ResponseWriter, r *http.Request) {
	slug, err := pathParam(r, "slug")
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	p, err := s.pages.GetBySlug(r.Context(), slug)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.writePage(w, r, http.StatusOK, p)
}

// PatchPage handles PATCH /api/v1/pages/{id}.
func (s *Server) PatchPage(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}
	rev, ok := bindRevision(w, r)
	if !ok {
		return
	}

	var req pagePatchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	patch, err := req.patch()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	p, err := s.pages.Update(r.Context(), id, patch, rev)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.writePage(w, r, http.StatusOK, p)
}

// DeletePage handles DELETE /api/v1/pages/{id}.
func (s *Server) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	if err := s.pages.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DuplicatePage handles POST /api/v1/pages/{id}/duplicate.
func (s *Server) DuplicatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	p, err := s.pages.Duplicate(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.writeCreatedPage(w, r, p)
}

// SuggestExcerpt handles POST /api/v1/pages/{id}/excerpt.
func (s *Server) SuggestExcerpt(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	p, err := s.pages.SuggestExcerpt(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.writePage(w, r, http.StatusOK, p)
}

func (s *Server) writeCreatedPage(w http.ResponseWriter, r *http.Request, p dompage.Page) {
	w.Header().Set("Location", "/api/v1/pages/"+p.ID())
	s.writePage(w, r, http.StatusCreated, p)
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, p dompage.Page) {
	setETag(w, p.Revision())
	writeJSON(w, status, pageToResponse(p, s.display(r)))
}
