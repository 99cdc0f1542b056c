package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	healthuc "github.com/kailas-cloud/cmsdash/internal/usecase/health"
	"github.com/kailas-cloud/cmsdash/internal/util/timefmt"
	"github.com/kailas-cloud/cmsdash/internal/version"
)

// maxBodyBytes caps request bodies; page content is the largest field.
const maxBodyBytes = 1 << 20

// Server serves the dashboard JSON API.
type Server struct {
	components    ComponentService
	pages         PageService
	stats         StatsService
	health        HealthService
	logger        *zap.Logger
	now           func() time.Time
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	components ComponentService,
	pages PageService,
	stats StatsService,
	health HealthService,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		components:    components,
		pages:         pages,
		stats:         stats,
		health:        health,
		logger:        logger,
		now:           time.Now,
		errorHandlers: defaultErrorHandlers,
	}
}

// WithClock replaces time.Now for relative time rendering.
func (s *Server) WithClock(now func() time.Time) *Server {
	if now != nil {
		s.now = now
	}
	return s
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/components", func(r chi.Router) {
			r.Get("/", s.ListComponents)
			r.Post("/", s.CreateComponent)
			r.Get("/{id}", s.GetComponent)
			r.Patch("/{id}", s.PatchComponent)
			r.Delete("/{id}", s.DeleteComponent)
		})
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", s.ListPages)
			r.Post("/", s.CreatePage)
			r.Get("/by-slug/{slug}", s.GetPageBySlug)
			r.Get("/{id}", s.GetPage)
			r.Patch("/{id}", s.PatchPage)
			r.Delete("/{id}", s.DeletePage)
			r.Post("/{id}/duplicate", s.DuplicatePage)
			r.Post("/{id}/excerpt", s.SuggestExcerpt)
		})
		r.Get("/stats", s.GetStats)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: version.Version,
	})
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	snap, err := s.stats.Get(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsToResponse(snap, s.display(r)))
}

func (s *Server) display(r *http.Request) display {
	return display{
		locale: timefmt.MatchLocale(r.Header.Get("Accept-Language")),
		now:    s.now(),
	}
}

// decodeBody decodes a size-limited JSON body into dst, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// bindID reads the {id} path parameter, writing a 400 on failure.
func bindID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return "", false
	}
	return id, true
}

// bindRevision reads If-Match, writing a 400 on failure.
func bindRevision(w http.ResponseWriter, r *http.Request) (int, bool) {
	rev, err := ifMatchRevision(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return 0, false
	}
	return rev, true
}
