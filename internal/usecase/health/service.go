package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all checks pass.
	Healthy Status = "ok"
	// Degraded indicates an optional dependency is failing.
	Degraded Status = "degraded"
	// Unhealthy indicates the database is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Check names reported in Report.Checks.
const (
	CheckDatabase  = "database"
	CheckAssistant = "assistant"
)

// DefaultCheckTimeout bounds each individual check.
const DefaultCheckTimeout = 2 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	assistant AssistantChecker
	timeout   time.Duration
}

// New creates a Service. assistant can be nil.
func New(db DBPinger, assistant AssistantChecker) *Service {
	return &Service{db: db, assistant: assistant, timeout: DefaultCheckTimeout}
}

// WithTimeout sets the per-check deadline.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Check pings the database and, when configured, the assistant.
// A database failure makes the service unhealthy; an assistant failure only
// degrades it, since content CRUD still works.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, 2)
	status := Healthy

	checks[CheckDatabase] = s.run(ctx, s.db.Ping)
	if checks[CheckDatabase] == CheckError {
		status = Unhealthy
	}

	if s.assistant != nil {
		checks[CheckAssistant] = s.run(ctx, s.assistant.HealthCheck)
		if checks[CheckAssistant] == CheckError && status == Healthy {
			status = Degraded
		}
	}

	return Report{Status: status, Checks: checks}
}

func (s *Service) run(ctx context.Context, check func(context.Context) error) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := check(ctx); err != nil {
		return CheckError
	}
	return CheckOK
}
