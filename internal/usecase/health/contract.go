package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// AssistantChecker checks writing assistant availability.
type AssistantChecker interface {
	HealthCheck(ctx context.Context) error
}
