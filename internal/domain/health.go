package domain

// HealthStatus indicates doctor check outcomes.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck captures a single diagnostic result.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates checks from one doctor run.
type HealthReport struct {
	Checks []HealthCheck
}

// Counts tallies the checks by status.
func (r HealthReport) Counts() (healthy, warned, failed int) {
	for _, check := range r.Checks {
		switch check.Status {
		case HealthOK:
			healthy++
		case HealthWarn:
			warned++
		default:
			failed++
		}
	}
	return healthy, warned, failed
}
