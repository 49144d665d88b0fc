package doctor

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/doeshing/promptline/internal/domain"
	"github.com/doeshing/promptline/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	Repository      ports.RepositoryInspector
	ShellIntegrator ports.ShellIntegrator
	LookPath        func(file string) (string, error)
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	_, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", "loaded"))

	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	if path, err := lookPath("git"); err == nil {
		checks = append(checks, ok("git binary", path))
	} else {
		checks = append(checks, fail("git binary", "not found in PATH"))
	}

	if path, err := lookPath("kubectl"); err == nil {
		checks = append(checks, ok("kubectl binary", path))
	} else {
		checks = append(checks, warn("kubectl binary", "not found in PATH; cluster fields will stay empty"))
	}

	if s.Repository != nil {
		if s.Repository.InRepository(ctx) {
			checks = append(checks, ok("Working directory", "inside a git repository"))
		} else {
			checks = append(checks, warn("Working directory", "not inside a git repository"))
		}
	}

	if s.ShellIntegrator != nil {
		status := s.ShellIntegrator.Status("")
		switch {
		case status.HookExists && status.LinePresent:
			checks = append(checks, ok("Shell integration", fmt.Sprintf("%s ready", status.Shell)))
		case status.Error != "":
			checks = append(checks, warn("Shell integration", status.Error))
		default:
			checks = append(checks, warn("Shell integration", "not installed; run `promptline install`"))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
