package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/doeshing/promptline/internal/domain"
)

func TestDisplayDoctorReport(t *testing.T) {
	report := domain.HealthReport{Checks: []domain.HealthCheck{
		{Name: "Config file", Status: domain.HealthOK, Details: "loaded"},
		{Name: "kubectl binary", Status: domain.HealthWarn, Details: "not found in PATH"},
		{Name: "git binary", Status: domain.HealthError, Details: "not found in PATH"},
	}}

	var buf bytes.Buffer
	displayDoctorReport(&buf, report)
	out := buf.String()

	for _, line := range []string{
		"[OK] Config file - loaded",
		"[WARN] kubectl binary - not found in PATH",
		"[ERROR] git binary - not found in PATH",
		"1 ok, 1 warn, 1 error",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("report output missing %q:\n%s", line, out)
		}
	}
}
