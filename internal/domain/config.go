package domain

import (
	"strings"
	"time"
)

// Config mirrors ~/.promptline/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Prompt              PromptSettings    `yaml:"prompt"`
	Collectors          CollectorSettings `yaml:"collectors"`
}

// PromptSettings captures display-level preferences.
type PromptSettings struct {
	Symbol string `yaml:"symbol"`
}

// CollectorSettings configures which state collectors run per render.
type CollectorSettings struct {
	Git           string `yaml:"git"`
	Kubernetes    string `yaml:"kubernetes"`
	Cloud         string `yaml:"cloud"`
	DiffTimeoutMS int    `yaml:"diff_timeout_ms"`
}

// GitEnabled reports whether version-control collection should run.
func (c CollectorSettings) GitEnabled() bool {
	return collectSetting(c.Git)
}

// KubernetesEnabled reports whether orchestrator collection should run.
func (c CollectorSettings) KubernetesEnabled() bool {
	return collectSetting(c.Kubernetes)
}

// CloudEnabled reports whether cloud environment collection should run.
func (c CollectorSettings) CloudEnabled() bool {
	return collectSetting(c.Cloud)
}

// DiffTimeout returns the working-tree diff deadline.
func (c CollectorSettings) DiffTimeout() time.Duration {
	if c.DiffTimeoutMS <= 0 {
		return DefaultDiffTimeout
	}
	return time.Duration(c.DiffTimeoutMS) * time.Millisecond
}

func collectSetting(setting string) bool {
	switch strings.ToLower(setting) {
	case "never":
		return false
	default:
		return true
	}
}
