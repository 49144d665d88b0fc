// Package kube reports the active cluster context and namespace via kubectl.
package kube

import (
	"context"

	"github.com/doeshing/promptline/internal/ports"
)

// Collector implements ports.ClusterCollector over a CommandRunner.
type Collector struct {
	runner ports.CommandRunner
}

// NewCollector builds a Collector.
func NewCollector(runner ports.CommandRunner) *Collector {
	return &Collector{runner: runner}
}

// CurrentContext returns the active cluster-context name.
func (c *Collector) CurrentContext(ctx context.Context) (string, bool) {
	return c.runner.Run(ctx, "kubectl", "config", "current-context").Value()
}

// CurrentNamespace returns the namespace of the minified active context.
func (c *Collector) CurrentNamespace(ctx context.Context) (string, bool) {
	return c.runner.Run(ctx, "kubectl", "config", "view", "--minify", "--output", "jsonpath={..namespace}").Value()
}

var _ ports.ClusterCollector = (*Collector)(nil)
