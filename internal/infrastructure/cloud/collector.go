// Package cloud reads AWS credential context from the environment. No
// subprocess is involved, so these lookups never need a timeout.
package cloud

import (
	"os"

	"github.com/doeshing/promptline/internal/ports"
)

const envProfile = "AWS_PROFILE"

// regionEnvVars lists the region sources in precedence order; the first set
// variable wins.
var regionEnvVars = []string{"AWS_REGION", "AWS_DEFAULT_REGION", "AWS_PROFILE_REGION"}

// Collector implements ports.CloudCollector.
type Collector struct{}

// NewCollector builds a Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Profile returns the active AWS profile name.
func (c *Collector) Profile() (string, bool) {
	return lookup(envProfile)
}

// Region returns the active AWS region.
func (c *Collector) Region() (string, bool) {
	for _, key := range regionEnvVars {
		if value, present := lookup(key); present {
			return value, true
		}
	}
	return "", false
}

// lookup treats a set-but-empty variable as absent; an empty value would
// render as an empty colored token.
func lookup(key string) (string, bool) {
	value := os.Getenv(key)
	return value, value != ""
}

var _ ports.CloudCollector = (*Collector)(nil)
