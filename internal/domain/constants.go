package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ConfigFilePermissions is the permission for config and rc files (rw-------)
	ConfigFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultDiffTimeout bounds the working-tree diff probe. A diff that takes
	// longer than this is classified as dirty rather than stalling the render.
	DefaultDiffTimeout = 500 * time.Millisecond
)

// Display constants
const (
	// DefaultPromptSymbol is the status indicator glyph.
	DefaultPromptSymbol = "❯" // ❯
)
