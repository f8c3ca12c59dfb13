// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Resolver Pipeline - these keys govern the embed-to-direct-link resolution behavior.
const (
	ResolverTimeout   = "resolver.timeout"
	ResolverReferer   = "resolver.referer"
	ResolverOrigin    = "resolver.origin"
	ResolverProbeSize = "resolver.probe_size"
)

// Network Transport - these keys configure the shared HTTP client.
const (
	NetworkTLSSpoof = "network.tls_spoof"
)

// Diagnostics - these keys configure the persistent logging subsystem.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Command Line Interface - these keys define the CLI presentation and update checks.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
