package domain

// Config is the resolved engine configuration of a suite. Paths are absolute.
type Config struct {
	Root         string
	SuiteName    string
	SuiteVersion string

	TargetDir string
	CacheDir  string

	// Protocol names the fingerprint serializer used for cache entries.
	Protocol string
	// IgnorableSuffixes lists output suffixes whose store failures are skipped.
	IgnorableSuffixes []string

	// Parallelism bounds the number of builders running at once.
	Parallelism int
	// MetricsFile is an optional path for a prometheus textfile dump.
	MetricsFile string
	// Telemetry selects the tracer: otel, progrock or none.
	Telemetry string
}

const (
	// ProtocolJSON selects the JSON fingerprint serializer.
	ProtocolJSON = "json"
	// ProtocolMsgpack selects the msgpack fingerprint serializer.
	ProtocolMsgpack = "msgpack"

	// TelemetryOTel selects the OpenTelemetry tracer.
	TelemetryOTel = "otel"
	// TelemetryProgrock selects the progrock tracer.
	TelemetryProgrock = "progrock"
	// TelemetryNone disables tracing.
	TelemetryNone = "none"

	// DefaultIgnorableSuffix is the only output suffix ignored by default.
	DefaultIgnorableSuffix = ".vshost.exe"
)
