package arizeotel

// Config describes a complete tracing pipeline: where spans go, how the
// destinations are authenticated, what static metadata every span carries,
// and how spans are dispatched. The zero value of every optional field means
// "absent"; no field implies behavior beyond being omitted.
type Config struct {
	// Endpoints lists the destinations to ship spans to, in registration
	// order. In YAML the field accepts either a single value or a list, each
	// entry a well-known name ("arize", "phoenix-local", "hosted-phoenix")
	// or a literal collector URL.
	Endpoints EndpointList `yaml:"endpoints"`

	// SpaceKey authenticates against Arize. Find it in the Space Settings
	// page of the Arize platform. Required when EndpointArize is used.
	SpaceKey string `yaml:"spaceKey" env:"ARIZE_SPACE_KEY"`

	// APIKey authenticates against the hosted platforms. Required when
	// EndpointArize or EndpointHostedPhoenix is used.
	APIKey string `yaml:"apiKey" env:"ARIZE_API_KEY"`

	// ModelID is the unique name identifying the model in Arize. Required
	// when EndpointArize is used.
	ModelID string `yaml:"modelId" env:"ARIZE_MODEL_ID"`

	// ModelVersion groups a subset of data under the same model ID, to
	// compare and track changes across versions.
	ModelVersion string `yaml:"modelVersion" env:"ARIZE_MODEL_VERSION"`

	// ProjectName is the Phoenix project the traces are collected under.
	ProjectName string `yaml:"projectName" env:"PHOENIX_PROJECT_NAME"`

	// LogToConsole mirrors every span to stdout through an additional
	// processor. Enable while developing; it never replaces network export.
	LogToConsole bool `yaml:"logToConsole" env:"ARIZE_OTEL_LOG_TO_CONSOLE" default:"false"`

	// UseBatchProcessor buffers spans and flushes on a timer or size
	// threshold instead of dispatching each span synchronously as it ends.
	// The choice applies to every processor built in one Register call, the
	// console mirror included.
	UseBatchProcessor bool `yaml:"useBatchProcessor" env:"ARIZE_OTEL_USE_BATCH_PROCESSOR" default:"false"`

	// Registry receives the assembled provider. Leave nil to install it as
	// the process-wide OpenTelemetry default. Tests substitute a fake to
	// avoid touching process state.
	Registry TracerRegistry `yaml:"-"`
}
