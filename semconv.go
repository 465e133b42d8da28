package arizeotel

// Resource attribute keys understood by the Arize and Phoenix platforms.
// The openinference.* keys follow the OpenInference semantic conventions.
const (
	// AttrModelID names the model a trace belongs to in Arize.
	AttrModelID = "model_id"

	// AttrModelVersion groups a subset of data under the same model ID.
	AttrModelVersion = "model_version"

	// AttrProjectName is the Phoenix project the traces are collected under.
	AttrProjectName = "openinference.project.name"
)

// Span attribute keys from the OpenInference semantic conventions.
const (
	// AttrSpanKind marks the role of a span in an LLM application.
	AttrSpanKind = "openinference.span.kind"

	// AttrLLMModelName records the model that served a completion.
	AttrLLMModelName = "llm.model_name"

	// AttrSessionID groups spans belonging to one conversation.
	AttrSessionID = "session.id"

	// AttrUserID identifies the end user a trace belongs to.
	AttrUserID = "user.id"
)

// OpenInference span kind values for [AttrSpanKind].
const (
	SpanKindChain     = "CHAIN"
	SpanKindLLM       = "LLM"
	SpanKindRetriever = "RETRIEVER"
	SpanKindEmbedding = "EMBEDDING"
	SpanKindTool      = "TOOL"
	SpanKindAgent     = "AGENT"
)
