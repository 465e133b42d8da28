package arizeotel

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
)

// buildResource creates the static metadata attached to every span the
// provider produces. Pure function of the three metadata fields; absent
// fields are omitted entirely, never set to empty values.
func buildResource(cfg *Config) *resource.Resource {
	var attrs []attribute.KeyValue
	if cfg.ModelID != "" {
		attrs = append(attrs, attribute.String(AttrModelID, cfg.ModelID))
	}
	if cfg.ModelVersion != "" {
		attrs = append(attrs, attribute.String(AttrModelVersion, cfg.ModelVersion))
	}
	if cfg.ProjectName != "" {
		attrs = append(attrs, attribute.String(AttrProjectName, cfg.ProjectName))
	}

	return resource.NewSchemaless(attrs...)
}
