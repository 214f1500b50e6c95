package observability

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
)

// DefaultEndpoint is the OTLP HTTP port of a local collector.
const DefaultEndpoint = "localhost:4318"

// ExportTarget names the service being reported on and the collector the
// OTLP exporters send to.
type ExportTarget struct {
	ServiceName    string
	ServiceVersion string
	// Environment is the deployment environment (development, ci, production).
	Environment string
	// Endpoint is the collector host:port.
	Endpoint string
	// Insecure sends over plain HTTP.
	Insecure bool
}

func localTarget(serviceName string) ExportTarget {
	return ExportTarget{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       DefaultEndpoint,
		Insecure:       true,
	}
}

// resource merges the service attributes into the SDK default resource.
// They are schemaless so the merge never conflicts with the default schema
// URL.
func (t ExportTarget) resource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String(AttrServiceName, t.ServiceName),
			attribute.String(AttrServiceVersion, t.ServiceVersion),
			attribute.String(AttrEnvironment, t.Environment),
		),
	)
}
