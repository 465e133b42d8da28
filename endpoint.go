package arizeotel

import (
	"strings"
)

// Transport identifies the wire protocol used to deliver spans to a
// destination.
type Transport int

const (
	// TransportGRPC ships spans over OTLP/gRPC.
	TransportGRPC Transport = iota

	// TransportHTTP ships spans over OTLP/HTTP.
	TransportHTTP
)

// String returns the transport name.
func (t Transport) String() string {
	if t == TransportHTTP {
		return "http"
	}

	return "grpc"
}

// Endpoint is a trace destination: either one of the well-known hosted
// destinations or an arbitrary collector URL ([EndpointURL]).
type Endpoint interface {
	// Resolve returns the literal collector URL and the transport used to
	// reach it.
	Resolve() (url string, transport Transport)
}

// namedEndpoint is a well-known hosted destination with a fixed URL and a
// fixed transport.
type namedEndpoint struct {
	name      string
	url       string
	transport Transport
}

// Resolve returns the fixed URL and transport of the destination.
func (e namedEndpoint) Resolve() (string, Transport) {
	return e.url, e.transport
}

// String returns the short name used in configuration files.
func (e namedEndpoint) String() string {
	return e.name
}

// Well-known destinations. These are the only endpoints that enforce
// credential requirements at registration time.
var (
	// EndpointArize is the hosted Arize platform. Requires SpaceKey, APIKey,
	// and ModelID.
	EndpointArize Endpoint = namedEndpoint{
		name:      "arize",
		url:       "https://otlp.arize.com/v1",
		transport: TransportGRPC,
	}

	// EndpointPhoenixLocal is a Phoenix instance running on the local host.
	EndpointPhoenixLocal Endpoint = namedEndpoint{
		name:      "phoenix-local",
		url:       "http://localhost:4317/v1/traces",
		transport: TransportGRPC,
	}

	// EndpointHostedPhoenix is the hosted Phoenix platform. Requires APIKey.
	// It is the single destination reached over OTLP/HTTP.
	EndpointHostedPhoenix Endpoint = namedEndpoint{
		name:      "hosted-phoenix",
		url:       "https://app.phoenix.arize.com/v1/traces",
		transport: TransportHTTP,
	}
)

// EndpointURL is an arbitrary user-supplied collector URL. It resolves to
// itself, unchanged, over gRPC, and carries no credential requirements.
type EndpointURL string

// Resolve returns the URL as supplied and the gRPC transport.
func (e EndpointURL) Resolve() (string, Transport) {
	return string(e), TransportGRPC
}

// ParseEndpoint maps the well-known short names ("arize", "phoenix-local",
// "hosted-phoenix") to their destinations. Any other value is treated as a
// literal collector URL.
func ParseEndpoint(value string) Endpoint {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "arize":
		return EndpointArize
	case "phoenix-local":
		return EndpointPhoenixLocal
	case "hosted-phoenix":
		return EndpointHostedPhoenix
	default:
		return EndpointURL(value)
	}
}

// EndpointList is an ordered list of destinations. List order determines
// processor registration order. Duplicates are kept; every processor receives
// every span regardless of position.
type EndpointList []Endpoint

// Endpoints builds an EndpointList from its arguments.
func Endpoints(eps ...Endpoint) EndpointList {
	return eps
}

// UnmarshalYAML accepts either a single scalar or a sequence of scalars,
// normalizing both to an ordered list. Values go through [ParseEndpoint].
func (l *EndpointList) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*l = EndpointList{ParseEndpoint(single)}
		return nil
	}

	var many []string
	if err := unmarshal(&many); err != nil {
		return err
	}

	eps := make(EndpointList, 0, len(many))
	for _, v := range many {
		eps = append(eps, ParseEndpoint(v))
	}
	*l = eps

	return nil
}

// MarshalYAML renders the list back to short names or literal URLs.
func (l EndpointList) MarshalYAML() (any, error) {
	out := make([]string, 0, len(l))
	for _, ep := range l {
		switch e := ep.(type) {
		case namedEndpoint:
			out = append(out, e.name)
		case EndpointURL:
			out = append(out, string(e))
		default:
			url, _ := ep.Resolve()
			out = append(out, url)
		}
	}

	return out, nil
}
