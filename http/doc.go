// Package http provides OpenTelemetry instrumentation for the HTTP clients
// and servers of an application traced with arizeotel.
//
// # HTTP Server
//
// Wrap handlers so inbound requests continue traces started upstream:
//
//	http.Handle("/chat", arizehttp.Middleware()(chatHandler))
//
// # HTTP Client
//
// Create an instrumented client for outbound calls (model APIs, vector
// stores):
//
//	client := arizehttp.NewClient(arizehttp.WithTimeout(30 * time.Second))
//	resp, err := client.Get("https://api.example.com/v1/models")
//
// Both directions use the provider installed by arizeotel.Register unless
// providers are passed explicitly.
package http
