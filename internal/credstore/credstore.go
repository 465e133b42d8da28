// Package credstore holds the process-wide credential side channel consumed
// by OTLP exporter construction. It replaces ambient environment mutation
// with an explicit set/get contract so tests can observe and reset it.
package credstore

import (
	"strings"
	"sync/atomic"
)

var value atomic.Pointer[string]

// Set stores the Space and API keys as a single header string in the wire
// format the Arize collectors expect: "space_key=<v>,api_key=<v>". Absent
// keys are kept as empty strings. Repeated calls overwrite; last write wins.
func Set(spaceKey, apiKey string) {
	s := "space_key=" + spaceKey + ",api_key=" + apiKey
	value.Store(&s)
}

// Raw returns the stored header string, or "" if Set has not been called.
func Raw() string {
	p := value.Load()
	if p == nil {
		return ""
	}

	return *p
}

// HeaderMap parses the stored value into request headers for exporter
// construction. Returns nil if Set has not been called.
func HeaderMap() map[string]string {
	raw := Raw()
	if raw == "" {
		return nil
	}

	headers := make(map[string]string)
	for pair := range strings.SplitSeq(raw, ",") {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		headers[key] = val
	}

	return headers
}

// Clear removes the stored value. Intended for tests.
func Clear() {
	value.Store(nil)
}
