package arizeotel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/exiao/arize-otel-go/internal/credstore"
)

// fakeRegistry records installed providers instead of mutating process state.
type fakeRegistry struct {
	providers []trace.TracerProvider
}

func (r *fakeRegistry) SetTracerProvider(tp trace.TracerProvider) {
	r.providers = append(r.providers, tp)
}

func TestRegister_NoEndpoints(t *testing.T) {
	_, err := Register(context.Background(), &Config{})
	assert.ErrorIs(t, err, ErrNoEndpoints)

	_, err = Register(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoEndpoints)
}

func TestRegister_ArizeValidation(t *testing.T) {
	cases := []struct {
		name      string
		cfg       *Config
		wantField string
	}{
		{
			name:      "missing space key",
			cfg:       &Config{Endpoints: Endpoints(EndpointArize), APIKey: "ak", ModelID: "m"},
			wantField: "spaceKey",
		},
		{
			name:      "missing api key",
			cfg:       &Config{Endpoints: Endpoints(EndpointArize), SpaceKey: "sk", ModelID: "m"},
			wantField: "apiKey",
		},
		{
			name:      "missing model id",
			cfg:       &Config{Endpoints: Endpoints(EndpointArize), SpaceKey: "sk", APIKey: "ak"},
			wantField: "modelId",
		},
		{
			name:      "arize anywhere in the list",
			cfg:       &Config{Endpoints: Endpoints(EndpointPhoenixLocal, EndpointArize)},
			wantField: "spaceKey",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			registry := &fakeRegistry{}
			tt.cfg.Registry = registry

			tp, err := Register(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.Nil(t, tp)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.Equal(t, "Arize", cfgErr.Target)
			assert.Contains(t, cfgErr.Error(), tt.wantField)

			// Validation failures install nothing
			assert.Empty(t, registry.providers)
		})
	}
}

func TestRegister_HostedPhoenixValidation(t *testing.T) {
	registry := &fakeRegistry{}
	cfg := &Config{
		Endpoints: Endpoints(EndpointHostedPhoenix),
		Registry:  registry,
	}

	tp, err := Register(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, tp)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "apiKey", cfgErr.Field)
	assert.Equal(t, "Hosted Phoenix", cfgErr.Target)
	assert.Empty(t, registry.providers)
}

func TestRegister_ArbitraryURLNoCredentials(t *testing.T) {
	credstore.Clear()

	registry := &fakeRegistry{}
	cfg := &Config{
		Endpoints: Endpoints(EndpointURL("http://collector.internal:4317")),
		Registry:  registry,
	}

	tp, err := Register(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	require.Len(t, registry.providers, 1)
	assert.Same(t, tp, registry.providers[0])

	// No credentials were supplied, the side channel stays empty
	assert.Empty(t, credstore.Raw())

	// The propagator is installed alongside the provider
	assert.NotNil(t, otel.GetTextMapPropagator())
}

func TestRegister_LastCallWins(t *testing.T) {
	credstore.Clear()

	registry := &fakeRegistry{}
	first := &Config{
		Endpoints: Endpoints(EndpointPhoenixLocal),
		APIKey:    "first-key",
		Registry:  registry,
	}
	second := &Config{
		Endpoints: Endpoints(EndpointPhoenixLocal),
		APIKey:    "second-key",
		Registry:  registry,
	}

	tp1, err := Register(context.Background(), first)
	require.NoError(t, err)
	tp2, err := Register(context.Background(), second)
	require.NoError(t, err)
	defer func() {
		_ = tp1.Shutdown(context.Background())
		_ = tp2.Shutdown(context.Background())
	}()

	// Each call installs a fresh provider; the registry saw both, in order,
	// and the side channel holds only the second call's value.
	require.Len(t, registry.providers, 2)
	assert.NotSame(t, registry.providers[0], registry.providers[1])
	assert.Equal(t, "space_key=,api_key=second-key", credstore.Raw())
}

func TestAssembleProcessors_OnePerEndpoint(t *testing.T) {
	credstore.Clear()

	// Duplicates are preserved, one processor each
	cfg := &Config{
		Endpoints: Endpoints(
			EndpointPhoenixLocal,
			EndpointPhoenixLocal,
			EndpointURL("http://collector.internal:4317"),
		),
	}

	procs, err := assembleProcessors(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, procs, 3)

	for _, sp := range procs {
		_ = sp.Shutdown(context.Background())
	}
}

func TestAssembleProcessors_ConsoleMirror(t *testing.T) {
	credstore.Clear()

	cfg := &Config{
		Endpoints:         Endpoints(EndpointPhoenixLocal),
		LogToConsole:      true,
		UseBatchProcessor: true,
	}

	procs, err := assembleProcessors(context.Background(), cfg)
	require.NoError(t, err)

	// One network processor plus the console mirror
	assert.Len(t, procs, 2)

	for _, sp := range procs {
		_ = sp.Shutdown(context.Background())
	}
}

func TestRegister_MixedDestinations(t *testing.T) {
	credstore.Clear()

	registry := &fakeRegistry{}
	cfg := &Config{
		Endpoints: Endpoints(EndpointPhoenixLocal, EndpointHostedPhoenix),
		APIKey:    "phoenix-key",
		Registry:  registry,
	}

	tp, err := Register(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	require.Len(t, registry.providers, 1)

	// Exporter construction consumed the credential side channel
	assert.Equal(t, "space_key=,api_key=phoenix-key", credstore.Raw())
}
