package scenario

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_AsDuration(t *testing.T) {
	tests := []struct {
		name     string
		d        Duration
		expected time.Duration
	}{
		{"zero", Duration(0), 0},
		{"250ms", Duration(250 * time.Millisecond), 250 * time.Millisecond},
		{"2s", Duration(2 * time.Second), 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.d.AsDuration())
		})
	}
}

func TestDuration_MarshalYAML(t *testing.T) {
	result, err := Duration(90 * time.Second).MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", result)
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Duration
		wantErr  bool
	}{
		{"250ms", "250ms", Duration(250 * time.Millisecond), false},
		{"2s", "2s", Duration(2 * time.Second), false},
		{"invalid", "not-a-duration", Duration(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalYAML(func(v any) error {
				s, ok := v.(*string)
				if !ok {
					return fmt.Errorf("expected *string, got %T", v)
				}
				*s = tt.input

				return nil
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func TestRegistry_EmbeddedScenarios(t *testing.T) {
	expectedScenarios := []string{"chat", "rag", "agent"}

	for _, name := range expectedScenarios {
		t.Run(name, func(t *testing.T) {
			s, ok := Get(name)
			require.True(t, ok, "scenario %q should be registered", name)
			require.NotNil(t, s)
			assert.Equal(t, name, s.Name)
			assert.NotEmpty(t, s.Description)
			assert.NotEmpty(t, s.RootSpan.Name)
			assert.NotEmpty(t, s.RootSpan.Kind)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	s, ok := Get("non-existent-scenario")
	assert.False(t, ok)
	assert.Nil(t, s)
}

func TestList(t *testing.T) {
	names := List()

	assert.GreaterOrEqual(t, len(names), 3)
	assert.True(t, slices.Contains(names, "chat"))
	assert.True(t, slices.Contains(names, "rag"))
	assert.True(t, slices.Contains(names, "agent"))
}

func TestRegister(t *testing.T) {
	customScenario := &Scenario{
		Name:        "test-custom",
		Description: "Test custom scenario",
		RootSpan: SpanTemplate{
			Name:     "test-span",
			Kind:     "CHAIN",
			Duration: Duration(10 * time.Millisecond),
		},
	}

	Register(customScenario)

	s, ok := Get("test-custom")
	require.True(t, ok)
	assert.Equal(t, customScenario, s)

	// Cleanup
	delete(Registry, "test-custom")
}
