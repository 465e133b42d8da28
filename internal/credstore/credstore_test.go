package credstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndRaw(t *testing.T) {
	Clear()
	assert.Empty(t, Raw())

	Set("sk-123", "ak-456")
	assert.Equal(t, "space_key=sk-123,api_key=ak-456", Raw())

	// Absent keys stay as empty strings in the wire format
	Set("", "ak-only")
	assert.Equal(t, "space_key=,api_key=ak-only", Raw())

	Clear()
	assert.Empty(t, Raw())
}

func TestLastWriteWins(t *testing.T) {
	Clear()

	Set("first", "first")
	Set("second", "second")
	assert.Equal(t, "space_key=second,api_key=second", Raw())

	Clear()
}

func TestHeaderMap(t *testing.T) {
	Clear()
	assert.Nil(t, HeaderMap())

	Set("sk", "ak")
	assert.Equal(t, map[string]string{
		"space_key": "sk",
		"api_key":   "ak",
	}, HeaderMap())

	// Empty values survive the round trip
	Set("", "ak")
	assert.Equal(t, map[string]string{
		"space_key": "",
		"api_key":   "ak",
	}, HeaderMap())

	Clear()
}
