package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONValueScan(t *testing.T) {
	original := JSON{
		"old_value": nil,
		"new_value": map[string]interface{}{"status": "CONFIRMED"},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned JSON
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, "CONFIRMED", scanned["new_value"].(map[string]interface{})["status"])
}

func TestJSONValueEmpty(t *testing.T) {
	var j JSON
	value, err := j.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestJSONScanNil(t *testing.T) {
	j := JSON{"leftover": true}
	require.NoError(t, j.Scan(nil))
	assert.Nil(t, j)
}

func TestJSONScanString(t *testing.T) {
	var j JSON
	require.NoError(t, j.Scan(`{"action":"payment.record"}`))
	assert.Equal(t, "payment.record", j["action"])
}

func TestJSONScanUnsupported(t *testing.T) {
	var j JSON
	assert.Error(t, j.Scan(42))
}
