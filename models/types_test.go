// File: /models/types_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceTypeRoundTrip(t *testing.T) {
	original := StringSliceType{"anchor", "gps", "fridge"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned StringSliceType
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestStringSliceTypeScanNil(t *testing.T) {
	var ss StringSliceType
	require.NoError(t, ss.Scan(nil))
	assert.Nil(t, ss)
}

func TestStringSliceTypeMarshalNil(t *testing.T) {
	var ss StringSliceType
	data, err := ss.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestStringSliceTypeContains(t *testing.T) {
	ss := StringSliceType{"boat_only", "with_captain"}
	assert.True(t, ss.Contains("with_captain"))
	assert.False(t, ss.Contains("owner_onboard"))
	assert.False(t, StringSliceType(nil).Contains("boat_only"))
}
