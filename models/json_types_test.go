package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintArraySetOperations(t *testing.T) {
	ids := UintArray{3, 8, 17}

	assert.True(t, ids.Contains(8))
	// exact membership: 7 is a substring of 17 in the stored JSON, but not a member
	assert.False(t, ids.Contains(7))

	assert.Equal(t, UintArray{3, 17}, ids.Without(8))
	assert.Equal(t, UintArray{3, 8, 17}, ids.Without(99))

	missing := ids.Diff(UintArray{8})
	assert.Equal(t, UintArray{3, 17}, missing)
	assert.Empty(t, ids.Diff(UintArray{3, 8, 17, 20}))
}

func TestUintArrayScanValue(t *testing.T) {
	var a UintArray
	require.NoError(t, a.Scan("[7,17]"))
	assert.Equal(t, UintArray{7, 17}, a)

	require.NoError(t, a.Scan(nil))
	assert.Empty(t, a)

	v, err := UintArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringArrayContains(t *testing.T) {
	flags := StringArray{FlagUrgent, FlagExchange}
	assert.True(t, flags.Contains(FlagExchange))
	assert.False(t, flags.Contains(FlagConfirmed))
}
