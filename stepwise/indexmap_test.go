// SPDX-License-Identifier: MIT
package stepwise_test

import (
	"testing"

	"github.com/katalvlaran/lvreg/stepwise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexMap_Remove(t *testing.T) {
	t.Parallel()
	m := stepwise.Identity(6)
	require.Equal(t, 6, m.Len())

	m2, err := m.Remove(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 5}, m2.Originals())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, m.Originals(), "receiver unchanged")

	// Positions now refer to the shrunken design.
	m3, err := m2.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 5}, m3.Originals())

	o, err := m3.Original(2)
	require.NoError(t, err)
	assert.Equal(t, 5, o)

	pos, ok := m3.Position(5)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)
	_, ok = m3.Position(3)
	assert.False(t, ok)
}

func TestIndexMap_Errors(t *testing.T) {
	t.Parallel()
	m := stepwise.Identity(3)

	_, err := m.Original(3)
	require.ErrorIs(t, err, stepwise.ErrOutOfRange)
	_, err = m.Original(-1)
	require.ErrorIs(t, err, stepwise.ErrOutOfRange)

	_, err = m.Remove(3)
	require.ErrorIs(t, err, stepwise.ErrOutOfRange)
	_, err = m.Remove(1, 1)
	require.ErrorIs(t, err, stepwise.ErrOutOfRange)
}
