package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRecordAndLookup(t *testing.T) {
	var l ledger
	l.reset()

	start := l.record(Coordinate{0, 0}, noPredecessor, 0)
	next := l.record(Coordinate{32, 0}, start, 1)

	id, ok := l.lookup(Coordinate{32, 0})
	require.True(t, ok)
	assert.Equal(t, next, id)
	assert.Equal(t, start, l.node(next).predecessor)
	assert.Equal(t, 1, l.node(next).iteration)

	c, ok := l.coordinateOf(next)
	require.True(t, ok)
	assert.Equal(t, Coordinate{32, 0}, c)
}

func TestLedgerOverwriteOrphansOldNode(t *testing.T) {
	var l ledger
	l.reset()

	start := l.record(Coordinate{0, 0}, noPredecessor, 0)
	old := l.record(Coordinate{32, 0}, start, 1)
	fresh := l.record(Coordinate{32, 0}, start, 5)

	assert.NotEqual(t, old, fresh)
	_, ok := l.coordinateOf(old)
	assert.False(t, ok, "overwritten node must not be reachable by reverse lookup")

	c, ok := l.coordinateOf(fresh)
	require.True(t, ok)
	assert.Equal(t, Coordinate{32, 0}, c)
	assert.Equal(t, 2, l.size())
}

func TestLedgerResetForgetsEverything(t *testing.T) {
	var l ledger
	l.reset()
	l.record(Coordinate{1, 1}, noPredecessor, 0)

	l.reset()
	_, ok := l.lookup(Coordinate{1, 1})
	assert.False(t, ok)
	assert.Zero(t, l.size())
	_, ok = l.coordinateOf(0)
	assert.False(t, ok)
}
