package powerup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableBands(t *testing.T) {
	table := DefaultTable()
	tests := []struct {
		r    float64
		want Kind
		ok   bool
	}{
		{0, ScoreMultiplier, true},
		{0.0499, ScoreMultiplier, true},
		{0.05, Invulnerable, true},
		{0.0999, Invulnerable, true},
		{0.10, SuperSpeed, true},
		{0.1499, SuperSpeed, true},
		{0.15, RateOfFire, true},
		{0.1999, RateOfFire, true},
		{0.20, 0, false},
		{0.99, 0, false},
	}
	for _, tt := range tests {
		kind, ok := table.Roll(tt.r)
		assert.Equal(t, tt.ok, ok, "r=%v", tt.r)
		if tt.ok {
			assert.Equal(t, tt.want, kind, "r=%v", tt.r)
		}
	}
}

func TestManagerCollectAndExpire(t *testing.T) {
	m := NewManager(16)
	m.Spawn(100, 100, SuperSpeed, 10)
	m.Spawn(300, 300, Invulnerable, 10)

	got := m.Collect(90, 90, 110, 110)
	require.Equal(t, []Kind{SuperSpeed}, got)
	assert.Len(t, m.Pickups(), 1)
	assert.True(t, m.Active(SuperSpeed))
	assert.False(t, m.Active(Invulnerable))

	m.Update(9.5)
	assert.True(t, m.Active(SuperSpeed))
	assert.InDelta(t, 0.5, m.Remaining(SuperSpeed), 1e-9)

	m.Update(1)
	assert.False(t, m.Active(SuperSpeed))
	assert.Zero(t, m.Remaining(SuperSpeed))
}

func TestManagerReset(t *testing.T) {
	m := NewManager(16)
	m.Spawn(0, 0, RateOfFire, 10)
	m.Collect(0, 0, 10, 10)
	m.Spawn(50, 50, ScoreMultiplier, 10)

	m.Reset()
	assert.Empty(t, m.Pickups())
	assert.False(t, m.Active(RateOfFire))
}
