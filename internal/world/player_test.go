package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerDamageFloorsAtZero(t *testing.T) {
	p := NewPlayer(0, 0, 20, 20, 160, 3)

	assert.True(t, p.Damage(2))
	assert.Equal(t, 1, p.Health())
	assert.True(t, p.Hurt())

	assert.True(t, p.Damage(5))
	assert.Equal(t, 0, p.Health())
	assert.True(t, p.IsDead())

	assert.False(t, p.Damage(1), "no health left to lose")
	assert.False(t, p.Damage(0))
}

func TestPlayerAttackCooldown(t *testing.T) {
	p := NewPlayer(0, 0, 20, 20, 160, 3)
	p.AttackCooldown = 0.4

	assert.True(t, p.tryAttack(1))
	assert.False(t, p.tryAttack(1))

	p.tick(0.2)
	assert.False(t, p.tryAttack(1))
	p.tick(0.2)
	assert.True(t, p.tryAttack(0.5))

	p.tick(0.2)
	assert.True(t, p.tryAttack(1), "halved cooldown has run out")
}

func TestFloatyNumbersExpire(t *testing.T) {
	var fn FloatyNumbers
	fn.Add(3, 10, 10)

	fn.Update(0.5)
	nums := fn.All()
	if assert.Len(t, nums, 1) {
		assert.InDelta(t, 22.0, nums[0].Y, 1e-9)
		assert.InDelta(t, 0.5, nums[0].Alpha(), 1e-9)
	}

	fn.Update(0.5)
	assert.Empty(t, fn.All())
}
