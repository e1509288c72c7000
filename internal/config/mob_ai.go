package config

// Defaults for mob pursuit. The iteration limit doubles as the per-search cost ceiling.
const (
	DefaultPathfindingRate       = 1.0
	DefaultPathfindingRateOffset = 0.05
	DefaultIterationLimit        = 30
	DefaultAttackDelay           = 1.0
	DefaultActivationRadius      = 1280.0 / 4
)

func (c *Config) GetPathfindingRate() float64 {
	if c.MobAI.PathfindingRate <= 0 {
		return DefaultPathfindingRate
	}
	return c.MobAI.PathfindingRate
}

func (c *Config) GetPathfindingRateOffset() float64 {
	if c.MobAI.PathfindingRateOffset < 0 {
		return 0
	}
	if c.MobAI.PathfindingRateOffset == 0 {
		return DefaultPathfindingRateOffset
	}
	return c.MobAI.PathfindingRateOffset
}

// GetIterationLimit distinguishes an explicit 0 (no expansion at all) from an unset value.
func (c *Config) GetIterationLimit() int {
	if c.MobAI.IterationLimit == nil || *c.MobAI.IterationLimit < 0 {
		return DefaultIterationLimit
	}
	return *c.MobAI.IterationLimit
}

func (c *Config) GetAttackDelay() float64 {
	if c.MobAI.AttackDelay <= 0 {
		return DefaultAttackDelay
	}
	return c.MobAI.AttackDelay
}

func (c *Config) GetActivationRadius() float64 {
	if c.MobAI.ActivationRadius <= 0 {
		return DefaultActivationRadius
	}
	return c.MobAI.ActivationRadius
}

func (c *Config) GetPlayerMaxHealth() int {
	if c.Player.MaxHealth <= 0 {
		return 6
	}
	return c.Player.MaxHealth
}

func (c *Config) GetPlayerSpeed() float64 {
	if c.Player.Speed <= 0 {
		return 160
	}
	return c.Player.Speed
}

func (c *Config) GetPlayerBox() (float64, float64) {
	w, h := c.Player.BoxW, c.Player.BoxH
	if w <= 0 {
		w = 20
	}
	if h <= 0 {
		h = 20
	}
	return w, h
}

func (c *Config) GetPlayerAttackRange() float64 {
	if c.Player.AttackRange <= 0 {
		return 48
	}
	return c.Player.AttackRange
}

func (c *Config) GetPlayerAttackCooldown() float64 {
	if c.Player.AttackCooldown <= 0 {
		return 0.4
	}
	return c.Player.AttackCooldown
}

func (c *Config) GetPlayerAttackDamage() int {
	if c.Player.AttackDamage <= 0 {
		return 1
	}
	return c.Player.AttackDamage
}
