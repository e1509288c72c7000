package powerup

// Pickup is a dropped power-up waiting on the ground.
type Pickup struct {
	X, Y     float64
	Kind     Kind
	Duration float64
}

// Manager owns dropped pickups and the player's active effect timers.
type Manager struct {
	size    float64
	pickups []Pickup
	active  [kindCount]float64
}

// NewManager creates a manager; size is the square pickup hitbox in pixels.
func NewManager(size float64) *Manager {
	return &Manager{size: size}
}

// Spawn drops a pickup at (x, y) granting kind for duration seconds.
func (m *Manager) Spawn(x, y float64, kind Kind, duration float64) {
	m.pickups = append(m.pickups, Pickup{X: x, Y: y, Kind: kind, Duration: duration})
}

// Collect activates and removes every pickup overlapping the given box.
// A pickup of an already active kind resets its timer.
func (m *Manager) Collect(minX, minY, maxX, maxY float64) []Kind {
	var got []Kind
	kept := m.pickups[:0]
	for _, p := range m.pickups {
		if p.X < maxX && p.X+m.size > minX && p.Y < maxY && p.Y+m.size > minY {
			m.active[p.Kind] = p.Duration
			got = append(got, p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	m.pickups = kept
	return got
}

// Update ticks active effects down by delta seconds.
func (m *Manager) Update(delta float64) {
	for k := range m.active {
		if m.active[k] > 0 {
			m.active[k] -= delta
			if m.active[k] < 0 {
				m.active[k] = 0
			}
		}
	}
}

func (m *Manager) Active(kind Kind) bool {
	return m.active[kind] > 0
}

func (m *Manager) Remaining(kind Kind) float64 {
	return m.active[kind]
}

func (m *Manager) Pickups() []Pickup {
	return m.pickups
}

func (m *Manager) Size() float64 {
	return m.size
}

// Reset clears pickups and timers.
func (m *Manager) Reset() {
	m.pickups = m.pickups[:0]
	m.active = [kindCount]float64{}
}
