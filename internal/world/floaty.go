package world

// FloatyNumber is a damage number drifting up from where a hit landed.
type FloatyNumber struct {
	Amount int
	X, Y   float64
	Age    float64
}

const (
	floatyLifetime = 1.0
	floatyRise     = 24.0 // pixels per second
)

// Alpha fades the number out over its lifetime.
func (f FloatyNumber) Alpha() float64 {
	a := 1 - f.Age/floatyLifetime
	if a < 0 {
		return 0
	}
	return a
}

// FloatyNumbers manages short-lived damage numbers.
type FloatyNumbers struct {
	numbers []FloatyNumber
}

// Add shows amount at (x, y).
func (fn *FloatyNumbers) Add(amount int, x, y float64) {
	fn.numbers = append(fn.numbers, FloatyNumber{Amount: amount, X: x, Y: y})
}

// Update ages the numbers and drops expired ones.
func (fn *FloatyNumbers) Update(delta float64) {
	kept := fn.numbers[:0]
	for _, n := range fn.numbers {
		n.Age += delta
		n.Y += floatyRise * delta
		if n.Age < floatyLifetime {
			kept = append(kept, n)
		}
	}
	fn.numbers = kept
}

// All returns the live numbers.
func (fn *FloatyNumbers) All() []FloatyNumber {
	return fn.numbers
}
