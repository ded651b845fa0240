package orders

import "math"

// Amounts are euros held at NUMERIC(10,2) precision; every accumulation step
// rounds back to cents so the persisted total is exact.

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func subtotal(precio float64, cantidad int) float64 {
	return roundCents(precio * float64(cantidad))
}
