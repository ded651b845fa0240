package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 39.00, subtotal(19.50, 2))
	assert.Equal(t, 8.50, subtotal(8.50, 1))
	assert.Equal(t, 25.50, subtotal(8.50, 3))
}

func TestAccumulationStaysAtCentPrecision(t *testing.T) {
	// 0.1 + 0.2 style drift must not survive a cent-rounded accumulation
	var total float64
	for i := 0; i < 10; i++ {
		total = roundCents(total + subtotal(0.10, 1))
	}
	assert.Equal(t, 1.00, total)

	total = 0
	for _, precio := range []float64{19.50, 8.50, 4.00, 12.50} {
		total = roundCents(total + subtotal(precio, 3))
	}
	assert.Equal(t, 133.50, total)
}
