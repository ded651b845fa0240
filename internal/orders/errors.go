package orders

import "fmt"

// ValidationError rejects a malformed submission before any transaction is
// opened. Handlers map it to a client-error status.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// CatalogError aborts the whole submission: the referenced plato does not
// exist or is currently unavailable. Everything done so far in the
// transaction is rolled back.
type CatalogError struct {
	ProductoID int64
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("Producto con ID %d no disponible", e.ProductoID)
}
