package orders

import "fmt"

// ValidateSubmission checks the request shape. It runs before the transaction
// is opened; a failed submission must leave the database untouched.
func ValidateSubmission(s *Submission) error {
	if s.NumeroMesa == "" || len(s.Items) == 0 {
		return &ValidationError{Reason: "Faltan campos requeridos: numero_mesa, items"}
	}
	for i, it := range s.Items {
		if it.ProductoID <= 0 {
			return &ValidationError{Reason: fmt.Sprintf("items[%d]: producto_id requerido", i)}
		}
		if it.Cantidad <= 0 {
			return &ValidationError{Reason: fmt.Sprintf("items[%d]: cantidad debe ser mayor que cero", i)}
		}
	}
	return nil
}
