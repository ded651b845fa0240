package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSubmission(t *testing.T) {
	valid := Submission{
		NumeroMesa: "5",
		Items:      []SubmissionItem{{ProductoID: 7, Cantidad: 2}},
	}

	tests := []struct {
		name    string
		mutate  func(s *Submission)
		wantErr string
	}{
		{name: "valid", mutate: func(s *Submission) {}},
		{
			name:    "missing table number",
			mutate:  func(s *Submission) { s.NumeroMesa = "" },
			wantErr: "Faltan campos requeridos: numero_mesa, items",
		},
		{
			name:    "empty items",
			mutate:  func(s *Submission) { s.Items = nil },
			wantErr: "Faltan campos requeridos: numero_mesa, items",
		},
		{
			name:    "item without product id",
			mutate:  func(s *Submission) { s.Items = []SubmissionItem{{Cantidad: 1}} },
			wantErr: "items[0]: producto_id requerido",
		},
		{
			name:    "zero quantity",
			mutate:  func(s *Submission) { s.Items = []SubmissionItem{{ProductoID: 7, Cantidad: 0}} },
			wantErr: "items[0]: cantidad debe ser mayor que cero",
		},
		{
			name: "negative quantity in later item",
			mutate: func(s *Submission) {
				s.Items = []SubmissionItem{{ProductoID: 7, Cantidad: 1}, {ProductoID: 9, Cantidad: -3}}
			},
			wantErr: "items[1]: cantidad debe ser mayor que cero",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)
			err := ValidateSubmission(&s)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantErr, verr.Reason)
		})
	}
}
