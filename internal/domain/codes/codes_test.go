package codes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-pyme/internal/domain/codes"
)

func TestNext(t *testing.T) {
	cases := []struct {
		name     string
		prefix   string
		existing []string
		expected string
	}{
		{"colección vacía arranca en 001", "C", nil, "C001"},
		{"secuencia simple", "C", []string{"C001", "C002", "C003"}, "C004"},
		{"huecos no se rellenan", "C", []string{"C001", "C005"}, "C006"},
		{"códigos renombrados sin dígitos se ignoran", "C", []string{"CASA", "C002"}, "C003"},
		{"solo códigos sin dígitos arranca en 001", "S", []string{"SX", "PEPE"}, "S001"},
		{"sufijos largos no se truncan", "N", []string{"N099"}, "N100"},
		{"pasa de tres dígitos sin romper", "N", []string{"N999"}, "N1000"},
		{"prefijo de facturas", "R", []string{"R001", "R002"}, "R003"},
		{"dígitos dispersos cuentan como sufijo", "T", []string{"T0a1"}, "T002"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := codes.Next(tc.prefix, tc.existing)
			assert.Equal(t, tc.expected, got)
		})
	}
}
