// Package codes genera códigos secuenciales por colección (C001, S001, E001,
// N001, R001, T001): prefijo + sufijo numérico máximo existente + 1, con relleno
// de ceros a tres dígitos.
package codes

import (
	"fmt"
	"strconv"
	"strings"
)

// Next siguiente código de la colección. Escanea todos los códigos existentes,
// descarta los caracteres no numéricos, toma el máximo y suma uno; colección
// vacía o sin sufijos numéricos arranca en <prefijo>001.
func Next(prefix string, existing []string) string {
	max := 0
	for _, code := range existing {
		n, ok := numericSuffix(code)
		if ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// numericSuffix extrae el valor numérico de un código quitando todo lo que no
// sea dígito. "C005" -> 5; "CX" -> sin valor.
func numericSuffix(code string) (int, bool) {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
