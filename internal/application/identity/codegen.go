package identity

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

// Formato del código de empleado: TW + año(2) + mes(2) + tienda(3) + secuencia(3).
// Ej.: primera alta 2025-11 en la tienda "CHE999" -> TW2511CHE001.
const (
	codeTag         = "TW"
	codeSequenceMax = 999
)

// BuildCodePrefix deriva el prefijo de código para una tienda y fecha de
// contratación: los primeros 3 caracteres del código de tienda (la parte
// mnemónica, antes del sufijo numérico), rellenados con '0' a la izquierda si
// el código es más corto. Ej.: "CHE999" -> "CHE".
func BuildCodePrefix(storeCode string, hireDate time.Time) string {
	mnemonic := storeCode
	if len(mnemonic) > 3 {
		mnemonic = mnemonic[:3]
	}
	for len(mnemonic) < 3 {
		mnemonic = "0" + mnemonic
	}
	return fmt.Sprintf("%s%02d%02d%s", codeTag, hireDate.Year()%100, int(hireDate.Month()), mnemonic)
}

// NextEmployeeCode genera el siguiente código secuencial para la tienda y el
// mes. Debe ejecutarse con el repositorio atado a la misma transacción del
// alta: la lectura último-código-más-uno es una carrera conocida y la
// unicidad real la garantiza el índice único sobre employee_code más el
// reintento de la transacción completa en el caso de uso.
func NextEmployeeCode(ctx context.Context, employments repository.EmploymentRepository, storeCode string, hireDate time.Time) (string, error) {
	prefix := BuildCodePrefix(storeCode, hireDate)
	last, err := employments.LastCodeWithPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	seq := nextSequence(last, prefix)
	if seq > codeSequenceMax {
		// Decisión registrada: con la secuencia agotada se falla cerrado en
		// lugar de ensanchar el formato que consumen sistemas externos.
		return "", domain.ErrCodigoEmpleadoAgotado
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

// nextSequence extrae la secuencia de 3 dígitos del último código (0 si no
// hay ninguno o no parsea) y la incrementa.
func nextSequence(lastCode, prefix string) int {
	seq := 0
	if lastCode != "" && strings.HasPrefix(lastCode, prefix) {
		if n, err := strconv.Atoi(strings.TrimPrefix(lastCode, prefix)); err == nil {
			seq = n
		}
	}
	return seq + 1
}
