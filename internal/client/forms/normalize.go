package forms

import "strconv"

const (
	maxAnosExperiencia = 100
	maxCorLen          = 20
)

// Normalize applies the per-field input sanitization rules:
//
//   - date fields go through the dd/mm/yyyy mask;
//   - the vehicle year keeps digits only, truncated to 4;
//   - years of experience keeps digits only and is clamped to 0..100, with
//     empty input staying empty ("not provided" is not zero);
//   - the vehicle color is truncated to 20 characters;
//   - every other field passes through unchanged; trimming happens at
//     submission time, not while typing.
func Normalize(name, raw string) string {
	switch name {
	case FieldDataEntrada, FieldDataSaida:
		return MaskDate(raw)

	case FieldVeiculoAno:
		digits := onlyDigits(raw)
		if len(digits) > 4 {
			digits = digits[:4]
		}
		return digits

	case FieldMecanicoAnosExperiencia:
		digits := onlyDigits(raw)
		if digits == "" {
			return ""
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n > maxAnosExperiencia {
			n = maxAnosExperiencia
		}
		return strconv.Itoa(n)

	case FieldVeiculoCor:
		if r := []rune(raw); len(r) > maxCorLen {
			return string(r[:maxCorLen])
		}
		return raw

	default:
		return raw
	}
}
