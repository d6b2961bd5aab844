package forms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	dateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	yearRe = regexp.MustCompile(`^\d{4}$`)
)

const (
	minVeiculoAno = 1886 // first automobile

	minDataEntradaDay   = 1
	minDataEntradaMonth = time.January
	minDataEntradaYear  = 2015
)

// parseDate converts a masked dd/mm/yyyy string into a calendar date at
// midnight in now's location. Callers must have checked the format first.
func parseDate(s string, loc *time.Location) time.Time {
	parts := strings.Split(s, "/")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// Validate checks the whole form and returns a field-keyed error map; the
// form is submittable iff the map is empty. Rules are evaluated per field and
// the first failing rule wins. now is injected so "today" and "current year"
// are evaluated at validation time, not form-open time.
func Validate(values map[string]string, now time.Time) ErrorMap {
	errs := ErrorMap{}
	loc := now.Location()
	currentYear := now.Year()

	dataEntrada := values[FieldDataEntrada]
	switch {
	case dataEntrada == "":
		errs[FieldDataEntrada] = "Data de entrada é obrigatória"
	case !dateRe.MatchString(dataEntrada):
		errs[FieldDataEntrada] = "Formato deve ser dd/mm/aaaa"
	default:
		entrada := parseDate(dataEntrada, loc)
		minima := time.Date(minDataEntradaYear, minDataEntradaMonth, minDataEntradaDay, 0, 0, 0, 0, loc)
		if entrada.Before(minima) {
			errs[FieldDataEntrada] = "Data mínima: 01/01/2015"
		} else if entrada.After(now) {
			errs[FieldDataEntrada] = "Data não pode ser futura"
		}
	}

	if dataSaida := values[FieldDataSaida]; dataSaida != "" {
		if !dateRe.MatchString(dataSaida) {
			errs[FieldDataSaida] = "Formato deve ser dd/mm/aaaa"
		} else {
			saida := parseDate(dataSaida, loc)
			maxima := time.Date(currentYear+1, time.December, 31, 0, 0, 0, 0, loc)
			if saida.After(maxima) {
				errs[FieldDataSaida] = fmt.Sprintf("Data máxima: 31/12/%d", currentYear+1)
			} else if dataEntrada != "" && dateRe.MatchString(dataEntrada) {
				if saida.Before(parseDate(dataEntrada, loc)) {
					errs[FieldDataSaida] = "Data de saída deve ser posterior à entrada"
				}
			}
		}
	}

	// Length caps count characters, not bytes: accented input is the normal
	// case for these fields.
	nome := values[FieldMecanicoNome]
	if strings.TrimSpace(nome) == "" {
		errs[FieldMecanicoNome] = "Nome do mecânico é obrigatório"
	} else if utf8.RuneCountInString(nome) > 120 {
		errs[FieldMecanicoNome] = "Máximo 120 caracteres"
	}

	// The normalizer already clamps this field, but a simpler form variant
	// without clamping also feeds this engine, so the bound is re-checked.
	if anos := values[FieldMecanicoAnosExperiencia]; anos != "" {
		if n, err := strconv.Atoi(anos); err == nil && n > maxAnosExperiencia {
			errs[FieldMecanicoAnosExperiencia] = "Máximo 100 anos"
		}
	}

	marca := values[FieldVeiculoMarca]
	if strings.TrimSpace(marca) == "" {
		errs[FieldVeiculoMarca] = "Marca do veículo é obrigatória"
	} else if utf8.RuneCountInString(marca) > 80 {
		errs[FieldVeiculoMarca] = "Máximo 80 caracteres"
	}

	modelo := values[FieldVeiculoModelo]
	if strings.TrimSpace(modelo) == "" {
		errs[FieldVeiculoModelo] = "Modelo do veículo é obrigatório"
	} else if utf8.RuneCountInString(modelo) > 120 {
		errs[FieldVeiculoModelo] = "Máximo 120 caracteres"
	}

	ano := values[FieldVeiculoAno]
	switch {
	case ano == "":
		errs[FieldVeiculoAno] = "Ano do veículo é obrigatório"
	case !yearRe.MatchString(ano):
		errs[FieldVeiculoAno] = "Formato deve ser aaaa"
	default:
		n, _ := strconv.Atoi(ano)
		if n < minVeiculoAno {
			errs[FieldVeiculoAno] = fmt.Sprintf("Ano mínimo: %d", minVeiculoAno)
		} else if n > currentYear+1 {
			errs[FieldVeiculoAno] = fmt.Sprintf("Ano máximo: %d", currentYear+1)
		}
	}

	// veiculoCor has no rules: its length cap is enforced by truncation in
	// the normalizer.

	return errs
}
