// Package forms implements the repair-record form core: the incremental date
// mask, per-field input normalization, whole-form validation, and the
// submission payload builder. Everything here is pure; the current time is
// always passed in by the caller.
package forms

import (
	"strconv"
	"time"

	"github.com/lucasdmesquita/consertos-cli/internal/client/models"
)

// Field names, matching the backend's wire names.
const (
	FieldDataEntrada             = "dataEntrada"
	FieldDataSaida               = "dataSaida"
	FieldMecanicoNome            = "mecanicoNome"
	FieldMecanicoAnosExperiencia = "mecanicoAnosExperiencia"
	FieldVeiculoMarca            = "veiculoMarca"
	FieldVeiculoModelo           = "veiculoModelo"
	FieldVeiculoAno              = "veiculoAno"
	FieldVeiculoCor              = "veiculoCor"
)

// Fields lists the form fields in display order.
var Fields = []string{
	FieldDataEntrada,
	FieldDataSaida,
	FieldMecanicoNome,
	FieldMecanicoAnosExperiencia,
	FieldVeiculoMarca,
	FieldVeiculoModelo,
	FieldVeiculoAno,
	FieldVeiculoCor,
}

// ErrorMap maps a field name to its validation message.
type ErrorMap map[string]string

// Form is the transient editing state: raw field values plus the error map
// from the last validation run. It is discarded after a successful submit or
// a cancel.
type Form struct {
	Values map[string]string
	Errors ErrorMap
}

func New() *Form {
	values := make(map[string]string, len(Fields))
	for _, name := range Fields {
		values[name] = ""
	}
	return &Form{Values: values, Errors: ErrorMap{}}
}

// FromConserto seeds a form from an existing record for editing.
func FromConserto(c *models.Conserto) *Form {
	f := New()
	f.Values[FieldDataEntrada] = c.DataEntrada
	f.Values[FieldMecanicoNome] = c.MecanicoNome
	f.Values[FieldVeiculoMarca] = c.VeiculoMarca
	f.Values[FieldVeiculoModelo] = c.VeiculoModelo
	f.Values[FieldVeiculoAno] = c.VeiculoAno
	if c.DataSaida != nil {
		f.Values[FieldDataSaida] = *c.DataSaida
	}
	if c.MecanicoAnosExperiencia != nil {
		f.Values[FieldMecanicoAnosExperiencia] = strconv.Itoa(*c.MecanicoAnosExperiencia)
	}
	if c.VeiculoCor != nil {
		f.Values[FieldVeiculoCor] = *c.VeiculoCor
	}
	return f
}

// Set normalizes raw input for the named field and stores it. Editing a field
// clears its pending validation error.
func (f *Form) Set(name, raw string) {
	f.Values[name] = Normalize(name, raw)
	delete(f.Errors, name)
}

// Validate runs the validation engine against the current values and replaces
// the form's error map. It reports whether the form is submittable.
func (f *Form) Validate(now time.Time) bool {
	f.Errors = Validate(f.Values, now)
	return len(f.Errors) == 0
}

// Request builds the wire payload from the current values. Only meaningful
// after a successful Validate.
func (f *Form) Request() *models.ConsertoRequest {
	return BuildRequest(f.Values)
}
