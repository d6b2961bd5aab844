package forms

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_VeiculoAno(t *testing.T) {
	assert.Equal(t, "2021", Normalize(FieldVeiculoAno, "2021"))
	assert.Equal(t, "2021", Normalize(FieldVeiculoAno, "20215"))
	assert.Equal(t, "2021", Normalize(FieldVeiculoAno, "ab20cd21"))
	assert.Equal(t, "", Normalize(FieldVeiculoAno, "abc"))
}

func TestNormalize_AnosExperiencia(t *testing.T) {
	assert.Equal(t, "100", Normalize(FieldMecanicoAnosExperiencia, "150"))
	assert.Equal(t, "100", Normalize(FieldMecanicoAnosExperiencia, "100"))
	assert.Equal(t, "5", Normalize(FieldMecanicoAnosExperiencia, "5"))

	// leading zeros collapse through the numeric round trip
	assert.Equal(t, "7", Normalize(FieldMecanicoAnosExperiencia, "007"))

	// empty means "not provided", never zero
	assert.Equal(t, "", Normalize(FieldMecanicoAnosExperiencia, ""))
	assert.Equal(t, "", Normalize(FieldMecanicoAnosExperiencia, "anos"))
}

func TestNormalize_DatesGoThroughMask(t *testing.T) {
	assert.Equal(t, "14/11/2024", Normalize(FieldDataEntrada, "14112024"))
	assert.Equal(t, "04", Normalize(FieldDataSaida, "4"))
}

func TestNormalize_FreeTextPassesThrough(t *testing.T) {
	// whitespace is kept while typing; trimming happens at submission
	assert.Equal(t, "  Roberto Silva ", Normalize(FieldMecanicoNome, "  Roberto Silva "))
	assert.Equal(t, "Azul", Normalize(FieldVeiculoCor, "Azul"))
}

func TestNormalize_VeiculoCorTruncatedAtTwenty(t *testing.T) {
	assert.Equal(t, strings.Repeat("x", 20), Normalize(FieldVeiculoCor, strings.Repeat("x", 30)))

	// characters, not bytes
	assert.Equal(t, strings.Repeat("é", 20), Normalize(FieldVeiculoCor, strings.Repeat("é", 30)))
}

// A color typed past the cap is cut by the normalizer, so the payload can
// never carry more than 20 characters.
func TestSetLongColor_PayloadStaysWithinCap(t *testing.T) {
	f := &Form{Values: validValues(), Errors: ErrorMap{}}
	f.Set(FieldVeiculoCor, strings.Repeat("b", 30))

	require.True(t, f.Validate(now))
	req := f.Request()
	require.NotNil(t, req.VeiculoCor)
	assert.Equal(t, 20, utf8.RuneCountInString(*req.VeiculoCor))
}

func TestFormSet_ClearsFieldError(t *testing.T) {
	f := New()
	f.Errors[FieldMecanicoNome] = "Nome do mecânico é obrigatório"
	f.Errors[FieldVeiculoAno] = "Ano do veículo é obrigatório"

	f.Set(FieldMecanicoNome, "Roberto")

	assert.NotContains(t, f.Errors, FieldMecanicoNome)
	assert.Contains(t, f.Errors, FieldVeiculoAno)
	assert.Equal(t, "Roberto", f.Values[FieldMecanicoNome])
}
