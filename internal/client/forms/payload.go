package forms

import (
	"strconv"
	"strings"

	"github.com/lucasdmesquita/consertos-cli/internal/client/models"
)

// BuildRequest turns validated form values into the wire payload. Required
// strings are trimmed; optional fields that are blank after trimming become
// nil so they serialize as explicit null, never as empty strings.
func BuildRequest(values map[string]string) *models.ConsertoRequest {
	req := &models.ConsertoRequest{
		DataEntrada:   strings.TrimSpace(values[FieldDataEntrada]),
		MecanicoNome:  strings.TrimSpace(values[FieldMecanicoNome]),
		VeiculoMarca:  strings.TrimSpace(values[FieldVeiculoMarca]),
		VeiculoModelo: strings.TrimSpace(values[FieldVeiculoModelo]),
		VeiculoAno:    strings.TrimSpace(values[FieldVeiculoAno]),
	}

	if s := strings.TrimSpace(values[FieldDataSaida]); s != "" {
		req.DataSaida = &s
	}
	if raw := values[FieldMecanicoAnosExperiencia]; raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			req.MecanicoAnosExperiencia = &n
		}
	}
	if s := strings.TrimSpace(values[FieldVeiculoCor]); s != "" {
		req.VeiculoCor = &s
	}

	return req
}
