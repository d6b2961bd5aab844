// Package models defines the repair-record ("conserto") wire types exchanged
// with the backend.
package models

// Conserto is a repair record as returned by the backend.
// Optional fields are pointers and arrive as explicit null when absent.
type Conserto struct {
	ID                      int64   `json:"id"`
	DataEntrada             string  `json:"dataEntrada"`
	DataSaida               *string `json:"dataSaida"`
	MecanicoNome            string  `json:"mecanicoNome"`
	MecanicoAnosExperiencia *int    `json:"mecanicoAnosExperiencia"`
	VeiculoMarca            string  `json:"veiculoMarca"`
	VeiculoModelo           string  `json:"veiculoModelo"`
	VeiculoAno              string  `json:"veiculoAno"`
	VeiculoCor              *string `json:"veiculoCor"`
}

// ConsertoRequest is the create/update payload. Optional fields must be
// serialized as explicit null, never as empty strings.
type ConsertoRequest struct {
	DataEntrada             string  `json:"dataEntrada"`
	DataSaida               *string `json:"dataSaida"`
	MecanicoNome            string  `json:"mecanicoNome"`
	MecanicoAnosExperiencia *int    `json:"mecanicoAnosExperiencia"`
	VeiculoMarca            string  `json:"veiculoMarca"`
	VeiculoModelo           string  `json:"veiculoModelo"`
	VeiculoAno              string  `json:"veiculoAno"`
	VeiculoCor              *string `json:"veiculoCor"`
}

// ConsertoPage is the paginated envelope returned by the list and search
// endpoints (Spring Data page shape).
type ConsertoPage struct {
	Content       []Conserto `json:"content"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
}

// ConsertoResumo is a compact row from the summary listing endpoint.
type ConsertoResumo struct {
	ID            int64   `json:"id"`
	DataEntrada   string  `json:"dataEntrada"`
	DataSaida     *string `json:"dataSaida"`
	MecanicoNome  string  `json:"mecanicoNome"`
	VeiculoMarca  string  `json:"veiculoMarca"`
	VeiculoModelo string  `json:"veiculoModelo"`
}
