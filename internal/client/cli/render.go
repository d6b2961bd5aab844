package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/lucasdmesquita/consertos-cli/internal/client/models"
)

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func (a *App) renderPage(page *models.ConsertoPage) {
	if len(page.Content) == 0 {
		fmt.Fprintln(a.out, "Nenhum conserto encontrado")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENTRADA\tSAÍDA\tMECÂNICO\tMARCA\tMODELO\tANO\tCOR")
	for _, c := range page.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.DataEntrada, orDash(c.DataSaida), c.MecanicoNome,
			c.VeiculoMarca, c.VeiculoModelo, c.VeiculoAno, orDash(c.VeiculoCor))
	}
	_ = w.Flush()

	totalPages := page.TotalPages
	if totalPages == 0 {
		totalPages = 1
	}
	fmt.Fprintf(a.out, "Total de consertos: %d | Página %d de %d\n",
		page.TotalElements, page.Number+1, totalPages)
}

func (a *App) renderResumo(rows []models.ConsertoResumo) {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "Nenhum conserto encontrado")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENTRADA\tSAÍDA\tMECÂNICO\tMARCA\tMODELO")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.DataEntrada, orDash(r.DataSaida), r.MecanicoNome,
			r.VeiculoMarca, r.VeiculoModelo)
	}
	_ = w.Flush()
}

func (a *App) renderConserto(c *models.Conserto) {
	fmt.Fprintf(a.out, "Conserto #%d\n", c.ID)
	fmt.Fprintf(a.out, "  Data entrada: %s\n", c.DataEntrada)
	fmt.Fprintf(a.out, "  Data saída: %s\n", orDash(c.DataSaida))
	fmt.Fprintf(a.out, "  Mecânico: %s\n", c.MecanicoNome)
	anos := "-"
	if c.MecanicoAnosExperiencia != nil {
		anos = strconv.Itoa(*c.MecanicoAnosExperiencia)
	}
	fmt.Fprintf(a.out, "  Anos de experiência: %s\n", anos)
	fmt.Fprintf(a.out, "  Veículo: %s %s %s\n", c.VeiculoMarca, c.VeiculoModelo, c.VeiculoAno)
	fmt.Fprintf(a.out, "  Cor: %s\n", orDash(c.VeiculoCor))
}
