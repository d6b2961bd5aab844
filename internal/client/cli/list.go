package cli

import (
	"context"
	"fmt"
)

// list loads the current page using the active search filters (empty filters
// mean a plain listing) and renders it.
func (a *App) list(ctx context.Context) {
	page, err := a.consertos.Search(ctx, a.marca, a.modelo, a.page, a.config.PageSize)
	if err != nil {
		a.fail(ctx, err, "Erro ao carregar consertos")
		return
	}

	a.totalPages = page.TotalPages
	a.renderPage(page)
}

func (a *App) nextPage(ctx context.Context) {
	if a.page < a.totalPages-1 {
		a.page++
	}
	a.list(ctx)
}

func (a *App) prevPage(ctx context.Context) {
	if a.page > 0 {
		a.page--
	}
	a.list(ctx)
}

// search prompts for the optional marca/modelo filters. Leaving both empty
// clears the filters and goes back to the plain listing. A new search always
// restarts from the first page.
func (a *App) search(ctx context.Context) {
	marca, err := getSimpleText(a.reader, "Marca do veículo (vazio para todas)", a.out)
	if err != nil {
		return
	}
	modelo, err := getSimpleText(a.reader, "Modelo do veículo (vazio para todos)", a.out)
	if err != nil {
		return
	}

	a.marca = marca
	a.modelo = modelo
	a.page = 0

	page, err := a.consertos.Search(ctx, a.marca, a.modelo, a.page, a.config.PageSize)
	if err != nil {
		a.fail(ctx, err, "Erro ao buscar consertos")
		return
	}

	a.totalPages = page.TotalPages
	a.renderPage(page)
}

func (a *App) resumo(ctx context.Context) {
	rows, err := a.consertos.Resumo(ctx)
	if err != nil {
		a.fail(ctx, err, "Erro ao carregar resumo")
		return
	}
	a.renderResumo(rows)
}

func (a *App) show(ctx context.Context, args []string) {
	id, err := a.readID(args, "Informe o id do conserto")
	if err != nil {
		fmt.Fprintln(a.out, "Id inválido")
		return
	}

	c, err := a.consertos.Get(ctx, id)
	if err != nil {
		a.fail(ctx, err, "Erro ao carregar conserto")
		return
	}
	a.renderConserto(c)
}
