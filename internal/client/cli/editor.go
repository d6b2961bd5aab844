package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lucasdmesquita/consertos-cli/internal/client/forms"
	"github.com/lucasdmesquita/consertos-cli/internal/client/services"
)

// cancelWord aborts the form editor from any field prompt.
const cancelWord = "!cancelar"

// clearWord empties an optional field that currently holds a value.
const clearWord = "-"

var errCanceled = errors.New("form canceled")

var fieldPrompts = map[string]string{
	forms.FieldDataEntrada:             "Data entrada * (dd/mm/aaaa, mín: 01/01/2015)",
	forms.FieldDataSaida:               "Data saída (dd/mm/aaaa)",
	forms.FieldMecanicoNome:            "Nome do mecânico *",
	forms.FieldMecanicoAnosExperiencia: "Anos de experiência (máx: 100)",
	forms.FieldVeiculoMarca:            "Marca do veículo *",
	forms.FieldVeiculoModelo:           "Modelo do veículo *",
	forms.FieldVeiculoAno:              "Ano do veículo * (aaaa)",
	forms.FieldVeiculoCor:              "Cor do veículo",
}

// promptField reads one field, pushing the raw line through the form's
// normalizer (date mask, digit stripping, clamping). When the field already
// holds a value, Enter keeps it and "-" clears it.
func (a *App) promptField(f *forms.Form, name string) error {
	current := f.Values[name]
	prompt := fieldPrompts[name]
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}

	line, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	switch line {
	case cancelWord:
		return errCanceled
	case "":
		if current != "" {
			return nil
		}
	case clearWord:
		line = ""
	}

	f.Set(name, line)
	return nil
}

// fillForm walks the user through every field, then validates and re-prompts
// only the failing fields until the form is clean or the user cancels.
// It reports whether the form ended up submittable.
func (a *App) fillForm(f *forms.Form) (bool, error) {
	fmt.Fprintf(a.out, "(%s aborta, Enter mantém o valor atual, %s limpa o campo)\n", cancelWord, clearWord)

	for _, name := range forms.Fields {
		if err := a.promptField(f, name); err != nil {
			if errors.Is(err, errCanceled) {
				fmt.Fprintln(a.out, "Operação cancelada.")
				return false, nil
			}
			return false, err
		}
	}

	for {
		if f.Validate(time.Now()) {
			return true, nil
		}

		fmt.Fprintln(a.out, "Corrija os campos abaixo:")
		for _, name := range forms.Fields {
			if msg, ok := f.Errors[name]; ok {
				fmt.Fprintf(a.out, "  %s: %s\n", name, msg)
			}
		}

		for _, name := range forms.Fields {
			if _, ok := f.Errors[name]; !ok {
				continue
			}
			if err := a.promptField(f, name); err != nil {
				if errors.Is(err, errCanceled) {
					fmt.Fprintln(a.out, "Operação cancelada.")
					return false, nil
				}
				return false, err
			}
		}
	}
}

func (a *App) create(ctx context.Context) {
	fmt.Fprintln(a.out, "Novo conserto:")

	f := forms.New()
	ok, err := a.fillForm(f)
	if err != nil || !ok {
		return
	}

	created, err := a.consertos.Create(ctx, f)
	if err != nil {
		a.fail(ctx, err, "Erro ao criar conserto")
		return
	}

	fmt.Fprintf(a.out, "Conserto criado com sucesso! (id %d)\n", created.ID)
	a.list(ctx)
}

func (a *App) edit(ctx context.Context, args []string) {
	id, err := a.readID(args, "Informe o id do conserto a editar")
	if err != nil {
		fmt.Fprintln(a.out, "Id inválido")
		return
	}

	c, err := a.consertos.Get(ctx, id)
	if err != nil {
		a.fail(ctx, err, "Erro ao carregar conserto")
		return
	}

	fmt.Fprintf(a.out, "Editar conserto #%d:\n", c.ID)

	f := forms.FromConserto(c)
	ok, err := a.fillForm(f)
	if err != nil || !ok {
		return
	}

	if err := a.consertos.Update(ctx, id, f); err != nil {
		if errors.Is(err, services.ErrValidationFailed) {
			fmt.Fprintln(a.out, "Formulário inválido")
			return
		}
		a.fail(ctx, err, "Erro ao atualizar conserto")
		return
	}

	fmt.Fprintln(a.out, "Conserto atualizado com sucesso!")
	a.list(ctx)
}
