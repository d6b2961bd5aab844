package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// readID takes the record id from the command arguments or prompts for it.
func (a *App) readID(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		line, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		raw = line
	}
	return strconv.ParseInt(raw, 10, 64)
}

// delete asks for confirmation and soft-deletes the record. The backend
// keeps the row and just deactivates it.
func (a *App) delete(ctx context.Context, args []string) {
	id, err := a.readID(args, "Informe o id do conserto a excluir")
	if err != nil {
		fmt.Fprintln(a.out, "Id inválido")
		return
	}

	confirm, err := getSimpleText(a.reader, "Tem certeza que deseja excluir este conserto? (s/N)", a.out)
	if err != nil {
		return
	}
	if !strings.EqualFold(confirm, "s") {
		fmt.Fprintln(a.out, "Operação cancelada.")
		return
	}

	if err := a.consertos.Delete(ctx, id); err != nil {
		a.fail(ctx, err, "Erro ao excluir conserto")
		return
	}

	fmt.Fprintln(a.out, "Conserto excluído com sucesso!")
	a.list(ctx)
}
