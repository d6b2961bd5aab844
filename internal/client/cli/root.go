package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasdmesquita/consertos-cli/internal/client/api"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	role := "user"
	if a.isAdmin() {
		role = "admin"
	}
	return fmt.Sprintf("(%s %s) ", a.auth.Username(), role)
}

// Root runs the console's read-eval-print loop. Mutating commands are only
// accepted for the admin account; everyone else gets the read-only set.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Sistema de Consertos (digite 'help' para comandos)")
	fmt.Fprintln(a.out, "Acesso rápido: admin/admin123 (CRUD completo), user/user123 (somente leitura)")

	if !a.isLoggedIn() {
		_ = a.login(ctx)
	}

	for {
		fmt.Fprintf(a.out, "consertos %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "login":
			_ = a.login(ctx)

		case "logout":
			_ = a.logout(ctx)

		case "l", "list":
			a.list(ctx)

		case "next":
			a.nextPage(ctx)

		case "prev":
			a.prevPage(ctx)

		case "search":
			a.search(ctx)

		case "resumo":
			a.resumo(ctx)

		case "show":
			a.show(ctx, args)

		case "new":
			if !a.requireAdmin() {
				continue
			}
			a.create(ctx)

		case "edit":
			if !a.requireAdmin() {
				continue
			}
			a.edit(ctx, args)

		case "delete":
			if !a.requireAdmin() {
				continue
			}
			a.delete(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Até logo!")
			return

		default:
			fmt.Fprintln(a.out, "Comando desconhecido:", cmd)
		}
	}
}

func (a *App) printHelp() {
	switch {
	case !a.isLoggedIn():
		fmt.Fprintln(a.out, "Comandos: login, exit")
	case a.isAdmin():
		fmt.Fprintln(a.out, "Comandos: (l)ist, next, prev, search, resumo, show, new, edit, delete, logout, exit")
	default:
		fmt.Fprintln(a.out, "Comandos: (l)ist, next, prev, search, resumo, show, logout, exit")
	}
}

func (a *App) requireAdmin() bool {
	if a.isAdmin() {
		return true
	}
	fmt.Fprintln(a.out, "Comando disponível apenas para o perfil admin")
	return false
}

// fail reports a command error to the user, mapping the gateway's typed
// failures to their messages. On an authorization failure the gateway has
// already torn the session down, so the console goes straight back to the
// login prompt.
func (a *App) fail(ctx context.Context, err error, fallback string) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Sessão expirada. Faça login novamente.")
		a.log.Error(ctx, "command failed", "error", err)
		_ = a.login(ctx)
		return
	case errors.Is(err, api.ErrNotFound):
		fmt.Fprintln(a.out, "Conserto não encontrado")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Erro de conexão com o servidor")
	default:
		var be *api.BackendError
		if errors.As(err, &be) && be.Message != "" {
			fmt.Fprintln(a.out, be.Message)
		} else {
			fmt.Fprintln(a.out, fallback)
		}
	}
	a.log.Error(ctx, "command failed", "error", err)
}
