package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasdmesquita/consertos-cli/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// login prompts for credentials and authenticates via the AuthService. The
// candidate credential is probed against the backend before being stored, so
// a failed login leaves no session behind.
func (a *App) login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Usuário", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Usuário ou senha inválidos")
		} else {
			fmt.Fprintln(a.out, "Erro ao fazer login. Tente novamente.")
		}
		return err
	}

	a.resetListState()
	fmt.Fprintf(a.out, "Login efetuado como %s\n", a.auth.Username())
	return nil
}

// logout drops the session unconditionally.
func (a *App) logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.resetListState()
	fmt.Fprintln(a.out, "Sessão encerrada.")
	return nil
}
