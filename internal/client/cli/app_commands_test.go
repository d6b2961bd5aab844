package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lucasdmesquita/consertos-cli/internal/client/api"
	"github.com/lucasdmesquita/consertos-cli/internal/client/config"
	"github.com/lucasdmesquita/consertos-cli/internal/client/forms"
	"github.com/lucasdmesquita/consertos-cli/internal/client/models"
	"github.com/lucasdmesquita/consertos-cli/internal/client/services"
	"github.com/lucasdmesquita/consertos-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	lines = append(lines, "")
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }

type fakeAuth struct {
	loggedIn  bool
	username  string
	loginUser string
	loginPass string
	loginErr  error
	loggedOut bool
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) error {
	f.loginUser = username
	f.loginPass = password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	f.username = username
	return nil
}
func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	f.loggedIn = false
	f.username = ""
	return nil
}
func (f *fakeAuth) Restore(ctx context.Context) error { return nil }
func (f *fakeAuth) IsAuthenticated() bool             { return f.loggedIn }
func (f *fakeAuth) Username() string                  { return f.username }

type fakeCS struct {
	// Search
	searchMarca  string
	searchModelo string
	searchPage   int
	searchSize   int
	pageOut      *models.ConsertoPage
	searchErr    error

	// Get
	getID  int64
	getOut *models.Conserto
	getErr error

	// Resumo
	resumoOut []models.ConsertoResumo
	resumoErr error

	// Create
	createForm *forms.Form
	createOut  *models.Conserto
	createErr  error

	// Update
	updateID   int64
	updateForm *forms.Form
	updateErr  error

	// Delete
	delID  int64
	delErr error
}

func (f *fakeCS) List(ctx context.Context, page, size int) (*models.ConsertoPage, error) {
	return f.Search(ctx, "", "", page, size)
}
func (f *fakeCS) Search(ctx context.Context, marca, modelo string, page, size int) (*models.ConsertoPage, error) {
	f.searchMarca = marca
	f.searchModelo = modelo
	f.searchPage = page
	f.searchSize = size
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.pageOut != nil {
		return f.pageOut, nil
	}
	return &models.ConsertoPage{}, nil
}
func (f *fakeCS) Get(ctx context.Context, id int64) (*models.Conserto, error) {
	f.getID = id
	return f.getOut, f.getErr
}
func (f *fakeCS) Resumo(ctx context.Context) ([]models.ConsertoResumo, error) {
	return f.resumoOut, f.resumoErr
}
func (f *fakeCS) Create(ctx context.Context, form *forms.Form) (*models.Conserto, error) {
	f.createForm = form
	return f.createOut, f.createErr
}
func (f *fakeCS) Update(ctx context.Context, id int64, form *forms.Form) error {
	f.updateID = id
	f.updateForm = form
	return f.updateErr
}
func (f *fakeCS) Delete(ctx context.Context, id int64) error {
	f.delID = id
	return f.delErr
}

func newTestApp(auth *fakeAuth, cs *fakeCS, r *bufio.Reader) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	app := &App{
		config:    &config.Config{PageSize: 10},
		log:       nopLogger{},
		auth:      auth,
		consertos: cs,
		reader:    r,
		out:       out,
	}
	return app, out
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ------------ tests ------------

func TestCreate_SubmitsValidForm(t *testing.T) {
	cs := &fakeCS{createOut: &models.Conserto{ID: 7}}
	r := readerFromLines(
		"15032024",     // data entrada, raw digits run through the mask
		"",             // data saída
		"Carlos Silva", // mecânico
		"12",           // anos de experiência
		"Fiat",         // marca
		"Uno",          // modelo
		"2020",         // ano
		"",             // cor
	)
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "admin"}, cs, r)

	app.create(context.Background())

	require.NotNil(t, cs.createForm)
	require.Equal(t, "15/03/2024", cs.createForm.Values[forms.FieldDataEntrada])
	require.Equal(t, "Carlos Silva", cs.createForm.Values[forms.FieldMecanicoNome])
	require.Equal(t, "12", cs.createForm.Values[forms.FieldMecanicoAnosExperiencia])
	require.Equal(t, "2020", cs.createForm.Values[forms.FieldVeiculoAno])
	require.Contains(t, out.String(), "Conserto criado com sucesso! (id 7)")
}

func TestCreate_Cancel(t *testing.T) {
	cs := &fakeCS{}
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "admin"}, cs, readerFromLines(cancelWord))

	app.create(context.Background())

	require.Nil(t, cs.createForm)
	require.Contains(t, out.String(), "Operação cancelada.")
}

func TestCreate_RepromptsOnlyFailingFields(t *testing.T) {
	cs := &fakeCS{createOut: &models.Conserto{ID: 1}}
	r := readerFromLines(
		"15032024",
		"",
		"Carlos Silva",
		"5",
		"Fiat",
		"Uno",
		"1800", // below the minimum year, triggers a second prompt
		"",
		"2019", // the only re-prompted field
	)
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "admin"}, cs, r)

	app.create(context.Background())

	require.Contains(t, out.String(), "Ano mínimo: 1886")
	require.NotNil(t, cs.createForm)
	require.Equal(t, "2019", cs.createForm.Values[forms.FieldVeiculoAno])
	require.Contains(t, out.String(), "Conserto criado com sucesso!")
}

func TestEdit_EnterKeepsCurrentValues(t *testing.T) {
	cs := &fakeCS{
		getOut: &models.Conserto{
			ID:                      3,
			DataEntrada:             "10/01/2024",
			DataSaida:               strPtr("12/01/2024"),
			MecanicoNome:            "Ana Souza",
			MecanicoAnosExperiencia: intPtr(8),
			VeiculoMarca:            "Ford",
			VeiculoModelo:           "Ka",
			VeiculoAno:              "2018",
			VeiculoCor:              strPtr("Prata"),
		},
	}
	// Enter on every field keeps what the record already holds.
	r := readerFromLines("", "", "", "", "", "", "", "")
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "admin"}, cs, r)

	app.edit(context.Background(), []string{"3"})

	require.Equal(t, int64(3), cs.getID)
	require.Equal(t, int64(3), cs.updateID)
	require.NotNil(t, cs.updateForm)
	require.Equal(t, "10/01/2024", cs.updateForm.Values[forms.FieldDataEntrada])
	require.Equal(t, "Ana Souza", cs.updateForm.Values[forms.FieldMecanicoNome])
	require.Equal(t, "Prata", cs.updateForm.Values[forms.FieldVeiculoCor])
	require.Contains(t, out.String(), "Conserto atualizado com sucesso!")
}

func TestEdit_ClearWordEmptiesOptionalField(t *testing.T) {
	cs := &fakeCS{
		getOut: &models.Conserto{
			ID:            4,
			DataEntrada:   "10/01/2024",
			DataSaida:     strPtr("12/01/2024"),
			MecanicoNome:  "Ana Souza",
			VeiculoMarca:  "Ford",
			VeiculoModelo: "Ka",
			VeiculoAno:    "2018",
		},
	}
	r := readerFromLines("", clearWord, "", "", "", "", "", "")
	app, _ := newTestApp(&fakeAuth{loggedIn: true, username: "admin"}, cs, r)

	app.edit(context.Background(), []string{"4"})

	require.NotNil(t, cs.updateForm)
	require.Equal(t, "", cs.updateForm.Values[forms.FieldDataSaida])
}

func TestDelete_Confirmed(t *testing.T) {
	cs := &fakeCS{}
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "admin"}, cs, readerFromLines("s"))

	app.delete(context.Background(), []string{"5"})

	require.Equal(t, int64(5), cs.delID)
	require.Contains(t, out.String(), "Conserto excluído com sucesso!")
}

func TestDelete_Aborted(t *testing.T) {
	cs := &fakeCS{}
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "admin"}, cs, readerFromLines("n"))

	app.delete(context.Background(), []string{"5"})

	require.Zero(t, cs.delID)
	require.Contains(t, out.String(), "Operação cancelada.")
}

func TestShow_ByArgument(t *testing.T) {
	cs := &fakeCS{
		getOut: &models.Conserto{
			ID:            3,
			DataEntrada:   "10/01/2024",
			MecanicoNome:  "Ana Souza",
			VeiculoMarca:  "Ford",
			VeiculoModelo: "Ka",
			VeiculoAno:    "2018",
		},
	}
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "user"}, cs, readerFromLines())

	app.show(context.Background(), []string{"3"})

	require.Equal(t, int64(3), cs.getID)
	require.Contains(t, out.String(), "Conserto #3")
	require.Contains(t, out.String(), "Ana Souza")
}

func TestShow_InvalidID(t *testing.T) {
	cs := &fakeCS{}
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "user"}, cs, readerFromLines())

	app.show(context.Background(), []string{"abc"})

	require.Zero(t, cs.getID)
	require.Contains(t, out.String(), "Id inválido")
}

func TestSearch_SetsFiltersAndResetsPage(t *testing.T) {
	cs := &fakeCS{pageOut: &models.ConsertoPage{TotalPages: 2}}
	app, _ := newTestApp(&fakeAuth{loggedIn: true, username: "user"}, cs, readerFromLines("Fiat", "Uno"))
	app.page = 3

	app.search(context.Background())

	require.Equal(t, "Fiat", cs.searchMarca)
	require.Equal(t, "Uno", cs.searchModelo)
	require.Equal(t, 0, cs.searchPage)
	require.Equal(t, 0, app.page)
	require.Equal(t, 2, app.totalPages)
}

func TestPagination_Bounds(t *testing.T) {
	cs := &fakeCS{pageOut: &models.ConsertoPage{TotalPages: 2}}
	app, _ := newTestApp(&fakeAuth{loggedIn: true, username: "user"}, cs, readerFromLines())
	app.totalPages = 2

	app.nextPage(context.Background())
	require.Equal(t, 1, app.page)

	app.nextPage(context.Background())
	require.Equal(t, 1, app.page)

	app.prevPage(context.Background())
	require.Equal(t, 0, app.page)

	app.prevPage(context.Background())
	require.Equal(t, 0, app.page)
}

func TestLogin_Success(t *testing.T) {
	oldPw := getPassword
	defer func() { getPassword = oldPw }()
	getPassword = func(w io.Writer) (string, error) { return "admin123", nil }

	auth := &fakeAuth{}
	app, out := newTestApp(auth, &fakeCS{}, readerFromLines("admin"))

	require.NoError(t, app.login(context.Background()))
	require.Equal(t, "admin", auth.loginUser)
	require.Equal(t, "admin123", auth.loginPass)
	require.Contains(t, out.String(), "Login efetuado como admin")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	oldPw := getPassword
	defer func() { getPassword = oldPw }()
	getPassword = func(w io.Writer) (string, error) { return "wrong", nil }

	auth := &fakeAuth{loginErr: services.ErrInvalidCredentials}
	app, out := newTestApp(auth, &fakeCS{}, readerFromLines("admin"))

	require.Error(t, app.login(context.Background()))
	require.Contains(t, out.String(), "Usuário ou senha inválidos")
}

func TestLogout(t *testing.T) {
	auth := &fakeAuth{loggedIn: true, username: "admin"}
	app, out := newTestApp(auth, &fakeCS{}, readerFromLines())
	app.page = 2
	app.marca = "Fiat"

	require.NoError(t, app.logout(context.Background()))
	require.True(t, auth.loggedOut)
	require.Equal(t, 0, app.page)
	require.Equal(t, "", app.marca)
	require.Contains(t, out.String(), "Sessão encerrada.")
}

func TestFail_MapsGatewayErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized", api.ErrUnauthorized, "Sessão expirada. Faça login novamente."},
		{"not found", api.ErrNotFound, "Conserto não encontrado"},
		{"unavailable", api.ErrUnavailable, "Erro de conexão com o servidor"},
		{"backend message", &api.BackendError{Status: 422, Message: "Campo inválido"}, "Campo inválido"},
		{"fallback", errors.New("boom"), "algo deu errado"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, out := newTestApp(&fakeAuth{}, &fakeCS{}, readerFromLines())
			app.fail(context.Background(), tc.err, "algo deu errado")
			require.Contains(t, out.String(), tc.want)
		})
	}
}

func TestFail_UnauthorizedReturnsToLoginPrompt(t *testing.T) {
	oldPw := getPassword
	defer func() { getPassword = oldPw }()
	getPassword = func(w io.Writer) (string, error) { return "admin123", nil }

	auth := &fakeAuth{}
	app, out := newTestApp(auth, &fakeCS{}, readerFromLines("admin"))

	app.fail(context.Background(), api.ErrUnauthorized, "x")

	require.Contains(t, out.String(), "Sessão expirada. Faça login novamente.")
	require.Equal(t, "admin", auth.loginUser)
	require.Contains(t, out.String(), "Login efetuado como admin")
}

func TestRequireAdmin(t *testing.T) {
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "user"}, &fakeCS{}, readerFromLines())
	require.False(t, app.requireAdmin())
	require.Contains(t, out.String(), "Comando disponível apenas para o perfil admin")

	app, _ = newTestApp(&fakeAuth{loggedIn: true, username: "admin"}, &fakeCS{}, readerFromLines())
	require.True(t, app.requireAdmin())
}

func TestRenderPage_Totals(t *testing.T) {
	cs := &fakeCS{pageOut: &models.ConsertoPage{
		Content: []models.Conserto{
			{ID: 1, DataEntrada: "10/01/2024", MecanicoNome: "Ana", VeiculoMarca: "Ford", VeiculoModelo: "Ka", VeiculoAno: "2018"},
		},
		TotalElements: 21,
		TotalPages:    3,
		Number:        1,
	}}
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "user"}, cs, readerFromLines())

	app.list(context.Background())

	require.Contains(t, out.String(), "Total de consertos: 21 | Página 2 de 3")
}

func TestResumo(t *testing.T) {
	cs := &fakeCS{resumoOut: []models.ConsertoResumo{
		{ID: 1, DataEntrada: "10/01/2024", MecanicoNome: "Ana", VeiculoMarca: "Ford", VeiculoModelo: "Ka"},
	}}
	app, out := newTestApp(&fakeAuth{loggedIn: true, username: "user"}, cs, readerFromLines())

	app.resumo(context.Background())

	require.Contains(t, out.String(), "Ana")
	require.Contains(t, out.String(), "Ford")
}
