package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MINHASFINANCAS_SESSION_SECRET", "test-secret")
	var buf bytes.Buffer
	c := New()
	c.out = &buf
	c.rootCmd.SetArgs(args)
	c.rootCmd.SetOut(&buf)
	err := c.rootCmd.Execute()
	return buf.String(), err
}

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/usuarios/autenticar", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["senha"] != "123" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Senha inválida."))
			return
		}
		_, _ = w.Write([]byte(`{"id":3,"nome":"Ana","email":"ana@email.com"}`))
	})
	mux.HandleFunc("/api/usuarios/3/saldo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`250.5`))
	})
	mux.HandleFunc("/api/lancamentos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("usuario"))
		assert.Equal(t, "2024", r.URL.Query().Get("ano"))
		_, _ = w.Write([]byte(`[{"id":9,"descricao":"Aluguel","mes":3,"ano":2024,"valor":1200,"tipo":"DESPESA","status":"PENDENTE","usuario":3}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "minhasfinancas "+Version)
}

func TestSaldo(t *testing.T) {
	srv := fakeBackend(t)
	out, err := run(t, "saldo", "--api", srv.URL, "--email", "ana@email.com", "--senha", "123")
	require.NoError(t, err)
	assert.Equal(t, "Ana: R$ 250,50\n", out)
}

func TestSaldoWrongPassword(t *testing.T) {
	srv := fakeBackend(t)
	_, err := run(t, "saldo", "--api", srv.URL, "--email", "ana@email.com", "--senha", "x")
	require.Error(t, err)
	assert.Equal(t, "Senha inválida.", err.Error())
}

func TestBuscar(t *testing.T) {
	srv := fakeBackend(t)
	out, err := run(t, "lancamentos", "buscar", "--api", srv.URL, "--email", "ana@email.com", "--senha", "123", "--ano", "2024")
	require.NoError(t, err)
	assert.Contains(t, out, "Aluguel")
	assert.Contains(t, out, "R$ 1.200,00")
	assert.Contains(t, out, "Março")
}

func TestBuscarRequiresAno(t *testing.T) {
	srv := fakeBackend(t)
	_, err := run(t, "lancamentos", "buscar", "--api", srv.URL, "--email", "ana@email.com", "--senha", "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "O campo Ano é obrigatório.")
}
