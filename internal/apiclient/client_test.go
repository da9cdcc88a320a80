package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsJSONAndHeaders(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "k-123", time.Second)
	ctx := WithRequestID(context.Background(), "req-1")

	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, c.Post(ctx, "/api/things", map[string]string{"a": "b"}, &out))

	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "b", gotBody["a"])
	assert.Equal(t, "k-123", gotHeaders.Get("X-API-Key"))
	assert.Equal(t, "req-1", gotHeaders.Get("X-Request-ID"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
}

func TestClientGeneratesRequestID(t *testing.T) {
	var rid string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "", 0)
	require.NoError(t, c.Delete(context.Background(), "/api/things/1"))
	assert.NotEmpty(t, rid)
}

func TestClientEncodesQuery(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var out []int
	c := New(srv.URL, "", time.Second)
	require.NoError(t, c.Get(context.Background(), "/api/list", url.Values{"ano": {"2024"}}, &out))
	assert.Equal(t, "2024", got.Get("ano"))
	assert.Empty(t, out)
}

func TestClientErrorBodies(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"plain", "Usuário não encontrado para o email informado.", "Usuário não encontrado para o email informado."},
		{"json string", `"Senha inválida."`, "Senha inválida."},
		{"json error", `{"error":"invalid token"}`, "invalid token"},
		{"json message", `{"message":"Informe um Mês válido."}`, "Informe um Mês válido."},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := New(srv.URL, "", time.Second).Get(context.Background(), "/x", nil, nil)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "boom", MessageOf(&APIError{Status: 400, Message: "boom"}, "fallback"))
	assert.Equal(t, "fallback", MessageOf(&APIError{Status: 500}, "fallback"))
	assert.Equal(t, "fallback", MessageOf(errors.New("dial tcp"), "fallback"))
}
