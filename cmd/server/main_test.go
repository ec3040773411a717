package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"vitrine-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort: "8080",
		AppEnv:  "test",
	}
}

func TestNewServer(t *testing.T) {
	handler, err := newServer(testConfig())
	require.NoError(t, err)
	require.NotNil(t, handler)

	t.Run("Health Check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
	})

	t.Run("Products endpoint wired", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Camiseta")
		assert.NotEmpty(t, rr.Header().Get("X-Session-ID"))
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
}

func TestNewServer_CatalogFile(t *testing.T) {
	t.Run("Valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
products:
  - id: 7
    name: Meia Esportiva
    original_price: "29.90"
    promo_price: "19.90"
    promo_type: Desconto Direto
    stock: 30
coupons:
  - code: TESTE5
    discount_percent: 5
    valid_until: "2030-01-01"
`), 0o600))

		cfg := testConfig()
		cfg.CatalogPath = path

		handler, err := newServer(cfg)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Meia Esportiva")
	})

	t.Run("Missing file fails startup", func(t *testing.T) {
		cfg := testConfig()
		cfg.CatalogPath = filepath.Join(t.TempDir(), "nope.yaml")

		_, err := newServer(cfg)
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()

	var gotAddr string
	startServerFunc = func(addr string, handler http.Handler) error {
		gotAddr = addr
		return nil
	}

	t.Setenv("APP_PORT", "8081")
	t.Setenv("APP_ENV", "test")
	t.Setenv("CATALOG_PATH", "")

	require.NoError(t, run())
	assert.Equal(t, ":8081", gotAddr)
}
