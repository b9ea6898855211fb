package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printfarmlabs/stockpile/app/controllers"
	"github.com/printfarmlabs/stockpile/app/models"
	"github.com/printfarmlabs/stockpile/app/repositories"
	"github.com/printfarmlabs/stockpile/app/routes"
	"github.com/printfarmlabs/stockpile/app/services"
	"github.com/printfarmlabs/stockpile/pkg/database"
	"github.com/printfarmlabs/stockpile/pkg/router"
)

var apiDBSeq int64

// newTestServer wires the real router, middleware and services over an
// in-memory sqlite store, exactly as the server boot does minus the optional
// backends.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("AUTH_PASSWORD", "spool-room")
	t.Setenv("AUTH_PASSWORD_HASH", "")

	dsn := fmt.Sprintf("file:api%d?mode=memory&cache=shared", atomic.AddInt64(&apiDBSeq, 1))
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SKU{}, &models.StockLevel{}))

	skuRepo := repositories.NewSKURepository(db)
	stockRepo := repositories.NewStockRepository(db)
	catalogSvc := services.NewCatalogService(skuRepo)
	ledgerSvc := services.NewLedgerService(db, stockRepo, skuRepo, false, nil)

	r := router.New()
	routes.RegisterAPI(r,
		controllers.NewAuthController(services.NewSharedSecretAuthenticator()),
		controllers.NewCatalogController(catalogSvc),
		controllers.NewLedgerController(ledgerSvc, nil),
	)

	ts := httptest.NewServer(r.Handler())
	t.Cleanup(ts.Close)
	return ts
}

type apiEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func doJSON(t *testing.T, method, url, token string, body interface{}) (*http.Response, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var env apiEnvelope
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func login(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/login", "", map[string]string{"password": "spool-room"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session services.Session
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/login", "", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/skus", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/inventory", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSKULifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/skus", token, map[string]string{
		"sku":         "PLA-BLK",
		"description": "Black PLA 1kg",
		"category":    "filament",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.SKU
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	resp, env = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/skus/%d", ts.URL, created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/skus/%d", ts.URL, created.ID), token, map[string]string{
		"sku":         "PLA-BLK",
		"description": "Black PLA 1kg, matte",
		"category":    "filament",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/skus/%d", ts.URL, created.ID), token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/skus/%d", ts.URL, created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateSKURejectsBadCategory(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/skus", token, map[string]string{
		"sku":         "X-1",
		"description": "mystery part",
		"category":    "misc",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Errors, "category")
}

func TestTransactionFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/skus", token, map[string]string{
		"sku": "PLA-BLK", "description": "Black PLA 1kg", "category": "filament",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	type result struct {
		SKU       string `json:"sku"`
		Direction string `json:"direction"`
		Quantity  int    `json:"quantity"`
	}

	transact := func(direction string, qty int) (int, result) {
		resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/transactions", token, map[string]interface{}{
			"sku": "PLA-BLK", "direction": direction, "quantity": qty,
		})
		var res result
		if resp.StatusCode == http.StatusOK {
			require.NoError(t, json.Unmarshal(env.Data, &res))
		}
		return resp.StatusCode, res
	}

	status, res := transact("receive", 10)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 10, res.Quantity)

	status, res = transact("remove", 3)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 7, res.Quantity)

	// Over-removal clamps to zero, still 200.
	status, res = transact("remove", 50)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, res.Quantity)

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/api/stock/PLA-BLK", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stock map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &stock))
	assert.EqualValues(t, 0, stock["quantity"])

	resp, env = doJSON(t, http.MethodGet, ts.URL+"/api/inventory", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []models.InventoryRow
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Quantity, "clamped stock stays visible in the view")
}

func TestTransactionValidation(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/transactions", token, map[string]interface{}{
		"sku": "PLA-BLK", "direction": "receive", "quantity": 0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Errors, "quantity")

	resp, env = doJSON(t, http.MethodPost, ts.URL+"/api/transactions", token, map[string]interface{}{
		"sku": "PLA-BLK", "direction": "adjust", "quantity": 1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Errors, "direction")
}

func TestUnknownStockCodeReadsZero(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/api/stock/NEVER-SEEN", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stock map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &stock))
	assert.EqualValues(t, 0, stock["quantity"])
}
