package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"goarmazem/internal/api/auth"
	"goarmazem/internal/api/router"
	apiwarehouse "goarmazem/internal/api/warehouse"
	"goarmazem/internal/domain"
	"goarmazem/internal/pkg/logger"
	"goarmazem/internal/pkg/metrics"
	"goarmazem/internal/pkg/token"
	"goarmazem/internal/repository/journalrepo"
	"goarmazem/internal/service/authservice"
	"goarmazem/internal/service/warehouseservice"
	"goarmazem/internal/warehouse"
)

var today = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

type testAPI struct {
	server *httptest.Server
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := logger.NewNop()
	clock := func() time.Time { return today }

	store, err := warehouse.NewStore(domain.Dimensions{Rows: 2, Shelves: 2, Levels: 2, Zones: 2}, warehouse.WithClock(clock))
	require.NoError(t, err)
	m := metrics.New()
	svc := warehouseservice.NewService(store, journalrepo.NewMemoryJournal(0), log,
		warehouseservice.WithMetrics(m), warehouseservice.WithClock(clock))

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	require.NoError(t, err)
	tokens := token.NewService("chave-de-teste", time.Hour)
	authSvc := authservice.NewService(domain.Operator{Email: "ana@armazem.local", PasswordHash: string(hash)}, tokens, log)

	srv := httptest.NewServer(router.NewRouter(router.Deps{
		Warehouse: apiwarehouse.NewHandler(svc, log),
		Auth:      auth.NewHandler(authSvc, log),
		Tokens:    tokens,
		Metrics:   m.Handler(),
		Logger:    log,
	}))
	t.Cleanup(srv.Close)

	api := &testAPI{server: srv}
	resp := api.do(t, http.MethodPost, "/v1/auth/login", domain.LoginRequest{Email: "ana@armazem.local", Password: "segredo"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login domain.LoginResponse
	decode(t, resp, &login)
	api.token = login.Token
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, into interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestRouter_PlaceQueryRemoveFlow(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/v1/items", warehouseservice.PlaceRequest{
		Name: "A", Quantity: 5, Quality: domain.Normal(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var a warehouseservice.PlaceResult
	decode(t, resp, &a)
	assert.Equal(t, []domain.Location{domain.NewLocation(0, 0, 0, 0)}, a.Locations)

	resp = api.do(t, http.MethodPost, "/v1/items", warehouseservice.PlaceRequest{
		Name: "B", Quantity: 1, Quality: domain.Oversized(2),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var b warehouseservice.PlaceResult
	decode(t, resp, &b)
	require.Len(t, b.Locations, 2)
	assert.Equal(t, 2, b.Item.ID)

	resp = api.do(t, http.MethodPost, "/v1/items", warehouseservice.PlaceRequest{
		Name: "C", Quantity: 1, Quality: domain.Oversized(3),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var errBody domain.ErrorResponse
	decode(t, resp, &errBody)
	assert.Equal(t, "INVALID_CONSTRAINT", errBody.Category)

	resp = api.do(t, http.MethodGet, "/v1/items/search?name=A", nil)
	var found domain.SearchResult
	decode(t, resp, &found)
	assert.Equal(t, domain.SearchResult{Found: true, TotalQuantity: 5}, found)

	resp = api.do(t, http.MethodGet, "/v1/items/2/locations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recs []domain.Record
	decode(t, resp, &recs)
	require.Len(t, recs, 1)
	assert.Equal(t, b.Locations, recs[0].Locations)

	l := b.Locations[1]
	resp = api.do(t, http.MethodDelete, locationPath(l), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var removed warehouseservice.RemoveResult
	decode(t, resp, &removed)
	assert.Equal(t, b.Locations, removed.Locations)

	resp = api.do(t, http.MethodDelete, locationPath(l), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(t, http.MethodDelete, "/v1/locations/0/0/9/0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/v1/items", nil)
	var items []domain.Record
	decode(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Item.Name)

	resp = api.do(t, http.MethodGet, "/v1/movements?limit=10", nil)
	var movements []domain.Movement
	decode(t, resp, &movements)
	require.Len(t, movements, 3)
	assert.Equal(t, domain.MovementRemove, movements[0].Kind)

	resp = api.do(t, http.MethodGet, "/v1/grid", nil)
	var snap domain.GridSnapshot
	decode(t, resp, &snap)
	assert.Len(t, snap.Occupied, 1)
	assert.Equal(t, 15, snap.FreeCells())
}

func TestRouter_WritesRequireToken(t *testing.T) {
	api := newTestAPI(t)
	api.token = ""

	resp := api.do(t, http.MethodPost, "/v1/items", warehouseservice.PlaceRequest{Name: "A", Quantity: 1, Quality: domain.Normal()})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.do(t, http.MethodDelete, "/v1/locations/0/0/0/0", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/v1/auth/login", domain.LoginRequest{Email: "ana@armazem.local", Password: "errada"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Leituras são públicas.
	resp = api.do(t, http.MethodGet, "/v1/items", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_ExpiringAndValidation(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/v1/items", warehouseservice.PlaceRequest{
		Name: "Leite", Quantity: 6, Quality: domain.Fragile(domain.IntPtr(0)), ExpiryDate: "12-03-2024",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/v1/expiring?date=11-03-2024", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var expiring []domain.ExpiringRecord
	decode(t, resp, &expiring)
	require.Len(t, expiring, 1)
	assert.Equal(t, domain.ExpiresInDays(1), expiring[0].Status)

	resp = api.do(t, http.MethodGet, "/v1/expiring?date=13-03-2024", nil)
	decode(t, resp, &expiring)
	require.Len(t, expiring, 1)
	assert.Equal(t, domain.Expired(), expiring[0].Status)

	resp = api.do(t, http.MethodGet, "/v1/expiring?date=2024-03-11", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/v1/items/search?id=1&name=Leite", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/v1/items/x/locations", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/v1/items/names", nil)
	var names []warehouseservice.NamedID
	decode(t, resp, &names)
	assert.Equal(t, []warehouseservice.NamedID{{ID: 1, Name: "Leite"}}, names)
}

func TestRouter_PingAndMetrics(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/ping", nil)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	resp = api.do(t, http.MethodGet, "/metrics", nil)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "goarmazem_grid_capacity_cells 16")
}

func locationPath(l domain.Location) string {
	return fmt.Sprintf("/v1/locations/%d/%d/%d/%d", l.Row, l.Shelf, l.Level, l.Zone)
}
