package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/liviaspereira/HomeCleanup-API/internal/addresses"
	"github.com/liviaspereira/HomeCleanup-API/internal/auth"
	"github.com/liviaspereira/HomeCleanup-API/internal/observability"
	"github.com/liviaspereira/HomeCleanup-API/internal/platform/db"
	"github.com/liviaspereira/HomeCleanup-API/internal/shared"
	"github.com/liviaspereira/HomeCleanup-API/internal/testing/dbtest"
	"github.com/liviaspereira/HomeCleanup-API/internal/users"
)

type testServer struct {
	handler   http.Handler
	users     *users.Repository
	addresses *addresses.Repository
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	store := dbtest.NewStore(t)
	return newTestServerWithStore(t, store, store)
}

func newTestServerWithStore(t *testing.T, store *db.Store, pinger Pinger) testServer {
	t.Helper()
	cfg := &Config{AppEnv: "test", AppRateLimit: 1000, DBDriver: "sqlite", SQLitePath: db.MemoryPath}
	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	validator := shared.NewValidator()

	userRepo := users.NewRepository(store)
	addressRepo := addresses.NewRepository(store)

	handler := NewRouter(RouterParams{
		Config:         cfg,
		UsersHandler:   users.NewHandler(nil, users.NewService(userRepo, hasher), validator),
		AddressHandler: addresses.NewHandler(nil, addresses.NewService(addressRepo), validator),
		Store:          pinger,
		Metrics:        observability.NewMetrics(),
		SkipRequestLog: true,
	})
	return testServer{handler: handler, users: userRepo, addresses: addressRepo}
}

func (s testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestUserAndAddressLifecycle(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	rec := srv.do(http.MethodPost, "/users/", `{
		"name": "Lucas",
		"email": "lucas@example.com",
		"phone": "11999999999",
		"password": "askjhahjsa055",
		"is_home_owner": false
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	user, err := srv.users.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lucas", user.Name)
	assert.NotEqual(t, "askjhahjsa055", user.HashedPassword)

	rec = srv.do(http.MethodPost, "/address/", `{
		"street_name": "Rua Conde de Bonfim",
		"street_number": 120,
		"city": "Rio de Janeiro",
		"postal_code": "20520-053",
		"country": "Brasil",
		"user_id": 1,
		"size": 80,
		"number_of_rooms": 3
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	address, err := srv.addresses.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Rua Conde de Bonfim", address.StreetName)
	assert.Equal(t, int64(1), address.UserID)

	rec = srv.do(http.MethodDelete, "/address/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err = srv.addresses.Get(ctx, 1)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodDelete, "/address/1", "").Code)
	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, "/address/1", "").Code)

	_, err = srv.users.Get(ctx, 1)
	assert.NoError(t, err, "deleting an address leaves its user in place")
}

func TestCreateEndpointsRequireBody(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/users/", "/address/"} {
		t.Run(path, func(t *testing.T) {
			rec := srv.do(http.MethodPost, path, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			rec = srv.do(http.MethodPost, path, `{"Erro":"erro"}`)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

type downPinger struct{}

func (downPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealthzReportsUnavailableStore(t *testing.T) {
	srv := newTestServerWithStore(t, dbtest.NewStore(t), downPinger{})

	rec := srv.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsExposeRequestCounts(t *testing.T) {
	srv := newTestServer(t)
	srv.do(http.MethodDelete, "/address/42", "")

	rec := srv.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `homecleanup_http_requests_total{code="404",method="DELETE",route="/address/{id}"} 1`)
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(http.MethodGet, "/healthz", "")

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestUnknownRouteAndMethod(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, "/nowhere", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, srv.do(http.MethodPut, "/address/1", "{}").Code)
}

func TestHomeOwnerRegistersAndRemovesAddress(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	rec := srv.do(http.MethodPost, "/users/", `{"name":"Lucas","email":"lucaschato@chato.com","phone":"658555226","password":"askjhahjsa055","is_home_owner":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	user, err := srv.users.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "lucaschato@chato.com", user.Email)
	assert.Equal(t, "658555226", user.Phone)
	assert.True(t, user.IsHomeOwner)
	assert.True(t, user.IsActive)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NotEqual(t, "askjhahjsa055", user.HashedPassword)

	rec = srv.do(http.MethodPost, "/address/", `{"street_name":"Conde","street_number":123456,"city":"Extrema","postal_code":"18958-875","country":"Brasil","user_id":1,"size":69,"number_of_rooms":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	address, err := srv.addresses.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), address.ID)
	assert.Equal(t, "Conde", address.StreetName)
	assert.Equal(t, int64(123456), address.StreetNumber)
	assert.Equal(t, "Extrema", address.City)
	assert.Equal(t, "18958-875", address.PostalCode)
	assert.Equal(t, "Brasil", address.Country)
	assert.Equal(t, int64(1), address.UserID)
	assert.Equal(t, int64(69), address.Size)
	assert.Equal(t, int64(3), address.NumberOfRooms)
	assert.True(t, address.IsActive)
	assert.False(t, address.CreatedAt.IsZero())

	require.Equal(t, http.StatusNoContent, srv.do(http.MethodDelete, "/address/1", "").Code)

	_, err = srv.addresses.Get(ctx, 1)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
