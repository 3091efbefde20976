package http

import (
	"context"
	"encoding/json"
	"io"
	netHttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/client-registry/internal/api/http/handlers"
	"github.com/spec-kit/client-registry/internal/config"
	"github.com/spec-kit/client-registry/internal/domain"
	"github.com/spec-kit/client-registry/internal/observability"
	"github.com/spec-kit/client-registry/internal/persistence"
	"github.com/spec-kit/client-registry/internal/ratelimit"
	"github.com/spec-kit/client-registry/internal/service"
	"github.com/spec-kit/client-registry/internal/session"
)

type fakeClientRepo struct {
	clients []*domain.Client
	nextID  int64
}

func (r *fakeClientRepo) Create(_ context.Context, client *domain.Client) error {
	for _, c := range r.clients {
		if c.Email == client.Email || c.NationalID == client.NationalID {
			return domain.ErrDuplicateKey
		}
	}
	r.nextID++
	client.ID = r.nextID
	clone := *client
	r.clients = append(r.clients, &clone)
	return nil
}

func (r *fakeClientRepo) GetByEmail(_ context.Context, email string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeClientRepo) ExistsByEmailOrNationalID(_ context.Context, email, nationalID string) (bool, error) {
	for _, c := range r.clients {
		if c.Email == email || c.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeClientRepo) List(_ context.Context) ([]domain.ClientSummary, error) {
	summaries := make([]domain.ClientSummary, 0, len(r.clients))
	for i := len(r.clients) - 1; i >= 0; i-- {
		c := r.clients[i]
		summaries = append(summaries, domain.ClientSummary{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			Phone:      c.Phone,
			NationalID: c.NationalID,
			Gender:     c.Gender,
		})
	}
	return summaries, nil
}

type fakeSupplierRepo struct {
	suppliers []*domain.Supplier
	nextID    int64
}

func (r *fakeSupplierRepo) Create(_ context.Context, supplier *domain.Supplier) error {
	for _, s := range r.suppliers {
		if s.TaxID == supplier.TaxID {
			return domain.ErrDuplicateKey
		}
	}
	r.nextID++
	supplier.ID = r.nextID
	clone := *supplier
	r.suppliers = append(r.suppliers, &clone)
	return nil
}

func (r *fakeSupplierRepo) ExistsByTaxID(_ context.Context, taxID string) (bool, error) {
	for _, s := range r.suppliers {
		if s.TaxID == taxID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSupplierRepo) List(_ context.Context) ([]domain.SupplierSummary, error) {
	return nil, nil
}

type fakeSessionStore struct {
	markers map[string]domain.SessionMarker
}

func (s *fakeSessionStore) Save(_ context.Context, id string, marker domain.SessionMarker, _ time.Duration) error {
	s.markers[id] = marker
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, id string) (*domain.SessionMarker, error) {
	marker, ok := s.markers[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &marker, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, id string) error {
	delete(s.markers, id)
	return nil
}

func newTestApp(t *testing.T, limits config.RateLimitConfig) *fiber.App {
	t.Helper()
	return newTestAppWithLogger(t, limits, zap.NewNop())
}

func newTestAppWithLogger(t *testing.T, limits config.RateLimitConfig, logger *zap.Logger) *fiber.App {
	t.Helper()

	clientRepo := &fakeClientRepo{}
	supplierRepo := &fakeSupplierRepo{}

	registration := service.NewRegistrationService(clientRepo, supplierRepo, nil, 4)
	auth := service.NewAuthService(clientRepo, nil)

	store := &fakeSessionStore{markers: make(map[string]domain.SessionMarker)}
	sessions := session.NewManager("test-secret", time.Hour, store)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:    handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Clients:   handlers.NewClientsHandler(registration),
		Suppliers: handlers.NewSuppliersHandler(registration),
		Auth:      handlers.NewAuthHandler(auth, sessions),
		Sessions:  session.NewMiddleware(sessions),
		Limiter:   ratelimit.NewLimiter(),
		Limits:    limits,
		StaticDir: t.TempDir(),
	})
	return app
}

func defaultLimits() config.RateLimitConfig {
	return config.RateLimitConfig{
		Register: config.RouteLimit{Max: 100, WindowSeconds: 60},
		Login:    config.RouteLimit{Max: 100, WindowSeconds: 60},
		List:     config.RouteLimit{Max: 100, WindowSeconds: 60},
	}
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *netHttp.Response {
	t.Helper()
	req := httptest.NewRequest(netHttp.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *netHttp.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func clientForm(email, nationalID string) url.Values {
	return url.Values{
		"name":        {"Maria Silva"},
		"age":         {"30"},
		"email":       {email},
		"phone":       {"11912345678"},
		"address":     {"Rua das Flores, 10"},
		"gender":      {"F"},
		"national_id": {nationalID},
		"password":    {"s3cret-pass"},
	}
}

func TestRegisterClientEndpoint(t *testing.T) {
	app := newTestApp(t, defaultLimits())

	resp := postForm(t, app, "/register-client", clientForm("maria@example.com", "52998224725"))
	assert.Equal(t, netHttp.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestRegisterClientEndpointValidation(t *testing.T) {
	app := newTestApp(t, defaultLimits())

	form := clientForm("not-an-email", "52998224725")
	resp := postForm(t, app, "/register-client", form)
	assert.Equal(t, netHttp.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "invalid email", body["message"])
}

func TestRegisterClientEndpointDuplicate(t *testing.T) {
	app := newTestApp(t, defaultLimits())

	resp := postForm(t, app, "/register-client", clientForm("maria@example.com", "52998224725"))
	require.Equal(t, netHttp.StatusOK, resp.StatusCode)

	resp = postForm(t, app, "/register-client", clientForm("maria@example.com", "11144477735"))
	assert.Equal(t, netHttp.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestRegisterClientRateLimited(t *testing.T) {
	limits := defaultLimits()
	limits.Register = config.RouteLimit{Max: 3, WindowSeconds: 60}
	app := newTestApp(t, limits)

	for i := 0; i < 3; i++ {
		resp := postForm(t, app, "/register-client", clientForm("bad", "bad"))
		assert.Equal(t, netHttp.StatusBadRequest, resp.StatusCode)
	}
	resp := postForm(t, app, "/register-client", clientForm("bad", "bad"))
	assert.Equal(t, netHttp.StatusTooManyRequests, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "RATE_LIMITED", body["code"])
}

func TestRequestLogCarriesErrorStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := newTestAppWithLogger(t, defaultLimits(), zap.New(core))

	resp := postForm(t, app, "/register-client", clientForm("not-an-email", "52998224725"))
	require.Equal(t, netHttp.StatusBadRequest, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, netHttp.StatusBadRequest, entries[0].ContextMap()["status"],
		"logged status must match the status written to the client")
}

func TestListClientsEndpoint(t *testing.T) {
	app := newTestApp(t, defaultLimits())

	first := clientForm("maria@example.com", "52998224725")
	require.Equal(t, netHttp.StatusOK, postForm(t, app, "/register-client", first).StatusCode)

	second := clientForm("joao@example.com", "11144477735")
	second.Set("name", "Joao Souza")
	require.Equal(t, netHttp.StatusOK, postForm(t, app, "/register-client", second).StatusCode)

	req := httptest.NewRequest(netHttp.MethodGet, "/clients", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, netHttp.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var listing []map[string]any
	require.NoError(t, json.Unmarshal(raw, &listing))
	require.Len(t, listing, 2)
	assert.Equal(t, "Joao Souza", listing[0]["name"], "newest first")
	assert.Equal(t, "Maria Silva", listing[1]["name"])
	for _, entry := range listing {
		assert.NotContains(t, entry, "password_hash")
		assert.NotContains(t, entry, "password")
	}
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t, defaultLimits())

	require.Equal(t, netHttp.StatusOK,
		postForm(t, app, "/register-client", clientForm("maria@example.com", "52998224725")).StatusCode)

	resp := postForm(t, app, "/login-client", url.Values{
		"email":    {"maria@example.com"},
		"password": {"s3cret-pass"},
	})
	require.Equal(t, netHttp.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])

	var sessionCookie string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			sessionCookie = cookie.Value
		}
	}
	require.NotEmpty(t, sessionCookie, "login must set the session cookie")

	req := httptest.NewRequest(netHttp.MethodGet, "/client-session", nil)
	req.AddCookie(&netHttp.Cookie{Name: session.CookieName, Value: sessionCookie})
	sessResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, netHttp.StatusOK, sessResp.StatusCode)
}

func TestLoginEndpointGenericError(t *testing.T) {
	app := newTestApp(t, defaultLimits())

	require.Equal(t, netHttp.StatusOK,
		postForm(t, app, "/register-client", clientForm("maria@example.com", "52998224725")).StatusCode)

	unknown := postForm(t, app, "/login-client", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"whatever"},
	})
	wrong := postForm(t, app, "/login-client", url.Values{
		"email":    {"maria@example.com"},
		"password": {"wrong-pass"},
	})

	assert.Equal(t, netHttp.StatusUnauthorized, unknown.StatusCode)
	assert.Equal(t, netHttp.StatusUnauthorized, wrong.StatusCode)
	assert.Equal(t, decodeBody(t, unknown), decodeBody(t, wrong),
		"failure responses must be indistinguishable")
}

func TestSessionEndpointRequiresAuth(t *testing.T) {
	app := newTestApp(t, defaultLimits())

	req := httptest.NewRequest(netHttp.MethodGet, "/client-session", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, netHttp.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterSupplierEndpoint(t *testing.T) {
	app := newTestApp(t, defaultLimits())

	resp := postForm(t, app, "/register-supplier", url.Values{
		"name":       {"Acme Servicos"},
		"legal_name": {"Acme Servicos LTDA"},
		"tax_id":     {"11222333000181"},
		"email":      {"contato@acme.com"},
		"phone":      {"1133334444"},
		"service":    {"manutencao"},
	})
	assert.Equal(t, netHttp.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
}
