package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/service"
	"github.com/MKhiriev/artisan-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeContractService struct {
	isAvailableFn func(ctx context.Context) bool
	getDataFn     func(ctx context.Context, key string) ([]byte, error)
	setDataFn     func(ctx context.Context, from, key string, value []byte) (models.Transaction, error)
}

func (f *fakeContractService) IsAvailable(ctx context.Context) bool {
	return f.isAvailableFn(ctx)
}

func (f *fakeContractService) GetData(ctx context.Context, key string) ([]byte, error) {
	return f.getDataFn(ctx, key)
}

func (f *fakeContractService) SetData(ctx context.Context, from, key string, value []byte) (models.Transaction, error) {
	return f.setDataFn(ctx, from, key, value)
}

type fakeWalletAuthService struct {
	issueChallengeFn func(ctx context.Context, address string) (models.Challenge, error)
	connectFn        func(ctx context.Context, req models.ConnectRequest) (models.Token, error)
	parseTokenFn     func(ctx context.Context, token string) (models.Token, error)
}

func (f *fakeWalletAuthService) IssueChallenge(ctx context.Context, address string) (models.Challenge, error) {
	return f.issueChallengeFn(ctx, address)
}

func (f *fakeWalletAuthService) Connect(ctx context.Context, req models.ConnectRequest) (models.Token, error) {
	return f.connectFn(ctx, req)
}

func (f *fakeWalletAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	return f.parseTokenFn(ctx, token)
}

type fakeAppInfoService struct{ version string }

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testAddress = "0x00112233445566778899aabbccddeeff00112233"

// validTokenAuth accepts "good-token" for testAddress and nothing else.
func validTokenAuth() *fakeWalletAuthService {
	return &fakeWalletAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
			if token != "good-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Address: testAddress}, nil
		},
	}
}

func newTestRouter(t *testing.T, contract service.ContractService, auth service.WalletAuthService) http.Handler {
	t.Helper()
	if contract == nil {
		contract = &fakeContractService{}
	}
	if auth == nil {
		auth = validTokenAuth()
	}

	return NewHandler(&service.Services{
		ContractService:   contract,
		WalletAuthService: auth,
		AppInfoService:    &fakeAppInfoService{version: "v-test"},
	}, logger.Nop()).Init()
}

func serve(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func bodyText(rec *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rec.Body.String())
}

// ─────────────────────────────────────────────
// Routing
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
}

func TestInit_Version(t *testing.T) {
	rec := serve(t, newTestRouter(t, nil, nil), http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v-test", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestInit_UnknownRoute(t *testing.T) {
	rec := serve(t, newTestRouter(t, nil, nil), http.MethodGet, "/api/nonexistent", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/contract/data/artisan_keys"},
		{http.MethodPost, "/api/contract/available"},
		{http.MethodGet, "/api/wallet/connect"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.path, "", nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_TraceIDEchoed(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := serve(t, router, http.MethodGet, "/api/version", "", map[string]string{traceIDHeader: "trace-42"})
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))

	rec = serve(t, router, http.MethodGet, "/api/version", "", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	contract := &fakeContractService{
		isAvailableFn: func(context.Context) bool { panic("storage exploded") },
	}

	rec := serve(t, newTestRouter(t, contract, nil), http.MethodGet, "/api/contract/available", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
