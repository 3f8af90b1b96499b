package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/gearbay/app/controllers"
	"github.com/shashiranjanraj/gearbay/app/graph"
	"github.com/shashiranjanraj/gearbay/app/services"
	"github.com/shashiranjanraj/gearbay/pkg/router"
	"github.com/shashiranjanraj/gearbay/pkg/ws"
)

// newTestRouter registers the full surface with dry services. Handlers
// that would hit the store are not invoked by these tests.
func newTestRouter(t *testing.T) *router.Router {
	t.Helper()

	authSvc := services.NewAuthService(nil)
	catalogSvc := services.NewCatalogService(nil)
	orderSvc := services.NewOrderService(nil)
	paymentSvc := services.NewPaymentService(nil, orderSvc, nil, nil)

	schema, err := graph.NewSchema(catalogSvc)
	require.NoError(t, err)

	r := router.New()
	RegisterAPI(r, Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		Catalog:  controllers.NewCatalogController(catalogSvc),
		Orders:   controllers.NewOrderController(orderSvc, authSvc),
		Payments: controllers.NewPaymentController(paymentSvc),
		Content:  controllers.NewContentController(nil),
		Uploads:  controllers.NewUploadController(nil),
	}, authSvc, ws.NewFeed(), graph.Handler(schema))
	return r
}

func TestRegisteredRouteTable(t *testing.T) {
	r := newTestRouter(t)

	want := map[string]string{
		"catalog.list":          "/services",
		"catalog.get":           "/services/{id}",
		"parts.create":          "/parts",
		"parts.stock":           "/parts/stock/{id}",
		"orders.submit":         "/orders",
		"orders.all":            "/orders/all",
		"orders.markPaid":       "/orders/paid/{id}",
		"orders.markShipped":    "/orders/shipped/{id}",
		"orders.confirmPayment": "/orders/{id}",
		"orders.patchDetails":   "/orders/details/{id}",
		"payment.intent":        "/payment/create-payment-intent",
		"user.upsert":           "/user/{email}",
		"user.grantAdmin":       "/user/admin/{email}",
		"user.checkAdmin":       "/admin/{email}",
	}

	for name, wantPath := range want {
		path, ok := r.Path(name)
		require.True(t, ok, "route %s not registered", name)
		assert.Equal(t, wantPath, path)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	handler := newTestRouter(t).Handler()

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/services"},
		{http.MethodGet, "/services/abc123"},
		{http.MethodGet, "/orders"},
		{http.MethodPost, "/orders"},
		{http.MethodGet, "/orders/all"},
		{http.MethodPatch, "/orders/details/abc123"},
		{http.MethodPost, "/parts"},
		{http.MethodPost, "/payment/create-payment-intent"},
		{http.MethodPut, "/user/admin/pat@example.com"},
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"message":"Unauthorized access"}`, rec.Body.String())
	}
}

func TestRootIsPublic(t *testing.T) {
	handler := newTestRouter(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gearbay")
}
