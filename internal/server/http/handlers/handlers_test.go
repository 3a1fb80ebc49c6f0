package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/invoicehub/invoicehub/internal/domain/errors"
	"github.com/invoicehub/invoicehub/internal/domain/model"
	"github.com/invoicehub/invoicehub/internal/server/http/middleware"
	facadestubs "github.com/invoicehub/invoicehub/internal/test/facades"
	"github.com/invoicehub/invoicehub/internal/usecase"
	"github.com/invoicehub/invoicehub/internal/viewcache"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performForm(router *gin.Engine, method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func credentialsForm(email, password string) url.Values {
	return url.Values{"email": {email}, "password": {password}}
}

func TestLoginSuccess(t *testing.T) {
	router := gin.New()
	handler := NewAuthHandler(facadestubs.AuthFacadeStub{
		LoginFn: func(_ context.Context, email, _ string) (string, error) {
			if email != "alice@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			return "session-token", nil
		},
	})
	router.POST("/login", handler.Login)

	resp := performForm(router, http.MethodPost, "/login", credentialsForm("alice@example.com", "123456"))
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != middleware.DashboardPath {
		t.Fatalf("expected redirect to dashboard, got %q", loc)
	}
	cookies := resp.Result().Cookies()
	if len(cookies) == 0 || cookies[0].Value != "session-token" {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
}

func TestLoginRejections(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"invalid credentials", domainErrors.ErrInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials},
		{"infrastructure failure", errors.New("connection refused"), http.StatusInternalServerError, MsgSomethingWentWrong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			handler := NewAuthHandler(facadestubs.AuthFacadeStub{
				LoginFn: func(context.Context, string, string) (string, error) { return "", tc.err },
			})
			router.POST("/login", handler.Login)

			resp := performForm(router, http.MethodPost, "/login", credentialsForm("alice@example.com", "123456"))
			if resp.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, resp.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body["message"] != tc.wantMessage {
				t.Fatalf("expected message %q, got %q", tc.wantMessage, body["message"])
			}
		})
	}
}

func TestRegisterOutcomes(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"success", nil, http.StatusSeeOther},
		{"invalid input", domainErrors.ErrInvalidCredentials, http.StatusBadRequest},
		{"duplicate", domainErrors.ErrAlreadyExists, http.StatusConflict},
		{"failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			handler := NewAuthHandler(facadestubs.AuthFacadeStub{
				RegisterFn: func(context.Context, string, string) (string, error) {
					if tc.err != nil {
						return "", tc.err
					}
					return "session-token", nil
				},
			})
			router.POST("/register", handler.Register)

			resp := performForm(router, http.MethodPost, "/register", credentialsForm("bob@example.com", "123456"))
			if resp.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, resp.Code)
			}
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	router := gin.New()
	handler := NewAuthHandler(facadestubs.AuthFacadeStub{})
	router.POST("/logout", handler.Logout)

	resp := performForm(router, http.MethodPost, "/logout", url.Values{})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != middleware.LoginPath {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
	cookies := resp.Result().Cookies()
	if len(cookies) == 0 || cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired session cookie, got %+v", cookies)
	}
}

func newViewCache(t *testing.T) *viewcache.Cache {
	t.Helper()
	views, err := viewcache.New(8)
	if err != nil {
		t.Fatalf("view cache: %v", err)
	}
	return views
}

func TestInvoiceListReadsThroughCache(t *testing.T) {
	calls := 0
	facade := facadestubs.InvoiceFacadeStub{
		InvoicesFn: func(context.Context) ([]model.Invoice, error) {
			calls++
			return []model.Invoice{{ID: "inv-1", CustomerID: "cust-1", AmountCents: 1550, Status: model.InvoiceStatusPending}}, nil
		},
	}
	views := newViewCache(t)
	router := gin.New()
	handler := NewInvoiceHandler(facade, views)
	router.GET("/dashboard/invoices", handler.List)

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.Code)
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single facade read, got %d", calls)
	}

	views.Invalidate(viewcache.InvoicesListPath)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 after invalidation, got %d", resp.Code)
	}
	if calls != 2 {
		t.Fatalf("expected a fresh read after invalidation, got %d calls", calls)
	}
}

func TestInvoiceCreateOutcomes(t *testing.T) {
	cases := []struct {
		name     string
		outcome  *usecase.MutationOutcome
		wantCode int
	}{
		{
			"validation failure",
			&usecase.MutationOutcome{
				Errors:  usecase.FieldErrors{"customerId": {usecase.MsgSelectCustomer}},
				Message: usecase.MsgMissingFieldsCreate,
			},
			http.StatusUnprocessableEntity,
		},
		{
			"database failure",
			&usecase.MutationOutcome{Message: usecase.MsgDatabaseCreate},
			http.StatusInternalServerError,
		},
		{
			"success",
			&usecase.MutationOutcome{Redirect: viewcache.InvoicesListPath},
			http.StatusSeeOther,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facade := facadestubs.InvoiceFacadeStub{
				CreateFn: func(context.Context, map[string]string) *usecase.MutationOutcome { return tc.outcome },
			}
			router := gin.New()
			handler := NewInvoiceHandler(facade, newViewCache(t))
			router.POST("/dashboard/invoices", handler.Create)

			resp := performForm(router, http.MethodPost, "/dashboard/invoices", url.Values{
				"customerId": {"cust-1"}, "amount": {"15.50"}, "status": {"pending"},
			})
			if resp.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, resp.Code)
			}
			if tc.wantCode == http.StatusUnprocessableEntity {
				var body struct {
					Errors  map[string][]string `json:"errors"`
					Message string              `json:"message"`
				}
				if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid response body: %v", err)
				}
				if body.Message != usecase.MsgMissingFieldsCreate {
					t.Fatalf("unexpected message %q", body.Message)
				}
				if len(body.Errors["customerId"]) != 1 {
					t.Fatalf("expected customerId errors, got %+v", body.Errors)
				}
			}
			if tc.wantCode == http.StatusSeeOther {
				if loc := resp.Header().Get("Location"); loc != viewcache.InvoicesListPath {
					t.Fatalf("expected redirect to invoices list, got %q", loc)
				}
			}
		})
	}
}

func TestInvoiceUpdatePassesID(t *testing.T) {
	var gotID string
	facade := facadestubs.InvoiceFacadeStub{
		UpdateFn: func(_ context.Context, id string, _ map[string]string) *usecase.MutationOutcome {
			gotID = id
			return &usecase.MutationOutcome{Redirect: viewcache.InvoicesListPath}
		},
	}
	router := gin.New()
	handler := NewInvoiceHandler(facade, newViewCache(t))
	router.POST("/dashboard/invoices/:id", handler.Update)

	resp := performForm(router, http.MethodPost, "/dashboard/invoices/inv-7", url.Values{
		"customerId": {"cust-1"}, "amount": {"20"}, "status": {"paid"},
	})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}
	if gotID != "inv-7" {
		t.Fatalf("expected id inv-7, got %q", gotID)
	}
}

func TestInvoiceDelete(t *testing.T) {
	facade := facadestubs.InvoiceFacadeStub{}
	router := gin.New()
	handler := NewInvoiceHandler(facade, newViewCache(t))
	router.DELETE("/dashboard/invoices/:id", handler.Delete)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, "/dashboard/invoices/inv-1", nil))
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	facade = facadestubs.InvoiceFacadeStub{
		DeleteFn: func(context.Context, string) *usecase.MutationOutcome {
			return &usecase.MutationOutcome{Message: usecase.MsgDatabaseDelete}
		},
	}
	router = gin.New()
	handler = NewInvoiceHandler(facade, newViewCache(t))
	router.DELETE("/dashboard/invoices/:id", handler.Delete)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, "/dashboard/invoices/inv-1", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestInvoiceGet(t *testing.T) {
	facade := facadestubs.InvoiceFacadeStub{
		InvoiceFn: func(_ context.Context, id string) (*model.Invoice, error) {
			if id == "missing" {
				return nil, domainErrors.ErrNotFound
			}
			return &model.Invoice{ID: id, AmountCents: 500, Status: model.InvoiceStatusPaid}, nil
		},
	}
	router := gin.New()
	handler := NewInvoiceHandler(facade, newViewCache(t))
	router.GET("/dashboard/invoices/:id", handler.Get)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/dashboard/invoices/inv-1", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/dashboard/invoices/missing", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCustomerList(t *testing.T) {
	router := gin.New()
	handler := NewCustomerHandler(facadestubs.CustomerFacadeStub{})
	router.GET("/dashboard/customers", handler.List)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/dashboard/customers", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body []map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0]["name"] != "Acme Co" {
		t.Fatalf("unexpected customers payload: %+v", body)
	}
}

func TestDashboardOverview(t *testing.T) {
	facade := facadestubs.InvoiceFacadeStub{
		OverviewFn: func(context.Context) (*model.DashboardSummary, error) {
			return &model.DashboardSummary{InvoiceCount: 3, CustomerCount: 2, PaidCents: 700, PendingCents: 300}, nil
		},
	}
	router := gin.New()
	handler := NewDashboardHandler(facade)
	router.GET("/dashboard", handler.Overview)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]int64
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["invoice_count"] != 3 || body["pending_cents"] != 300 {
		t.Fatalf("unexpected overview payload: %+v", body)
	}
}

func TestCurrentUserID(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	if id := CurrentUserID(c); id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
	c.Set(middleware.UserIDContextKey, "user-42")
	if id := CurrentUserID(c); id != "user-42" {
		t.Fatalf("expected user-42, got %q", id)
	}
}
