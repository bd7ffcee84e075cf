package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistock-api/internal/application/dto"
	"github.com/jhoicas/sistock-api/internal/application/inventory"
	"github.com/jhoicas/sistock-api/internal/domain"
	"github.com/jhoicas/sistock-api/internal/domain/entity"
	apphttp "github.com/jhoicas/sistock-api/internal/interfaces/http"
)

const (
	testProductID  = "00000000-0000-0000-0000-0000000000aa"
	testCategoryID = "00000000-0000-0000-0000-0000000000cc"
)

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	return nil, domain.ErrUnauthorized
}

func (fakeAuth) ProvisionUser(_ context.Context, in dto.ProvisionUserRequest) (*dto.UserResponse, error) {
	if in.Username == "repetido" {
		return nil, domain.ErrUsernameAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	return &dto.UserResponse{ID: "nuevo", Username: in.Username, Role: role, Status: entity.UserStatusActive}, nil
}

type fakeUsers struct {
	status string
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: id, Username: "prueba", Status: f.status}, nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	return domain.ErrReferentialConflict
}

type fakeProducts struct {
	lastList   dto.ProductListRequest
	lastUpdate dto.UpdateProductRequest
}

func (f *fakeProducts) Create(_ context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.CategoryID != testCategoryID {
		return nil, domain.ErrCategoryNotFound
	}
	return &dto.ProductResponse{ID: testProductID, SKU: strings.ToUpper(in.SKU), Name: in.Name, CategoryID: in.CategoryID}, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*dto.ProductResponse, error) {
	return nil, nil
}

func (f *fakeProducts) List(_ context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	f.lastList = in
	return &dto.ProductListResponse{Items: []dto.ProductResponse{}, Page: dto.PageResponse{Limit: in.Limit, Offset: in.Offset}}, nil
}

func (f *fakeProducts) Update(_ context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	f.lastUpdate = in
	if id != testProductID {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil && *in.CategoryID != testCategoryID {
		return nil, domain.ErrCategoryNotFound
	}
	out := &dto.ProductResponse{ID: id, SKU: "MOUSE-001", Name: "Mouse", StockQuantity: 40, MinimumStock: 5}
	if in.Name != nil {
		out.Name = *in.Name
	}
	if in.MinimumStock != nil {
		out.MinimumStock = *in.MinimumStock
	}
	return out, nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	return domain.ErrReferentialConflict
}

type fakeCategories struct{}

func (fakeCategories) Create(_ context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "Periféricos" {
		return nil, domain.ErrDuplicate
	}
	return &dto.CategoryResponse{ID: testCategoryID, Name: in.Name}, nil
}

func (fakeCategories) GetByID(_ context.Context, id string) (*dto.CategoryResponse, error) {
	if id != testCategoryID {
		return nil, nil
	}
	return &dto.CategoryResponse{ID: id, Name: "Periféricos"}, nil
}

func (fakeCategories) List(_ context.Context, limit, offset int) (*dto.CategoryListResponse, error) {
	return &dto.CategoryListResponse{
		Items: []dto.CategoryResponse{{ID: testCategoryID, Name: "Periféricos"}},
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: 1},
	}, nil
}

func (fakeCategories) Delete(_ context.Context, id string) error {
	if id == testCategoryID {
		return domain.ErrReferentialConflict
	}
	return domain.ErrNotFound
}

type fakeMovements struct {
	lastInput  inventory.ProposeInput
	lastFilter dto.MovementListRequest
	outcome    *inventory.Outcome
}

func (f *fakeMovements) ProposeMovement(_ context.Context, in inventory.ProposeInput) (*inventory.Outcome, error) {
	f.lastInput = in
	return f.outcome, nil
}

func (f *fakeMovements) ListMovements(_ context.Context, in dto.MovementListRequest) (*dto.MovementListResponse, error) {
	f.lastFilter = in
	return &dto.MovementListResponse{Items: []dto.MovementResponse{}}, nil
}

func (f *fakeMovements) GetMovement(_ context.Context, id int64) (*dto.MovementResponse, error) {
	if id != 7 {
		return nil, nil
	}
	return &dto.MovementResponse{ID: 7, MovementType: entity.MovementTypeIN, Quantity: 3}, nil
}

func (f *fakeMovements) CurrentBalance(_ context.Context, productID string) (*dto.BalanceResponse, error) {
	if productID != testProductID {
		return nil, domain.ErrNotFound
	}
	return &dto.BalanceResponse{ProductID: productID, StockQuantity: 40}, nil
}

type fakeAlerts struct{}

func (fakeAlerts) ListStockAlerts(_ context.Context) ([]dto.StockAlertDTO, error) {
	return []dto.StockAlertDTO{{SKU: "BAJO", CurrentStock: 1, MinimumStock: 5, SuggestedOrderQty: 9}}, nil
}

func (fakeAlerts) Summary(_ context.Context) (*dto.DashboardSummary, error) {
	return &dto.DashboardSummary{TotalProducts: 2, StockValuation: decimal.NewFromInt(71)}, nil
}

type testServer struct {
	app       *fiber.App
	users     *fakeUsers
	products  *fakeProducts
	movements *fakeMovements
}

func newTestServer() *testServer {
	s := &testServer{
		users:     &fakeUsers{status: entity.UserStatusActive},
		products:  &fakeProducts{},
		movements: &fakeMovements{},
	}
	s.app = fiber.New()
	apphttp.Router(s.app, apphttp.RouterDeps{
		AuthUC:          fakeAuth{},
		UserUC:          s.users,
		ProductUC:       s.products,
		CategoryUC:      fakeCategories{},
		MovementUC:      s.movements,
		AlertUC:         fakeAlerts{},
		JWTSecret:       testJWTSecret,
		DefaultPageSize: 20,
		MaxPageSize:     100,
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path, role, body string) (*http.Response, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer()
	resp, body := s.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_LoginCredencialesInvalidas(t *testing.T) {
	s := newTestServer()
	resp, body := s.do(t, http.MethodPost, "/api/auth/login", "", `{"username":"ana","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", "", `{"username":"ana"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestRouter_RegistrarMovimientoAceptado(t *testing.T) {
	s := newTestServer()
	s.movements.outcome = &inventory.Outcome{Movement: &dto.MovementResponse{
		ID: 1, ProductID: testProductID, MovementType: "OUT", Quantity: 10, StockBefore: 50, StockAfter: 40, CreatedAt: time.Now(),
	}}

	resp, body := s.do(t, http.MethodPost, "/api/inventory/movements", entity.RoleManager,
		`{"product_id":"`+testProductID+`","movement_type":"OUT","quantity":10,"reason":"venta"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 40, body["stock_after"])

	assert.Equal(t, testUserID, s.movements.lastInput.ActorID)
	assert.Equal(t, "OUT", s.movements.lastInput.Type)
	require.NotNil(t, s.movements.lastInput.Quantity)
	assert.True(t, decimal.NewFromInt(10).Equal(*s.movements.lastInput.Quantity))
}

func TestRouter_RegistrarMovimientoSinCantidad(t *testing.T) {
	s := newTestServer()
	s.movements.outcome = &inventory.Outcome{Rejection: domain.Reject("quantity", domain.CodeRequired, "quantity is required")}

	resp, _ := s.do(t, http.MethodPost, "/api/inventory/movements", entity.RoleManager,
		`{"product_id":"`+testProductID+`","movement_type":"IN"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Nil(t, s.movements.lastInput.Quantity, "la cantidad ausente llega como nil al gate")
}

func TestRouter_RegistrarMovimientoRechazado(t *testing.T) {
	s := newTestServer()
	s.movements.outcome = &inventory.Outcome{Rejection: domain.Reject("quantity", domain.CodeInsufficientStock, "insufficient stock, available=%d", 5)}

	resp, body := s.do(t, http.MethodPost, "/api/inventory/movements", entity.RoleAdmin,
		`{"product_id":"`+testProductID+`","movement_type":"OUT","quantity":"10"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "REJECTED", body["code"])
	assert.Equal(t, "quantity", body["field"])
	assert.Equal(t, "insufficient_stock", body["reason"])
	assert.Equal(t, "insufficient stock, available=5", body["message"])
}

func TestRouter_RegistrarMovimientoCuerpoInvalido(t *testing.T) {
	s := newTestServer()
	resp, body := s.do(t, http.MethodPost, "/api/inventory/movements", entity.RoleAdmin, `{"quantity":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestRouter_CuentaInactiva(t *testing.T) {
	s := newTestServer()
	s.users.status = entity.UserStatusInactive
	resp, body := s.do(t, http.MethodGet, "/api/inventory/summary", entity.RoleAdmin, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ACCOUNT_DISABLED", body["code"])
}

func TestRouter_SinToken(t *testing.T) {
	s := newTestServer()
	resp, _ := s.do(t, http.MethodGet, "/api/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_ListarMovimientosFiltros(t *testing.T) {
	s := newTestServer()
	resp, _ := s.do(t, http.MethodGet,
		"/api/inventory/movements?product_id="+testProductID+"&type=OUT&username=ana&from=2024-03-01&to=2024-03-31&q=mouse&limit=5&offset=10",
		entity.RoleStaff, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	f := s.movements.lastFilter
	assert.Equal(t, testProductID, f.ProductID)
	assert.Equal(t, "OUT", f.MovementType)
	assert.Equal(t, "ana", f.Username)
	assert.Equal(t, "2024-03-01", f.From)
	assert.Equal(t, "2024-03-31", f.To)
	assert.Equal(t, "mouse", f.Q)
	assert.Equal(t, 5, f.Limit)
	assert.Equal(t, 10, f.Offset)
}

func TestRouter_ListarMovimientosTipoEnMinusculas(t *testing.T) {
	s := newTestServer()
	resp, _ := s.do(t, http.MethodGet, "/api/inventory/movements?type=out", entity.RoleStaff, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OUT", s.movements.lastFilter.MovementType)

	resp, _ = s.do(t, http.MethodGet, "/api/inventory/movements?type=%20adj%20", entity.RoleStaff, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ADJ", s.movements.lastFilter.MovementType)
}

func TestRouter_ListarMovimientosFiltroInvalido(t *testing.T) {
	s := newTestServer()
	resp, body := s.do(t, http.MethodGet, "/api/inventory/movements?type=XYZ&from=01-03-2024", entity.RoleStaff, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "oneof", fields["type"])
	assert.Equal(t, "datetime", fields["from"])
}

func TestRouter_ObtenerMovimiento(t *testing.T) {
	s := newTestServer()
	resp, body := s.do(t, http.MethodGet, "/api/inventory/movements/7", entity.RoleStaff, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 7, body["id"])

	resp, _ = s.do(t, http.MethodGet, "/api/inventory/movements/8", entity.RoleStaff, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/inventory/movements/abc", entity.RoleStaff, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_SaldoDeProducto(t *testing.T) {
	s := newTestServer()
	resp, body := s.do(t, http.MethodGet, "/api/products/"+testProductID+"/balance", entity.RoleStaff, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 40, body["stock_quantity"])

	resp, _ = s.do(t, http.MethodGet, "/api/products/otro/balance", entity.RoleStaff, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_CatalogoPorRol(t *testing.T) {
	s := newTestServer()
	payload := `{"sku":"mouse-001","name":"Mouse","category_id":"` + testCategoryID + `","price":"25.90","minimum_stock":5}`

	resp, _ := s.do(t, http.MethodPost, "/api/products", entity.RoleStaff, payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := s.do(t, http.MethodPost, "/api/products", entity.RoleManager, payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "MOUSE-001", body["sku"])

	resp, body = s.do(t, http.MethodPost, "/api/products", entity.RoleManager,
		`{"sku":"x","name":"X","category_id":"00000000-0000-0000-0000-0000000000dd"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CATEGORY_NOT_FOUND", body["code"])

	resp, body = s.do(t, http.MethodPost, "/api/products", entity.RoleManager, `{"sku":"x","name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["fields"], "category_id")

	resp, _ = s.do(t, http.MethodDelete, "/api/products/"+testProductID, entity.RoleManager, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = s.do(t, http.MethodDelete, "/api/products/"+testProductID, entity.RoleAdmin, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "REFERENCED", body["code"])
}

func TestRouter_ListarProductosAcotaLimite(t *testing.T) {
	s := newTestServer()
	resp, body := s.do(t, http.MethodGet, "/api/products?limit=500", entity.RoleStaff, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := body["page"].(map[string]any)
	assert.EqualValues(t, 100, page["limit"])
}

func TestRouter_ListarProductosFiltros(t *testing.T) {
	s := newTestServer()
	resp, _ := s.do(t, http.MethodGet, "/api/products?name=mouse&category_id="+testCategoryID+"&offset=20", entity.RoleStaff, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "mouse", s.products.lastList.Name)
	assert.Equal(t, testCategoryID, s.products.lastList.CategoryID)
	assert.Equal(t, 20, s.products.lastList.Limit)
	assert.Equal(t, 20, s.products.lastList.Offset)

	resp, body := s.do(t, http.MethodGet, "/api/products?category_id=perifericos", entity.RoleStaff, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	fields := body["fields"].(map[string]any)
	assert.Equal(t, "uuid", fields["category_id"])
}

func TestRouter_EditarProducto(t *testing.T) {
	s := newTestServer()
	path := "/api/products/" + testProductID

	resp, _ := s.do(t, http.MethodPatch, path, entity.RoleStaff, `{"minimum_stock":8}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := s.do(t, http.MethodPatch, path, entity.RoleManager, `{"name":"Mouse óptico","minimum_stock":8}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Mouse óptico", body["name"])
	assert.EqualValues(t, 8, body["minimum_stock"])
	assert.EqualValues(t, 40, body["stock_quantity"])
	require.NotNil(t, s.products.lastUpdate.MinimumStock)
	assert.Equal(t, 8, *s.products.lastUpdate.MinimumStock)
	assert.Nil(t, s.products.lastUpdate.Price, "los campos ausentes no se envían")

	resp, body = s.do(t, http.MethodPatch, path, entity.RoleAdmin, `{"stock_quantity":999}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "read_only", body["fields"].(map[string]any)["stock_quantity"])

	resp, body = s.do(t, http.MethodPatch, path, entity.RoleAdmin, `{"minimum_stock":-1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "min", body["fields"].(map[string]any)["minimum_stock"])

	resp, body = s.do(t, http.MethodPatch, path, entity.RoleAdmin, `{"category_id":"00000000-0000-0000-0000-0000000000dd"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CATEGORY_NOT_FOUND", body["code"])

	resp, _ = s.do(t, http.MethodPatch, "/api/products/00000000-0000-0000-0000-0000000000bb", entity.RoleAdmin, `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Categorias(t *testing.T) {
	s := newTestServer()

	resp, body := s.do(t, http.MethodGet, "/api/categories", entity.RoleStaff, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["items"], 1)

	resp, _ = s.do(t, http.MethodPost, "/api/categories", entity.RoleStaff, `{"name":"Redes"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = s.do(t, http.MethodPost, "/api/categories", entity.RoleManager, `{"name":"Redes"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Redes", body["name"])

	resp, _ = s.do(t, http.MethodPost, "/api/categories", entity.RoleManager, `{"name":"Periféricos"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = s.do(t, http.MethodPost, "/api/categories", entity.RoleManager, `{"description":"sin nombre"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "required", body["fields"].(map[string]any)["name"])

	resp, _ = s.do(t, http.MethodGet, "/api/categories/"+testCategoryID, entity.RoleStaff, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/categories/otra", entity.RoleStaff, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = s.do(t, http.MethodDelete, "/api/categories/"+testCategoryID, entity.RoleManager, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = s.do(t, http.MethodDelete, "/api/categories/"+testCategoryID, entity.RoleAdmin, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "REFERENCED", body["code"])

	resp, _ = s.do(t, http.MethodDelete, "/api/categories/otra", entity.RoleAdmin, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_AltaDeUsuarios(t *testing.T) {
	s := newTestServer()
	payload := `{"username":"operario","password":"clave-segura"}`

	resp, _ := s.do(t, http.MethodPost, "/api/auth/users", entity.RoleManager, payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := s.do(t, http.MethodPost, "/api/auth/users", entity.RoleAdmin, payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, entity.RoleStaff, body["role"])

	resp, _ = s.do(t, http.MethodPost, "/api/auth/users", entity.RoleAdmin, `{"username":"repetido","password":"clave-segura"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = s.do(t, http.MethodPost, "/api/auth/users", entity.RoleAdmin, `{"username":"x","password":"corta","role":"ROOT"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	fields := body["fields"].(map[string]any)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
}

func TestRouter_UsuariosYResumen(t *testing.T) {
	s := newTestServer()

	resp, body := s.do(t, http.MethodGet, "/api/users/me", entity.RoleStaff, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testUserID, body["id"])

	resp, _ = s.do(t, http.MethodDelete, "/api/users/"+testUserID, entity.RoleAdmin, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodDelete, "/api/users/otro", entity.RoleAdmin, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, "/api/inventory/alerts", entity.RoleStaff, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])

	resp, body = s.do(t, http.MethodGet, "/api/inventory/summary", entity.RoleStaff, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["total_products"])
	assert.Equal(t, "71", body["stock_valuation"])
}
