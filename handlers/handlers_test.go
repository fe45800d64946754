package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketstore/database"
	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
	"marketstore/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryTokenRepo stands in for redis during the handler tests.
type memoryTokenRepo struct {
	tokens map[string]entities.UserData
}

func (m *memoryTokenRepo) CreateToken(uModel models.User_db) (string, error) {
	token := uuid.NewString()
	m.tokens[token] = entities.UserData{Id: uModel.Id, Name: uModel.Name, Role: uModel.Role}
	return token, nil
}

func (m *memoryTokenRepo) GetTokenInfo(token string) (entities.UserData, bool, error) {
	user, ok := m.tokens[token]
	return user, ok, nil
}

func (m *memoryTokenRepo) DeleteUserTokens(userId int) error {
	for token, user := range m.tokens {
		if user.Id == userId {
			delete(m.tokens, token)
		}
	}
	return nil
}

const adminEmail = "admin@example.test"
const adminPassword = "admin-secret"

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db, "sqlite3"))
	t.Cleanup(func() { db.Close() })

	uR, err := repository.NewUserRepository(db)
	require.NoError(t, err)
	pR, err := repository.NewProductRepository(db)
	require.NoError(t, err)
	cR, err := repository.NewCategoryRepository(db)
	require.NoError(t, err)
	bR, err := repository.NewBrandRepository(db)
	require.NoError(t, err)
	sR, err := repository.NewStoreRepository(db)
	require.NoError(t, err)
	payR, err := repository.NewPaymentRepository(db)
	require.NoError(t, err)
	vR, err := repository.NewVoucherRepository(db)
	require.NoError(t, err)
	dR, err := repository.NewDeliveryRepository(db)
	require.NoError(t, err)
	oR, err := repository.NewOrderRepository(db)
	require.NoError(t, err)

	tR := &memoryTokenRepo{tokens: map[string]entities.UserData{}}
	us := services.NewUserService(uR, tR)
	require.NoError(t, us.EnsureAdmin(adminEmail, adminPassword))

	ha := NewHandler(HandlerParams{
		UsrService: us,
		PrdService: services.NewProductService(pR),
		CatService: services.NewCategoryService(cR),
		BrdService: services.NewBrandService(bR),
		StrService: services.NewStoreService(sR),
		PayService: services.NewPaymentService(payR),
		VchService: services.NewVoucherService(vR),
		DlvService: services.NewDeliveryService(dR),
		OrdService: services.NewOrderService(services.OrderServiceParams{
			OrderRepo:    oR,
			UserRepo:     uR,
			ProductRepo:  pR,
			VoucherRepo:  vR,
			PaymentRepo:  payR,
			DeliveryRepo: dR,
		}),
	})
	return NewRouter(ha)
}

func doRequest(t *testing.T, router *mux.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, router *mux.Router, email string) string {
	t.Helper()
	rec := doRequest(t, router, "POST", "/register", "", map[string]any{
		"name": "Test User", "email": email, "password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return login(t, router, email, "secret")
}

func login(t *testing.T, router *mux.Router, email, password string) string {
	t.Helper()
	rec := doRequest(t, router, "POST", "/login", "", map[string]any{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	return data["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, "POST", "/register", "", map[string]any{
		"name": "Ann", "email": "ann@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "User created", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, rec.Body.String(), "password")

	rec = doRequest(t, router, "POST", "/login", "", map[string]any{
		"email": "ann@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decode(t, rec)["message"])

	token := login(t, router, "ann@example.com", "secret")

	rec = doRequest(t, router, "GET", "/products", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode(t, rec)["products"].(map[string]any)
	assert.Equal(t, float64(0), page["total"])

	rec = doRequest(t, router, "GET", "/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized.", decode(t, rec)["message"])

	rec = doRequest(t, router, "POST", "/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Token deleted", decode(t, rec)["message"])

	rec = doRequest(t, router, "GET", "/products", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, "POST", "/register", "", map[string]any{
		"name": "", "email": "not-an-email", "password": "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body["message"])
	errs := body["errors"].(map[string]any)
	assert.Equal(t, "The name field is required.", errs["name"])
	assert.Equal(t, "The email field must be a valid email address.", errs["email"])

	// a taken email is reported the same way
	doRequest(t, router, "POST", "/register", "", map[string]any{
		"name": "Ann", "email": "ann@example.com", "password": "secret",
	})
	rec = doRequest(t, router, "POST", "/register", "", map[string]any{
		"name": "Ann too", "email": "ann@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs = decode(t, rec)["errors"].(map[string]any)
	assert.Equal(t, "The email has already been taken.", errs["email"])
}

func TestProductLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "staff@example.com")

	rec := doRequest(t, router, "POST", "/categories", token, map[string]any{
		"category_name": "Tools", "description": "hand tools",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doRequest(t, router, "POST", "/brands", token, map[string]any{
		"brand_name": "Acme Corp", "brand_address": "Acme road 1", "brand_email": "sales@acme.test",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, "POST", "/products", token, map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decode(t, rec)["errors"].(map[string]any)
	assert.Equal(t, "The name field is required.", errs["name"])

	rec = doRequest(t, router, "POST", "/products", token, map[string]any{
		"name": "Wrench", "price": "19.99", "stock": 5, "category_id": 1, "brand_id": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	prod := decode(t, rec)["product"].(map[string]any)
	id := int(prod["id"].(float64))
	require.NotZero(t, id)

	rec = doRequest(t, router, "GET", "/products/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	prod = decode(t, rec)["product"].(map[string]any)
	assert.Equal(t, "Wrench", prod["name"])

	rec = doRequest(t, router, "PUT", "/products/1", token, map[string]any{
		"name": "Pipe wrench", "price": "24.99", "stock": 3, "category_id": 1, "brand_id": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product updated", decode(t, rec)["message"])

	rec = doRequest(t, router, "DELETE", "/products/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted", decode(t, rec)["message"])

	rec = doRequest(t, router, "DELETE", "/products/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decode(t, rec)["message"])

	rec = doRequest(t, router, "GET", "/products/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKeywordAndPaging(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "staff@example.com")

	brands := []map[string]any{
		{"brand_name": "Acme Corp", "brand_address": "Acme road 1", "brand_email": "sales@acme.test"},
		{"brand_name": "Globex", "brand_address": "Globex ave 2", "brand_email": "info@globex.test"},
	}
	for _, brand := range brands {
		rec := doRequest(t, router, "POST", "/brands", token, brand)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, "GET", "/brands?keyword=ACME", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode(t, rec)["brands"].(map[string]any)
	assert.Equal(t, float64(1), page["total"])
	items := page["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme Corp", items[0].(map[string]any)["brand_name"])

	rec = doRequest(t, router, "GET", "/brands?page=99", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page = decode(t, rec)["brands"].(map[string]any)
	assert.Equal(t, float64(2), page["total"])
	assert.Empty(t, page["items"])
	assert.Equal(t, float64(99), page["page"])
}

func TestStoreAdminGate(t *testing.T) {
	router := newTestRouter(t)
	userToken := registerAndLogin(t, router, "shopper@example.com")
	adminToken := login(t, router, adminEmail, adminPassword)

	store := map[string]any{
		"name": "Main branch", "phone_number": "0812345678", "address": "Main street 1",
	}

	rec := doRequest(t, router, "POST", "/stores", userToken, store)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", decode(t, rec)["message"])

	rec = doRequest(t, router, "POST", "/stores", adminToken, store)
	require.Equal(t, http.StatusCreated, rec.Code)

	// reads only need a login
	rec = doRequest(t, router, "GET", "/stores", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, "GET", "/stores/1", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, "DELETE", "/stores/1", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, "DELETE", "/stores/1", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Store deleted", body["message"])
	deleted := body["store"].(map[string]any)
	assert.Equal(t, "Main branch", deleted["name"])
}

func TestOrderAcceptsLooseReferences(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "staff@example.com")

	rec := doRequest(t, router, "POST", "/orders", token, map[string]any{
		"order_date": "2026-01-15", "user_id": 42, "product_id": 7,
		"destination_address": "Main street 1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	order := decode(t, rec)["order"].(map[string]any)
	assert.Equal(t, float64(42), order["user_id"])
	assert.Nil(t, order["voucher_id"])
}

func TestFallbackAnswersUnauthorized(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, "GET", "/no-such-route", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized.", decode(t, rec)["message"])

	// wrong method on a known path gets the same answer
	rec = doRequest(t, router, "PATCH", "/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
