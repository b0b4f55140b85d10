package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"munch-pos/internal/core/auth"
	"munch-pos/internal/domain"
	"munch-pos/internal/repo"
	"munch-pos/internal/service"
	"munch-pos/internal/transport/http/handler"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Transaction{}))

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "munch-pos", TTL: time.Hour}
	credSvc := service.NewCredentialService(repo.NewUserRepo(db), jwter)
	catalogSvc := service.NewCatalogService(repo.NewProductRepo(db), nil, 0)
	txSvc := service.NewTransactionService(repo.NewTransactionRepo(db), catalogSvc)

	return NewAPIEngine(zap.NewNop(), jwter,
		handler.NewUserHandler(credSvc),
		handler.NewProductHandler(catalogSvc),
		handler.NewTransactionHandler(txSvc),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/users/register", "",
		gin.H{"emailAddress": "user@test.com", "password": "Qwerty!1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/users/login", "",
		gin.H{"emailAddress": "user@test.com", "password": "Qwerty!1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, "User login successful", out.Message)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestRegisterAndLoginFlow(t *testing.T) {
	r := newTestEngine(t)
	_ = loginToken(t, r)

	// 重复注册 400
	w := doJSON(t, r, http.MethodPost, "/users/register", "",
		gin.H{"emailAddress": "user@test.com", "password": "Another!2"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "User already exists")

	// 密码错误 400
	w = doJSON(t, r, http.MethodPost, "/users/login", "",
		gin.H{"emailAddress": "user@test.com", "password": "Wrong!pass1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid password")
}

func TestProductRoutesRequireToken(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(t, r, http.MethodGet, "/products/all-products", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Unauthorized")

	w = doJSON(t, r, http.MethodPost, "/transactions/add-transaction", "garbage-token",
		gin.H{"product_id": 1, "quantity": 1, "total": 1})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	r := newTestEngine(t)
	tok := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/products/add-product", tok,
		gin.H{"name": "Widget", "price": 9.99, "description": "desc", "quantity": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 字段缺失 400
	w = doJSON(t, r, http.MethodPost, "/products/add-product", tok,
		gin.H{"name": "NoPrice", "description": "desc", "quantity": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Required fields")

	// 下标越界 400
	w = doJSON(t, r, http.MethodPost, "/products/update-product", tok,
		gin.H{"name": "Widget", "index": 7, "value": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid field index")

	// 商品不存在优先于下标错误
	w = doJSON(t, r, http.MethodPost, "/products/update-product", tok,
		gin.H{"name": "Nothing", "index": 7, "value": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Product not found")

	// 类型不符 400
	w = doJSON(t, r, http.MethodPost, "/products/update-product", tok,
		gin.H{"name": "Widget", "index": 2, "value": "not-a-number"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Type mismatch")

	// 改价成功
	w = doJSON(t, r, http.MethodPost, "/products/update-product", tok,
		gin.H{"name": "Widget", "index": 2, "value": 12.5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 软删后 active 列表不含、全量列表仍含
	w = doJSON(t, r, http.MethodPost, "/products/delete-product", tok, gin.H{"name": "Widget"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/products/all-active-products", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	// 空列表在线上必须是 []，不能是 null
	require.Equal(t, "[]", w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/products/all-products", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
	require.True(t, all[0].Deleted)
}

func TestMetricsExposition(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "pos_http_requests_total")
}

func TestTransactionOverHTTP(t *testing.T) {
	r := newTestEngine(t)
	tok := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/products/add-product", tok,
		gin.H{"name": "Burger", "price": 8.0, "description": "main", "quantity": 10})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodPost, "/products/add-product", tok,
		gin.H{"name": "Fries", "price": 3.0, "description": "side", "quantity": 50})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Fries 把 Burger 设为加购目标 → Burger 的反查里有 Fries
	w = doJSON(t, r, http.MethodPost, "/products/link-upsell-product", tok,
		gin.H{"product_id": 2, "upsell_product_id": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 自指 400
	w = doJSON(t, r, http.MethodPost, "/products/link-upsell-product", tok,
		gin.H{"product_id": 1, "upsell_product_id": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Self reference")

	// 未知商品的交易 400
	w = doJSON(t, r, http.MethodPost, "/transactions/add-transaction", tok,
		gin.H{"product_id": 999, "quantity": 1, "total": 8.0})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Product not found")

	w = doJSON(t, r, http.MethodPost, "/transactions/add-transaction", tok,
		gin.H{"product_id": 1, "quantity": 2, "total": 16.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/transactions/get-transaction", tok,
		gin.H{"transaction_id": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var view struct {
		ID             uint             `json:"id"`
		ProductID      uint             `json:"productId"`
		Quantity       int              `json:"quantity"`
		UpsellProducts []domain.Product `json:"upsellProducts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.EqualValues(t, 1, view.ProductID)
	require.Equal(t, 2, view.Quantity)
	require.Len(t, view.UpsellProducts, 1)
	require.Equal(t, "Fries", view.UpsellProducts[0].Name)

	// 未知交易 400
	w = doJSON(t, r, http.MethodPost, "/transactions/get-transaction", tok,
		gin.H{"transaction_id": 42})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Transaction not found")
}
